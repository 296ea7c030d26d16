package immerreducer

import (
	"strings"
)

type ActionType string

func (at ActionType) String() string {
	return string(at)
}

// Action types are namespaced so they never collide with hand written action
// types flowing through the same store. The format is stable and wire
// visible; middleware may pattern match on it.
const (
	namespace       = "IMMER_REDUCER"
	nameSeparator   = ":"
	methodSeparator = "#"
)

type DecodedActionType struct {
	DisplayName string
	MethodName  string
}

// EncodeActionType builds the action type for a class method. Display names
// and method names must not contain ":" or "#"; this is a caller contract,
// not enforced here.
func EncodeActionType(displayName string, methodName string) ActionType {
	return ActionType(namespace + nameSeparator + displayName + methodSeparator + methodName)
}

// DecodeActionType recovers the display and method name from an action type.
// A false result means the action does not belong to any reducer class,
// which is the expected common case in a combined store.
func DecodeActionType(actionType ActionType) (DecodedActionType, bool) {
	rest, found := strings.CutPrefix(string(actionType), namespace+nameSeparator)
	if !found {
		return DecodedActionType{}, false
	}

	displayName, methodName, found := strings.Cut(rest, methodSeparator)
	if !found || displayName == "" || methodName == "" {
		return DecodedActionType{}, false
	}

	return DecodedActionType{DisplayName: displayName, MethodName: methodName}, true
}
