package immerreducer

import (
	"reflect"
)

// Action is the plain object handed to the store. Payload holds the
// positional arguments the creator was called with; treat both fields as
// immutable once created.
type Action struct {
	Type    ActionType `json:"type"`
	Payload []any      `json:"payload,omitempty"`
}

// ActionCreator builds actions for one class method. Type is constant and
// may be compared against an action's type without constructing one.
type ActionCreator struct {
	Type ActionType
}

func (c ActionCreator) Create(payload ...any) Action {
	return Action{
		Type:    c.Type,
		Payload: payload,
	}
}

// ActionCreators maps Go method names to their creators.
type ActionCreators map[string]ActionCreator

// CreateActionCreators synthesizes one creator per action method of the
// class, registering the class in the default registry.
func CreateActionCreators(prototype Reducer) (ActionCreators, error) {
	return DefaultRegistry.ActionCreators(prototype)
}

func (r *Registry) ActionCreators(prototype Reducer) (ActionCreators, error) {
	displayName := NameOf(prototype)
	if err := r.register(displayName, classTypeOf(prototype)); err != nil {
		return nil, err
	}

	methods, err := methodsOf(reflect.TypeOf(prototype))
	if err != nil {
		return nil, err
	}

	creators := make(ActionCreators, len(methods))
	for name, method := range methods {
		creators[method.Name] = ActionCreator{Type: EncodeActionType(displayName, name)}
	}

	return creators, nil
}
