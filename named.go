package immerreducer

import (
	"reflect"
)

// Named overrides the display name a reducer class registers under. Without
// it the intrinsic struct name is used.
type Named interface {
	TypeName() string
}

func NameOf(value any) string {
	if typed, ok := value.(Named); ok == true {
		return typed.TypeName()
	}

	t := reflect.TypeOf(value)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t.Name()
}
