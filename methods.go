package immerreducer

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
)

// Members of Base and the Named override are never action methods.
var reservedMethods = map[string]bool{
	"State":    true,
	"Draft":    true,
	"TypeName": true,
}

func classTypeOf(prototype Reducer) reflect.Type {
	t := reflect.TypeOf(prototype)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}

// methodsOf builds the wire method table for a class pointer type, keyed by
// the lowerCamel name that appears in action types.
func methodsOf(class reflect.Type) (map[string]reflect.Method, error) {
	if class.Kind() != reflect.Ptr || class.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("reducer class must be a pointer to a struct, got %s", class)
	}

	methods := make(map[string]reflect.Method, class.NumMethod())
	for i := 0; i < class.NumMethod(); i++ {
		method := class.Method(i)
		if reservedMethods[method.Name] {
			continue
		}

		methods[methodNameOf(method.Name)] = method
	}

	return methods, nil
}

func methodNameOf(name string) string {
	return strcase.ToLowerCamel(name)
}

func invoke(instance any, method reflect.Method, payload []any) error {
	signature := method.Func.Type()
	arity := signature.NumIn() - 1

	if signature.IsVariadic() {
		if len(payload) < arity-1 {
			return InvalidPayload(method.Name, fmt.Sprintf("expected at least %d arguments, got %d", arity-1, len(payload)))
		}
	} else if len(payload) != arity {
		return InvalidPayload(method.Name, fmt.Sprintf("expected %d arguments, got %d", arity, len(payload)))
	}

	args := make([]reflect.Value, 0, len(payload)+1)
	args = append(args, reflect.ValueOf(instance))

	for i, value := range payload {
		var target reflect.Type
		if signature.IsVariadic() && i+1 >= signature.NumIn()-1 {
			target = signature.In(signature.NumIn() - 1).Elem()
		} else {
			target = signature.In(i + 1)
		}

		arg, err := coerce(value, target)
		if err != nil {
			return InvalidPayload(method.Name, err.Error())
		}

		args = append(args, arg)
	}

	method.Func.Call(args)

	return nil
}

// coerce adapts a payload value to a parameter type. Numeric conversions
// cover payloads decoded from the wire, where every number arrives as
// float64; anything structured goes through a JSON round trip.
func coerce(value any, target reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(target), nil
	}

	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(target) {
		return v, nil
	}

	if numeric(v.Kind()) && numeric(target.Kind()) {
		return v.Convert(target), nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return reflect.Value{}, err
	}

	coerced := reflect.New(target)
	if err := json.Unmarshal(data, coerced.Interface()); err != nil {
		return reflect.Value{}, err
	}

	return coerced.Elem(), nil
}

func numeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}

func InvalidPayload(methodName string, reason string) InvalidPayloadError {
	return InvalidPayloadError{
		MethodName: methodName,
		Reason:     reason,
	}
}

type InvalidPayloadError struct {
	MethodName string
	Reason     string
}

func (e InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid payload for %s: %s", e.MethodName, e.Reason)
}
