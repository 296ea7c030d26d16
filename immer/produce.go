// Package immer turns a mutation over a working copy into a new immutable
// value that shares untouched substructure with the base by reference.
package immer

import (
	"reflect"
)

// Producer is the structural sharing boundary the dispatch engine consumes.
// Implementations must be deterministic and must return the base pointer
// itself when the mutator touched nothing.
type Producer[T any] func(base *T, mutate func(draft *T) error) (*T, error)

// Produce runs mutate against a deep working copy of base and commits the
// result. Substructure the mutator left untouched keeps its original
// references; a fully untouched draft commits to base itself. A nil base
// seeds a zero value draft, which is returned as is.
func Produce[T any](base *T, mutate func(draft *T) error) (*T, error) {
	draft := Clone(base)

	if err := mutate(draft); err != nil {
		return nil, err
	}

	if base == nil {
		return draft, nil
	}

	shared := share(reflect.ValueOf(base), reflect.ValueOf(draft))

	return shared.Interface().(*T), nil
}

// Clone deep copies a value. Unexported struct fields are carried over by
// value, so state types should hold exported data only.
func Clone[T any](base *T) *T {
	if base == nil {
		return new(T)
	}

	return clone(reflect.ValueOf(base)).Interface().(*T)
}

func clone(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return v
		}

		out := reflect.New(v.Type().Elem())
		out.Elem().Set(clone(v.Elem()))

		return out

	case reflect.Interface:
		if v.IsNil() {
			return v
		}

		out := reflect.New(v.Type()).Elem()
		out.Set(clone(v.Elem()))

		return out

	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			field := out.Field(i)
			if field.CanSet() {
				field.Set(clone(v.Field(i)))
			}
		}

		return out

	case reflect.Slice:
		if v.IsNil() {
			return v
		}

		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(clone(v.Index(i)))
		}

		return out

	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(clone(v.Index(i)))
		}

		return out

	case reflect.Map:
		if v.IsNil() {
			return v
		}

		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(clone(iter.Key()), clone(iter.Value()))
		}

		return out

	default:
		return v
	}
}

// share reconciles a draft against its base: wherever the two are deeply
// equal the base's original value is reused, restoring reference identity
// along untouched paths. The draft is owned by the caller, so it may be
// edited in place.
func share(base reflect.Value, draft reflect.Value) reflect.Value {
	if base.Type() != draft.Type() {
		return draft
	}

	if reflect.DeepEqual(base.Interface(), draft.Interface()) {
		return base
	}

	switch draft.Kind() {
	case reflect.Ptr:
		if base.IsNil() || draft.IsNil() {
			return draft
		}

		out := reflect.New(draft.Type().Elem())
		out.Elem().Set(share(base.Elem(), draft.Elem()))

		return out

	case reflect.Interface:
		if base.IsNil() || draft.IsNil() {
			return draft
		}
		if base.Elem().Type() != draft.Elem().Type() {
			return draft
		}

		out := reflect.New(draft.Type()).Elem()
		out.Set(share(base.Elem(), draft.Elem()))

		return out

	case reflect.Struct:
		out := reflect.New(draft.Type()).Elem()
		out.Set(draft)
		for i := 0; i < draft.NumField(); i++ {
			field := out.Field(i)
			if field.CanSet() {
				field.Set(share(base.Field(i), draft.Field(i)))
			}
		}

		return out

	case reflect.Slice:
		for i := 0; i < draft.Len() && i < base.Len(); i++ {
			draft.Index(i).Set(share(base.Index(i), draft.Index(i)))
		}

		return draft

	case reflect.Map:
		for _, key := range draft.MapKeys() {
			existing := base.MapIndex(key)
			if existing.IsValid() {
				draft.SetMapIndex(key, share(existing, draft.MapIndex(key)))
			}
		}

		return draft

	default:
		return draft
	}
}
