package immerreducer

import (
	"context"
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"

	"github.com/Secretmapper/immer-reducer/immer"
)

// Base carries the two views over the current state that method bodies use.
// Embed it in a reducer class; both views are bound per dispatch and must
// not be retained across dispatches.
type Base[T any] struct {
	state *T
	draft *T
}

// State is the state the dispatch started from. Read only from the method's
// perspective; use it for derived or helper computation.
func (b *Base[T]) State() *T {
	return b.state
}

// Draft is the mutable working copy of the state for this dispatch. Methods
// calling other methods on the same instance share it, so edits compose.
func (b *Base[T]) Draft() *T {
	return b.draft
}

func (b *Base[T]) bind(state *T, draft *T) {
	b.state = state
	b.draft = draft
}

func (b *Base[T]) reducer() {}

// Reducer is satisfied by any class embedding Base.
type Reducer interface {
	reducer()
}

type ReducerClass[T any] interface {
	Reducer
	bind(state *T, draft *T)
}

// ReducerFunction is pure and synchronous: nil state stands in for the
// store's undefined state, and actions it does not recognise pass through
// unchanged.
type ReducerFunction[T any] func(state *T, action Action) (*T, error)

// ReducerSynthesizer builds reducer functions for one state type. Zero
// value collaborators fall back to the defaults: the process wide registry
// and the immer producer.
type ReducerSynthesizer[T any] struct {
	Registry *Registry
	Producer immer.Producer[T]
	Initial  *T
	Logger   *zerolog.Logger
}

// CreateReducerFunction builds a reducer function for the class using the
// default registry and producer.
func CreateReducerFunction[T any](prototype ReducerClass[T], initial *T) (ReducerFunction[T], error) {
	synthesizer := ReducerSynthesizer[T]{Initial: initial}

	return synthesizer.ReducerFunction(prototype)
}

func (s *ReducerSynthesizer[T]) ReducerFunction(prototype ReducerClass[T]) (ReducerFunction[T], error) {
	registry := s.Registry
	if nil == registry {
		registry = DefaultRegistry
	}

	producer := s.Producer
	if nil == producer {
		producer = immer.Produce[T]
	}

	displayName := NameOf(prototype)
	if err := registry.register(displayName, classTypeOf(prototype)); err != nil {
		return nil, err
	}

	methods, err := methodsOf(reflect.TypeOf(prototype))
	if err != nil {
		return nil, err
	}

	class := reflect.TypeOf(prototype).Elem()
	initial := s.Initial
	logger := s.Logger

	reduce := func(state *T, action Action) (*T, error) {
		if state == nil {
			state = initial
		}

		decoded, ok := DecodeActionType(action.Type)
		if !ok || decoded.DisplayName != displayName {
			return state, nil
		}

		method, ok := methods[decoded.MethodName]
		if !ok {
			return nil, MethodNotFound(displayName, decoded.MethodName)
		}

		_, span := otel.Tracer(tracerName).Start(context.Background(), fmt.Sprintf("reduce %s", action.Type))
		defer span.End()

		next, err := producer(state, func(draft *T) error {
			instance := reflect.New(class).Interface().(ReducerClass[T])
			instance.bind(state, draft)

			return invoke(instance, method, action.Payload)
		})
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("failed to apply %s", action.Type))
		}

		if logger != nil {
			logger.Debug().
				Str("action", action.Type.String()).
				Str("method", method.Name).
				Msg("action applied")
		}

		return next, nil
	}

	return reduce, nil
}

func MethodNotFound(displayName string, methodName string) MethodNotFoundError {
	return MethodNotFoundError{
		DisplayName: displayName,
		MethodName:  methodName,
	}
}

type MethodNotFoundError struct {
	DisplayName string
	MethodName  string
}

func (e MethodNotFoundError) Error() string {
	return fmt.Sprintf("unknown method %s on %s", e.MethodName, e.DisplayName)
}
