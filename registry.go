package immerreducer

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry tracks which reducer class claims each display name. Entries are
// created lazily by the synthesis entry points and live for the process.
type Registry struct {
	mu      sync.Mutex
	classes map[string]reflect.Type
}

func NewRegistry() *Registry {
	return &Registry{
		classes: map[string]reflect.Type{},
	}
}

// DefaultRegistry backs the package level synthesis functions.
var DefaultRegistry = NewRegistry()

func (r *Registry) register(displayName string, class reflect.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.classes[displayName]
	if ok && existing != class {
		return DuplicateIdentity(displayName, existing, class)
	}

	r.classes[displayName] = class

	return nil
}

// Reset clears every entry. Test isolation only; must not race live
// registrations.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.classes = map[string]reflect.Type{}
}

// ResetRegistry resets the default registry.
func ResetRegistry() {
	DefaultRegistry.Reset()
}

func DuplicateIdentity(displayName string, existing reflect.Type, claimed reflect.Type) DuplicateIdentityError {
	return DuplicateIdentityError{
		DisplayName: displayName,
		Existing:    existing,
		Claimed:     claimed,
	}
}

type DuplicateIdentityError struct {
	DisplayName string
	Existing    reflect.Type
	Claimed     reflect.Type
}

func (e DuplicateIdentityError) Error() string {
	return fmt.Sprintf("duplicate reducer identity %q: claimed by both %s and %s", e.DisplayName, e.Existing, e.Claimed)
}
