package prefdialog

import (
	"fmt"
	"slices"
)

// Factory builds the dialog for a preference key.
type Factory func(key string, opts ...Option) (*Dialog, error)

// Registry maps preference keys to dialog factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry with every dialog of the settings screen.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(KeyRemoveUnlinkedData, NewRemoveUnlinkedData)
	return r
}

// Register binds key to f, replacing any previous factory.
func (r *Registry) Register(key string, f Factory) {
	r.factories[key] = f
}

// Keys returns the registered keys, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Create builds a fresh dialog for key.
func (r *Registry) Create(key string, opts ...Option) (*Dialog, error) {
	if key == "" {
		return nil, ErrMissingKey
	}
	f, ok := r.factories[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return f(key, opts...)
}

// Restore rebuilds a dialog from an argument set saved before a teardown.
func (r *Registry) Restore(args Args, opts ...Option) (*Dialog, error) {
	return r.Create(args.Key(), opts...)
}
