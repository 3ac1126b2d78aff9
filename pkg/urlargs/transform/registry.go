package transform

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/randalmurphal/urlargs/pkg/urlargs"
)

// Factory returns a fresh transform default.
type Factory func() urlargs.DefaultSpec

// Registry is a thread-safe set of named transform factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return errors.New("transform name is required")
	}
	if f == nil {
		return fmt.Errorf("transform %q: factory is required", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
	return nil
}

// Has returns true if name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Get returns the factory registered under name.
func (r *Registry) Get(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Spec returns a new default from the factory registered under name.
func (r *Registry) Spec(name string) (urlargs.DefaultSpec, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown transform %q", name)
	}
	return f(), nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered transforms.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Clone returns an independent copy, for extending the built-ins without
// touching Default().
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := &Registry{factories: make(map[string]Factory, len(r.factories))}
	for name, f := range r.factories {
		out.factories[name] = f
	}
	return out
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the shared registry of built-in transforms.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for name, f := range builtins() {
			// Names and factories are static; Register cannot fail here.
			_ = defaultRegistry.Register(name, f)
		}
	})
	return defaultRegistry
}
