package runtime

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Runtime errors
var (
	ErrUnknownBehavior  = errors.New("unknown behavior")
	ErrAlreadyAttached  = errors.New("entity already has a behavior")
	ErrInvalidEntity    = errors.New("entity is not valid")
	ErrRuntimeStopped   = errors.New("runtime is stopped")
	ErrInvalidParameter = errors.New("invalid behavior parameter")
)

// Factory builds a behavior instance from its configured parameters.
type Factory func(params map[string]any) (Behavior, error)

// Registry maps behavior names to factories.
type Registry interface {
	Register(name string, factory Factory)
	New(name string, params map[string]any) (Behavior, error)
	Names() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return &registry{factories: make(map[string]Factory)}
}

func (r *registry) Register(name string, factory Factory) {
	r.mu.Lock()
	r.factories[name] = factory
	r.mu.Unlock()
}

func (r *registry) New(name string, params map[string]any) (Behavior, error) {
	r.mu.RLock()
	f := r.factories[name]
	r.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownBehavior)
	}
	if params == nil {
		params = map[string]any{}
	}
	return f(params)
}

func (r *registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Float32Param reads a numeric parameter. Config decoders hand numbers over as
// int or float64, so both are accepted.
func Float32Param(params map[string]any, key string, def float32) (float32, error) {
	raw, ok := params[key]
	if !ok {
		return def, nil
	}
	switch v := raw.(type) {
	case float64:
		return float32(v), nil
	case float32:
		return v, nil
	case int:
		return float32(v), nil
	case int64:
		return float32(v), nil
	default:
		return 0, fmt.Errorf("%s: expected number, got %T: %w", key, raw, ErrInvalidParameter)
	}
}

func StringParam(params map[string]any, key, def string) (string, error) {
	raw, ok := params[key]
	if !ok {
		return def, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected string, got %T: %w", key, raw, ErrInvalidParameter)
	}
	return s, nil
}
