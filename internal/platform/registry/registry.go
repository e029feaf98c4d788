// Package registry is a small keyed service locator used while bootstrapping
// the binaries. Components are constructed explicitly and registered by name
// so wiring can be inspected and swapped in tests.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"menagerie/pkg/platform/sentinel"
)

// Well-known keys used by the binaries.
const (
	KeyLogger        = "logger"
	KeyCountrySource = "countrySource"
	KeyCensusService = "censusService"
)

// Registry maps keys to service instances. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	services map[string]any
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{services: make(map[string]any)}
}

// Register stores service under key, replacing any previous entry.
func (r *Registry) Register(key string, service any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[key] = service
}

// Resolve returns the service registered under key. A missing or nil entry
// wraps sentinel.ErrNotFound.
func (r *Registry) Resolve(key string) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	service, ok := r.services[key]
	if !ok || service == nil {
		return nil, fmt.Errorf("service %s not found in container: %w", key, sentinel.ErrNotFound)
	}
	return service, nil
}

// ResolveAs resolves key and asserts it to T.
func ResolveAs[T any](r *Registry, key string) (T, error) {
	var zero T
	service, err := r.Resolve(key)
	if err != nil {
		return zero, err
	}
	typed, ok := service.(T)
	if !ok {
		return zero, fmt.Errorf("service %s has type %T, want %T", key, service, zero)
	}
	return typed, nil
}

// Keys lists the registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.services))
	for k := range r.services {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clear removes every registration.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.services)
}

// MustResolveAs is ResolveAs for bootstrap code where a missing service is a
// programming error.
func MustResolveAs[T any](r *Registry, key string) T {
	typed, err := ResolveAs[T](r, key)
	if err != nil {
		panic(err)
	}
	return typed
}
