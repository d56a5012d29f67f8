// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Hook registry with first-result semantics

package hooks

import (
	"fmt"
	"sync"
)

// Func is a hook implementation. An empty string means the implementation
// has no opinion and the next one is consulted.
type Func func() (string, error)

// Result is the value returned by the first implementation that answered
type Result struct {
	Value  string
	Source string // Name the implementation was registered under
}

// Found reports whether any implementation returned a value
func (r Result) Found() bool {
	return r.Value != ""
}

type impl struct {
	name string
	fn   Func
}

// Registry holds the tempdir extension points
type Registry struct {
	mu       sync.RWMutex
	basename []impl
	tempRoot []impl
}

// NewRegistry creates an empty hook registry
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterBasename adds an implementation of the basename hook.
// Implementations are consulted in registration order.
func (r *Registry) RegisterBasename(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.basename = append(r.basename, impl{name: name, fn: fn})
}

// RegisterTempRoot adds an implementation of the temp root hook
func (r *Registry) RegisterTempRoot(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tempRoot = append(r.tempRoot, impl{name: name, fn: fn})
}

// Basename calls the basename hook and returns the first non-empty result
func (r *Registry) Basename() (Result, error) {
	return r.first("basename", func() []impl { return r.basename })
}

// TempRoot calls the temp root hook and returns the first non-empty result
func (r *Registry) TempRoot() (Result, error) {
	return r.first("temproot", func() []impl { return r.tempRoot })
}

// Names lists registered basename and temp root implementations, in order
func (r *Registry) Names() (basename, tempRoot []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, i := range r.basename {
		basename = append(basename, i.name)
	}
	for _, i := range r.tempRoot {
		tempRoot = append(tempRoot, i.name)
	}
	return basename, tempRoot
}

func (r *Registry) first(hook string, list func() []impl) (Result, error) {
	r.mu.RLock()
	impls := append([]impl(nil), list()...)
	r.mu.RUnlock()

	for _, i := range impls {
		value, err := i.fn()
		if err != nil {
			return Result{}, fmt.Errorf("%s hook %q failed: %w", hook, i.name, err)
		}
		if value != "" {
			return Result{Value: value, Source: i.name}, nil
		}
	}
	return Result{}, nil
}
