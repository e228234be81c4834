// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

// Package cap holds the builtins: commands that run inside the interpreter
// process because their effect must persist in its state.
package cap

import (
	"context"
	"fmt"
	"sync"
)

// Capability is the interface every builtin implements.
type Capability interface {
	// Name returns the command name that selects the builtin. It only
	// matches the first token of a command group.
	Name() string

	// Description returns a human-readable summary. It is attached to the
	// debug record of every builtin run.
	Description() string

	// Run executes the builtin synchronously in the calling process. args
	// excludes the command name. A returned error is reported by the
	// caller; the run continues either way.
	Run(ctx context.Context, args []string) error
}

// Registry maps builtin names to implementations.
type Registry struct {
	mu   sync.RWMutex
	caps map[string]Capability
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		caps: make(map[string]Capability),
	}
}

// Register adds a builtin to the registry, replacing any with the same name.
func (r *Registry) Register(c Capability) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caps[c.Name()] = c
}

// Lookup returns a builtin by name.
func (r *Registry) Lookup(name string) (Capability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.caps[name]
	if !ok {
		return nil, fmt.Errorf("unknown builtin: %q", name)
	}
	return c, nil
}

// Match returns the builtin selected by a command group, if any.
func (r *Registry) Match(args []string) (Capability, bool) {
	if len(args) == 0 {
		return nil, false
	}
	c, err := r.Lookup(args[0])
	return c, err == nil
}
