package catalog

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when no node is registered under a key.
var ErrNotFound = errors.New("node not found")

// Registry is a thread-safe collection of node definitions, listed in
// registration order so the front-end menu stays stable.
type Registry struct {
	mu    sync.RWMutex
	nodes map[string]*NodeDefinition
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[string]*NodeDefinition)}
}

// Register adds a definition. Re-registering a key replaces the definition
// in place (useful for tests).
func (r *Registry) Register(def *NodeDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := def.Key()
	if _, exists := r.nodes[key]; !exists {
		r.order = append(r.order, key)
	}
	r.nodes[key] = def
}

// Get returns the definition for category and name, or ErrNotFound.
func (r *Registry) Get(category, name string) (*NodeDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.nodes[category+"/"+name]
	if !ok {
		return nil, ErrNotFound
	}
	return def, nil
}

// List returns every definition in registration order.
func (r *Registry) List() []*NodeDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]*NodeDefinition, 0, len(r.order))
	for _, key := range r.order {
		defs = append(defs, r.nodes[key])
	}
	return defs
}

// ListByCategory returns the definitions in one category, in registration
// order.
func (r *Registry) ListByCategory(category string) []*NodeDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var defs []*NodeDefinition
	for _, key := range r.order {
		if def := r.nodes[key]; def.Category == category {
			defs = append(defs, def)
		}
	}
	return defs
}
