// Package catalog holds the node definitions the editor exposes: each node
// is static data (name, category, ordered input descriptor list) composed
// from the inputs package, plus the enforcement boundary the execution
// layer calls before running node logic.
package catalog

import (
	"fmt"

	"github.com/soochol/nodecanvas/internal/inputs"
)

// NodeDefinition describes one node type. Definitions are built once at
// startup and never mutated.
type NodeDefinition struct {
	Name        string
	Category    string
	Description string
	Inputs      []inputs.Input
}

// Key returns the registry key, "category/name".
func (d *NodeDefinition) Key() string {
	return d.Category + "/" + d.Name
}

// NodeSchema is the serialized form of a node definition sent to the
// front-end.
type NodeSchema struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Inputs      []inputs.Schema `json:"inputs"`
}

// Schema serializes the definition and every input descriptor in order.
func (d *NodeDefinition) Schema() NodeSchema {
	schemas := make([]inputs.Schema, len(d.Inputs))
	for i, in := range d.Inputs {
		schemas[i] = in.Schema()
	}
	return NodeSchema{
		Name:        d.Name,
		Category:    d.Category,
		Description: d.Description,
		Inputs:      schemas,
	}
}

// EnforceValues coerces raw values into each input's legal domain,
// positionally. Optional inputs with no supplied value are skipped and stay
// nil; a required input with no supplied value fails whether or not it has
// enforcement semantics. Supplied values for inputs without enforcement
// semantics pass through untouched. The first failure aborts with the
// input's position wrapped in; a bad value is never silently replaced by a
// default.
func EnforceValues(def *NodeDefinition, raw []any) ([]any, error) {
	if len(raw) != len(def.Inputs) {
		return nil, fmt.Errorf("node %q expects %d values, got %d", def.Key(), len(def.Inputs), len(raw))
	}
	out := make([]any, len(raw))
	for i, in := range def.Inputs {
		value := raw[i]
		if value == nil && in.Optional() {
			continue
		}
		enf, ok := in.(inputs.Enforcer)
		if !ok {
			if value == nil {
				return nil, fmt.Errorf("enforce input %d: %q: no value supplied: %w", i, in.Label(), inputs.ErrInvalidValue)
			}
			out[i] = value
			continue
		}
		coerced, err := enf.Enforce(value)
		if err != nil {
			return nil, fmt.Errorf("enforce input %d: %w", i, err)
		}
		out[i] = coerced
	}
	return out, nil
}
