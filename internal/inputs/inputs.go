// Package inputs defines the typed input descriptors a node exposes to the
// editor front-end: what widget to render for each input, and how to coerce
// a raw supplied value into the input's legal domain before node logic runs.
//
// Descriptors are immutable after construction and safe to share across
// goroutines without synchronization.
package inputs

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidValue is returned by Enforce when no value was supplied for a
// required input, or when the supplied value cannot be coerced to a number.
// Callers branch with errors.Is.
var ErrInvalidValue = errors.New("invalid value")

// Schema is the serialized UI record of one input. The concrete type is one
// of NumberSchema, DropdownSchema, TextSchema, NoteSchema or MarkerSchema;
// the front-end switches on the Type field ("family::subtype") to pick a
// widget.
type Schema interface {
	// SchemaType returns the "family::subtype" tag, e.g. "number::slider".
	SchemaType() string
}

// Input is one entry in a node's ordered input list. Consumers key off
// ordinal position within the list, not the label.
type Input interface {
	// Label returns the display name shown next to the widget.
	Label() string
	// Optional reports whether execution tolerates an absent value.
	// Enforcement is skipped for optional inputs with no supplied value.
	Optional() bool
	// Schema returns the UI schema record for this input.
	Schema() Schema
}

// Enforcer is implemented by inputs that constrain supplied values.
// Descriptors without enforcement semantics (dropdowns, text, markers)
// do not implement it; their values pass through to the node untouched.
type Enforcer interface {
	// Enforce maps an arbitrary raw value to a value inside the input's
	// legal domain. It is pure and idempotent.
	Enforce(value any) (any, error)
}

// toFloat converts a raw value to float64 for enforcement. JSON decoding
// hands us float64 or json.Number; numeric strings are accepted the way a
// loose front-end would send them.
func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", v.String(), ErrInvalidValue)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", v, ErrInvalidValue)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to number: %w", value, ErrInvalidValue)
	}
}
