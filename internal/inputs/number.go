package inputs

import "fmt"

// numberPolicy selects the clamp/coercion rule a numeric input applies in
// Enforce. All policies share the NumberInput record shape; only the rule
// differs.
type numberPolicy int

const (
	// floorFloat keeps the value as a float and clamps it below.
	floorFloat numberPolicy = iota
	// floorInt truncates to an integer, then clamps it below.
	floorInt
	// rangeFloat keeps the value as a float and clamps it to [min, max].
	rangeFloat
	// rangeInt truncates to an integer, then clamps it to [min, max].
	rangeInt
	// oddInt truncates to an integer, rounds down to the nearest odd
	// integer, then clamps it below.
	oddInt
	// freeInt truncates to an integer with no clamping.
	freeInt
)

// NumberInput is a numeric input descriptor. The seven constructors below
// cover the widget variants; they differ only in bounds, serialized subtype
// and enforcement policy.
type NumberInput struct {
	label    string
	subtype  string
	min      *float64
	max      *float64
	def      any
	step     *float64
	optional bool
	policy   numberPolicy
}

// NumberSchema is the serialized record for every numeric variant. Min,
// Max and Step are null when unbounded/absent; Step is presentational
// only and never enforced on values.
type NumberSchema struct {
	Type      string   `json:"type"`
	Label     string   `json:"label"`
	Min       *float64 `json:"min"`
	Max       *float64 `json:"max"`
	Def       any      `json:"def"`
	Step      *float64 `json:"step"`
	HasHandle bool     `json:"hasHandle"`
	Optional  bool     `json:"optional"`
}

func (s NumberSchema) SchemaType() string { return s.Type }

func ptr(f float64) *float64 { return &f }

// NewNumber returns a float input clamped below by min. Values above min
// pass through unchanged; there is no upper bound.
func NewNumber(label string, def, min, step float64) *NumberInput {
	return &NumberInput{label: label, subtype: "any", min: ptr(min), def: def, step: ptr(step), policy: floorFloat}
}

// NewInteger returns a non-negative integer input with no upper bound and
// no step (the widget free-types).
func NewInteger(label string) *NumberInput {
	return &NumberInput{label: label, subtype: "any", min: ptr(0), def: 0, policy: floorInt}
}

// NewBoundedNumber returns a float input clamped to [min, max].
// min <= max and min <= def <= max are construction-time contracts of the
// node definition, not checked here.
func NewBoundedNumber(label string, min, max, def, step float64) *NumberInput {
	return &NumberInput{label: label, subtype: "any", min: ptr(min), max: ptr(max), def: def, step: ptr(step), policy: rangeFloat}
}

// NewOddInteger returns an odd-integer input clamped below by min.
// Enforcement always rounds a supplied even integer down (4 becomes 3,
// never 5); the downward tie-break is deliberate and must stay stable so
// repeated runs of a node graph coerce identically.
func NewOddInteger(label string, def, min int) *NumberInput {
	return &NumberInput{label: label, subtype: "any", min: ptr(float64(min)), def: def, step: ptr(2), policy: oddInt}
}

// NewBoundedInteger returns an integer input clamped to [min, max].
func NewBoundedInteger(label string, min, max, def int, optional bool) *NumberInput {
	return &NumberInput{label: label, subtype: "any", min: ptr(float64(min)), max: ptr(float64(max)), def: def, step: ptr(1), optional: optional, policy: rangeInt}
}

// NewBoundlessInteger returns an integer input with no bounds at all.
func NewBoundlessInteger(label string) *NumberInput {
	return &NumberInput{label: label, subtype: "any", def: 0, step: ptr(1), policy: freeInt}
}

// NewSlider returns an integer input rendered as a slider. Enforcement is
// identical to NewBoundedInteger; only the serialized subtype differs.
func NewSlider(label string, min, max, def int, optional bool) *NumberInput {
	return &NumberInput{label: label, subtype: "slider", min: ptr(float64(min)), max: ptr(float64(max)), def: def, step: ptr(1), optional: optional, policy: rangeInt}
}

func (n *NumberInput) Label() string  { return n.label }
func (n *NumberInput) Optional() bool { return n.optional }

func (n *NumberInput) Schema() Schema {
	return NumberSchema{
		Type:      "number::" + n.subtype,
		Label:     n.label,
		Min:       n.min,
		Max:       n.max,
		Def:       n.def,
		Step:      n.step,
		HasHandle: true,
		Optional:  n.optional,
	}
}

// Enforce coerces value into the input's numeric domain. Integer policies
// truncate toward zero before clamping, so clamp comparisons happen in the
// target domain and fractional bounds never leak into an integer result.
// Returns an int for integer policies and a float64 for float policies.
func (n *NumberInput) Enforce(value any) (any, error) {
	if value == nil {
		return nil, fmt.Errorf("%q: no value supplied: %w", n.label, ErrInvalidValue)
	}
	f, err := toFloat(value)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", n.label, err)
	}

	switch n.policy {
	case floorFloat:
		if n.min != nil && f < *n.min {
			f = *n.min
		}
		return f, nil

	case rangeFloat:
		if n.min != nil && f < *n.min {
			f = *n.min
		}
		if n.max != nil && f > *n.max {
			f = *n.max
		}
		return f, nil

	case floorInt:
		v := int(f)
		if m := int(*n.min); v < m {
			v = m
		}
		return v, nil

	case rangeInt:
		v := int(f)
		if m := int(*n.min); v < m {
			v = m
		}
		if m := int(*n.max); v > m {
			v = m
		}
		return v, nil

	case oddInt:
		// Largest odd integer <= value: even truncations round down,
		// so 4 -> 3 and 5 -> 5. Then apply the lower bound. Parity uses
		// the non-negative remainder so negatives round down too.
		v := int(f)
		r := v % 2
		if r < 0 {
			r += 2
		}
		if r == 0 {
			v--
		}
		if m := int(*n.min); v < m {
			v = m
		}
		return v, nil

	case freeInt:
		return int(f), nil

	default:
		return nil, fmt.Errorf("%q: unknown number policy %d", n.label, n.policy)
	}
}
