package inputs

import (
	"encoding/json"
	"reflect"
	"sort"
	"testing"
)

// marshalToMap round-trips a schema through JSON so tests see exactly what
// the front-end sees.
func marshalToMap(t *testing.T, s Schema) map[string]any {
	t.Helper()
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return m
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestNumberSchema_Keys(t *testing.T) {
	m := marshalToMap(t, NewInteger("Count").Schema())

	want := []string{"def", "hasHandle", "label", "max", "min", "optional", "step", "type"}
	if got := keysOf(m); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys: got %v, want %v", got, want)
	}
	if m["type"] != "number::any" {
		t.Errorf("type: got %v", m["type"])
	}
	if m["hasHandle"] != true {
		t.Errorf("hasHandle: got %v", m["hasHandle"])
	}
	// Unbounded above, no step: both serialize as null, not omitted.
	if m["max"] != nil || m["step"] != nil {
		t.Errorf("max/step: got %v/%v, want null/null", m["max"], m["step"])
	}
	if m["min"] != 0.0 || m["def"] != 0.0 {
		t.Errorf("min/def: got %v/%v, want 0/0", m["min"], m["def"])
	}
}

func TestSliderSchema_Subtype(t *testing.T) {
	m := marshalToMap(t, NewSlider("Opacity", 0, 100, 100, false).Schema())

	if m["type"] != "number::slider" {
		t.Fatalf("type: got %v, want number::slider", m["type"])
	}
	if m["min"] != 0.0 || m["max"] != 100.0 || m["step"] != 1.0 {
		t.Errorf("bounds: got min=%v max=%v step=%v", m["min"], m["max"], m["step"])
	}
}

func TestBoundedNumberSchema_Fields(t *testing.T) {
	m := marshalToMap(t, NewBoundedNumber("Blend", 0.0, 1.0, 0.5, 0.25).Schema())

	if m["min"] != 0.0 || m["max"] != 1.0 || m["def"] != 0.5 || m["step"] != 0.25 {
		t.Fatalf("fields: got %v", m)
	}
}

func TestDropdownSchema(t *testing.T) {
	m := marshalToMap(t, MathOperationsDropdown().Schema())

	if got := keysOf(m); !reflect.DeepEqual(got, []string{"label", "optional", "options", "type"}) {
		t.Fatalf("keys: got %v", got)
	}
	if m["type"] != "dropdown::math-operations" {
		t.Errorf("type: got %v", m["type"])
	}
	opts := m["options"].([]any)
	if len(opts) != 5 {
		t.Fatalf("options: got %d, want 5", len(opts))
	}
	first := opts[0].(map[string]any)
	if first["option"] != "Add (+)" || first["value"] != "add" {
		t.Errorf("first option: got %v", first)
	}
	if m["optional"] != false {
		t.Errorf("optional: got %v", m["optional"])
	}
}

func TestStackOrientationDropdown_Optional(t *testing.T) {
	m := marshalToMap(t, StackOrientationDropdown().Schema())
	if m["type"] != "dropdown::generic" || m["optional"] != true {
		t.Fatalf("got type=%v optional=%v", m["type"], m["optional"])
	}
}

func TestTextSchema(t *testing.T) {
	m := marshalToMap(t, NewText("Filename", true, 0, false).Schema())
	if m["type"] != "text::any" {
		t.Errorf("type: got %v", m["type"])
	}
	if m["maxLength"] != nil {
		t.Errorf("maxLength: got %v, want null", m["maxLength"])
	}

	m = marshalToMap(t, NewText("Caption", false, 120, true).Schema())
	if m["maxLength"] != 120.0 {
		t.Errorf("maxLength: got %v, want 120", m["maxLength"])
	}
	if m["hasHandle"] != false || m["optional"] != true {
		t.Errorf("flags: got %v", m)
	}
}

func TestNoteSchema_Fixed(t *testing.T) {
	m := marshalToMap(t, NewNoteTextArea().Schema())

	want := map[string]any{
		"type":      "textarea::note",
		"label":     "Note Text",
		"resizable": true,
		"hasHandle": false,
		"optional":  true,
	}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("schema: got %v, want %v", m, want)
	}
}

func TestIteratorSchema_Fixed(t *testing.T) {
	m := marshalToMap(t, NewIteratorMarker().Schema())

	want := map[string]any{
		"type":      "iterator::auto",
		"label":     "Auto (Iterator)",
		"hasHandle": false,
		"optional":  true,
	}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("schema: got %v, want %v", m, want)
	}
}

func TestAlphaFillMethodDropdown_NumericValues(t *testing.T) {
	m := marshalToMap(t, AlphaFillMethodDropdown().Schema())
	opts := m["options"].([]any)
	if opts[0].(map[string]any)["value"] != 1.0 || opts[1].(map[string]any)["value"] != 2.0 {
		t.Fatalf("values: got %v", opts)
	}
}
