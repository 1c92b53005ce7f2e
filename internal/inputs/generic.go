package inputs

// DropdownOption is one selectable entry. Option is the label the widget
// shows; Value is the opaque value handed to the node. Order is
// significant: consumers may treat the first entry as the implicit default.
type DropdownOption struct {
	Option string `json:"option"`
	Value  any    `json:"value"`
}

// DropdownInput is a select widget over a fixed option list. It carries no
// enforcement: whether a supplied value is one of the options is checked by
// the consumer, not here.
type DropdownInput struct {
	subtype  string
	label    string
	options  []DropdownOption
	optional bool
}

// DropdownSchema is the serialized record for dropdown variants.
type DropdownSchema struct {
	Type     string           `json:"type"`
	Label    string           `json:"label"`
	Options  []DropdownOption `json:"options"`
	Optional bool             `json:"optional"`
}

func (s DropdownSchema) SchemaType() string { return s.Type }

// NewDropdown returns a dropdown input. subtype distinguishes widget
// flavors on the front-end ("generic" for plain selects).
func NewDropdown(subtype, label string, options []DropdownOption, optional bool) *DropdownInput {
	return &DropdownInput{subtype: subtype, label: label, options: options, optional: optional}
}

func (d *DropdownInput) Label() string  { return d.label }
func (d *DropdownInput) Optional() bool { return d.optional }

func (d *DropdownInput) Schema() Schema {
	return DropdownSchema{
		Type:     "dropdown::" + d.subtype,
		Label:    d.label,
		Options:  d.options,
		Optional: d.optional,
	}
}

// TextInput is a free-form text input. maxLength zero means unlimited; the
// limit is a hint for the widget, not enforced on values here.
type TextInput struct {
	label     string
	hasHandle bool
	maxLength int
	optional  bool
}

// TextSchema is the serialized record for text inputs. MaxLength is null
// when the input is unlimited.
type TextSchema struct {
	Type      string `json:"type"`
	Label     string `json:"label"`
	HasHandle bool   `json:"hasHandle"`
	MaxLength *int   `json:"maxLength"`
	Optional  bool   `json:"optional"`
}

func (s TextSchema) SchemaType() string { return s.Type }

// NewText returns a text input. hasHandle controls whether another node's
// output can be wired in; maxLength <= 0 means unlimited.
func NewText(label string, hasHandle bool, maxLength int, optional bool) *TextInput {
	return &TextInput{label: label, hasHandle: hasHandle, maxLength: maxLength, optional: optional}
}

func (t *TextInput) Label() string  { return t.label }
func (t *TextInput) Optional() bool { return t.optional }

func (t *TextInput) Schema() Schema {
	s := TextSchema{
		Type:      "text::any",
		Label:     t.label,
		HasHandle: t.hasHandle,
		Optional:  t.optional,
	}
	if t.maxLength > 0 {
		n := t.maxLength
		s.MaxLength = &n
	}
	return s
}

// NoteInput is a free-form annotation attached to a node rather than a
// functional input: always optional, never wired, fixed label.
type NoteInput struct{}

// NoteSchema is the serialized record for the note text area.
type NoteSchema struct {
	Type      string `json:"type"`
	Label     string `json:"label"`
	Resizable bool   `json:"resizable"`
	HasHandle bool   `json:"hasHandle"`
	Optional  bool   `json:"optional"`
}

func (s NoteSchema) SchemaType() string { return s.Type }

// NewNoteTextArea returns the note annotation input.
func NewNoteTextArea() *NoteInput { return &NoteInput{} }

func (*NoteInput) Label() string  { return "Note Text" }
func (*NoteInput) Optional() bool { return true }

func (*NoteInput) Schema() Schema {
	return NoteSchema{
		Type:      "textarea::note",
		Label:     "Note Text",
		Resizable: true,
		HasHandle: false,
		Optional:  true,
	}
}

// IteratorInput is a structural placeholder telling the UI that an
// enclosing iteration construct populates this input automatically. It has
// no enforcement semantics at all.
type IteratorInput struct{}

// MarkerSchema is the serialized record for structural marker inputs.
type MarkerSchema struct {
	Type      string `json:"type"`
	Label     string `json:"label"`
	HasHandle bool   `json:"hasHandle"`
	Optional  bool   `json:"optional"`
}

func (s MarkerSchema) SchemaType() string { return s.Type }

// NewIteratorMarker returns the auto-populated iterator placeholder.
func NewIteratorMarker() *IteratorInput { return &IteratorInput{} }

func (*IteratorInput) Label() string  { return "Auto (Iterator)" }
func (*IteratorInput) Optional() bool { return true }

func (*IteratorInput) Schema() Schema {
	return MarkerSchema{
		Type:      "iterator::auto",
		Label:     "Auto (Iterator)",
		HasHandle: false,
		Optional:  true,
	}
}
