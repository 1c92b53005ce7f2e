package inputs

// Preconfigured dropdowns for common node patterns. Each is a plain
// wrapper around NewDropdown with a literal option table; the values are
// what the front-end sends back and what node logic switches on.

// Alpha fill methods, numeric so image nodes can switch on them directly.
const (
	AlphaFillExtendTexture = 1
	AlphaFillExtendColor   = 2
)

// MathOperationsDropdown selects an arithmetic operation.
func MathOperationsDropdown() *DropdownInput {
	return NewDropdown("math-operations", "Math Operation", []DropdownOption{
		{Option: "Add (+)", Value: "add"},
		{Option: "Subtract (-)", Value: "sub"},
		{Option: "Multiply (×)", Value: "mul"},
		{Option: "Divide (÷)", Value: "div"},
		{Option: "Exponent/Power (^)", Value: "pow"},
	}, false)
}

// StackOrientationDropdown selects how stacked items are laid out.
func StackOrientationDropdown() *DropdownInput {
	return NewDropdown("generic", "Orientation", []DropdownOption{
		{Option: "Horizontal", Value: "horizontal"},
		{Option: "Vertical", Value: "vertical"},
	}, true)
}

// AlphaFillMethodDropdown selects how a new alpha channel is filled.
func AlphaFillMethodDropdown() *DropdownInput {
	return NewDropdown("generic", "Fill method", []DropdownOption{
		{Option: "Extend texture", Value: AlphaFillExtendTexture},
		{Option: "Extend color", Value: AlphaFillExtendColor},
	}, false)
}

// VideoTypeDropdown selects the container format for video output.
func VideoTypeDropdown() *DropdownInput {
	return NewDropdown("generic", "Video Type", []DropdownOption{
		{Option: "MP4", Value: "mp4"},
		{Option: "AVI", Value: "avi"},
		{Option: "None", Value: "none"},
	}, false)
}
