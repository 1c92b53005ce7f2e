package catalog

import "github.com/soochol/nodecanvas/internal/inputs"

// Builtin returns a registry populated with the stock node set. Each call
// builds a fresh registry; definitions inside it are shared immutable data.
func Builtin() *Registry {
	r := NewRegistry()

	r.Register(&NodeDefinition{
		Name:        "Arithmetic",
		Category:    "Math",
		Description: "Perform an arithmetic operation on two numbers.",
		Inputs: []inputs.Input{
			inputs.NewBoundlessInteger("Operand A"),
			inputs.MathOperationsDropdown(),
			inputs.NewBoundlessInteger("Operand B"),
		},
	})

	r.Register(&NodeDefinition{
		Name:        "Blur",
		Category:    "Filter",
		Description: "Apply a box blur. The kernel size must be odd.",
		Inputs: []inputs.Input{
			inputs.NewOddInteger("Kernel Size", 1, 1),
		},
	})

	r.Register(&NodeDefinition{
		Name:        "Threshold",
		Category:    "Filter",
		Description: "Binarize an image against a percentage threshold.",
		Inputs: []inputs.Input{
			inputs.NewBoundedInteger("Threshold", 0, 100, 50, false),
			inputs.NewBoundedNumber("Softness", 0.0, 1.0, 0.5, 0.25),
		},
	})

	r.Register(&NodeDefinition{
		Name:        "Brightness",
		Category:    "Adjust",
		Description: "Shift image brightness.",
		Inputs: []inputs.Input{
			inputs.NewSlider("Amount", -100, 100, 0, false),
		},
	})

	r.Register(&NodeDefinition{
		Name:        "Crop Offset",
		Category:    "Adjust",
		Description: "Crop an image relative to an anchor point.",
		Inputs: []inputs.Input{
			inputs.NewBoundlessInteger("X Offset"),
			inputs.NewBoundlessInteger("Y Offset"),
			inputs.NewInteger("Width"),
			inputs.NewInteger("Height"),
		},
	})

	r.Register(&NodeDefinition{
		Name:        "Fill Alpha",
		Category:    "Adjust",
		Description: "Fill transparent areas of an image.",
		Inputs: []inputs.Input{
			inputs.AlphaFillMethodDropdown(),
		},
	})

	r.Register(&NodeDefinition{
		Name:        "Stack",
		Category:    "Compose",
		Description: "Stack images side by side or top to bottom.",
		Inputs: []inputs.Input{
			inputs.StackOrientationDropdown(),
			inputs.NewBoundedNumber("Gap", 0.0, 1.0, 0.0, 0.05),
		},
	})

	r.Register(&NodeDefinition{
		Name:        "Scale",
		Category:    "Resize",
		Description: "Scale an image by a factor.",
		Inputs: []inputs.Input{
			inputs.NewNumber("Factor", 1.0, 0.0, 0.25),
		},
	})

	r.Register(&NodeDefinition{
		Name:        "Save Video",
		Category:    "Output",
		Description: "Write frames out as a video file.",
		Inputs: []inputs.Input{
			inputs.NewIteratorMarker(),
			inputs.NewText("Directory", true, 0, false),
			inputs.NewText("Filename", true, 128, false),
			inputs.VideoTypeDropdown(),
		},
	})

	r.Register(&NodeDefinition{
		Name:        "Note",
		Category:    "Utility",
		Description: "Free-form annotation pinned to the graph.",
		Inputs: []inputs.Input{
			inputs.NewNoteTextArea(),
		},
	})

	return r
}
