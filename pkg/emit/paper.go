package emit

// Paper identifies a plotter paper preset. Presets set the canvas
// dimensions at 96 DPI with a margin proportional to the sheet; every
// other option keeps its default.
type Paper int

const (
	// A4 is 210x297 mm portrait.
	A4 Paper = iota
	// A4Landscape is 297x210 mm.
	A4Landscape
	// A3 is 297x420 mm portrait.
	A3
	// A3Landscape is 420x297 mm.
	A3Landscape
	// Letter is 8.5x11 in portrait.
	Letter
	// LetterLandscape is 11x8.5 in.
	LetterLandscape
	// Square is a 1:1 canvas, the default preview shape.
	Square
)

// paperSizes maps each preset to pixel dimensions at 96 DPI.
var paperSizes = map[Paper][2]int{
	A4:              {794, 1123},
	A4Landscape:     {1123, 794},
	A3:              {1123, 1587},
	A3Landscape:     {1587, 1123},
	Letter:          {816, 1056},
	LetterLandscape: {1056, 816},
	Square:          {1000, 1000},
}

// PaperFromName resolves a preset by name ("a4", "a3-landscape",
// "letter", ...). The second return value is false for unknown names.
func PaperFromName(name string) (Paper, bool) {
	switch name {
	case "a4":
		return A4, true
	case "a4-landscape":
		return A4Landscape, true
	case "a3":
		return A3, true
	case "a3-landscape":
		return A3Landscape, true
	case "letter":
		return Letter, true
	case "letter-landscape":
		return LetterLandscape, true
	case "square", "":
		return Square, true
	}
	return 0, false
}

// Options returns SVGOptions for the preset: DefaultSVGOptions with the
// canvas sized to the sheet and a margin of 1/25 of its short side.
func (p Paper) Options() SVGOptions {
	opts := DefaultSVGOptions()
	size, ok := paperSizes[p]
	if !ok {
		return opts
	}
	opts.Width, opts.Height = size[0], size[1]
	short := size[0]
	if size[1] < short {
		short = size[1]
	}
	opts.Margin = short / 25
	return opts
}
