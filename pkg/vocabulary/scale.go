package vocabulary

// The fixed utility-class scale tables. These map the written form of a token
// (scale index or named step) to the pixel or weight value the design system
// resolves it to. They are deliberately independent of the configured
// vocabulary: the extractor resolves syntax through these tables, and the
// evaluator then judges the resolved value against the vocabulary, which
// guards against a scale table and a vocabulary drifting apart.

// spacingIndexPx is the 4px-grid spacing scale: class index → pixels.
var spacingIndexPx = map[int]int{
	0:  0,
	1:  4,
	2:  8,
	3:  12,
	4:  16,
	5:  20,
	6:  24,
	7:  28,
	8:  32,
	9:  36,
	10: 40,
	11: 44,
	12: 48,
	14: 56,
	16: 64,
	20: 80,
	24: 96,
	28: 112,
	32: 128,
}

// textSizePx maps named typography steps to pixels.
var textSizePx = map[string]int{
	"xs":   12,
	"sm":   14,
	"base": 16,
	"lg":   18,
	"xl":   20,
	"2xl":  24,
	"3xl":  32,
	"4xl":  40,
	"5xl":  48,
}

// fontWeightValue maps named weight keywords to their numeric weight.
var fontWeightValue = map[string]int{
	"thin":       100,
	"extralight": 200,
	"light":      300,
	"normal":     400,
	"medium":     500,
	"semibold":   600,
	"bold":       700,
	"extrabold":  800,
	"black":      900,
}

// SpacingIndexToPx resolves a spacing scale index to pixels.
func SpacingIndexToPx(index int) (int, bool) {
	px, ok := spacingIndexPx[index]
	return px, ok
}

// TextSizeToPx resolves a named typography step to pixels.
func TextSizeToPx(name string) (int, bool) {
	px, ok := textSizePx[name]
	return px, ok
}

// FontWeightToValue resolves a named weight keyword to its numeric weight.
func FontWeightToValue(name string) (int, bool) {
	w, ok := fontWeightValue[name]
	return w, ok
}

// IsTextSizeName reports whether name is a named typography step. Used by the
// extractor to tell `text-lg` (size) apart from `text-primary` (color).
func IsTextSizeName(name string) bool {
	_, ok := textSizePx[name]
	return ok
}
