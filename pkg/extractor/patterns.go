package extractor

import "regexp"

// The per-category token grammars. Each pattern captures either a bracketed
// arbitrary value (group 1) or a plain suffix (group 2). Alternations are
// ordered longest-first so "gap-x" wins over "gap".

var (
	spacingPattern = regexp.MustCompile(
		`\b(?:gap-x|gap-y|gap|px|py|pt|pr|pb|pl|p|mx|my|mt|mr|mb|ml|m)-(?:\[([^\]\s]+)\]|(\d+)\b)`)

	// text- serves both the typography scale (text-lg) and color utilities
	// (text-white, text-primary); extraction dispatches on the suffix.
	// The plain suffix admits a leading digit for the 2xl..5xl steps.
	textPattern = regexp.MustCompile(
		`\btext-(?:\[([^\]\s]+)\]|([0-9]?[a-z][a-z0-9-]*))`)

	fontPattern = regexp.MustCompile(
		`\bfont-(?:\[([^\]\s]+)\]|([a-z]+)\b)`)

	colorPattern = regexp.MustCompile(
		`\b(bg|border)-(?:\[([^\]\s]+)\]|([a-z][a-z0-9-]*))`)

	heightPattern = regexp.MustCompile(
		`\bh-(?:\[([^\]\s]+)\]|(\d+)\b)`)

	// bracketValue parses bracketed length literals like "25px" or "1.5rem".
	bracketValue = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)(px|rem|em)?$`)

	// controlContext marks a line as opening an interactive control, which is
	// what makes a nearby h- utility a component-height candidate.
	controlContext = regexp.MustCompile(
		`<(?:button|Button|a\s|input|select|textarea|[A-Z][A-Za-z]*(?:Button|Input|Select|Trigger))\b|role="button"`)
)

// textStopWords are text- suffixes that are neither typography steps nor
// color tokens (alignment, overflow, wrapping utilities).
var textStopWords = map[string]bool{
	"left":     true,
	"center":   true,
	"right":    true,
	"justify":  true,
	"start":    true,
	"end":      true,
	"balance":  true,
	"pretty":   true,
	"wrap":     true,
	"nowrap":   true,
	"clip":     true,
	"ellipsis": true,
	"truncate": true,
}

// fontStopWords are font- suffixes that are family or style utilities,
// not weights.
var fontStopWords = map[string]bool{
	"sans":    true,
	"serif":   true,
	"mono":    true,
	"italic":  true,
	"stretch": true,
}

// bgStopWords are bg- suffixes that are attachment/position/size utilities,
// not colors.
var bgStopWords = map[string]bool{
	"none":      true,
	"auto":      true,
	"cover":     true,
	"contain":   true,
	"center":    true,
	"top":       true,
	"bottom":    true,
	"left":      true,
	"right":     true,
	"fixed":     true,
	"local":     true,
	"scroll":    true,
	"repeat":    true,
	"no-repeat": true,
}

// bgStopPrefixes catch multi-segment non-color bg utilities
// (bg-gradient-to-r, bg-clip-text, bg-origin-border, bg-blend-multiply).
var bgStopPrefixes = []string{"gradient-", "clip-", "origin-", "blend-", "repeat-"}

// borderStopWords are border- suffixes that are style/behavior utilities,
// not colors.
var borderStopWords = map[string]bool{
	"solid":    true,
	"dashed":   true,
	"dotted":   true,
	"double":   true,
	"hidden":   true,
	"none":     true,
	"collapse": true,
	"separate": true,
}

// borderSides are the single-letter side segments of border utilities
// (border-t-2, border-x-primary).
var borderSides = map[string]bool{
	"t": true, "r": true, "b": true, "l": true,
	"x": true, "y": true, "s": true, "e": true,
}
