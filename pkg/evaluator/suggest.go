package evaluator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// scaleColor matches numeric palette utilities like gray-500 or blue-300.
var scaleColor = regexp.MustCompile(`^([a-z]+)-([0-9]{2,3})$`)

// grayFamilies are the neutral palette families whose numeric steps map onto
// the muted tokens.
var grayFamilies = map[string]bool{
	"gray":    true,
	"grey":    true,
	"slate":   true,
	"zinc":    true,
	"neutral": true,
	"stone":   true,
}

// isLiteralColor reports whether name is literal color syntax: a named CSS
// color keyword, a numeric palette step, or raw hex/rgb/hsl. Literal colors
// are rejected unconditionally, even when their rendered value equals an
// allowed semantic token's underlying value.
func isLiteralColor(name string) bool {
	if strings.HasPrefix(name, "#") ||
		strings.HasPrefix(name, "rgb") ||
		strings.HasPrefix(name, "hsl") {
		return true
	}
	if scaleColor.MatchString(name) {
		return true
	}
	// csscolorparser knows every CSS named color keyword.
	if _, err := csscolorparser.Parse(name); err == nil {
		return true
	}
	return false
}

// suggestSemanticToken maps a literal color to the semantic token a compliant
// rendition would use. Unresolvable literals get the generic suggestion.
func suggestSemanticToken(name string) string {
	switch name {
	case "white":
		return "background"
	case "black":
		return "foreground"
	}

	if m := scaleColor.FindStringSubmatch(name); m != nil {
		if !grayFamilies[m[1]] {
			return "use a semantic color token"
		}
		step, err := strconv.Atoi(m[2])
		if err != nil {
			return "use a semantic color token"
		}
		// Light neutrals read as surfaces, dark ones as de-emphasized text.
		if step <= 400 {
			return "muted"
		}
		return "muted-foreground"
	}

	// Hex, rgb()/hsl(), and named keywords: bucket by perceived lightness.
	c, err := csscolorparser.Parse(name)
	if err != nil {
		return "use a semantic color token"
	}
	r, g, b, _ := c.RGBA255()
	if r == 255 && g == 255 && b == 255 {
		return "background"
	}
	if r == 0 && g == 0 && b == 0 {
		return "foreground"
	}
	cf := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	l, _, _ := cf.Lab()
	if l >= 0.5 {
		return "muted"
	}
	return "muted-foreground"
}
