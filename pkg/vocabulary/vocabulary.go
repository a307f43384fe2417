// Package vocabulary holds the design specification the engine scans against:
// the allowed spacing grid, typography scale, weight set, semantic color-token
// names, and curated control heights.
//
// A Vocabulary is built once per run, validated up front, and only read after
// that. Concurrent readers need no synchronization.
package vocabulary

// Vocabulary is the immutable compliance specification.
type Vocabulary struct {
	spacing          map[int]bool
	spacingDivisors  []int
	fontSizes        map[int]bool
	maxFontSize      int
	fontWeights      map[int]bool
	colorTokens      map[string]bool
	componentHeights map[int]bool
}

// IsAllowedSpacing reports whether a scale-resolved spacing value is
// compliant: member of the curated set, or divisible by one of the grid
// divisors. Zero is always allowed. Escape-hatch literals never reach this
// predicate; the evaluator rejects them before lookup.
func (v *Vocabulary) IsAllowedSpacing(px int) bool {
	if px == 0 {
		return true
	}
	if v.spacing[px] {
		return true
	}
	for _, d := range v.spacingDivisors {
		if px%d == 0 {
			return true
		}
	}
	return false
}

// IsAllowedFontSize reports membership in the typography scale, capped by the
// configured maximum.
func (v *Vocabulary) IsAllowedFontSize(px int) bool {
	return v.fontSizes[px] && px <= v.maxFontSize
}

// FontSizeOnScale reports membership in the typography scale ignoring the
// cap. Lets callers tell an off-scale size apart from an on-scale size that
// is merely too large.
func (v *Vocabulary) FontSizeOnScale(px int) bool {
	return v.fontSizes[px]
}

// IsAllowedFontWeight is strict set membership. No divisibility fallback.
func (v *Vocabulary) IsAllowedFontWeight(w int) bool {
	return v.fontWeights[w]
}

// IsAllowedColorToken reports whether name is part of the semantic role
// vocabulary. Literal colors are rejected elsewhere and never consult this.
func (v *Vocabulary) IsAllowedColorToken(name string) bool {
	return v.colorTokens[name]
}

// IsAllowedComponentHeight is strict set membership. Control heights are a
// curated list, not an open grid, so divisibility does not apply.
func (v *Vocabulary) IsAllowedComponentHeight(px int) bool {
	return v.componentHeights[px]
}

// MaxFontSize returns the configured font size cap.
func (v *Vocabulary) MaxFontSize() int {
	return v.maxFontSize
}

// SpacingValues returns the curated spacing set in ascending order.
func (v *Vocabulary) SpacingValues() []int {
	return sortedKeys(v.spacing)
}

// FontSizeValues returns allowed font sizes in ascending order, already
// filtered by the cap.
func (v *Vocabulary) FontSizeValues() []int {
	var out []int
	for _, px := range sortedKeys(v.fontSizes) {
		if px <= v.maxFontSize {
			out = append(out, px)
		}
	}
	return out
}

// FontWeightValues returns allowed weights in ascending order.
func (v *Vocabulary) FontWeightValues() []int {
	return sortedKeys(v.fontWeights)
}

// ComponentHeightValues returns allowed control heights in ascending order.
func (v *Vocabulary) ComponentHeightValues() []int {
	return sortedKeys(v.componentHeights)
}

// ColorTokenNames returns the semantic vocabulary in lexical order.
func (v *Vocabulary) ColorTokenNames() []string {
	return sortedStringKeys(v.colorTokens)
}
