package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/tokenlint/pkg/compliance"
	"github.com/gnana997/tokenlint/pkg/extractor"
	"github.com/gnana997/tokenlint/pkg/rules"
	"github.com/gnana997/tokenlint/pkg/vocabulary"
)

func defaultVocab(t *testing.T) *vocabulary.Vocabulary {
	t.Helper()
	return vocabulary.Default()
}

func spacingTok(raw string, px int, escape bool) extractor.CandidateToken {
	return extractor.CandidateToken{
		RawText:       raw,
		Category:      compliance.CategorySpacing,
		NumericValue:  px,
		HasNumeric:    true,
		IsEscapeHatch: escape,
		Line:          1,
		Column:        1,
		FilePath:      "page.tsx",
	}
}

func colorTok(raw, name string, escape bool) extractor.CandidateToken {
	return extractor.CandidateToken{
		RawText:       raw,
		Category:      compliance.CategoryColor,
		SemanticName:  name,
		IsEscapeHatch: escape,
		Line:          1,
		Column:        1,
		FilePath:      "page.tsx",
	}
}

func TestEvaluate_SpacingOnScaleClean(t *testing.T) {
	vocab := defaultVocab(t)
	_, bad := Evaluate(spacingTok("p-4", 16, false), vocab)
	assert.False(t, bad)
}

func TestEvaluate_SpacingEscapeHatchAlwaysViolates(t *testing.T) {
	vocab := defaultVocab(t)

	// 24px is a valid scale value; the bracketed form is still rejected.
	v, bad := Evaluate(spacingTok("p-[24px]", 24, true), vocab)
	require.True(t, bad)
	assert.Equal(t, rules.SpacingArbitraryValue, v.RuleID)
	assert.Equal(t, compliance.SeverityError, v.Severity)
	assert.Equal(t, "24", v.SuggestedFix)

	v, bad = Evaluate(spacingTok("p-[25px]", 25, true), vocab)
	require.True(t, bad)
	assert.Equal(t, "24", v.SuggestedFix)
	assert.Contains(t, v.Message, `"p-[25px]"`)
}

func TestEvaluate_SpacingNearestTieBreaksSmaller(t *testing.T) {
	vocab := defaultVocab(t)

	// 36 is equidistant from 32 and 40; the smaller wins.
	v, bad := Evaluate(spacingTok("m-[36px]", 36, true), vocab)
	require.True(t, bad)
	assert.Equal(t, "32", v.SuggestedFix)
}

func TestEvaluate_SpacingDivisibilityFallback(t *testing.T) {
	custom, err := vocabulary.New(vocabulary.Config{SpacingScale: []int{4, 8, 16}})
	require.NoError(t, err)

	// 24 is off the configured set but divisible by 8.
	_, bad := Evaluate(spacingTok("p-6", 24, false), custom)
	assert.False(t, bad)

	// 18 is neither on the set nor divisible.
	v, bad := Evaluate(spacingTok("p-[18px]", 18, true), custom)
	require.True(t, bad)
	assert.Equal(t, rules.SpacingArbitraryValue, v.RuleID)
	assert.Equal(t, "16", v.SuggestedFix)
}

func TestEvaluate_FontSizeArbitrary(t *testing.T) {
	vocab := defaultVocab(t)

	tok := extractor.CandidateToken{
		RawText:       "text-[22px]",
		Category:      compliance.CategoryTypographySize,
		NumericValue:  22,
		HasNumeric:    true,
		IsEscapeHatch: true,
	}
	v, bad := Evaluate(tok, vocab)
	require.True(t, bad)
	assert.Equal(t, rules.FontSizeArbitrary, v.RuleID)
	assert.Equal(t, compliance.SeverityError, v.Severity)
	// 22 sits between 20 and 24; tie breaks toward 20.
	assert.Equal(t, "20", v.SuggestedFix)
}

func TestEvaluate_FontSizeTooLarge(t *testing.T) {
	custom, err := vocabulary.New(vocabulary.Config{MaxFontSize: 24})
	require.NoError(t, err)

	// 32 is a scale step but above the cap: warning, fix is the cap.
	tok := extractor.CandidateToken{
		RawText:      "text-3xl",
		Category:     compliance.CategoryTypographySize,
		NumericValue: 32,
		HasNumeric:   true,
	}
	v, bad := Evaluate(tok, custom)
	require.True(t, bad)
	assert.Equal(t, rules.FontSizeTooLarge, v.RuleID)
	assert.Equal(t, compliance.SeverityWarning, v.Severity)
	assert.Equal(t, "24", v.SuggestedFix)
}

func TestEvaluate_FontSizeOffScale(t *testing.T) {
	vocab := defaultVocab(t)

	tok := extractor.CandidateToken{
		RawText:      "text-huge",
		Category:     compliance.CategoryTypographySize,
		NumericValue: 17,
		HasNumeric:   true,
	}
	v, bad := Evaluate(tok, vocab)
	require.True(t, bad)
	assert.Equal(t, rules.FontSizeOffScale, v.RuleID)
	assert.Equal(t, compliance.SeverityError, v.Severity)
	assert.Equal(t, "16", v.SuggestedFix)
}

func TestEvaluate_FontWeightOffSet(t *testing.T) {
	vocab := defaultVocab(t)

	// font-light resolves to 300, not in {400,500,600,700}.
	tok := extractor.CandidateToken{
		RawText:      "font-light",
		Category:     compliance.CategoryTypographyWeight,
		NumericValue: 300,
		HasNumeric:   true,
	}
	v, bad := Evaluate(tok, vocab)
	require.True(t, bad)
	assert.Equal(t, rules.FontWeightOffScale, v.RuleID)
	assert.Equal(t, "400", v.SuggestedFix)

	// Escape hatch with a numeric weight suggests the nearest allowed one.
	tok.RawText = "font-[650]"
	tok.NumericValue = 650
	tok.IsEscapeHatch = true
	v, bad = Evaluate(tok, vocab)
	require.True(t, bad)
	assert.Equal(t, "600", v.SuggestedFix)
}

func TestEvaluate_FontWeightAllowedClean(t *testing.T) {
	vocab := defaultVocab(t)
	tok := extractor.CandidateToken{
		RawText:      "font-medium",
		Category:     compliance.CategoryTypographyWeight,
		NumericValue: 500,
		HasNumeric:   true,
	}
	_, bad := Evaluate(tok, vocab)
	assert.False(t, bad)
}

func TestEvaluate_ColorLiteralNamed(t *testing.T) {
	vocab := defaultVocab(t)

	v, bad := Evaluate(colorTok("text-white", "white", false), vocab)
	require.True(t, bad)
	assert.Equal(t, rules.ColorLiteral, v.RuleID)
	assert.Equal(t, compliance.SeverityError, v.Severity)
	assert.Equal(t, "background", v.SuggestedFix)

	v, bad = Evaluate(colorTok("bg-black", "black", false), vocab)
	require.True(t, bad)
	assert.Equal(t, "foreground", v.SuggestedFix)
}

func TestEvaluate_ColorLiteralScaleStep(t *testing.T) {
	vocab := defaultVocab(t)

	v, bad := Evaluate(colorTok("bg-gray-200", "gray-200", false), vocab)
	require.True(t, bad)
	assert.Equal(t, rules.ColorLiteral, v.RuleID)
	assert.Equal(t, "muted", v.SuggestedFix)

	v, bad = Evaluate(colorTok("text-zinc-600", "zinc-600", false), vocab)
	require.True(t, bad)
	assert.Equal(t, "muted-foreground", v.SuggestedFix)

	// Non-neutral families get the generic suggestion.
	v, bad = Evaluate(colorTok("bg-blue-500", "blue-500", false), vocab)
	require.True(t, bad)
	assert.Equal(t, "use a semantic color token", v.SuggestedFix)
}

func TestEvaluate_ColorEscapeHatchHex(t *testing.T) {
	vocab := defaultVocab(t)

	v, bad := Evaluate(colorTok("bg-[#ffffff]", "#ffffff", true), vocab)
	require.True(t, bad)
	assert.Equal(t, rules.ColorLiteral, v.RuleID)
	assert.Equal(t, "background", v.SuggestedFix)

	v, bad = Evaluate(colorTok("bg-[#000000]", "#000000", true), vocab)
	require.True(t, bad)
	assert.Equal(t, "foreground", v.SuggestedFix)
}

func TestEvaluate_ColorSemanticTokenClean(t *testing.T) {
	vocab := defaultVocab(t)

	for _, name := range []string{"primary", "muted-foreground", "destructive", "border"} {
		_, bad := Evaluate(colorTok("bg-"+name, name, false), vocab)
		assert.False(t, bad, name)
	}
}

func TestEvaluate_ColorUnknownTokenWarns(t *testing.T) {
	vocab := defaultVocab(t)

	v, bad := Evaluate(colorTok("bg-brand", "brand", false), vocab)
	require.True(t, bad)
	assert.Equal(t, rules.ColorUnknownToken, v.RuleID)
	assert.Equal(t, compliance.SeverityWarning, v.Severity)
	assert.Equal(t, "use a semantic color token", v.SuggestedFix)
}

func TestEvaluate_HeightStrictSet(t *testing.T) {
	vocab := defaultVocab(t)

	mk := func(raw string, px int, escape bool) extractor.CandidateToken {
		return extractor.CandidateToken{
			RawText:       raw,
			Category:      compliance.CategoryComponentHeight,
			NumericValue:  px,
			HasNumeric:    true,
			IsEscapeHatch: escape,
		}
	}

	_, bad := Evaluate(mk("h-10", 40, false), vocab)
	assert.False(t, bad)

	// 44 is divisible by 4 but not an allowed height; no fallback.
	v, bad := Evaluate(mk("h-11", 44, false), vocab)
	require.True(t, bad)
	assert.Equal(t, rules.HeightOffScale, v.RuleID)
	assert.Equal(t, compliance.SeverityError, v.Severity)
	assert.Equal(t, "40", v.SuggestedFix)

	v, bad = Evaluate(mk("h-[44px]", 44, true), vocab)
	require.True(t, bad)
	assert.Equal(t, rules.HeightArbitrary, v.RuleID)
	assert.Equal(t, "40", v.SuggestedFix)
}

func TestEvaluateAll_PreservesOrder(t *testing.T) {
	vocab := defaultVocab(t)

	tokens := []extractor.CandidateToken{
		colorTok("text-white", "white", false),
		spacingTok("p-[25px]", 25, true),
	}
	tokens[0].Line, tokens[0].Column = 1, 5
	tokens[1].Line, tokens[1].Column = 1, 20

	violations := EvaluateAll(tokens, vocab)
	require.Len(t, violations, 2)
	assert.Equal(t, rules.ColorLiteral, violations[0].RuleID)
	assert.Equal(t, rules.SpacingArbitraryValue, violations[1].RuleID)
}

func TestViolation_CarriesProvenance(t *testing.T) {
	vocab := defaultVocab(t)

	tok := spacingTok("p-[25px]", 25, true)
	tok.Line = 12
	tok.Column = 34

	v, bad := Evaluate(tok, vocab)
	require.True(t, bad)
	assert.Equal(t, "page.tsx", v.FilePath)
	assert.Equal(t, 12, v.Line)
	assert.Equal(t, 34, v.Column)
	assert.Equal(t, "p-[25px]", v.MatchedText)
	assert.Equal(t, compliance.CategorySpacing, v.Category)
}
