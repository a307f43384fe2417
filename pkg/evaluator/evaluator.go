// Package evaluator maps candidate tokens through the vocabulary predicates
// and constructs violations when a check fails.
//
// Evaluation is a pure function of (candidate, vocabulary): no side effects,
// no shared state, which is what makes the per-file fan-out in the scanner
// trivially safe.
package evaluator

import (
	"strconv"

	"github.com/gnana997/tokenlint/pkg/compliance"
	"github.com/gnana997/tokenlint/pkg/extractor"
	"github.com/gnana997/tokenlint/pkg/rules"
	"github.com/gnana997/tokenlint/pkg/vocabulary"
)

// EvaluateAll judges every candidate in order. Input order is preserved, so
// violations on the same line come out left to right.
func EvaluateAll(tokens []extractor.CandidateToken, vocab *vocabulary.Vocabulary) []compliance.Violation {
	var out []compliance.Violation
	for _, tok := range tokens {
		if v, bad := Evaluate(tok, vocab); bad {
			out = append(out, v)
		}
	}
	return out
}

// Evaluate judges one candidate. The second return is false when the
// candidate is compliant or could not be classified; misclassification must
// never surface as a spurious violation.
func Evaluate(tok extractor.CandidateToken, vocab *vocabulary.Vocabulary) (compliance.Violation, bool) {
	switch tok.Category {
	case compliance.CategorySpacing:
		return evaluateSpacing(tok, vocab)
	case compliance.CategoryTypographySize:
		return evaluateFontSize(tok, vocab)
	case compliance.CategoryTypographyWeight:
		return evaluateFontWeight(tok, vocab)
	case compliance.CategoryColor:
		return evaluateColor(tok, vocab)
	case compliance.CategoryComponentHeight:
		return evaluateHeight(tok, vocab)
	}
	return compliance.Violation{}, false
}

func evaluateSpacing(tok extractor.CandidateToken, vocab *vocabulary.Vocabulary) (compliance.Violation, bool) {
	if tok.IsEscapeHatch {
		// Escape hatches bypass the scale on purpose; divisibility does not
		// redeem them.
		fix := "use a spacing scale step"
		if tok.HasNumeric {
			fix = strconv.Itoa(nearest(vocab.SpacingValues(), tok.NumericValue))
		}
		return violation(rules.SpacingArbitraryValue, tok, fix), true
	}
	if !tok.HasNumeric {
		return compliance.Violation{}, false
	}
	if vocab.IsAllowedSpacing(tok.NumericValue) {
		return compliance.Violation{}, false
	}
	// Scale tables are built from the vocabulary, so this fires only against
	// a stale or narrowed configuration.
	fix := strconv.Itoa(nearest(vocab.SpacingValues(), tok.NumericValue))
	return violation(rules.SpacingOffScale, tok, fix), true
}

func evaluateFontSize(tok extractor.CandidateToken, vocab *vocabulary.Vocabulary) (compliance.Violation, bool) {
	if tok.IsEscapeHatch {
		fix := "use a typography scale step"
		if tok.HasNumeric {
			fix = strconv.Itoa(nearest(vocab.FontSizeValues(), tok.NumericValue))
		}
		return violation(rules.FontSizeArbitrary, tok, fix), true
	}
	if !tok.HasNumeric {
		return compliance.Violation{}, false
	}
	px := tok.NumericValue
	if vocab.IsAllowedFontSize(px) {
		return compliance.Violation{}, false
	}
	if vocab.FontSizeOnScale(px) && px > vocab.MaxFontSize() {
		return violation(rules.FontSizeTooLarge, tok, strconv.Itoa(vocab.MaxFontSize())), true
	}
	fix := strconv.Itoa(nearest(vocab.FontSizeValues(), px))
	return violation(rules.FontSizeOffScale, tok, fix), true
}

func evaluateFontWeight(tok extractor.CandidateToken, vocab *vocabulary.Vocabulary) (compliance.Violation, bool) {
	if !tok.IsEscapeHatch && !tok.HasNumeric {
		return compliance.Violation{}, false
	}
	if !tok.IsEscapeHatch && vocab.IsAllowedFontWeight(tok.NumericValue) {
		return compliance.Violation{}, false
	}
	// Weights are a strict closed set: escape hatches and off-set keywords
	// both land here, with no divisibility-style fallback.
	fix := "use an allowed font weight"
	if tok.HasNumeric {
		fix = strconv.Itoa(nearest(vocab.FontWeightValues(), tok.NumericValue))
	}
	return violation(rules.FontWeightOffScale, tok, fix), true
}

func evaluateColor(tok extractor.CandidateToken, vocab *vocabulary.Vocabulary) (compliance.Violation, bool) {
	name := tok.SemanticName
	if name == "" {
		return compliance.Violation{}, false
	}
	// Bracketed values are literal color syntax by construction.
	if tok.IsEscapeHatch || isLiteralColor(name) {
		return violation(rules.ColorLiteral, tok, suggestSemanticToken(name)), true
	}
	if vocab.IsAllowedColorToken(name) {
		return compliance.Violation{}, false
	}
	return violation(rules.ColorUnknownToken, tok, "use a semantic color token"), true
}

func evaluateHeight(tok extractor.CandidateToken, vocab *vocabulary.Vocabulary) (compliance.Violation, bool) {
	if tok.IsEscapeHatch {
		fix := "use a component size token"
		if tok.HasNumeric {
			fix = strconv.Itoa(nearest(vocab.ComponentHeightValues(), tok.NumericValue))
		}
		return violation(rules.HeightArbitrary, tok, fix), true
	}
	if !tok.HasNumeric {
		return compliance.Violation{}, false
	}
	if vocab.IsAllowedComponentHeight(tok.NumericValue) {
		return compliance.Violation{}, false
	}
	// Curated list, no divisibility fallback: 44 fails even though 44%4 == 0.
	fix := strconv.Itoa(nearest(vocab.ComponentHeightValues(), tok.NumericValue))
	return violation(rules.HeightOffScale, tok, fix), true
}

func violation(ruleID string, tok extractor.CandidateToken, fix string) compliance.Violation {
	r := rules.MustGet(ruleID)
	return compliance.Violation{
		RuleID:       r.ID,
		Category:     r.Category,
		FilePath:     tok.FilePath,
		Line:         tok.Line,
		Column:       tok.Column,
		MatchedText:  tok.RawText,
		Message:      r.Format(tok.RawText),
		SuggestedFix: fix,
		Severity:     r.Severity,
	}
}

// nearest returns the allowed value with the smallest absolute distance to
// target. Ties break toward the smaller value; values must be ascending.
func nearest(values []int, target int) int {
	if len(values) == 0 {
		return target
	}
	best := values[0]
	bestDist := abs(target - best)
	for _, v := range values[1:] {
		d := abs(target - v)
		if d < bestDist {
			best = v
			bestDist = d
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
