// Package rules defines the fixed rule catalog: the binding between a
// detection pattern class, a vocabulary lookup, and a severity. Rules are
// static configuration; policy lives in the evaluator, which selects a rule
// and fills its message template when a check fails.
package rules

import (
	"fmt"

	"github.com/gnana997/tokenlint/pkg/compliance"
)

// Rule IDs, stable identifiers for CI annotations and suppression lists.
const (
	SpacingArbitraryValue = "spacing-arbitrary-value"
	SpacingOffScale       = "spacing-off-scale"
	FontSizeArbitrary     = "font-size-arbitrary"
	FontSizeOffScale      = "font-size-off-scale"
	FontSizeTooLarge      = "font-size-too-large"
	FontWeightOffScale    = "font-weight-off-scale"
	ColorLiteral          = "color-literal"
	ColorUnknownToken     = "color-unknown-token"
	HeightArbitrary       = "control-height-arbitrary"
	HeightOffScale        = "control-height-off-scale"
)

// Rule binds an ID to its category, severity, and message template. The
// template receives the matched text as its single argument.
type Rule struct {
	ID       string
	Category compliance.Category
	Severity compliance.Severity
	Message  string
}

// Format renders the rule's message for the given matched text.
func (r Rule) Format(matched string) string {
	return fmt.Sprintf(r.Message, matched)
}

var catalog = map[string]Rule{
	SpacingArbitraryValue: {
		ID:       SpacingArbitraryValue,
		Category: compliance.CategorySpacing,
		Severity: compliance.SeverityError,
		Message:  "arbitrary spacing value %q bypasses the spacing scale",
	},
	SpacingOffScale: {
		ID:       SpacingOffScale,
		Category: compliance.CategorySpacing,
		Severity: compliance.SeverityWarning,
		Message:  "spacing %q resolves to a value outside the spacing scale",
	},
	FontSizeArbitrary: {
		ID:       FontSizeArbitrary,
		Category: compliance.CategoryTypographySize,
		Severity: compliance.SeverityError,
		Message:  "arbitrary font size %q bypasses the typography scale",
	},
	FontSizeOffScale: {
		ID:       FontSizeOffScale,
		Category: compliance.CategoryTypographySize,
		Severity: compliance.SeverityError,
		Message:  "font size %q is not on the typography scale",
	},
	FontSizeTooLarge: {
		ID:       FontSizeTooLarge,
		Category: compliance.CategoryTypographySize,
		Severity: compliance.SeverityWarning,
		Message:  "font size %q exceeds the maximum allowed size",
	},
	FontWeightOffScale: {
		ID:       FontWeightOffScale,
		Category: compliance.CategoryTypographyWeight,
		Severity: compliance.SeverityError,
		Message:  "font weight %q is not in the allowed weight set",
	},
	ColorLiteral: {
		ID:       ColorLiteral,
		Category: compliance.CategoryColor,
		Severity: compliance.SeverityError,
		Message:  "literal color %q; use a semantic color token",
	},
	ColorUnknownToken: {
		ID:       ColorUnknownToken,
		Category: compliance.CategoryColor,
		Severity: compliance.SeverityWarning,
		Message:  "color token %q is not in the semantic vocabulary",
	},
	HeightArbitrary: {
		ID:       HeightArbitrary,
		Category: compliance.CategoryComponentHeight,
		Severity: compliance.SeverityError,
		Message:  "arbitrary control height %q bypasses the size tokens",
	},
	HeightOffScale: {
		ID:       HeightOffScale,
		Category: compliance.CategoryComponentHeight,
		Severity: compliance.SeverityError,
		Message:  "control height %q is not an allowed size token",
	},
}

// Get returns the rule for id.
func Get(id string) (Rule, bool) {
	r, ok := catalog[id]
	return r, ok
}

// MustGet returns the rule for id, panicking on an unknown ID. Rule IDs are
// compile-time constants, so a miss is a programming error.
func MustGet(id string) Rule {
	r, ok := catalog[id]
	if !ok {
		panic(fmt.Sprintf("rules: unknown rule %q", id))
	}
	return r
}

// All returns every rule in the catalog, ordered by ID.
func All() []Rule {
	ids := []string{
		ColorLiteral,
		ColorUnknownToken,
		HeightArbitrary,
		HeightOffScale,
		FontSizeArbitrary,
		FontSizeOffScale,
		FontSizeTooLarge,
		FontWeightOffScale,
		SpacingArbitraryValue,
		SpacingOffScale,
	}
	out := make([]Rule, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalog[id])
	}
	return out
}
