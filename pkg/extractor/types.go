// Package extractor turns a file's raw text into candidate tokens: substrings
// that look like spacing, typography, color, or control-height utilities, each
// tagged with exact line/column provenance.
//
// The extractor recognizes syntax only. Whether a candidate is compliant is
// entirely the evaluator's call, which is what lets the vocabulary change
// without touching extraction.
package extractor

import "github.com/gnana997/tokenlint/pkg/compliance"

// CandidateToken is a syntactically recognized, not-yet-judged utility
// expression. Ephemeral: produced per file and consumed by the evaluator.
type CandidateToken struct {
	// RawText is the exact matched utility, e.g. "p-[25px]" or "text-white".
	RawText string

	Category compliance.Category

	// NumericValue is the resolved pixel or weight value when the token's
	// written form could be resolved (scale index, named step, or parseable
	// bracketed literal). HasNumeric distinguishes a real zero from absence.
	NumericValue int
	HasNumeric   bool

	// SemanticName is the identifier after the prefix for color candidates,
	// e.g. "muted-foreground" or "gray-500".
	SemanticName string

	// IsEscapeHatch marks bracketed arbitrary-value syntax. Escape hatches
	// are always violation candidates regardless of their numeric value.
	IsEscapeHatch bool

	// Line and Column are 1-based positions of the match start.
	Line   int
	Column int

	FilePath string
}

// FileTokens is the extraction result for one file.
type FileTokens struct {
	FilePath  string
	Tokens    []CandidateToken
	LineCount int
}
