package extractor

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/gnana997/tokenlint/pkg/compliance"
	"github.com/gnana997/tokenlint/pkg/vocabulary"
)

// controlContextLines is how many preceding lines an interactive-control
// opening makes h- utilities height candidates for. Height rules apply to
// controls, not arbitrary boxes.
const controlContextLines = 3

// Extractor scans file text for candidate tokens. Stateless between files,
// safe for concurrent use.
type Extractor struct {
	logger *slog.Logger
}

// New creates an Extractor.
func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// ExtractFile scans one file's content and returns all candidate tokens in
// (line, column) order.
func (e *Extractor) ExtractFile(filePath string, content []byte) *FileTokens {
	result := &FileTokens{FilePath: filePath}
	if len(content) == 0 {
		return result
	}

	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	// A trailing newline produces a final empty element, not an extra line.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	result.LineCount = len(lines)

	// Pre-pass: which lines open an interactive control.
	control := make([]bool, len(lines))
	for i, line := range lines {
		control[i] = controlContext.MatchString(line)
	}

	for i, line := range lines {
		lineNo := i + 1
		result.Tokens = append(result.Tokens, e.extractSpacing(filePath, line, lineNo)...)
		result.Tokens = append(result.Tokens, e.extractText(filePath, line, lineNo)...)
		result.Tokens = append(result.Tokens, e.extractFont(filePath, line, lineNo)...)
		result.Tokens = append(result.Tokens, e.extractColor(filePath, line, lineNo)...)
		if inControlContext(control, i) {
			result.Tokens = append(result.Tokens, e.extractHeight(filePath, line, lineNo)...)
		}
	}

	// Left-to-right within a line is part of the output contract; patterns
	// run per category, so interleave by column here.
	sort.SliceStable(result.Tokens, func(a, b int) bool {
		ta, tb := result.Tokens[a], result.Tokens[b]
		if ta.Line != tb.Line {
			return ta.Line < tb.Line
		}
		return ta.Column < tb.Column
	})

	e.logger.Debug("extracted candidates",
		"file", filePath,
		"lines", result.LineCount,
		"candidates", len(result.Tokens))

	return result
}

// inControlContext reports whether line index i (0-based) is on or within
// controlContextLines after a control-opening line.
func inControlContext(control []bool, i int) bool {
	lo := i - controlContextLines
	if lo < 0 {
		lo = 0
	}
	for j := lo; j <= i; j++ {
		if control[j] {
			return true
		}
	}
	return false
}

func (e *Extractor) extractSpacing(filePath, line string, lineNo int) []CandidateToken {
	var tokens []CandidateToken
	for _, m := range spacingPattern.FindAllStringSubmatchIndex(line, -1) {
		if partOfLongerIdentifier(line, m[0]) {
			continue
		}
		tok := CandidateToken{
			RawText:  line[m[0]:m[1]],
			Category: compliance.CategorySpacing,
			Line:     lineNo,
			Column:   m[0] + 1,
			FilePath: filePath,
		}
		if bracket := group(line, m, 1); bracket != "" {
			tok.IsEscapeHatch = true
			if px, ok := parseBracketPx(bracket); ok {
				tok.NumericValue = px
				tok.HasNumeric = true
			}
		} else {
			index, err := strconv.Atoi(group(line, m, 2))
			if err != nil {
				continue
			}
			px, ok := vocabulary.SpacingIndexToPx(index)
			if !ok {
				// Not a step on the fixed scale; not utility syntax we know.
				continue
			}
			tok.NumericValue = px
			tok.HasNumeric = true
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// extractText handles the shared text- prefix: typography steps, arbitrary
// sizes, and color utilities all start with it.
func (e *Extractor) extractText(filePath, line string, lineNo int) []CandidateToken {
	var tokens []CandidateToken
	for _, m := range textPattern.FindAllStringSubmatchIndex(line, -1) {
		if partOfLongerIdentifier(line, m[0]) {
			continue
		}
		raw := line[m[0]:m[1]]
		col := m[0] + 1

		if bracket := group(line, m, 1); bracket != "" {
			if looksLikeColorValue(bracket) {
				tokens = append(tokens, CandidateToken{
					RawText:       raw,
					Category:      compliance.CategoryColor,
					SemanticName:  bracket,
					IsEscapeHatch: true,
					Line:          lineNo,
					Column:        col,
					FilePath:      filePath,
				})
				continue
			}
			tok := CandidateToken{
				RawText:       raw,
				Category:      compliance.CategoryTypographySize,
				IsEscapeHatch: true,
				Line:          lineNo,
				Column:        col,
				FilePath:      filePath,
			}
			if px, ok := parseBracketPx(bracket); ok {
				tok.NumericValue = px
				tok.HasNumeric = true
			}
			tokens = append(tokens, tok)
			continue
		}

		suffix := group(line, m, 2)
		switch {
		case vocabulary.IsTextSizeName(suffix):
			px, _ := vocabulary.TextSizeToPx(suffix)
			tokens = append(tokens, CandidateToken{
				RawText:      raw,
				Category:     compliance.CategoryTypographySize,
				NumericValue: px,
				HasNumeric:   true,
				Line:         lineNo,
				Column:       col,
				FilePath:     filePath,
			})
		case textStopWords[suffix] || strings.HasPrefix(suffix, "opacity-"):
			// Alignment/overflow utility, not a token.
		default:
			tokens = append(tokens, CandidateToken{
				RawText:      raw,
				Category:     compliance.CategoryColor,
				SemanticName: suffix,
				Line:         lineNo,
				Column:       col,
				FilePath:     filePath,
			})
		}
	}
	return tokens
}

func (e *Extractor) extractFont(filePath, line string, lineNo int) []CandidateToken {
	var tokens []CandidateToken
	for _, m := range fontPattern.FindAllStringSubmatchIndex(line, -1) {
		if partOfLongerIdentifier(line, m[0]) {
			continue
		}
		raw := line[m[0]:m[1]]
		col := m[0] + 1

		if bracket := group(line, m, 1); bracket != "" {
			tok := CandidateToken{
				RawText:       raw,
				Category:      compliance.CategoryTypographyWeight,
				IsEscapeHatch: true,
				Line:          lineNo,
				Column:        col,
				FilePath:      filePath,
			}
			if w, err := strconv.Atoi(bracket); err == nil {
				tok.NumericValue = w
				tok.HasNumeric = true
			}
			tokens = append(tokens, tok)
			continue
		}

		suffix := group(line, m, 2)
		if fontStopWords[suffix] {
			continue
		}
		w, ok := vocabulary.FontWeightToValue(suffix)
		if !ok {
			continue
		}
		tokens = append(tokens, CandidateToken{
			RawText:      raw,
			Category:     compliance.CategoryTypographyWeight,
			NumericValue: w,
			HasNumeric:   true,
			Line:         lineNo,
			Column:       col,
			FilePath:     filePath,
		})
	}
	return tokens
}

func (e *Extractor) extractColor(filePath, line string, lineNo int) []CandidateToken {
	var tokens []CandidateToken
	for _, m := range colorPattern.FindAllStringSubmatchIndex(line, -1) {
		if partOfLongerIdentifier(line, m[0]) {
			continue
		}
		raw := line[m[0]:m[1]]
		col := m[0] + 1
		prefix := group(line, m, 1)

		if bracket := group(line, m, 2); bracket != "" {
			tokens = append(tokens, CandidateToken{
				RawText:       raw,
				Category:      compliance.CategoryColor,
				SemanticName:  bracket,
				IsEscapeHatch: true,
				Line:          lineNo,
				Column:        col,
				FilePath:      filePath,
			})
			continue
		}

		suffix := group(line, m, 3)
		if skip := skipColorSuffix(prefix, &suffix); skip {
			continue
		}
		tokens = append(tokens, CandidateToken{
			RawText:      raw,
			Category:     compliance.CategoryColor,
			SemanticName: suffix,
			Line:         lineNo,
			Column:       col,
			FilePath:     filePath,
		})
	}
	return tokens
}

// skipColorSuffix filters non-color bg-/border- utilities and strips border
// side segments (border-x-primary → primary). It may rewrite suffix in place.
func skipColorSuffix(prefix string, suffix *string) bool {
	s := *suffix
	switch prefix {
	case "bg":
		if bgStopWords[s] {
			return true
		}
		for _, p := range bgStopPrefixes {
			if strings.HasPrefix(s, p) {
				return true
			}
		}
	case "border":
		if borderStopWords[s] || strings.HasPrefix(s, "spacing-") {
			return true
		}
		// Strip a leading side segment.
		if head, rest, found := strings.Cut(s, "-"); found && borderSides[head] {
			s = rest
		} else if borderSides[s] {
			return true
		}
		// Remaining numeric suffix is a width, not a color.
		if _, err := strconv.Atoi(s); err == nil {
			return true
		}
	}
	*suffix = s
	return false
}

func (e *Extractor) extractHeight(filePath, line string, lineNo int) []CandidateToken {
	var tokens []CandidateToken
	for _, m := range heightPattern.FindAllStringSubmatchIndex(line, -1) {
		if partOfLongerIdentifier(line, m[0]) {
			continue
		}
		tok := CandidateToken{
			RawText:  line[m[0]:m[1]],
			Category: compliance.CategoryComponentHeight,
			Line:     lineNo,
			Column:   m[0] + 1,
			FilePath: filePath,
		}
		if bracket := group(line, m, 1); bracket != "" {
			tok.IsEscapeHatch = true
			if px, ok := parseBracketPx(bracket); ok {
				tok.NumericValue = px
				tok.HasNumeric = true
			}
		} else {
			index, err := strconv.Atoi(group(line, m, 2))
			if err != nil {
				continue
			}
			px, ok := vocabulary.SpacingIndexToPx(index)
			if !ok {
				continue
			}
			tok.NumericValue = px
			tok.HasNumeric = true
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// group returns the submatch text for capture group n, or "" if unmatched.
func group(line string, m []int, n int) string {
	if m[2*n] < 0 {
		return ""
	}
	return line[m[2*n]:m[2*n+1]]
}

// partOfLongerIdentifier rejects matches like the "p-4" inside "foo-p-4":
// the word boundary in the pattern accepts a preceding hyphen, which is fine
// for negative utilities ("-m-4") but not mid-identifier.
func partOfLongerIdentifier(line string, start int) bool {
	if start < 2 {
		return false
	}
	if line[start-1] != '-' {
		return false
	}
	prev := line[start-2]
	return prev >= 'a' && prev <= 'z' ||
		prev >= 'A' && prev <= 'Z' ||
		prev >= '0' && prev <= '9'
}

// parseBracketPx resolves a bracketed literal to pixels. rem/em values are
// converted at the conventional 16px root size.
func parseBracketPx(value string) (int, bool) {
	m := bracketValue.FindStringSubmatch(value)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	switch m[2] {
	case "rem", "em":
		n *= 16
	}
	return int(n + 0.5), true
}

// looksLikeColorValue reports whether a bracketed literal is color syntax
// (hex, rgb()/hsl() call, or a CSS variable reference) rather than a length.
func looksLikeColorValue(value string) bool {
	return strings.HasPrefix(value, "#") ||
		strings.HasPrefix(value, "rgb") ||
		strings.HasPrefix(value, "hsl") ||
		strings.HasPrefix(value, "var(")
}
