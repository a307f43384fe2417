// Package compliance defines the result types shared by every stage of the
// scan pipeline: violations, per-file reports, and the aggregate scan result.
//
// All types here are value types assembled bottom-up and never mutated after
// construction, which is what makes the per-file fan-out safe without locks.
package compliance

// Severity classifies how strongly a violation should be treated by the caller.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Category identifies which part of the design specification a token belongs to.
type Category string

const (
	CategorySpacing          Category = "spacing"
	CategoryTypographySize   Category = "typography-size"
	CategoryTypographyWeight Category = "typography-weight"
	CategoryColor            Category = "color"
	CategoryComponentHeight  Category = "component-height"
)

// DiagnosticKind classifies per-file failures that are not rule violations.
type DiagnosticKind string

const (
	DiagnosticIOError       DiagnosticKind = "io-error"
	DiagnosticEncodingError DiagnosticKind = "encoding-error"
)

// Violation is the unit of report output. Immutable once created.
type Violation struct {
	RuleID       string   `json:"rule_id"`
	Category     Category `json:"category"`
	FilePath     string   `json:"file_path"`
	Line         int      `json:"line"`
	Column       int      `json:"column"`
	MatchedText  string   `json:"matched_text"`
	Message      string   `json:"message"`
	SuggestedFix string   `json:"suggested_fix"`
	Severity     Severity `json:"severity"`
}

// Diagnostic records a per-file failure (unreadable file, undecodable
// content) that replaced a normal scan pass. It is deliberately not a
// Violation so that IO trouble never leaks into compliance scoring.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Message string         `json:"message"`
}

// FileReport holds everything the scan produced for one file. Violations are
// ordered by (line, column) so that output diffing is stable.
type FileReport struct {
	FilePath       string       `json:"file_path"`
	Violations     []Violation  `json:"violations"`
	Diagnostics    []Diagnostic `json:"diagnostics,omitempty"`
	LineCount      int          `json:"line_count"`
	CandidateCount int          `json:"candidate_count"`
}

// HasDiagnostics reports whether this file failed to scan normally.
func (r *FileReport) HasDiagnostics() bool {
	return len(r.Diagnostics) > 0
}

// ScanResult is the terminal output of a scan run, consumed by reporting.
type ScanResult struct {
	FileReports       []FileReport     `json:"file_reports"`
	TotalFiles        int              `json:"total_files"`
	TotalViolations   int              `json:"total_violations"`
	TotalCandidates   int              `json:"total_candidates"`
	ComplianceScore   float64          `json:"compliance_score"`
	SeverityBreakdown map[Severity]int `json:"severity_breakdown"`

	// IODiagnostics counts files that produced diagnostics instead of a real
	// scan pass. Surfaced separately so callers can warn on a high ratio
	// without it skewing ComplianceScore.
	IODiagnostics int `json:"io_diagnostics"`

	// Incomplete is set when the run was cancelled before every file was
	// dispatched. Completed work is still included.
	Incomplete bool `json:"incomplete,omitempty"`
}
