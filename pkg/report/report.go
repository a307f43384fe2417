// Package report serializes scan results for external sinks. The engine does
// no terminal formatting or coloring; consumers (console printers, CI
// annotators, markdown generators) build on these structures instead.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gnana997/tokenlint/pkg/compliance"
)

// Record is one flat violation row, the shape CI annotation emitters want.
type Record struct {
	FilePath     string              `json:"file_path"`
	Line         int                 `json:"line"`
	Column       int                 `json:"column"`
	RuleID       string              `json:"rule_id"`
	Severity     compliance.Severity `json:"severity"`
	MatchedText  string              `json:"matched_text"`
	Message      string              `json:"message"`
	SuggestedFix string              `json:"suggested_fix"`
}

// Records flattens a ScanResult into per-violation rows. FileReports are
// already path-sorted and violations line/column-sorted, so the row order is
// deterministic.
func Records(result compliance.ScanResult) []Record {
	var out []Record
	for _, fr := range result.FileReports {
		for _, v := range fr.Violations {
			out = append(out, Record{
				FilePath:     v.FilePath,
				Line:         v.Line,
				Column:       v.Column,
				RuleID:       v.RuleID,
				Severity:     v.Severity,
				MatchedText:  v.MatchedText,
				Message:      v.Message,
				SuggestedFix: v.SuggestedFix,
			})
		}
	}
	return out
}

// WriteJSON writes the canonical serialization of a ScanResult. Repeated
// scans over the same input produce byte-identical output here; that is the
// contract output diffing relies on.
func WriteJSON(w io.Writer, result compliance.ScanResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode scan result: %w", err)
	}
	return nil
}

// Summary is the compact aggregate view for terminal output.
type Summary struct {
	TotalFiles      int     `json:"total_files"`
	TotalViolations int     `json:"total_violations"`
	Errors          int     `json:"errors"`
	Warnings        int     `json:"warnings"`
	ComplianceScore float64 `json:"compliance_score"`
	IODiagnostics   int     `json:"io_diagnostics"`
	Incomplete      bool    `json:"incomplete,omitempty"`
}

// Summarize extracts the Summary from a ScanResult.
func Summarize(result compliance.ScanResult) Summary {
	return Summary{
		TotalFiles:      result.TotalFiles,
		TotalViolations: result.TotalViolations,
		Errors:          result.SeverityBreakdown[compliance.SeverityError],
		Warnings:        result.SeverityBreakdown[compliance.SeverityWarning],
		ComplianceScore: result.ComplianceScore,
		IODiagnostics:   result.IODiagnostics,
		Incomplete:      result.Incomplete,
	}
}

// WriteSummary renders the one-screen human summary the CLI prints in
// summary mode. Plain text, no color; coloring belongs to outer tooling.
func WriteSummary(w io.Writer, result compliance.ScanResult) error {
	s := Summarize(result)
	_, err := fmt.Fprintf(w,
		"files scanned:    %d\nviolations:       %d (%d errors, %d warnings)\ncompliance score: %.1f%%\n",
		s.TotalFiles, s.TotalViolations, s.Errors, s.Warnings, s.ComplianceScore*100)
	if err != nil {
		return err
	}
	if s.IODiagnostics > 0 {
		if _, err := fmt.Fprintf(w, "unreadable files: %d\n", s.IODiagnostics); err != nil {
			return err
		}
	}
	if s.Incomplete {
		if _, err := fmt.Fprintln(w, "scan incomplete (cancelled before all files were dispatched)"); err != nil {
			return err
		}
	}
	return nil
}
