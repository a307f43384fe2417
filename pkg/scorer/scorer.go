// Package scorer reduces completed file reports into the aggregate metrics of
// a ScanResult. Pure functions of their input: no randomness, no clock, so
// identical reports always produce identical aggregates.
package scorer

import "github.com/gnana997/tokenlint/pkg/compliance"

// Severity weights for the compliance score. An error counts fully against
// the candidate pool, a warning half.
const (
	errorWeight   = 1.0
	warningWeight = 0.5
)

// Aggregate folds file reports into a ScanResult.
//
// The compliance score is 1 minus the severity-weighted violation count over
// the total candidate count, clamped to [0,1]. A run with zero candidates
// (including a zero-file run) scores 1.0 by vacuous truth, so non-UI files
// never drag the aggregate down. Files that only produced IO diagnostics are
// counted in IODiagnostics, not in the score.
func Aggregate(reports []compliance.FileReport, incomplete bool) compliance.ScanResult {
	result := compliance.ScanResult{
		FileReports:       reports,
		TotalFiles:        len(reports),
		SeverityBreakdown: map[compliance.Severity]int{},
		Incomplete:        incomplete,
	}

	weighted := 0.0
	for i := range reports {
		r := &reports[i]
		if r.HasDiagnostics() {
			result.IODiagnostics++
		}
		result.TotalCandidates += r.CandidateCount
		result.TotalViolations += len(r.Violations)
		for _, v := range r.Violations {
			result.SeverityBreakdown[v.Severity]++
			switch v.Severity {
			case compliance.SeverityError:
				weighted += errorWeight
			case compliance.SeverityWarning:
				weighted += warningWeight
			}
		}
	}

	result.ComplianceScore = score(weighted, result.TotalCandidates)
	return result
}

func score(weighted float64, candidates int) float64 {
	if candidates == 0 {
		return 1.0
	}
	s := 1.0 - weighted/float64(candidates)
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
