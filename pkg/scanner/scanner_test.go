package scanner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/tokenlint/pkg/compliance"
	"github.com/gnana997/tokenlint/pkg/report"
	"github.com/gnana997/tokenlint/pkg/vocabulary"
)

// failingReader fails reads for paths in its deny set.
type failingReader struct {
	deny map[string]bool
}

func (r *failingReader) ReadFile(path string) ([]byte, error) {
	if r.deny[filepath.Base(path)] {
		return nil, errors.New("permission denied")
	}
	return os.ReadFile(path)
}

func newTestScanner(t *testing.T, opts Options) *Scanner {
	t.Helper()
	return New(vocabulary.Default(), opts)
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScan_CleanAndDirtyFiles(t *testing.T) {
	dir := t.TempDir()
	clean := writeFixture(t, dir, "clean.tsx", `<div className="p-4 bg-primary text-sm">`)
	dirty := writeFixture(t, dir, "dirty.tsx", `<div className="p-[25px] text-white">`)

	sc := newTestScanner(t, Options{Workers: 2})
	result := sc.Scan(context.Background(), []string{clean, dirty})

	require.Equal(t, 2, result.TotalFiles)
	assert.Equal(t, 2, result.TotalViolations)
	assert.Equal(t, 5, result.TotalCandidates)
	assert.False(t, result.Incomplete)
	assert.Equal(t, 0, result.IODiagnostics)

	// Both violations are errors against 5 candidates.
	assert.InDelta(t, 1.0-2.0/5.0, result.ComplianceScore, 1e-9)
}

func TestScan_EmptyFileList(t *testing.T) {
	sc := newTestScanner(t, Options{})
	result := sc.Scan(context.Background(), nil)

	assert.Equal(t, 0, result.TotalFiles)
	assert.Equal(t, 1.0, result.ComplianceScore)
}

func TestScan_UnreadableFileDoesNotAbort(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 9; i++ {
		name := string(rune('a'+i)) + ".tsx"
		paths = append(paths, writeFixture(t, dir, name, `<div className="p-4">`))
	}
	paths = append(paths, writeFixture(t, dir, "broken.tsx", "x"))

	sc := newTestScanner(t, Options{
		Reader:  &failingReader{deny: map[string]bool{"broken.tsx": true}},
		Workers: 2,
	})
	result := sc.Scan(context.Background(), paths)

	require.Equal(t, 10, result.TotalFiles)
	assert.Equal(t, 1, result.IODiagnostics)
	assert.Equal(t, 9, result.TotalCandidates)
	assert.Equal(t, 1.0, result.ComplianceScore)

	var broken *compliance.FileReport
	for i := range result.FileReports {
		if filepath.Base(result.FileReports[i].FilePath) == "broken.tsx" {
			broken = &result.FileReports[i]
		}
	}
	require.NotNil(t, broken)
	require.Len(t, broken.Diagnostics, 1)
	assert.Equal(t, compliance.DiagnosticIOError, broken.Diagnostics[0].Kind)
	assert.Empty(t, broken.Violations)
}

func TestScan_MissingFileReportsIOError(t *testing.T) {
	sc := newTestScanner(t, Options{})
	result := sc.Scan(context.Background(), []string{"/nonexistent/missing.tsx"})

	require.Equal(t, 1, result.TotalFiles)
	assert.Equal(t, 1, result.IODiagnostics)
	require.Len(t, result.FileReports[0].Diagnostics, 1)
	assert.Equal(t, compliance.DiagnosticIOError, result.FileReports[0].Diagnostics[0].Kind)
}

func TestScan_ReportsSortedByPath(t *testing.T) {
	dir := t.TempDir()
	// Submit in reverse order; the fan-in sorts.
	var paths []string
	for _, name := range []string{"c.tsx", "a.tsx", "b.tsx"} {
		paths = append(paths, writeFixture(t, dir, name, `<div className="p-4">`))
	}

	sc := newTestScanner(t, Options{Workers: 3})
	result := sc.Scan(context.Background(), paths)

	require.Len(t, result.FileReports, 3)
	assert.Equal(t, "a.tsx", filepath.Base(result.FileReports[0].FilePath))
	assert.Equal(t, "b.tsx", filepath.Base(result.FileReports[1].FilePath))
	assert.Equal(t, "c.tsx", filepath.Base(result.FileReports[2].FilePath))
}

func TestScan_DeterministicOutput(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.tsx", "b.tsx", "c.tsx", "d.tsx"} {
		paths = append(paths, writeFixture(t, dir, name,
			`<button className="h-11 p-[25px] text-white font-light">`))
	}

	sc := newTestScanner(t, Options{Workers: 4})

	var first, second bytes.Buffer
	require.NoError(t, report.WriteJSON(&first, sc.Scan(context.Background(), paths)))
	require.NoError(t, report.WriteJSON(&second, sc.Scan(context.Background(), paths)))
	assert.Equal(t, first.String(), second.String())
}

func TestScan_CancelledContextReturnsPartial(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 8; i++ {
		paths = append(paths, writeFixture(t, dir, string(rune('a'+i))+".tsx", `<div className="p-4">`))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sc := newTestScanner(t, Options{Workers: 2})
	result := sc.Scan(ctx, paths)

	assert.True(t, result.Incomplete)
	assert.LessOrEqual(t, result.TotalFiles, len(paths))
}

func TestScanContent_BinaryContent(t *testing.T) {
	sc := newTestScanner(t, Options{})

	rep := sc.ScanContent("blob.tsx", []byte{0x00, 0x01, 0xff})
	require.Len(t, rep.Diagnostics, 1)
	assert.Equal(t, compliance.DiagnosticEncodingError, rep.Diagnostics[0].Kind)
	assert.Empty(t, rep.Violations)
	assert.Equal(t, 0, rep.CandidateCount)
}

func TestScanContent_NulByteIsBinary(t *testing.T) {
	sc := newTestScanner(t, Options{})
	rep := sc.ScanContent("blob.tsx", []byte("valid utf8 with \x00 nul"))
	require.Len(t, rep.Diagnostics, 1)
	assert.Equal(t, compliance.DiagnosticEncodingError, rep.Diagnostics[0].Kind)
}

func TestScanContent_EmptyFile(t *testing.T) {
	sc := newTestScanner(t, Options{})
	rep := sc.ScanContent("empty.tsx", nil)

	assert.Empty(t, rep.Violations)
	assert.Empty(t, rep.Diagnostics)
	assert.Equal(t, 0, rep.LineCount)
	assert.Equal(t, 0, rep.CandidateCount)
}

func TestScanContent_ViolationProvenance(t *testing.T) {
	sc := newTestScanner(t, Options{})
	rep := sc.ScanContent("src/app/page.tsx", []byte("\n  <div className=\"p-[25px]\">\n"))

	require.Len(t, rep.Violations, 1)
	v := rep.Violations[0]
	assert.Equal(t, "src/app/page.tsx", v.FilePath)
	assert.Equal(t, 2, v.Line)
	assert.Equal(t, "p-[25px]", v.MatchedText)
}
