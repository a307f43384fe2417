// Package scanner orchestrates a compliance scan: fan the file list out to a
// bounded worker pool, run extract→evaluate per file, and fold the reports
// into a deterministic ScanResult.
//
// Workers share only the frozen vocabulary, so the fan-out needs no locking;
// determinism comes from sorting reports by path at the fan-in.
package scanner

import (
	"bytes"
	"context"
	"log/slog"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/gnana997/tokenlint/pkg/compliance"
	"github.com/gnana997/tokenlint/pkg/evaluator"
	"github.com/gnana997/tokenlint/pkg/extractor"
	"github.com/gnana997/tokenlint/pkg/scorer"
	"github.com/gnana997/tokenlint/pkg/util"
	"github.com/gnana997/tokenlint/pkg/vocabulary"
)

// Options configures a Scanner.
type Options struct {
	// Workers bounds the fan-out. Zero means util.OptimalPoolSize().
	Workers int

	// Reader supplies file contents. Nil means the mmap-backed reader.
	Reader util.FileReader

	Logger *slog.Logger
}

// Scanner drives per-file extraction and evaluation. Safe for concurrent use
// once constructed; the vocabulary is read-only for the scanner's lifetime.
type Scanner struct {
	vocab     *vocabulary.Vocabulary
	extractor *extractor.Extractor
	reader    util.FileReader
	logger    *slog.Logger
	workers   int
}

// New creates a Scanner bound to a vocabulary.
func New(vocab *vocabulary.Vocabulary, opts Options) *Scanner {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reader := opts.Reader
	if reader == nil {
		reader = util.NewMmapFileReader(logger)
	}
	return &Scanner{
		vocab:     vocab,
		extractor: extractor.New(logger),
		reader:    reader,
		logger:    logger,
		workers:   util.OptimalPoolSizeWithOverride(opts.Workers),
	}
}

// Scan processes the given files and returns the aggregated result.
//
// One unreadable file never aborts the run: it contributes a diagnostic-only
// FileReport and scanning continues. Cancellation is honored at file
// granularity: in-flight files finish, no new file is dispatched, and the
// partial result is tagged Incomplete rather than discarded.
func (s *Scanner) Scan(ctx context.Context, files []string) compliance.ScanResult {
	start := time.Now()
	s.logger.Info("starting scan", "files", len(files), "workers", s.workers)

	if len(files) == 0 {
		return scorer.Aggregate(nil, false)
	}

	pool := newWorkerPool(s.workers, s.ScanFileAt, s.logger)
	pool.start()

	// Collector runs before submission so a full jobs queue can never
	// deadlock against an unread results channel.
	reports := make([]compliance.FileReport, 0, len(files))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for report := range pool.results {
			reports = append(reports, report)
		}
	}()

	incomplete := false
	for _, path := range files {
		if err := pool.submit(ctx, path); err != nil {
			s.logger.Warn("scan cancelled, returning partial result",
				"dispatched", pool.jobsSubmitted.Load(), "total", len(files))
			incomplete = true
			break
		}
	}

	pool.stop()
	<-done

	// Path order is the determinism contract for the fan-in.
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].FilePath < reports[j].FilePath
	})

	result := scorer.Aggregate(reports, incomplete)

	s.logger.Info("scan complete",
		"files", result.TotalFiles,
		"violations", result.TotalViolations,
		"score", result.ComplianceScore,
		"io_diagnostics", result.IODiagnostics,
		"duration_ms", time.Since(start).Milliseconds())

	return result
}

// ScanFileAt reads and scans a single file from disk.
func (s *Scanner) ScanFileAt(path string) compliance.FileReport {
	content, err := s.reader.ReadFile(path)
	if err != nil {
		return compliance.FileReport{
			FilePath: path,
			Diagnostics: []compliance.Diagnostic{{
				Kind:    compliance.DiagnosticIOError,
				Message: err.Error(),
			}},
		}
	}
	return s.ScanContent(path, content)
}

// ScanContent scans in-memory content attributed to path. Used directly by
// watch mode and the MCP check_source tool.
func (s *Scanner) ScanContent(path string, content []byte) compliance.FileReport {
	if !isText(content) {
		return compliance.FileReport{
			FilePath: path,
			Diagnostics: []compliance.Diagnostic{{
				Kind:    compliance.DiagnosticEncodingError,
				Message: "content is not valid UTF-8 text",
			}},
		}
	}

	ft := s.extractor.ExtractFile(path, content)
	return compliance.FileReport{
		FilePath:       path,
		Violations:     evaluator.EvaluateAll(ft.Tokens, s.vocab),
		LineCount:      ft.LineCount,
		CandidateCount: len(ft.Tokens),
	}
}

// isText rejects content that cannot be decoded as UTF-8 text. A NUL byte is
// treated as binary even when the encoding is technically valid.
func isText(content []byte) bool {
	return utf8.Valid(content) && !bytes.ContainsRune(content, 0)
}
