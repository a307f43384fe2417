package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnana997/tokenlint/pkg/compliance"
	"github.com/gnana997/tokenlint/pkg/discovery"
	mcpserver "github.com/gnana997/tokenlint/pkg/mcp"
	"github.com/gnana997/tokenlint/pkg/mcplog"
	"github.com/gnana997/tokenlint/pkg/report"
	"github.com/gnana997/tokenlint/pkg/scanner"
	"github.com/gnana997/tokenlint/pkg/util"
	"github.com/gnana997/tokenlint/pkg/vocabulary"
	"github.com/gnana997/tokenlint/pkg/watch"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch command := os.Args[1]; command {
	case "scan":
		err = runScan(os.Args[2:])
	case "check":
		err = runCheck(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "watch":
		err = runWatch(os.Args[2:])
	case "version":
		fmt.Printf("tokenlint %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokenlint: %v\n", err)
		os.Exit(1)
	}
}

// exitViolations is the exit code when the fail-on policy trips. Distinct
// from 1 so CI can tell "violations found" from "the tool itself failed".
const exitViolations = 2

func runScan(args []string) error {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	vocabPath := fs.String("vocabulary", "", "path to a vocabulary JSON document")
	format := fs.String("format", "summary", "output format: json or summary")
	failOn := fs.String("fail-on", "", "fail the process on: error, warning, none")
	workers := fs.Int("workers", 0, "worker count (0 = auto)")
	logLevel := fs.String("log-level", "warn", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("read project config: %w", err)
	}

	logger := util.NewLogger(util.LoggerConfig{Level: *logLevel, Format: "text", Output: os.Stderr})

	vocab, err := loadVocabulary(resolveVocabularyPath(*vocabPath, cfg))
	if err != nil {
		return err
	}

	files, err := collectFiles(fs.Args(), cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sc := scanner.New(vocab, scanner.Options{Workers: *workers, Logger: logger})
	result := sc.Scan(ctx, files)

	switch *format {
	case "json":
		if err := report.WriteJSON(os.Stdout, result); err != nil {
			return err
		}
	default:
		for _, rec := range report.Records(result) {
			fmt.Printf("%s:%d:%d %s [%s] %s (suggested: %s)\n",
				rec.FilePath, rec.Line, rec.Column, rec.Severity, rec.RuleID, rec.Message, rec.SuggestedFix)
		}
		if err := report.WriteSummary(os.Stdout, result); err != nil {
			return err
		}
	}

	if shouldFail(result, resolveFailOn(*failOn, cfg)) {
		os.Exit(exitViolations)
	}
	return nil
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	vocabPath := fs.String("vocabulary", "", "path to a vocabulary JSON document")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: tokenlint check <file>")
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("read project config: %w", err)
	}
	vocab, err := loadVocabulary(resolveVocabularyPath(*vocabPath, cfg))
	if err != nil {
		return err
	}

	sc := scanner.New(vocab, scanner.Options{})
	fr := sc.ScanFileAt(fs.Arg(0))

	for _, d := range fr.Diagnostics {
		fmt.Printf("%s: %s: %s\n", fr.FilePath, d.Kind, d.Message)
	}
	for _, v := range fr.Violations {
		fmt.Printf("%s:%d:%d %s [%s] %s (suggested: %s)\n",
			v.FilePath, v.Line, v.Column, v.Severity, v.RuleID, v.Message, v.SuggestedFix)
	}
	if len(fr.Violations) == 0 && len(fr.Diagnostics) == 0 {
		fmt.Println("no violations found")
	}
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	vocabPath := fs.String("vocabulary", "", "path to a vocabulary JSON document")
	logFile := fs.String("log-file", "", "JSONL tool-call log path (empty disables)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("read project config: %w", err)
	}
	vocab, err := loadVocabulary(resolveVocabularyPath(*vocabPath, cfg))
	if err != nil {
		return err
	}

	toolLog, err := mcplog.New(*logFile)
	if err != nil {
		return err
	}
	if toolLog != nil {
		defer toolLog.Close()
	}

	logger := util.NewLogger(util.DefaultLoggerConfig())
	sc := scanner.New(vocab, scanner.Options{Logger: logger})
	srv := mcpserver.NewServer(sc, vocab, toolLog)
	return srv.ServeStdio()
}

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	vocabPath := fs.String("vocabulary", "", "path to a vocabulary JSON document")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	root := "."
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("read project config: %w", err)
	}
	vocab, err := loadVocabulary(resolveVocabularyPath(*vocabPath, cfg))
	if err != nil {
		return err
	}

	logger := util.NewLogger(util.LoggerConfig{Level: *logLevel, Format: "text", Output: os.Stderr})
	sc := scanner.New(vocab, scanner.Options{Logger: logger})

	var opts watch.Options
	if cfg != nil {
		opts.Include = cfg.Include
		opts.Exclude = cfg.Exclude
	}
	w, err := watch.New(sc, opts, func(result compliance.ScanResult) {
		_ = report.WriteSummary(os.Stdout, result)
		fmt.Println("---")
	}, logger)
	if err != nil {
		return err
	}
	if err := w.Start(root); err != nil {
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}

// loadVocabulary loads the document at path, or the built-in defaults when
// path is empty. A ConfigError here is fatal: the engine never scans against
// a partially valid vocabulary.
func loadVocabulary(path string) (*vocabulary.Vocabulary, error) {
	if path == "" {
		return vocabulary.Default(), nil
	}
	return vocabulary.LoadFromFile(path)
}

// collectFiles expands the positional arguments into the scan file list:
// directories are discovered, files pass through. No arguments means the
// current directory.
func collectFiles(args []string, cfg *ProjectConfig) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	opts := discovery.Options{}
	if cfg != nil {
		opts.Include = cfg.Include
		opts.Exclude = cfg.Exclude
	}

	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			// Unreadable inputs still get a FileReport, so pass them on.
			files = append(files, arg)
			continue
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		found, err := discovery.Discover(arg, opts)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func shouldFail(result compliance.ScanResult, policy string) bool {
	switch policy {
	case "none":
		return false
	case "warning":
		return result.TotalViolations > 0
	default:
		return result.SeverityBreakdown[compliance.SeverityError] > 0
	}
}

func printUsage() {
	fmt.Println("Usage: tokenlint <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  scan [paths...]   Scan files or directories for design token violations")
	fmt.Println("  check <file>      Check a single file")
	fmt.Println("  serve             Start MCP server on stdio")
	fmt.Println("  watch [dir]       Watch a directory and re-scan on change")
	fmt.Println("  version           Print version")
	fmt.Println("  help              Show this help message")
}
