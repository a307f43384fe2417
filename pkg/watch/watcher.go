// Package watch keeps a scan result continuously up to date: it re-scans
// files as they change and emits a fresh ScanResult snapshot after each
// settled batch of events.
//
// Memoization lives here, not in the engine: the engine is stateless between
// runs and leaves caching by file hash to callers. The watcher is exactly
// that caller.
package watch

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gnana997/tokenlint/pkg/compliance"
	"github.com/gnana997/tokenlint/pkg/discovery"
	"github.com/gnana997/tokenlint/pkg/scanner"
	"github.com/gnana997/tokenlint/pkg/scorer"
)

// Options configures a Watcher.
type Options struct {
	// DebounceMs groups rapid saves of the same file. Zero means 200.
	DebounceMs int

	// Include/Exclude follow discovery semantics. Empty means defaults.
	Include []string
	Exclude []string

	// CacheSize bounds the report memo. Zero means 4096 entries.
	CacheSize int
}

// SnapshotFunc receives each updated ScanResult.
type SnapshotFunc func(result compliance.ScanResult)

// cachedReport pairs a FileReport with the content hash it was computed
// from, so an unchanged file skips re-scanning entirely.
type cachedReport struct {
	hash   string
	report compliance.FileReport
}

// Watcher re-scans changed files and maintains the current result set.
type Watcher struct {
	fsw      *fsnotify.Watcher
	scanner  *scanner.Scanner
	logger   *slog.Logger
	options  Options
	onUpdate SnapshotFunc
	root     string

	cache *lru.Cache[string, cachedReport]

	// reports is the authoritative current state, keyed by path.
	reports   map[string]compliance.FileReport
	reportsMu sync.Mutex

	debounceTimers map[string]*time.Timer
	debounceMu     sync.Mutex

	stopChan chan struct{}
	stopOnce sync.Once
}

// New creates a Watcher. onUpdate must not be nil.
func New(sc *scanner.Scanner, options Options, onUpdate SnapshotFunc, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if options.DebounceMs == 0 {
		options.DebounceMs = 200
	}
	if options.CacheSize == 0 {
		options.CacheSize = 4096
	}
	if logger == nil {
		logger = slog.Default()
	}

	cache, err := lru.New[string, cachedReport](options.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create report cache: %w", err)
	}

	return &Watcher{
		fsw:            fsw,
		scanner:        sc,
		logger:         logger,
		options:        options,
		onUpdate:       onUpdate,
		cache:          cache,
		reports:        make(map[string]compliance.FileReport),
		debounceTimers: make(map[string]*time.Timer),
		stopChan:       make(chan struct{}),
	}, nil
}

// Start performs an initial full scan, emits the first snapshot, then begins
// watching root's directory tree.
func (w *Watcher) Start(root string) error {
	w.root = root

	files, err := discovery.Discover(root, discovery.Options{
		Include: w.options.Include,
		Exclude: w.options.Exclude,
	})
	if err != nil {
		return fmt.Errorf("initial discovery: %w", err)
	}

	w.reportsMu.Lock()
	for _, path := range files {
		w.reports[path] = w.scanAndMemoize(path)
	}
	w.reportsMu.Unlock()
	w.emitSnapshot()

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if w.shouldIgnoreDir(path) {
			return filepath.SkipDir
		}
		if werr := w.fsw.Add(path); werr != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", werr)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("setup watches: %w", err)
	}

	w.logger.Info("watcher started", "root", root, "files", len(files))
	go w.eventLoop()
	return nil
}

// Stop shuts the watcher down. Idempotent.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)

		w.debounceMu.Lock()
		for _, timer := range w.debounceTimers {
			timer.Stop()
		}
		w.debounceTimers = make(map[string]*time.Timer)
		w.debounceMu.Unlock()

		err = w.fsw.Close()
		w.logger.Info("watcher stopped")
	})
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name
	if !w.matchesScan(path) {
		// A new directory needs a watch even though it is not scannable.
		if event.Op.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() && !w.shouldIgnoreDir(path) {
				if err := w.fsw.Add(path); err != nil {
					w.logger.Warn("failed to watch new directory", "path", path, "error", err)
				}
			}
		}
		return
	}

	w.logger.Debug("file event", "op", event.Op.String(), "file", path)

	switch {
	case event.Op.Has(fsnotify.Write), event.Op.Has(fsnotify.Create):
		w.debounceRescan(path)
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		w.removeFile(path)
	}
}

// debounceRescan schedules a re-scan once saves of the file settle.
func (w *Watcher) debounceRescan(path string) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, exists := w.debounceTimers[path]; exists {
		timer.Stop()
	}
	w.debounceTimers[path] = time.AfterFunc(
		time.Duration(w.options.DebounceMs)*time.Millisecond,
		func() {
			w.rescanFile(path)

			w.debounceMu.Lock()
			delete(w.debounceTimers, path)
			w.debounceMu.Unlock()
		},
	)
}

func (w *Watcher) rescanFile(path string) {
	report := w.scanAndMemoize(path)

	w.reportsMu.Lock()
	w.reports[path] = report
	w.reportsMu.Unlock()

	w.emitSnapshot()
}

// scanAndMemoize returns the file's report, reusing the cached one when the
// content hash is unchanged.
func (w *Watcher) scanAndMemoize(path string) compliance.FileReport {
	content, err := os.ReadFile(path)
	if err != nil {
		return compliance.FileReport{
			FilePath: path,
			Diagnostics: []compliance.Diagnostic{{
				Kind:    compliance.DiagnosticIOError,
				Message: err.Error(),
			}},
		}
	}

	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:])

	if cached, ok := w.cache.Get(path); ok && cached.hash == hash {
		w.logger.Debug("report cache hit", "file", path)
		return cached.report
	}

	report := w.scanner.ScanContent(path, content)
	w.cache.Add(path, cachedReport{hash: hash, report: report})
	return report
}

func (w *Watcher) removeFile(path string) {
	w.reportsMu.Lock()
	_, existed := w.reports[path]
	delete(w.reports, path)
	w.reportsMu.Unlock()
	w.cache.Remove(path)

	if existed {
		w.emitSnapshot()
	}
}

// emitSnapshot aggregates the current report set and hands it to the
// callback. Reports are path-sorted for the same determinism the one-shot
// scan guarantees.
func (w *Watcher) emitSnapshot() {
	w.reportsMu.Lock()
	reports := make([]compliance.FileReport, 0, len(w.reports))
	for _, r := range w.reports {
		reports = append(reports, r)
	}
	w.reportsMu.Unlock()

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].FilePath < reports[j].FilePath
	})

	w.onUpdate(scorer.Aggregate(reports, false))
}

// matchesScan reports whether path is part of the scanned set.
func (w *Watcher) matchesScan(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	exclude := w.options.Exclude
	if len(exclude) == 0 {
		exclude = discovery.DefaultExclude
	}
	for _, pattern := range exclude {
		if matched, _ := doublestar.PathMatch(pattern, rel); matched {
			return false
		}
	}

	include := w.options.Include
	if len(include) == 0 {
		include = discovery.DefaultInclude
	}
	for _, pattern := range include {
		if matched, _ := doublestar.PathMatch(pattern, rel); matched {
			return true
		}
	}
	return false
}

func (w *Watcher) shouldIgnoreDir(path string) bool {
	switch filepath.Base(path) {
	case "node_modules", ".git", "dist", "build", ".next", "coverage":
		return true
	}
	return false
}
