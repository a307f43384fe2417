package util

import (
	"log/slog"
	"os"

	"github.com/edsrzf/mmap-go"
)

// FileReader abstracts how scan workers get a file's bytes. The scanner only
// needs a read of the whole file; the indirection exists so tests can inject
// failures and so the mmap fast path can be swapped out.
type FileReader interface {
	// ReadFile returns the file's full contents. The returned slice must not
	// be retained past the next call for the same path.
	ReadFile(path string) ([]byte, error)
}

// OSFileReader reads via os.ReadFile. The zero value is ready to use.
type OSFileReader struct{}

func (OSFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MmapFileReader maps files into memory instead of copying them through a
// read syscall. For scan workloads every byte of the file is touched exactly
// once, so the win is avoiding the copy for large component files; small
// files fall back to a plain read, as does any mmap failure.
type MmapFileReader struct {
	// MinSize is the file size below which mapping is not worth the syscall
	// overhead. Zero means DefaultMmapMinSize.
	MinSize int64

	Logger *slog.Logger
}

// DefaultMmapMinSize is the default threshold for choosing mmap over read.
const DefaultMmapMinSize = 16 * 1024

// ReadFile returns the file's contents, memory-mapping large files.
//
// The mapping is unmapped before returning and the bytes are copied out, so
// callers get an ordinary heap slice; keeping every scanned file mapped for
// the life of the run would hold file descriptors for no benefit since a
// file is read exactly once per scan.
func (r *MmapFileReader) ReadFile(path string) ([]byte, error) {
	minSize := r.MinSize
	if minSize == 0 {
		minSize = DefaultMmapMinSize
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() < minSize {
		return os.ReadFile(path)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		if r.Logger != nil {
			r.Logger.Debug("mmap failed, falling back to read", "file", path, "error", err)
		}
		return os.ReadFile(path)
	}
	defer func() {
		if uerr := m.Unmap(); uerr != nil && r.Logger != nil {
			r.Logger.Warn("unmap failed", "file", path, "error", uerr)
		}
	}()

	out := make([]byte, len(m))
	copy(out, m)
	return out, nil
}

// NewMmapFileReader returns an mmap-backed reader with defaults applied.
func NewMmapFileReader(logger *slog.Logger) *MmapFileReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &MmapFileReader{Logger: logger}
}

var _ FileReader = OSFileReader{}
var _ FileReader = (*MmapFileReader)(nil)
