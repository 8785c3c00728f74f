package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrNotFound is returned when a source does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Opener resolves a source identifier into a readable stream.
//
// The returned stream is exclusively owned by the caller and must be closed
// on every path.
type Opener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Local opens sources from the local filesystem. Sources with a compression
// extension (.gz, .zst, .lz4) are decompressed transparently.
type Local struct {
	root string
}

// NewLocal creates a local opener. Names are resolved relative to root;
// an empty root leaves names untouched (absolute or cwd-relative paths).
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Open opens the named file for reading.
func (s *Local) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := name
	if s.root != "" {
		path = filepath.Join(s.root, name)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	rc, err := decompress(path, f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return rc, nil
}

// decompress wraps f with a decompressor selected by file extension.
func decompress(path string, f *os.File) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &layeredReadCloser{r: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		closeDecoder := closerFunc(func() error {
			dec.Close()
			return nil
		})
		return &layeredReadCloser{r: dec, closers: []io.Closer{closeDecoder, f}}, nil
	case ".lz4":
		return &layeredReadCloser{r: lz4.NewReader(f), closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// layeredReadCloser reads from r and closes the closers in order.
type layeredReadCloser struct {
	r       io.Reader
	closers []io.Closer
}

func (l *layeredReadCloser) Read(p []byte) (int, error) {
	return l.r.Read(p)
}

func (l *layeredReadCloser) Close() error {
	var firstErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
