// Package input reads expression files, one expression per line.
// Plain, .gz and .xz files are supported.
package input

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	sferrors "github.com/FocuswithJustin/sparkfn/core/errors"
)

// maxLineSize bounds a single expression line.
const maxLineSize = 16 * 1024 * 1024

// Reader wraps an expression source with automatic decompression handling.
type Reader struct {
	r            io.Reader
	name         string
	file         *os.File
	decompressor io.Closer
}

// Open opens path, detecting .gz and .xz compression from the suffix.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sferrors.NewIO("open", path, err)
	}

	var reader io.Reader = f
	var decompressor io.Closer

	switch {
	case strings.HasSuffix(path, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, sferrors.NewIO("xz reader", path, err)
		}
		reader = xzr
	case strings.HasSuffix(path, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, sferrors.NewIO("gzip reader", path, err)
		}
		reader = gzr
		decompressor = gzr
	}

	return &Reader{r: reader, name: path, file: f, decompressor: decompressor}, nil
}

// NewReader wraps an already open stream such as stdin. Close does not
// close r.
func NewReader(r io.Reader, name string) *Reader {
	return &Reader{r: r, name: name}
}

// Name returns the path or label the reader was created with.
func (r *Reader) Name() string {
	return r.name
}

// Close closes the reader and any underlying decompressor.
func (r *Reader) Close() error {
	var errs []error
	if r.decompressor != nil {
		if err := r.decompressor.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if r.file != nil {
		if err := r.file.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Visitor is called for each expression line. Return true to stop.
type Visitor func(lineNo int, line string) (stop bool, err error)

// Iterate calls visitor for every non-blank line that is not a # comment.
// Line numbers are 1-based and count skipped lines.
func (r *Reader) Iterate(visitor Visitor) error {
	scanner := bufio.NewScanner(r.r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		stop, err := visitor(lineNo, line)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return sferrors.NewIO("read", r.name, err)
	}
	return nil
}
