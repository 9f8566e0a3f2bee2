package entropy

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"syscall"
	"time"

	"github.com/kula-app/shannonentropy/internal/logging"
)

// Calculator computes the byte entropy of files
type Calculator struct {
	logger     *slog.Logger
	windowSize int64
}

// NewCalculator creates a new calculator that scans windowSize bytes at a time
func NewCalculator(logger *slog.Logger, windowSize int64) *Calculator {
	return &Calculator{
		logger:     logger,
		windowSize: windowSize,
	}
}

// WindowSize returns the number of bytes scanned per window
func (c *Calculator) WindowSize() int64 {
	return c.windowSize
}

// Compute returns the Shannon entropy of the file at path in bits per byte.
// Empty files have entropy 0. Every failure is reported as an *IOError.
func (c *Calculator) Compute(path string) (float64, error) {
	startTime := time.Now()

	f, err := os.OpenFile(path, openFlags, 0)
	if err != nil {
		return 0, newIOError("open", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, newIOError("stat", path, err)
	}
	if info.IsDir() {
		return 0, &IOError{Op: "stat", Path: path, Err: syscall.EISDIR}
	}
	if !info.Mode().IsRegular() {
		return 0, &IOError{Op: "stat", Path: path, Err: ErrNotRegular}
	}

	size := info.Size()
	if size == 0 {
		c.logger.Debug("empty file, skipping scan", "path", path)
		return 0, nil
	}

	c.logger.Debug("scanning file",
		"path", path,
		"size_bytes", size,
		"window_size", c.windowSize,
		"windows", windowCount(size, c.windowSize))

	var h Histogram
	if err := c.scanFile(f, path, size, &h); err != nil {
		return 0, err
	}

	entropy := h.Entropy()
	c.logger.Debug("entropy computed",
		"path", path,
		"bytes_read", h.Total(),
		"entropy", entropy,
		logging.Since(startTime))

	return entropy, nil
}

// ComputeReader returns the Shannon entropy of the next size bytes of r.
// A reader that ends early fails with io.ErrUnexpectedEOF.
func (c *Calculator) ComputeReader(r io.Reader, size int64) (float64, error) {
	if size == 0 {
		return 0, nil
	}

	var h Histogram
	if err := readWindows(r, size, c.windowSize, &h); err != nil {
		return 0, &IOError{Op: "read", Err: err}
	}
	return h.Entropy(), nil
}

// readFileWindows scans f from offset up to size with buffered reads
func readFileWindows(f *os.File, path string, offset, size, window int64, h *Histogram) error {
	section := io.NewSectionReader(f, offset, size-offset)
	if err := readWindows(section, size-offset, window, h); err != nil {
		return &IOError{Op: "read", Path: path, Err: err}
	}
	return nil
}

// readWindows feeds exactly size bytes of r into h, reusing one buffer of at most window bytes
func readWindows(r io.Reader, size, window int64, h *Histogram) error {
	if window <= 0 {
		window = size
	}
	buf := make([]byte, min(window, size))

	var pos int64
	for pos < size {
		n := min(int64(len(buf)), size-pos)
		if _, err := io.ReadFull(r, buf[:n]); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return err
		}
		_, _ = h.Write(buf[:n])
		pos += n
	}
	return nil
}

// windowCount returns how many windows of the given size cover size bytes
func windowCount(size, window int64) int64 {
	if window <= 0 {
		return 1
	}
	return (size + window - 1) / window
}

// newIOError strips the *fs.PathError the os package already wraps around err
// so the path is not repeated in the message
func newIOError(op, path string, err error) *IOError {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &IOError{Op: op, Path: path, Err: err}
}
