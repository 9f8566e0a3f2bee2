//go:build unix

package entropy

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// O_NONBLOCK keeps open from hanging on a FIFO; it is rejected at stat time
const openFlags = os.O_RDONLY | unix.O_NONBLOCK

// scanFile maps the file one window at a time. When the filesystem refuses
// to map it, the rest of the file is read through a buffer instead.
func (c *Calculator) scanFile(f *os.File, path string, size int64, h *Histogram) error {
	scanned, err := mmapWindows(f, path, size, c.windowSize, h)
	if err == nil {
		return nil
	}
	if !mmapRefused(err) {
		return err
	}

	c.logger.Debug("mmap unavailable, falling back to buffered reads",
		"path", path,
		"offset", scanned,
		"error", err)

	return readFileWindows(f, path, scanned, size, c.windowSize, h)
}

// mmapWindows maps, scans and unmaps consecutive windows of f. It returns the
// number of bytes scanned before any failure.
func mmapWindows(f *os.File, path string, size, window int64, h *Histogram) (int64, error) {
	window = pageAlign(window)
	fd := int(f.Fd())

	var pos int64
	for pos < size {
		length := min(window, size-pos)

		data, err := unix.Mmap(fd, pos, int(length), unix.PROT_READ, unix.MAP_PRIVATE)
		if err != nil {
			return pos, &IOError{Op: "mmap", Path: path, Err: err}
		}

		_, _ = h.Write(data)

		// Munmap releases exactly len(data), the extent of this window
		if err := unix.Munmap(data); err != nil {
			return pos + length, &IOError{Op: "munmap", Path: path, Err: err}
		}
		pos += length
	}

	return pos, nil
}

// mmapRefused reports whether err means the file cannot be mapped at all,
// as opposed to a failure while reading it
func mmapRefused(err error) bool {
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "mmap" {
		return false
	}
	return errors.Is(err, unix.ENODEV) ||
		errors.Is(err, unix.EACCES) ||
		errors.Is(err, unix.EINVAL)
}

// pageAlign rounds window up to a whole number of pages so every mapping
// offset is page aligned
func pageAlign(window int64) int64 {
	ps := int64(unix.Getpagesize())
	if window <= 0 {
		return ps
	}
	if rem := window % ps; rem != 0 {
		window += ps - rem
	}
	return window
}
