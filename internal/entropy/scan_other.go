//go:build !unix

package entropy

import "os"

const openFlags = os.O_RDONLY

func (c *Calculator) scanFile(f *os.File, path string, size int64, h *Histogram) error {
	return readFileWindows(f, path, 0, size, c.windowSize, h)
}
