package entropy

import "errors"

// ErrNotRegular is returned for paths that are neither regular files nor directories,
// such as devices, sockets and named pipes
var ErrNotRegular = errors.New("not a regular file")

// IOError records a failed file operation and the path it was applied to
type IOError struct {
	Op   string // "open", "stat", "mmap", "munmap" or "read"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}
