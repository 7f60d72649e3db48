package action

import (
	"errors"
	"fmt"
)

// ErrNoLocation is returned by Write when the descriptor has no backing
// path. Writing an in-memory-only descriptor with no known destination is
// unsupported.
var ErrNoLocation = errors.New("descriptor has no target location")

// IOError wraps a filesystem or serialization failure encountered while
// persisting a descriptor. Write reports directory creation, file open,
// and encoding failures uniformly through this type; match it with
// errors.As.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("writing descriptor %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
