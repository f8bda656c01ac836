package patch

import (
	"errors"
	"fmt"
)

// Error describes a failed step of a patch transaction or directory walk.
//
// Kind is always one of the format sentinels (format.ErrMarkerNotFound,
// format.ErrIO, ...). Cause, when set, is the underlying error such as the
// *fs.PathError from the filesystem. Both are reachable through errors.Is and
// errors.As.
type Error struct {
	Op     string // "stat", "backup", "load", "locate", "commit", "info", "walk"
	Path   string // File or directory being processed
	Offset int    // Byte offset involved, or -1
	Kind   error  // Error class
	Cause  error  // Underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	where := e.Path
	if e.Offset >= 0 {
		where = fmt.Sprintf("%s at offset 0x%X", e.Path, e.Offset)
	}
	switch {
	case e.Cause == nil:
		return fmt.Sprintf("%s %s: %v", e.Op, where, e.Kind)
	case errors.Is(e.Cause, e.Kind):
		return fmt.Sprintf("%s %s: %v", e.Op, where, e.Cause)
	default:
		return fmt.Sprintf("%s %s: %v: %v", e.Op, where, e.Kind, e.Cause)
	}
}

// Unwrap returns the error class and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func newError(op, path string, kind, cause error) *Error {
	return &Error{Op: op, Path: path, Offset: -1, Kind: kind, Cause: cause}
}
