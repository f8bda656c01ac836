package format

import "errors"

var (
	// ErrMarkerNotFound indicates the buffer contains no "root" marker.
	ErrMarkerNotFound = errors.New("format: root marker not found")
	// ErrInsufficientData indicates the buffer lacked the bytes required for the transform block.
	ErrInsufficientData = errors.New("format: insufficient data for transform block")
	// ErrFileNotFound indicates the requested skeleton file does not exist.
	ErrFileNotFound = errors.New("format: file not found")
	// ErrUnsupportedExtension indicates a file that is not a .skel skeleton.
	ErrUnsupportedExtension = errors.New("format: unsupported file extension")
	// ErrIO indicates a backup, read, or write failure. It is always joined with the OS error.
	ErrIO = errors.New("format: i/o failure")
)
