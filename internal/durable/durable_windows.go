//go:build windows

package durable

import "golang.org/x/sys/windows"

// fdatasync uses FlushFileBuffers, which flushes data and metadata.
func fdatasync(fd uintptr) error {
	return windows.FlushFileBuffers(windows.Handle(fd))
}
