//go:build darwin

package durable

import "golang.org/x/sys/unix"

// fdatasync uses F_FULLFSYNC so the data leaves the drive cache as well.
// Falls back to fsync when the filesystem rejects F_FULLFSYNC.
func fdatasync(fd uintptr) error {
	if _, err := unix.FcntlInt(fd, unix.F_FULLFSYNC, 0); err == nil {
		return nil
	}
	return unix.Fsync(int(fd))
}
