//go:build unix && !linux && !freebsd && !darwin

package durable

import "golang.org/x/sys/unix"

func fdatasync(fd uintptr) error {
	return unix.Fsync(int(fd))
}
