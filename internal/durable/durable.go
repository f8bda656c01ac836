// Package durable flushes written files to stable storage using the strongest
// primitive each platform offers.
package durable

// fder is implemented by *os.File, which is what go-billy's bound osfs hands out.
type fder interface {
	Fd() uintptr
}

// Sync flushes f to disk when it is backed by an OS file descriptor.
// Files without a descriptor (in-memory filesystems) are left alone.
func Sync(f any) error {
	d, ok := f.(fder)
	if !ok {
		return nil
	}
	return fdatasync(d.Fd())
}
