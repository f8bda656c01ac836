//go:build unix

package durable

import "os"

// SyncDir fsyncs the directory dir so a rename inside it survives a crash.
func SyncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}
