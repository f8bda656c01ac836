package patch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/joshuapare/skelkit/internal/durable"
)

const tempPrefix = ".skelkit-"

// chmoder is implemented by files backed by *os.File.
type chmoder interface {
	Chmod(mode os.FileMode) error
}

// Writer provides atomic file operations on a billy filesystem.
// Writes use the temp-file-then-rename pattern so a crash never leaves a
// half-written skeleton at the target path.
type Writer struct {
	fs billy.Filesystem

	// syncDir flushes a directory after a rename. Nil on filesystems
	// without durable directories.
	syncDir func(dir string) error
}

// NewWriter creates a writer over fs.
func NewWriter(fs billy.Filesystem) *Writer {
	return &Writer{fs: fs}
}

// HostFS returns the host filesystem rooted at "/". Paths must be absolute.
// Files it opens are plain *os.File values, so durable.Sync reaches fdatasync.
func HostFS() billy.Filesystem {
	return osfs.New("/", osfs.WithBoundOS())
}

// NewOSWriter creates a writer over HostFS that also syncs the parent
// directory after each rename.
func NewOSWriter() *Writer {
	return &Writer{fs: HostFS(), syncDir: durable.SyncDir}
}

// WriteAtomic replaces path with data.
//
// Steps:
//  1. Create a temporary file in the same directory as path
//  2. Write data and flush it to disk
//  3. Apply perm when the file or filesystem supports chmod
//  4. Rename the temporary file over path
//  5. Sync the parent directory, when the writer supports it
//
// If any step fails, the temporary file is removed and path is unchanged.
func (w *Writer) WriteAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := w.fs.TempFile(filepath.Dir(path), tempPrefix)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		w.fs.Remove(tmpPath)
	}

	if _, writeErr := tmp.Write(data); writeErr != nil {
		cleanup()
		return fmt.Errorf("writing to temp file: %w", writeErr)
	}
	if syncErr := durable.Sync(tmp); syncErr != nil {
		cleanup()
		return fmt.Errorf("syncing temp file: %w", syncErr)
	}
	chmodDone := false
	if c, ok := tmp.(chmoder); ok && perm != 0 {
		if chmodErr := c.Chmod(perm); chmodErr != nil {
			cleanup()
			return fmt.Errorf("setting mode on temp file: %w", chmodErr)
		}
		chmodDone = true
	}
	// Close before rename (required on Windows)
	if closeErr := tmp.Close(); closeErr != nil {
		w.fs.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if ch, ok := w.fs.(billy.Change); ok && perm != 0 && !chmodDone {
		if chmodErr := ch.Chmod(tmpPath, perm); chmodErr != nil {
			w.fs.Remove(tmpPath)
			return fmt.Errorf("setting mode on temp file: %w", chmodErr)
		}
	}

	if renameErr := w.fs.Rename(tmpPath, path); renameErr != nil {
		w.fs.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", renameErr)
	}

	// Best effort: the new contents are already in place.
	if w.syncDir != nil {
		_ = w.syncDir(filepath.Dir(path))
	}
	return nil
}

// CopyFile copies src to dst, replacing any existing dst, and verifies the
// copy has the same size as the source.
func (w *Writer) CopyFile(src, dst string) error {
	info, err := w.fs.Stat(src)
	if err != nil {
		return fmt.Errorf("source file not found: %w", err)
	}

	in, err := w.fs.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	if _, statErr := w.fs.Stat(dst); statErr == nil {
		if rmErr := w.fs.Remove(dst); rmErr != nil {
			return fmt.Errorf("removing previous copy: %w", rmErr)
		}
	}

	out, err := w.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	// A failed copy must not leave a partial backup behind.
	if _, copyErr := io.Copy(out, in); copyErr != nil {
		out.Close()
		w.fs.Remove(dst)
		return fmt.Errorf("copying data: %w", copyErr)
	}
	if syncErr := durable.Sync(out); syncErr != nil {
		out.Close()
		w.fs.Remove(dst)
		return fmt.Errorf("syncing destination file: %w", syncErr)
	}
	if closeErr := out.Close(); closeErr != nil {
		w.fs.Remove(dst)
		return fmt.Errorf("closing destination file: %w", closeErr)
	}

	if verifyErr := w.verifyCopy(dst, info.Size()); verifyErr != nil {
		w.fs.Remove(dst)
		return verifyErr
	}
	return nil
}

// verifyCopy checks that the copy exists and has the expected size.
func (w *Writer) verifyCopy(path string, expectedSize int64) error {
	stat, err := w.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("copy not found: %w", err)
	}
	if stat.Size() != expectedSize {
		return fmt.Errorf("copy size mismatch: expected %d, got %d", expectedSize, stat.Size())
	}
	return nil
}
