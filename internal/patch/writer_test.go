package patch

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
)

func TestWriter_WriteAtomic(t *testing.T) {
	fsys := memfs.New()
	writer := NewWriter(fsys)

	testData := []byte("Hello, root!")
	if err := writer.WriteAtomic("/d/test.skel", testData, 0o644); err != nil {
		t.Fatalf("WriteAtomic failed: %v", err)
	}
	readData := readMem(t, fsys, "/d/test.skel")
	if !bytes.Equal(readData, testData) {
		t.Errorf("data mismatch\nexpected: %v\ngot:      %v", testData, readData)
	}

	// No temp files are left behind.
	entries, err := fsys.ReadDir("/d")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), tempPrefix) {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestWriter_WriteAtomic_Overwrite(t *testing.T) {
	fsys := memfs.New()
	writer := NewWriter(fsys)

	if err := writer.WriteAtomic("/d/test.skel", []byte("initial data"), 0o644); err != nil {
		t.Fatalf("initial write failed: %v", err)
	}
	newData := []byte("new data that is longer")
	if err := writer.WriteAtomic("/d/test.skel", newData, 0o644); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	if got := readMem(t, fsys, "/d/test.skel"); !bytes.Equal(got, newData) {
		t.Errorf("data mismatch after overwrite\nexpected: %v\ngot:      %v", newData, got)
	}
}

func TestWriter_WriteAtomic_PreservesMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.skel")
	if err := os.WriteFile(path, []byte("before"), 0o640); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	writer := NewOSWriter()
	if err := writer.WriteAtomic(path, []byte("after!"), 0o640); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Errorf("mode = %v, want 0640", info.Mode().Perm())
	}
	data, _ := os.ReadFile(path)
	if string(data) != "after!" {
		t.Errorf("content = %q, want %q", data, "after!")
	}
}

func TestWriter_WriteAtomic_InvalidPath(t *testing.T) {
	writer := NewOSWriter()
	err := writer.WriteAtomic(filepath.Join(t.TempDir(), "missing", "dir", "test.skel"), []byte("test"), 0o644)
	if err == nil {
		t.Fatal("expected error for invalid path")
	}
}

func TestWriter_CopyFile(t *testing.T) {
	fsys := memfs.New()
	writer := NewWriter(fsys)
	writeMem(t, fsys, "/src/hero.skel", []byte("source data for backup"))
	writeMem(t, fsys, "/dst/hero.skel", []byte("older, longer backup that must be replaced"))

	if err := writer.CopyFile("/src/hero.skel", "/dst/hero.skel"); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}
	if got := readMem(t, fsys, "/dst/hero.skel"); string(got) != "source data for backup" {
		t.Errorf("copy content = %q", got)
	}
}

func TestWriter_CopyFile_MissingSource(t *testing.T) {
	writer := NewWriter(memfs.New())
	if err := writer.CopyFile("/src/none.skel", "/dst/none.skel"); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestWriter_WriteAtomic_SyncsParentDir(t *testing.T) {
	writer := NewWriter(memfs.New())
	var synced []string
	writer.syncDir = func(dir string) error {
		synced = append(synced, dir)
		return errors.New("not supported")
	}

	if err := writer.WriteAtomic("/d/test.skel", []byte("data"), 0o644); err != nil {
		t.Fatalf("WriteAtomic should ignore directory sync failures: %v", err)
	}
	if len(synced) != 1 || synced[0] != "/d" {
		t.Errorf("synced dirs = %v, want [/d]", synced)
	}
}

func TestNewOSWriter_SyncsDirectories(t *testing.T) {
	writer := NewOSWriter()
	if writer.syncDir == nil {
		t.Fatal("OS writer should sync directories")
	}
	path := filepath.Join(t.TempDir(), "hero.skel")
	if err := writer.WriteAtomic(path, []byte("root"), 0o644); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}
}

func TestNewOS_CommitFilesHaveDescriptor(t *testing.T) {
	e := NewOS()
	f, err := e.writer.fs.TempFile(t.TempDir(), tempPrefix)
	if err != nil {
		t.Fatalf("TempFile: %v", err)
	}
	defer f.Close()
	if _, ok := f.(interface{ Fd() uintptr }); !ok {
		t.Fatalf("commit temp file %T does not expose Fd, so it would never be flushed", f)
	}
}

// failingReadFS opens files whose reads always fail.
type failingReadFS struct {
	billy.Filesystem
}

func (fs failingReadFS) Open(name string) (billy.File, error) {
	f, err := fs.Filesystem.Open(name)
	if err != nil {
		return nil, err
	}
	return failingReadFile{f}, nil
}

type failingReadFile struct {
	billy.File
}

func (failingReadFile) Read([]byte) (int, error) {
	return 0, errors.New("device error")
}

func TestWriter_CopyFile_FailureRemovesPartialCopy(t *testing.T) {
	fsys := memfs.New()
	writeMem(t, fsys, "/src/hero.skel", []byte("source data for backup"))
	writeMem(t, fsys, "/dst/hero.skel", []byte("previous backup"))

	writer := NewWriter(failingReadFS{fsys})
	if err := writer.CopyFile("/src/hero.skel", "/dst/hero.skel"); err == nil {
		t.Fatal("expected copy error")
	}
	if _, err := fsys.Stat("/dst/hero.skel"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("partial backup left behind: stat err = %v", err)
	}
}
