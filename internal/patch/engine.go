// Package patch applies root-bone transform patches to Spine binary skeleton
// files. Every file goes through the same transaction:
//
//  1. Backup: copy the file to <backupRoot>/<path relative to baseDir>
//  2. Load: read the whole file into memory
//  3. Locate: find the first "root" marker
//  4. Bounds-check: make sure the 16-byte block 8 bytes past it exists
//  5. Transform: decode, adjust, and re-encode the block in memory
//  6. Commit: atomically replace the file with the patched buffer
//
// The first failing step ends the transaction. Once the backup exists it is
// left in place; restoring it is an operator decision, never automatic.
//
// The package performs no logging. Progress is reported through
// DirOptions.OnFile and failures through *Error.
package patch

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/joshuapare/skelkit/internal/format"
	"github.com/joshuapare/skelkit/internal/mmfile"
)

// Engine runs patch transactions against a filesystem. It keeps no state
// between calls, so one Engine may be reused for any number of files.
type Engine struct {
	fs     billy.Filesystem
	writer *Writer

	// view loads a file for read-only inspection.
	view func(path string) ([]byte, func() error, error)
}

// Option configures an Engine.
type Option func(*Engine)

// WithMappedReads makes ReadBoneInfo memory-map files instead of reading them.
// Only meaningful for engines over the OS filesystem.
func WithMappedReads() Option {
	return func(e *Engine) {
		e.view = func(path string) ([]byte, func() error, error) {
			m, err := mmfile.Open(path)
			if err != nil {
				return nil, nil, err
			}
			return m.Bytes(), m.Close, nil
		}
	}
}

// New creates an engine over fsys.
func New(fsys billy.Filesystem, opts ...Option) *Engine {
	e := &Engine{
		fs:     fsys,
		writer: NewWriter(fsys),
	}
	e.view = func(path string) ([]byte, func() error, error) {
		data, err := util.ReadFile(e.fs, path)
		return data, func() error { return nil }, err
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewOS creates an engine over the host filesystem. Paths must be absolute.
func NewOS() *Engine {
	e := New(HostFS(), WithMappedReads())
	e.writer = NewOSWriter()
	return e
}

// Result describes one committed patch.
type Result struct {
	Path         string               `json:"path"`
	BackupPath   string               `json:"backup_path"`
	Size         int                  `json:"size"`
	MarkerOffset int                  `json:"marker_offset"`
	BlockOffset  int                  `json:"block_offset"`
	Before       format.BoneTransform `json:"before"`
	After        format.BoneTransform `json:"after"`
}

// BackupPath returns where the backup of path goes. With an empty baseDir
// only the file name is kept; otherwise the path relative to baseDir is
// mirrored under backupRoot.
func BackupPath(path, baseDir, backupRoot string) (string, error) {
	if baseDir == "" {
		return filepath.Join(backupRoot, filepath.Base(path)), nil
	}
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside %s", path, baseDir)
	}
	return filepath.Join(backupRoot, rel), nil
}

// PatchFile runs one transaction on path. baseDir controls the backup layout
// (see BackupPath) and may be empty.
func (e *Engine) PatchFile(path string, req format.PatchRequest, backupRoot, baseDir string) (Result, error) {
	res := Result{Path: path, MarkerOffset: -1, BlockOffset: -1}

	info, err := e.fs.Stat(path)
	if err != nil {
		return res, statError(path, err)
	}

	// Backup
	backup, err := BackupPath(path, baseDir, backupRoot)
	if err != nil {
		return res, newError("backup", path, format.ErrIO, err)
	}
	if err := e.fs.MkdirAll(filepath.Dir(backup), 0o755); err != nil {
		return res, newError("backup", backup, format.ErrIO, err)
	}
	if err := e.writer.CopyFile(path, backup); err != nil {
		return res, newError("backup", backup, format.ErrIO, err)
	}
	res.BackupPath = backup

	// Load
	data, err := util.ReadFile(e.fs, path)
	if err != nil {
		return res, newError("load", path, format.ErrIO, err)
	}
	res.Size = len(data)

	// Locate + bounds-check
	marker, block, err := format.Locate(data)
	res.MarkerOffset = marker
	if err != nil {
		return res, locateError(path, marker, err)
	}
	res.BlockOffset = block

	// Transform
	before, err := format.ReadTransform(data, block)
	if err != nil {
		return res, locateError(path, block, err)
	}
	after := format.Apply(before, req)
	if err := format.WriteTransform(data, block, after); err != nil {
		return res, locateError(path, block, err)
	}
	res.Before, res.After = before, after

	// Commit
	if err := e.writer.WriteAtomic(path, data, info.Mode().Perm()); err != nil {
		return res, newError("commit", path, format.ErrIO, err)
	}
	return res, nil
}

// ReadBoneInfo returns the root-bone transform stored in path without
// modifying anything. Only .skel files are accepted.
func (e *Engine) ReadBoneInfo(path string) (format.BoneTransform, error) {
	info, err := e.fs.Stat(path)
	if err != nil {
		return format.BoneTransform{}, statError(path, err)
	}
	if info.IsDir() || !HasSkelExtension(path) {
		return format.BoneTransform{}, newError("info", path, format.ErrUnsupportedExtension, nil)
	}

	data, release, err := e.view(path)
	if err != nil {
		return format.BoneTransform{}, newError("info", path, format.ErrIO, err)
	}
	defer release()

	_, block, err := format.Locate(data)
	if err != nil {
		return format.BoneTransform{}, locateError(path, -1, err)
	}
	t, err := format.ReadTransform(data, block)
	if err != nil {
		return format.BoneTransform{}, locateError(path, block, err)
	}
	return t, nil
}

// Markers lists every "root" marker in path. Diagnostic only: patching always
// uses the first one.
func (e *Engine) Markers(path string) ([]int, error) {
	if _, err := e.fs.Stat(path); err != nil {
		return nil, statError(path, err)
	}
	data, release, err := e.view(path)
	if err != nil {
		return nil, newError("markers", path, format.ErrIO, err)
	}
	defer release()
	return format.FindAllMarkers(data), nil
}

func statError(path string, err error) *Error {
	if errors.Is(err, fs.ErrNotExist) {
		return newError("stat", path, format.ErrFileNotFound, err)
	}
	return newError("stat", path, format.ErrIO, err)
}

func locateError(path string, offset int, err error) *Error {
	kind := format.ErrInsufficientData
	if errors.Is(err, format.ErrMarkerNotFound) {
		kind = format.ErrMarkerNotFound
	}
	e := newError("locate", path, kind, err)
	e.Offset = offset
	return e
}
