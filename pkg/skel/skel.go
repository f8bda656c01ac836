package skel

import (
	"fmt"
	"path/filepath"

	"github.com/joshuapare/skelkit/internal/format"
	"github.com/joshuapare/skelkit/internal/patch"
)

// BoneInfo is the transform stored for the root bone.
type BoneInfo = format.BoneTransform

// Result describes one patched file.
type Result = patch.Result

// Error is the concrete type of every failure returned by this package.
type Error = patch.Error

// Error classes.
var (
	ErrMarkerNotFound       = format.ErrMarkerNotFound
	ErrInsufficientData     = format.ErrInsufficientData
	ErrFileNotFound         = format.ErrFileNotFound
	ErrUnsupportedExtension = format.ErrUnsupportedExtension
	ErrIO                   = format.ErrIO
)

// Extension is the file extension PatchDirectory looks for.
const Extension = format.Extension

// DirectoryOptions controls PatchDirectory.
type DirectoryOptions struct {
	// BoneName limits the run to files named BoneName or BoneName.skel,
	// compared case-insensitively. Empty patches every .skel file.
	BoneName string

	// OnFile is called after each file is written.
	OnFile func(Result)
}

// ReadBoneInfo returns the root bone transform of a .skel file.
func ReadBoneInfo(path string) (BoneInfo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return BoneInfo{}, fmt.Errorf("resolving %s: %w", path, err)
	}
	return patch.NewOS().ReadBoneInfo(abs)
}

// Markers returns the offset of every "root" marker in path. The first one is
// the one PatchFile changes.
func Markers(path string) ([]int, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	return patch.NewOS().Markers(abs)
}

// PatchFile backs up path to <backupRoot>/<file name>, then adds xAdd and yAdd
// to the root bone offsets and multiplies both scales by scaleMul.
func PatchFile(path string, xAdd, yAdd int32, scaleMul float32, backupRoot string) (Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Result{Path: path}, fmt.Errorf("resolving %s: %w", path, err)
	}
	absBackup, err := filepath.Abs(backupRoot)
	if err != nil {
		return Result{Path: path}, fmt.Errorf("resolving %s: %w", backupRoot, err)
	}
	return patch.NewOS().PatchFile(abs, request(xAdd, yAdd, scaleMul), absBackup, "")
}

// PatchDirectory applies PatchFile to every .skel file below dir, mirroring the
// directory layout under backupRoot. It stops at the first failure.
func PatchDirectory(dir string, xAdd, yAdd int32, scaleMul float32, backupRoot string, opts *DirectoryOptions) (int, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return 0, fmt.Errorf("resolving %s: %w", dir, err)
	}
	absBackup, err := filepath.Abs(backupRoot)
	if err != nil {
		return 0, fmt.Errorf("resolving %s: %w", backupRoot, err)
	}

	var dopts patch.DirOptions
	if opts != nil {
		dopts.BoneName = opts.BoneName
		dopts.OnFile = opts.OnFile
	}
	return patch.NewOS().PatchDirectory(absDir, request(xAdd, yAdd, scaleMul), absBackup, &dopts)
}

// DefaultBackupRoot returns the backup directory used when none is given: a
// "backup" directory beside path. For a directory that is a sibling of the
// directory, so backups never land inside the tree being patched.
func DefaultBackupRoot(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	return filepath.Join(filepath.Dir(abs), "backup")
}

func request(xAdd, yAdd int32, scaleMul float32) format.PatchRequest {
	return format.PatchRequest{XOffsetAdd: xAdd, YOffsetAdd: yAdd, ScaleMul: scaleMul}
}
