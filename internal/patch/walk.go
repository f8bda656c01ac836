package patch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-git/go-billy/v5/util"

	"github.com/joshuapare/skelkit/internal/format"
)

// DirOptions controls PatchDirectory.
type DirOptions struct {
	// BoneName restricts the batch to files named BoneName or BoneName.skel
	// (case-insensitive). Empty means every .skel file.
	BoneName string

	// OnFile is called after each file is committed, in processing order.
	OnFile func(Result)
}

// FindSkeletons returns every .skel file below dir that passes filter, in
// lexical path order. Directories at or below skip are not descended into.
func (e *Engine) FindSkeletons(dir string, filter NameFilter, skip string) ([]string, error) {
	skip = filepath.Clean(skip)
	var out []string
	err := util.Walk(e.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if skip != "." && path != dir && filepath.Clean(path) == skip {
				return filepath.SkipDir
			}
			return nil
		}
		if HasSkelExtension(path) && filter.Match(path) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(out)
	return out, nil
}

// PatchDirectory patches every matching skeleton below dir, mirroring the
// directory layout under backupRoot. It stops at the first failure and
// returns the number of files committed before it.
//
// The file list is collected before the first file is touched, so backups
// written during the run are never picked up, even when backupRoot lies
// inside dir.
func (e *Engine) PatchDirectory(dir string, req format.PatchRequest, backupRoot string, opts *DirOptions) (int, error) {
	if opts == nil {
		opts = &DirOptions{}
	}

	info, err := e.fs.Stat(dir)
	if err != nil {
		return 0, statError(dir, err)
	}
	if !info.IsDir() {
		return 0, newError("walk", dir, format.ErrIO, fmt.Errorf("not a directory"))
	}

	files, err := e.FindSkeletons(dir, NewNameFilter(opts.BoneName), backupRoot)
	if err != nil {
		kind := format.ErrIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = format.ErrFileNotFound
		}
		return 0, newError("walk", dir, kind, err)
	}

	count := 0
	for _, file := range files {
		res, err := e.PatchFile(file, req, backupRoot, dir)
		if err != nil {
			return count, err
		}
		count++
		if opts.OnFile != nil {
			opts.OnFile(res)
		}
	}
	return count, nil
}
