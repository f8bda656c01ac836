/*
Package skel adjusts the root bone of Spine binary skeleton (.skel) files.

The root bone's x/y offset and x/y scale are stored as four big-endian
float32 values, 8 bytes after the first occurrence of the bone name "root".
skel finds that marker, adds whole-number offsets to x and y, multiplies both
scales, and writes the file back in place after copying it to a backup
directory.

# Quick Start

Inspect a skeleton:

	info, err := skel.ReadBoneInfo("hero.skel")
	fmt.Printf("x=%v y=%v sx=%v sy=%v\n", info.XOffset, info.YOffset, info.ScaleX, info.ScaleY)

Move a skeleton 260 units up and double its size:

	_, err := skel.PatchFile("hero.skel", 0, 260, 2.0, skel.DefaultBackupRoot("hero.skel"))

Patch every skeleton below a directory:

	n, err := skel.PatchDirectory("assets", 0, 260, 1.0, skel.DefaultBackupRoot("assets"), nil)

# Backups

Each file is copied to <backupRoot>/<path> before it is changed. For
PatchFile only the file name is kept; for PatchDirectory the layout below the
directory is mirrored. An existing backup at the same path is replaced.
Backups are never restored automatically.

# Limitations

The marker search is a plain byte scan. If "root" appears in the file before
the real root bone record, that earlier position is patched. Use Markers to
see every occurrence before patching an unfamiliar file.

# Error Handling

Failures wrap one of ErrMarkerNotFound, ErrInsufficientData, ErrFileNotFound,
ErrUnsupportedExtension or ErrIO; test with errors.Is. PatchDirectory stops at
the first failing file and returns how many files were committed before it.
*/
package skel
