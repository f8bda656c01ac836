// Package format houses the low-level codec for the slice of the Spine binary
// skeleton (.skel) format that skelkit touches: the "root" bone marker and the
// 16-byte transform block that follows it. Nothing else in the file is decoded.
package format

// Extension is the file extension of Spine binary skeletons.
const Extension = ".skel"

var (
	// RootMarker is the literal bone name searched for in the file.
	// Layout:
	//   0x00  'r' 'o' 'o' 't'
	RootMarker = []byte{'r', 'o', 'o', 't'}
)

const (
	// MarkerSize is the length of RootMarker.
	MarkerSize = 4

	// TransformGap is the distance from the start of the marker to the first
	// transform field. The four bytes after the marker text are part of the
	// bone record and are left untouched.
	TransformGap = 8

	// TransformSize is the size of the transform block: four big-endian float32.
	//   0x00  x offset
	//   0x04  y offset
	//   0x08  x scale
	//   0x0C  y scale
	TransformSize = 16

	xOffsetField = 0x00
	yOffsetField = 0x04
	scaleXField  = 0x08
	scaleYField  = 0x0C
)
