// Package testutil builds synthetic Spine skeleton fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/skelkit/internal/format"
)

// Filler is the byte used to pad synthetic skeletons. It never occurs in RootMarker.
const Filler = 0xAB

// BuildSkel returns a size-byte buffer with the root marker at markerAt and t
// encoded at markerAt+format.TransformGap. The four bytes between the marker
// and the transform block are zero, as in a real bone record.
//
// BuildSkel panics if the marker and block do not fit, so fixture mistakes
// surface immediately.
func BuildSkel(size, markerAt int, t format.BoneTransform) []byte {
	b := make([]byte, size)
	for i := range b {
		b[i] = Filler
	}
	copy(b[markerAt:], format.RootMarker)
	for i := markerAt + format.MarkerSize; i < markerAt+format.TransformGap; i++ {
		b[i] = 0
	}
	if err := format.WriteTransform(b, format.TransformOffset(markerAt), t); err != nil {
		panic(err)
	}
	return b
}

// WithMarker copies RootMarker into b at off and returns b. Used to plant decoys.
func WithMarker(b []byte, off int) []byte {
	copy(b[off:], format.RootMarker)
	return b
}

// WriteFile writes data to dir/rel on the OS filesystem, creating parent
// directories, and returns the full path.
func WriteFile(t *testing.T, dir, rel string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
