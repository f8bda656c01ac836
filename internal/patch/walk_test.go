package patch

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/skelkit/internal/format"
	"github.com/joshuapare/skelkit/internal/testutil"
)

func TestPatchDirectory_CountsOnlySkeletons(t *testing.T) {
	fsys := memfs.New()
	skel := testutil.BuildSkel(96, 10, defaultBone)
	other := testutil.BuildSkel(96, 10, defaultBone)
	writeMem(t, fsys, "/assets/a.skel", skel)
	writeMem(t, fsys, "/assets/chars/b.skel", skel)
	writeMem(t, fsys, "/assets/chars/deep/c.SKEL", skel)
	writeMem(t, fsys, "/assets/chars/b.atlas", other)

	var seen []string
	count, err := New(fsys).PatchDirectory("/assets",
		format.PatchRequest{XOffsetAdd: 10, YOffsetAdd: 5, ScaleMul: 2},
		"/backup",
		&DirOptions{OnFile: func(r Result) { seen = append(seen, r.Path) }})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, []string{
		"/assets/a.skel",
		"/assets/chars/b.skel",
		"/assets/chars/deep/c.SKEL",
	}, seen)

	for _, p := range seen {
		got, err := format.ReadTransform(readMem(t, fsys, p), 18)
		require.NoError(t, err)
		assert.Equal(t, format.BoneTransform{XOffset: 10, YOffset: -255, ScaleX: 2, ScaleY: 2}, got, p)
	}

	assert.Equal(t, other, readMem(t, fsys, "/assets/chars/b.atlas"))
	assert.False(t, exists(fsys, "/backup/chars/b.atlas"))

	assert.Equal(t, skel, readMem(t, fsys, "/backup/a.skel"))
	assert.Equal(t, skel, readMem(t, fsys, "/backup/chars/b.skel"))
	assert.Equal(t, skel, readMem(t, fsys, "/backup/chars/deep/c.SKEL"))
}

func TestPatchDirectory_NameFilter(t *testing.T) {
	fsys := memfs.New()
	skel := testutil.BuildSkel(64, 0, defaultBone)
	writeMem(t, fsys, "/assets/hero.skel", skel)
	writeMem(t, fsys, "/assets/upper/HERO.skel", skel)
	writeMem(t, fsys, "/assets/villain.skel", skel)
	writeMem(t, fsys, "/assets/hero", skel)
	writeMem(t, fsys, "/assets/superhero.skel", skel)

	var seen []string
	count, err := New(fsys).PatchDirectory("/assets", format.PatchRequest{XOffsetAdd: 1, ScaleMul: 1}, "/bk",
		&DirOptions{BoneName: "  hero ", OnFile: func(r Result) { seen = append(seen, r.Path) }})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"/assets/hero.skel", "/assets/upper/HERO.skel"}, seen)

	// Files outside the extension set are never candidates, even when the name matches.
	assert.Equal(t, skel, readMem(t, fsys, "/assets/hero"))
	assert.Equal(t, skel, readMem(t, fsys, "/assets/villain.skel"))
	assert.Equal(t, skel, readMem(t, fsys, "/assets/superhero.skel"))
}

func TestPatchDirectory_FilterWithExtension(t *testing.T) {
	fsys := memfs.New()
	skel := testutil.BuildSkel(64, 0, defaultBone)
	writeMem(t, fsys, "/assets/hero.skel", skel)
	writeMem(t, fsys, "/assets/villain.skel", skel)

	count, err := New(fsys).PatchDirectory("/assets", format.PatchRequest{ScaleMul: 1}, "/bk",
		&DirOptions{BoneName: "Hero.Skel"})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPatchDirectory_FailFast(t *testing.T) {
	fsys := memfs.New()
	good := testutil.BuildSkel(64, 0, defaultBone)
	bad := make([]byte, 64)
	writeMem(t, fsys, "/assets/a.skel", good)
	writeMem(t, fsys, "/assets/b.skel", bad)
	writeMem(t, fsys, "/assets/c.skel", good)

	count, err := New(fsys).PatchDirectory("/assets", format.PatchRequest{XOffsetAdd: 7, ScaleMul: 1}, "/bk", nil)
	require.ErrorIs(t, err, format.ErrMarkerNotFound)
	assert.Equal(t, 1, count)
	assert.Contains(t, err.Error(), "/assets/b.skel")

	assert.NotEqual(t, good, readMem(t, fsys, "/assets/a.skel"))
	assert.Equal(t, good, readMem(t, fsys, "/assets/c.skel"), "files after the failure are not touched")
	assert.False(t, exists(fsys, "/bk/c.skel"))
}

func TestPatchDirectory_SkipsBackupRootInside(t *testing.T) {
	fsys := memfs.New()
	skel := testutil.BuildSkel(64, 0, defaultBone)
	writeMem(t, fsys, "/assets/a.skel", skel)
	writeMem(t, fsys, "/assets/backup/old.skel", skel)

	count, err := New(fsys).PatchDirectory("/assets", format.PatchRequest{XOffsetAdd: 1, ScaleMul: 1}, "/assets/backup", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, skel, readMem(t, fsys, "/assets/backup/old.skel"))
	assert.Equal(t, skel, readMem(t, fsys, "/assets/backup/a.skel"))
}

func TestPatchDirectory_Empty(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("/assets", 0o755))

	count, err := New(fsys).PatchDirectory("/assets", format.PatchRequest{ScaleMul: 1}, "/bk", nil)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.False(t, exists(fsys, "/bk"))
}

func TestPatchDirectory_BadRoot(t *testing.T) {
	fsys := memfs.New()
	writeMem(t, fsys, "/assets/a.skel", testutil.BuildSkel(64, 0, defaultBone))
	e := New(fsys)

	_, err := e.PatchDirectory("/nowhere", format.PatchRequest{ScaleMul: 1}, "/bk", nil)
	assert.ErrorIs(t, err, format.ErrFileNotFound)

	_, err = e.PatchDirectory("/assets/a.skel", format.PatchRequest{ScaleMul: 1}, "/bk", nil)
	assert.ErrorIs(t, err, format.ErrIO)
}

func TestNameFilter(t *testing.T) {
	tests := []struct {
		filter string
		path   string
		want   bool
	}{
		{filter: "hero", path: "/a/hero.skel", want: true},
		{filter: "hero", path: "/a/hero", want: true},
		{filter: "hero", path: "/a/HERO.skel", want: true},
		{filter: "HERO", path: "/a/hero.SKEL", want: true},
		{filter: "hero.skel", path: "/a/Hero.skel", want: true},
		{filter: "hero", path: "/a/heroes.skel", want: false},
		{filter: "hero", path: "/a/hero.skel.bak", want: false},
		{filter: "hero", path: "/hero/villain.skel", want: false},
		{filter: "straße", path: "/a/STRASSE.skel", want: true},
		{filter: "", path: "/a/anything.skel", want: true},
		{filter: "   ", path: "/a/anything.skel", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.filter+"|"+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, NewNameFilter(tt.filter).Match(tt.path))
		})
	}
}

func TestHasSkelExtension(t *testing.T) {
	assert.True(t, HasSkelExtension("a.skel"))
	assert.True(t, HasSkelExtension("/x/A.SKEL"))
	assert.True(t, HasSkelExtension("/x/a.Skel"))
	assert.False(t, HasSkelExtension("/x/a.skel.bak"))
	assert.False(t, HasSkelExtension("/x/a.skelx"))
	assert.False(t, HasSkelExtension("/x/skel"))
	assert.False(t, HasSkelExtension("/x/a.json"))
}
