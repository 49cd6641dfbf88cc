package pathway_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwaylabs/pathway"
	"github.com/pathwaylabs/pathway/billy"
)

func TestTempDirRoundTrip(t *testing.T) {
	reg := pathway.NewRegistry()
	parent := t.TempDir()

	d, err := reg.TempDir(pathway.OS(), parent, "roundtrip-")
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())
	assert.True(t, strings.HasPrefix(d.Base(), "roundtrip-"))

	exists, err := d.Exists()
	require.NoError(t, err)
	assert.True(t, exists)

	// The handle is a full Path; the directory is usable right away.
	require.NoError(t, d.Join("scratch.txt").WriteText("x"))

	require.NoError(t, d.Destroy())
	assert.Equal(t, 0, reg.Len())
	exists, err = d.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTempDirDefaultPrefix(t *testing.T) {
	reg := pathway.NewRegistry()

	d, err := reg.TempDir(pathway.OS(), t.TempDir(), "")
	require.NoError(t, err)
	defer func() { _ = d.Destroy() }()

	assert.True(t, strings.HasPrefix(d.Base(), pathway.DefaultTempPrefix))
}

func TestTempDirDestroyTwice(t *testing.T) {
	reg := pathway.NewRegistry()

	d, err := reg.TempDir(pathway.OS(), t.TempDir(), "twice-")
	require.NoError(t, err)

	require.NoError(t, d.Destroy())
	require.NoError(t, d.Destroy())
	assert.Equal(t, 0, reg.Len())
}

func TestSweepIdempotence(t *testing.T) {
	reg := pathway.NewRegistry()
	fsys := billy.NewMemory()

	const total = 5
	var handles []*pathway.TempDir
	for range total {
		d, err := reg.TempDir(fsys, "/tmp", "sweep-")
		require.NoError(t, err)
		handles = append(handles, d)
	}
	assert.Equal(t, total, reg.Len())

	// Explicitly destroy a subset; the sweep must remove exactly the
	// remainder and not trip over the already-removed ones.
	const destroyed = 2
	for _, d := range handles[:destroyed] {
		require.NoError(t, d.Destroy())
	}
	assert.Equal(t, total-destroyed, reg.Len())

	require.NoError(t, reg.Sweep())
	assert.Equal(t, 0, reg.Len())

	for _, d := range handles {
		exists, err := d.Exists()
		require.NoError(t, err)
		assert.False(t, exists, "%s survived the sweep", d)
	}
}

func TestSweepToleratesExternallyRemoved(t *testing.T) {
	reg := pathway.NewRegistry()
	fsys := billy.NewMemory()

	d, err := reg.TempDir(fsys, "/tmp", "gone-")
	require.NoError(t, err)

	// Remove the tree behind the registry's back; the entry remains
	// registered but the sweep treats the absence as success.
	require.NoError(t, fsys.RemoveAll(d.String()))
	assert.Equal(t, 1, reg.Len())

	require.NoError(t, reg.Sweep())
	assert.Equal(t, 0, reg.Len())
}

// brokenRemove wraps a provider and fails every RemoveAll with a
// non-absence error.
type brokenRemove struct {
	pathway.Provider
}

func (brokenRemove) RemoveAll(path string) error {
	return &fs.PathError{Op: "removeall", Path: path, Err: fs.ErrPermission}
}

func TestSweepSurfacesUnexpectedErrors(t *testing.T) {
	reg := pathway.NewRegistry()
	fsys := brokenRemove{Provider: billy.NewMemory()}

	_, err := reg.TempDir(fsys, "/tmp", "stuck-")
	require.NoError(t, err)

	err = reg.Sweep()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrPermission))

	// The unswept entry stays registered so a later attempt can retry.
	assert.Equal(t, 1, reg.Len())
}

// brokenMkdirTemp wraps a provider and fails every MkdirTemp.
type brokenMkdirTemp struct {
	pathway.Provider
}

func (brokenMkdirTemp) MkdirTemp(dir, _ string) (string, error) {
	return "", &fs.PathError{Op: "mkdirtemp", Path: dir, Err: fs.ErrPermission}
}

func TestTempDirAllocationFailure(t *testing.T) {
	reg := pathway.NewRegistry()
	fsys := brokenMkdirTemp{Provider: billy.NewMemory()}

	_, err := reg.TempDir(fsys, "/tmp", "fail-")
	require.Error(t, err)
	assert.Equal(t, 0, reg.Len(), "failed allocation must not register")
}

func TestTempDirRelease(t *testing.T) {
	reg := pathway.NewRegistry()
	fsys := billy.NewMemory()

	d, err := reg.TempDir(fsys, "/tmp", "kept-")
	require.NoError(t, err)

	p := d.Release()
	assert.Equal(t, 0, reg.Len())

	// A released directory survives the sweep.
	require.NoError(t, reg.Sweep())
	exists, err := p.Exists()
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNewTempDir(t *testing.T) {
	d, err := pathway.NewTempDir(t.TempDir(), "pkg-")
	require.NoError(t, err)

	exists, err := d.Exists()
	require.NoError(t, err)
	assert.True(t, exists)
	assert.True(t, strings.HasPrefix(d.Base(), "pkg-"))

	// Destroy rather than Sweep: the package-level registry is shared
	// process-wide and other entries must stay out of this test.
	require.NoError(t, d.Destroy())
	exists, err = d.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}
