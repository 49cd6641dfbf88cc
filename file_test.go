package pathway

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteText(t *testing.T) {
	p := New(t.TempDir(), "note.txt")

	require.NoError(t, p.WriteText("hello\n"))
	text, err := p.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "hello\n", text)

	data, err := p.ReadFile()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello\n"), data)
}

func TestAppendText(t *testing.T) {
	p := New(t.TempDir(), "log.txt")

	require.NoError(t, p.AppendText("one\n"))
	require.NoError(t, p.AppendText("two\n"))

	lines, err := p.Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)
}

func TestLines(t *testing.T) {
	p := New(t.TempDir(), "lines.txt")

	require.NoError(t, p.WriteText("a\nb\nc"))
	lines, err := p.Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, lines)

	require.NoError(t, p.WriteText(""))
	lines, err = p.Lines()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestExists(t *testing.T) {
	dir := New(t.TempDir())

	exists, err := dir.Join("nope.txt").Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	p := dir.Join("yes.txt")
	require.NoError(t, p.WriteText("x"))
	exists, err = p.Exists()
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestIsDirIsFile(t *testing.T) {
	dir := New(t.TempDir())
	file := dir.Join("f.txt")
	require.NoError(t, file.WriteText("x"))

	isDir, err := dir.IsDir()
	require.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = file.IsDir()
	require.NoError(t, err)
	assert.False(t, isDir)

	isFile, err := file.IsFile()
	require.NoError(t, err)
	assert.True(t, isFile)

	isFile, err = dir.Join("missing").IsFile()
	require.NoError(t, err)
	assert.False(t, isFile)
}

func TestTouch(t *testing.T) {
	p := New(t.TempDir(), "touched.txt")

	require.NoError(t, p.Touch())
	exists, err := p.Exists()
	require.NoError(t, err)
	assert.True(t, exists)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, p.Chtimes(past, past))
	before, err := p.Stat()
	require.NoError(t, err)

	require.NoError(t, p.Touch())
	after, err := p.Stat()
	require.NoError(t, err)
	assert.True(t, after.ModTime().After(before.ModTime()))
}

func TestMkdirRemove(t *testing.T) {
	base := New(t.TempDir())

	sub := base.Join("sub")
	require.NoError(t, sub.Mkdir(0o755))
	isDir, err := sub.IsDir()
	require.NoError(t, err)
	assert.True(t, isDir)

	deep := base.Join("a", "b", "c")
	require.NoError(t, deep.MkdirAll(0o755))

	require.NoError(t, deep.Join("f.txt").WriteText("x"))
	require.NoError(t, base.Join("a").RemoveAll())
	exists, err := deep.Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	// RemoveAll on a missing location is not an error.
	require.NoError(t, base.Join("ghost").RemoveAll())

	require.NoError(t, sub.Remove())
}

func TestRename(t *testing.T) {
	base := New(t.TempDir())
	src := base.Join("src.txt")
	dst := base.Join("dst.txt")

	require.NoError(t, src.WriteText("move me"))
	require.NoError(t, src.Rename(dst))

	text, err := dst.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "move me", text)

	exists, err := src.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCopyTo(t *testing.T) {
	base := New(t.TempDir())
	src := base.Join("src.txt")
	dst := base.Join("copy", "dst.txt")

	require.NoError(t, src.WriteText("duplicate me"))
	require.NoError(t, src.Chmod(0o600))
	require.NoError(t, dst.Parent().MkdirAll(0o755))
	require.NoError(t, src.CopyTo(dst))

	text, err := dst.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "duplicate me", text)

	info, err := dst.Stat()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSymlink(t *testing.T) {
	base := New(t.TempDir())
	target := base.Join("target.txt")
	link := base.Join("link.txt")

	require.NoError(t, target.WriteText("through the link"))
	require.NoError(t, target.Symlink(link))

	text, err := link.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "through the link", text)

	dest, err := link.Readlink()
	require.NoError(t, err)
	assert.Equal(t, target.String(), dest.String())

	info, err := link.Lstat()
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}

func TestOpenCreate(t *testing.T) {
	p := New(t.TempDir(), "stream.txt")

	f, err := p.Create()
	require.NoError(t, err)
	_, err = f.Write([]byte("streamed"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	r, err := p.Open()
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "streamed", string(data))
}
