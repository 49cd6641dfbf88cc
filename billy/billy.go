package billy

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/pathwaylabs/pathway"
)

// Provider adapts a billy.Filesystem to the pathway.Provider contract.
// It is a thin layer: operations billy exposes are delegated directly,
// and the few it lacks (ReadDir entry conversion, RemoveAll, MkdirTemp)
// are filled in through billy's util helpers.
type Provider struct {
	bfs billy.Filesystem
}

// NewLocal creates a provider backed by billy's osfs, rooted at the
// filesystem root.
func NewLocal() *Provider {
	return &Provider{bfs: osfs.New("/")}
}

// NewMemory creates a provider backed by billy's memfs. The filesystem
// is initially empty.
func NewMemory() *Provider {
	return &Provider{bfs: memfs.New()}
}

// Wrap adapts an existing billy.Filesystem.
func Wrap(bfs billy.Filesystem) *Provider {
	return &Provider{bfs: bfs}
}

// Unwrap returns the underlying billy.Filesystem, for APIs that require
// one directly.
func (p *Provider) Unwrap() billy.Filesystem {
	return p.bfs
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Open opens the named file for reading.
func (p *Provider) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := p.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: p.bfs, name: name}, nil
}

// Stat returns file metadata for the named file.
func (p *Provider) Stat(name string) (fs.FileInfo, error) {
	return p.bfs.Stat(normalize(name))
}

// Lstat returns file metadata without following symbolic links.
func (p *Provider) Lstat(name string) (fs.FileInfo, error) {
	return p.bfs.Lstat(normalize(name))
}

// ReadDir enumerates the direct entries of the named directory.
// Billy's ReadDir returns []fs.FileInfo, so entries are converted to
// fs.DirEntry.
func (p *Provider) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := p.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (p *Provider) ReadFile(name string) ([]byte, error) {
	f, err := p.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Create creates or truncates the named file for writing.
func (p *Provider) Create(name string) (pathway.File, error) {
	name = normalize(name)
	f, err := p.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: p.bfs, name: name}, nil
}

// OpenFile opens a file with the specified flags and permissions.
func (p *Provider) OpenFile(name string, flag int, perm fs.FileMode) (pathway.File, error) {
	name = normalize(name)
	f, err := p.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: p.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (p *Provider) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := p.bfs.OpenFile(normalize(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = f.Write(data)
	return err
}

// Mkdir creates a new directory. Billy only exposes MkdirAll, so the
// single-level contract is emulated: the directory must not exist and
// the parent must.
func (p *Provider) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := p.bfs.Stat(name); err == nil {
		return os.ErrExist
	}
	parent := filepath.Dir(name)
	if parent != "." && parent != "/" {
		if _, err := p.bfs.Stat(parent); err != nil {
			return err
		}
	}
	return p.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory along with any missing parents.
func (p *Provider) MkdirAll(path string, perm fs.FileMode) error {
	return p.bfs.MkdirAll(normalize(path), perm)
}

// Chmod changes the mode of the named file. Backends without the
// billy.Change capability (such as memfs) return ErrUnsupported.
func (p *Provider) Chmod(name string, mode fs.FileMode) error {
	ch, ok := p.bfs.(billy.Change)
	if !ok {
		return fmt.Errorf("chmod %s: %w", name, pathway.ErrUnsupported)
	}
	return ch.Chmod(normalize(name), mode)
}

// Chtimes changes the access and modification times of the named file.
// Backends without the billy.Change capability return ErrUnsupported.
func (p *Provider) Chtimes(name string, atime, mtime time.Time) error {
	ch, ok := p.bfs.(billy.Change)
	if !ok {
		return fmt.Errorf("chtimes %s: %w", name, pathway.ErrUnsupported)
	}
	return ch.Chtimes(normalize(name), atime, mtime)
}

// Remove removes the named file or empty directory.
func (p *Provider) Remove(name string) error {
	return p.bfs.Remove(normalize(name))
}

// RemoveAll removes path and any children it contains. A path that does
// not exist is not an error.
func (p *Provider) RemoveAll(path string) error {
	return util.RemoveAll(p.bfs, normalize(path))
}

// Rename renames (moves) oldpath to newpath.
func (p *Provider) Rename(oldpath, newpath string) error {
	return p.bfs.Rename(normalize(oldpath), normalize(newpath))
}

// MkdirTemp creates a new uniquely named directory in dir. An empty dir
// falls back to the host's default temporary-file area, which for memfs
// is simply a conventional path inside the in-memory tree. The pattern
// is used as a plain name prefix by this backend.
func (p *Provider) MkdirTemp(dir, pattern string) (string, error) {
	if dir == "" {
		dir = normalize(os.TempDir())
		if err := p.bfs.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	return util.TempDir(p.bfs, normalize(dir), pattern)
}

// Symlink creates a symbolic link named newname pointing to oldname.
func (p *Provider) Symlink(oldname, newname string) error {
	return p.bfs.Symlink(oldname, normalize(newname))
}

// Readlink returns the destination of the named symbolic link.
func (p *Provider) Readlink(name string) (string, error) {
	return p.bfs.Readlink(normalize(name))
}

// Compile-time interface checks.
var (
	_ pathway.Provider        = (*Provider)(nil)
	_ pathway.SymlinkProvider = (*Provider)(nil)
)
