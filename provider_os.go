package pathway

import (
	"io/fs"
	"os"
	"time"
)

// osProvider delegates every operation to the os package.
type osProvider struct{}

// OS returns the Provider backed by the host operating system. The
// returned value is stateless and safe to share.
func OS() Provider {
	return osProvider{}
}

func (osProvider) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func (osProvider) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osProvider) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (osProvider) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (osProvider) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (osProvider) Create(name string) (File, error) {
	return os.Create(name)
}

func (osProvider) OpenFile(name string, flag int, perm fs.FileMode) (File, error) {
	return os.OpenFile(name, flag, perm)
}

func (osProvider) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (osProvider) Mkdir(name string, perm fs.FileMode) error {
	return os.Mkdir(name, perm)
}

func (osProvider) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (osProvider) Chmod(name string, mode fs.FileMode) error {
	return os.Chmod(name, mode)
}

func (osProvider) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(name, atime, mtime)
}

func (osProvider) Remove(name string) error {
	return os.Remove(name)
}

func (osProvider) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (osProvider) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (osProvider) MkdirTemp(dir, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}

func (osProvider) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}

func (osProvider) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

// Compile-time interface checks.
var (
	_ Provider        = osProvider{}
	_ SymlinkProvider = osProvider{}
)
