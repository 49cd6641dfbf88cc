package pathway

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"
)

// Stat returns metadata for the location, following symbolic links.
func (p *Path) Stat() (fs.FileInfo, error) {
	return p.fsys.Stat(p.loc)
}

// Lstat returns metadata for the location without following symbolic
// links.
func (p *Path) Lstat() (fs.FileInfo, error) {
	return p.fsys.Lstat(p.loc)
}

// Exists reports whether the location exists. A false result with a
// non-nil error means existence could not be determined.
func (p *Path) Exists() (bool, error) {
	_, err := p.fsys.Stat(p.loc)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether the location exists and is a directory.
func (p *Path) IsDir() (bool, error) {
	info, err := p.fsys.Stat(p.loc)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// IsFile reports whether the location exists and is a regular file.
func (p *Path) IsFile() (bool, error) {
	info, err := p.fsys.Stat(p.loc)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// Open opens the location's file for reading.
func (p *Path) Open() (fs.File, error) {
	return p.fsys.Open(p.loc)
}

// Create creates or truncates the location's file for writing.
func (p *Path) Create() (File, error) {
	return p.fsys.Create(p.loc)
}

// ReadFile reads the file at the location and returns its contents.
func (p *Path) ReadFile() ([]byte, error) {
	return p.fsys.ReadFile(p.loc)
}

// ReadText reads the file at the location as a string.
func (p *Path) ReadText() (string, error) {
	data, err := p.fsys.ReadFile(p.loc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Lines reads the file at the location and splits it into lines. A
// trailing newline does not produce a final empty line.
func (p *Path) Lines() ([]string, error) {
	text, err := p.ReadText()
	if err != nil {
		return nil, err
	}
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// WriteFile writes data to the file at the location, creating it if
// necessary and truncating it if it already exists.
func (p *Path) WriteFile(data []byte, perm fs.FileMode) error {
	return p.fsys.WriteFile(p.loc, data, perm)
}

// WriteText writes text to the file at the location with mode 0644.
func (p *Path) WriteText(text string) error {
	return p.fsys.WriteFile(p.loc, []byte(text), 0o644)
}

// AppendText appends text to the file at the location, creating the
// file with mode 0644 if it does not exist.
func (p *Path) AppendText(text string) error {
	f, err := p.fsys.OpenFile(p.loc, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	_, werr := io.WriteString(f, text)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// Touch creates an empty file at the location if none exists, or
// updates the existing file's access and modification times to now.
func (p *Path) Touch() error {
	exists, err := p.Exists()
	if err != nil {
		return err
	}
	if !exists {
		f, err := p.fsys.Create(p.loc)
		if err != nil {
			return err
		}
		return f.Close()
	}
	now := time.Now()
	return p.fsys.Chtimes(p.loc, now, now)
}

// Chmod changes the mode of the file at the location.
func (p *Path) Chmod(mode fs.FileMode) error {
	return p.fsys.Chmod(p.loc, mode)
}

// Chtimes changes the access and modification times of the file at the
// location.
func (p *Path) Chtimes(atime, mtime time.Time) error {
	return p.fsys.Chtimes(p.loc, atime, mtime)
}

// Mkdir creates a directory at the location.
func (p *Path) Mkdir(perm fs.FileMode) error {
	return p.fsys.Mkdir(p.loc, perm)
}

// MkdirAll creates a directory at the location along with any missing
// parents.
func (p *Path) MkdirAll(perm fs.FileMode) error {
	return p.fsys.MkdirAll(p.loc, perm)
}

// Remove removes the file or empty directory at the location.
func (p *Path) Remove() error {
	return p.fsys.Remove(p.loc)
}

// RemoveAll removes the location and any children it contains. A
// location that does not exist is not an error.
func (p *Path) RemoveAll() error {
	return p.fsys.RemoveAll(p.loc)
}

// Rename moves the location to dst. Both paths must be bound to the
// same provider; moving across providers requires CopyTo followed by
// RemoveAll.
func (p *Path) Rename(dst *Path) error {
	if p.fsys != dst.fsys {
		return fmt.Errorf("rename %s to %s: %w across providers", p.loc, dst.loc, ErrUnsupported)
	}
	return p.fsys.Rename(p.loc, dst.loc)
}

// CopyTo copies the file at the location to dst, preserving the
// permission bits where the destination provider supports them. The
// destination may be bound to a different provider.
func (p *Path) CopyTo(dst *Path) error {
	src, err := p.fsys.Open(p.loc)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return err
	}
	out, err := dst.fsys.OpenFile(dst.loc, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Symlink creates a symbolic link at link pointing to this location.
// Returns ErrUnsupported if the provider has no symlink support.
func (p *Path) Symlink(link *Path) error {
	sp, ok := link.fsys.(SymlinkProvider)
	if !ok {
		return fmt.Errorf("symlink %s: %w", link.loc, ErrUnsupported)
	}
	return sp.Symlink(p.loc, link.loc)
}

// Readlink returns the destination of the symbolic link at the
// location. Returns ErrUnsupported if the provider has no symlink
// support.
func (p *Path) Readlink() (*Path, error) {
	sp, ok := p.fsys.(SymlinkProvider)
	if !ok {
		return nil, fmt.Errorf("readlink %s: %w", p.loc, ErrUnsupported)
	}
	loc, err := sp.Readlink(p.loc)
	if err != nil {
		return nil, err
	}
	return p.derive(loc), nil
}
