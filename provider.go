package pathway

import (
	"io"
	"io/fs"
	"time"
)

// Provider is the primitive filesystem contract that Path values delegate
// all I/O to. It is composed of four sub-interfaces representing different
// categories of operations: ReadProvider, WriteProvider, ManageProvider,
// and TempProvider.
//
// The library ships two implementations: the OS provider (see OS) and the
// go-billy adapter in the billy subpackage. Custom providers only need to
// satisfy this interface to work with every Path operation.
type Provider interface {
	ReadProvider
	WriteProvider
	ManageProvider
	TempProvider
}

// ReadProvider defines read-only filesystem operations.
type ReadProvider interface {
	// Open opens the named file for reading.
	// Returns fs.File for compatibility with the io/fs package.
	Open(name string) (fs.File, error)

	// Stat returns metadata for the named file, following symbolic links.
	Stat(name string) (fs.FileInfo, error)

	// Lstat returns metadata for the named file without following
	// symbolic links. Providers without symlink support may implement
	// Lstat identically to Stat.
	Lstat(name string) (fs.FileInfo, error)

	// ReadDir enumerates the direct entries of the named directory.
	// The order of the returned slice is the insertion order of the
	// underlying directory read; callers must not rely on sorting.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)
}

// WriteProvider defines write operations.
type WriteProvider interface {
	// Create creates or truncates the named file for writing.
	Create(name string) (File, error)

	// OpenFile opens a file with the specified flags and permissions.
	// Flag support varies by provider.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating it if necessary
	// and truncating it if it already exists.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a new directory. It fails if the directory already
	// exists or the parent does not.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any missing parents.
	// An existing directory is not an error.
	MkdirAll(path string, perm fs.FileMode) error

	// Chmod changes the mode of the named file.
	// Providers without permission support return ErrUnsupported.
	Chmod(name string, mode fs.FileMode) error

	// Chtimes changes the access and modification times of the named
	// file. Providers without timestamp support return ErrUnsupported.
	Chtimes(name string, atime, mtime time.Time) error
}

// ManageProvider defines operations that alter filesystem structure.
type ManageProvider interface {
	// Remove removes the named file or empty directory.
	Remove(name string) error

	// RemoveAll removes path and any children it contains. A path that
	// does not exist is not an error; RemoveAll returns nil.
	RemoveAll(path string) error

	// Rename renames (moves) oldpath to newpath.
	Rename(oldpath, newpath string) error
}

// TempProvider defines temporary-directory allocation.
type TempProvider interface {
	// MkdirTemp creates a new uniquely named directory in dir and
	// returns its path. The name is generated from pattern: a trailing
	// collision-resistant suffix is appended, or substituted for the
	// last "*" if pattern contains one. An empty dir means the
	// provider's default area for temporary files.
	MkdirTemp(dir, pattern string) (string, error)
}

// SymlinkProvider defines symbolic link operations. Not every provider
// supports symlinks; use a type assertion to check for the capability:
//
//	if sp, ok := fsys.(SymlinkProvider); ok {
//	    err := sp.Symlink("target", "linkname")
//	}
type SymlinkProvider interface {
	// Symlink creates a symbolic link named newname pointing to oldname.
	// The oldname path is stored as-is; broken links are valid.
	Symlink(oldname, newname string) error

	// Readlink returns the destination of the named symbolic link.
	Readlink(name string) (string, error)
}

// File represents an open file handle. It extends fs.File with write
// support, so the same handle type serves Create, OpenFile, and Open
// call sites.
type File interface {
	fs.File

	// Write writes len(p) bytes from p to the file.
	io.Writer

	// Name returns the name of the file as provided to Open or Create.
	Name() string
}
