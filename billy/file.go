package billy

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"

	"github.com/pathwaylabs/pathway"
)

// File wraps billy.File to implement both pathway.File and fs.File. The
// filename is stored separately since billy.File.Name() may return
// different formats depending on the backend, and a filesystem
// reference is kept to back Stat, which billy.File does not provide.
type File struct {
	file billy.File
	fs   billy.Basic
	name string
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Close implements io.Closer.
func (f *File) Close() error {
	return f.file.Close()
}

// Stat implements fs.File.Stat through the filesystem's Stat method.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the name provided to Open or Create.
func (f *File) Name() string {
	return f.name
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Truncate changes the size of the file.
func (f *File) Truncate(size int64) error {
	return f.file.Truncate(size)
}

// Compile-time interface checks.
var (
	_ pathway.File = (*File)(nil)
	_ fs.File      = (*File)(nil)
	_ io.Seeker    = (*File)(nil)
)
