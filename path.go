package pathway

import (
	"path/filepath"
	"strings"
)

// Path wraps a single filesystem location in the host's native separator
// convention, together with the Provider that all I/O is delegated to.
//
// Path values are immutable: every derivation method returns a new value
// and never mutates its receiver. The location is never empty; a Path
// constructed from no segments refers to ".", the current working
// directory by convention.
type Path struct {
	loc  string
	fsys Provider
}

// New creates a Path bound to the OS provider. Multiple segments are
// joined with the host's path-join semantics, which also normalizes
// separators. With no segments the Path refers to the current working
// directory.
func New(segments ...string) *Path {
	return NewOn(OS(), segments...)
}

// NewOn creates a Path bound to the given provider. See New for the
// segment-joining rules.
func NewOn(fsys Provider, segments ...string) *Path {
	loc := filepath.Join(segments...)
	if loc == "" {
		loc = "."
	}
	return &Path{loc: loc, fsys: fsys}
}

// derive creates a new Path at loc bound to the same provider.
func (p *Path) derive(loc string) *Path {
	return &Path{loc: loc, fsys: p.fsys}
}

// String returns the location as a string.
func (p *Path) String() string {
	return p.loc
}

// Provider returns the provider this Path delegates I/O to.
func (p *Path) Provider() Provider {
	return p.fsys
}

// Join returns a new Path with the given segments appended.
func (p *Path) Join(segments ...string) *Path {
	return p.derive(filepath.Join(append([]string{p.loc}, segments...)...))
}

// Parent returns a new Path for the location's parent directory.
func (p *Path) Parent() *Path {
	return p.derive(filepath.Dir(p.loc))
}

// Sibling returns a new Path for the named sibling, that is a child of
// this location's parent directory.
func (p *Path) Sibling(segments ...string) *Path {
	return p.Parent().Join(segments...)
}

// Base returns the last segment of the location.
func (p *Path) Base() string {
	return filepath.Base(p.loc)
}

// Ext returns the location's file name extension, including the leading
// dot, or the empty string if there is none.
func (p *Path) Ext() string {
	return filepath.Ext(p.loc)
}

// IsAbs reports whether the location is absolute.
func (p *Path) IsAbs() bool {
	return filepath.IsAbs(p.loc)
}

// Normalize returns a new Path with the shortest equivalent location,
// applying the host's lexical cleaning rules. It does not touch the
// filesystem.
func (p *Path) Normalize() *Path {
	return p.derive(filepath.Clean(p.loc))
}

// Abs returns a new Path with the location made absolute relative to the
// current working directory. It does not resolve symbolic links.
func (p *Path) Abs() (*Path, error) {
	loc, err := filepath.Abs(p.loc)
	if err != nil {
		return nil, err
	}
	return p.derive(loc), nil
}

// Realpath returns a new Path with the location made absolute and all
// symbolic links resolved. The evaluation consults the host filesystem,
// so the location must exist.
func (p *Path) Realpath() (*Path, error) {
	loc, err := filepath.EvalSymlinks(p.loc)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(loc)
	if err != nil {
		return nil, err
	}
	return p.derive(abs), nil
}

// RelativeTo returns a new Path whose location is this one expressed
// relative to base.
func (p *Path) RelativeTo(base *Path) (*Path, error) {
	loc, err := filepath.Rel(base.loc, p.loc)
	if err != nil {
		return nil, err
	}
	return p.derive(loc), nil
}

// Segments returns the location's non-empty segments, split on the
// host's separator after lexical cleaning. An absolute location does not
// produce a leading empty segment.
func (p *Path) Segments() []string {
	clean := filepath.Clean(p.loc)
	parts := strings.Split(clean, string(filepath.Separator))
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
