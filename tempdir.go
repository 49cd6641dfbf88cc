package pathway

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
)

// DefaultTempPrefix is the name prefix used for temporary directories
// when no prefix is given.
const DefaultTempPrefix = "pathway-"

// tempEntry is one registered temporary directory. Entries carry their
// provider so a single registry can track directories on several
// backends.
type tempEntry struct {
	loc  string
	fsys Provider
}

// Registry tracks outstanding temporary directories so they can be
// removed in bulk when the process shuts down. Registration happens
// together with allocation; an entry leaves the registry exactly once,
// either through TempDir.Destroy or through Sweep.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu   sync.Mutex
	dirs []tempEntry
}

// NewRegistry creates an empty registry. Most programs use the
// package-level registry through NewTempDir and Sweep; separate
// registries are mainly useful in tests.
func NewRegistry() *Registry {
	return &Registry{}
}

// defaultRegistry backs the package-level NewTempDir, NewTempDirOn and
// Sweep.
var defaultRegistry = NewRegistry()

// NewTempDir allocates a new uniquely named directory through the OS
// provider and registers it with the package-level registry. An empty
// dir means the host's default area for temporary files; an empty
// prefix means DefaultTempPrefix. The directory is removed by Destroy
// or, if never destroyed, by Sweep.
func NewTempDir(dir, prefix string) (*TempDir, error) {
	return defaultRegistry.TempDir(OS(), dir, prefix)
}

// NewTempDirOn is like NewTempDir but allocates through the given
// provider.
func NewTempDirOn(fsys Provider, dir, prefix string) (*TempDir, error) {
	return defaultRegistry.TempDir(fsys, dir, prefix)
}

// Sweep removes every temporary directory still registered with the
// package-level registry. The hosting program should call it exactly
// once during normal termination.
func Sweep() error {
	return defaultRegistry.Sweep()
}

// TempDir allocates a new uniquely named directory through fsys and
// registers it. A failed allocation leaves no registry entry.
func (r *Registry) TempDir(fsys Provider, dir, prefix string) (*TempDir, error) {
	if prefix == "" {
		prefix = DefaultTempPrefix
	}
	loc, err := fsys.MkdirTemp(dir, prefix)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.dirs = append(r.dirs, tempEntry{loc: loc, fsys: fsys})
	r.mu.Unlock()

	return &TempDir{Path: NewOn(fsys, loc), registry: r}, nil
}

// deregister removes the entry matching loc by value equality. Only the
// first match is removed; a loc with no entry is a no-op.
func (r *Registry) deregister(loc string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, entry := range r.dirs {
		if entry.loc == loc {
			r.dirs = append(r.dirs[:i], r.dirs[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered directories.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.dirs)
}

// Sweep removes every registered directory and empties the registry. A
// directory that is already gone counts as removed; any other removal
// failure aborts the sweep and is returned, leaving the unswept entries
// registered. The registry lock is held for the whole sweep, so a
// concurrent Destroy blocks until the sweep finishes.
func (r *Registry) Sweep() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for len(r.dirs) > 0 {
		entry := r.dirs[0]
		if err := entry.fsys.RemoveAll(entry.loc); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("sweeping %s: %w", entry.loc, err)
		}
		r.dirs = r.dirs[1:]
	}
	return nil
}

// TempDir is a Path that owns a live on-disk temporary directory. It is
// created only through the allocation functions, never directly.
type TempDir struct {
	*Path
	registry *Registry
}

// Destroy removes the directory tree and deregisters the location. A
// second Destroy is harmless: the tree is already gone and the registry
// holds no matching entry.
func (d *TempDir) Destroy() error {
	if err := d.fsys.RemoveAll(d.loc); err != nil {
		return err
	}
	d.registry.deregister(d.loc)
	return nil
}

// Release deregisters the location without removing the directory. The
// directory survives Sweep and becomes the caller's responsibility.
func (d *TempDir) Release() *Path {
	d.registry.deregister(d.loc)
	return d.Path
}
