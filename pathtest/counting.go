package pathtest

import (
	"io/fs"
	"sync"

	"github.com/pathwaylabs/pathway"
)

// CountingProvider wraps a Provider and counts directory reads. It is
// used to observe traversal laziness: a consumer that stops after the
// first entry must not have caused the whole tree to be enumerated.
type CountingProvider struct {
	pathway.Provider

	mu       sync.Mutex
	readDirs int
}

// Count wraps fsys with call counting.
func Count(fsys pathway.Provider) *CountingProvider {
	return &CountingProvider{Provider: fsys}
}

// ReadDir delegates to the wrapped provider and records the call.
func (c *CountingProvider) ReadDir(name string) ([]fs.DirEntry, error) {
	c.mu.Lock()
	c.readDirs++
	c.mu.Unlock()
	return c.Provider.ReadDir(name)
}

// ReadDirCalls returns how many directory reads the wrapped provider
// has served.
func (c *CountingProvider) ReadDirCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readDirs
}

// Reset zeroes the counters.
func (c *CountingProvider) Reset() {
	c.mu.Lock()
	c.readDirs = 0
	c.mu.Unlock()
}
