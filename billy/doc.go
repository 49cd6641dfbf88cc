// Package billy adapts go-billy filesystems to the pathway.Provider
// contract.
//
// The adapter wraps go-billy's osfs (local) and memfs (in-memory)
// implementations, and any other billy.Filesystem through Wrap. The
// underlying filesystem stays reachable through Unwrap for APIs that
// consume billy.Filesystem directly, such as go-git.
//
//	fsys := billy.NewMemory()
//	p := pathway.NewOn(fsys, "work", "notes.txt")
//	err := p.WriteText("hello")
//
// The in-memory backend is used throughout this module's own tests:
// it makes traversal and temp-directory lifecycle tests hermetic and
// lets a counting wrapper observe provider calls.
//
// # Capabilities
//
// Backends differ in what they support. Chmod and Chtimes require the
// billy.Change capability (osfs has it, memfs does not) and return
// pathway.ErrUnsupported otherwise. Symlinks are supported by both
// bundled backends.
//
// Provider values are safe for concurrent use; File handles are not.
package billy
