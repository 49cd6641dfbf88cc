// Package pathway provides a fluent, path-valued abstraction over a
// filesystem location, unifying path manipulation with file operations
// behind one chainable surface.
//
// A Path wraps a single location string together with the Provider it
// delegates I/O to. Derivation methods (Join, Parent, Sibling,
// Normalize, ...) return new values and never mutate the receiver, so
// Path values can be shared freely.
//
//	readme := pathway.New("docs").Join("README.md")
//	text, err := readme.ReadText()
//
// # Listing
//
// List lazily enumerates a directory tree as a pull-based sequence.
// Depth, hidden-file handling and glob exclusion are controlled through
// ListOptions; consumers that stop early cause no further directory
// reads.
//
//	for entry, err := range pathway.New("src").List(pathway.ListOptions{Recursive: true}) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(entry)
//	}
//
// # Temporary directories
//
// NewTempDir allocates a uniquely named directory and registers it in
// a process-wide registry. Registered directories are removed either
// explicitly through Destroy or in bulk through Sweep, which the
// hosting program calls once at normal termination.
//
//	scratch, err := pathway.NewTempDir("", "build-")
//	if err != nil {
//	    return err
//	}
//	defer scratch.Destroy()
//
// # Providers
//
// All I/O goes through the Provider interface. OS returns the provider
// backed by the host operating system; the billy subpackage adapts any
// go-billy filesystem, including the in-memory one used throughout the
// tests. The pathtest subpackage carries a conformance suite for
// third-party providers.
package pathway
