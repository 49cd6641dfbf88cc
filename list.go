package pathway

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ListOptions configure List and ListAll.
type ListOptions struct {
	// Dir yields directories themselves in addition to recursing into
	// them when Recursive is set.
	Dir bool

	// Hidden includes entries whose base name starts with ".". When
	// false such entries are neither yielded nor recursed into.
	Hidden bool

	// Recursive walks subdirectories. When false only the immediate
	// children of the root are considered.
	Recursive bool

	// MaxDepth bounds recursion, measured in directory levels below the
	// root. Each descent passes MaxDepth-1 down; a level that receives
	// a budget of exactly 1 still lists its own entries but makes no
	// deeper call. Zero or negative means unbounded.
	MaxDepth int

	// Exclude skips entries matching any of the doublestar glob
	// patterns, applied to the slash-separated path relative to the
	// listing root. Matching entries are neither yielded nor recursed
	// into.
	Exclude []string
}

// List lazily enumerates entries under the location in depth-first
// order. The sequence is finite and non-restartable; directory reads
// happen on demand as the consumer advances, so stopping early performs
// no further I/O. Entries keep the insertion order of the underlying
// directory reads and are not sorted.
//
// A failed enumeration surfaces as a nil Path with the error and
// terminates the sequence; entries yielded before the failure stand.
// Symbolic link loops are not detected.
func (p *Path) List(opts ListOptions) iter.Seq2[*Path, error] {
	return func(yield func(*Path, error) bool) {
		p.list(p, opts, yield)
	}
}

// ListAll is the blocking form of List. It walks the whole sequence up
// front and returns the collected entries, alongside the first error
// encountered. On error the entries collected so far are returned.
func (p *Path) ListAll(opts ListOptions) ([]*Path, error) {
	var entries []*Path
	for entry, err := range p.List(opts) {
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// list walks one directory level and reports whether the consumer wants
// more. The depth budget is carried in opts.MaxDepth and decremented
// per descent.
func (p *Path) list(root *Path, opts ListOptions, yield func(*Path, error) bool) bool {
	entries, err := p.fsys.ReadDir(p.loc)
	if err != nil {
		yield(nil, err)
		return false
	}

	for _, entry := range entries {
		name := entry.Name()
		if !opts.Hidden && strings.HasPrefix(name, ".") {
			continue
		}
		child := p.Join(name)
		if excluded(root, child, opts.Exclude) {
			continue
		}

		if entry.IsDir() {
			if opts.Dir && !yield(child, nil) {
				return false
			}
			if opts.Recursive && opts.MaxDepth != 1 {
				sub := opts
				if sub.MaxDepth > 0 {
					sub.MaxDepth--
				}
				if !child.list(root, sub, yield) {
					return false
				}
			}
			continue
		}

		if !yield(child, nil) {
			return false
		}
	}

	return true
}

// excluded reports whether the entry's root-relative path matches any
// exclusion pattern.
func excluded(root, entry *Path, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	rel, err := filepath.Rel(root.loc, entry.loc)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if doublestar.MatchUnvalidated(pattern, rel) {
			return true
		}
	}
	return false
}
