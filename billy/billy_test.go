package billy

import (
	"errors"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/pathwaylabs/pathway"
	"github.com/pathwaylabs/pathway/pathtest"
)

func TestMemoryProviderConformance(t *testing.T) {
	pathtest.TestProvider(t, func(t *testing.T) (pathway.Provider, string) {
		fsys := NewMemory()
		if err := fsys.MkdirAll("/work", 0o755); err != nil {
			t.Fatalf("MkdirAll(/work): %v", err)
		}
		return fsys, "/work"
	})
}

func TestLocalProviderConformance(t *testing.T) {
	pathtest.TestProvider(t, func(t *testing.T) (pathway.Provider, string) {
		return Wrap(osfs.New(t.TempDir())), ""
	})
}

func TestWrapUnwrap(t *testing.T) {
	bfs := osfs.New(t.TempDir())
	fsys := Wrap(bfs)
	if fsys.Unwrap() != bfs {
		t.Error("Unwrap() did not return the wrapped billy.Filesystem")
	}
}

func TestMemoryChangeUnsupported(t *testing.T) {
	fsys := NewMemory()
	if err := fsys.WriteFile("/f.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// memfs lacks the billy.Change capability.
	if err := fsys.Chmod("/f.txt", 0o600); !errors.Is(err, pathway.ErrUnsupported) {
		t.Errorf("Chmod error = %v, want ErrUnsupported", err)
	}
	now := time.Now()
	if err := fsys.Chtimes("/f.txt", now, now); !errors.Is(err, pathway.ErrUnsupported) {
		t.Errorf("Chtimes error = %v, want ErrUnsupported", err)
	}
}

func TestMkdirTempDefaultDir(t *testing.T) {
	fsys := NewMemory()

	// An empty dir falls back to the conventional temp area, created
	// on demand inside the in-memory tree.
	name, err := fsys.MkdirTemp("", "mem-")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	info, err := fsys.Stat(name)
	if err != nil {
		t.Fatalf("Stat(%s): %v", name, err)
	}
	if !info.IsDir() {
		t.Errorf("MkdirTemp(%s) created a non-directory", name)
	}
}

func TestPathOnMemory(t *testing.T) {
	fsys := NewMemory()
	p := pathway.NewOn(fsys, "/notes", "todo.txt")

	if err := p.Parent().MkdirAll(0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := p.WriteText("ship it"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	text, err := p.ReadText()
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if text != "ship it" {
		t.Errorf("ReadText = %q, want %q", text, "ship it")
	}
}
