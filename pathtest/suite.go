// Package pathtest provides a conformance test suite for validating
// provider implementations against the pathway.Provider contract, plus
// test doubles for observing provider traffic.
//
// Provider packages import the suite and run it against a fresh
// instance:
//
//	func TestProvider(t *testing.T) {
//	    pathtest.TestProvider(t, func(t *testing.T) (pathway.Provider, string) {
//	        return myprovider.New(), t.TempDir()
//	    })
//	}
//
// The newFS function returns the provider together with a writable root
// directory for the suite to work in; an empty root means the
// provider's own root is writable.
package pathtest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/pathwaylabs/pathway"
)

// NewFunc returns a fresh provider and a writable root directory for
// one test. Tests create and remove files, so every invocation should
// start clean.
type NewFunc func(t *testing.T) (pathway.Provider, string)

// TestProvider runs the conformance suite against a provider.
func TestProvider(t *testing.T, newFS NewFunc) {
	t.Run("ReadWrite", func(t *testing.T) {
		fsys, root := newFS(t)
		testReadWrite(t, fsys, root)
	})
	t.Run("Dirs", func(t *testing.T) {
		fsys, root := newFS(t)
		testDirs(t, fsys, root)
	})
	t.Run("Manage", func(t *testing.T) {
		fsys, root := newFS(t)
		testManage(t, fsys, root)
	})
	t.Run("Temp", func(t *testing.T) {
		fsys, root := newFS(t)
		testTemp(t, fsys, root)
	})
	t.Run("Symlink", func(t *testing.T) {
		fsys, root := newFS(t)
		testSymlink(t, fsys, root)
	})
}

func testReadWrite(t *testing.T, fsys pathway.Provider, root string) {
	name := filepath.Join(root, "file.txt")
	content := []byte("hello world")

	if err := fsys.WriteFile(name, content, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}

	data, err := fsys.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", name, err)
	}
	if string(data) != string(content) {
		t.Errorf("ReadFile(%s) = %q, want %q", name, data, content)
	}

	info, err := fsys.Stat(name)
	if err != nil {
		t.Fatalf("Stat(%s): %v", name, err)
	}
	if info.IsDir() {
		t.Errorf("Stat(%s).IsDir() = true, want false", name)
	}
	if info.Size() != int64(len(content)) {
		t.Errorf("Stat(%s).Size() = %d, want %d", name, info.Size(), len(content))
	}

	if _, err := fsys.Stat(filepath.Join(root, "missing.txt")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(missing) error = %v, want fs.ErrNotExist", err)
	}

	// Create must truncate an existing file.
	f, err := fsys.Create(name)
	if err != nil {
		t.Fatalf("Create(%s): %v", name, err)
	}
	if _, err := f.Write([]byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err = fsys.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", name, err)
	}
	if string(data) != "x" {
		t.Errorf("ReadFile after Create = %q, want %q", data, "x")
	}

	// Append through OpenFile.
	f, err = fsys.OpenFile(name, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%s, append): %v", name, err)
	}
	if _, err := f.Write([]byte("y")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err = fsys.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", name, err)
	}
	if string(data) != "xy" {
		t.Errorf("ReadFile after append = %q, want %q", data, "xy")
	}
}

func testDirs(t *testing.T, fsys pathway.Provider, root string) {
	dir := filepath.Join(root, "sub")
	if err := fsys.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("Mkdir(%s): %v", dir, err)
	}
	if err := fsys.Mkdir(dir, 0o755); !errors.Is(err, fs.ErrExist) {
		t.Errorf("Mkdir(existing) error = %v, want fs.ErrExist", err)
	}
	if err := fsys.Mkdir(filepath.Join(root, "a", "b"), 0o755); err == nil {
		t.Error("Mkdir without parent succeeded, want error")
	}

	deep := filepath.Join(root, "a", "b", "c")
	if err := fsys.MkdirAll(deep, 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): %v", deep, err)
	}
	if err := fsys.MkdirAll(deep, 0o755); err != nil {
		t.Errorf("MkdirAll(existing): %v, want nil", err)
	}

	if err := fsys.WriteFile(filepath.Join(dir, "one.txt"), []byte("1"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := fsys.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s): %v", dir, err)
	}
	var names []string
	dirs := map[string]bool{}
	for _, entry := range entries {
		names = append(names, entry.Name())
		dirs[entry.Name()] = entry.IsDir()
	}
	slices.Sort(names)
	want := []string{"nested", "one.txt"}
	if !slices.Equal(names, want) {
		t.Fatalf("ReadDir(%s) names = %v, want %v", dir, names, want)
	}
	if !dirs["nested"] || dirs["one.txt"] {
		t.Errorf("ReadDir(%s) classification wrong: %v", dir, dirs)
	}
}

func testManage(t *testing.T, fsys pathway.Provider, root string) {
	name := filepath.Join(root, "victim.txt")
	if err := fsys.WriteFile(name, []byte("bye"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := fsys.Remove(name); err != nil {
		t.Fatalf("Remove(%s): %v", name, err)
	}
	if _, err := fsys.Stat(name); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat after Remove error = %v, want fs.ErrNotExist", err)
	}

	// RemoveAll tolerates missing paths and removes whole trees.
	if err := fsys.RemoveAll(filepath.Join(root, "ghost")); err != nil {
		t.Errorf("RemoveAll(missing): %v, want nil", err)
	}
	tree := filepath.Join(root, "tree")
	if err := fsys.MkdirAll(filepath.Join(tree, "deep"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := fsys.WriteFile(filepath.Join(tree, "deep", "leaf.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := fsys.RemoveAll(tree); err != nil {
		t.Fatalf("RemoveAll(%s): %v", tree, err)
	}
	if _, err := fsys.Stat(tree); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat after RemoveAll error = %v, want fs.ErrNotExist", err)
	}

	oldname := filepath.Join(root, "old.txt")
	newname := filepath.Join(root, "new.txt")
	if err := fsys.WriteFile(oldname, []byte("move me"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := fsys.Rename(oldname, newname); err != nil {
		t.Fatalf("Rename(%s, %s): %v", oldname, newname, err)
	}
	data, err := fsys.ReadFile(newname)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", newname, err)
	}
	if string(data) != "move me" {
		t.Errorf("ReadFile after Rename = %q, want %q", data, "move me")
	}
	if _, err := fsys.Stat(oldname); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(old) after Rename error = %v, want fs.ErrNotExist", err)
	}
}

func testTemp(t *testing.T, fsys pathway.Provider, root string) {
	first, err := fsys.MkdirTemp(root, "suite-")
	if err != nil {
		t.Fatalf("MkdirTemp(%s): %v", root, err)
	}
	second, err := fsys.MkdirTemp(root, "suite-")
	if err != nil {
		t.Fatalf("MkdirTemp(%s): %v", root, err)
	}
	if first == second {
		t.Errorf("MkdirTemp returned the same name twice: %s", first)
	}
	for _, name := range []string{first, second} {
		info, err := fsys.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%s): %v", name, err)
		}
		if !info.IsDir() {
			t.Errorf("MkdirTemp(%s) created a non-directory", name)
		}
		if !strings.HasPrefix(filepath.Base(name), "suite-") {
			t.Errorf("MkdirTemp name %s lacks the requested prefix", name)
		}
		if root != "" && filepath.Dir(filepath.Clean(name)) != filepath.Clean(root) {
			t.Errorf("MkdirTemp created %s outside parent %s", name, root)
		}
	}
}

func testSymlink(t *testing.T, fsys pathway.Provider, root string) {
	sp, ok := fsys.(pathway.SymlinkProvider)
	if !ok {
		t.Skip("provider has no symlink support")
	}

	target := filepath.Join(root, "target.txt")
	link := filepath.Join(root, "link.txt")
	if err := fsys.WriteFile(target, []byte("pointed at"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := sp.Symlink(target, link); err != nil {
		t.Fatalf("Symlink(%s, %s): %v", target, link, err)
	}

	dest, err := sp.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink(%s): %v", link, err)
	}
	if dest != target {
		t.Errorf("Readlink(%s) = %s, want %s", link, dest, target)
	}

	data, err := fsys.ReadFile(link)
	if err != nil {
		t.Fatalf("ReadFile through link: %v", err)
	}
	if string(data) != "pointed at" {
		t.Errorf("ReadFile through link = %q, want %q", data, "pointed at")
	}

	info, err := fsys.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat(%s): %v", link, err)
	}
	if info.Mode().Type()&fs.ModeSymlink == 0 {
		t.Errorf("Lstat(%s) mode %v is not a symlink", link, info.Mode())
	}
}
