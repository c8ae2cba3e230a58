//go:build linux

package trash

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func withHomeTrash(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	return dir
}

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMoveToTrashRoundTrip(t *testing.T) {
	withHomeTrash(t)
	srcDir := t.TempDir()
	src := writeFile(t, srcDir, "a.txt")

	if err := MoveToTrash(src); err != nil {
		t.Fatalf("MoveToTrash: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatal("expected source removed")
	}

	can, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer can.Close()

	it := can.ByItem()
	found := false
	for it.Next() {
		if it.Item().OriginalPath == src {
			found = true
		}
	}
	if err := it.Err(); err != nil {
		t.Fatalf("iterator error: %v", err)
	}
	if !found {
		t.Fatal("expected to find the trashed item while enumerating")
	}
}

func TestMoveToTrashRejectsRelativePath(t *testing.T) {
	withHomeTrash(t)
	if err := MoveToTrash("relative.txt"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("MoveToTrash(relative) = %v, want ErrInvalidArgument", err)
	}
}

func TestMoveToTrashMissingSourceIsNotFound(t *testing.T) {
	withHomeTrash(t)
	srcDir := t.TempDir()
	missing := filepath.Join(srcDir, "ghost.txt")

	if err := MoveToTrash(missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("MoveToTrash(missing) = %v, want ErrNotFound", err)
	}
}

func TestEraseTwiceIsNotFound(t *testing.T) {
	withHomeTrash(t)
	srcDir := t.TempDir()
	src := writeFile(t, srcDir, "erase-twice.txt")

	if err := MoveToTrash(src); err != nil {
		t.Fatal(err)
	}

	can, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer can.Close()

	it := can.ByItem()
	var item Item
	for it.Next() {
		if it.Item().OriginalPath == src {
			item = it.Item()
		}
	}

	if err := can.Erase(item); err != nil {
		t.Fatalf("first erase: %v", err)
	}
	if err := can.Erase(item); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second erase = %v, want ErrNotFound", err)
	}
}

func TestMoveToTrashBypass(t *testing.T) {
	withHomeTrash(t)
	srcDir := t.TempDir()
	src := writeFile(t, srcDir, "bypass.txt")

	if err := MoveToTrash(src, Options{BypassTrash: true}); err != nil {
		t.Fatalf("MoveToTrash with bypass: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatal("expected the file permanently removed, not trashed")
	}
}

func TestEmptyAllErasesEverything(t *testing.T) {
	withHomeTrash(t)
	srcDir := t.TempDir()
	a := writeFile(t, srcDir, "one.txt")
	b := writeFile(t, srcDir, "two.txt")

	if err := MoveToTrash(a); err != nil {
		t.Fatal(err)
	}
	if err := MoveToTrash(b); err != nil {
		t.Fatal(err)
	}

	can, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer can.Close()

	if err := can.EmptyAll(); err != nil {
		t.Fatalf("EmptyAll: %v", err)
	}

	it := can.ByItem()
	for it.Next() {
		t.Fatalf("expected no items after EmptyAll, found %s", it.Item().Name)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	withHomeTrash(t)
	srcDir := t.TempDir()
	src := writeFile(t, srcDir, "restoreme.txt")

	if err := MoveToTrash(src); err != nil {
		t.Fatal(err)
	}

	can, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer can.Close()

	it := can.ByItem()
	var item Item
	for it.Next() {
		if it.Item().OriginalPath == src {
			item = it.Item()
		}
	}

	if err := can.Restore(item); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("expected restored file: %v", err)
	}
}

func TestDisplayNameDefault(t *testing.T) {
	withHomeTrash(t)
	t.Setenv("XDG_DATA_DIRS", t.TempDir())

	can, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer can.Close()

	if got := can.DisplayName(); got != "" {
		t.Fatalf("expected empty display name when no directory.trash is found, got %q", got)
	}
}
