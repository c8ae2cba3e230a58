//go:build !windows && !darwin

package fdtrash

import (
	"os"
	"path/filepath"
	"testing"
)

// withDataHome points XDG_DATA_HOME at a fresh temp dir so home trash
// operations never touch the real user's trash.
func withDataHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	return dir
}

func writeSourceFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source file: %v", err)
	}
	return path
}

func TestPlaceMovesFileIntoHomeTrash(t *testing.T) {
	dataHome := withDataHome(t)
	srcDir := t.TempDir()
	src := writeSourceFile(t, srcDir, "doc.txt", "hello")

	if err := Place(src, DefaultOptions()); err != nil {
		t.Fatalf("Place: %v", err)
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("expected source to be gone, stat err=%v", err)
	}

	filesPath := filepath.Join(dataHome, "Trash", "files", "doc.txt")
	if _, err := os.Stat(filesPath); err != nil {
		t.Fatalf("expected payload at %s: %v", filesPath, err)
	}

	infoPath := filepath.Join(dataHome, "Trash", "info", "doc.txt.trashinfo")
	content, err := os.ReadFile(infoPath)
	if err != nil {
		t.Fatalf("read trashinfo: %v", err)
	}

	path, _, ok := decodeTrashInfo(content)
	if !ok {
		t.Fatal("decodeTrashInfo !ok")
	}
	if path != src {
		t.Fatalf("recorded path = %q, want %q (home trash records absolute paths)", path, src)
	}
}

func TestPlaceRejectsRelativePath(t *testing.T) {
	withDataHome(t)
	if err := Place("relative/path.txt", DefaultOptions()); err == nil {
		t.Fatal("expected error for relative source path")
	}
}

func TestPlaceRejectsMissingSource(t *testing.T) {
	withDataHome(t)
	missing := filepath.Join(t.TempDir(), "nope.txt")
	if err := Place(missing, DefaultOptions()); err == nil {
		t.Fatal("expected error for missing source path")
	}
}

func TestPlaceDeduplicatesCollidingNames(t *testing.T) {
	withDataHome(t)

	dirA := t.TempDir()
	dirB := t.TempDir()
	a := writeSourceFile(t, dirA, "same.txt", "a")
	b := writeSourceFile(t, dirB, "same.txt", "b")

	if err := Place(a, DefaultOptions()); err != nil {
		t.Fatalf("Place a: %v", err)
	}
	if err := Place(b, DefaultOptions()); err != nil {
		t.Fatalf("Place b: %v", err)
	}

	it := NewIterator()
	names := map[string]bool{}
	for it.Next() {
		names[it.Item().Name] = true
	}
	if err := it.Err(); err != nil {
		t.Fatalf("iterator error: %v", err)
	}

	if !names["same.txt"] || !names["same 1.txt"] {
		t.Fatalf("expected both same.txt and same 1.txt, got %v", names)
	}
}

func TestPlaceDirectoryComputesSize(t *testing.T) {
	dataHome := withDataHome(t)
	srcRoot := t.TempDir()
	srcDir := filepath.Join(srcRoot, "payload")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeSourceFile(t, srcDir, "a.txt", "aaaa")
	writeSourceFile(t, srcDir, "b.txt", "bbbb")

	if err := Place(srcDir, DefaultOptions()); err != nil {
		t.Fatalf("Place: %v", err)
	}

	filesPath := filepath.Join(dataHome, "Trash", "files", "payload")
	if info, err := os.Stat(filesPath); err != nil || !info.IsDir() {
		t.Fatalf("expected directory payload at %s", filesPath)
	}

	it := NewIterator()
	found := false
	for it.Next() {
		item := it.Item()
		if item.Name == "payload" {
			found = true
			if !item.IsDir {
				t.Fatal("expected IsDir true")
			}
			if item.Size <= 0 {
				t.Fatalf("expected positive size, got %d", item.Size)
			}
		}
	}
	if !found {
		t.Fatal("did not find the trashed directory while enumerating")
	}
}

func TestRestoreAndErase(t *testing.T) {
	withDataHome(t)
	srcDir := t.TempDir()
	src := writeSourceFile(t, srcDir, "roundtrip.txt", "content")

	if err := Place(src, DefaultOptions()); err != nil {
		t.Fatalf("Place: %v", err)
	}

	it := NewIterator()
	var found Item
	for it.Next() {
		if it.Item().Name == "roundtrip.txt" {
			found = it.Item()
		}
	}

	if err := Restore(found); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("expected restored file at %s: %v", src, err)
	}
	if _, err := os.Stat(found.InfoPath); !os.IsNotExist(err) {
		t.Fatalf("expected info file removed after restore")
	}

	if err := Place(src, DefaultOptions()); err != nil {
		t.Fatalf("re-Place: %v", err)
	}
	it2 := NewIterator()
	var found2 Item
	for it2.Next() {
		if it2.Item().Name == "roundtrip.txt" {
			found2 = it2.Item()
		}
	}
	if err := Erase(found2); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if _, err := os.Stat(found2.TrashedPath); !os.IsNotExist(err) {
		t.Fatal("expected payload removed after erase")
	}
	if _, err := os.Stat(found2.InfoPath); !os.IsNotExist(err) {
		t.Fatal("expected info file removed after erase")
	}
}
