//go:build linux

package trash

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestTrashAllMovesEveryPath(t *testing.T) {
	withHomeTrash(t)
	srcDir := t.TempDir()
	paths := []string{
		writeFile(t, srcDir, "batch-a.txt"),
		writeFile(t, srcDir, "batch-b.txt"),
		writeFile(t, srcDir, "batch-c.txt"),
	}

	results := TrashAll(context.Background(), paths, DefaultOptions(), 2)
	if len(results) != len(paths) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(paths))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("results[%d].Err = %v, want nil", i, r.Err)
		}
		if r.Path != paths[i] {
			t.Errorf("results[%d].Path = %q, want %q", i, r.Path, paths[i])
		}
		if _, err := os.Stat(paths[i]); !os.IsNotExist(err) {
			t.Errorf("expected %s removed from its source location", paths[i])
		}
	}
}

func TestTrashAllIsolatesFailures(t *testing.T) {
	withHomeTrash(t)
	srcDir := t.TempDir()
	ok := writeFile(t, srcDir, "exists.txt")
	missing := filepath.Join(srcDir, "missing.txt")

	results := TrashAll(context.Background(), []string{ok, missing}, DefaultOptions(), 2)
	if results[0].Err != nil {
		t.Errorf("expected the existing path to succeed, got %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Error("expected the missing path to fail")
	}
}

func TestRestoreAllAndEraseAll(t *testing.T) {
	withHomeTrash(t)
	srcDir := t.TempDir()
	paths := []string{
		writeFile(t, srcDir, "ra-a.txt"),
		writeFile(t, srcDir, "ra-b.txt"),
	}
	for _, p := range paths {
		if err := MoveToTrash(p); err != nil {
			t.Fatal(err)
		}
	}

	can, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer can.Close()

	var items []Item
	it := can.ByItem()
	for it.Next() {
		items = append(items, it.Item())
	}

	restoreResults := can.RestoreAll(context.Background(), items, 0)
	for _, r := range restoreResults {
		if r.Err != nil {
			t.Errorf("restore %s: %v", r.Path, r.Err)
		}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s restored: %v", p, err)
		}
	}

	for _, p := range paths {
		if err := MoveToTrash(p); err != nil {
			t.Fatal(err)
		}
	}
	items = items[:0]
	it = can.ByItem()
	for it.Next() {
		items = append(items, it.Item())
	}

	eraseResults := can.EraseAll(context.Background(), items, 0)
	for _, r := range eraseResults {
		if r.Err != nil {
			t.Errorf("erase %s: %v", r.Path, r.Err)
		}
	}

	remaining := can.ByItem()
	for remaining.Next() {
		t.Fatalf("expected no items left, found %s", remaining.Item().Name)
	}
}
