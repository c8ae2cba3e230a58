//go:build darwin

package mactrash

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Item is a ~/.Trash entry. macOS keeps no separate metadata file the
// way freedesktop trashinfo does: Finder tracks the original location
// privately for its own "Put Back" feature, which this backend doesn't
// reverse-engineer. OriginalPath therefore degrades to the item's name
// directly under the user's home directory, and DeletionDate is
// approximated from the payload's own modification time (what Finder
// stamps on the move).
type Item struct {
	Name         string
	Path         string
	OriginalPath string
	DeletionDate time.Time
	IsDir        bool
	Size         int64
}

func trashDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "mactrash: resolve home directory")
	}
	return filepath.Join(home, ".Trash"), nil
}

// Iterator is explicit cursor state over a directory listing, matching
// the shape internal/fdtrash.Iterator uses for the same job.
type Iterator struct {
	entries []os.DirEntry
	idx     int
	dir     string
	cur     Item
	fatal   error
}

func NewIterator() *Iterator {
	dir, err := trashDir()
	if err != nil {
		return &Iterator{fatal: err}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &Iterator{}
		}
		return &Iterator{fatal: err}
	}
	return &Iterator{entries: entries, dir: dir}
}

func (it *Iterator) Next() bool {
	for it.idx < len(it.entries) {
		entry := it.entries[it.idx]
		it.idx++

		info, err := entry.Info()
		if err != nil {
			continue
		}

		home, _ := os.UserHomeDir()

		it.cur = Item{
			Name:         entry.Name(),
			Path:         filepath.Join(it.dir, entry.Name()),
			OriginalPath: filepath.Join(home, entry.Name()),
			DeletionDate: info.ModTime(),
			IsDir:        entry.IsDir(),
			Size:         sizeOf(it.dir, entry.Name(), info),
		}
		return true
	}
	return false
}

func sizeOf(dir, name string, info os.FileInfo) int64 {
	if !info.IsDir() {
		return info.Size()
	}
	var total int64
	_ = filepath.WalkDir(filepath.Join(dir, name), func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if fi, ferr := d.Info(); ferr == nil {
			total += fi.Size()
		}
		return nil
	})
	return total
}

func (it *Iterator) Item() Item { return it.cur }
func (it *Iterator) Err() error { return it.fatal }

// Restore moves a trashed item back to its OriginalPath, which on this
// backend is a best-effort guess (see Item's doc comment), not a
// recorded fact.
func Restore(item Item) error {
	if err := os.MkdirAll(filepath.Dir(item.OriginalPath), 0o755); err != nil {
		return errors.Wrap(err, "mactrash: recreate restore parent")
	}
	if err := os.Rename(item.Path, item.OriginalPath); err != nil {
		return errors.Wrap(err, "mactrash: restore payload")
	}
	return nil
}

// Erase permanently removes a trashed item.
func Erase(item Item) error {
	var err error
	if item.IsDir {
		err = os.RemoveAll(item.Path)
	} else {
		err = os.Remove(item.Path)
	}
	if err != nil {
		return errors.Wrap(err, "mactrash: erase payload")
	}
	return nil
}

// DisplayName is always "Trash" on macOS; the Finder doesn't expose a
// localized override the way KDE's directory.trash does.
func DisplayName() string {
	return "Trash"
}
