//go:build darwin

package trash

import (
	"os"

	"github.com/rohithgilla12/trashcan/internal/mactrash"
)

func newBackend() (backend, error) {
	return &mactrashBackend{}, nil
}

type mactrashBackend struct{}

func (mactrashBackend) place(path string, opts Options) error {
	if opts.BypassTrash {
		return os.RemoveAll(path)
	}
	return mactrash.Place(path)
}

func (mactrashBackend) byItem() itemIterator {
	return &macIteratorAdapter{it: mactrash.NewIterator()}
}

func (mactrashBackend) restore(it Item) error {
	return mactrash.Restore(mactrash.Item{Path: it.trashedPath, OriginalPath: it.OriginalPath, IsDir: it.IsDir})
}

func (mactrashBackend) erase(it Item) error {
	return mactrash.Erase(mactrash.Item{Path: it.trashedPath, IsDir: it.IsDir})
}

func (mactrashBackend) displayName() string {
	return mactrash.DisplayName()
}

func (mactrashBackend) close() error { return nil }

type macIteratorAdapter struct {
	it  *mactrash.Iterator
	cur Item
}

func (a *macIteratorAdapter) Next() bool {
	if !a.it.Next() {
		return false
	}
	src := a.it.Item()
	a.cur = Item{
		Name:         src.Name,
		OriginalPath: src.OriginalPath,
		DeletionDate: src.DeletionDate,
		IsDir:        src.IsDir,
		Size:         src.Size,
		trashedPath:  src.Path,
	}
	return true
}

func (a *macIteratorAdapter) Item() Item { return a.cur }
func (a *macIteratorAdapter) Err() error { return a.it.Err() }
