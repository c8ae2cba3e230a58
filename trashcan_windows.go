//go:build windows

package trash

import (
	"os"

	"github.com/pkg/errors"

	"github.com/rohithgilla12/trashcan/internal/winshell"
)

func newBackend() (backend, error) {
	return &windowsBackend{}, nil
}

func init() {
	platformSetLogger = winshell.SetLogger
}

// windowsBackend adapts internal/winshell, which has no enumeration
// cursor of its own: ByItem snapshots the Recycle Bin's contents
// eagerly into a slice-backed iterator rather than a lazily-driven one,
// since the underlying COM collection doesn't expose incremental
// iteration cheaply.
type windowsBackend struct{}

func (windowsBackend) place(path string, opts Options) error {
	if opts.BypassTrash {
		return os.RemoveAll(path)
	}
	if err := winshell.Place(path); err != nil {
		var opErr *winshell.OpError
		if errors.As(err, &opErr) {
			return newIoError(opErr.Code, err)
		}
		return err
	}
	return nil
}

func (windowsBackend) byItem() itemIterator {
	items, err := winshell.ByItem()
	return &sliceIterator{items: items, fatal: err}
}

func (windowsBackend) restore(it Item) error {
	return winshell.Restore(winshell.Item{Name: it.Name, OriginalPath: it.OriginalPath})
}

func (windowsBackend) erase(it Item) error {
	return winshell.Erase(winshell.Item{Name: it.Name, OriginalPath: it.OriginalPath})
}

func (windowsBackend) displayName() string {
	return winshell.DisplayName()
}

func (windowsBackend) close() error { return nil }

// sliceIterator adapts an eagerly-fetched []winshell.Item into the
// Next/Item/Err shape the rest of the package expects.
type sliceIterator struct {
	items []winshell.Item
	idx   int
	cur   Item
	fatal error
}

func (s *sliceIterator) Next() bool {
	if s.idx >= len(s.items) {
		return false
	}
	src := s.items[s.idx]
	s.idx++
	s.cur = Item{
		Name:         src.Name,
		OriginalPath: src.OriginalPath,
		DeletionDate: src.DeletionDate,
		IsDir:        src.IsDir,
		Size:         src.Size,
	}
	return true
}

func (s *sliceIterator) Item() Item { return s.cur }
func (s *sliceIterator) Err() error { return s.fatal }
