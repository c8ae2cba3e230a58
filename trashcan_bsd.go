//go:build freebsd || netbsd || openbsd || dragonfly

package trash

import (
	"os"

	"github.com/rohithgilla12/trashcan/internal/fdtrash"
)

// newBackend selects the freedesktop backend on the BSDs.
func newBackend() (backend, error) {
	return &fdtrashBackend{}, nil
}

func init() {
	platformSetLogger = fdtrash.SetLogger
}

type fdtrashBackend struct{}

func (fdtrashBackend) place(path string, opts Options) error {
	if opts.BypassTrash {
		return os.RemoveAll(path)
	}
	return mapFdErr(fdtrash.Place(path, toFdOptions(opts)))
}

func (fdtrashBackend) byItem() itemIterator {
	return &fdIteratorAdapter{it: fdtrash.NewIterator()}
}

func (fdtrashBackend) restore(it Item) error {
	return mapFdErr(fdtrash.Restore(toFdItem(it)))
}

func (fdtrashBackend) erase(it Item) error {
	return mapFdErr(fdtrash.Erase(toFdItem(it)))
}

func (fdtrashBackend) displayName() string {
	return fdtrash.DisplayName()
}

func (fdtrashBackend) close() error { return nil }

func toFdOptions(o Options) fdtrash.Options {
	return fdtrash.Options{
		UseTopDirs:        o.UseTopDirs,
		CheckStickyBit:    o.CheckStickyBit,
		FallbackToUserDir: o.FallbackToUserDir,
		FallbackToHomeDir: o.FallbackToHomeDir,
	}
}

func toFdItem(it Item) fdtrash.Item {
	return fdtrash.Item{
		Name:         it.Name,
		OriginalPath: it.OriginalPath,
		DeletionDate: it.DeletionDate,
		IsDir:        it.IsDir,
		Size:         it.Size,
		InfoPath:     it.infoPath,
		TrashedPath:  it.trashedPath,
		VolumeRoot:   it.volumeRoot,
	}
}

func fromFdItem(it fdtrash.Item) Item {
	return Item{
		Name:         it.Name,
		OriginalPath: it.OriginalPath,
		DeletionDate: it.DeletionDate,
		IsDir:        it.IsDir,
		Size:         it.Size,
		infoPath:     it.InfoPath,
		trashedPath:  it.TrashedPath,
		volumeRoot:   it.VolumeRoot,
	}
}

type fdIteratorAdapter struct {
	it  *fdtrash.Iterator
	cur Item
}

func (a *fdIteratorAdapter) Next() bool {
	if !a.it.Next() {
		return false
	}
	a.cur = fromFdItem(a.it.Item())
	return true
}

func (a *fdIteratorAdapter) Item() Item { return a.cur }
func (a *fdIteratorAdapter) Err() error { return mapFdErr(a.it.Err()) }
