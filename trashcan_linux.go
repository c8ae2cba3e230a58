//go:build linux

package trash

import (
	"os"

	"github.com/rohithgilla12/trashcan/internal/fdtrash"
)

// newBackend selects the freedesktop backend on Linux.
func newBackend() (backend, error) {
	return &fdtrashBackend{}, nil
}

func init() {
	platformSetLogger = fdtrash.SetLogger
}

// fdtrashBackend adapts internal/fdtrash's free functions (no session
// state needed: every call is self-contained) to the backend interface.
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

// toFdItem rebuilds the private addressing fields fdtrash needs from the
// ones stashed on Item by fdIteratorAdapter. Items constructed directly by
// a caller (rather than obtained from ByItem) carry zero-valued addressing
// and will fail restore/erase; that mirrors the specification's model of
// Item as an opaque handle the caller shouldn't hand-construct.
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

// fdIteratorAdapter converts an *fdtrash.Iterator (which yields
// fdtrash.Item) into the root package's itemIterator (which yields Item).
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
