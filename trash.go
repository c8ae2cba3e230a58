package trash

import (
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Item is a trashed entry: the invariant 1-to-1 pairing of a payload and
// its metadata file (spec.md §3).
type Item struct {
	// Name is the trashed leaf name (without any directory), e.g.
	// "foo.txt" or "foo 1.txt".
	Name string
	// OriginalPath is the absolute path the item was trashed from, and
	// the path Restore puts it back at.
	OriginalPath string
	// DeletionDate is local time truncated to whole seconds. Zero if the
	// trashinfo's DeletionDate failed to parse (the item is still kept).
	DeletionDate time.Time
	// IsDir reports whether the payload is a directory.
	IsDir bool
	// Size is the payload's size in bytes. On freedesktop platforms it is
	// the file's own size, or the recursive, hardlink-deduplicated, on-disk
	// size for a directory (see internal/fdtrash/size.go). The macOS backend
	// sums the logical sizes of a directory's files without deduplication;
	// the Windows backend leaves it zero.
	Size int64

	// infoPath/trashedPath/volumeRoot are backend-private addressing used
	// by Restore/Erase; zero value on items constructed by callers.
	infoPath    string
	trashedPath string
	volumeRoot  string
}

// backend is implemented once per supported platform family and selected
// at build time by the platform-specific newBackend constructors in
// trashcan_linux.go, trashcan_bsd.go, trashcan_darwin.go and
// trashcan_windows.go.
type backend interface {
	place(path string, opts Options) error
	byItem() itemIterator
	restore(it Item) error
	erase(it Item) error
	displayName() string
	close() error
}

// itemIterator is explicit iterator state rather than a lazily-composed
// channel or generator chain, so that per-entry error recovery and
// cancellation stay obvious (spec.md §9).
type itemIterator interface {
	Next() bool
	Item() Item
	Err() error
}

// Trashcan is a process-scoped handle over the platform backend. No
// backend keeps session state in it: the Windows backend initialises COM
// and binds the Recycle Bin folder afresh inside each call and releases
// them before that call returns. Construct once, Close when done.
type Trashcan struct {
	b backend
}

// New constructs the platform trashcan handle.
func New() (*Trashcan, error) {
	b, err := newBackend()
	if err != nil {
		return nil, err
	}
	return &Trashcan{b: b}, nil
}

// Close releases the handle. No backend holds state that needs releasing,
// so it returns nil.
func (t *Trashcan) Close() error {
	return t.b.close()
}

// ByItem returns a lazy iterator over every item currently in the trash.
// Root- and entry-level errors are absorbed per spec.md §4.2/§7; only a
// fatal condition (e.g. the home data directory can't be resolved) surfaces
// through Err after iteration stops.
func (t *Trashcan) ByItem() ItemIterator {
	return ItemIterator{it: t.b.byItem()}
}

// Restore moves item back to its OriginalPath and removes its metadata.
func (t *Trashcan) Restore(item Item) error {
	return t.b.restore(item)
}

// Erase permanently removes item's payload and metadata.
func (t *Trashcan) Erase(item Item) error {
	return t.b.erase(item)
}

// EmptyAll erases every item the trashcan can currently enumerate. It is a
// convenience composed from ByItem+Erase, not a primitive the
// specification requires; the first erase failure is returned but already
// erased items stay erased (there is no rollback).
func (t *Trashcan) EmptyAll() error {
	it := t.ByItem()
	for it.Next() {
		if err := t.Erase(it.Item()); err != nil {
			return err
		}
	}
	return it.Err()
}

// DisplayName returns a (possibly localized) human name for the trash can,
// memoized after the first call (internal/displaycache).
func (t *Trashcan) DisplayName() string {
	return t.b.displayName()
}

// ItemIterator exposes backend iterator state through a stable, exported
// shape.
type ItemIterator struct {
	it  itemIterator
	cur Item
}

// Next advances to the next item, returning false at end of stream or on a
// fatal root-discovery error (distinguished by Err).
func (i *ItemIterator) Next() bool {
	if !i.it.Next() {
		return false
	}
	i.cur = i.it.Item()
	return true
}

// Item returns the item produced by the most recent successful Next.
func (i *ItemIterator) Item() Item { return i.cur }

// Err returns the first fatal error encountered, if any.
func (i *ItemIterator) Err() error { return i.it.Err() }

// MoveToTrash moves an absolute, existing path into the platform trash
// can. opts defaults to DefaultOptions when omitted; only the first
// element is used.
func MoveToTrash(path string, opts ...Options) error {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}

	if !filepath.IsAbs(path) {
		return errors.Wrapf(ErrInvalidArgument, "%q", path)
	}

	b, err := newBackend()
	if err != nil {
		return err
	}
	defer b.close()

	if err := b.place(path, o); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("trash: place failed")
		return err
	}
	log.Debug().Str("path", path).Msg("trash: placed")
	return nil
}
