//go:build !windows && !darwin

// Package fdtrash implements the freedesktop.org Trash Can Specification:
// multi-volume placement with sticky-bit checks and fallbacks,
// collision-free naming, atomic info+payload creation, and lazy,
// per-root-degrading enumeration. It is grounded on go-stdx-trash's
// trash.go/trash_linux.go (the exclusive-create collision loop, the
// Path=/DeletionDate= trashinfo grammar) generalized to the full
// useTopDirs/checkStickyBit/fallbackToUserDir/fallbackToHomeDir decision
// table spec.md §4.1 requires and go-stdx-trash's single-volume
// implementation does not attempt.
package fdtrash

import (
	"time"

	"github.com/pkg/errors"
)

// Sentinel errors this package raises; the root trash package's backend
// maps these onto the exported trash.Err* taxonomy at the boundary.
var (
	ErrNotAbsolute    = errors.New("fdtrash: path is not absolute")
	ErrSourceNotFound = errors.New("fdtrash: source path does not exist")
	ErrTopDirFailed   = errors.New("fdtrash: volume trash directory failed specification checks")
	ErrCorruptInfo    = errors.New("fdtrash: trashinfo file is corrupt or missing Path")
)

// Options mirrors the root package's Options (duplicated, not imported, to
// keep this package import-cycle-free and independently testable).
type Options struct {
	UseTopDirs        bool
	CheckStickyBit    bool
	FallbackToUserDir bool
	FallbackToHomeDir bool
}

// DefaultOptions returns every placement flag on, used by this
// package's own tests so they don't need to import the root package.
func DefaultOptions() Options {
	return Options{
		UseTopDirs:        true,
		CheckStickyBit:    true,
		FallbackToUserDir: true,
		FallbackToHomeDir: true,
	}
}

// Item is a trashed entry as this backend sees it; the root package
// converts to/from trash.Item at the boundary.
type Item struct {
	Name         string
	OriginalPath string
	DeletionDate time.Time
	IsDir        bool
	Size         int64

	InfoPath    string
	TrashedPath string
	VolumeRoot  string
}
