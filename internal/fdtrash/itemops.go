//go:build !windows && !darwin

package fdtrash

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Restore implements spec.md §4.3: recreate the parent directory (robust
// against the original tree no longer existing), rename the payload back,
// then best-effort remove the info file (a failure there is logged, not
// raised).
func Restore(item Item) error {
	dir := filepath.Dir(item.OriginalPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "fdtrash: recreate restore parent")
	}

	// The trash root that received this item may live on a different
	// device than OriginalPath (fallbackToHomeDir places cross-device
	// sources in the home trash), so restoring needs the same
	// cross-device fallback placement uses.
	if err := renamePayload(item.TrashedPath, item.OriginalPath); err != nil {
		return errors.Wrap(err, "fdtrash: restore payload")
	}

	if err := os.Remove(item.InfoPath); err != nil {
		log().Debug().Err(err).Str("infoPath", item.InfoPath).Msg("fdtrash: best-effort info removal failed")
	}

	return nil
}

// Erase implements spec.md §4.3: remove the payload (recursively for a
// directory), then best-effort remove the info file.
func Erase(item Item) error {
	var err error
	if item.IsDir {
		err = os.RemoveAll(item.TrashedPath)
	} else {
		err = os.Remove(item.TrashedPath)
	}
	if err != nil {
		return errors.Wrap(err, "fdtrash: erase payload")
	}

	if err := os.Remove(item.InfoPath); err != nil {
		log().Debug().Err(err).Str("infoPath", item.InfoPath).Msg("fdtrash: best-effort info removal failed")
	}

	return nil
}
