//go:build linux || freebsd || netbsd || openbsd || dragonfly

package trash

import (
	"os"

	"github.com/pkg/errors"

	"github.com/rohithgilla12/trashcan/internal/fdtrash"
)

// mapFdErr translates internal/fdtrash's own sentinels (defined there
// rather than imported from here, to avoid an import cycle) onto the
// root error taxonomy spec.md §7 requires, so callers can errors.Is
// against trash.Err* regardless of which freedesktop-family platform
// they're running on.
func mapFdErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fdtrash.ErrNotAbsolute):
		return errors.Wrap(ErrInvalidArgument, err.Error())
	case errors.Is(err, fdtrash.ErrSourceNotFound):
		return errors.Wrap(ErrNotFound, err.Error())
	case errors.Is(err, fdtrash.ErrTopDirFailed):
		return errors.Wrap(ErrTopDirUnavailable, err.Error())
	case errors.Is(err, fdtrash.ErrCorruptInfo):
		return errors.Wrap(ErrCorrupt, err.Error())
	case os.IsPermission(errors.Cause(err)):
		return errors.Wrap(ErrAccessDenied, err.Error())
	case os.IsNotExist(errors.Cause(err)):
		return errors.Wrap(ErrNotFound, err.Error())
	default:
		return err
	}
}
