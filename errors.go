package trash

import (
	"github.com/pkg/errors"
)

// Error kinds, per the taxonomy every backend maps its failures onto.
var (
	ErrInvalidArgument   = errors.New("trash: path is not absolute")
	ErrNotFound          = errors.New("trash: source path does not exist")
	ErrAccessDenied      = errors.New("trash: access denied")
	ErrTopDirUnavailable = errors.New("trash: volume trash directory unavailable")
	ErrNotSupported      = errors.New("trash: not supported on this platform")
	ErrCorrupt           = errors.New("trash: trashinfo file is corrupt")
)

// IoError wraps an underlying syscall, COM, or HRESULT failure together
// with whatever numeric code the platform reported. errors.Is/errors.As
// see through it via Unwrap.
type IoError struct {
	Code  int
	cause error
}

func newIoError(code int, cause error) *IoError {
	return &IoError{Code: code, cause: cause}
}

func (e *IoError) Error() string {
	if e.cause != nil {
		return errors.Wrapf(e.cause, "trash: io error (code %d)", e.Code).Error()
	}
	return errors.Errorf("trash: io error (code %d)", e.Code).Error()
}

func (e *IoError) Unwrap() error { return e.cause }
