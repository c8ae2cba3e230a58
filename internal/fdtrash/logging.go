//go:build !windows && !darwin

package fdtrash

import (
	"io"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.New(io.Discard)
	logger.Store(&l)
}

// SetLogger installs the logger used for debug tracing: one event per
// completed placement and one per failed best-effort info-file removal.
// Placement branches and enumeration emit no events. The root trash
// package forwards its own SetLogger call here.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

func log() *zerolog.Logger {
	return logger.Load()
}
