//go:build windows

package winshell

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

// SetLogger installs the logger used for debug tracing of
// SHFileOperationW calls and Shell.Application COM automation. The root
// trash package forwards its own SetLogger call here.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

func log() *zerolog.Logger {
	return logger.Load()
}
