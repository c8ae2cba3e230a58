package trash

import (
	"io"

	"github.com/rs/zerolog"
)

// log is silent by default; callers opt in with SetLogger. This mirrors
// go-stdx-trash's example, which wires a *slog.Logger into the default
// logger before calling Put — here the sink is a zerolog.Logger instead,
// since structured leveled logging is what the rest of this corpus reaches
// for (see sawpanic-cryptorun) rather than log/slog.
var log = zerolog.New(io.Discard)

// platformSetLogger forwards a logger into the active platform backend's
// own package-level logger (internal/fdtrash on freedesktop platforms,
// internal/winshell on Windows), each of which keeps its own silent-by-
// default zerolog.Logger to stay usable standalone without importing this
// package. Populated by the active platform's trashcan_*.go via init;
// left nil (a no-op) on platforms without a backend logger of their own.
var platformSetLogger func(zerolog.Logger)

// SetLogger installs the logger used for debug tracing, both in this
// package (the outcome of each MoveToTrash) and in the active platform
// backend (see its own SetLogger). Enumeration root probes are not logged.
func SetLogger(l zerolog.Logger) {
	log = l
	if platformSetLogger != nil {
		platformSetLogger(l)
	}
}
