// Package buildinfo holds the version metadata the CLI's --version flag
// prints, set at build time via -ldflags the same way disk-peek's
// internal/updater.Version/BuildTime/GitCommit were. The rest of that
// package (GitHub release polling, DMG download/mount) doesn't belong to
// a library and isn't carried forward.
package buildinfo

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)
