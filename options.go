package trash

// Options controls the freedesktop placement algorithm (spec.md §3, §4.1).
// Other backends ignore flags that don't apply to them.
type Options struct {
	// UseTopDirs makes placement consider per-volume trash roots at all.
	// When false, everything goes to the home trash regardless of the
	// source's volume.
	UseTopDirs bool

	// CheckStickyBit requires the sticky bit (S_ISVTX) on $topdir/.Trash
	// before trusting it as an admin-provided per-volume trash root.
	CheckStickyBit bool

	// FallbackToUserDir tries $topdir/.Trash-$uid when the admin path
	// fails its checks.
	FallbackToUserDir bool

	// FallbackToHomeDir falls back to the home trash when both per-volume
	// attempts fail.
	FallbackToHomeDir bool

	// BypassTrash deletes the path immediately instead of placing it in
	// any trash root. Not part of the freedesktop specification; exposed
	// so the configuration service (internal/trashconfig) and the CLI's
	// --permanent flag have something to set.
	BypassTrash bool
}

// DefaultOptions returns every flag on, the specification's default.
func DefaultOptions() Options {
	return Options{
		UseTopDirs:        true,
		CheckStickyBit:    true,
		FallbackToUserDir: true,
		FallbackToHomeDir: true,
	}
}
