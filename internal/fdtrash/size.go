//go:build !windows && !darwin

package fdtrash

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// DirSize recursively sizes a trashed directory payload: symlinks are
// never followed (the payload itself was moved, not resolved, matching
// spec.md's "move, don't resolve" semantics), hardlinked files are counted
// once by inode, and on-disk block counts are used instead of logical
// size so sparse files don't overstate reclaimable space. This is
// disk-peek's internal/scanner/walker.go:WalkDirectory carried forward
// essentially unchanged, repointed at trash payloads instead of developer
// cache directories and ported from syscall.Stat_t to
// golang.org/x/sys/unix.Stat_t.
func DirSize(root string) int64 {
	seen := make(map[uint64]bool)
	var total int64

	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // absorb permission errors, keep walking
		}
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		var st unix.Stat_t
		if err := unix.Lstat(path, &st); err == nil {
			if seen[st.Ino] {
				return nil
			}
			seen[st.Ino] = true
			total += st.Blocks * 512
			return nil
		}

		total += info.Size()
		return nil
	})

	return total
}
