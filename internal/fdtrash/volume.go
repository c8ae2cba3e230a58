//go:build !windows && !darwin

package fdtrash

import (
	"path/filepath"

	"golang.org/x/sys/unix"
)

// TopDir returns the mount point of the volume containing path: walk
// parents comparing device numbers from Lstat; the child is the mount
// point the moment the device changes. Grounded on go-stdx-trash's
// trash_linux.go:findMountPoint, ported from syscall.Stat_t to
// golang.org/x/sys/unix.Stat_t (this corpus's preferred syscall binding —
// the teacher's go.mod already carries golang.org/x/sys).
func TopDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	var st unix.Stat_t
	if err := unix.Lstat(abs, &st); err != nil {
		return "", err
	}
	dev := st.Dev
	dir := abs

	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir, nil
		}

		var pst unix.Stat_t
		if err := unix.Lstat(parent, &pst); err != nil {
			return "", err
		}
		if pst.Dev != dev {
			return dir, nil
		}
		dir = parent
	}
}

// stickyDir reports whether path exists, is not a symlink, is a directory,
// and (when requireSticky) has S_ISVTX set. Any failing check maps to a
// non-nil error describing which check failed; callers only care that it
// failed (spec.md §4.1 step 4's "Any failure throws a disk trash failed
// error").
func stickyDir(path string, requireSticky bool) error {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return err
	}
	if st.Mode&unix.S_IFMT == unix.S_IFLNK {
		return ErrTopDirFailed
	}
	if st.Mode&unix.S_IFMT != unix.S_IFDIR {
		return ErrTopDirFailed
	}
	if requireSticky && st.Mode&unix.S_ISVTX == 0 {
		return ErrTopDirFailed
	}
	return nil
}
