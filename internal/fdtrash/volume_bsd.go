//go:build freebsd || netbsd || openbsd || dragonfly

package fdtrash

import "golang.org/x/sys/unix"

// MountedVolumes enumerates mount points via getfsstat(2) (through
// golang.org/x/sys/unix), the BSD equivalent of parsing /proc/mounts on
// Linux. Entries getfsstat itself rejects are simply absent from the
// returned count, matching spec.md §4.4's "invalid entries are skipped."
func MountedVolumes() ([]string, error) {
	n, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil {
		return nil, err
	}
	buf := make([]unix.Statfs_t, n)
	n, err = unix.Getfsstat(buf, unix.MNT_NOWAIT)
	if err != nil {
		return nil, err
	}

	mounts := make([]string, 0, n)
	for _, s := range buf[:n] {
		mounts = append(mounts, unix.ByteSliceToString(s.Mntonname[:]))
	}
	return mounts, nil
}
