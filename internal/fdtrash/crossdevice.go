//go:build !windows && !darwin

package fdtrash

import (
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// renamePayload moves src to dst, falling back to a copy-then-remove
// when the rename fails because the trash root lives on a different
// device than the source (spec.md's Open Question on cross-filesystem
// moves: the original throws rather than degrading, but a library
// serving arbitrary source paths against a fixed per-volume trash root
// needs to handle this case rather than surface it as a placement
// failure). The copy lands at a uuid-suffixed temp name first and is
// renamed into place only once fully written, so a reader listing dst's
// directory never observes a partially written payload under the final
// name.
func renamePayload(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	tmp := dst + ".part-" + uuid.NewString()
	if err := copyTree(src, tmp); err != nil {
		os.RemoveAll(tmp)
		return errors.Wrap(err, "fdtrash: cross-device copy")
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.RemoveAll(tmp)
		return errors.Wrap(err, "fdtrash: finalize cross-device copy")
	}

	return os.RemoveAll(src)
}

// copyTree copies a single file or a directory tree from src to dst,
// preserving regular-file permissions and directory structure. Symlinks
// are recreated as symlinks rather than followed, matching Place's
// "move, don't resolve" handling of the direct-rename path.
func copyTree(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := os.Readlink(src)
		if err != nil {
			return err
		}
		return os.Symlink(target, dst)

	case info.IsDir():
		if err := os.MkdirAll(dst, info.Mode().Perm()); err != nil {
			return err
		}
		entries, err := os.ReadDir(src)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := copyTree(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
				return err
			}
		}
		return nil

	default:
		return copyFile(src, dst, info.Mode().Perm())
	}
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
