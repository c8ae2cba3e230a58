//go:build !windows && !darwin

package fdtrash

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// base is the outcome of the selection algorithm (spec.md §4.1 steps 1-7):
// which trash root to place into, and whether Path= must be written
// relative to volumeRoot.
type base struct {
	dir         string
	volumeRoot  string
	usingTopdir bool
}

// xdgDataHome resolves $XDG_DATA_HOME, defaulting to $HOME/.local/share,
// and makes it absolute. Failing is fatal per spec.md §4.1 step 1.
func xdgDataHome() (string, error) {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return filepath.Abs(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "fdtrash: resolve home directory")
	}
	return filepath.Join(home, ".local", "share"), nil
}

func homeTrashDir() (string, error) {
	dataHome, err := xdgDataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataHome, "Trash"), nil
}

// selectBase implements the explicit decision table spec.md §9 asks for in
// place of the original's nested-exception fallback chain: each row is one
// (useTopDirs, checkStickyBit, fallbackToUserDir, fallbackToHomeDir)
// outcome, returning the first base that passes its checks or the last
// error encountered trying.
func selectBase(sourcePath string, opts Options) (base, error) {
	home, err := homeTrashDir()
	if err != nil {
		return base{}, err
	}

	if !opts.UseTopDirs {
		return base{dir: home, usingTopdir: false}, nil
	}

	fileTopDir, err := TopDir(sourcePath)
	if err != nil {
		return base{}, errors.Wrap(err, "fdtrash: resolve source volume")
	}
	// The volume of the data directory itself, not of its Trash
	// subdirectory, which may not exist before the first placement.
	dataTopDir, err := TopDir(filepath.Dir(home))
	if err != nil {
		return base{}, errors.Wrap(err, "fdtrash: resolve home volume")
	}

	if fileTopDir == dataTopDir {
		return base{dir: home, usingTopdir: false}, nil
	}

	uid := fmt.Sprintf("%d", unix.Getuid())

	lastErr := error(ErrTopDirFailed)

	adminDir := filepath.Join(fileTopDir, ".Trash")
	if err := stickyDir(adminDir, opts.CheckStickyBit); err == nil {
		perUser := filepath.Join(adminDir, uid)
		if err := ensureDirs(perUser); err == nil {
			return base{dir: perUser, volumeRoot: fileTopDir, usingTopdir: true}, nil
		} else {
			lastErr = err
		}
	} else {
		lastErr = err
	}

	if opts.FallbackToUserDir {
		userDir := filepath.Join(fileTopDir, ".Trash-"+uid)
		if err := ensureDirs(userDir); err == nil {
			return base{dir: userDir, volumeRoot: fileTopDir, usingTopdir: true}, nil
		} else {
			lastErr = err
		}
	}

	if !opts.FallbackToHomeDir {
		return base{}, lastErr
	}

	return base{dir: home, usingTopdir: false}, nil
}

func ensureDirs(dir string) error {
	return os.MkdirAll(dir, 0o700)
}

func ensureTrashLayout(b base) error {
	if err := os.MkdirAll(filepath.Join(b.dir, "info"), 0o700); err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(b.dir, "files"), 0o700)
}

// Place implements spec.md §4.1's placement algorithm in full: validate,
// select base, collision loop with exclusive-create on the info file,
// write metadata, rename the payload, best-effort cleanup of the info file
// if the rename fails.
func Place(sourcePath string, opts Options) error {
	if !filepath.IsAbs(sourcePath) {
		return errors.Wrapf(ErrNotAbsolute, "%q", sourcePath)
	}
	if _, err := os.Lstat(sourcePath); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrSourceNotFound, "%q", sourcePath)
		}
		return err
	}

	b, err := selectBase(sourcePath, opts)
	if err != nil {
		return err
	}
	if err := ensureTrashLayout(b); err != nil {
		return errors.Wrap(err, "fdtrash: create trash layout")
	}

	recordedPath := sourcePath
	if b.usingTopdir {
		rel, err := filepath.Rel(b.volumeRoot, sourcePath)
		if err == nil {
			recordedPath = rel
		}
	}

	deletionTime := time.Now().Truncate(time.Second)
	body := encodeTrashInfo(recordedPath, deletionTime)

	leaf := filepath.Base(sourcePath)

	// The collision loop's only true linearization point is this exclusive
	// create: claimNameFrom picks a candidate that looked free, but a sibling
	// process may win the race between the lstat probes and here, so on
	// EEXIST we re-run claimNameFrom with a start index one higher (it probes
	// past the name the sibling just claimed) rather than failing.
	var infoPath, filesPath string
	var f *os.File
	for attempt := 0; ; attempt++ {
		infoPath, filesPath, err = claimNameFrom(b.dir, leaf, attempt)
		if err != nil {
			return errors.Wrap(err, "fdtrash: claim trash name")
		}

		f, err = os.OpenFile(infoPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o666)
		if err == nil {
			break
		}
		if os.IsExist(err) {
			continue
		}
		return errors.Wrap(err, "fdtrash: create trashinfo")
	}

	if _, err := f.Write(body); err != nil {
		f.Close()
		os.Remove(infoPath)
		return errors.Wrap(err, "fdtrash: write trashinfo")
	}
	if err := f.Close(); err != nil {
		os.Remove(infoPath)
		return errors.Wrap(err, "fdtrash: close trashinfo")
	}

	if err := renamePayload(sourcePath, filesPath); err != nil {
		os.Remove(infoPath)
		return errors.Wrap(err, "fdtrash: move payload")
	}

	log().Debug().
		Str("source", sourcePath).
		Str("trashed", filesPath).
		Bool("usingTopdir", b.usingTopdir).
		Msg("fdtrash: placed")

	return nil
}

// claimNameFrom runs the collision loop starting at suffix index from:
// find a leaf name whose payload path doesn't exist and whose info file
// looks free, inserting "stem N.ext" suffixes (1-origin) until both hold.
// Both sides are checked because the payload path may pre-exist (e.g. a
// prior failed rename) even when a fresh info name is free.
func claimNameFrom(dir, leaf string, from int) (infoPath, filesPath string, err error) {
	ext := filepath.Ext(leaf)
	stem := leaf[:len(leaf)-len(ext)]

	for i := from; ; i++ {
		name := leaf
		if i > 0 {
			if ext == "" {
				name = fmt.Sprintf("%s %d", stem, i)
			} else {
				name = fmt.Sprintf("%s %d%s", stem, i, ext)
			}
		}

		candidateInfo := filepath.Join(dir, "info", name+".trashinfo")
		candidateFiles := filepath.Join(dir, "files", name)

		if _, err := os.Lstat(candidateFiles); err == nil {
			continue // payload already taken, try the next suffix
		}

		// Probe-create; the real exclusive create happens in Place once
		// we know this is the winning name, to keep this loop read-mostly.
		if _, err := os.Lstat(candidateInfo); err == nil {
			continue
		}

		return candidateInfo, candidateFiles, nil
	}
}
