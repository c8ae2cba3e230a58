//go:build !windows && !darwin

package fdtrash

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// root is one discovered (base, volumeRoot) pair (spec.md §3: Trash Root).
type root struct {
	dir        string
	volumeRoot string
}

// discoverRoots finds every trash root reachable by the current user:
// the home trash, then for every other mounted volume, the admin
// per-volume root (if it passes sticky/link/dir checks) and the
// user-private per-volume root, each only if the directory actually
// exists. Probes that raise are silently skipped (spec.md §4.2).
func discoverRoots() ([]root, error) {
	home, err := homeTrashDir()
	if err != nil {
		return nil, err
	}

	var roots []root
	homeVolume, err := TopDir(home)
	if err == nil {
		if isDir(home) {
			roots = append(roots, root{dir: home, volumeRoot: homeVolume})
		}
	}

	volumes, err := MountedVolumes()
	if err != nil {
		return roots, nil // degrade to whatever we already found
	}

	uid := fmt.Sprintf("%d", unix.Getuid())
	seen := map[string]bool{}
	for _, v := range volumes {
		if v == homeVolume || seen[v] {
			continue
		}
		seen[v] = true

		adminDir := filepath.Join(v, ".Trash")
		if stickyDir(adminDir, true) == nil {
			perUser := filepath.Join(adminDir, uid)
			if isDir(perUser) {
				roots = append(roots, root{dir: perUser, volumeRoot: v})
			}
		}

		userDir := filepath.Join(v, ".Trash-"+uid)
		if isDir(userDir) {
			roots = append(roots, root{dir: userDir, volumeRoot: v})
		}
	}

	return roots, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Iterator is explicit iterator state over every root's info directory:
// a root index plus the current root's directory entries plus a cursor,
// so per-entry error recovery and where-we-are-in-the-walk stay obvious
// (spec.md §9) instead of a composed lazy-transformation chain.
type Iterator struct {
	roots     []root
	rootIdx   int
	entries   []os.DirEntry
	entryIdx  int
	cur       Item
	fatal     error
}

// NewIterator discovers roots and returns an iterator over their items.
// A fatal root-discovery error (the home data directory can't be
// resolved) is surfaced through Err once Next returns false.
func NewIterator() *Iterator {
	roots, err := discoverRoots()
	return &Iterator{roots: roots, fatal: err}
}

func (it *Iterator) Next() bool {
	for {
		if it.entryIdx >= len(it.entries) {
			if !it.advanceRoot() {
				return false
			}
			continue
		}

		entry := it.entries[it.entryIdx]
		it.entryIdx++

		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".trashinfo") {
			continue
		}

		r := it.roots[it.rootIdx]
		item, ok := readItem(r, entry.Name())
		if !ok {
			continue // per-entry error absorbed, keep scanning
		}
		it.cur = item
		return true
	}
}

// advanceRoot moves to the next root's info directory listing, returning
// false once every root has been exhausted. A root whose info directory
// can't be listed yields an empty sub-iterator rather than aborting.
func (it *Iterator) advanceRoot() bool {
	for {
		if it.rootIdx >= len(it.roots) {
			return false
		}
		r := it.roots[it.rootIdx]
		it.rootIdx++

		entries, err := os.ReadDir(filepath.Join(r.dir, "info"))
		if err != nil {
			continue
		}
		it.entries = entries
		it.entryIdx = 0
		return true
	}
}

func (it *Iterator) Item() Item { return it.cur }
func (it *Iterator) Err() error { return it.fatal }

// readItem materializes one item from root r's info/name entry, applying
// spec.md §4.2's lenient parse and the "drop if Path missing, absorb read
// errors" rule.
func readItem(r root, name string) (Item, bool) {
	infoPath := filepath.Join(r.dir, "info", name)
	content, err := os.ReadFile(infoPath)
	if err != nil {
		return Item{}, false
	}

	path, deletionDate, ok := decodeTrashInfo(content)
	if !ok {
		return Item{}, false
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(r.volumeRoot, path)
	}

	leaf := strings.TrimSuffix(name, ".trashinfo")
	filesPath := filepath.Join(r.dir, "files", leaf)

	info, statErr := os.Lstat(filesPath)
	if statErr != nil {
		return Item{}, false // payload missing: not an item yet, per spec.md §5
	}

	size := info.Size()
	if info.IsDir() {
		size = DirSize(filesPath)
	}

	return Item{
		Name:         leaf,
		OriginalPath: path,
		DeletionDate: deletionDate,
		IsDir:        info.IsDir(),
		Size:         size,
		InfoPath:     infoPath,
		TrashedPath:  filesPath,
		VolumeRoot:   r.volumeRoot,
	}, true
}
