//go:build darwin

// Package mactrash implements the macOS trash backend through the Carbon
// File Manager's FSMoveObjectToTrashSync, resolved at runtime via
// dlopen/dlsym rather than linked directly, since the function lives in
// a deprecated framework modern SDKs no longer expose a header for. This
// replaces disk-peek's internal/trash.moveToTrashMacOS, which shelled out
// to `osascript -e 'tell application "Finder" to delete'`: same end
// result (Finder, not just unlink, owns the move so Undo and the Trash
// can's "put back" keep working), but without spawning a process per call.
package mactrash

/*
#cgo LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>
#include <CoreFoundation/CoreFoundation.h>

typedef struct FSRef { unsigned char hidden[80]; } FSRef;

typedef signed long (*FSPathMakeRefWithOptionsFn)(const unsigned char *path, unsigned int options, FSRef *ref, unsigned char *isDirectory);
typedef signed long (*FSMoveObjectToTrashSyncFn)(const FSRef *source, FSRef *target, unsigned int options);

static void *carbonHandle = 0;
static FSPathMakeRefWithOptionsFn fsPathMakeRefWithOptions = 0;
static FSMoveObjectToTrashSyncFn fsMoveObjectToTrashSync = 0;

static int loadCarbon() {
	if (carbonHandle != 0) {
		return 0;
	}
	carbonHandle = dlopen("/System/Library/Frameworks/CoreServices.framework/CoreServices", RTLD_LAZY);
	if (!carbonHandle) {
		return -1;
	}
	fsPathMakeRefWithOptions = (FSPathMakeRefWithOptionsFn)dlsym(carbonHandle, "FSPathMakeRefWithOptions");
	fsMoveObjectToTrashSync = (FSMoveObjectToTrashSyncFn)dlsym(carbonHandle, "FSMoveObjectToTrashSync");
	if (!fsPathMakeRefWithOptions || !fsMoveObjectToTrashSync) {
		return -1;
	}
	return 0;
}

static long moveToTrash(const char *path) {
	if (loadCarbon() != 0) {
		return -1;
	}
	FSRef ref;
	unsigned char isDir = 0;
	long status = fsPathMakeRefWithOptions((const unsigned char *)path, 0, &ref, &isDir);
	if (status != 0) {
		return status;
	}
	FSRef target;
	return fsMoveObjectToTrashSync(&ref, &target, 0);
}
*/
import "C"

import (
	"os"
	"path/filepath"
	"strconv"
	"unsafe"

	"github.com/pkg/errors"
)

// Place moves path to the Trash via the Carbon File Manager, falling
// back to a plain rename into ~/.Trash if the Carbon symbols can't be
// resolved (e.g. a future SDK finally drops them).
func Place(path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	status := C.moveToTrash(cpath)
	if status == 0 {
		return nil
	}
	if status == -1 {
		return fallbackRename(path)
	}
	return errors.Errorf("mactrash: FSMoveObjectToTrashSync failed with OSStatus %d", int(status))
}

// fallbackRename implements the degraded path: move the file directly
// into ~/.Trash without Finder's involvement. Used only when the Carbon
// symbols are unavailable.
func fallbackRename(path string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return errors.Wrap(err, "mactrash: resolve home directory")
	}
	trashDir := filepath.Join(home, ".Trash")
	if err := os.MkdirAll(trashDir, 0o755); err != nil {
		return errors.Wrap(err, "mactrash: create ~/.Trash")
	}

	dest := filepath.Join(trashDir, filepath.Base(path))
	for i := 1; ; i++ {
		if _, err := os.Lstat(dest); os.IsNotExist(err) {
			break
		}
		ext := filepath.Ext(path)
		stem := filepath.Base(path)
		stem = stem[:len(stem)-len(ext)]
		dest = filepath.Join(trashDir, stem+" "+strconv.Itoa(i)+ext)
	}

	return os.Rename(path, dest)
}
