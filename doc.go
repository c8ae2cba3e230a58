// Package trash implements a user-visible trash can / recycle bin
// abstraction over the native facilities of freedesktop-compliant Unix
// systems, Windows, and macOS.
//
// MoveToTrash places a path into the platform trash. A Trashcan enumerates,
// restores, and erases items already trashed.
package trash
