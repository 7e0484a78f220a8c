// Package trash moves files to the platform's recoverable trash: the
// Recycle Bin on Windows, the XDG trash directory elsewhere. Files are
// never unlinked outright, so every move can be undone from the
// desktop.
package trash

// Mover sends files to the recoverable trash.
type Mover interface {
	// Move sends one file to the trash. The path must be absolute and
	// must still exist at call time. A failure affects only this file.
	Move(path string) error
}
