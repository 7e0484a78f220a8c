//go:build windows

package trash

import (
	"fmt"
	"path/filepath"
	"syscall"
	"unsafe"
)

// ─── Shell32 Syscalls ────────────────────────────────────────────────────────

var (
	modShell32          = syscall.NewLazyDLL("shell32.dll")
	procSHFileOperation = modShell32.NewProc("SHFileOperationW")
)

const (
	foDelete = 0x0003

	fofSilent         = 0x0004 // no progress dialog
	fofNoConfirmation = 0x0010
	fofAllowUndo      = 0x0040 // move to Recycle Bin instead of unlinking
	fofNoErrorUI      = 0x0400
)

// shFileOpStruct mirrors the Windows SHFILEOPSTRUCTW struct.
// Field order plus Go's natural alignment reproduce the 64-bit C layout.
type shFileOpStruct struct {
	hwnd                  uintptr
	wFunc                 uint32
	pFrom                 *uint16
	pTo                   *uint16
	fFlags                uint16
	fAnyOperationsAborted int32
	hNameMappings         uintptr
	lpszProgressTitle     *uint16
}

// ─── Recycle Bin Mover ───────────────────────────────────────────────────────

// recycleBin moves files to the Windows Recycle Bin one at a time via
// SHFileOperationW with FOF_ALLOWUNDO.
type recycleBin struct{}

// New returns a Mover backed by the Windows Recycle Bin.
func New() Mover {
	return recycleBin{}
}

func (recycleBin) Move(path string) error {
	// SHFileOperationW resolves relative paths against an unpredictable
	// working directory, so refuse them outright.
	if !filepath.IsAbs(path) {
		return fmt.Errorf("trash: path is not absolute: %s", path)
	}

	// pFrom is a double-NUL-terminated list of paths; UTF16FromString
	// supplies the first terminator.
	from, err := syscall.UTF16FromString(path)
	if err != nil {
		return fmt.Errorf("trash: encode path: %w", err)
	}
	from = append(from, 0)

	op := shFileOpStruct{
		wFunc:  foDelete,
		pFrom:  &from[0],
		fFlags: fofAllowUndo | fofNoConfirmation | fofSilent | fofNoErrorUI,
	}

	ret, _, _ := procSHFileOperation.Call(uintptr(unsafe.Pointer(&op)))
	if ret != 0 {
		return fmt.Errorf("SHFileOperationW failed: code 0x%x", uint32(ret))
	}
	if op.fAnyOperationsAborted != 0 {
		return fmt.Errorf("SHFileOperationW aborted the operation")
	}
	return nil
}
