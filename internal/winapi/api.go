// Package winapi binds the Win32 clipboard and global-memory calls used by
// winclip.
//
// Every call returns its raw result together with the last-error code
// captured immediately after it returned. Callers keep that code with the
// failure instead of asking GetLastError again later, when an intervening
// call may already have overwritten it.
package winapi

import (
	"errors"
	"syscall"
)

// Handle is an opaque HANDLE / HGLOBAL / HWND value.
type Handle uintptr

// Values copied from WinUser.h and WinBase.h.
const (
	CFText = 1 // CF_TEXT

	GMEMMoveable = 0x0002 // GMEM_MOVEABLE
	GMEMZeroInit = 0x0040 // GMEM_ZEROINIT

	NoError syscall.Errno = 0 // NO_ERROR
)

// ErrUnsupported is returned by New on platforms without the Win32 API.
var ErrUnsupported = errors.New("winapi: Win32 clipboard API not available on this platform")

// API is the native call surface. The Windows implementation forwards each
// method to the export of the same name; tests substitute a fake.
type API interface {
	// OpenClipboard opens the clipboard for owner (0 = current task).
	OpenClipboard(owner Handle) (bool, syscall.Errno)
	CloseClipboard() (bool, syscall.Errno)
	EmptyClipboard() (bool, syscall.Errno)

	// GetClipboardData returns 0 when no data in format is available.
	GetClipboardData(format uint32) (Handle, syscall.Errno)

	// SetClipboardData returns 0 when the OS rejected the hand-off.
	SetClipboardData(format uint32, mem Handle) (Handle, syscall.Errno)

	GlobalAlloc(flags uint32, size uintptr) (Handle, syscall.Errno)

	// GlobalFree returns 0 on success and mem on failure.
	GlobalFree(mem Handle) (Handle, syscall.Errno)

	// GlobalLock returns the base address of the block, or 0.
	GlobalLock(mem Handle) (uintptr, syscall.Errno)

	// GlobalUnlock reports whether the block is still locked. A false result
	// with NoError means the lock count reached zero; a false result with
	// any other code means the call failed.
	GlobalUnlock(mem Handle) (bool, syscall.Errno)

	// GlobalSize returns the block size in bytes, or 0 on failure.
	GlobalSize(mem Handle) (uintptr, syscall.Errno)
}
