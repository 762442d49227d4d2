//go:build windows

package winapi

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard    = user32.NewProc("OpenClipboard")
	procCloseClipboard   = user32.NewProc("CloseClipboard")
	procEmptyClipboard   = user32.NewProc("EmptyClipboard")
	procGetClipboardData = user32.NewProc("GetClipboardData")
	procSetClipboardData = user32.NewProc("SetClipboardData")

	procGlobalAlloc  = kernel32.NewProc("GlobalAlloc")
	procGlobalFree   = kernel32.NewProc("GlobalFree")
	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
	procGlobalSize   = kernel32.NewProc("GlobalSize")
)

type system struct{}

// New returns the Win32 implementation of API. It fails if user32.dll or
// kernel32.dll, or any of the procs used, cannot be resolved.
func New() (API, error) {
	for _, p := range []*windows.LazyProc{
		procOpenClipboard, procCloseClipboard, procEmptyClipboard,
		procGetClipboardData, procSetClipboardData,
		procGlobalAlloc, procGlobalFree, procGlobalLock, procGlobalUnlock, procGlobalSize,
	} {
		if err := p.Find(); err != nil {
			return nil, fmt.Errorf("winapi: resolve %s: %w", p.Name, err)
		}
	}
	return system{}, nil
}

func errnoOf(err error) syscall.Errno {
	var e syscall.Errno
	if errors.As(err, &e) {
		return e
	}
	return NoError
}

func (system) OpenClipboard(owner Handle) (bool, syscall.Errno) {
	r, _, err := procOpenClipboard.Call(uintptr(owner))
	return r != 0, errnoOf(err)
}

func (system) CloseClipboard() (bool, syscall.Errno) {
	r, _, err := procCloseClipboard.Call()
	return r != 0, errnoOf(err)
}

func (system) EmptyClipboard() (bool, syscall.Errno) {
	r, _, err := procEmptyClipboard.Call()
	return r != 0, errnoOf(err)
}

func (system) GetClipboardData(format uint32) (Handle, syscall.Errno) {
	r, _, err := procGetClipboardData.Call(uintptr(format))
	return Handle(r), errnoOf(err)
}

func (system) SetClipboardData(format uint32, mem Handle) (Handle, syscall.Errno) {
	r, _, err := procSetClipboardData.Call(uintptr(format), uintptr(mem))
	return Handle(r), errnoOf(err)
}

func (system) GlobalAlloc(flags uint32, size uintptr) (Handle, syscall.Errno) {
	r, _, err := procGlobalAlloc.Call(uintptr(flags), size)
	return Handle(r), errnoOf(err)
}

func (system) GlobalFree(mem Handle) (Handle, syscall.Errno) {
	r, _, err := procGlobalFree.Call(uintptr(mem))
	return Handle(r), errnoOf(err)
}

func (system) GlobalLock(mem Handle) (uintptr, syscall.Errno) {
	r, _, err := procGlobalLock.Call(uintptr(mem))
	return r, errnoOf(err)
}

func (system) GlobalUnlock(mem Handle) (bool, syscall.Errno) {
	r, _, err := procGlobalUnlock.Call(uintptr(mem))
	return r != 0, errnoOf(err)
}

func (system) GlobalSize(mem Handle) (uintptr, syscall.Errno) {
	r, _, err := procGlobalSize.Call(uintptr(mem))
	return r, errnoOf(err)
}
