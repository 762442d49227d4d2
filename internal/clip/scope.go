package clip

import (
	"runtime"

	"go.klb.dev/winclip/internal/winapi"
)

// withClipboard runs body between OpenClipboard(owner) and CloseClipboard.
// Close runs whatever body does, including panicking. Clipboard ownership
// belongs to the calling OS thread, so the goroutine is pinned to it for the
// whole scope.
func (a *Accessor) withClipboard(owner winapi.Handle, body func() error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if ok, errno := a.api.OpenClipboard(owner); !ok {
		return failure(ClipboardUnavailable, "OpenClipboard", errno)
	}
	defer a.closeClipboard()

	return body()
}

func (a *Accessor) closeClipboard() {
	if ok, errno := a.api.CloseClipboard(); !ok {
		a.log.Warn("clipboard close failed", "err", failure(CloseFailed, "CloseClipboard", errno))
	}
}

// withLock runs body with the base address of mem and unlocks afterwards.
// The address is only valid inside body.
func (a *Accessor) withLock(mem winapi.Handle, body func(addr uintptr) error) error {
	addr, errno := a.api.GlobalLock(mem)
	if addr == 0 {
		return failure(LockFailed, "GlobalLock", errno)
	}
	defer a.unlock(mem)

	return body(addr)
}

// unlock never reports the "still locked" result: Win32 keeps the legacy
// lock count and may report a block as locked after the last unlock.
func (a *Accessor) unlock(mem winapi.Handle) {
	stillLocked, errno := a.api.GlobalUnlock(mem)
	switch {
	case stillLocked:
		a.log.Debug("global memory reports lock count above zero", "handle", uintptr(mem))
	case errno != winapi.NoError:
		a.log.Warn("global memory unlock failed",
			"handle", uintptr(mem),
			"err", failure(UnlockFailed, "GlobalUnlock", errno),
		)
	}
}

// free releases a block the caller still owns.
func (a *Accessor) free(mem winapi.Handle) {
	if h, errno := a.api.GlobalFree(mem); h != 0 {
		a.log.Warn("global memory free failed", "handle", uintptr(mem), "errno", uint32(errno))
	}
}
