package clip

import "go.klb.dev/winclip/internal/winapi"

// ReadText returns the CF_TEXT content of the clipboard. The bytes are
// returned unchanged, without code page conversion. It fails with
// ErrNoClipboardData when the clipboard holds no text.
func (a *Accessor) ReadText() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var text string
	err := a.withClipboard(0, func() error {
		mem, errno := a.api.GetClipboardData(winapi.CFText)
		if mem == 0 {
			return failure(NoClipboardData, "GetClipboardData", errno)
		}
		// 0 means unknown and leaves the scan bounded by the terminator only.
		size, _ := a.api.GlobalSize(mem)
		return a.withLock(mem, func(addr uintptr) error {
			text = string(winapi.CString(addr, size))
			return nil
		})
	})
	if err != nil {
		return "", err
	}
	logText(a.log, "clipboard read", text)
	return text, nil
}

// WriteText replaces the clipboard content with text as CF_TEXT. The text
// is stored with a trailing NUL; readers see it truncated at the first
// embedded NUL byte.
func (a *Accessor) WriteText(text string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	mem, errno := a.api.GlobalAlloc(winapi.GMEMMoveable, uintptr(len(text)+1))
	if mem == 0 {
		return failure(AllocationFailed, "GlobalAlloc", errno)
	}
	// Until SetClipboardData succeeds the block is ours to free.
	owned := true
	defer func() {
		if owned {
			a.free(mem)
		}
	}()

	if err := a.withLock(mem, func(addr uintptr) error {
		winapi.PutCString(addr, text)
		return nil
	}); err != nil {
		return err
	}

	err := a.withClipboard(0, func() error {
		if ok, errno := a.api.EmptyClipboard(); !ok {
			return failure(ClipboardUnavailable, "EmptyClipboard", errno)
		}
		if h, errno := a.api.SetClipboardData(winapi.CFText, mem); h == 0 {
			return failure(ClipboardSetFailed, "SetClipboardData", errno)
		}
		owned = false
		return nil
	})
	if err != nil {
		return err
	}
	logText(a.log, "clipboard written", text)
	return nil
}
