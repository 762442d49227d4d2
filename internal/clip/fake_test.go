package clip

import (
	"sync"
	"syscall"
	"testing"
	"unsafe"

	"go.klb.dev/winclip/internal/winapi"
	"go.klb.dev/winclip/internal/winapi/winapitest"
)

const (
	errAccessDenied  syscall.Errno = 5
	errNotEnoughMem  syscall.Errno = 8
	errInvalidHandle syscall.Errno = 6
	errNotLocked     syscall.Errno = 158
)

// fakeAPI is an in-memory clipboard. Blocks live outside the Go heap; the
// addresses returned by GlobalLock point into them.
type fakeAPI struct {
	mu sync.Mutex
	tb testing.TB

	blocks map[winapi.Handle][]byte
	locks  map[winapi.Handle]int
	next   winapi.Handle

	open bool
	data winapi.Handle // CF_TEXT owned by the clipboard

	calls []string

	// fail makes the named call fail with the given last-error code.
	fail map[string]syscall.Errno
	// stillLocked makes GlobalUnlock report a nonzero lock count.
	stillLocked bool
}

func newFakeAPI(tb testing.TB) *fakeAPI {
	return &fakeAPI{
		tb:     tb,
		blocks: make(map[winapi.Handle][]byte),
		locks:  make(map[winapi.Handle]int),
		next:   0x1000,
		fail:   make(map[string]syscall.Errno),
	}
}

func (f *fakeAPI) record(op string) (syscall.Errno, bool) {
	f.calls = append(f.calls, op)
	errno, failed := f.fail[op]
	return errno, failed
}

func (f *fakeAPI) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (f *fakeAPI) index(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.calls {
		if c == op {
			return i
		}
	}
	return -1
}

func (f *fakeAPI) alloc(content []byte) winapi.Handle {
	b := winapitest.Bytes(f.tb, len(content))
	copy(b, content)
	f.next += 0x10
	f.blocks[f.next] = b
	return f.next
}

// putText places text on the clipboard as another process would.
func (f *fakeAPI) putText(text string) {
	f.putRaw(append([]byte(text), 0))
}

// putRaw places a block on the clipboard exactly as given, terminator or
// not. The memory past the block is nonzero, so a read that ignores
// GlobalSize picks up trailing 'Z' bytes.
func (f *fakeAPI) putRaw(block []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h := f.alloc(append(append([]byte{}, block...), "ZZZZZZZZ"...))
	f.blocks[h] = f.blocks[h][:len(block)]
	f.data = h
}

func (f *fakeAPI) outstandingLocks() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.locks {
		n += c
	}
	return n
}

func (f *fakeAPI) OpenClipboard(_ winapi.Handle) (bool, syscall.Errno) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if errno, failed := f.record("OpenClipboard"); failed {
		return false, errno
	}
	if f.open {
		return false, errAccessDenied
	}
	f.open = true
	return true, winapi.NoError
}

func (f *fakeAPI) CloseClipboard() (bool, syscall.Errno) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wasOpen := f.open
	f.open = false
	if errno, failed := f.record("CloseClipboard"); failed {
		return false, errno
	}
	if !wasOpen {
		return false, errAccessDenied
	}
	return true, winapi.NoError
}

func (f *fakeAPI) EmptyClipboard() (bool, syscall.Errno) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if errno, failed := f.record("EmptyClipboard"); failed {
		return false, errno
	}
	if !f.open {
		return false, errAccessDenied
	}
	if f.data != 0 {
		delete(f.blocks, f.data)
		f.data = 0
	}
	return true, winapi.NoError
}

func (f *fakeAPI) GetClipboardData(format uint32) (winapi.Handle, syscall.Errno) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if errno, failed := f.record("GetClipboardData"); failed {
		return 0, errno
	}
	if !f.open {
		return 0, errAccessDenied
	}
	if format != winapi.CFText {
		return 0, winapi.NoError
	}
	return f.data, winapi.NoError
}

func (f *fakeAPI) SetClipboardData(format uint32, mem winapi.Handle) (winapi.Handle, syscall.Errno) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if errno, failed := f.record("SetClipboardData"); failed {
		return 0, errno
	}
	if !f.open || format != winapi.CFText {
		return 0, errAccessDenied
	}
	if _, ok := f.blocks[mem]; !ok || f.locks[mem] != 0 {
		return 0, errInvalidHandle
	}
	f.data = mem
	return mem, winapi.NoError
}

func (f *fakeAPI) GlobalAlloc(flags uint32, size uintptr) (winapi.Handle, syscall.Errno) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if errno, failed := f.record("GlobalAlloc"); failed {
		return 0, errno
	}
	h := f.alloc(make([]byte, size))
	if flags&winapi.GMEMZeroInit == 0 {
		b := f.blocks[h]
		for i := range b {
			b[i] = 0xAA
		}
	}
	return h, winapi.NoError
}

func (f *fakeAPI) GlobalFree(mem winapi.Handle) (winapi.Handle, syscall.Errno) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if errno, failed := f.record("GlobalFree"); failed {
		return mem, errno
	}
	if _, ok := f.blocks[mem]; !ok {
		return mem, errInvalidHandle
	}
	delete(f.blocks, mem)
	return 0, winapi.NoError
}

func (f *fakeAPI) GlobalLock(mem winapi.Handle) (uintptr, syscall.Errno) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if errno, failed := f.record("GlobalLock"); failed {
		return 0, errno
	}
	b, ok := f.blocks[mem]
	if !ok || len(b) == 0 {
		return 0, errInvalidHandle
	}
	f.locks[mem]++
	return uintptr(unsafe.Pointer(&b[0])), winapi.NoError
}

func (f *fakeAPI) GlobalUnlock(mem winapi.Handle) (bool, syscall.Errno) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locks[mem] > 0 {
		f.locks[mem]--
	}
	if errno, failed := f.record("GlobalUnlock"); failed {
		return false, errno
	}
	if f.stillLocked {
		return true, winapi.NoError
	}
	return f.locks[mem] > 0, winapi.NoError
}

func (f *fakeAPI) GlobalSize(mem winapi.Handle) (uintptr, syscall.Errno) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if errno, failed := f.record("GlobalSize"); failed {
		return 0, errno
	}
	b, ok := f.blocks[mem]
	if !ok {
		return 0, errInvalidHandle
	}
	return uintptr(len(b)), winapi.NoError
}
