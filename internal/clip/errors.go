package clip

import (
	"fmt"
	"syscall"

	"go.klb.dev/winclip/internal/winapi"
)

// Kind classifies a clipboard failure.
type Kind int

const (
	KindUnknown Kind = iota
	ClipboardUnavailable
	NoClipboardData
	LockFailed
	AllocationFailed
	ClipboardSetFailed
	CloseFailed
	UnlockFailed
)

var kindNames = [...]string{
	KindUnknown:          "unknown",
	ClipboardUnavailable: "clipboard unavailable",
	NoClipboardData:      "no clipboard data",
	LockFailed:           "lock failed",
	AllocationFailed:     "allocation failed",
	ClipboardSetFailed:   "clipboard set failed",
	CloseFailed:          "close failed",
	UnlockFailed:         "unlock failed",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Error is a failed native call. Errno is the last-error code captured
// right after the call, or winapi.NoError when the OS reported none.
type Error struct {
	Kind  Kind
	Op    string
	Errno syscall.Errno
}

func (e *Error) Error() string {
	switch {
	case e.Op == "":
		return "clip: " + e.Kind.String()
	case e.Errno == winapi.NoError:
		return fmt.Sprintf("clip: %s: %s", e.Kind, e.Op)
	default:
		return fmt.Sprintf("clip: %s: %s: %v (errno %d)", e.Kind, e.Op, e.Errno, uint32(e.Errno))
	}
}

// Unwrap exposes the last-error code, so errors.Is(err, syscall.Errno(n))
// matches.
func (e *Error) Unwrap() error {
	if e.Errno == winapi.NoError {
		return nil
	}
	return e.Errno
}

// Is matches the sentinel of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Op == "" && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrClipboardUnavailable = &Error{Kind: ClipboardUnavailable}
	ErrNoClipboardData      = &Error{Kind: NoClipboardData}
	ErrLockFailed           = &Error{Kind: LockFailed}
	ErrAllocationFailed     = &Error{Kind: AllocationFailed}
	ErrClipboardSetFailed   = &Error{Kind: ClipboardSetFailed}
	ErrCloseFailed          = &Error{Kind: CloseFailed}
	ErrUnlockFailed         = &Error{Kind: UnlockFailed}
)

func failure(kind Kind, op string, errno syscall.Errno) *Error {
	return &Error{Kind: kind, Op: op, Errno: errno}
}
