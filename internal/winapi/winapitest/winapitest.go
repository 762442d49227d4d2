// Package winapitest provides memory for fakes of winapi.API.
//
// Addresses handed to winapi.CString and winapi.PutCString are converted
// back from uintptr, which the runtime pointer checks reject for Go heap
// memory. Blocks from Bytes live outside the Go heap, like the memory a
// real GlobalLock returns.
package winapitest

import "testing"

// Bytes returns n writable bytes outside the Go heap. They are released
// when the test finishes. A zero-length block still has a valid address.
func Bytes(tb testing.TB, n int) []byte {
	tb.Helper()
	size := n
	if size == 0 {
		size = 1
	}
	b, release, err := mapBytes(size)
	if err != nil {
		tb.Fatalf("winapitest: map %d bytes: %v", size, err)
	}
	tb.Cleanup(func() {
		if err := release(); err != nil {
			tb.Errorf("winapitest: release: %v", err)
		}
	})
	return b[:n:size]
}
