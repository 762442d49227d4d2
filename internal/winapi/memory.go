package winapi

import "unsafe"

// CString copies the NUL-terminated byte string starting at addr. A nonzero
// limit bounds the scan, so a block without a terminator is read up to its
// size and no further. The result never aliases native memory.
func CString(addr, limit uintptr) []byte {
	if addr == 0 {
		return nil
	}
	p := unsafe.Pointer(addr)
	var n uintptr
	for limit == 0 || n < limit {
		if *(*byte)(unsafe.Add(p, n)) == 0 {
			break
		}
		n++
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(p), n))
	return out
}

// PutCString writes s followed by a NUL byte at addr. The destination must
// hold at least len(s)+1 bytes.
func PutCString(addr uintptr, s string) {
	dst := unsafe.Slice((*byte)(unsafe.Pointer(addr)), len(s)+1)
	copy(dst, s)
	dst[len(s)] = 0
}
