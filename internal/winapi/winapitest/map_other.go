//go:build !unix && !windows

package winapitest

// No anonymous mappings here; heap memory only trips the pointer checks
// under -race, which these platforms do not support.
func mapBytes(size int) ([]byte, func() error, error) {
	return make([]byte, size), func() error { return nil }, nil
}
