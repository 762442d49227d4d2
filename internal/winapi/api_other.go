//go:build !windows

package winapi

// New always fails outside Windows.
func New() (API, error) {
	return nil, ErrUnsupported
}
