//go:build (!windows && !darwin && !linux) || android

package hostver

type unsupportedLoader struct{}

// SystemLoader returns a loader that always fails with ErrUnsupported.
func SystemLoader() Loader { return unsupportedLoader{} }

func (unsupportedLoader) Open(string) (Module, error) { return nil, ErrUnsupported }
