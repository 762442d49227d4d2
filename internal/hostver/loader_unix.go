//go:build (darwin || linux) && !android

package hostver

import (
	"github.com/ebitengine/purego"
)

type dlLoader struct{}

// SystemLoader returns a loader backed by dlopen.
func SystemLoader() Loader { return dlLoader{} }

func (dlLoader) Open(path string) (Module, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, err
	}
	return &dlModule{handle: h}, nil
}

type dlModule struct {
	handle uintptr
}

func (m *dlModule) Lookup(name string) (VersionFunc, error) {
	sym, err := purego.Dlsym(m.handle, name)
	if err != nil {
		return nil, err
	}
	var fn VersionFunc
	purego.RegisterFunc(&fn, sym)
	return fn, nil
}

func (m *dlModule) Close() error { return purego.Dlclose(m.handle) }
