//go:build windows

package hostver

import (
	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

type dllLoader struct{}

// SystemLoader returns a loader backed by LoadLibrary.
func SystemLoader() Loader { return dllLoader{} }

func (dllLoader) Open(path string) (Module, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return nil, err
	}
	return &dllModule{dll: dll}, nil
}

type dllModule struct {
	dll *windows.DLL
}

func (m *dllModule) Lookup(name string) (VersionFunc, error) {
	proc, err := m.dll.FindProc(name)
	if err != nil {
		return nil, err
	}
	var fn VersionFunc
	purego.RegisterFunc(&fn, proc.Addr())
	return fn, nil
}

func (m *dllModule) Close() error { return m.dll.Release() }
