// Package hostver reads the API version exported by a host application
// module through void SUGetAPIVersion(size_t* major, size_t* minor).
package hostver

import (
	"errors"
	"fmt"
	"log/slog"
)

// Symbol is the export queried by Query.
const Symbol = "SUGetAPIVersion"

var (
	// ErrUnsupported is returned where no module loader or location rule
	// exists for the running platform.
	ErrUnsupported = errors.New("hostver: unsupported platform")

	// ErrNotFound is returned by Locate when the host module does not exist.
	ErrNotFound = errors.New("hostver: host module not found")
)

// Version is a host API version.
type Version struct {
	Major uint64 `json:"major"`
	Minor uint64 `json:"minor"`
}

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// VersionFunc is the Go form of the exported function. Both arguments are
// word-sized output slots.
type VersionFunc func(major, minor *uintptr)

// Module is a loaded executable module.
type Module interface {
	Lookup(name string) (VersionFunc, error)
	Close() error
}

// Loader opens executable modules by filesystem path.
type Loader interface {
	Open(path string) (Module, error)
}

// Option configures Query and QueryWith.
type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger sets the logger for load and release diagnostics. A nil
// logger leaves the default, slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Query loads the module at path with the system loader and returns the
// version it reports.
func Query(path string, opts ...Option) (Version, error) {
	return QueryWith(SystemLoader(), path, opts...)
}

// QueryWith is Query with an explicit loader. The module is released before
// QueryWith returns.
func QueryWith(l Loader, path string, opts ...Option) (Version, error) {
	o := options{log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	m, err := l.Open(path)
	if err != nil {
		return Version{}, fmt.Errorf("hostver: load %s: %w", path, err)
	}
	defer func() {
		if err := m.Close(); err != nil {
			o.log.Warn("host module release failed", "path", path, "err", err)
		}
	}()

	fn, err := m.Lookup(Symbol)
	if err != nil {
		return Version{}, fmt.Errorf("hostver: resolve %s in %s: %w", Symbol, path, err)
	}

	var slots [2]uintptr
	fn(&slots[0], &slots[1])

	v := Version{Major: uint64(slots[0]), Minor: uint64(slots[1])}
	o.log.Debug("host API version", "path", path, "version", v.String())
	return v, nil
}
