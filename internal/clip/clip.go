// Package clip reads and writes plain text on the Windows clipboard.
//
// Every native resource is held inside a scope that releases it on all exit
// paths: the clipboard is opened and closed by withClipboard, and global
// memory blocks are locked and unlocked by withLock. Failures on the way in
// (open, get, lock, allocate, set) abort the operation and are returned as
// *Error. Failures on the way out (close, unlock) are only logged.
package clip

import (
	"fmt"
	"log/slog"
	"sync"

	"go.klb.dev/winclip/internal/winapi"
)

// Accessor performs scoped clipboard operations through a winapi.API.
// Operations are serialised; an Accessor may be shared between goroutines.
type Accessor struct {
	api winapi.API
	log *slog.Logger
	mu  sync.Mutex
}

// Option configures an Accessor.
type Option func(*Accessor)

// WithLogger sets the logger used for cleanup diagnostics. The default is
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *Accessor) {
		if l != nil {
			a.log = l
		}
	}
}

// New returns an Accessor over api.
func New(api winapi.API, opts ...Option) *Accessor {
	a := &Accessor{api: api, log: slog.Default()}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Open returns an Accessor over the system's Win32 API.
func Open(opts ...Option) (*Accessor, error) {
	api, err := winapi.New()
	if err != nil {
		return nil, fmt.Errorf("clip: %w", err)
	}
	return New(api, opts...), nil
}
