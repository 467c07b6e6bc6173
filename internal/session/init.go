package session

import (
	"sync"
	"sync/atomic"

	"github.com/qianyan/rimekit/internal/rime"
)

// InitGuard serializes a one-time initialization so the guarded
// function can never run twice, no matter how many callers race on it.
// The zero value is ready to use.
type InitGuard struct {
	once sync.Once
	done atomic.Bool
	err  error
}

// Do runs f on the first call and records its error; every later call
// is a no-op returning the recorded error.
func (g *InitGuard) Do(f func() error) error {
	g.once.Do(func() {
		g.err = f()
		g.done.Store(true)
	})
	return g.err
}

// Done reports whether the guarded function has run.
func (g *InitGuard) Done() bool {
	return g.done.Load()
}

// processInit gates the backend's process-global setup. Constructing
// any number of Managers never re-runs it; callers go through
// Initialize and never touch the flag directly.
var processInit InitGuard

// Initialize performs the backend's one-time global setup. Safe to call
// from every keyboard-instance start path; only the first call reaches
// the backend.
func Initialize(eng rime.Engine, traits rime.Traits) error {
	return processInit.Do(func() error {
		return eng.Setup(traits)
	})
}

// Initialized reports whether process-wide setup has completed.
func Initialized() bool {
	return processInit.Done()
}
