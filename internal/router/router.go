// Package router is the top-level entry point for one input event: it
// translates the raw input, forwards it to the session, and decides
// what the host commits or falls back to.
package router

import (
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/qianyan/rimekit/internal/keycode"
	"github.com/qianyan/rimekit/internal/session"
)

// FallbackKind enumerates the host-side actions for keys the backend
// did not consume.
type FallbackKind int

const (
	FallbackNone FallbackKind = iota
	FallbackNewline
	FallbackBackspace
	FallbackTab
	// FallbackChar passes a single character through to the host
	// verbatim.
	FallbackChar
)

// Fallback is the pass-through action the host should execute.
type Fallback struct {
	Kind FallbackKind
	Char string // set only for FallbackChar
}

// Result is the outcome of routing one input event. CommitText takes
// priority: when it is non-empty the fallback is cleared.
type Result struct {
	CommitText string
	Fallback   Fallback
}

// Router routes raw host input through the composition session.
type Router struct {
	sessions *session.Manager
	log      zerolog.Logger
	ascii    atomic.Bool
}

// New creates a router bound to a session manager.
func New(sessions *session.Manager, log zerolog.Logger) *Router {
	return &Router{
		sessions: sessions,
		log:      log.With().Str("component", "router").Logger(),
	}
}

// SetASCIIMode toggles pure pass-through mode: keystrokes bypass the
// backend entirely and reach the host verbatim.
func (r *Router) SetASCIIMode(on bool) {
	r.ascii.Store(on)
}

// ASCIIMode reports whether pass-through mode is active.
func (r *Router) ASCIIMode() bool {
	return r.ascii.Load()
}

func passThrough(raw string) Result {
	return Result{Fallback: Fallback{Kind: FallbackChar, Char: raw}}
}

// Route processes one raw input fragment from the host.
func (r *Router) Route(raw string) Result {
	if raw == "" {
		return Result{}
	}
	if r.ascii.Load() {
		return passThrough(raw)
	}

	ev, ok := keycode.Translate(raw)
	if !ok {
		return passThrough(raw)
	}

	handled, err := r.sessions.InputKey(ev)
	if err != nil {
		// A session that has not started yet behaves as pass-through
		// until directory provisioning finishes.
		if !errors.Is(err, session.ErrNoSession) {
			r.log.Warn().Err(err).Int("code", ev.Code).Msg("input key failed")
		}
		return passThrough(raw)
	}

	var res Result
	if !handled {
		res.Fallback = fallbackFor(ev)
	}

	if commit, err := r.sessions.PullCommit(); err == nil && commit != "" {
		res.CommitText = commit
		res.Fallback = Fallback{}
	}

	if st, err := r.sessions.Status(); err == nil && !st.Composing {
		// Drop stray backend state so the next keystroke starts clean.
		r.sessions.Reset()
	}
	return res
}

// fallbackFor maps an unhandled key event to the host action.
func fallbackFor(ev keycode.Event) Fallback {
	switch ev.Code {
	case keycode.Return:
		return Fallback{Kind: FallbackNewline}
	case keycode.BackSpace:
		return Fallback{Kind: FallbackBackspace}
	case keycode.Tab:
		return Fallback{Kind: FallbackTab}
	}
	if ch, ok := keycode.FallbackRune(ev.Code); ok {
		return Fallback{Kind: FallbackChar, Char: string(ch)}
	}
	return Fallback{}
}
