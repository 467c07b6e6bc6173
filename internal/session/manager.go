// Package session owns the lifecycle of the backend composition
// session: at most one live session per Manager, process-wide
// exactly-once backend setup, and the per-session composition state.
package session

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/qianyan/rimekit/internal/keycode"
	"github.com/qianyan/rimekit/internal/rime"
)

// DefaultMaxCandidates is the candidate page size used until the
// configuration provider says otherwise.
const DefaultMaxCandidates = 9

var (
	// ErrSessionActive is returned by Start while a session is live.
	// The live session is left untouched.
	ErrSessionActive = errors.New("session: a session is already active")

	// ErrNoSession is returned by operations that need a live session.
	ErrNoSession = errors.New("session: no active session")
)

// State is the mutable per-session composition state. Values returned
// by Manager methods are snapshots; the Manager owns the live copy.
type State struct {
	Composing  bool
	RawInput   string
	Candidates []rime.Candidate
}

// StartConfig carries the resolved locations and the one-shot
// override flag for a session start.
type StartConfig struct {
	Traits           rime.Traits
	OverrideUserData bool
}

// Manager owns exactly one live backend session. All methods are
// serialized on an internal mutex because the underlying backend
// session is not safe for concurrent mutation.
type Manager struct {
	mu            sync.Mutex
	eng           rime.Engine
	id            rime.SessionID
	live          bool
	maxCandidates int
	state         State
	log           zerolog.Logger
}

// NewManager creates a Manager around the given backend engine.
func NewManager(eng rime.Engine, log zerolog.Logger) *Manager {
	return &Manager{
		eng:           eng,
		maxCandidates: DefaultMaxCandidates,
		log:           log.With().Str("component", "session").Logger(),
	}
}

// SetMaxCandidates applies a max-candidate-count configuration change.
// Takes effect on the next status refresh.
func (m *Manager) SetMaxCandidates(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n > 0 {
		m.maxCandidates = n
	}
}

// Start validates that no session is live, then creates one. Backend
// start failures (stale directories, missing assets) degrade to a
// best-effort session rather than aborting.
func (m *Manager) Start(cfg StartConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.live {
		return ErrSessionActive
	}

	if err := m.eng.Start(cfg.Traits, cfg.OverrideUserData); err != nil {
		m.log.Warn().Err(err).
			Str("shared_dir", cfg.Traits.SharedDataDir).
			Str("user_dir", cfg.Traits.UserDataDir).
			Msg("backend start degraded, continuing with defaults")
	}

	id, err := m.eng.CreateSession()
	if err != nil {
		return err
	}
	m.id = id
	m.live = true
	m.state = State{}
	m.log.Debug().Uint64("session", uint64(id)).Bool("full_check", cfg.OverrideUserData).Msg("session started")
	return nil
}

// Shutdown releases the session. Safe mid-composition: uncommitted
// state is discarded without side effects on the host. Idempotent.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.live {
		return
	}
	if err := m.eng.CloseSession(m.id); err != nil {
		m.log.Warn().Err(err).Msg("failed to close backend session")
	}
	m.id = 0
	m.live = false
	m.state = State{}
}

// Live reports whether a session is active.
func (m *Manager) Live() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.live
}

// InputKey forwards one key event to the backend and reports whether
// it was consumed.
func (m *Manager) InputKey(ev keycode.Event) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.live {
		return false, ErrNoSession
	}
	return m.eng.ProcessKey(m.id, ev.Code, ev.Modifier), nil
}

// Status pulls a fresh composition snapshot from the backend after any
// mutating call and mirrors it into the local state.
func (m *Manager) Status() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.live {
		return State{}, ErrNoSession
	}
	return m.refreshLocked(), nil
}

// refreshLocked requeries the backend. Caller holds m.mu.
func (m *Manager) refreshLocked() State {
	composing := m.eng.IsComposing(m.id)
	st := State{Composing: composing}
	if composing {
		st.RawInput = m.eng.Preedit(m.id)
		// Replaced wholesale on every refresh, never patched.
		st.Candidates = m.eng.Candidates(m.id, m.maxCandidates)
	}
	m.state = st
	return st
}

// Snapshot returns the last refreshed state without touching the
// backend. Suitable for rendering.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// PullCommit returns backend-resolved commit text since the last pull.
// Clear-on-read: a second call without new input yields "".
func (m *Manager) PullCommit() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.live {
		return "", ErrNoSession
	}
	return m.eng.CommitText(m.id), nil
}

// Reset clears the composition in both the backend and the local
// state. Idempotent; callable without a live session.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.live {
		m.eng.ClearComposition(m.id)
	}
	m.state = State{}
}

// ListSchemas queries the backend schema listing on the serialized
// session context.
func (m *Manager) ListSchemas() ([]rime.Schema, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eng.ListSchemas()
}

// SelectSchema asks the backend to activate a schema for the live
// session. The session handle is reused; a schema switch is a
// reconfiguration, not a restart.
func (m *Manager) SelectSchema(schemaID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.live {
		return false, ErrNoSession
	}
	return m.eng.SelectSchema(m.id, schemaID), nil
}

// CurrentSchema reports the live session's active schema id.
func (m *Manager) CurrentSchema() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.live {
		return "", false
	}
	return m.eng.CurrentSchema(m.id)
}

// ListColorSchemes queries the backend palettes.
func (m *Manager) ListColorSchemes() ([]rime.ColorScheme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eng.ListColorSchemes()
}
