// Package candidate drives pagination and selection of the candidate
// list exposed by the composition session.
package candidate

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/qianyan/rimekit/internal/host"
	"github.com/qianyan/rimekit/internal/keycode"
	"github.com/qianyan/rimekit/internal/session"
)

// Recorder observes committed text. Recording failures are logged and
// never interrupt the commit flow.
type Recorder interface {
	Record(ctx context.Context, text, schemaID string) error
}

// Manager paginates and selects candidates through the serialized
// session, pushing resolved commits to the host sink.
type Manager struct {
	sessions *session.Manager
	sink     host.TextSink
	rec      Recorder
	log      zerolog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithRecorder registers a commit observer.
func WithRecorder(rec Recorder) Option {
	return func(m *Manager) { m.rec = rec }
}

// NewManager creates a candidate manager bound to a session and host
// text sink.
func NewManager(sessions *session.Manager, sink host.TextSink, log zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{
		sessions: sessions,
		sink:     sink,
		log:      log.With().Str("component", "candidate").Logger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NextPage advances to the next candidate page. Returns false when the
// backend rejects the paging key (boundary or not composing); state is
// left unchanged in that case.
func (m *Manager) NextPage() bool {
	return m.page(keycode.Event{Code: keycode.PageDown})
}

// PreviousPage moves to the previous candidate page.
func (m *Manager) PreviousPage() bool {
	return m.page(keycode.Event{Code: keycode.PageUp})
}

func (m *Manager) page(ev keycode.Event) bool {
	handled, err := m.sessions.InputKey(ev)
	if err != nil || !handled {
		m.log.Debug().Err(err).Int("code", ev.Code).Msg("paging key rejected")
		return false
	}
	if _, err := m.sessions.Status(); err != nil {
		m.log.Debug().Err(err).Msg("status refresh after paging failed")
		return false
	}
	return true
}

// SelectIndex commits the candidate at index i within the current
// page. Out-of-range or non-composing calls are no-ops returning
// false and leave the composition state unchanged.
func (m *Manager) SelectIndex(i int) bool {
	st, err := m.sessions.Status()
	if err != nil || !st.Composing {
		return false
	}
	if i < 0 || i >= len(st.Candidates) {
		return false
	}

	ev, ok := keycode.Digit(i)
	if !ok {
		return false
	}
	handled, err := m.sessions.InputKey(ev)
	if err != nil || !handled {
		m.log.Debug().Err(err).Int("index", i).Msg("selection key rejected")
		return false
	}

	m.flushCommit()

	st, err = m.sessions.Status()
	if err == nil && !st.Composing {
		m.sessions.Reset()
	}
	return true
}

// SelectPrimary commits the first candidate of the current page.
func (m *Manager) SelectPrimary() bool {
	return m.SelectIndex(0)
}

// SelectAlternate is the second-choice quick commit: index 1, valid
// only while composing with at least two candidates on the page.
func (m *Manager) SelectAlternate() bool {
	st, err := m.sessions.Status()
	if err != nil || !st.Composing || len(st.Candidates) < 2 {
		return false
	}
	return m.SelectIndex(1)
}

// flushCommit pulls pending commit text and pushes it to the host.
func (m *Manager) flushCommit() {
	text, err := m.sessions.PullCommit()
	if err != nil || text == "" {
		return
	}
	m.sink.InsertText(text)
	if m.rec != nil {
		schemaID, _ := m.sessions.CurrentSchema()
		if err := m.rec.Record(context.Background(), text, schemaID); err != nil {
			m.log.Warn().Err(err).Msg("commit recording failed")
		}
	}
}
