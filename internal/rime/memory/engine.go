// Package memory provides an in-memory rime.Engine backed by a static
// lexicon table. It exists for tests and the interactive repl; it does
// no segmentation or ranking of its own.
package memory

import (
	"errors"
	"sync"

	"github.com/qianyan/rimekit/internal/keycode"
	"github.com/qianyan/rimekit/internal/rime"
)

const defaultPageSize = 9

// ErrNoSuchSession is returned by CreateSession-dependent calls in the
// rare paths that report errors; per-key paths simply return false.
var ErrNoSuchSession = errors.New("memory: no such session")

type sessionState struct {
	input    []rune
	page     int
	pageSize int
	commit   string
	schema   string
}

// Engine is a lexicon-table backend. Safe for concurrent use, though
// callers are expected to serialize per-session access anyway.
type Engine struct {
	mu       sync.Mutex
	lexicon  map[string][]string
	comments map[string]string
	schemas  []rime.Schema
	colors   []rime.ColorScheme

	sessions map[rime.SessionID]*sessionState
	nextID   rime.SessionID

	setupCalls    int
	startCalls    int
	lastFullCheck bool
	lastTraits    rime.Traits
}

// Option configures the engine at construction.
type Option func(*Engine)

// WithLexicon sets the raw-input to candidate-texts table.
func WithLexicon(lex map[string][]string) Option {
	return func(e *Engine) { e.lexicon = lex }
}

// WithComment attaches a comment to a candidate text.
func WithComment(text, comment string) Option {
	return func(e *Engine) { e.comments[text] = comment }
}

// WithSchemas sets the schema listing reported by the engine.
func WithSchemas(schemas ...rime.Schema) Option {
	return func(e *Engine) { e.schemas = schemas }
}

// WithColorSchemes sets the palettes reported by the engine.
func WithColorSchemes(schemes ...rime.ColorScheme) Option {
	return func(e *Engine) { e.colors = schemes }
}

// New creates an engine with an empty lexicon unless configured.
func New(opts ...Option) *Engine {
	e := &Engine{
		lexicon:  map[string][]string{},
		comments: map[string]string{},
		schemas:  []rime.Schema{{ID: "table", Name: "Table"}},
		sessions: map[rime.SessionID]*sessionState{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Setup implements rime.Engine.
func (e *Engine) Setup(t rime.Traits) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setupCalls++
	e.lastTraits = t
	return nil
}

// Start implements rime.Engine.
func (e *Engine) Start(t rime.Traits, fullCheck bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.startCalls++
	e.lastFullCheck = fullCheck
	e.lastTraits = t
	return nil
}

// Shutdown implements rime.Engine.
func (e *Engine) Shutdown() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sessions = map[rime.SessionID]*sessionState{}
	return nil
}

// CreateSession implements rime.Engine.
func (e *Engine) CreateSession() (rime.SessionID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	st := &sessionState{pageSize: defaultPageSize}
	if len(e.schemas) > 0 {
		st.schema = e.schemas[0].ID
	}
	e.sessions[e.nextID] = st
	return e.nextID, nil
}

// CloseSession implements rime.Engine.
func (e *Engine) CloseSession(id rime.SessionID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.sessions[id]; !ok {
		return ErrNoSuchSession
	}
	delete(e.sessions, id)
	return nil
}

// ProcessKey implements rime.Engine.
func (e *Engine) ProcessKey(id rime.SessionID, code, modifiers int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.sessions[id]
	if !ok {
		return false
	}
	// Key releases carry no meaning for a table engine.
	if modifiers&keycode.ReleaseMask != 0 {
		return false
	}

	composing := len(st.input) > 0

	switch {
	case code >= 'a' && code <= 'z':
		st.input = append(st.input, rune(code))
		st.page = 0
		return true

	case code >= '1' && code <= '9':
		if !composing {
			return false
		}
		return st.selectIndex(e, st.page*st.pageSize+code-'1')

	case code == keycode.Space:
		if !composing {
			return false
		}
		return st.selectIndex(e, st.page*st.pageSize)

	case code == keycode.Return:
		if !composing {
			return false
		}
		// Return commits the raw input verbatim.
		st.commit += string(st.input)
		st.clear()
		return true

	case code == keycode.BackSpace:
		if !composing {
			return false
		}
		st.input = st.input[:len(st.input)-1]
		st.page = 0
		return true

	case code == keycode.Escape:
		if !composing {
			return false
		}
		st.clear()
		return true

	case code == keycode.PageDown:
		if !composing {
			return false
		}
		if (st.page+1)*st.pageSize >= len(e.candidateTexts(st)) {
			return false
		}
		st.page++
		return true

	case code == keycode.PageUp:
		if !composing || st.page == 0 {
			return false
		}
		st.page--
		return true
	}

	return false
}

// selectIndex commits the candidate at the global index. Caller holds e.mu.
func (st *sessionState) selectIndex(e *Engine, idx int) bool {
	texts := e.candidateTexts(st)
	if idx < 0 || idx >= len(texts) {
		return false
	}
	st.commit += texts[idx]
	st.clear()
	return true
}

func (st *sessionState) clear() {
	st.input = nil
	st.page = 0
}

func (e *Engine) candidateTexts(st *sessionState) []string {
	return e.lexicon[string(st.input)]
}

// Candidates implements rime.Engine.
func (e *Engine) Candidates(id rime.SessionID, max int) []rime.Candidate {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.sessions[id]
	if !ok || len(st.input) == 0 {
		return nil
	}
	if max > 0 {
		st.pageSize = max
	}
	texts := e.candidateTexts(st)
	start := st.page * st.pageSize
	if start >= len(texts) {
		return nil
	}
	end := start + st.pageSize
	if end > len(texts) {
		end = len(texts)
	}
	out := make([]rime.Candidate, 0, end-start)
	for i, text := range texts[start:end] {
		out = append(out, rime.Candidate{
			Text:    text,
			Comment: e.comments[text],
			Index:   i,
		})
	}
	return out
}

// CommitText implements rime.Engine. Clear-on-read.
func (e *Engine) CommitText(id rime.SessionID) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.sessions[id]
	if !ok {
		return ""
	}
	text := st.commit
	st.commit = ""
	return text
}

// IsComposing implements rime.Engine.
func (e *Engine) IsComposing(id rime.SessionID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.sessions[id]
	return ok && len(st.input) > 0
}

// Preedit implements rime.Engine.
func (e *Engine) Preedit(id rime.SessionID) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.sessions[id]
	if !ok {
		return ""
	}
	return string(st.input)
}

// ClearComposition implements rime.Engine.
func (e *Engine) ClearComposition(id rime.SessionID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if st, ok := e.sessions[id]; ok {
		st.clear()
	}
}

// ListSchemas implements rime.Engine.
func (e *Engine) ListSchemas() ([]rime.Schema, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]rime.Schema, len(e.schemas))
	copy(out, e.schemas)
	return out, nil
}

// SelectSchema implements rime.Engine.
func (e *Engine) SelectSchema(id rime.SessionID, schemaID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.sessions[id]
	if !ok {
		return false
	}
	for _, s := range e.schemas {
		if s.ID == schemaID {
			st.schema = schemaID
			return true
		}
	}
	return false
}

// CurrentSchema implements rime.Engine.
func (e *Engine) CurrentSchema(id rime.SessionID) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.sessions[id]
	if !ok {
		return "", false
	}
	return st.schema, true
}

// ListColorSchemes implements rime.Engine.
func (e *Engine) ListColorSchemes() ([]rime.ColorScheme, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]rime.ColorScheme, len(e.colors))
	copy(out, e.colors)
	return out, nil
}

// SetupCalls reports how many times Setup ran. Test hook.
func (e *Engine) SetupCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setupCalls
}

// StartCalls reports how many times Start ran. Test hook.
func (e *Engine) StartCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.startCalls
}

// LastFullCheck reports the fullCheck flag of the most recent Start.
func (e *Engine) LastFullCheck() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastFullCheck
}

// SessionCount reports the number of live sessions. Test hook.
func (e *Engine) SessionCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.sessions)
}
