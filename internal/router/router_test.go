package router

import (
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qianyan/rimekit/internal/rime"
	"github.com/qianyan/rimekit/internal/rime/memory"
	"github.com/qianyan/rimekit/internal/session"
)

// countingEngine wraps the table engine and counts per-key calls.
type countingEngine struct {
	*memory.Engine
	processed atomic.Int32
}

func (e *countingEngine) ProcessKey(id rime.SessionID, code, modifiers int) bool {
	e.processed.Add(1)
	return e.Engine.ProcessKey(id, code, modifiers)
}

// swallowingEngine forwards keys but always reports them unhandled, so
// a commit and a fallback can land in the same routed event.
type swallowingEngine struct {
	*memory.Engine
}

func (e *swallowingEngine) ProcessKey(id rime.SessionID, code, modifiers int) bool {
	e.Engine.ProcessKey(id, code, modifiers)
	return false
}

func testLexicon() map[string][]string {
	return map[string][]string{"hao": {"好", "号", "毫"}}
}

func newTestRouter(t *testing.T) (*Router, *session.Manager, *countingEngine) {
	t.Helper()
	eng := &countingEngine{Engine: memory.New(memory.WithLexicon(testLexicon()))}
	sessions := session.NewManager(eng, zerolog.Nop())
	require.NoError(t, sessions.Start(session.StartConfig{}))
	return New(sessions, zerolog.Nop()), sessions, eng
}

func TestRouteComposesAndCommits(t *testing.T) {
	r, sessions, _ := newTestRouter(t)

	for _, raw := range []string{"h", "a", "o"} {
		res := r.Route(raw)
		assert.Empty(t, res.CommitText)
		assert.Equal(t, FallbackNone, res.Fallback.Kind)
	}

	st := sessions.Snapshot()
	require.True(t, st.Composing)
	assert.Equal(t, "hao", st.RawInput)

	res := r.Route(" ")
	assert.Equal(t, "好", res.CommitText)
	assert.Equal(t, FallbackNone, res.Fallback.Kind)

	// Composition ended, so the session was reset for the next key.
	st = sessions.Snapshot()
	assert.False(t, st.Composing)
	assert.Empty(t, st.RawInput)
}

func TestASCIIModeBypassesBackend(t *testing.T) {
	r, _, eng := newTestRouter(t)
	r.SetASCIIMode(true)
	require.True(t, r.ASCIIMode())

	for _, raw := range []string{"h", "a", "o", " ", "\n"} {
		res := r.Route(raw)
		assert.Empty(t, res.CommitText)
		assert.Equal(t, FallbackChar, res.Fallback.Kind)
		assert.Equal(t, raw, res.Fallback.Char)
	}
	assert.Zero(t, eng.processed.Load(), "backend untouched in pass-through mode")

	r.SetASCIIMode(false)
	r.Route("h")
	assert.Equal(t, int32(1), eng.processed.Load())
}

func TestRouteWithoutSessionPassesThrough(t *testing.T) {
	eng := &countingEngine{Engine: memory.New()}
	sessions := session.NewManager(eng, zerolog.Nop())
	r := New(sessions, zerolog.Nop())

	res := r.Route("h")
	assert.Equal(t, FallbackChar, res.Fallback.Kind)
	assert.Equal(t, "h", res.Fallback.Char)
}

func TestRouteUntranslatableInputPassesThrough(t *testing.T) {
	r, _, eng := newTestRouter(t)

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "non-ascii rune", raw: "你"},
		{name: "multi-rune paste", raw: "hello"},
		{name: "control byte", raw: "\x01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Route(tt.raw)
			assert.Empty(t, res.CommitText)
			if tt.raw == "" {
				assert.Equal(t, FallbackNone, res.Fallback.Kind)
				return
			}
			assert.Equal(t, FallbackChar, res.Fallback.Kind)
			assert.Equal(t, tt.raw, res.Fallback.Char)
		})
	}
	assert.Zero(t, eng.processed.Load())
}

func TestRouteFallbackMapping(t *testing.T) {
	// An idle session handles none of these, so each maps to its
	// host-side action.
	r, _, _ := newTestRouter(t)

	tests := []struct {
		name string
		raw  string
		want Fallback
	}{
		{name: "newline", raw: "\n", want: Fallback{Kind: FallbackNewline}},
		{name: "carriage return", raw: "\r", want: Fallback{Kind: FallbackNewline}},
		{name: "tab", raw: "\t", want: Fallback{Kind: FallbackTab}},
		{name: "backspace", raw: "\x7f", want: Fallback{Kind: FallbackBackspace}},
		{name: "digit", raw: "5", want: Fallback{Kind: FallbackChar, Char: "5"}},
		{name: "punctuation", raw: ",", want: Fallback{Kind: FallbackChar, Char: ","}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Route(tt.raw)
			assert.Empty(t, res.CommitText)
			assert.Equal(t, tt.want, res.Fallback)
		})
	}
}

func TestCommitTakesPriorityOverFallback(t *testing.T) {
	eng := &swallowingEngine{Engine: memory.New(memory.WithLexicon(testLexicon()))}
	sessions := session.NewManager(eng, zerolog.Nop())
	require.NoError(t, sessions.Start(session.StartConfig{}))
	r := New(sessions, zerolog.Nop())

	for _, raw := range []string{"h", "a", "o"} {
		r.Route(raw)
	}

	// Return commits the raw input while the engine reports the key
	// unhandled; the commit wins and the newline fallback is dropped.
	res := r.Route("\n")
	assert.Equal(t, "hao", res.CommitText)
	assert.Equal(t, FallbackNone, res.Fallback.Kind)
}

func TestEscapeAbandonsComposition(t *testing.T) {
	r, sessions, _ := newTestRouter(t)

	for _, raw := range []string{"h", "a", "o"} {
		r.Route(raw)
	}
	res := r.Route("\x1b")
	assert.Empty(t, res.CommitText)
	assert.Equal(t, FallbackNone, res.Fallback.Kind)

	st := sessions.Snapshot()
	assert.False(t, st.Composing)
	assert.Empty(t, st.RawInput)
}
