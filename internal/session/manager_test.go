package session

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qianyan/rimekit/internal/keycode"
	"github.com/qianyan/rimekit/internal/rime"
	"github.com/qianyan/rimekit/internal/rime/memory"
)

func newTestManager(t *testing.T) (*Manager, *memory.Engine) {
	t.Helper()
	eng := memory.New(
		memory.WithLexicon(map[string][]string{
			"hao": {"好", "号", "毫"},
		}),
		memory.WithSchemas(
			rime.Schema{ID: "pinyin", Name: "Pinyin"},
			rime.Schema{ID: "wubi", Name: "Wubi 86"},
		),
	)
	m := NewManager(eng, zerolog.Nop())
	require.NoError(t, m.Start(StartConfig{}))
	return m, eng
}

func typeKeys(t *testing.T, m *Manager, input string) {
	t.Helper()
	for _, r := range input {
		handled, err := m.InputKey(keycode.Event{Code: int(r)})
		require.NoError(t, err)
		require.True(t, handled)
	}
}

func TestStartRejectsSecondSession(t *testing.T) {
	m, eng := newTestManager(t)

	typeKeys(t, m, "hao")
	st, err := m.Status()
	require.NoError(t, err)
	require.True(t, st.Composing)

	// Second start fails without disturbing the live session.
	err = m.Start(StartConfig{})
	assert.ErrorIs(t, err, ErrSessionActive)
	assert.Equal(t, 1, eng.SessionCount())

	st, err = m.Status()
	require.NoError(t, err)
	assert.True(t, st.Composing)
	assert.Equal(t, "hao", st.RawInput)
	assert.Len(t, st.Candidates, 3)
}

func TestStartAfterShutdown(t *testing.T) {
	m, eng := newTestManager(t)

	m.Shutdown()
	assert.False(t, m.Live())
	assert.Equal(t, 0, eng.SessionCount())

	require.NoError(t, m.Start(StartConfig{}))
	assert.True(t, m.Live())
}

func TestPullCommitClearsOnRead(t *testing.T) {
	m, _ := newTestManager(t)

	typeKeys(t, m, "hao")
	handled, err := m.InputKey(keycode.Event{Code: keycode.Space})
	require.NoError(t, err)
	require.True(t, handled)

	text, err := m.PullCommit()
	require.NoError(t, err)
	assert.Equal(t, "好", text)

	text, err = m.PullCommit()
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestResetIsIdempotent(t *testing.T) {
	m, _ := newTestManager(t)

	typeKeys(t, m, "hao")
	for i := 0; i < 3; i++ {
		m.Reset()
		st := m.Snapshot()
		assert.False(t, st.Composing)
		assert.Empty(t, st.RawInput)
		assert.Empty(t, st.Candidates)
	}

	st, err := m.Status()
	require.NoError(t, err)
	assert.False(t, st.Composing)
}

func TestShutdownMidCompositionDiscardsState(t *testing.T) {
	m, _ := newTestManager(t)

	typeKeys(t, m, "hao")
	m.Shutdown()

	// No partial commit escapes and the manager rejects further input.
	_, err := m.PullCommit()
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = m.InputKey(keycode.Event{Code: 'a'})
	assert.ErrorIs(t, err, ErrNoSession)

	st := m.Snapshot()
	assert.False(t, st.Composing)

	// Shutdown twice is harmless.
	m.Shutdown()
}

func TestStatusRefreshesWholesale(t *testing.T) {
	m, _ := newTestManager(t)

	typeKeys(t, m, "hao")
	st, err := m.Status()
	require.NoError(t, err)
	first := st.Candidates

	typeKeys(t, m, "x") // no lexicon entry for "haox"
	st, err = m.Status()
	require.NoError(t, err)
	assert.True(t, st.Composing)
	assert.Empty(t, st.Candidates)
	assert.Len(t, first, 3, "previous snapshot is not patched in place")
}

func TestSetMaxCandidatesLimitsPage(t *testing.T) {
	m, _ := newTestManager(t)
	m.SetMaxCandidates(2)

	typeKeys(t, m, "hao")
	st, err := m.Status()
	require.NoError(t, err)
	assert.Len(t, st.Candidates, 2)
}

func TestSchemaOpsRequireSession(t *testing.T) {
	eng := memory.New(memory.WithSchemas(rime.Schema{ID: "pinyin", Name: "Pinyin"}))
	m := NewManager(eng, zerolog.Nop())

	_, err := m.SelectSchema("pinyin")
	assert.ErrorIs(t, err, ErrNoSession)

	_, ok := m.CurrentSchema()
	assert.False(t, ok)

	// Listing works without a session: it is engine-global.
	schemas, err := m.ListSchemas()
	require.NoError(t, err)
	assert.Len(t, schemas, 1)
}

func TestStartPassesFullCheck(t *testing.T) {
	eng := memory.New()
	m := NewManager(eng, zerolog.Nop())

	require.NoError(t, m.Start(StartConfig{OverrideUserData: true}))
	assert.True(t, eng.LastFullCheck())

	m.Shutdown()
	require.NoError(t, m.Start(StartConfig{}))
	assert.False(t, eng.LastFullCheck())
}
