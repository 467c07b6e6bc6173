// Package tui is the thin presentation adapter over the composition
// core: it consumes the capability surface (route, select, switch
// schema, resolve color scheme) and owns no composition state itself.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qianyan/rimekit/internal/candidate"
	"github.com/qianyan/rimekit/internal/colorscheme"
	"github.com/qianyan/rimekit/internal/config"
	"github.com/qianyan/rimekit/internal/router"
	"github.com/qianyan/rimekit/internal/schema"
	"github.com/qianyan/rimekit/internal/session"
)

// Model is the Bubble Tea model for the interactive repl. It doubles
// as the host text sink: committed text lands in its document buffer.
type Model struct {
	router     *router.Router
	candidates *candidate.Manager
	schemas    *schema.Coordinator
	sessions   *session.Manager
	resolver   *colorscheme.Resolver
	cfg        *config.Manager

	keys   keyMap
	help   help.Model
	styles styles

	document []rune
	cursor   int
	quitting bool
}

// NewModel wires the repl over an already-started composition core.
func NewModel(
	r *router.Router,
	cands *candidate.Manager,
	schemas *schema.Coordinator,
	sessions *session.Manager,
	resolver *colorscheme.Resolver,
	cfg *config.Manager,
) *Model {
	m := &Model{
		router:     r,
		candidates: cands,
		schemas:    schemas,
		sessions:   sessions,
		resolver:   resolver,
		cfg:        cfg,
		keys:       defaultKeyMap(),
		help:       help.New(),
		styles:     defaultStyles(),
	}
	m.refreshStyles()
	return m
}

// SetCandidates injects the candidate manager after construction. The
// manager needs this model as its host sink, so it cannot exist first.
func (m *Model) SetCandidates(c *candidate.Manager) {
	m.candidates = c
}

func (m *Model) refreshStyles() {
	if scheme, ok := m.resolver.Resolve(m.cfg.Get()); ok {
		m.styles = stylesFor(scheme)
		return
	}
	m.styles = defaultStyles()
}

// InsertText implements host.TextSink.
func (m *Model) InsertText(text string) {
	runes := []rune(text)
	m.document = append(m.document[:m.cursor], append(runes, m.document[m.cursor:]...)...)
	m.cursor += len(runes)
}

// DeleteBackward implements host.TextSink.
func (m *Model) DeleteBackward(count int) {
	for ; count > 0 && m.cursor > 0; count-- {
		m.document = append(m.document[:m.cursor-1], m.document[m.cursor:]...)
		m.cursor--
	}
}

// AdjustCursor implements host.TextSink.
func (m *Model) AdjustCursor(offset int) {
	m.cursor += offset
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.document) {
		m.cursor = len(m.document)
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.ToggleASCII):
		m.router.SetASCIIMode(!m.router.ASCIIMode())
		return m, nil

	case key.Matches(keyMsg, m.keys.CycleSchema):
		m.cycleSchema()
		return m, nil

	case key.Matches(keyMsg, m.keys.PageUp):
		if m.candidates != nil {
			m.candidates.PreviousPage()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.PageDown):
		if m.candidates != nil {
			m.candidates.NextPage()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Alternate):
		if m.candidates != nil {
			m.candidates.SelectAlternate()
		}
		return m, nil
	}

	if raw, ok := rawInput(keyMsg); ok {
		m.apply(m.router.Route(raw))
	}
	return m, nil
}

// rawInput maps a terminal key message to the raw fragment a host text
// field would deliver.
func rawInput(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		return string(msg.Runes), true
	case tea.KeySpace:
		return " ", true
	case tea.KeyEnter:
		return "\n", true
	case tea.KeyTab:
		return "\t", true
	case tea.KeyBackspace:
		return "\x7f", true
	case tea.KeyEscape:
		return "\x1b", true
	}
	return "", false
}

// apply executes a routing result against the document buffer.
func (m *Model) apply(res router.Result) {
	if res.CommitText != "" {
		m.InsertText(res.CommitText)
		return
	}
	switch res.Fallback.Kind {
	case router.FallbackNewline:
		m.InsertText("\n")
	case router.FallbackBackspace:
		m.DeleteBackward(1)
	case router.FallbackTab:
		m.InsertText("\t")
	case router.FallbackChar:
		m.InsertText(res.Fallback.Char)
	}
}

func (m *Model) cycleSchema() {
	schemas, err := m.schemas.List()
	if err != nil || len(schemas) == 0 {
		return
	}
	active := m.schemas.Active()
	next := schemas[0].ID
	for i, s := range schemas {
		if s.ID == active {
			next = schemas[(i+1)%len(schemas)].ID
			break
		}
	}
	m.schemas.Switch(next)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	doc := string(m.document[:m.cursor]) + "|" + string(m.document[m.cursor:])
	b.WriteString(m.styles.document.Render(doc))
	b.WriteString("\n\n")

	st := m.sessions.Snapshot()
	if st.Composing {
		b.WriteString(m.styles.preedit.Render(st.RawInput))
		b.WriteString("\n")
		cells := make([]string, 0, len(st.Candidates))
		for i, c := range st.Candidates {
			label := fmt.Sprintf("%d.%s", i+1, c.Text)
			if c.Comment != "" {
				label += " " + m.styles.comment.Render(c.Comment)
			}
			style := m.styles.candidate
			if i == 0 {
				style = m.styles.selected
			}
			cells = append(cells, style.Render(label))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	mode := "composing"
	if m.router.ASCIIMode() {
		mode = "ascii"
	}
	b.WriteString("\n")
	b.WriteString(m.styles.status.Render(fmt.Sprintf("schema:%s mode:%s", m.schemas.Active(), mode)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
