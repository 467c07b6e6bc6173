// Package rime defines the boundary to the composition backend.
//
// The backend converts phonetic or stroke-based key sequences into
// candidate words. Its linguistic internals are opaque to this module;
// everything above talks to it through the Engine interface. Key codes
// use the X11 keysym namespace shared by Rime-style backends.
package rime

// SessionID identifies one live backend composition session. The zero
// value is never a valid session.
type SessionID uint64

// Traits carries the backend locations resolved by directory
// provisioning plus identification reported to the backend.
type Traits struct {
	SharedDataDir string
	UserDataDir   string
	AppName       string
	AppVersion    string
}

// Candidate is one resolved-text option for the current composition.
// Candidate slices are immutable snapshots: the backend returns a fresh
// slice per query and callers never patch one in place.
type Candidate struct {
	Text    string
	Comment string
	// Index is the position within the current page, not the global rank.
	Index int
}

// Schema is a named input-conversion ruleset selectable by the user.
type Schema struct {
	ID   string
	Name string
}

// ColorScheme is a named palette as reported by the backend. Colors are
// hex strings in "#RRGGBB" form.
type ColorScheme struct {
	Name          string
	Background    string
	Text          string
	CandidateText string
}

// Engine is the opaque composition backend.
//
// Setup performs one-time process-global initialization and must never
// be invoked twice in one process; session.Initialize guards it. All
// per-session methods require serialized access for a given SessionID.
type Engine interface {
	// Setup performs the backend's one-time global initialization.
	Setup(t Traits) error

	// Start makes the backend operational for this instance. When
	// fullCheck is true the backend performs a full resource re-scan
	// instead of the cheap staleness check.
	Start(t Traits, fullCheck bool) error

	// Shutdown releases backend-global resources.
	Shutdown() error

	CreateSession() (SessionID, error)
	CloseSession(id SessionID) error

	// ProcessKey forwards one key event and reports whether the backend
	// consumed it. Unconsumed keys fall back to host handling.
	ProcessKey(id SessionID, code, modifiers int) bool

	// Candidates returns at most max candidates for the current page.
	Candidates(id SessionID, max int) []Candidate

	// CommitText returns text resolved since the last call and clears
	// it. Repeated calls without new input yield the empty string.
	CommitText(id SessionID) string

	IsComposing(id SessionID) bool

	// Preedit returns the raw input buffer as the backend displays it.
	Preedit(id SessionID) string

	// ClearComposition drops the in-flight composition without
	// producing commit text.
	ClearComposition(id SessionID)

	// ListSchemas returns the available schemas in backend order.
	ListSchemas() ([]Schema, error)

	// SelectSchema makes the schema active for the session without
	// recreating it. Returns false for unknown ids.
	SelectSchema(id SessionID, schemaID string) bool

	// CurrentSchema reports the session's active schema id.
	CurrentSchema(id SessionID) (string, bool)

	ListColorSchemes() ([]ColorScheme, error)
}
