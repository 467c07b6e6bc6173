// Package host defines the boundary to the host text field. The core
// only pushes resolved commit text and explicit fallback actions; it
// never reads host content beyond what line-boundary cursor movement
// needs.
package host

//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks

// TextSink receives resolved text and editing actions from the core.
type TextSink interface {
	InsertText(text string)
	DeleteBackward(count int)
	// AdjustCursor moves the insertion point by offset characters;
	// negative moves left.
	AdjustCursor(offset int)
}

// DocumentContext exposes the minimal host document visibility the
// core needs: the text around the cursor, for line-boundary movement.
type DocumentContext interface {
	TextBeforeCursor() string
	TextAfterCursor() string
}
