package host

import "strings"

// MoveToLineStart moves the cursor backward to just after the nearest
// line break, or to the start of the document if none exists.
func MoveToLineStart(sink TextSink, doc DocumentContext) {
	before := doc.TextBeforeCursor()
	segment := before
	if idx := strings.LastIndexByte(before, '\n'); idx >= 0 {
		segment = before[idx+1:]
	}
	if n := len([]rune(segment)); n > 0 {
		sink.AdjustCursor(-n)
	}
}

// MoveToLineEnd moves the cursor forward to the end of the current
// line segment, stopping before the next line break.
func MoveToLineEnd(sink TextSink, doc DocumentContext) {
	after := doc.TextAfterCursor()
	segment := after
	if idx := strings.IndexByte(after, '\n'); idx >= 0 {
		segment = after[:idx]
	}
	if n := len([]rune(segment)); n > 0 {
		sink.AdjustCursor(n)
	}
}
