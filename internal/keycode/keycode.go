// Package keycode maps raw input fragments from the host text field to
// the key-code/modifier pairs the composition backend understands.
package keycode

// Control key codes in the X11 keysym namespace used by Rime-style
// backends. Printable ASCII maps to its own byte value.
const (
	Space     = 0x0020
	BackSpace = 0xff08
	Tab       = 0xff09
	Return    = 0xff0d
	Escape    = 0xff1b
	PageUp    = 0xff55 // XK_Prior
	PageDown  = 0xff56 // XK_Next
)

// Modifier bitmasks, matching the backend's numeric namespace.
const (
	ShiftMask   = 1 << 0
	LockMask    = 1 << 1
	ControlMask = 1 << 2
	AltMask     = 1 << 3
	ReleaseMask = 1 << 30
)

// Event is one canonical key event. Immutable; constructed per input.
type Event struct {
	Code     int
	Modifier int
}

// Translate maps a raw host input fragment to a key event. The second
// return value is false when the fragment has no backend meaning, in
// which case the caller passes it through to the host verbatim.
func Translate(raw string) (Event, bool) {
	switch raw {
	case "\n", "\r", "\r\n":
		return Event{Code: Return}, true
	case "\t":
		return Event{Code: Tab}, true
	case "\b", "\x7f":
		return Event{Code: BackSpace}, true
	case "\x1b":
		return Event{Code: Escape}, true
	}

	runes := []rune(raw)
	if len(runes) != 1 {
		return Event{}, false
	}
	r := runes[0]
	if r < 0x20 || r > 0x7e {
		return Event{}, false
	}
	return Event{Code: int(r)}, true
}

// FallbackRune decodes an unhandled key code back into the single
// character the host should receive, if one exists.
func FallbackRune(code int) (rune, bool) {
	if code >= 0x20 && code <= 0x7e {
		return rune(code), true
	}
	return 0, false
}

// Digit returns the key event that selects the candidate at the given
// zero-based index within the current page. Indexes beyond the digit
// row are not addressable.
func Digit(index int) (Event, bool) {
	if index < 0 || index > 8 {
		return Event{}, false
	}
	return Event{Code: '1' + index}, true
}
