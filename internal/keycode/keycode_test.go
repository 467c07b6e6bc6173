package keycode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantCode int
		wantOK   bool
	}{
		{name: "newline", raw: "\n", wantCode: Return, wantOK: true},
		{name: "carriage return", raw: "\r", wantCode: Return, wantOK: true},
		{name: "crlf", raw: "\r\n", wantCode: Return, wantOK: true},
		{name: "tab", raw: "\t", wantCode: Tab, wantOK: true},
		{name: "backspace", raw: "\b", wantCode: BackSpace, wantOK: true},
		{name: "del as backspace", raw: "\x7f", wantCode: BackSpace, wantOK: true},
		{name: "escape", raw: "\x1b", wantCode: Escape, wantOK: true},
		{name: "lowercase letter", raw: "a", wantCode: 'a', wantOK: true},
		{name: "uppercase letter", raw: "Z", wantCode: 'Z', wantOK: true},
		{name: "digit", raw: "7", wantCode: '7', wantOK: true},
		{name: "space", raw: " ", wantCode: Space, wantOK: true},
		{name: "punctuation", raw: ",", wantCode: ',', wantOK: true},
		{name: "empty", raw: "", wantOK: false},
		{name: "multi rune", raw: "ab", wantOK: false},
		{name: "non ascii", raw: "好", wantOK: false},
		{name: "control char", raw: "\x01", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := Translate(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCode, ev.Code)
				assert.Zero(t, ev.Modifier)
			}
		})
	}
}

func TestFallbackRune(t *testing.T) {
	r, ok := FallbackRune('q')
	assert.True(t, ok)
	assert.Equal(t, 'q', r)

	_, ok = FallbackRune(Return)
	assert.False(t, ok)

	_, ok = FallbackRune(0x1f)
	assert.False(t, ok)
}

func TestDigit(t *testing.T) {
	ev, ok := Digit(0)
	assert.True(t, ok)
	assert.Equal(t, int('1'), ev.Code)

	ev, ok = Digit(8)
	assert.True(t, ok)
	assert.Equal(t, int('9'), ev.Code)

	_, ok = Digit(9)
	assert.False(t, ok)

	_, ok = Digit(-1)
	assert.False(t, ok)
}
