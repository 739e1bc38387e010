package draw

import (
	"unicode/utf8"
)

// Align selects which point of the text its anchor column refers to.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Style wraps text in SGR attributes.
type Style int

const (
	StylePlain Style = iota
	StyleBold
	StyleDim
	StyleReverse
)

var styleCodes = map[Style]string{
	StyleBold:    "\033[1m",
	StyleDim:     "\033[2m",
	StyleReverse: "\033[7m",
}

// TextColumn returns the 1-based column where text anchored at col starts.
func TextColumn(col int, text string, align Align) int {
	width := utf8.RuneCountInString(text)
	switch align {
	case AlignCenter:
		col -= width / 2
	case AlignRight:
		col -= width
	}
	if col < 1 {
		col = 1
	}
	return col
}

// WriteText places text at (col, row) with the given alignment and style.
func WriteText(cw *ChunkWriter, col, row int, text string, align Align, style Style) {
	if text == "" {
		return
	}
	cw.MoveCursor(TextColumn(col, text, align), row)
	if code, ok := styleCodes[style]; ok {
		cw.WriteString(code)
		cw.WriteString(text)
		cw.WriteString("\033[0m")
		return
	}
	cw.WriteString(text)
}
