// Package marquee produces the rotating text shown for game names that do not
// fit under their tile.
package marquee

import (
	"github.com/mattn/go-runewidth"
)

// Frame rotates text left by offset runes, with a space at the seam.
func Frame(text string, offset int) string {
	r := []rune(text)
	if len(r) == 0 {
		return text
	}
	offset %= len(r) + 1
	if offset < 0 {
		offset += len(r) + 1
	}
	return string(r[offset:]) + " " + string(r[:offset])
}

// Marquee tracks the scroll position of one label.
type Marquee struct {
	text   string
	runes  int
	width  int
	offset int
}

// New returns a marquee for text that scrolls when wider than width cells.
func New(text string, width int) *Marquee {
	return &Marquee{text: text, runes: len([]rune(text)), width: width}
}

// Scrolls reports whether the text is too wide to show at once.
func (m *Marquee) Scrolls() bool {
	return runewidth.StringWidth(m.text) > m.width
}

// Text is the current frame, or the plain text when it fits.
func (m *Marquee) Text() string {
	if !m.Scrolls() {
		return m.text
	}
	return Frame(m.text, m.offset)
}

// Next advances one rune and returns the new frame. After the last rune the
// offset goes back to the start.
func (m *Marquee) Next() string {
	if !m.Scrolls() {
		return m.text
	}
	m.offset++
	if m.offset > m.runes {
		m.offset = 0
	}
	return Frame(m.text, m.offset)
}
