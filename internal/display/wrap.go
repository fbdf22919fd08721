package display

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 80

var titleCaser = cases.Title(language.English)

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Title returns s in English title case, for room-name headings.
func Title(s string) string {
	return titleCaser.String(s)
}
