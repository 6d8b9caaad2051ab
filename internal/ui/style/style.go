// Package style maps log severities to the glyphs and colours of console lines.
package style

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	Muted   = lipgloss.Color("#667085")
	Caution = lipgloss.Color("#F59E0B")
	Danger  = lipgloss.Color("#D93025")
)

// CauseArrow prefixes each cause below a rendered error.
const CauseArrow = "→"

// Marker is the leading glyph and colour of a console line.
type Marker struct {
	Glyph string
	Color lipgloss.Color
}

// Prefix returns msg with the glyph in front of it.
func (m Marker) Prefix(msg string) string {
	if m.Glyph == "" {
		return msg
	}
	return m.Glyph + " " + msg
}

// ForLevel returns the marker for records at level. Anything below warn is
// rendered without a glyph so compiler output and loop progress read as plain text.
func ForLevel(level slog.Level) Marker {
	switch {
	case level >= slog.LevelError:
		return Marker{Glyph: "✗", Color: Danger}
	case level >= slog.LevelWarn:
		return Marker{Glyph: "!", Color: Caution}
	default:
		return Marker{Color: Muted}
	}
}
