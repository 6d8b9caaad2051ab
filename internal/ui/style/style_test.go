package style_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/hotloop/internal/ui/style"
)

func TestForLevel(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  style.Marker
	}{
		{level: slog.LevelDebug, want: style.Marker{Color: style.Muted}},
		{level: slog.LevelInfo, want: style.Marker{Color: style.Muted}},
		{level: slog.LevelWarn, want: style.Marker{Glyph: "!", Color: style.Caution}},
		{level: slog.LevelError, want: style.Marker{Glyph: "✗", Color: style.Danger}},
		{level: slog.LevelError + 4, want: style.Marker{Glyph: "✗", Color: style.Danger}},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, style.ForLevel(tt.level))
		})
	}
}

func TestMarker_Prefix(t *testing.T) {
	assert.Equal(t, "rebuilding", style.Marker{}.Prefix("rebuilding"))
	assert.Equal(t, "! slow build", style.Marker{Glyph: "!"}.Prefix("slow build"))
}
