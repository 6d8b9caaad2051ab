package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/hotloop/internal/ui/output"
	"go.trai.ch/hotloop/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one line per record: the level
// glyph, the message and key=value attributes, coloured by severity.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// attrs holds attributes bound by WithAttrs, already rendered.
	attrs string
	// prefix qualifies keys added after WithGroup, e.g. "build.".
	prefix string
}

// NewPrettyHandler creates a PrettyHandler using the detected color profile of w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	return newHandler(output.New(orStderr(w)), opts)
}

// NewPlainHandler creates a PrettyHandler that never emits color sequences.
func NewPlainHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	return newHandler(output.NewPlain(orStderr(w)), opts)
}

func newHandler(out *termenv.Output, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &PrettyHandler{out: out, level: level}
}

func orStderr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes r as a single line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	marker := style.ForLevel(r.Level)

	var line strings.Builder
	line.WriteString(marker.Prefix(r.Message))
	line.WriteString(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(&line, h.prefix, attr)
		return true
	})

	styled := h.out.String(line.String()).Foreground(h.out.Color(string(marker.Color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a handler that appends attrs to every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var rendered strings.Builder
	rendered.WriteString(h.attrs)
	for _, attr := range attrs {
		writeAttr(&rendered, h.prefix, attr)
	}

	clone := *h
	clone.attrs = rendered.String()
	return &clone
}

// WithGroup returns a handler that qualifies later keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func writeAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	b.WriteString(" ")
	b.WriteString(prefix)
	b.WriteString(attr.Key)
	b.WriteString("=")
	b.WriteString(attr.Value.String())
}
