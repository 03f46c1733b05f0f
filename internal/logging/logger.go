// Package logging builds the slog loggers used by the CLI and runtime, and a
// Probe that logs cascades.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/comalice/signalx"
)

// ParseLevel converts a string to a slog level. Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger writing to w. format is "json" or "text".
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Probe logs state flips at debug level, and every delivery when verbose is set.
type Probe struct {
	logger  *slog.Logger
	verbose bool
}

// NewProbe creates a logging probe.
func NewProbe(logger *slog.Logger, verbose bool) *Probe {
	return &Probe{logger: logger, verbose: verbose}
}

func (p *Probe) Observe(ev signalx.Event) {
	if ev.Kind == signalx.Notified && !p.verbose {
		return
	}
	ctx := context.Background()
	if !p.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}

	attrs := []slog.Attr{
		slog.String("node", ev.Node.Name()),
		slog.Bool("state", ev.State),
		slog.Int("depth", ev.Depth),
	}
	if ev.Source != nil {
		attrs = append(attrs, slog.String("source", ev.Source.Name()))
	}
	p.logger.LogAttrs(ctx, slog.LevelDebug, "signal "+ev.Kind.String(), attrs...)
}
