// Package obslog adapts btclog's handler/subsystem model into the
// *slog.Logger shape cacti's runtime and CLI expect, so that actor
// lifecycle events land in the same structured log stream a node operator
// would already be watching.
package obslog

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/btcsuite/btclog"
	btclogv2 "github.com/btcsuite/btclog/v2"
)

// fanout is a btclog.Handler that dispatches every record to each of its
// underlying handlers, so a run can log to the console and to a file
// simultaneously without the rest of the package knowing there is more
// than one sink.
type fanout struct {
	level btclog.Level
	set   []btclogv2.Handler
}

func newFanout(handlers ...btclogv2.Handler) *fanout {
	f := &fanout{set: handlers, level: btclog.LevelInfo}
	f.SetLevel(f.level)
	return f
}

func (f *fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.set {
		if !h.Enabled(ctx, level) {
			return false
		}
	}
	return true
}

func (f *fanout) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range f.set {
		if err := h.Handle(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

// WithAttrs returns a new Handler whose attributes consist of both the
// receiver's attributes and the arguments.
//
// NOTE: this is part of the slog.Handler interface.
func (f *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	reduced := &reducedFanout{set: make([]slog.Handler, len(f.set))}
	for i, h := range f.set {
		reduced.set[i] = h.WithAttrs(attrs)
	}
	return reduced
}

// WithGroup returns a new Handler with the given group appended to the
// receiver's existing groups.
//
// NOTE: this is part of the slog.Handler interface.
func (f *fanout) WithGroup(name string) slog.Handler {
	reduced := &reducedFanout{set: make([]slog.Handler, len(f.set))}
	for i, h := range f.set {
		reduced.set[i] = h.WithGroup(name)
	}
	return reduced
}

// SubSystem creates a new Handler with the given sub-system tag.
//
// NOTE: this is part of the btclog.Handler interface.
func (f *fanout) SubSystem(tag string) btclogv2.Handler {
	newSet := &fanout{set: make([]btclogv2.Handler, len(f.set))}
	for i, h := range f.set {
		newSet.set[i] = h.SubSystem(tag)
	}
	return newSet
}

func (f *fanout) SetLevel(level btclog.Level) {
	f.level = level
	for _, h := range f.set {
		h.SetLevel(level)
	}
}

func (f *fanout) Level() btclog.Level {
	return f.level
}

// WithPrefix returns a copy of the Handler but with the given string
// prefixed to each log message.
//
// NOTE: this is part of the btclog.Handler interface.
func (f *fanout) WithPrefix(prefix string) btclogv2.Handler {
	newSet := &fanout{set: make([]btclogv2.Handler, len(f.set))}
	for i, h := range f.set {
		newSet.set[i] = h.WithPrefix(prefix)
	}
	return newSet
}

// Ensure fanout implements btclog.Handler at compile time.
var _ btclogv2.Handler = (*fanout)(nil)

// reducedFanout backs fanout's WithAttrs/WithGroup results, which produce
// plain slog.Handlers rather than btclog.Handlers.
type reducedFanout struct {
	set []slog.Handler
}

func (r *reducedFanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range r.set {
		if !h.Enabled(ctx, level) {
			return false
		}
	}
	return true
}

func (r *reducedFanout) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range r.set {
		if err := h.Handle(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func (r *reducedFanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	reduced := &reducedFanout{set: make([]slog.Handler, len(r.set))}
	for i, h := range r.set {
		reduced.set[i] = h.WithAttrs(attrs)
	}
	return reduced
}

func (r *reducedFanout) WithGroup(name string) slog.Handler {
	reduced := &reducedFanout{set: make([]slog.Handler, len(r.set))}
	for i, h := range r.set {
		reduced.set[i] = h.WithGroup(name)
	}
	return reduced
}

// Ensure reducedFanout implements slog.Handler at compile time.
var _ slog.Handler = (*reducedFanout)(nil)

// New builds a *slog.Logger that writes to stderr and, if logFile is
// non-empty, also appends to logFile. The returned logger is what callers
// pass to cacti.WithLogger.
func New(logFile string) (*slog.Logger, error) {
	var handlers []btclogv2.Handler
	handlers = append(handlers, btclog.NewDefaultHandler(os.Stderr))

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, btclog.NewDefaultHandler(io.Writer(f)))
	}

	combined := newFanout(handlers...)
	return btclog.NewSLogger(combined), nil
}

// Discard returns a logger that drops every record, for callers (mainly
// tests) that want the runtime's logging hooks exercised without any
// output.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
