package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime"
)

type contextKey string

const RunIDKey contextKey = "run_id"

// StackTraceHandler is a handler that adds stack trace to error records
// and extracts run_id from context
type StackTraceHandler struct {
	slog.Handler
}

func (h *StackTraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if runID, ok := ctx.Value(RunIDKey).(string); ok {
			r.AddAttrs(slog.String("run_id", runID))
		}
	}

	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stack_trace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

// InitStructuredLogger initialize structured logger. Diagnostics go to
// stderr, the report itself owns stdout.
func InitStructuredLogger(level slog.Leveler) {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if level.Level() == slog.LevelDebug {
		opts.AddSource = true
	}

	jsonHandler := slog.NewJSONHandler(os.Stderr, opts)
	handler := &StackTraceHandler{Handler: jsonHandler}

	slog.SetDefault(slog.New(handler))
}
