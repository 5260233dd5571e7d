package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes events to an slog.Logger.
// Useful for development when you want to see controller events in console.
type SlogAdapter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger
// at Debug level.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy of the adapter logging at level.
func (a *SlogAdapter) WithLevel(level slog.Level) *SlogAdapter {
	return &SlogAdapter{logger: a.logger, level: level}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("category", event.Category.String()),
		slog.String("state", event.State),
		slog.Int("remaining", event.Remaining),
	}

	if event.SessionID != "" {
		attrs = append(attrs, slog.String("session", event.SessionID))
	}

	switch {
	case event.Button != nil:
		attrs = append(attrs,
			slog.String("input", event.Button.Input.String()),
			slog.String("edge", event.Button.Edge),
		)
		if event.Button.Ignored {
			attrs = append(attrs, slog.Bool("ignored", true))
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
			slog.String("reason", event.StateChange.Reason.String()),
		)
	case event.Countdown != nil:
		if event.Countdown.Expired {
			attrs = append(attrs, slog.Bool("expired", true))
		}
	case event.Phase != nil:
		attrs = append(attrs,
			slog.Int("phase", event.Phase.Phase),
			slog.String("outputs", event.Phase.Outputs),
		)
	case event.Output != nil:
		attrs = append(attrs,
			slog.String("line", event.Output.Line),
			slog.String("level", event.Output.Level),
		)
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("component", event.Error.Component),
			slog.String("error", event.Error.Message),
		)
	}

	a.logger.LogAttrs(context.Background(), a.level, "event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
