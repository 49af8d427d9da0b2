package qir

import (
	"context"
	"log/slog"
)

// LevelTrace is the level every package of the simulator traces at. It sits
// below debug, so a default logger does not print traces.
const LevelTrace slog.Level = slog.LevelDebug - 4

// Trace logs at LevelTrace.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
