package logger

import (
	"log/slog"
	"os"
)

// New builds the JSON logger shared by every component. The level is fixed
// at info.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
