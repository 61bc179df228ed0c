package telemetry

import (
	"log/slog"
	"os"
)

// InitLogger configures the default logger. Logs are JSON on stderr: stdout
// is reserved for the comparison report, which CI jobs capture verbatim.
func InitLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
