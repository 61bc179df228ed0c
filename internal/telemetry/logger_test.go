package telemetry

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLogger_DefaultLevel(t *testing.T) {
	InitLogger(false)

	logger := slog.Default()
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestInitLogger_Verbose(t *testing.T) {
	InitLogger(true)

	logger := slog.Default()
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
