package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"wiselydiary/backend/internal/logger"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, logger.ParseLevel(in), "level %q", in)
	}
}

func TestInitWithWriter_JSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger.InitWithWriter(&buf, slog.LevelInfo, "json")

	logger.Debug("hidden")
	logger.Info("diary saved", "module", "service", "diary_id", int64(7))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "info", record["level"])
	require.Equal(t, "diary saved", record["msg"])
	require.Equal(t, "service", record["module"])
	require.EqualValues(t, 7, record["diary_id"])
}

func TestInitWithWriter_TextLowercasesLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger.InitWithWriter(&buf, slog.LevelDebug, "text")
	logger.Warn("upstream slow")

	require.Contains(t, buf.String(), "level=warn")
	require.Contains(t, buf.String(), `msg="upstream slow"`)
}
