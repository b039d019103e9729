package logutil

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/lni/goutils/leaktest"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogConfig_getter(t *testing.T) {
	defer leaktest.AfterTest(t)()
	tests := []struct {
		name      string
		cfg       LogConfig
		wantLevel zap.AtomicLevel
		entry     zapcore.Entry
		wantMsg   *regexp.Regexp
	}{
		{
			name:      "console",
			cfg:       LogConfig{Level: "debug", Format: "console"},
			wantLevel: zap.NewAtomicLevelAt(zap.DebugLevel),
			entry:     zapcore.Entry{Level: zapcore.DebugLevel, Message: "console msg"},
			wantMsg:   regexp.MustCompile(`DEBUG\tconsole msg`),
		},
		{
			name:      "json",
			cfg:       LogConfig{Level: "warn", Format: "json"},
			wantLevel: zap.NewAtomicLevelAt(zap.WarnLevel),
			entry:     zapcore.Entry{Level: zapcore.WarnLevel, Message: "json msg"},
			wantMsg:   regexp.MustCompile(`"level":"WARN".*"msg":"json msg"`),
		},
		{
			name:      "default level",
			cfg:       LogConfig{},
			wantLevel: zap.NewAtomicLevelAt(zap.InfoLevel),
			entry:     zapcore.Entry{Level: zapcore.InfoLevel, Message: "plain"},
			wantMsg:   regexp.MustCompile(`INFO\tplain`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantLevel.Level(), tt.cfg.getLevel().Level())
			require.Len(t, tt.cfg.getOptions(), 2)
			require.Equal(t, getConsoleSyncer(), tt.cfg.getSyncer())

			buf, err := tt.cfg.getEncoder().EncodeEntry(tt.entry, nil)
			require.NoError(t, err)
			require.Regexp(t, tt.wantMsg, buf.String())
		})
	}
}

func TestSetupLogger(t *testing.T) {
	defer leaktest.AfterTest(t)()
	defer globalLogger.Store(zap.NewNop())

	cfg := DefaultConfig()
	logger := SetupLogger(&cfg)
	require.Same(t, logger, GetGlobalLogger())
	require.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestSetupLogger_panic(t *testing.T) {
	tests := []struct {
		name string
		cfg  LogConfig
		want string
	}{
		{name: "format", cfg: LogConfig{Format: "xml"}, want: "unsupported log format: xml"},
		{name: "level", cfg: LogConfig{Level: "loud"}, want: "unsupported log level: loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.PanicsWithValue(t, tt.want, func() {
				tt.cfg.Build()
			})
		})
	}
}

func TestFileSyncer(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "division.log")
	cfg := LogConfig{Level: "info", Format: "json", Filename: filename, MaxSize: 1}

	logger := cfg.Build()
	logger.Info("to file", zap.Float64("quotient", 2))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"to file"`)
	require.Contains(t, string(data), `"quotient":2`)
}
