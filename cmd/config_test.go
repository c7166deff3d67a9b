package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "viewstrap", configBaseName)
	assert.Equal(t, "viewstrap.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputConfigKey)
	assert.Equal(t, "write", writeConfigKey)
	assert.Equal(t, "status.parallel", parallelConfigKey)
	assert.Equal(t, "status.extensions", extensionsConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "-", defaultOutput)
	assert.Equal(t, []string{".swift"}, defaultExtensions)
	assert.Equal(t, "VIEWSTRAP", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger_WritesToFile(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "viewstrap.log")

	configureLogger(logPath, true)
	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(context.Background(), slog.LevelDebug))

	slog.Debug("scaffold probe", "path", "View.swift")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "scaffold probe")
	assert.Contains(t, string(contents), "path=View.swift")
}

func TestReadConfig(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		chdirTemp(t)
		require.NoError(t, readConfig())
	})

	t.Run("malformed file is reported", func(t *testing.T) {
		tempDir := chdirTemp(t)
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, configFileName), []byte("status: [unclosed\n"), 0o644))

		err := readConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})
}
