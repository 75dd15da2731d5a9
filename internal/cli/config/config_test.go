// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/particula/internal/cli/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("output", config.DefaultOutput, "")
	fs.Bool("log-json", false, "")
	fs.String("log-level", config.DefaultLogLevel, "")
	fs.String("data-dir", "", "")
	fs.Int("workers", config.DefaultWorkers, "")

	return fs
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "particula.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, used, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, config.OutputTable, cfg.Output)
	assert.False(t, cfg.LogJSON)
	assert.Equal(t, zapcore.WarnLevel, cfg.Level())
	assert.Equal(t, config.DefaultWorkers, cfg.Workers)
	assert.Empty(t, cfg.DataDir)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, "output: json\nworkers: 2\ndata_dir: /from/file\nlog_level: info\n")

	t.Run("file over defaults", func(t *testing.T) {
		cfg, used, err := config.Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, path, used)
		assert.Equal(t, config.OutputJSON, cfg.Output)
		assert.Equal(t, 2, cfg.Workers)
		assert.Equal(t, "/from/file", cfg.DataDir)
		assert.Equal(t, zapcore.InfoLevel, cfg.Level())
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("PARTICULA_WORKERS", "5")
		t.Setenv("PARTICULA_LOG_JSON", "true")
		cfg, _, err := config.Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Workers)
		assert.True(t, cfg.LogJSON)
		assert.Equal(t, config.OutputJSON, cfg.Output)
	})

	t.Run("explicit flags over env", func(t *testing.T) {
		t.Setenv("PARTICULA_WORKERS", "5")
		fs := newFlags()
		require.NoError(t, fs.Parse([]string{"--workers", "3", "--output", "table"}))
		cfg, _, err := config.Load(path, fs)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Workers)
		assert.Equal(t, config.OutputTable, cfg.Output)
		assert.Equal(t, "/from/file", cfg.DataDir, "unset flags keep lower layers")
	})
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"output":    "output: xml\n",
		"log level": "log_level: loud\n",
		"workers":   "workers: 0\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := config.Load(writeFile(t, body), nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrInvalidConfig))
		})
	}

	_, _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}
