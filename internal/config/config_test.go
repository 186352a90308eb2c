package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "CONSOLE", cfg.LogFormat)
	assert.Equal(t, 2, cfg.Indent)
	assert.Equal(t, OutputJSON, cfg.OutputFormat)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Parallelism)
	assert.False(t, cfg.Strict)
	assert.Equal(t, "  ", cfg.IndentString())
	require.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name: "full",
			yaml: `
logLevel: debug
logFormat: json
strict: true
indent: 4
outputFormat: YAML
parallelism: 3
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "json", cfg.LogFormat)
				assert.True(t, cfg.Strict)
				assert.Equal(t, 4, cfg.Indent)
				assert.Equal(t, OutputYAML, cfg.OutputFormat)
				assert.Equal(t, 3, cfg.Parallelism)
			},
		},
		{
			name: "defaults fill gaps",
			yaml: "strict: true\n",
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Strict)
				assert.Equal(t, 2, cfg.Indent)
				assert.Equal(t, OutputJSON, cfg.OutputFormat)
			},
		},
		{name: "bad level", yaml: "logLevel: loud\n", wantErr: true},
		{name: "bad output", yaml: "outputFormat: xml\n", wantErr: true},
		{name: "bad indent", yaml: "indent: 12\n", wantErr: true},
		{name: "negative parallelism", yaml: "parallelism: -1\n", wantErr: true},
		{name: "not yaml", yaml: "indent: [\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvLogLevel, "")
			t.Setenv(EnvLogFormat, "")

			cfg, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestValidationWrapsErrInvalid(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")

	_, err := Parse([]byte("outputFormat: xml\n"))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFormat, "json")

	path := filepath.Join(t.TempDir(), "chartopts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\nlogFormat: console\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadWithoutPath(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "CONSOLE", cfg.LogFormat)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
