package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/npaths/pkg/errors"
	"github.com/arthur-debert/npaths/pkg/paths"
)

// isolate points every config source at an empty temp directory
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvConfigPath, "")
	for _, key := range Keys() {
		t.Setenv(EnvPrefix+envName(key), "")
		os.Unsetenv(EnvPrefix + envName(key))
	}
	return dir
}

func envName(key string) string {
	out := []byte(key)
	for i, c := range out {
		switch {
		case c == '.':
			out[i] = '_'
		case c >= 'a' && c <= 'z':
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Extension.DotCount)
	assert.False(t, cfg.Extension.Fuzzy)
	assert.Equal(t, "utf-8", cfg.Reader.Charset)
	assert.Equal(t, -1, cfg.Walk.MaxDepth)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.Equal(t, 0, cfg.Log.Verbosity)
	assert.Equal(t, paths.LastDot, cfg.ExtensionSpec())
}

func TestLoadXDGFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "npaths", "config.toml"), `
[extension]
dot_count = 2
fuzzy = true

[walk]
max_depth = "unlimited"
match = "**/*.go"
`)

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, paths.ExtensionSpec{DotCount: 2, Fuzzy: true}, cfg.ExtensionSpec())
	assert.Equal(t, -1, cfg.Walk.MaxDepth)
	assert.Equal(t, "**/*.go", cfg.Walk.Match)
	assert.Equal(t, "auto", cfg.Output.Format)
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeConfig(t, path, `
[output]
format = "json"

[walk]
max_depth = 3
`)
	t.Setenv(EnvConfigPath, path)
	t.Setenv("NPATHS_WALK_MAX_DEPTH", "5")
	t.Setenv("NPATHS_EXTENSION_FUZZY", "true")
	t.Setenv("NPATHS_UNRELATED", "ignored")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 5, cfg.Walk.MaxDepth)
	assert.True(t, cfg.Extension.Fuzzy)

	cfg, err = Load(Options{Overrides: map[string]interface{}{"walk.max_depth": 0, "output.format": "YAML"}})
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Walk.MaxDepth)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(Options{Path: filepath.Join(dir, "missing.toml")})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	t.Setenv(EnvConfigPath, filepath.Join(dir, "also-missing.toml"))
	_, err = Load(Options{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	t.Setenv(EnvConfigPath, "")

	broken := filepath.Join(dir, "broken.toml")
	writeConfig(t, broken, "[output\nformat=")
	_, err = Load(Options{Path: broken})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	bad := filepath.Join(dir, "bad.toml")
	writeConfig(t, bad, "[output]\nformat = \"xml\"\n")
	_, err = Load(Options{Path: bad})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Equal(t, "output.format", errors.GetErrorDetails(err)["key"])
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Reader: Reader{Charset: "Latin1"}, Output: Output{Format: "TEXT"}}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "windows-1252", cfg.Reader.Charset)
	assert.Equal(t, "text", cfg.Output.Format)

	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"charset", func(c *Config) { c.Reader.Charset = "klingon" }, "reader.charset"},
		{"pattern", func(c *Config) { c.Walk.Match = "[" }, "walk.match"},
		{"verbosity", func(c *Config) { c.Log.Verbosity = -1 }, "log.verbosity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
		})
	}
}

func TestKeys(t *testing.T) {
	assert.ElementsMatch(t, []string{
		"extension.dot_count", "extension.fuzzy", "reader.charset",
		"walk.max_depth", "walk.match", "output.format", "log.verbosity",
	}, Keys())
	assert.Equal(t, "walk.max_depth", envKey("NPATHS_WALK_MAX_DEPTH"))
	assert.Equal(t, "", envKey("NPATHS_CONFIG"))
}

func TestDump(t *testing.T) {
	isolate(t)
	cfg, err := Load(Options{})
	require.NoError(t, err)

	out, err := Dump(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[extension]")
	assert.Contains(t, out, "dot_count = 1")

	var back Config
	require.NoError(t, toml.Unmarshal([]byte(out), &back))
	assert.Equal(t, *cfg, back)
}
