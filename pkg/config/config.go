package config

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/npaths/pkg/errors"
	"github.com/arthur-debert/npaths/pkg/paths"
	"github.com/arthur-debert/npaths/pkg/textio"
	"github.com/arthur-debert/npaths/pkg/ui"
)

// Config is the effective npaths configuration
type Config struct {
	Extension Extension `koanf:"extension" toml:"extension"`
	Reader    Reader    `koanf:"reader" toml:"reader"`
	Walk      Walk      `koanf:"walk" toml:"walk"`
	Output    Output    `koanf:"output" toml:"output"`
	Log       Log       `koanf:"log" toml:"log"`
}

// Extension holds the default extension policy
type Extension struct {
	DotCount int  `koanf:"dot_count" toml:"dot_count"`
	Fuzzy    bool `koanf:"fuzzy" toml:"fuzzy"`
}

// Reader holds the default charset for reading files
type Reader struct {
	Charset string `koanf:"charset" toml:"charset"`
}

// Walk holds the default walker limits
type Walk struct {
	MaxDepth int    `koanf:"max_depth" toml:"max_depth"`
	Match    string `koanf:"match" toml:"match"`
}

// Output holds the default output format
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Log holds the default log verbosity
type Log struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// ExtensionSpec returns the configured extension policy
func (c *Config) ExtensionSpec() paths.ExtensionSpec {
	return paths.ExtensionSpec{DotCount: c.Extension.DotCount, Fuzzy: c.Extension.Fuzzy}
}

// Validate rejects values no command could use
func (c *Config) Validate() error {
	if _, err := ui.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid output.format %q", c.Output.Format).
			WithDetail("key", "output.format")
	}
	canonical, err := textio.CanonicalName(c.Reader.Charset)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid reader.charset %q", c.Reader.Charset).
			WithDetail("key", "reader.charset")
	}
	c.Reader.Charset = canonical
	if c.Walk.Match != "" && !doublestar.ValidatePattern(c.Walk.Match) {
		return errors.Newf(errors.ErrConfigValid, "invalid walk.match pattern %q", c.Walk.Match).
			WithDetail("key", "walk.match")
	}
	if c.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "log.verbosity must not be negative: %d", c.Log.Verbosity).
			WithDetail("key", "log.verbosity")
	}
	c.Output.Format = strings.ToLower(c.Output.Format)
	return nil
}
