package config

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/npaths/pkg/errors"
)

// Dump renders cfg as TOML, in the layout of the config file
func Dump(cfg *Config) (string, error) {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)
	if err := encoder.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.String(), nil
}
