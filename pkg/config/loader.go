package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	npathserrors "github.com/arthur-debert/npaths/pkg/errors"
	"github.com/arthur-debert/npaths/pkg/logging"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "NPATHS_"

// EnvConfigPath names the variable that points at the config file
const EnvConfigPath = "NPATHS_CONFIG"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Options selects the sources Load reads on top of the defaults
type Options struct {
	// Path is the config file. When empty, $NPATHS_CONFIG and then
	// $XDG_CONFIG_HOME/npaths/config.toml are tried, and a missing file is
	// not an error. An explicit Path must exist.
	Path string

	// Overrides are applied last, keyed by dotted names ("walk.max_depth")
	Overrides map[string]interface{}
}

// Load builds the configuration from, in increasing priority: the embedded
// defaults, the config file, NPATHS_* environment variables and
// opts.Overrides. The result is validated.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, npathserrors.Wrap(err, npathserrors.ErrConfigParse, "failed to load defaults")
	}

	path, required := opts.Path, opts.Path != ""
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		required = path != ""
	}
	if path == "" {
		path = DefaultPath()
	}
	if err := loadFile(k, path, required); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, npathserrors.Wrap(err, npathserrors.ErrConfigLoad, "failed to load environment")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, npathserrors.Wrap(err, npathserrors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				depthHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, npathserrors.Wrap(err, npathserrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("dotCount", cfg.Extension.DotCount).
		Str("format", cfg.Output.Format).
		Msg("Configuration loaded")
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return npathserrors.Wrapf(err, npathserrors.ErrConfigLoad, "cannot read config file %s", path).
			WithDetail("path", path)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return npathserrors.Wrapf(err, npathserrors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/npaths/config.toml
func DefaultPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "npaths", "config.toml")
}

// envKey maps NPATHS_WALK_MAX_DEPTH to walk.max_depth. Only known keys are
// accepted; koanf skips the rest.
func envKey(s string) string {
	name := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, key := range Keys() {
		if strings.ReplaceAll(key, ".", "_") == name {
			return key
		}
	}
	return ""
}

// Keys lists every configuration key in dotted form
func Keys() []string {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil
	}
	return k.Keys()
}

// depthHookFunc accepts "unlimited" (or "all") for integer depth settings
func depthHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Int {
			return data, nil
		}
		switch strings.ToLower(strings.TrimSpace(data.(string))) {
		case "unlimited", "all":
			return -1, nil
		}
		if n, err := strconv.Atoi(strings.TrimSpace(data.(string))); err == nil {
			return n, nil
		}
		return data, nil
	}
}
