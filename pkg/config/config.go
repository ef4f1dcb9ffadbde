// Package config loads packaging options in layers: embedded defaults,
// then an optional extpack.toml or extpack.yaml in the extension
// directory, then caller overrides.
package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/extpack/extpack/pkg/errors"
	"github.com/extpack/extpack/pkg/logging"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds the per-run packaging options
type Config struct {
	// Output is the archive path; empty means <name>-<version>.vsix
	// in the extension directory
	Output string `koanf:"output" toml:"output"`

	// BaseContentURL is the explicit base for relative markdown links
	BaseContentURL string `koanf:"baseContentUrl" toml:"baseContentUrl"`

	// BaseImagesURL is the explicit base for relative markdown images
	BaseImagesURL string `koanf:"baseImagesUrl" toml:"baseImagesUrl"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrNotImplemented, "rawBytesProvider supports only ReadBytes")
}

// Load builds the effective configuration for one packaging run.
// Later layers win: defaults, then the extension directory's config
// file, then overrides.
func Load(extensionDir string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	// 2. Extension-local config, TOML preferred over YAML
	type candidate struct {
		name   string
		parser koanf.Parser
	}
	candidates := []candidate{
		{"extpack.toml", toml.Parser()},
		{"extpack.yaml", yaml.Parser()},
	}
	for _, c := range candidates {
		path := filepath.Join(extensionDir, c.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), c.parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded extension config")
		break
	}

	// 3. Caller overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply config overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration")
	}
	return &cfg, nil
}
