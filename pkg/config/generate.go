package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/extpack/extpack/pkg/errors"
)

const sampleHeader = `# extpack packaging options. Every key is optional; values here
# layer on top of the built-in defaults and below command-line flags.

`

// Sample renders a starter extpack.toml with the default values
func Sample() ([]byte, error) {
	data, err := toml.Marshal(Config{})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot render sample config")
	}
	return append([]byte(sampleHeader), data...), nil
}

// WriteSample writes a starter extpack.toml into dir. It refuses to
// overwrite an existing config file.
func WriteSample(dir string) (string, error) {
	path := filepath.Join(dir, "extpack.toml")
	if _, err := os.Stat(path); err == nil {
		return "", errors.New(errors.ErrInvalidInput, "extpack.toml already exists").
			WithDetail("path", path)
	}

	data, err := Sample()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "cannot write sample config").
			WithDetail("path", path)
	}
	return path, nil
}
