package wrapgen

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	yaml "gopkg.in/yaml.v3"
)

// Config locates the input stores and the generated artifact. Relative paths
// resolve against the working directory chosen by the caller; stubDir is
// emitted verbatim into the wrappers' CreateLib paths.
type Config struct {
	APIFile string `yaml:"apiFile"`
	DocFile string `yaml:"docFile"`
	Output  string `yaml:"output"`
	StubDir string `yaml:"stubDir"`
}

// DefaultConfig returns the conventional source tree layout.
func DefaultConfig() Config {
	return Config{
		APIFile: filepath.FromSlash("data/api.yaml"),
		DocFile: filepath.FromSlash("data/docs.yaml"),
		Output:  "fredwrap.py",
		StubDir: "stubs",
	}
}

// LoadConfig reads a YAML config file and fills unset fields from
// DefaultConfig. An empty path returns the defaults untouched.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	var raw Config
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}
	if raw.APIFile != "" {
		cfg.APIFile = raw.APIFile
	}
	if raw.DocFile != "" {
		cfg.DocFile = raw.DocFile
	}
	if raw.Output != "" {
		cfg.Output = raw.Output
	}
	if raw.StubDir != "" {
		cfg.StubDir = raw.StubDir
	}
	return cfg, nil
}
