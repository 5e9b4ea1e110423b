package check

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	tt "github.com/gnolang/formal/internal/types"
)

// DefaultConfigPath is used when no --config flag is given.
const DefaultConfigPath = ".formal.yaml"

const defaultIterations = 100

// Config represents the configuration file.
type Config struct {
	Name       string                   `yaml:"name"`
	Seed       uint64                   `yaml:"seed"`
	Iterations int                      `yaml:"iterations"`
	Jobs       int                      `yaml:"jobs,omitempty"`
	FailFast   bool                     `yaml:"fail_fast"`
	Rules      map[string]tt.ConfigRule `yaml:"rules"`
}

// DefaultConfig is the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Name:       "formal",
		Seed:       1,
		Iterations: defaultIterations,
		Jobs:       runtime.NumCPU(),
		Rules:      map[string]tt.ConfigRule{},
	}
}

// LoadConfig reads the configuration at path. A missing file yields
// DefaultConfig; keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		path = DefaultConfigPath
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	if config.Rules == nil {
		config.Rules = map[string]tt.ConfigRule{}
	}

	return config, nil
}

// WriteConfig writes config to path, replacing any existing file.
func WriteConfig(path string, config Config) error {
	if path == "" {
		path = DefaultConfigPath
	}

	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
