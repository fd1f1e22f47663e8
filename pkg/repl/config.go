package repl

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// path is given.
const DefaultConfigFile = "imp.yml"

const defaultPrompt = ">> "

// Config tunes the interactive loop.
type Config struct {
	Prompt  string `yaml:"prompt"`
	History string `yaml:"history"`
}

// DefaultConfig returns the built-in settings: the `>> ` prompt and no
// history file.
func DefaultConfig() Config {
	return Config{Prompt: defaultPrompt}
}

// LoadConfig reads settings from a yaml file. An empty path means
// DefaultConfigFile; a missing file yields the defaults rather than an
// error, since the config is optional.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	cfg := DefaultConfig()
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	return cfg, nil
}
