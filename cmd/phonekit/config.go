package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config drives the CLI. Values come from defaults, then an optional YAML
// file, then PHONEKIT_* environment variables, then flags.
type Config struct {
	LogLevel      string `koanf:"loglevel"`
	MetadataPath  string `koanf:"metadata"`
	DefaultRegion string `koanf:"region"`
}

func loadConfig(configFile string) (*Config, error) {
	k := koanf.New(".")

	defaults := &Config{
		LogLevel:      "warn",
		DefaultRegion: "ZZ",
	}
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// The config file is optional unless named explicitly.
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", configFile, err)
		}
	} else {
		_ = k.Load(file.Provider("phonekit.yaml"), yaml.Parser())
	}

	if err := k.Load(env.Provider("PHONEKIT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PHONEKIT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
