package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config file names, checked in order.
const (
	ConfigFileName    = "zest.yaml"
	ConfigFileNameAlt = "zest.yml"
)

var configFileUsed string

// findConfigFile finds the config file to use.
// Priority: explicit path > zest.yaml > zest.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"dataset.parquet_path": DefaultParquetPath,
		"dataset.csv_path":     DefaultCSVPath,
		"ui.port":              DefaultPort,
		"ui.watch":             true,
		"ui.preview_limit":     DefaultPreviewLimit,
		"verbose":              false,
		"output":               DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables (ZEST_ prefix, double underscore nests).
	// ZEST_UI__PORT -> ui.port, ZEST_DATASET__PARQUET_PATH -> dataset.parquet_path
	if err := k.Load(env.Provider("ZEST_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "ZEST_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. CLI flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			// Map short flag names onto nested config keys.
			switch f.Name {
			case "parquet":
				return "dataset.parquet_path", posflag.FlagVal(flags, f)
			case "csv":
				return "dataset.csv_path", posflag.FlagVal(flags, f)
			case "port":
				return "ui.port", posflag.FlagVal(flags, f)
			case "watch":
				return "ui.watch", posflag.FlagVal(flags, f)
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.UI.Port == 0 {
		cfg.UI.Port = DefaultPort
	}
	if cfg.UI.PreviewLimit == 0 {
		cfg.UI.PreviewLimit = DefaultPreviewLimit
	}

	return &cfg, nil
}

// FileUsed returns the path to the config file being used, if any.
func FileUsed() string {
	return configFileUsed
}
