// Package config loads and persists the linter settings: rule option maps
// merged over registered defaults, plus global scalars.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/mdtidy/mdtidy/pkg/lint"
)

// ConfigFileName is the name of the settings file.
const ConfigFileName = "mdtidy.yaml"

// ConfigFileNameAlt is the alternate name of the settings file.
const ConfigFileNameAlt = "mdtidy.yml"

// envPrefix namespaces environment variable overrides.
const envPrefix = "MDTIDY_"

// findConfigFile finds the settings file to use.
// Priority: explicit path > mdtidy.yaml > mdtidy.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}
	if _, err := os.Stat(ConfigFileNameAlt); err == nil {
		return ConfigFileNameAlt
	}
	return ""
}

// Load builds the settings snapshot for a run.
// Precedence (highest to lowest): flags > env vars > settings file > defaults.
// Every registered rule ends up with a fully-populated option map: defaults
// are filled first, stored overrides merged second. A migrated legacy key
// triggers an immediate persist so the old spelling disappears from disk.
func Load(cfgFile string, flags *pflag.FlagSet) (*lint.Settings, string, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"lint_on_save":            false,
		"display_changed_message": true,
		"locale":                  "en",
		"log_level":               "info",
	}, "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	configFileUsed := findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), koanfyaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("error reading settings file %s: %w", configFileUsed, err)
		}
	}

	// Environment overrides: MDTIDY_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			// Only load flags that were explicitly set.
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var settings lint.Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, "", fmt.Errorf("unable to decode settings: %w", err)
	}

	migrated := settings.MigrateLegacyKeys()
	settings.FillDefaults()

	if migrated && configFileUsed != "" {
		if err := Save(configFileUsed, &settings); err != nil {
			return nil, "", fmt.Errorf("failed to persist migrated settings: %w", err)
		}
	}

	return &settings, configFileUsed, nil
}

// Save persists the settings snapshot as YAML.
func Save(path string, settings *lint.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
