package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// envPrefix is stripped from environment variables before mapping them
// to config keys (KEEPER_DATA_DIR -> data_dir).
const envPrefix = "KEEPER_"

// findConfigFile finds the config file to use.
// Priority: explicit path > league.yaml > league.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"league.yaml", "league.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds the configuration from defaults, an optional league.yaml,
// KEEPER_* environment variables, and CLI flags, in that order of
// increasing precedence. It returns the config and the config file
// used, if any.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"data_dir":      DefaultDataDir,
		"draft_file":    DefaultDraftFile,
		"rankings_file": DefaultRankingsFile,
		"port":          DefaultPort,
		"watch":         true,
		"verbose":       false,
		"output":        DefaultOutput,
	}, "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file (optional)
	configFile := findConfigFile(cfgFile)
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("failed to load config file %s: %w", configFile, err)
		}
	} else if cfgFile != "" {
		return nil, "", fmt.Errorf("config file not found: %s", cfgFile)
	}

	// 3. Environment variables (KEEPER_DATA_DIR -> data_dir)
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load environment: %w", err)
	}

	// 4. CLI flags (only those the user actually set)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			// Kebab-case flags map to snake_case config keys.
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", fmt.Errorf("unable to decode config: %w", err)
	}

	// Relative data dirs from the config file resolve against the file's
	// directory, so the CLI works from anywhere in the project.
	if configFile != "" && !filepath.IsAbs(cfg.DataDir) {
		base := filepath.Dir(configFile)
		if abs, err := filepath.Abs(base); err == nil {
			base = abs
		}
		cfg.DataDir = filepath.Join(base, cfg.DataDir)
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = defaultSessionSecret()
	}

	return &cfg, configFile, nil
}

// defaultSessionSecret returns the session secret from the environment,
// falling back to a fixed development value.
func defaultSessionSecret() string {
	if secret := os.Getenv("KEEPER_SESSION_SECRET"); secret != "" {
		return secret
	}
	return "keeper-dev-secret-change-in-production" //nolint:gosec
}
