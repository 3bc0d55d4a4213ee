// Package config loads tool configuration from defaults, an optional YAML
// file, environment variables, and CLI flags, in increasing precedence.
// A .env file in the working directory is loaded into the environment
// first, so credentials can live there instead of the shell.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultAPIURL is the Endor Labs API base URL.
const DefaultAPIURL = "https://api.endorlabs.com/v1"

// DefaultTimeoutSeconds is the per-request timeout. Query pages over large
// tenants can be slow, so this is deliberately generous.
const DefaultTimeoutSeconds = 600

// Config holds everything the search run needs. APIKey, APISecret, and
// Namespace are required; the rest have defaults.
type Config struct {
	APIURL         string `koanf:"api_url"`
	APIKey         string `koanf:"api_key"`
	APISecret      string `koanf:"api_secret"`
	Namespace      string `koanf:"namespace"`
	TimeoutSeconds int    `koanf:"timeout"`
	OutputDir      string `koanf:"output_dir"`
	Verbose        bool   `koanf:"verbose"`
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks the fatal preconditions: credentials and namespace must
// be present before any network call is made.
func (c *Config) Validate() error {
	var missing []string
	if c.APIKey == "" {
		missing = append(missing, "API_KEY")
	}
	if c.APISecret == "" {
		missing = append(missing, "API_SECRET")
	}
	if c.Namespace == "" {
		missing = append(missing, "ENDOR_NAMESPACE")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s (set them in a .env file or the environment)", strings.Join(missing, ", "))
	}
	return nil
}

// Load builds the configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Best effort; a missing .env is not an error.
	_ = godotenv.Load()

	k := koanf.New(".")

	// 1. Defaults.
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"api_url":    DefaultAPIURL,
		"timeout":    DefaultTimeoutSeconds,
		"output_dir": ".",
		"verbose":    false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Optional config file.
	if cfgFile == "" {
		cfgFile = findConfigFile()
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Environment variables (ENDOR_ prefix).
	// Transform: ENDOR_API_URL -> api_url, ENDOR_NAMESPACE -> namespace.
	if err := k.Load(env.Provider("ENDOR_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ENDOR_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags override everything else; only flags the user set count.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
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

	// Bare API_KEY / API_SECRET have always been the credential variable
	// names; honor them when the prefixed forms are absent.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("API_KEY")
	}
	if cfg.APISecret == "" {
		cfg.APISecret = os.Getenv("API_SECRET")
	}

	return &cfg, nil
}

// findConfigFile looks for a config file in the working directory.
func findConfigFile() string {
	for _, name := range []string{"search-dependencies.yaml", "search-dependencies.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}
