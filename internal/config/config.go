package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dkoosis/artisan/pkg/preset"
	"github.com/dkoosis/artisan/pkg/render"
)

// Config holds all application configuration.
type Config struct {
	Theme        string      `mapstructure:"theme" yaml:"theme"`
	Format       string      `mapstructure:"format" yaml:"format"`
	NoColor      bool        `mapstructure:"no_color" yaml:"no_color"`
	ExpandGroups bool        `mapstructure:"expand_groups" yaml:"expand_groups"`
	Store        StoreConfig `mapstructure:"store" yaml:"store"`
	Log          LogConfig   `mapstructure:"log" yaml:"log"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-" yaml:"-"`
}

// StoreConfig selects the preset store.
type StoreConfig struct {
	Driver string `mapstructure:"driver" yaml:"driver"`
	Path   string `mapstructure:"path" yaml:"path"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Constants for default values.
const (
	FileName      = ".artisan.yaml"
	EnvPrefix     = "ARTISAN"
	FormatAuto    = "auto"
	DefaultTheme  = "default"
	DefaultDriver = preset.DriverFile
	DefaultLevel  = "warn"
)

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"theme":      "theme",
	"format":     "format",
	"no-color":   "no_color",
	"expand":     "expand_groups",
	"store":      "store.driver",
	"store-path": "store.path",
	"log-level":  "log.level",
	"log-file":   "log.file",
}

// LoadOptions tell Load where to look.
type LoadOptions struct {
	// File is an explicit config file; a missing file is an error.
	File string
	// Flags are bound when present. Only flags the user changed override
	// lower-priority sources.
	Flags *pflag.FlagSet
}

// Load resolves the configuration from all sources and validates it.
func Load(opts LoadOptions) (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w", err)
	}

	v := viper.New()
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("format", FormatAuto)
	v.SetDefault("no_color", false)
	v.SetDefault("expand_groups", false)
	v.SetDefault("store.driver", DefaultDriver)
	v.SetDefault("store.path", "")
	v.SetDefault("log.level", DefaultLevel)
	v.SetDefault("log.file", "")

	v.SetConfigType("yaml")
	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
		v.AddConfigPath(".")
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	noColorFlag := false
	if opts.Flags != nil {
		for name, key := range flagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
			if name == "no-color" && f.Changed {
				noColorFlag = true
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if os.Getenv("NO_COLOR") != "" && !noColorFlag {
		cfg.NoColor = true
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = defaultStorePath(dir, cfg.Store.Driver)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown themes, formats, drivers and log levels.
func (c *Config) Validate() error {
	if !slices.Contains(render.ThemeNames(), c.Theme) {
		return fmt.Errorf("unknown theme %q (want one of %s)", c.Theme, strings.Join(render.ThemeNames(), ", "))
	}
	if c.Format != FormatAuto {
		if _, err := render.ParseFormat(c.Format); err != nil {
			return err
		}
	}
	if !slices.Contains(preset.Drivers(), c.Store.Driver) {
		return fmt.Errorf("unknown store driver %q (want one of %s)", c.Store.Driver, strings.Join(preset.Drivers(), ", "))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

func defaultStorePath(dir, driver string) string {
	switch driver {
	case preset.DriverSQLite:
		return filepath.Join(dir, "presets.db")
	case preset.DriverFile:
		return filepath.Join(dir, "presets")
	}
	return ""
}

// Dir returns the configuration directory: ARTISAN_CONFIG_DIR, then
// $XDG_CONFIG_HOME/artisan, then ~/.config/artisan.
func Dir() (string, error) {
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "artisan"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "artisan"), nil
}
