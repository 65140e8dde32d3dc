package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/portions/internal/daybound"
	"github.com/alexanderramin/portions/internal/domain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config represents the portions configuration
type Config struct {
	Data           string        `mapstructure:"data"`
	Entries        []string      `mapstructure:"entries"`
	CutoffMinutes  int           `mapstructure:"cutoffMinutes"`
	Timezone       string        `mapstructure:"timezone"`
	ExactTolerance float64       `mapstructure:"exactTolerance"`
	Color          string        `mapstructure:"color"`
	LogUseCases    bool          `mapstructure:"logUseCases"`
	LogFormat      string        `mapstructure:"logFormat"`
	History        HistoryConfig `mapstructure:"history"`
}

// HistoryConfig contains history view configuration
type HistoryConfig struct {
	Days   int `mapstructure:"days"`
	Window int `mapstructure:"window"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"data":       "data",
	"entries":    "entries",
	"cutoff":     "cutoffMinutes",
	"timezone":   "timezone",
	"tolerance":  "exactTolerance",
	"color":      "color",
	"log":        "logUseCases",
	"log-format": "logFormat",
	"days":       "history.days",
	"window":     "history.window",
}

// configFiles are searched in order in the working directory.
var configFiles = []string{".portions.yaml", ".portions.yml", ".portions.json"}

// Load reads configuration from defaults, an optional config file, PORTIONS_*
// environment variables and flags, in increasing precedence. An explicit
// path must exist; otherwise the first of configFiles found is used.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		for _, candidate := range configFiles {
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			v.SetConfigFile(candidate)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", candidate, err)
			}
			break
		}
	}

	v.SetEnvPrefix("PORTIONS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Data = expandHome(cfg.Data)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// bindFlags binds whichever known flags are present in flags.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data", filepath.Join("~", ".portions", "dataset.yaml"))
	v.SetDefault("entries", []string{})
	v.SetDefault("cutoffMinutes", 0)
	v.SetDefault("timezone", "Local")
	v.SetDefault("exactTolerance", domain.DefaultExactTolerance)
	v.SetDefault("color", "auto")
	v.SetDefault("logUseCases", false)
	v.SetDefault("logFormat", "text")
	v.SetDefault("history.days", 30)
	v.SetDefault("history.window", 7)
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.CutoffMinutes < 0 || cfg.CutoffMinutes > daybound.MaxCutoffMinutes {
		return fmt.Errorf("cutoffMinutes must be between 0 and %d, got %d", daybound.MaxCutoffMinutes, cfg.CutoffMinutes)
	}
	if cfg.ExactTolerance < 0 {
		return fmt.Errorf("exactTolerance must be >= 0, got %v", cfg.ExactTolerance)
	}
	if _, err := cfg.Location(); err != nil {
		return err
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color: %s. Must be 'auto', 'always', or 'never'", cfg.Color)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logFormat: %s. Must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.History.Days < 1 {
		return fmt.Errorf("history.days must be at least 1")
	}
	if cfg.History.Window < 1 {
		return fmt.Errorf("history.window must be at least 1")
	}
	if cfg.Data == "" {
		return fmt.Errorf("data file is required")
	}
	return nil
}

// Location resolves the evaluation timezone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
