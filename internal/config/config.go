package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// UI modes.
const (
	UIAuto  = "auto"
	UITUI   = "tui"
	UIPlain = "plain"
)

type Config struct {
	DataFile string `yaml:"data_file" mapstructure:"data_file"`
	UI       string `yaml:"ui" mapstructure:"ui"`
	LogFile  string `yaml:"log_file" mapstructure:"log_file"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	Theme    string `yaml:"theme" mapstructure:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		DataFile: "students.json",
		UI:       UIAuto,
		LogLevel: "info",
		Theme:    "green",
	}
}

func configDirs() []string {
	dirs := []string{"."}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "studentdb"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "studentdb"))
	}
	return dirs
}

// Load reads studentdb.yaml from the usual places, or from file when it is
// set, then layers STUDENTDB_* environment variables (including any found
// in a .env file) on top of the defaults.
func Load(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}

	cfg := DefaultConfig()
	v := viper.New()

	v.SetDefault("data_file", cfg.DataFile)
	v.SetDefault("ui", cfg.UI)
	v.SetDefault("log_file", cfg.LogFile)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("theme", cfg.Theme)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("studentdb")
		v.SetConfigType("yaml")
		for _, dir := range configDirs() {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix("STUDENTDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors and fills blanks with
// defaults.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		c.DataFile = "students.json"
	}
	switch c.UI {
	case "":
		c.UI = UIAuto
	case UIAuto, UITUI, UIPlain:
	default:
		return fmt.Errorf("config: ui %q is invalid (must be auto, tui, or plain)", c.UI)
	}
	switch strings.ToLower(c.LogLevel) {
	case "":
		c.LogLevel = "info"
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		return fmt.Errorf("config: log_level %q is invalid", c.LogLevel)
	}
	if c.Theme == "" {
		c.Theme = "green"
	}
	return nil
}
