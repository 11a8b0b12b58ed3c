package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Theme preferences accepted by ui.theme.
const (
	ThemeSystem = "system"
	ThemeDark   = "dark"
	ThemeLight  = "light"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig controls the diagnostic log. The terminal belongs to the UI, so
// logs always go to a file.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "whohasphone")
}

func configPath() string {
	if p := os.Getenv("WHOHASPHONE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "whohasphone", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix WHOHASPHONE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(dataDir(), "whohasphone.db"))
	v.SetDefault("log.path", filepath.Join(dataDir(), "whohasphone.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.theme", ThemeSystem)

	v.SetConfigType("toml")
	v.SetConfigFile(configPath())

	v.SetEnvPrefix("WHOHASPHONE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.Theme = NormalizeTheme(c.UI.Theme)
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.theme", NormalizeTheme(cfg.UI.Theme))

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// NormalizeTheme maps unknown values to ThemeSystem.
func NormalizeTheme(s string) string {
	switch t := strings.ToLower(strings.TrimSpace(s)); t {
	case ThemeDark, ThemeLight:
		return t
	default:
		return ThemeSystem
	}
}

// NextTheme cycles system -> dark -> light -> system.
func NextTheme(s string) string {
	switch NormalizeTheme(s) {
	case ThemeSystem:
		return ThemeDark
	case ThemeDark:
		return ThemeLight
	default:
		return ThemeSystem
	}
}
