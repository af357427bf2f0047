// Package config provides configuration management for focustick.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/averost/focustick/internal/domain"
)

// Config holds all configuration for the focustick application.
type Config struct {
	Languages     []string           `mapstructure:"languages"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StorageConfig holds record-tree settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// ThemeConfig holds the panel and highlight colors.
type ThemeConfig struct {
	ColorBorder    string `mapstructure:"color_border"`
	ColorTimer     string `mapstructure:"color_timer"`
	ColorHighlight string `mapstructure:"color_highlight"`
	ColorPaused    string `mapstructure:"color_paused"`
	ColorExpired   string `mapstructure:"color_expired"`
	ColorHelp      string `mapstructure:"color_help"`
	ColorError     string `mapstructure:"color_error"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorBorder:    "#6B7280",
		ColorTimer:     "#7C6FE0",
		ColorHighlight: "#4ECDC4",
		ColorPaused:    "#6B7280",
		ColorExpired:   "#2ECC71",
		ColorHelp:      "#95A5A6",
		ColorError:     "#E74C3C",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	langs := make([]string, len(domain.DefaultLanguages))
	for i, l := range domain.DefaultLanguages {
		langs[i] = string(l)
	}
	return &Config{
		Languages:     langs,
		Notifications: NotificationConfig{Enabled: true},
		Storage:       StorageConfig{DataDir: "~/.focustick"},
		Theme:         DefaultThemeConfig(),
	}
}

// LanguageTags returns the configured language set as domain tags.
func (c *Config) LanguageTags() []domain.Language {
	tags := make([]domain.Language, 0, len(c.Languages))
	for _, l := range c.Languages {
		if l != "" {
			tags = append(tags, domain.Language(l))
		}
	}
	if len(tags) == 0 {
		return domain.DefaultLanguages
	}
	return tags
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")
	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in the data directory
	if cfg.Storage.DataDir == "~/.focustick" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".focustick")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("languages", cfg.Languages)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)
	viper.Set("theme.color_border", cfg.Theme.ColorBorder)
	viper.Set("theme.color_timer", cfg.Theme.ColorTimer)
	viper.Set("theme.color_highlight", cfg.Theme.ColorHighlight)
	viper.Set("theme.color_paused", cfg.Theme.ColorPaused)
	viper.Set("theme.color_expired", cfg.Theme.ColorExpired)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)
	viper.Set("theme.color_error", cfg.Theme.ColorError)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".focustick", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults() {
	defaults := DefaultConfig()
	viper.SetDefault("languages", defaults.Languages)
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("storage.data_dir", "~/.focustick")

	theme := DefaultThemeConfig()
	viper.SetDefault("theme.color_border", theme.ColorBorder)
	viper.SetDefault("theme.color_timer", theme.ColorTimer)
	viper.SetDefault("theme.color_highlight", theme.ColorHighlight)
	viper.SetDefault("theme.color_paused", theme.ColorPaused)
	viper.SetDefault("theme.color_expired", theme.ColorExpired)
	viper.SetDefault("theme.color_help", theme.ColorHelp)
	viper.SetDefault("theme.color_error", theme.ColorError)
}
