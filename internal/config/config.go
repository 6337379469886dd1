// Package config provides configuration management for the Pomodoro timer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/xvierd/pomodoro-cli/internal/domain"
)

// HomeEnv overrides the directory holding config.toml.
const HomeEnv = "POMODORO_HOME"

const defaultDataDir = "~/.pomodoro"

// Config holds all configuration for the Pomodoro application.
type Config struct {
	Notifications NotificationConfig `mapstructure:"notifications"`
	MCP           MCPConfig          `mapstructure:"mcp"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Log           LogConfig          `mapstructure:"log"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// Palette is one color scheme.
type Palette struct {
	ColorWork          string `mapstructure:"color_work"`
	ColorBreak         string `mapstructure:"color_break"`
	ColorPaused        string `mapstructure:"color_paused"`
	ColorTitle         string `mapstructure:"color_title"`
	ColorText          string `mapstructure:"color_text"`
	ColorHelp          string `mapstructure:"color_help"`
	WorkGradientStart  string `mapstructure:"work_gradient_start"`
	WorkGradientEnd    string `mapstructure:"work_gradient_end"`
	BreakGradientStart string `mapstructure:"break_gradient_start"`
	BreakGradientEnd   string `mapstructure:"break_gradient_end"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	Dark       Palette `mapstructure:"dark"`
	Light      Palette `mapstructure:"light"`
	IconApp    string  `mapstructure:"icon_app"`
	IconStats  string  `mapstructure:"icon_stats"`
	IconPaused string  `mapstructure:"icon_paused"`
}

// Palette returns the palette for a theme.
func (t ThemeConfig) Palette(theme domain.Theme) Palette {
	if theme == domain.ThemeLight {
		return t.Light
	}
	return t.Dark
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		Dark: Palette{
			ColorWork:          "#FF6B6B",
			ColorBreak:         "#4ECDC4",
			ColorPaused:        "#6B7280",
			ColorTitle:         "#9CA3AF",
			ColorText:          "#F3F4F6",
			ColorHelp:          "#95A5A6",
			WorkGradientStart:  "#FF6B6B",
			WorkGradientEnd:    "#FFA07A",
			BreakGradientStart: "#4ECDC4",
			BreakGradientEnd:   "#2ECC71",
		},
		Light: Palette{
			ColorWork:          "#D7263D",
			ColorBreak:         "#1B998B",
			ColorPaused:        "#9CA3AF",
			ColorTitle:         "#4B5563",
			ColorText:          "#111827",
			ColorHelp:          "#6B7280",
			WorkGradientStart:  "#D7263D",
			WorkGradientEnd:    "#F46036",
			BreakGradientStart: "#1B998B",
			BreakGradientEnd:   "#2E86AB",
		},
		IconApp:    "🍅",
		IconStats:  "📊",
		IconPaused: "⏸",
	}
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// MCPConfig holds MCP server settings.
type MCPConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// LogConfig holds log file settings. An empty File logs next to the database.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		MCP: MCPConfig{
			Enabled: true,
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir,
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from configPath.
func LoadFrom(configPath string) (*Config, error) {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(configPath)

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := SaveTo(configPath, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	dataDir, err := expandHome(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}
	cfg.Storage.DataDir = dataDir

	if cfg.Log.File != "" {
		if cfg.Log.File, err = expandHome(cfg.Log.File); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes cfg to configPath.
func SaveTo(configPath string, cfg *Config) error {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Set all values
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.sound", cfg.Notifications.Sound)
	v.Set("mcp.enabled", cfg.MCP.Enabled)
	v.Set("storage.data_dir", cfg.Storage.DataDir)
	v.Set("log.file", cfg.Log.File)
	v.Set("theme.icon_app", cfg.Theme.IconApp)
	v.Set("theme.icon_stats", cfg.Theme.IconStats)
	v.Set("theme.icon_paused", cfg.Theme.IconPaused)
	setPalette(v, "theme.dark", cfg.Theme.Dark)
	setPalette(v, "theme.light", cfg.Theme.Light)

	return v.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return filepath.Join(dir, "config.toml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pomodoro", "config.toml"), nil
}

// GetDBPath returns the path to the database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "pomodoro.db")
}

// GetLogPath returns the path to the log file.
func GetLogPath(cfg *Config) string {
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	return filepath.Join(cfg.Storage.DataDir, "pomodoro.log")
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	v.SetEnvPrefix("POMODORO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("notifications.enabled", true)
	v.SetDefault("notifications.sound", true)
	v.SetDefault("mcp.enabled", true)
	v.SetDefault("storage.data_dir", defaultDataDir)
	v.SetDefault("log.file", "")

	// Theme defaults
	defaults := DefaultThemeConfig()
	v.SetDefault("theme.icon_app", defaults.IconApp)
	v.SetDefault("theme.icon_stats", defaults.IconStats)
	v.SetDefault("theme.icon_paused", defaults.IconPaused)
	setPaletteDefaults(v, "theme.dark", defaults.Dark)
	setPaletteDefaults(v, "theme.light", defaults.Light)
}

func paletteKeys(prefix string, p Palette) map[string]string {
	return map[string]string{
		prefix + ".color_work":           p.ColorWork,
		prefix + ".color_break":          p.ColorBreak,
		prefix + ".color_paused":         p.ColorPaused,
		prefix + ".color_title":          p.ColorTitle,
		prefix + ".color_text":           p.ColorText,
		prefix + ".color_help":           p.ColorHelp,
		prefix + ".work_gradient_start":  p.WorkGradientStart,
		prefix + ".work_gradient_end":    p.WorkGradientEnd,
		prefix + ".break_gradient_start": p.BreakGradientStart,
		prefix + ".break_gradient_end":   p.BreakGradientEnd,
	}
}

func setPalette(v *viper.Viper, prefix string, p Palette) {
	for k, val := range paletteKeys(prefix, p) {
		v.Set(k, val)
	}
}

func setPaletteDefaults(v *viper.Viper, prefix string, p Palette) {
	for k, val := range paletteKeys(prefix, p) {
		v.SetDefault(k, val)
	}
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" {
		path = defaultDataDir
	}
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
