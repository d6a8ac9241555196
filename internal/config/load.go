package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the renderer cannot work with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.MaxPixelRatio <= 0 {
		return fmt.Errorf("max_pixel_ratio must be positive, got %v", c.Window.MaxPixelRatio)
	}
	if c.Window.MSAA < 0 {
		return fmt.Errorf("msaa must not be negative, got %d", c.Window.MSAA)
	}
	if c.Assets.Day == "" {
		return fmt.Errorf("assets.day must be set")
	}
	return nil
}

// UseDirectory points every texture source at a file with the default
// texture's base name inside dir.
func (a *AssetsConfig) UseDirectory(dir string) {
	a.Day = filepath.Join(dir, path.Base(DefaultDaySource))
	a.Specular = filepath.Join(dir, path.Base(DefaultSpecularSource))
	a.Normal = filepath.Join(dir, path.Base(DefaultNormalSource))
	a.Clouds = filepath.Join(dir, path.Base(DefaultCloudsSource))
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "EarthView")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "EarthView")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "earthview")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "earthview")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, p string) error {
	data, err := os.ReadFile(p)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
