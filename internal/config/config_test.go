package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Window.MaxPixelRatio != 2 {
		t.Errorf("expected max pixel ratio 2, got %v", cfg.Window.MaxPixelRatio)
	}

	if !strings.HasSuffix(cfg.Assets.Day, "earth_atmos_2048.jpg") {
		t.Errorf("unexpected day source %s", cfg.Assets.Day)
	}
	if !strings.HasSuffix(cfg.Assets.Clouds, "earth_clouds_1024.png") {
		t.Errorf("unexpected clouds source %s", cfg.Assets.Clouds)
	}
	if cfg.Assets.HTTPTimeout != 0 {
		t.Errorf("expected no http timeout by default, got %v", cfg.Assets.HTTPTimeout)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  msaa: 8
  max_pixel_ratio: 1.5

assets:
  day: "/srv/textures/day.jpg"
  http_timeout: 30s
  max_texture_size: 2048

debug:
  screenshot_dir: "/tmp/shots"

logging:
  level: "debug"
  log_file: "earth.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Window.MSAA != 8 {
		t.Errorf("expected msaa 8, got %d", cfg.Window.MSAA)
	}
	if cfg.Window.MaxPixelRatio != 1.5 {
		t.Errorf("expected max pixel ratio 1.5, got %v", cfg.Window.MaxPixelRatio)
	}

	if cfg.Assets.Day != "/srv/textures/day.jpg" {
		t.Errorf("expected day override, got %s", cfg.Assets.Day)
	}
	// Untouched sources keep their defaults.
	if cfg.Assets.Specular != DefaultSpecularSource {
		t.Errorf("expected default specular source, got %s", cfg.Assets.Specular)
	}
	if cfg.Assets.HTTPTimeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", cfg.Assets.HTTPTimeout)
	}
	if cfg.Assets.MaxTextureSize != 2048 {
		t.Errorf("expected max texture size 2048, got %d", cfg.Assets.MaxTextureSize)
	}

	if cfg.Debug.ScreenshotDir != "/tmp/shots" {
		t.Errorf("expected screenshot dir /tmp/shots, got %s", cfg.Debug.ScreenshotDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "earth.log" {
		t.Errorf("expected log file 'earth.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
		{"zero pixel ratio", func(c *Config) { c.Window.MaxPixelRatio = 0 }},
		{"negative msaa", func(c *Config) { c.Window.MSAA = -4 }},
		{"no day texture", func(c *Config) { c.Assets.Day = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "assets flag",
			setup: func() { *flagAssetDir = "/opt/earth" },
			verify: func(t *testing.T, cfg *Config) {
				want := filepath.Join("/opt/earth", "earth_normal_2048.jpg")
				if cfg.Assets.Normal != want {
					t.Errorf("expected normal source %s, got %s", want, cfg.Assets.Normal)
				}
			},
			teardown: func() { *flagAssetDir = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Window.Width = 1024
	cfg.Assets.MaxTextureSize = 1024
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Window.Width != 1024 || loaded.Assets.MaxTextureSize != 1024 {
		t.Errorf("saved values not restored: %+v", loaded.Window)
	}
}

func TestSaveWritesDiscoverableConfig(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("config dir is not redirectable on this OS")
	}
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	cfg := Default()
	cfg.Window.MaxPixelRatio = 1.5
	path, err := cfg.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if want := filepath.Join(tmpDir, "xdg", "earthview", "config.yaml"); path != want {
		t.Errorf("Save path = %s, want %s", path, want)
	}
	if found := findConfigFile(); found != path {
		t.Errorf("findConfigFile = %q, want %q", found, path)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Window.MaxPixelRatio != 1.5 {
		t.Errorf("max_pixel_ratio = %v, want 1.5", loaded.Window.MaxPixelRatio)
	}
}

func TestSaveUsesExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	*flagConfig = path
	defer func() { *flagConfig = "" }()

	got, err := Default().Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got != path {
		t.Errorf("Save path = %s, want %s", got, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config not written: %v", err)
	}
}
