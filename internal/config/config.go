// Package config handles viewer configuration loading and management.
package config

import "time"

// Default texture sources: the planet maps published with three.js examples.
const (
	defaultTextureBase = "https://raw.githubusercontent.com/mrdoob/three.js/master/examples/textures/planets/"

	DefaultDaySource      = defaultTextureBase + "earth_atmos_2048.jpg"
	DefaultSpecularSource = defaultTextureBase + "earth_specular_2048.jpg"
	DefaultNormalSource   = defaultTextureBase + "earth_normal_2048.jpg"
	DefaultCloudsSource   = defaultTextureBase + "earth_clouds_1024.png"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Assets  AssetsConfig  `yaml:"assets"`
	Debug   DebugConfig   `yaml:"debug"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display and surface settings.
type WindowConfig struct {
	Title         string  `yaml:"title"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	MSAA          int     `yaml:"msaa"`            // Samples, 0 disables
	MaxPixelRatio float32 `yaml:"max_pixel_ratio"` // Caps drawable/window size ratio
}

// AssetsConfig holds texture sources. Each source is an http(s) URL,
// a file:// URL or a local path.
type AssetsConfig struct {
	Day            string        `yaml:"day"`
	Specular       string        `yaml:"specular"`
	Normal         string        `yaml:"normal"`
	Clouds         string        `yaml:"clouds"`
	HTTPTimeout    time.Duration `yaml:"http_timeout"`     // 0 waits forever
	MaxTextureSize int           `yaml:"max_texture_size"` // 0 keeps source size
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	ShowFPS       bool   `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:         "Earth",
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			MSAA:          4,
			MaxPixelRatio: 2,
		},
		Assets: AssetsConfig{
			Day:            DefaultDaySource,
			Specular:       DefaultSpecularSource,
			Normal:         DefaultNormalSource,
			Clouds:         DefaultCloudsSource,
			HTTPTimeout:    0,
			MaxTextureSize: 4096,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
			ShowFPS:       false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
