package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Motion  MotionConfig
	Render  RenderConfig
	Log     LogConfig
	Tracing TracingConfig
}

// UIConfig holds event loop and navigation settings.
type UIConfig struct {
	FPS    int
	Screen string
	Mouse  bool
}

// MotionConfig holds animation clock settings.
type MotionConfig struct {
	// TimeScale stretches every animation; 2 plays at half speed.
	TimeScale float64 `mapstructure:"time_scale"`
}

// RenderConfig maps design units (dp) to terminal cells.
type RenderConfig struct {
	DPPerCol float64 `mapstructure:"dp_per_col"`
	DPPerRow float64 `mapstructure:"dp_per_row"`
}

// LogConfig holds logging settings. An empty File discards log output.
type LogConfig struct {
	File string
}

// TracingConfig holds OTLP export settings. An empty Endpoint disables export.
type TracingConfig struct {
	Endpoint string
	Service  string
}

// Load reads configuration from file and env. Env var overrides use prefix ANIMPLAY_.
// path overrides the config file location; when empty ANIMPLAY_CONFIG is consulted,
// then ~/.config/animplay/config.{toml,yaml,json}.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = os.Getenv("ANIMPLAY_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "animplay"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ANIMPLAY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path that does not exist is an error; a missing default file is not.
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the built-in configuration without reading files or env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.fps", 30)
	v.SetDefault("ui.screen", "crossfade")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("motion.time_scale", 1.0)
	v.SetDefault("render.dp_per_col", 8.0)
	v.SetDefault("render.dp_per_row", 16.0)
	v.SetDefault("log.file", "")
	v.SetDefault("tracing.endpoint", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	v.SetDefault("tracing.service", "animplay")
}

// Validate rejects settings the animation clock or canvas cannot work with.
func (c Config) Validate() error {
	if c.UI.FPS <= 0 || c.UI.FPS > 240 {
		return fmt.Errorf("ui.fps must be in 1..240, got %d", c.UI.FPS)
	}
	if c.Motion.TimeScale <= 0 {
		return fmt.Errorf("motion.time_scale must be positive, got %g", c.Motion.TimeScale)
	}
	if c.Render.DPPerCol <= 0 || c.Render.DPPerRow <= 0 {
		return fmt.Errorf("render.dp_per_col and render.dp_per_row must be positive")
	}
	return nil
}
