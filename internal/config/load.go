package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ivlev/routemotion/internal/system"
)

const (
	configFileName = "routemotion"
	configFileType = "yaml"
	envPrefix      = "ROUTEMOTION"
)

// Defaults are the values used when neither the config file nor the
// environment set a key.
var defaults = map[string]any{
	"fps":              60,
	"workers":          0,
	"max_duration":     "0s",
	"log_level":        "info",
	"show_stats":       false,
	"stats_log":        "",
	"motion.mode":      ModeSpring,
	"motion.duration":  "500ms",
	"motion.easing":    "ease-in-out-cubic",
	"motion.stiffness": 160.0,
	"motion.damping":   20.0,
	"motion.mass":      1.5,
	"motion.velocity":  10.0,
	"fallback":         "fade",
	"preview.width":    320,
	"preview.height":   180,
}

// Load reads the configuration. An explicit path must exist; without one
// routemotion.yaml is looked up in the working directory and a missing
// file is not an error. ROUTEMOTION_* environment variables override the
// file, e.g. ROUTEMOTION_MOTION_MODE=tween.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = system.DefaultWorkers()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
