// Package config handles runtime configuration using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	Keyboard KeyboardConfig `mapstructure:"keyboard"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// KeyboardConfig tunes the touch keyboard activation sequence.
type KeyboardConfig struct {
	ProcessName      string `mapstructure:"process_name"`
	ShellProcessName string `mapstructure:"shell_process_name"`

	ShellReadyTimeout time.Duration `mapstructure:"shell_ready_timeout"`

	// SettleDelay is the fixed wait between launching the keyboard service
	// and the first visibility poll. The right value is environment-dependent
	// and a known source of flakiness; tune it per device.
	SettleDelay time.Duration `mapstructure:"settle_delay"`

	VisibilityTimeout  time.Duration `mapstructure:"visibility_timeout"`
	VisibilityInterval time.Duration `mapstructure:"visibility_interval"`

	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
	ConnectInterval time.Duration `mapstructure:"connect_interval"`

	ProcessPollInterval time.Duration `mapstructure:"process_poll_interval"`

	// VisibilityStrategy selects the detection heuristic: "inputpane" asks
	// the shell's input-pane service for the keyboard rectangle, "window"
	// inspects the keyboard's host window.
	VisibilityStrategy string `mapstructure:"visibility_strategy"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Debug   bool   `mapstructure:"debug"`    // Verbose console output
	LogFile string `mapstructure:"log_file"` // Optional additional log sink
}

// Load reads physpanel.yaml from the working directory or the machine config
// directory, applies PHYSPANEL_* environment overrides, and falls back to
// defaults for everything else.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("physpanel")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if programData := os.Getenv("ProgramData"); programData != "" {
		v.AddConfigPath(filepath.Join(programData, "physpanel"))
	}

	v.SetEnvPrefix("PHYSPANEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// No config file is fine; defaults and env cover everything.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("keyboard.process_name", "TabTip.exe")
	v.SetDefault("keyboard.shell_process_name", "explorer.exe")
	v.SetDefault("keyboard.shell_ready_timeout", 30*time.Second)
	v.SetDefault("keyboard.settle_delay", 7*time.Second)
	v.SetDefault("keyboard.visibility_timeout", 10*time.Second)
	v.SetDefault("keyboard.visibility_interval", 250*time.Millisecond)
	v.SetDefault("keyboard.connect_timeout", 10*time.Second)
	v.SetDefault("keyboard.connect_interval", 250*time.Millisecond)
	v.SetDefault("keyboard.process_poll_interval", 500*time.Millisecond)
	v.SetDefault("keyboard.visibility_strategy", "inputpane")
	v.SetDefault("logging.debug", false)
	v.SetDefault("logging.log_file", "")
}
