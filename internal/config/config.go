// Package config loads runtime settings from flags, environment and an
// optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all runtime settings.
type Config struct {
	Addr      string   `mapstructure:"addr"`
	Databases []string `mapstructure:"databases"`
	Platform  string   `mapstructure:"platform"`
	Watch     bool     `mapstructure:"watch"`
	NoReader  bool     `mapstructure:"no-reader"`
	NoTray    bool     `mapstructure:"no-tray"`
}

// DefaultPlatform returns the SDL platform tag of the current OS, the
// value mapping lines carry in their platform field.
func DefaultPlatform() string {
	switch runtime.GOOS {
	case "windows":
		return "Windows"
	case "darwin":
		return "Mac OS X"
	case "android":
		return "Android"
	case "ios":
		return "iOS"
	default:
		return "Linux"
	}
}

// Load parses args (without the program name) and merges them with the
// environment and an optional config file.
func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("controllermapdb", pflag.ContinueOnError)
	flags.String("addr", ":8080", "HTTP listen address")
	flags.StringSlice("db", nil, "mapping database file (repeatable)")
	flags.String("platform", DefaultPlatform(), "platform tag to filter mappings by")
	flags.Bool("watch", true, "reload database files when they change")
	flags.Bool("no-reader", false, "disable the SDL joystick reader")
	flags.Bool("no-tray", false, "disable the system tray icon")
	configFile := flags.String("config", "", "config file path")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("platform", DefaultPlatform())
	v.SetDefault("watch", true)

	if err := v.BindPFlag("addr", flags.Lookup("addr")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("databases", flags.Lookup("db")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("platform", flags.Lookup("platform")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("watch", flags.Lookup("watch")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("no-reader", flags.Lookup("no-reader")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("no-tray", flags.Lookup("no-tray")); err != nil {
		return nil, err
	}

	v.SetEnvPrefix("CONTROLLERMAPDB")
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	} else {
		v.SetConfigName("controllermapdb")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(cfg.Databases) == 0 {
		return nil, fmt.Errorf("config: no mapping database files given (use --db)")
	}
	return &cfg, nil
}
