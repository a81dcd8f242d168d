package config

import (
	"fmt"
	"strings"

	"github.com/betterhyq/promptt/logger"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, as in PROMPTT_INTERACTIVE.
const EnvPrefix = "PROMPTT"

// Interactive selects how select prompts read input.
type Interactive string

const (
	// InteractiveAuto uses raw key input when stdin is a terminal.
	InteractiveAuto Interactive = "auto"
	// InteractiveAlways requires a terminal and always reads raw keys.
	InteractiveAlways Interactive = "always"
	// InteractiveNever always reads whole lines.
	InteractiveNever Interactive = "never"
)

// ParseInteractive validates an interactive setting. Matching ignores case.
func ParseInteractive(s string) (Interactive, error) {
	switch mode := Interactive(strings.ToLower(strings.TrimSpace(s))); mode {
	case InteractiveAuto, InteractiveAlways, InteractiveNever:
		return mode, nil
	case "":
		return InteractiveAuto, nil
	default:
		return "", fmt.Errorf("invalid interactive mode %q (want auto, always or never)", s)
	}
}

// Settings are the CLI options shared by every command.
type Settings struct {
	Interactive Interactive
	Verbose     bool
	// LogLevel applies when Verbose is set; otherwise nothing is logged.
	LogLevel logger.Level
}

// NewViper returns a viper instance with defaults and environment overrides
// for Settings. Callers bind their flags to it before LoadSettings.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("interactive", string(InteractiveAuto))
	v.SetDefault("verbose", false)
	v.SetDefault("log_level", "debug")

	return v
}

// LoadSettings reads and validates Settings from v.
func LoadSettings(v *viper.Viper) (Settings, error) {
	mode, err := ParseInteractive(v.GetString("interactive"))
	if err != nil {
		return Settings{}, err
	}

	level, err := logger.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Interactive: mode,
		Verbose:     v.GetBool("verbose"),
		LogLevel:    level,
	}, nil
}
