package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings are the runtime knobs read from the environment (and an
// optional .env file in the working directory).
type Settings struct {
	Deck         string `env:"ILD_DECK" envDefault:"traits"`
	Navigation   string `env:"ILD_NAVIGATION"`
	WindowWidth  int    `env:"ILD_WINDOW_WIDTH" envDefault:"1024"`
	WindowHeight int    `env:"ILD_WINDOW_HEIGHT" envDefault:"640"`
	Sound        bool   `env:"ILD_SOUND" envDefault:"false"`
	ChimeFile    string `env:"ILD_CHIME_FILE"`
	ConfirmExit  bool   `env:"ILD_CONFIRM_EXIT" envDefault:"true"`
	Seed         uint64 `env:"ILD_SEED" envDefault:"0"`
}

// Load reads .env (if present) and parses Settings from the environment.
func Load() (Settings, error) {
	_ = godotenv.Load()

	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (s Settings) Validate() error {
	var errs []error
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", s.WindowWidth, s.WindowHeight))
	}
	if strings.TrimSpace(s.Deck) == "" {
		errs = append(errs, errors.New("deck name is required"))
	}
	switch strings.ToLower(strings.TrimSpace(s.Navigation)) {
	case "", "clamped", "cyclic":
	default:
		errs = append(errs, fmt.Errorf("navigation must be clamped or cyclic, got %q", s.Navigation))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
