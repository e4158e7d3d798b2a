package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Host          string `env:"HOST" envDefault:"127.0.0.1"`
	Port          int    `env:"PORT" envDefault:"5000"`
	StuntsPath    string `env:"STUNTS_PATH" envDefault:"data/stunts.xlsx"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigin string `env:"CORS_ORIGIN"`
}

// Addr is the listen address for http.Server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Level converts LogLevel for slog. Unknown values fall back to info.
func (c Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}

// ParseFlags loads .env, then the environment, then CLI flags; later
// sources override earlier ones.
func ParseFlags(args []string) (Config, error) {
	// A missing .env is fine; existing env vars win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	flags := flag.NewFlagSet("age-toolbox", flag.ContinueOnError)

	// Defaults come from the environment so flags override env
	flags.StringVar(&cfg.Host, "host", cfg.Host, "Listen host")
	flags.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	flags.StringVar(&cfg.StuntsPath, "d", cfg.StuntsPath, "Stunt workbook path (.xlsx)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.AllowedOrigin, "cors-origin", cfg.AllowedOrigin, "Allowed CORS origin (empty reflects the request)")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if strings.TrimSpace(c.StuntsPath) == "" {
		return errors.New("stunt workbook path required (use -d or STUNTS_PATH env)")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
