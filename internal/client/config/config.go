package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime settings for the notes CLI.
type Config struct {
	ServerURL   string `env:"SERVER_URL, overwrite"`
	NotesPath   string `env:"NOTES_PATH, overwrite"`
	LoginPath   string `env:"LOGIN_PATH, overwrite"`
	StoragePath string `env:"STORAGE_PATH, overwrite"`

	// MessageTimeout is how long login and session messages stay visible,
	// NoteMessageTimeout the same for failed note actions.
	MessageTimeout      time.Duration `env:"MESSAGE_TIMEOUT, overwrite"`
	NoteMessageTimeout  time.Duration `env:"NOTE_MESSAGE_TIMEOUT, overwrite"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT, overwrite"`
	OnlineCheckInterval time.Duration `env:"ONLINE_CHECK_INTERVAL, overwrite"`

	LogLevel  string `env:"LOG_LEVEL, overwrite"`
	LogFormat string `env:"LOG_FORMAT, overwrite"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:3001"
	c.NotesPath = "/api/notes"
	c.LoginPath = "/api/login"
	c.StoragePath = "noteapp.db"
	c.MessageTimeout = 5 * time.Second
	c.NoteMessageTimeout = time.Second
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 5 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "console"
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server url %q must be an absolute http(s) URL", c.ServerURL)
	}
	if c.StoragePath == "" {
		return errors.New("storage path is empty")
	}
	if c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("online check interval must be positive, got %s", c.OnlineCheckInterval)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

// LoadConfig builds a Config from defaults, the config file, .env, the
// process environment and args (usually os.Args[1:]), later sources taking
// precedence.
func LoadConfig(ctx context.Context, args []string) (*Config, error) {
	return load(ctx, args, envconfig.OsLookuper(), dotEnvFile)
}

func load(ctx context.Context, args []string, env envconfig.Lookuper, dotenv string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(ctx, cfg, env, dotenv); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// exists reports whether path names an existing file.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
