package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/noteapp/internal/flagx"
	"github.com/dmitrijs2005/noteapp/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the config file, shared by the JSON
// and YAML loaders. Only fields present in the file override the Config.
type FileConfig struct {
	ServerURL           string          `json:"server_url" yaml:"server_url"`
	NotesPath           string          `json:"notes_path" yaml:"notes_path"`
	LoginPath           string          `json:"login_path" yaml:"login_path"`
	StoragePath         string          `json:"storage_path" yaml:"storage_path"`
	MessageTimeout      *timex.Duration `json:"message_timeout" yaml:"message_timeout"`
	NoteMessageTimeout  *timex.Duration `json:"note_message_timeout" yaml:"note_message_timeout"`
	RequestTimeout      *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	LogLevel            string          `json:"log_level" yaml:"log_level"`
	LogFormat           string          `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the file named by -c/-config in args. Without
// such a flag it does nothing.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc FileConfig) apply(cfg *Config) {
	setString(&cfg.ServerURL, fc.ServerURL)
	setString(&cfg.NotesPath, fc.NotesPath)
	setString(&cfg.LoginPath, fc.LoginPath)
	setString(&cfg.StoragePath, fc.StoragePath)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)

	if fc.MessageTimeout != nil {
		cfg.MessageTimeout = fc.MessageTimeout.Duration
	}
	if fc.NoteMessageTimeout != nil {
		cfg.NoteMessageTimeout = fc.NoteMessageTimeout.Duration
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
