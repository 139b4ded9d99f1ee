package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/noteapp/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     base URL of the notes server
//	-s string     local storage file
//	-m duration   notification timeout, e.g. 5s
//	-i int        online check interval in seconds
//	-l string     log level
//
// args are filtered with flagx.FilterArgs first, so flags owned by other
// components do not break parsing.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-m", "-i", "-l"})

	fs := flag.NewFlagSet("noteapp", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the notes server")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "path of the local storage file")
	fs.DurationVar(&cfg.MessageTimeout, "m", cfg.MessageTimeout, "how long notifications stay visible")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	// sub-second intervals from the file or env survive unless -i is given
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
	return nil
}
