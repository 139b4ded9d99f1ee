package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	envPrefix  = "NOTEAPP_"
	dotEnvFile = ".env"
)

// parseEnv overlays cfg with NOTEAPP_* variables. Values from the dotenv file
// are consulted only when the variable is missing from env.
func parseEnv(ctx context.Context, cfg *Config, env envconfig.Lookuper, dotenv string) error {
	lookupers := []envconfig.Lookuper{env}

	if dotenv != "" && exists(dotenv) {
		vars, err := godotenv.Read(dotenv)
		if err != nil {
			return fmt.Errorf("read %s: %w", dotenv, err)
		}
		lookupers = append(lookupers, envconfig.MapLookuper(vars))
	}

	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: envconfig.PrefixLookuper(envPrefix, envconfig.MultiLookuper(lookupers...)),
	})
	if err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}
