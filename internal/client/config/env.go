package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type envLookup = envconfig.Lookuper

// EnvConfig is the environment view of Config. Unset variables leave the
// current value untouched.
type EnvConfig struct {
	DataDir          string `env:"ORDERCLI_DATA_DIR"`
	UsersFile        string `env:"ORDERCLI_USERS_FILE"`
	TransactionsFile string `env:"ORDERCLI_TRANSACTIONS_FILE"`
	LogFile          string `env:"ORDERCLI_LOG_FILE"`
	LogLevel         string `env:"ORDERCLI_LOG_LEVEL"`
}

// envLookuper reads the process environment first and the dotenv file
// second. A missing dotenv file is not an error.
func envLookuper(dotenv string) (envLookup, error) {
	vars, err := godotenv.Read(dotenv)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return envconfig.OsLookuper(), nil
		}
		return nil, fmt.Errorf("read %s: %w", dotenv, err)
	}
	return envconfig.MultiLookuper(envconfig.OsLookuper(), envconfig.MapLookuper(vars)), nil
}

func parseEnv(ctx context.Context, cfg *Config, lookuper envLookup) error {
	var ec EnvConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &ec,
		Lookuper: lookuper,
	}); err != nil {
		return fmt.Errorf("process env: %w", err)
	}

	overlay(cfg, ec.DataDir, ec.UsersFile, ec.TransactionsFile, ec.LogFile, ec.LogLevel)
	return nil
}
