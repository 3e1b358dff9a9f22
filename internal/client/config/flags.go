package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/ordercli/internal/flagx"
)

var flagNames = []string{"d", "u", "t", "l", "log-level"}

// parseFlags populates Config fields from command-line flags. Only the
// flags listed in flagNames are considered; -c/-config belongs to parseJson.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("ordercli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory holding the data files")
	fs.StringVar(&cfg.UsersFile, "u", cfg.UsersFile, "account file name")
	fs.StringVar(&cfg.TransactionsFile, "t", cfg.TransactionsFile, "transaction file name")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "operational log file name")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(flagx.FilterArgs(args, flagNames)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
