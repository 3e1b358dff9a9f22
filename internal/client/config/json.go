package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/ordercli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty
// fields leave the current value untouched.
type JsonConfig struct {
	DataDir          string `json:"data_dir"`
	UsersFile        string `json:"users_file"`
	TransactionsFile string `json:"transactions_file"`
	LogFile          string `json:"log_file"`
	LogLevel         string `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(cfg, jc.DataDir, jc.UsersFile, jc.TransactionsFile, jc.LogFile, jc.LogLevel)
	return nil
}

func overlay(cfg *Config, dataDir, users, transactions, logFile, level string) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.DataDir, dataDir)
	set(&cfg.UsersFile, users)
	set(&cfg.TransactionsFile, transactions)
	set(&cfg.LogFile, logFile)
	set(&cfg.LogLevel, level)
}
