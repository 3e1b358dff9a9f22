package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds runtime settings for the ordercli program.
type Config struct {
	DataDir          string
	UsersFile        string
	TransactionsFile string
	LogFile          string
	LogLevel         string
}

// LoadDefaults populates c with the file names the program has always used.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.UsersFile = "users.txt"
	c.TransactionsFile = "transactions.txt"
	c.LogFile = "logs.txt"
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and the process command line, in that order.
func LoadConfig(ctx context.Context) (*Config, error) {
	lookuper, err := envLookuper(".env")
	if err != nil {
		return nil, err
	}
	return load(ctx, os.Args[1:], lookuper)
}

func load(ctx context.Context, args []string, lookuper envLookup) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(ctx, cfg, lookuper); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) UsersPath() string {
	return c.resolve(c.UsersFile)
}

func (c *Config) TransactionsPath() string {
	return c.resolve(c.TransactionsFile)
}

func (c *Config) LogPath() string {
	return c.resolve(c.LogFile)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

func (c *Config) String() string {
	return fmt.Sprintf("data_dir=%s users=%s transactions=%s log=%s level=%s",
		c.DataDir, c.UsersFile, c.TransactionsFile, c.LogFile, c.LogLevel)
}
