package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/ordercli/internal/buildinfo"
	"github.com/dmitrijs2005/ordercli/internal/client/cli"
	"github.com/dmitrijs2005/ordercli/internal/client/config"
	"github.com/dmitrijs2005/ordercli/internal/filex"
	"github.com/dmitrijs2005/ordercli/internal/flagx"
	"github.com/dmitrijs2005/ordercli/internal/logging"
)

func main() {

	if len(flagx.FilterArgs(os.Args[1:], []string{"version"})) > 0 {
		buildinfo.PrintBuildData(os.Stdout)
		return
	}

	ctx := context.Background()
	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if _, err := filex.EnsureDir(cfg.DataDir); err != nil {
		log.Fatalf("%v", err)
	}

	zl, err := logging.NewFileLogger(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewZapLogger(zl)
	defer logger.Sync()

	logger.Info(ctx, "configuration loaded", "version", buildinfo.Version(), "config", cfg.String())

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
