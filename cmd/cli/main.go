package main

import (
	"context"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/dmitrijs2005/blogctl/internal/buildinfo"
	"github.com/dmitrijs2005/blogctl/internal/client/cli"
	"github.com/dmitrijs2005/blogctl/internal/client/config"
	"github.com/dmitrijs2005/blogctl/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).With().Timestamp().Logger()
	logger := logging.NewZerologLogger(zl)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
