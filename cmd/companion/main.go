package main

import (
	"context"
	"log"

	"github.com/duckycart/companion/internal/client/cli"
	"github.com/duckycart/companion/internal/client/config"
	"github.com/duckycart/companion/internal/logging"
)

func main() {

	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
