package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophauth/internal/client/cli"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// flags that take a value; everything else that is not a flag is the command.
var valuedFlags = []string{"-a", "-f", "-t", "-c", "-config", "--config"}

func main() {

	args := os.Args[1:]

	cfg, err := config.LoadConfig(args)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, flagx.Positional(args, valuedFlags)); err != nil {
		if errors.Is(err, cli.ErrUnknownCommand) {
			log.Printf("%v", err)
		}
		stop()
		os.Exit(1)
	}

}
