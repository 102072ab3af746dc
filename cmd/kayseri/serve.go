package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/fuelwatch/kayseri/internal/server"
	"github.com/fuelwatch/kayseri/pkg/api"
	"github.com/urfave/cli/v2"
)

const defaultPort = 8080

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Address to bind",
				Value: "127.0.0.1",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "HTTP server port",
				Value:   defaultPort,
			},
		},
		Action: serveAction,
	}
}

func serveAction(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(c)
	prices := api.NewFuelPriceAPI(api.WithLogger(logger.Logger))

	return server.New(prices, logger, c.String("lang")).ListenAndServe(ctx, server.Config{
		Addr: c.String("addr"),
		Port: c.Int("port"),
	})
}
