package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "kayseri",
		Usage: "Scrape Kayseri fuel prices and serve them as JSON",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Log in JSON format",
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "Output language (tr, en)",
				Value: "tr",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			fetchCommand(),
			checkStatusCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(c *cli.Context) *httplog.Logger {
	level := slog.LevelInfo
	if c.Bool("debug") {
		level = slog.LevelDebug
	}

	return httplog.NewLogger("kayseri", httplog.Options{
		JSON:            c.Bool("json"),
		LogLevel:        level,
		Concise:         true,
		QuietDownPeriod: 10 * time.Second,
	})
}
