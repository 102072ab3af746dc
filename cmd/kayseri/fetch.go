package main

import (
	"fmt"

	"github.com/fuelwatch/kayseri/internal/translations"
	"github.com/fuelwatch/kayseri/pkg/api"
	"github.com/urfave/cli/v2"
)

func fetchCommand() *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Fetch the current prices and print them",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (table, json)",
				Value:   "table",
			},
		},
		Action: fetchAction,
	}
}

func fetchAction(c *cli.Context) error {
	format := c.String("format")
	if format != "table" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	logger := newLogger(c)
	report, err := api.NewFuelPriceAPI(api.WithLogger(logger.Logger)).FetchPrices(c.Context)
	if err != nil {
		return fmt.Errorf("error fetching prices: %w", err)
	}

	if format == "json" {
		return printJSON(c.App.Writer, report)
	}

	return printReportTable(c.App.Writer, report, translations.Get(c.String("lang")))
}
