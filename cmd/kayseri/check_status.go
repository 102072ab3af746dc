package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fuelwatch/kayseri/internal/translations"
	"github.com/fuelwatch/kayseri/pkg/api"
	"github.com/urfave/cli/v2"
)

func checkStatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "check-status",
		Usage:  "Check the price page for districts with missing prices",
		Action: checkStatusAction,
	}
}

func checkStatusAction(c *cli.Context) error {
	text := translations.Get(c.String("lang"))
	w := c.App.Writer

	fmt.Fprintln(w, text.CheckingPrices, api.DefaultURL)

	logger := newLogger(c)
	report, err := api.NewFuelPriceAPI(api.WithLogger(logger.Logger)).FetchPrices(c.Context)
	if err != nil {
		return fmt.Errorf("error fetching prices: %w", err)
	}

	return printStatus(w, report, text)
}

func printStatus(w io.Writer, report api.PriceReport, text translations.Translations) error {
	if len(report) == 0 {
		_, err := fmt.Fprintln(w, text.NoDistrictsFound)
		return err
	}

	fmt.Fprintf(w, "%d %s\n", len(report), text.DistrictsFound)

	var lines []string
	for i := range report {
		missing := missingPrices(&report[i], text)
		if len(missing) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s (%s): %s",
			report[i].DistrictName, report[i].DistrictID, strings.Join(missing, ", ")))
	}

	if len(lines) == 0 {
		_, err := fmt.Fprintln(w, text.NoMissingPrices)
		return err
	}

	fmt.Fprintln(w, text.MissingPrices)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
