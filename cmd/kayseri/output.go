package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fuelwatch/kayseri/internal/translations"
	"github.com/fuelwatch/kayseri/pkg/api"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printReportTable(w io.Writer, report api.PriceReport, text translations.Translations) error {
	tw := newTabWriter(w)
	tw.writef("%s\t%s\t%s\t%s\t%s\n", text.DistrictID, text.District, text.Fuel95, text.Diesel, text.Autogas)
	for i := range report {
		r := &report[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			r.DistrictID,
			r.DistrictName,
			formatCell(r.Fuel95, text),
			formatCell(r.Diesel, text),
			formatCell(r.Autogas, text),
		)
	}
	return tw.finish()
}

// formatCell renders a cell as "with / without".
func formatCell(c api.PriceCell, text translations.Translations) string {
	return formatPrice(c.WithTax, text) + " / " + formatPrice(c.WithoutTax, text)
}

func formatPrice(v *float64, text translations.Translations) string {
	if v == nil {
		return text.NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

// missingPrices lists the labels of every price absent from r.
func missingPrices(r *api.DistrictRecord, text translations.Translations) []string {
	var missing []string
	fuels := []struct {
		name string
		cell api.PriceCell
	}{
		{text.Fuel95, r.Fuel95},
		{text.Diesel, r.Diesel},
		{text.Autogas, r.Autogas},
	}
	for _, f := range fuels {
		if f.cell.WithTax == nil {
			missing = append(missing, f.name+" ("+text.WithTax+")")
		}
		if f.cell.WithoutTax == nil {
			missing = append(missing, f.name+" ("+text.WithoutTax+")")
		}
	}
	return missing
}
