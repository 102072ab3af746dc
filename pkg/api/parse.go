package api

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	tableSelector      = "table.table-prices"
	bodySelector       = "tbody"
	rowSelector        = "tr[class*='price-row']"
	withTaxSelector    = "span.with-tax"
	withoutTaxSelector = "span.without-tax"

	districtIDAttr   = "data-district-id"
	districtNameAttr = "data-district-name"

	// district label, 95 octane, diesel, autogas
	minCellsPerRow = 4
)

var numberPattern = regexp.MustCompile(`[0-9]+(\.[0-9]+)?`)

// ExtractPrices parses a price page and returns one record per district row.
//
// A missing table, table body or price rows yields a *FetchError of kind
// StructureError. Rows with fewer than four cells are skipped, so an empty
// report is a valid result.
func ExtractPrices(r io.Reader) (PriceReport, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &FetchError{Kind: NetworkError, Detail: "error reading response body", Err: err}
	}

	table := doc.Find(tableSelector).First()
	if table.Length() == 0 {
		return nil, structureError("table not found")
	}

	tbody := table.Find(bodySelector).First()
	if tbody.Length() == 0 {
		return nil, structureError("body not found")
	}

	rows := tbody.Find(rowSelector)
	if rows.Length() == 0 {
		return nil, structureError("no rows found")
	}

	report := make(PriceReport, 0, rows.Length())
	rows.Each(func(_ int, row *goquery.Selection) {
		record, ok := parseRow(row)
		if !ok {
			return
		}
		report = append(report, record)
	})

	return report, nil
}

func parseRow(row *goquery.Selection) (DistrictRecord, bool) {
	cells := row.ChildrenFiltered("td")
	if cells.Length() < minCellsPerRow {
		return DistrictRecord{}, false
	}

	return DistrictRecord{
		DistrictID:   strings.TrimSpace(row.AttrOr(districtIDAttr, "")),
		DistrictName: strings.TrimSpace(row.AttrOr(districtNameAttr, "")),
		Fuel95:       ParseCell(cells.Eq(1)),
		Diesel:       ParseCell(cells.Eq(2)),
		Autogas:      ParseCell(cells.Eq(3)),
	}, true
}

// ParseCell reads the with-tax and without-tax prices out of a table cell.
// Only the first matching span of each kind is considered.
func ParseCell(td *goquery.Selection) PriceCell {
	if td == nil {
		return PriceCell{}
	}

	return PriceCell{
		WithTax:    parsePrice(td.Find(withTaxSelector).First()),
		WithoutTax: parsePrice(td.Find(withoutTaxSelector).First()),
	}
}

func parsePrice(el *goquery.Selection) *float64 {
	if el.Length() == 0 {
		return nil
	}

	v, err := parseNumber(el.Text())
	if err != nil {
		return nil
	}

	return &v
}

// parseNumber returns the first number found in s, accepting a comma as the
// decimal separator. Anything around the number, like "TL" or "%KDV", is ignored.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")

	m := numberPattern.FindString(s)
	if m == "" {
		return 0, fmt.Errorf("no number in %q", s)
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, err
	}

	return v, nil
}
