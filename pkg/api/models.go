package api

// PriceCell holds the tax-inclusive and tax-exclusive price of one fuel.
// A nil field means the value was missing from the page.
type PriceCell struct {
	WithTax    *float64 `json:"with_tax"`
	WithoutTax *float64 `json:"without_tax"`
}

// Empty reports whether both prices are missing.
func (c PriceCell) Empty() bool {
	return c.WithTax == nil && c.WithoutTax == nil
}

// DistrictRecord represents a single row of the price table.
type DistrictRecord struct {
	DistrictID   string    `json:"district_id"`
	DistrictName string    `json:"district_name"`
	Fuel95       PriceCell `json:"fuel_95"`
	Diesel       PriceCell `json:"diesel"`
	Autogas      PriceCell `json:"autogas"`
}

// PriceReport is the list of district records in page order.
type PriceReport []DistrictRecord
