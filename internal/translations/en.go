package translations

// GetEnglishTranslations returns all English text strings
func GetEnglishTranslations() Translations {
	return Translations{
		FetchFailed: "Could not fetch the prices or the page structure has changed.",

		District:     "District",
		DistrictID:   "ID",
		Fuel95:       "Unleaded 95",
		Diesel:       "Diesel",
		Autogas:      "Autogas",
		WithTax:      "incl. tax",
		WithoutTax:   "excl. tax",
		NotAvailable: "N/A",

		CheckingPrices:   "Checking fuel prices at",
		DistrictsFound:   "districts found",
		MissingPrices:    "Districts with missing prices:",
		NoMissingPrices:  "No missing prices.",
		NoDistrictsFound: "No districts found on the page.",
	}
}
