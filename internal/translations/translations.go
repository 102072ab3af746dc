package translations

// Translations contains all text strings for the application
type Translations struct {
	// API
	FetchFailed string

	// Report table
	District     string
	DistrictID   string
	Fuel95       string
	Diesel       string
	Autogas      string
	WithTax      string
	WithoutTax   string
	NotAvailable string

	// Status check
	CheckingPrices   string
	DistrictsFound   string
	MissingPrices    string
	NoMissingPrices  string
	NoDistrictsFound string
}

// Get returns translations for the specified language
func Get(lang string) Translations {
	switch Language(lang) {
	case "en":
		return GetEnglishTranslations()
	default:
		return GetTurkishTranslations()
	}
}

// Language normalizes a language name, defaults to Turkish
func Language(lang string) string {
	switch lang {
	case "en", "english":
		return "en"
	default:
		return "tr"
	}
}
