package translations

// GetTurkishTranslations returns all Turkish text strings
func GetTurkishTranslations() Translations {
	return Translations{
		FetchFailed: "Veriler çekilemedi veya sayfa yapısında değişiklik var.",

		District:     "İlçe",
		DistrictID:   "Kod",
		Fuel95:       "Kurşunsuz 95",
		Diesel:       "Motorin",
		Autogas:      "Otogaz",
		WithTax:      "KDV dahil",
		WithoutTax:   "KDV hariç",
		NotAvailable: "Yok",

		CheckingPrices:   "Akaryakıt fiyatları kontrol ediliyor:",
		DistrictsFound:   "ilçe bulundu",
		MissingPrices:    "Eksik fiyatı olan ilçeler:",
		NoMissingPrices:  "Eksik fiyat yok.",
		NoDistrictsFound: "Sayfada ilçe bulunamadı.",
	}
}
