package entity

// Currency codes accepted by the gateway (ISO 4217 numeric).
const (
	CurrencyEUR = "978"
	CurrencyUSD = "840"
	CurrencyGBP = "826"
	CurrencyCHF = "756"
)

// Payment page language codes.
const (
	LanguageFrench     = "FRA"
	LanguageEnglish    = "GBR"
	LanguageSpanish    = "ESP"
	LanguageItalian    = "ITA"
	LanguageGerman     = "DEU"
	LanguageDutch      = "NLD"
	LanguageSwedish    = "SWE"
	LanguagePortuguese = "PRT"
)
