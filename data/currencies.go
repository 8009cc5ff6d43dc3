// Package data holds static reference tables shared by the validation layer.
package data

// Currency is one entry of the supported currency table.
type Currency struct {
	Code   string
	Name   string
	Symbol string
}

// CurrencyList is the closed set of currencies an offer may be priced in.
var CurrencyList = []Currency{
	{Code: "USD", Name: "United States Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "CA$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "CN¥"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$"},
	{Code: "EGP", Name: "Egyptian Pound", Symbol: "E£"},
	{Code: "SAR", Name: "Saudi Riyal", Symbol: "SR"},
	{Code: "AED", Name: "UAE Dirham", Symbol: "AED"},
	{Code: "TRY", Name: "Turkish Lira", Symbol: "₺"},
	{Code: "MXN", Name: "Mexican Peso", Symbol: "MX$"},
	{Code: "SEK", Name: "Swedish Krona", Symbol: "kr"},
	{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr"},
	{Code: "PLN", Name: "Polish Zloty", Symbol: "zł"},
	{Code: "ZAR", Name: "South African Rand", Symbol: "R"},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$"},
}

// CurrencyExists reports whether code is in the supported currency table.
func CurrencyExists(code string) bool {
	for _, c := range CurrencyList {
		if c.Code == code {
			return true
		}
	}
	return false
}
