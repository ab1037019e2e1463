package monoclient

import "github.com/shopspring/decimal"

// Currency is one exchange-rate entry from the public /bank/currency list.
// Codes follow ISO 4217 numeric notation; rates are plain decimal values with
// no unit conversion applied.
type Currency struct {
	CurrencyCodeA int             `json:"currencyCodeA"`
	CurrencyCodeB int             `json:"currencyCodeB"`
	Date          UnixTime        `json:"date"`
	RateSell      decimal.Decimal `json:"rateSell"`
	RateBuy       decimal.Decimal `json:"rateBuy"`
	RateCross     decimal.Decimal `json:"rateCross"`
}
