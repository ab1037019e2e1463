package monoclient

// Jar is a savings jar attached to a client. Goal is nil when no target sum
// has been set.
type Jar struct {
	ID           string  `json:"id"`
	SendID       string  `json:"sendId"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	CurrencyCode int     `json:"currencyCode"`
	Balance      Amount  `json:"balance"`
	Goal         *Amount `json:"goal,omitempty"`
}
