package monoclient

// AccountType is the card product an account belongs to.
type AccountType string

const (
	AccountBlack    AccountType = "black"
	AccountWhite    AccountType = "white"
	AccountPlatinum AccountType = "platinum"
	AccountIron     AccountType = "iron"
	AccountFOP      AccountType = "fop"
	AccountYellow   AccountType = "yellow"
	AccountEAid     AccountType = "eAid"
)

// CashbackType is the reward currency credited to an account.
type CashbackType string

const (
	CashbackNone  CashbackType = "None"
	CashbackUAH   CashbackType = "UAH"
	CashbackMiles CashbackType = "Miles"
)

// Account is one client account. Balance and credit limit arrive as
// minor-unit integers and are exposed in major units.
type Account struct {
	ID string `json:"id"`
	// SendID identifies the account for https://send.monobank.ua/{sendId}.
	SendID       string       `json:"sendId"`
	Balance      Amount       `json:"balance"`
	CreditLimit  Amount       `json:"creditLimit"`
	Type         AccountType  `json:"type"`
	CurrencyCode int          `json:"currencyCode"`
	CashbackType CashbackType `json:"cashbackType,omitempty"`
	// MaskedPan lists masked card numbers; premium accounts may carry
	// more than one.
	MaskedPan []string `json:"maskedPan"`
	IBAN      string   `json:"iban"`
}
