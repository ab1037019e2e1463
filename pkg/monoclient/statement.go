package monoclient

import "time"

// Statement is one transaction from an account statement. Every money field
// arrives as a minor-unit integer and is exposed in major units; Time is the
// transaction instant in UTC.
type Statement struct {
	ID          string   `json:"id"`
	Time        UnixTime `json:"time"`
	Description string   `json:"description"`
	// MCC is the ISO 18245 merchant category code; OriginalMCC is the code
	// as sent by the acquirer before any local remapping.
	MCC         int `json:"mcc"`
	OriginalMCC int `json:"originalMcc"`
	// Hold reports an authorization hold that has not cleared yet.
	Hold bool `json:"hold"`
	// Amount is in the account currency, OperationAmount in the
	// transaction currency.
	Amount          Amount `json:"amount"`
	OperationAmount Amount `json:"operationAmount"`
	CurrencyCode    int    `json:"currencyCode"`
	CommissionRate  Amount `json:"commissionRate"`
	CashbackAmount  Amount `json:"cashbackAmount"`
	// Balance is the account balance after the transaction.
	Balance Amount `json:"balance"`
	// Comment is the sender's transfer note; absent when none was entered.
	Comment *string `json:"comment,omitempty"`
	// ReceiptID is the check.gov.ua receipt number.
	ReceiptID *string `json:"receiptId,omitempty"`
	// InvoiceID accompanies incoming payments to FOP accounts.
	InvoiceID *string `json:"invoiceId,omitempty"`
	// Counterparty details, present on FOP account statements only.
	CounterEDRPOU *string `json:"counterEdrpou,omitempty"`
	CounterIBAN   *string `json:"counterIban,omitempty"`
	CounterName   *string `json:"counterName,omitempty"`
}

// TimeIn returns the transaction instant in the given location.
func (s Statement) TimeIn(loc *time.Location) time.Time {
	return s.Time.In(loc)
}
