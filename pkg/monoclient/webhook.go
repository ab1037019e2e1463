package monoclient

// WebhookEvent is the payload the Monobank API pushes to a registered
// webhook URL. Type is "StatementItem" for new transactions.
type WebhookEvent struct {
	Type string           `json:"type"`
	Data WebhookEventData `json:"data"`
}

// WebhookEventData pairs the account a transaction happened on with the
// transaction itself. The wire names differ from the domain names: the
// account id arrives as "account" and the statement as "statementItem".
type WebhookEventData struct {
	AccountID string    `json:"account"`
	Statement Statement `json:"statementItem"`
}
