package monoclient

// ClientInfo describes the token's owner with the accounts and jars the
// token has access to.
type ClientInfo struct {
	// ID matches the id used by send.monobank.ua.
	ID   string `json:"clientId"`
	Name string `json:"name"`
	// WebhookURL is the address statement events are pushed to, empty when
	// no webhook is registered.
	WebhookURL string `json:"webHookUrl"`
	// Permissions is a compact string, one character per granted permission.
	Permissions string    `json:"permissions"`
	Accounts    []Account `json:"accounts"`
	Jars        []Jar     `json:"jars,omitempty"`
}
