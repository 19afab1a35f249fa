package models

// CartItem is a single line of a checkout request. It is never persisted as-is;
// the checkout handler turns it into an OrderItem priced from the catalog.
type CartItem struct {
	Slug     string `json:"slug" binding:"required"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size,omitempty"`
	Color    string `json:"color,omitempty"`
}

// NormalizedQuantity clamps the requested quantity to a minimum of 1.
func (i CartItem) NormalizedQuantity() int {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

type CheckoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type SessionStatusResponse struct {
	ID            string `json:"id"`
	PaymentStatus string `json:"payment_status"`
	Status        string `json:"status"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
}

type StoreDiagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseName     string   `json:"database_name,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
