package axonaut

import "github.com/shopspring/decimal"

// Invoice is an Axonaut invoice as returned by GET /invoices. Source data is
// read-only: this tool never writes back to Axonaut.
type Invoice struct {
	ID              int             `json:"id"`
	Number          string          `json:"number"`
	AmountTTC       decimal.Decimal `json:"amount_ttc"`
	AmountHT        decimal.Decimal `json:"amount_ht"`
	Date            string          `json:"date"`
	DueDate         string          `json:"due_date"`
	Status          string          `json:"status"`
	ClientReference string          `json:"client_reference"`
}

// Payment is an Axonaut payment. InvoiceID references an Invoice.ID but is
// not validated here.
type Payment struct {
	ID        int             `json:"id"`
	Reference string          `json:"reference"`
	InvoiceID int             `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Nature    string          `json:"nature"`
}
