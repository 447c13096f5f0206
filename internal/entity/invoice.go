package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invoice is the extracted document header for data transfer between layers.
type Invoice struct {
	ID                uuid.UUID     `json:"id"`
	SupplierID        uuid.UUID     `json:"supplier_id"`
	ExternalReference string        `json:"external_reference"`
	InvoiceDate       *time.Time    `json:"invoice_date,omitempty"`
	TotalNet          *float64      `json:"total_net,omitempty"`
	TotalTax          *float64      `json:"total_tax,omitempty"`
	TotalGross        *float64      `json:"total_gross,omitempty"`
	CurrencyCode      string        `json:"currency_code"`
	CreatedAt         time.Time     `json:"created_at"`
	Lines             []InvoiceLine `json:"lines,omitempty"`
}

// InvoiceLine is one extracted line item, owned by its invoice.
type InvoiceLine struct {
	ID          uuid.UUID `json:"id"`
	InvoiceID   uuid.UUID `json:"invoice_id"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	LineTotal   float64   `json:"line_total"`
}
