package entity

import (
	"time"

	"github.com/google/uuid"
)

// Supplier represents a billing counterparty for data transfer between layers.
type Supplier struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	TaxNumber   *string   `json:"tax_number,omitempty"`
	CountryCode string    `json:"country_code"`
	CreatedAt   time.Time `json:"created_at"`
}
