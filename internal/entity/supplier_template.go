package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/opsfin/invoice-engine/internal/rules"
)

// SupplierTemplate is one immutable version of a supplier's extraction rules.
type SupplierTemplate struct {
	ID         uuid.UUID    `json:"id"`
	SupplierID uuid.UUID    `json:"supplier_id"`
	Version    int          `json:"version"`
	Rules      rules.Bundle `json:"rules"`
	Active     bool         `json:"active"`
	ApprovedBy *string      `json:"approved_by,omitempty"`
	ApprovedAt *time.Time   `json:"approved_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}
