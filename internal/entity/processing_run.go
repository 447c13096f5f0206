package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/opsfin/invoice-engine/constants"
)

// ProcessingRun is the audit record of one extraction attempt. It is a log
// entry; rows are never updated after creation.
type ProcessingRun struct {
	ID            uuid.UUID           `json:"id"`
	InvoiceID     uuid.UUID           `json:"invoice_id"`
	EngineVersion string              `json:"engine_version"`
	TemplateID    *uuid.UUID          `json:"template_id,omitempty"`
	Status        constants.RunStatus `json:"status"`
	Notes         string              `json:"notes,omitempty"`
	CompletedAt   time.Time           `json:"completed_at"`
}
