package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opsfin/invoice-engine/gen/ent"
	"github.com/opsfin/invoice-engine/gen/ent/invoice"
	"github.com/opsfin/invoice-engine/gen/ent/processingrun"
	"github.com/opsfin/invoice-engine/internal/entity"
	"github.com/opsfin/invoice-engine/internal/utils"
)

type InvoiceRepository interface {
	// GetByID loads an invoice with its lines.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	List(ctx context.Context, supplierID *uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Invoice, error)
	// ListRuns returns the processing runs for an invoice, newest first.
	ListRuns(ctx context.Context, invoiceID uuid.UUID) ([]*entity.ProcessingRun, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{client: client, logger: logger}
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Query().
		Where(invoice.ID(id)).
		WithLines().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) List(ctx context.Context, supplierID *uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query()
	if supplierID != nil {
		q = q.Where(invoice.SupplierID(*supplierID))
	}
	if fromDate != nil {
		q = q.Where(invoice.CreatedAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(invoice.CreatedAtLTE(*toDate))
	}
	rows, err := q.Order(invoice.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, err
	}
	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInvoice(row)
	}
	return result, nil
}

func (r *invoiceRepository) ListRuns(ctx context.Context, invoiceID uuid.UUID) ([]*entity.ProcessingRun, error) {
	rows, err := r.client.ProcessingRun.Query().
		Where(processingrun.InvoiceID(invoiceID)).
		Order(ent.Desc(processingrun.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.ProcessingRun, len(rows))
	for i, row := range rows {
		result[i] = utils.ToProcessingRun(row)
	}
	return result, nil
}
