package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/opsfin/invoice-engine/constants"
	"github.com/opsfin/invoice-engine/gen/ent"
	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/entity"
	"github.com/opsfin/invoice-engine/internal/extract"
	"github.com/opsfin/invoice-engine/internal/reconcile"
	"github.com/opsfin/invoice-engine/internal/utils"
)

// RecordRequest wraps everything the recorder persists for one attempt.
type RecordRequest struct {
	Supplier   *entity.Supplier
	Template   *entity.SupplierTemplate
	Extraction extract.Result
	Outcome    reconcile.Outcome
}

// OutcomeRecorder persists the invoice, its lines, and the processing run as
// one atomic unit. Readers never observe a partially-written invoice.
type OutcomeRecorder interface {
	Record(ctx context.Context, req *RecordRequest) (*entity.Invoice, *entity.ProcessingRun, error)
}

type outcomeRecorder struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOutcomeRecorder(client *ent.Client, logger *slog.Logger) OutcomeRecorder {
	return &outcomeRecorder{client: client, logger: logger}
}

func (r *outcomeRecorder) Record(ctx context.Context, req *RecordRequest) (*entity.Invoice, *entity.ProcessingRun, error) {
	var (
		inv   *ent.Invoice
		lines []*ent.InvoiceLine
		run   *ent.ProcessingRun
	)
	ext := req.Extraction

	err := WithTx(ctx, r.client, func(tx *ent.Tx) error {
		var err error
		inv, err = tx.Invoice.Create().
			SetSupplierID(req.Supplier.ID).
			SetExternalReference(ext.ExternalReference).
			SetTotalNet(money(ext.Net)).
			SetTotalTax(money(ext.Tax)).
			SetTotalGross(money(ext.Gross)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create invoice: %w", err)
		}

		if len(ext.Lines) > 0 {
			bulk := make([]*ent.InvoiceLineCreate, len(ext.Lines))
			for i, l := range ext.Lines {
				bulk[i] = tx.InvoiceLine.Create().
					SetInvoiceID(inv.ID).
					SetDescription(l.Description).
					SetQuantity(money(l.Quantity)).
					SetUnitPrice(money(l.UnitPrice)).
					SetLineTotal(money(l.LineTotal))
			}
			lines, err = tx.InvoiceLine.CreateBulk(bulk...).Save(ctx)
			if err != nil {
				return fmt.Errorf("create invoice lines: %w", err)
			}
		}

		builder := tx.ProcessingRun.Create().
			SetInvoiceID(inv.ID).
			SetEngineVersion(constants.EngineVersion).
			SetStatus(string(req.Outcome.Status)).
			SetNotes(req.Outcome.Notes)
		if req.Template != nil {
			builder = builder.SetTemplateID(req.Template.ID)
		}
		run, err = builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("create processing run: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("outcome record failed",
			"supplier_id", req.Supplier.ID,
			"external_reference", ext.ExternalReference,
			"error", err,
		)
		return nil, nil, fmt.Errorf("%w: %v", common.ErrPersistenceFailed, err)
	}

	result := utils.ToInvoice(inv)
	result.Lines = make([]entity.InvoiceLine, len(lines))
	for i, l := range lines {
		result.Lines[i] = *utils.ToInvoiceLine(l)
	}
	r.logger.Info("outcome recorded",
		"invoice_id", inv.ID,
		"supplier_id", req.Supplier.ID,
		"lines", len(lines),
		"status", run.Status,
	)
	return result, utils.ToProcessingRun(run), nil
}

// money rounds to the 2dp the numeric columns hold. Arithmetic stays exact
// upstream; rounding happens only at the persistence boundary.
func money(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
