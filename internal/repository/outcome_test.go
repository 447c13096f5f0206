package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsfin/invoice-engine/constants"
	"github.com/opsfin/invoice-engine/gen/ent"
	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/entity"
	"github.com/opsfin/invoice-engine/internal/extract"
	"github.com/opsfin/invoice-engine/internal/reconcile"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleExtraction() extract.Result {
	return extract.Result{
		ExternalReference: "INV-2024-001",
		Lines: []extract.LineItem{
			{Description: "Widget", Quantity: dec("2"), UnitPrice: dec("10.00"), LineTotal: dec("20.00")},
			{Description: "Gadget", Quantity: dec("1"), UnitPrice: dec("5.00"), LineTotal: dec("5.00")},
		},
		Net:   dec("25.00"),
		Tax:   dec("5.00"),
		Gross: dec("30.00"),
	}
}

func TestRecordCommitsInvoiceLinesAndRun(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	logger := testLogger()

	suppliers := NewSupplierRepository(client, logger)
	sup, err := suppliers.Create(ctx, &CreateSupplierRequest{Name: "ACME Ltd"})
	if err != nil {
		t.Fatalf("create supplier: %v", err)
	}

	recorder := NewOutcomeRecorder(client, logger)
	inv, run, err := recorder.Record(ctx, &RecordRequest{
		Supplier:   sup,
		Extraction: sampleExtraction(),
		Outcome:    reconcile.Outcome{Status: constants.RunSuccess},
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	if inv.ExternalReference != "INV-2024-001" {
		t.Errorf("reference = %q", inv.ExternalReference)
	}
	if len(inv.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(inv.Lines))
	}
	if inv.TotalGross == nil || *inv.TotalGross != 30.00 {
		t.Errorf("gross = %v, want 30.00", inv.TotalGross)
	}
	if run.Status != constants.RunSuccess {
		t.Errorf("status = %s", run.Status)
	}
	if run.EngineVersion != constants.EngineVersion {
		t.Errorf("engine version = %q", run.EngineVersion)
	}
	if run.TemplateID != nil {
		t.Errorf("template id = %v, want nil when no template supplied", run.TemplateID)
	}

	// the run must be readable through the invoice repository too
	invoices := NewInvoiceRepository(client, logger)
	runs, err := invoices.ListRuns(ctx, inv.ID)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
}

func TestRecordRoundsAmountsAtBoundary(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	logger := testLogger()

	suppliers := NewSupplierRepository(client, logger)
	sup, err := suppliers.Create(ctx, &CreateSupplierRequest{Name: "ACME Ltd"})
	if err != nil {
		t.Fatalf("create supplier: %v", err)
	}

	ext := extract.Result{
		ExternalReference: "INV-ROUND",
		Lines: []extract.LineItem{
			{Description: "Odd", Quantity: dec("3"), UnitPrice: dec("0.333"), LineTotal: dec("0.999")},
		},
		Net:   dec("0.999"),
		Tax:   dec("0.1998"),
		Gross: dec("1.1988"),
	}

	recorder := NewOutcomeRecorder(client, logger)
	inv, _, err := recorder.Record(ctx, &RecordRequest{
		Supplier:   sup,
		Extraction: ext,
		Outcome:    reconcile.Outcome{Status: constants.RunSuccess},
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if inv.TotalNet == nil || *inv.TotalNet != 1.00 {
		t.Errorf("net = %v, want 1.00 after rounding", inv.TotalNet)
	}
	if inv.TotalGross == nil || *inv.TotalGross != 1.20 {
		t.Errorf("gross = %v, want 1.20 after rounding", inv.TotalGross)
	}
}

func TestRecordFailureLeavesNothingBehind(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	logger := testLogger()

	// no supplier row: the invoice insert violates the FK and the whole
	// transaction must roll back
	recorder := NewOutcomeRecorder(client, logger)
	_, _, err := recorder.Record(ctx, &RecordRequest{
		Supplier:   &entity.Supplier{ID: uuid.New(), Name: "Ghost Ltd"},
		Extraction: sampleExtraction(),
		Outcome:    reconcile.Outcome{Status: constants.RunSuccess},
	})
	if !errors.Is(err, common.ErrPersistenceFailed) {
		t.Fatalf("err = %v, want ErrPersistenceFailed", err)
	}

	n, err := client.Invoice.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("invoices = %d, want 0 after rollback", n)
	}
	if n, _ := client.ProcessingRun.Query().Count(ctx); n != 0 {
		t.Errorf("runs = %d, want 0 after rollback", n)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	sentinel := errors.New("boom")
	err := WithTx(ctx, client, func(tx *ent.Tx) error {
		if _, err := tx.Supplier.Create().SetName("Ghost Ltd").Save(ctx); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want sentinel", err)
	}

	n, err := client.Supplier.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("suppliers = %d, want 0 after rollback", n)
	}
}
