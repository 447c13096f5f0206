package export

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/opsfin/invoice-engine/constants"
	"github.com/opsfin/invoice-engine/internal/entity"
)

type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
	runs     map[uuid.UUID][]*entity.ProcessingRun
	listErr  error
	runsErr  error
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeInvoiceRepo) List(context.Context, *uuid.UUID, *time.Time, *time.Time) ([]*entity.Invoice, error) {
	return f.invoices, f.listErr
}

func (f *fakeInvoiceRepo) ListRuns(_ context.Context, id uuid.UUID) ([]*entity.ProcessingRun, error) {
	if f.runsErr != nil {
		return nil, f.runsErr
	}
	return f.runs[id], nil
}

func money(v float64) *float64 { return &v }

func sampleInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:                uuid.New(),
		SupplierID:        uuid.New(),
		ExternalReference: "INV-2024-001",
		TotalNet:          money(30.00),
		TotalTax:          money(6.00),
		TotalGross:        money(36.00),
		CurrencyCode:      constants.DefaultCurrency,
		CreatedAt:         time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func openSheet(t *testing.T, b []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	v, err := f.GetCellValue("Invoices", ref)
	if err != nil {
		t.Fatalf("cell %s: %v", ref, err)
	}
	return v
}

func TestExportWritesLedgerRows(t *testing.T) {
	inv := sampleInvoice()
	repo := &fakeInvoiceRepo{
		invoices: []*entity.Invoice{inv},
		runs: map[uuid.UUID][]*entity.ProcessingRun{
			inv.ID: {{
				ID:        uuid.New(),
				InvoiceID: inv.ID,
				Status:    constants.RunWarning,
				Notes:     "minor gross discrepancy: 0.03",
			}},
		},
	}
	svc := NewService(repo, nil)

	b, err := svc.ExportInvoicesXLSX(context.Background(), nil, nil, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f := openSheet(t, b)
	if got := cell(t, f, "B1"); got != "External Reference" {
		t.Errorf("header B1 = %q", got)
	}
	if got := cell(t, f, "A2"); got != "2024-03-01" {
		t.Errorf("A2 = %q", got)
	}
	if got := cell(t, f, "B2"); got != "INV-2024-001" {
		t.Errorf("B2 = %q", got)
	}
	if got := cell(t, f, "F2"); got != constants.DefaultCurrency {
		t.Errorf("F2 = %q", got)
	}
	if got := cell(t, f, "G2"); got != string(constants.RunWarning) {
		t.Errorf("G2 = %q", got)
	}
	if got := cell(t, f, "H2"); got != "minor gross discrepancy: 0.03" {
		t.Errorf("H2 = %q", got)
	}
}

func TestExportLogsFailedRunLookup(t *testing.T) {
	// a failing runs query must not abort the export, but the blank status
	// cells have to leave a trace in the log
	var logbuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logbuf, nil))

	inv := sampleInvoice()
	repo := &fakeInvoiceRepo{
		invoices: []*entity.Invoice{inv},
		runsErr:  errors.New("db down"),
	}
	svc := NewService(repo, logger)

	b, err := svc.ExportInvoicesXLSX(context.Background(), nil, nil, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f := openSheet(t, b)
	if got := cell(t, f, "G2"); got != "" {
		t.Errorf("G2 = %q, want blank when the run lookup fails", got)
	}
	if !strings.Contains(logbuf.String(), "export.runs.lookup_failed") {
		t.Errorf("log does not record the failed lookup: %s", logbuf.String())
	}
}

func TestExportPropagatesListError(t *testing.T) {
	repo := &fakeInvoiceRepo{listErr: errors.New("db down")}
	svc := NewService(repo, nil)

	if _, err := svc.ExportInvoicesXLSX(context.Background(), nil, nil, nil); err == nil {
		t.Fatal("expected error when the invoice query fails")
	}
}
