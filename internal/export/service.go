package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/opsfin/invoice-engine/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// invoice ledger exports.
type Service struct {
	invoicesRepo repository.InvoiceRepository
	logger       *slog.Logger
}

func NewService(invoicesRepo repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoicesRepo: invoicesRepo, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) for the given
// supplier and date window. A nil supplierID exports every supplier.
// If only from is provided -> from..today (inclusive).
func (s *Service) ExportInvoicesXLSX(ctx context.Context, supplierID *uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		// inclusive upper bound on a timestamp column
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		toDate = &t
	}

	invoices, err := s.invoicesRepo.List(ctx, supplierID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Processed",
		"External Reference",
		"Net",
		"Tax",
		"Gross",
		"Currency",
		"Status",
		"Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		// latest processing run carries the reconciliation verdict
		status, notes := "", ""
		runs, err := s.invoicesRepo.ListRuns(ctx, inv.ID)
		if err != nil {
			// the export still renders, but blank status cells must be traceable
			s.logger.Warn("export.runs.lookup_failed", "invoice_id", inv.ID, "error", err)
		} else if len(runs) > 0 {
			status = string(runs[0].Status)
			notes = runs[0].Notes
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, inv.CreatedAt.UTC().Format("2006-01-02"))
		write(2, inv.ExternalReference)
		write(3, floatOrEmpty(inv.TotalNet))
		write(4, floatOrEmpty(inv.TotalTax))
		write(5, floatOrEmpty(inv.TotalGross))
		write(6, inv.CurrencyCode)
		write(7, status)
		write(8, notes)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 26) // reference
	_ = f.SetColWidth(sheet, "C", "E", 12) // amounts
	_ = f.SetColWidth(sheet, "G", "G", 12) // status
	_ = f.SetColWidth(sheet, "H", "H", 48) // notes

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(invoices),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func floatOrEmpty(p *float64) any {
	if p == nil {
		return ""
	}
	return *p
}
