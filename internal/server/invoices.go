package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	invoicespb "github.com/opsfin/invoice-engine/gen/proto/invoices/v1"
	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/export"
	"github.com/opsfin/invoice-engine/internal/repository"
	"github.com/opsfin/invoice-engine/internal/utils"
)

type InvoiceServer struct {
	invoicespb.UnimplementedInvoicesServiceServer
	repo     repository.InvoiceRepository
	exporter *export.Service
	logger   *slog.Logger
}

func NewInvoiceServer(repo repository.InvoiceRepository, exporter *export.Service, logger *slog.Logger) *InvoiceServer {
	return &InvoiceServer{repo: repo, exporter: exporter, logger: logger}
}

// ListInvoices lists invoices, optionally filtered by supplier and processed
// date window.
func (s *InvoiceServer) ListInvoices(ctx context.Context, req *invoicespb.ListInvoicesRequest) (*invoicespb.ListInvoicesResponse, error) {
	supplierID, from, to, err := parseInvoiceFilter(req.GetSupplierId(), req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	list, err := s.repo.List(ctx, supplierID, from, to)
	if err != nil {
		s.logger.Warn("list invoices failed", "error", err)
		return nil, common.InternalError("list invoices failed")
	}

	out := make([]*invoicespb.Invoice, 0, len(list))
	for _, inv := range list {
		out = append(out, utils.ToPBInvoice(inv))
	}
	return &invoicespb.ListInvoicesResponse{Invoices: out}, nil
}

// GetInvoice loads one invoice with its lines and processing history.
func (s *InvoiceServer) GetInvoice(ctx context.Context, req *invoicespb.GetInvoiceRequest) (*invoicespb.GetInvoiceResponse, error) {
	invoiceID, err := uuid.Parse(req.GetInvoiceId())
	if err != nil {
		return nil, common.InvalidArgumentError("invoice_id must be a UUID")
	}

	inv, err := s.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, common.NotFoundError("invoice not found")
	}

	runs, err := s.repo.ListRuns(ctx, invoiceID)
	if err != nil {
		s.logger.Warn("list runs failed", "invoice_id", invoiceID, "error", err)
		return nil, common.InternalError("list runs failed")
	}

	pbRuns := make([]*invoicespb.ProcessingRun, 0, len(runs))
	for _, r := range runs {
		pbRuns = append(pbRuns, utils.ToPBProcessingRun(r))
	}
	return &invoicespb.GetInvoiceResponse{
		Invoice: utils.ToPBInvoice(inv),
		Runs:    pbRuns,
	}, nil
}

// ExportInvoices renders the filtered invoices into an XLSX workbook.
func (s *InvoiceServer) ExportInvoices(ctx context.Context, req *invoicespb.ExportInvoicesRequest) (*invoicespb.ExportInvoicesResponse, error) {
	supplierID, from, to, err := parseInvoiceFilter(req.GetSupplierId(), req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportInvoicesXLSX(ctx, supplierID, from, to)
	if err != nil {
		s.logger.Warn("export invoices failed", "error", err)
		return nil, common.InternalError("export invoices failed")
	}
	return &invoicespb.ExportInvoicesResponse{Xlsx: xlsx}, nil
}

func parseInvoiceFilter(supplier, fromDate, toDate string) (*uuid.UUID, *time.Time, *time.Time, error) {
	var supplierID *uuid.UUID
	if supplier != "" {
		id, err := uuid.Parse(supplier)
		if err != nil {
			return nil, nil, nil, common.InvalidArgumentError("supplier_id must be a UUID")
		}
		supplierID = &id
	}

	parseDate := func(s string) (*time.Time, error) {
		if s == "" {
			return nil, nil
		}
		t, err := utils.ParseYMD(s)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("invalid date %q", s)
		}
		return &t, nil
	}

	from, err := parseDate(fromDate)
	if err != nil {
		return nil, nil, nil, err
	}
	to, err := parseDate(toDate)
	if err != nil {
		return nil, nil, nil, err
	}
	return supplierID, from, to, nil
}
