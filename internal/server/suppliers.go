package server

import (
	"context"
	"log/slog"

	invoicespb "github.com/opsfin/invoice-engine/gen/proto/invoices/v1"
	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/repository"
	"github.com/opsfin/invoice-engine/internal/utils"
)

type SupplierServer struct {
	invoicespb.UnimplementedSuppliersServiceServer
	repo   repository.SupplierRepository
	logger *slog.Logger
}

func NewSupplierServer(repo repository.SupplierRepository, logger *slog.Logger) *SupplierServer {
	return &SupplierServer{repo: repo, logger: logger}
}

// CreateSupplier registers a supplier.
func (s *SupplierServer) CreateSupplier(ctx context.Context, req *invoicespb.CreateSupplierRequest) (*invoicespb.CreateSupplierResponse, error) {
	if req.GetName() == "" {
		return nil, common.InvalidArgumentError("name is required")
	}

	createReq := &repository.CreateSupplierRequest{
		Name:        req.GetName(),
		CountryCode: req.GetCountryCode(),
	}
	if tn := req.GetTaxNumber(); tn != "" {
		createReq.TaxNumber = &tn
	}

	sup, err := s.repo.Create(ctx, createReq)
	if err != nil {
		s.logger.Warn("create supplier failed", "name", req.GetName(), "error", err)
		return nil, common.InternalError("create supplier failed")
	}

	return &invoicespb.CreateSupplierResponse{Supplier: utils.ToPBSupplier(sup)}, nil
}

// ListSuppliers lists all suppliers in registration order.
func (s *SupplierServer) ListSuppliers(ctx context.Context, _ *invoicespb.ListSuppliersRequest) (*invoicespb.ListSuppliersResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("list suppliers failed", "error", err)
		return nil, common.InternalError("list suppliers failed")
	}

	out := make([]*invoicespb.Supplier, 0, len(list))
	for _, sup := range list {
		out = append(out, utils.ToPBSupplier(sup))
	}
	return &invoicespb.ListSuppliersResponse{Suppliers: out}, nil
}
