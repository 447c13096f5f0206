package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	invoicespb "github.com/opsfin/invoice-engine/gen/proto/invoices/v1"
	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/repository"
	"github.com/opsfin/invoice-engine/internal/rules"
	"github.com/opsfin/invoice-engine/internal/utils"
)

type TemplateServer struct {
	invoicespb.UnimplementedTemplatesServiceServer
	repo   repository.TemplateRepository
	logger *slog.Logger
}

func NewTemplateServer(repo repository.TemplateRepository, logger *slog.Logger) *TemplateServer {
	return &TemplateServer{repo: repo, logger: logger}
}

// CreateTemplate stores a draft template version. The rule bundle is parsed
// and validated here so a broken pattern is rejected before it can ever be
// approved.
func (s *TemplateServer) CreateTemplate(ctx context.Context, req *invoicespb.CreateTemplateRequest) (*invoicespb.CreateTemplateResponse, error) {
	supplierID, err := uuid.Parse(req.GetSupplierId())
	if err != nil {
		return nil, common.InvalidArgumentError("supplier_id must be a UUID")
	}
	if req.GetVersion() <= 0 {
		return nil, common.InvalidArgumentError("version must be positive")
	}

	bundle, err := rules.Parse([]byte(req.GetRulesJson()))
	if err != nil {
		return nil, common.InvalidArgumentErrorf("rules_json: %v", err)
	}

	tpl, err := s.repo.Create(ctx, &repository.CreateTemplateRequest{
		SupplierID: supplierID,
		Version:    int(req.GetVersion()),
		Rules:      bundle,
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.InvalidArgumentError(err.Error())
		}
		s.logger.Warn("create template failed",
			"supplier_id", supplierID, "version", req.GetVersion(), "error", err)
		return nil, common.InternalError("create template failed")
	}

	return &invoicespb.CreateTemplateResponse{Template: utils.ToPBTemplate(tpl)}, nil
}

// ApproveTemplate activates a draft template, superseding the supplier's
// previous active version.
func (s *TemplateServer) ApproveTemplate(ctx context.Context, req *invoicespb.ApproveTemplateRequest) (*invoicespb.ApproveTemplateResponse, error) {
	templateID, err := uuid.Parse(req.GetTemplateId())
	if err != nil {
		return nil, common.InvalidArgumentError("template_id must be a UUID")
	}
	if req.GetApprovedBy() == "" {
		return nil, common.InvalidArgumentError("approved_by is required")
	}

	tpl, err := s.repo.Approve(ctx, templateID, req.GetApprovedBy())
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.FailedPreconditionError(err.Error())
		}
		s.logger.Warn("approve template failed", "template_id", templateID, "error", err)
		return nil, common.InternalError("approve template failed")
	}

	return &invoicespb.ApproveTemplateResponse{Template: utils.ToPBTemplate(tpl)}, nil
}

// ListTemplates lists a supplier's template versions, oldest version first.
func (s *TemplateServer) ListTemplates(ctx context.Context, req *invoicespb.ListTemplatesRequest) (*invoicespb.ListTemplatesResponse, error) {
	supplierID, err := uuid.Parse(req.GetSupplierId())
	if err != nil {
		return nil, common.InvalidArgumentError("supplier_id must be a UUID")
	}

	list, err := s.repo.ListBySupplier(ctx, supplierID)
	if err != nil {
		s.logger.Warn("list templates failed", "supplier_id", supplierID, "error", err)
		return nil, common.InternalError("list templates failed")
	}

	out := make([]*invoicespb.SupplierTemplate, 0, len(list))
	for _, tpl := range list {
		out = append(out, utils.ToPBTemplate(tpl))
	}
	return &invoicespb.ListTemplatesResponse{Templates: out}, nil
}
