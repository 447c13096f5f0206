package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opsfin/invoice-engine/gen/ent"
	"github.com/opsfin/invoice-engine/gen/ent/supplier"
	"github.com/opsfin/invoice-engine/gen/ent/suppliertemplate"
	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/entity"
	"github.com/opsfin/invoice-engine/internal/match"
	"github.com/opsfin/invoice-engine/internal/rules"
	"github.com/opsfin/invoice-engine/internal/utils"
)

// CreateTemplateRequest wraps parameters for creating a draft template.
type CreateTemplateRequest struct {
	SupplierID uuid.UUID
	Version    int
	Rules      rules.Bundle
}

type TemplateRepository interface {
	// Create stores a new template version in draft (inactive) state. The
	// rule bundle is validated here so malformed patterns fail at creation,
	// not at match time.
	Create(ctx context.Context, req *CreateTemplateRequest) (*entity.SupplierTemplate, error)
	// Approve activates the template, deactivating the supplier's previous
	// active version in the same transaction. A template is approved once.
	Approve(ctx context.Context, id uuid.UUID, approvedBy string) (*entity.SupplierTemplate, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.SupplierTemplate, error)
	// ListActiveCandidates returns each supplier's active template, ordered
	// by supplier created_at then id. This is the matcher's scan order.
	ListActiveCandidates(ctx context.Context) ([]match.Candidate, error)
}

type templateRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTemplateRepository(client *ent.Client, logger *slog.Logger) TemplateRepository {
	return &templateRepository{client: client, logger: logger}
}

func (r *templateRepository) Create(ctx context.Context, req *CreateTemplateRequest) (*entity.SupplierTemplate, error) {
	if err := req.Rules.Complete(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	row, err := r.client.SupplierTemplate.Create().
		SetSupplierID(req.SupplierID).
		SetVersion(req.Version).
		SetRules(req.Rules).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create template",
			"supplier_id", req.SupplierID, "version", req.Version, "error", err)
		return nil, err
	}
	r.logger.Info("template created",
		"template_id", row.ID, "supplier_id", row.SupplierID, "version", row.Version)
	return utils.ToTemplate(row), nil
}

func (r *templateRepository) Approve(ctx context.Context, id uuid.UUID, approvedBy string) (*entity.SupplierTemplate, error) {
	row, err := r.client.SupplierTemplate.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.ApprovedAt != nil {
		return nil, fmt.Errorf("%w: template %s is already approved", common.ErrInvalidInput, id)
	}

	var approved *ent.SupplierTemplate
	err = WithTx(ctx, r.client, func(tx *ent.Tx) error {
		// supersede the currently active version, if any
		_, err := tx.SupplierTemplate.Update().
			Where(
				suppliertemplate.SupplierID(row.SupplierID),
				suppliertemplate.Active(true),
			).
			SetActive(false).
			Save(ctx)
		if err != nil {
			return err
		}
		approved, err = tx.SupplierTemplate.UpdateOneID(id).
			SetActive(true).
			SetApprovedBy(approvedBy).
			SetApprovedAt(time.Now()).
			Save(ctx)
		return err
	})
	if err != nil {
		r.logger.Error("failed to approve template", "template_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("template approved",
		"template_id", id, "supplier_id", row.SupplierID,
		"version", row.Version, "approved_by", approvedBy)
	return utils.ToTemplate(approved), nil
}

func (r *templateRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.SupplierTemplate, error) {
	rows, err := r.client.SupplierTemplate.Query().
		Where(suppliertemplate.SupplierID(supplierID)).
		Order(suppliertemplate.ByVersion()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.SupplierTemplate, len(rows))
	for i, row := range rows {
		result[i] = utils.ToTemplate(row)
	}
	return result, nil
}

func (r *templateRepository) ListActiveCandidates(ctx context.Context) ([]match.Candidate, error) {
	suppliers, err := r.client.Supplier.Query().
		Order(supplier.ByCreatedAt(), supplier.ByID()).
		WithTemplates(func(q *ent.SupplierTemplateQuery) {
			q.Where(suppliertemplate.Active(true))
		}).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list match candidates", "error", err)
		return nil, err
	}

	candidates := make([]match.Candidate, 0, len(suppliers))
	for _, s := range suppliers {
		if len(s.Edges.Templates) == 0 {
			continue
		}
		// the partial unique index guarantees at most one active template
		candidates = append(candidates, match.Candidate{
			Supplier: utils.ToSupplier(s),
			Template: utils.ToTemplate(s.Edges.Templates[0]),
		})
	}
	return candidates, nil
}
