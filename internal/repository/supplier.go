package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsfin/invoice-engine/gen/ent"
	"github.com/opsfin/invoice-engine/gen/ent/supplier"
	"github.com/opsfin/invoice-engine/internal/entity"
	"github.com/opsfin/invoice-engine/internal/utils"
)

// CreateSupplierRequest wraps parameters for registering a supplier.
type CreateSupplierRequest struct {
	Name        string
	TaxNumber   *string
	CountryCode string
}

type SupplierRepository interface {
	Create(ctx context.Context, req *CreateSupplierRequest) (*entity.Supplier, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
}

type supplierRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSupplierRepository(client *ent.Client, logger *slog.Logger) SupplierRepository {
	return &supplierRepository{client: client, logger: logger}
}

func (r *supplierRepository) Create(ctx context.Context, req *CreateSupplierRequest) (*entity.Supplier, error) {
	builder := r.client.Supplier.Create().
		SetName(req.Name).
		SetNillableTaxNumber(req.TaxNumber)
	if req.CountryCode != "" {
		builder = builder.SetCountryCode(req.CountryCode)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create supplier", "name", req.Name, "error", err)
		return nil, err
	}
	r.logger.Info("supplier created", "supplier_id", row.ID, "name", row.Name)
	return utils.ToSupplier(row), nil
}

func (r *supplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	row, err := r.client.Supplier.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToSupplier(row), nil
}

func (r *supplierRepository) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.client.Supplier.Query().
		Order(supplier.ByCreatedAt(), supplier.ByID()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list suppliers", "error", err)
		return nil, err
	}
	result := make([]*entity.Supplier, len(rows))
	for i, row := range rows {
		result[i] = utils.ToSupplier(row)
	}
	return result, nil
}
