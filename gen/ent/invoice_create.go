// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/opsfin/invoice-engine/gen/ent/invoice"
	"github.com/opsfin/invoice-engine/gen/ent/invoiceline"
	"github.com/opsfin/invoice-engine/gen/ent/processingrun"
	"github.com/opsfin/invoice-engine/gen/ent/supplier"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
}

// SetSupplierID sets the "supplier_id" field.
func (_c *InvoiceCreate) SetSupplierID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetSupplierID(v)
	return _c
}

// SetExternalReference sets the "external_reference" field.
func (_c *InvoiceCreate) SetExternalReference(v string) *InvoiceCreate {
	_c.mutation.SetExternalReference(v)
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *InvoiceCreate) SetInvoiceDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableInvoiceDate(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetInvoiceDate(*v)
	}
	return _c
}

// SetTotalNet sets the "total_net" field.
func (_c *InvoiceCreate) SetTotalNet(v float64) *InvoiceCreate {
	_c.mutation.SetTotalNet(v)
	return _c
}

// SetNillableTotalNet sets the "total_net" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableTotalNet(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetTotalNet(*v)
	}
	return _c
}

// SetTotalTax sets the "total_tax" field.
func (_c *InvoiceCreate) SetTotalTax(v float64) *InvoiceCreate {
	_c.mutation.SetTotalTax(v)
	return _c
}

// SetNillableTotalTax sets the "total_tax" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableTotalTax(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetTotalTax(*v)
	}
	return _c
}

// SetTotalGross sets the "total_gross" field.
func (_c *InvoiceCreate) SetTotalGross(v float64) *InvoiceCreate {
	_c.mutation.SetTotalGross(v)
	return _c
}

// SetNillableTotalGross sets the "total_gross" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableTotalGross(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetTotalGross(*v)
	}
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *InvoiceCreate) SetCurrencyCode(v string) *InvoiceCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCurrencyCode(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetCurrencyCode(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceCreate) SetCreatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCreatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceCreate) SetID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_c *InvoiceCreate) SetSupplier(v *Supplier) *InvoiceCreate {
	return _c.SetSupplierID(v.ID)
}

// AddLineIDs adds the "lines" edge to the InvoiceLine entity by IDs.
func (_c *InvoiceCreate) AddLineIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddLineIDs(ids...)
	return _c
}

// AddLines adds the "lines" edges to the InvoiceLine entity.
func (_c *InvoiceCreate) AddLines(v ...*InvoiceLine) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLineIDs(ids...)
}

// AddRunIDs adds the "runs" edge to the ProcessingRun entity by IDs.
func (_c *InvoiceCreate) AddRunIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the ProcessingRun entity.
func (_c *InvoiceCreate) AddRuns(v ...*ProcessingRun) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_c *InvoiceCreate) Mutation() *InvoiceMutation {
	return _c.mutation
}

// Save creates the Invoice in the database.
func (_c *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceCreate) defaults() {
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		v := invoice.DefaultCurrencyCode
		_c.mutation.SetCurrencyCode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceCreate) check() error {
	if _, ok := _c.mutation.SupplierID(); !ok {
		return &ValidationError{Name: "supplier_id", err: errors.New(`ent: missing required field "Invoice.supplier_id"`)}
	}
	if _, ok := _c.mutation.ExternalReference(); !ok {
		return &ValidationError{Name: "external_reference", err: errors.New(`ent: missing required field "Invoice.external_reference"`)}
	}
	if v, ok := _c.mutation.ExternalReference(); ok {
		if err := invoice.ExternalReferenceValidator(v); err != nil {
			return &ValidationError{Name: "external_reference", err: fmt.Errorf(`ent: validator failed for field "Invoice.external_reference": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		return &ValidationError{Name: "currency_code", err: errors.New(`ent: missing required field "Invoice.currency_code"`)}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := invoice.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if len(_c.mutation.SupplierIDs()) == 0 {
		return &ValidationError{Name: "supplier", err: errors.New(`ent: missing required edge "Invoice.supplier"`)}
	}
	return nil
}

func (_c *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ExternalReference(); ok {
		_spec.SetField(invoice.FieldExternalReference, field.TypeString, value)
		_node.ExternalReference = value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
		_node.InvoiceDate = &value
	}
	if value, ok := _c.mutation.TotalNet(); ok {
		_spec.SetField(invoice.FieldTotalNet, field.TypeFloat64, value)
		_node.TotalNet = &value
	}
	if value, ok := _c.mutation.TotalTax(); ok {
		_spec.SetField(invoice.FieldTotalTax, field.TypeFloat64, value)
		_node.TotalTax = &value
	}
	if value, ok := _c.mutation.TotalGross(); ok {
		_spec.SetField(invoice.FieldTotalGross, field.TypeFloat64, value)
		_node.TotalGross = &value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SupplierIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.SupplierTable,
			Columns: []string{invoice.SupplierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SupplierID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LinesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LinesTable,
			Columns: []string{invoice.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.RunsTable,
			Columns: []string{invoice.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingrun.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
}

// Save creates the Invoice entities in the database.
func (_c *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
