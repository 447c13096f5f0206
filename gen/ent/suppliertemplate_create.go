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
	"github.com/opsfin/invoice-engine/gen/ent/processingrun"
	"github.com/opsfin/invoice-engine/gen/ent/supplier"
	"github.com/opsfin/invoice-engine/gen/ent/suppliertemplate"
	"github.com/opsfin/invoice-engine/internal/rules"
)

// SupplierTemplateCreate is the builder for creating a SupplierTemplate entity.
type SupplierTemplateCreate struct {
	config
	mutation *SupplierTemplateMutation
	hooks    []Hook
}

// SetSupplierID sets the "supplier_id" field.
func (_c *SupplierTemplateCreate) SetSupplierID(v uuid.UUID) *SupplierTemplateCreate {
	_c.mutation.SetSupplierID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *SupplierTemplateCreate) SetVersion(v int) *SupplierTemplateCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetRules sets the "rules" field.
func (_c *SupplierTemplateCreate) SetRules(v rules.Bundle) *SupplierTemplateCreate {
	_c.mutation.SetRules(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *SupplierTemplateCreate) SetActive(v bool) *SupplierTemplateCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *SupplierTemplateCreate) SetNillableActive(v *bool) *SupplierTemplateCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *SupplierTemplateCreate) SetApprovedBy(v string) *SupplierTemplateCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *SupplierTemplateCreate) SetNillableApprovedBy(v *string) *SupplierTemplateCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *SupplierTemplateCreate) SetApprovedAt(v time.Time) *SupplierTemplateCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *SupplierTemplateCreate) SetNillableApprovedAt(v *time.Time) *SupplierTemplateCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SupplierTemplateCreate) SetCreatedAt(v time.Time) *SupplierTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SupplierTemplateCreate) SetNillableCreatedAt(v *time.Time) *SupplierTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SupplierTemplateCreate) SetID(v uuid.UUID) *SupplierTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SupplierTemplateCreate) SetNillableID(v *uuid.UUID) *SupplierTemplateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_c *SupplierTemplateCreate) SetSupplier(v *Supplier) *SupplierTemplateCreate {
	return _c.SetSupplierID(v.ID)
}

// AddRunIDs adds the "runs" edge to the ProcessingRun entity by IDs.
func (_c *SupplierTemplateCreate) AddRunIDs(ids ...uuid.UUID) *SupplierTemplateCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the ProcessingRun entity.
func (_c *SupplierTemplateCreate) AddRuns(v ...*ProcessingRun) *SupplierTemplateCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// Mutation returns the SupplierTemplateMutation object of the builder.
func (_c *SupplierTemplateCreate) Mutation() *SupplierTemplateMutation {
	return _c.mutation
}

// Save creates the SupplierTemplate in the database.
func (_c *SupplierTemplateCreate) Save(ctx context.Context) (*SupplierTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SupplierTemplateCreate) SaveX(ctx context.Context) *SupplierTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SupplierTemplateCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := suppliertemplate.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := suppliertemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := suppliertemplate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SupplierTemplateCreate) check() error {
	if _, ok := _c.mutation.SupplierID(); !ok {
		return &ValidationError{Name: "supplier_id", err: errors.New(`ent: missing required field "SupplierTemplate.supplier_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "SupplierTemplate.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := suppliertemplate.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "SupplierTemplate.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rules(); !ok {
		return &ValidationError{Name: "rules", err: errors.New(`ent: missing required field "SupplierTemplate.rules"`)}
	}
	if v, ok := _c.mutation.Rules(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "rules", err: fmt.Errorf(`ent: validator failed for field "SupplierTemplate.rules": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "SupplierTemplate.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SupplierTemplate.created_at"`)}
	}
	if len(_c.mutation.SupplierIDs()) == 0 {
		return &ValidationError{Name: "supplier", err: errors.New(`ent: missing required edge "SupplierTemplate.supplier"`)}
	}
	return nil
}

func (_c *SupplierTemplateCreate) sqlSave(ctx context.Context) (*SupplierTemplate, error) {
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

func (_c *SupplierTemplateCreate) createSpec() (*SupplierTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &SupplierTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(suppliertemplate.Table, sqlgraph.NewFieldSpec(suppliertemplate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(suppliertemplate.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Rules(); ok {
		_spec.SetField(suppliertemplate.FieldRules, field.TypeJSON, value)
		_node.Rules = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(suppliertemplate.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(suppliertemplate.FieldApprovedBy, field.TypeString, value)
		_node.ApprovedBy = &value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(suppliertemplate.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(suppliertemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SupplierIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   suppliertemplate.SupplierTable,
			Columns: []string{suppliertemplate.SupplierColumn},
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
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   suppliertemplate.RunsTable,
			Columns: []string{suppliertemplate.RunsColumn},
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

// SupplierTemplateCreateBulk is the builder for creating many SupplierTemplate entities in bulk.
type SupplierTemplateCreateBulk struct {
	config
	err      error
	builders []*SupplierTemplateCreate
}

// Save creates the SupplierTemplate entities in the database.
func (_c *SupplierTemplateCreateBulk) Save(ctx context.Context) ([]*SupplierTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SupplierTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SupplierTemplateMutation)
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
func (_c *SupplierTemplateCreateBulk) SaveX(ctx context.Context) []*SupplierTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
