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
	"github.com/opsfin/invoice-engine/gen/ent/processingrun"
	"github.com/opsfin/invoice-engine/gen/ent/suppliertemplate"
)

// ProcessingRunCreate is the builder for creating a ProcessingRun entity.
type ProcessingRunCreate struct {
	config
	mutation *ProcessingRunMutation
	hooks    []Hook
}

// SetInvoiceID sets the "invoice_id" field.
func (_c *ProcessingRunCreate) SetInvoiceID(v uuid.UUID) *ProcessingRunCreate {
	_c.mutation.SetInvoiceID(v)
	return _c
}

// SetEngineVersion sets the "engine_version" field.
func (_c *ProcessingRunCreate) SetEngineVersion(v string) *ProcessingRunCreate {
	_c.mutation.SetEngineVersion(v)
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *ProcessingRunCreate) SetTemplateID(v uuid.UUID) *ProcessingRunCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_c *ProcessingRunCreate) SetNillableTemplateID(v *uuid.UUID) *ProcessingRunCreate {
	if v != nil {
		_c.SetTemplateID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessingRunCreate) SetStatus(v string) *ProcessingRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ProcessingRunCreate) SetNotes(v string) *ProcessingRunCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ProcessingRunCreate) SetNillableNotes(v *string) *ProcessingRunCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ProcessingRunCreate) SetCompletedAt(v time.Time) *ProcessingRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ProcessingRunCreate) SetNillableCompletedAt(v *time.Time) *ProcessingRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessingRunCreate) SetID(v uuid.UUID) *ProcessingRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcessingRunCreate) SetNillableID(v *uuid.UUID) *ProcessingRunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_c *ProcessingRunCreate) SetInvoice(v *Invoice) *ProcessingRunCreate {
	return _c.SetInvoiceID(v.ID)
}

// SetTemplate sets the "template" edge to the SupplierTemplate entity.
func (_c *ProcessingRunCreate) SetTemplate(v *SupplierTemplate) *ProcessingRunCreate {
	return _c.SetTemplateID(v.ID)
}

// Mutation returns the ProcessingRunMutation object of the builder.
func (_c *ProcessingRunCreate) Mutation() *ProcessingRunMutation {
	return _c.mutation
}

// Save creates the ProcessingRun in the database.
func (_c *ProcessingRunCreate) Save(ctx context.Context) (*ProcessingRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingRunCreate) SaveX(ctx context.Context) *ProcessingRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessingRunCreate) defaults() {
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := processingrun.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := processingrun.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingRunCreate) check() error {
	if _, ok := _c.mutation.InvoiceID(); !ok {
		return &ValidationError{Name: "invoice_id", err: errors.New(`ent: missing required field "ProcessingRun.invoice_id"`)}
	}
	if _, ok := _c.mutation.EngineVersion(); !ok {
		return &ValidationError{Name: "engine_version", err: errors.New(`ent: missing required field "ProcessingRun.engine_version"`)}
	}
	if v, ok := _c.mutation.EngineVersion(); ok {
		if err := processingrun.EngineVersionValidator(v); err != nil {
			return &ValidationError{Name: "engine_version", err: fmt.Errorf(`ent: validator failed for field "ProcessingRun.engine_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessingRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processingrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "ProcessingRun.completed_at"`)}
	}
	if len(_c.mutation.InvoiceIDs()) == 0 {
		return &ValidationError{Name: "invoice", err: errors.New(`ent: missing required edge "ProcessingRun.invoice"`)}
	}
	return nil
}

func (_c *ProcessingRunCreate) sqlSave(ctx context.Context) (*ProcessingRun, error) {
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

func (_c *ProcessingRunCreate) createSpec() (*ProcessingRun, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processingrun.Table, sqlgraph.NewFieldSpec(processingrun.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.EngineVersion(); ok {
		_spec.SetField(processingrun.FieldEngineVersion, field.TypeString, value)
		_node.EngineVersion = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processingrun.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(processingrun.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(processingrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if nodes := _c.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingrun.InvoiceTable,
			Columns: []string{processingrun.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InvoiceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingrun.TemplateTable,
			Columns: []string{processingrun.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suppliertemplate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TemplateID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProcessingRunCreateBulk is the builder for creating many ProcessingRun entities in bulk.
type ProcessingRunCreateBulk struct {
	config
	err      error
	builders []*ProcessingRunCreate
}

// Save creates the ProcessingRun entities in the database.
func (_c *ProcessingRunCreateBulk) Save(ctx context.Context) ([]*ProcessingRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingRunMutation)
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
func (_c *ProcessingRunCreateBulk) SaveX(ctx context.Context) []*ProcessingRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
