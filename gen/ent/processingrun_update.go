// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/opsfin/invoice-engine/gen/ent/invoice"
	"github.com/opsfin/invoice-engine/gen/ent/predicate"
	"github.com/opsfin/invoice-engine/gen/ent/processingrun"
	"github.com/opsfin/invoice-engine/gen/ent/suppliertemplate"
)

// ProcessingRunUpdate is the builder for updating ProcessingRun entities.
type ProcessingRunUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingRunMutation
}

// Where appends a list predicates to the ProcessingRunUpdate builder.
func (_u *ProcessingRunUpdate) Where(ps ...predicate.ProcessingRun) *ProcessingRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *ProcessingRunUpdate) SetInvoiceID(v uuid.UUID) *ProcessingRunUpdate {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *ProcessingRunUpdate) SetNillableInvoiceID(v *uuid.UUID) *ProcessingRunUpdate {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetEngineVersion sets the "engine_version" field.
func (_u *ProcessingRunUpdate) SetEngineVersion(v string) *ProcessingRunUpdate {
	_u.mutation.SetEngineVersion(v)
	return _u
}

// SetNillableEngineVersion sets the "engine_version" field if the given value is not nil.
func (_u *ProcessingRunUpdate) SetNillableEngineVersion(v *string) *ProcessingRunUpdate {
	if v != nil {
		_u.SetEngineVersion(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *ProcessingRunUpdate) SetTemplateID(v uuid.UUID) *ProcessingRunUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *ProcessingRunUpdate) SetNillableTemplateID(v *uuid.UUID) *ProcessingRunUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *ProcessingRunUpdate) ClearTemplateID() *ProcessingRunUpdate {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingRunUpdate) SetStatus(v string) *ProcessingRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingRunUpdate) SetNillableStatus(v *string) *ProcessingRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ProcessingRunUpdate) SetNotes(v string) *ProcessingRunUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ProcessingRunUpdate) SetNillableNotes(v *string) *ProcessingRunUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ProcessingRunUpdate) ClearNotes() *ProcessingRunUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *ProcessingRunUpdate) SetInvoice(v *Invoice) *ProcessingRunUpdate {
	return _u.SetInvoiceID(v.ID)
}

// SetTemplate sets the "template" edge to the SupplierTemplate entity.
func (_u *ProcessingRunUpdate) SetTemplate(v *SupplierTemplate) *ProcessingRunUpdate {
	return _u.SetTemplateID(v.ID)
}

// Mutation returns the ProcessingRunMutation object of the builder.
func (_u *ProcessingRunUpdate) Mutation() *ProcessingRunMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *ProcessingRunUpdate) ClearInvoice() *ProcessingRunUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// ClearTemplate clears the "template" edge to the SupplierTemplate entity.
func (_u *ProcessingRunUpdate) ClearTemplate() *ProcessingRunUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingRunUpdate) check() error {
	if v, ok := _u.mutation.EngineVersion(); ok {
		if err := processingrun.EngineVersionValidator(v); err != nil {
			return &ValidationError{Name: "engine_version", err: fmt.Errorf(`ent: validator failed for field "ProcessingRun.engine_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processingrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingRun.status": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingRun.invoice"`)
	}
	return nil
}

func (_u *ProcessingRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingrun.Table, processingrun.Columns, sqlgraph.NewFieldSpec(processingrun.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EngineVersion(); ok {
		_spec.SetField(processingrun.FieldEngineVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(processingrun.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(processingrun.FieldNotes, field.TypeString)
	}
	if _u.mutation.InvoiceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TemplateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingRunUpdateOne is the builder for updating a single ProcessingRun entity.
type ProcessingRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingRunMutation
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *ProcessingRunUpdateOne) SetInvoiceID(v uuid.UUID) *ProcessingRunUpdateOne {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *ProcessingRunUpdateOne) SetNillableInvoiceID(v *uuid.UUID) *ProcessingRunUpdateOne {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetEngineVersion sets the "engine_version" field.
func (_u *ProcessingRunUpdateOne) SetEngineVersion(v string) *ProcessingRunUpdateOne {
	_u.mutation.SetEngineVersion(v)
	return _u
}

// SetNillableEngineVersion sets the "engine_version" field if the given value is not nil.
func (_u *ProcessingRunUpdateOne) SetNillableEngineVersion(v *string) *ProcessingRunUpdateOne {
	if v != nil {
		_u.SetEngineVersion(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *ProcessingRunUpdateOne) SetTemplateID(v uuid.UUID) *ProcessingRunUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *ProcessingRunUpdateOne) SetNillableTemplateID(v *uuid.UUID) *ProcessingRunUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *ProcessingRunUpdateOne) ClearTemplateID() *ProcessingRunUpdateOne {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingRunUpdateOne) SetStatus(v string) *ProcessingRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingRunUpdateOne) SetNillableStatus(v *string) *ProcessingRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ProcessingRunUpdateOne) SetNotes(v string) *ProcessingRunUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ProcessingRunUpdateOne) SetNillableNotes(v *string) *ProcessingRunUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ProcessingRunUpdateOne) ClearNotes() *ProcessingRunUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *ProcessingRunUpdateOne) SetInvoice(v *Invoice) *ProcessingRunUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// SetTemplate sets the "template" edge to the SupplierTemplate entity.
func (_u *ProcessingRunUpdateOne) SetTemplate(v *SupplierTemplate) *ProcessingRunUpdateOne {
	return _u.SetTemplateID(v.ID)
}

// Mutation returns the ProcessingRunMutation object of the builder.
func (_u *ProcessingRunUpdateOne) Mutation() *ProcessingRunMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *ProcessingRunUpdateOne) ClearInvoice() *ProcessingRunUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// ClearTemplate clears the "template" edge to the SupplierTemplate entity.
func (_u *ProcessingRunUpdateOne) ClearTemplate() *ProcessingRunUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// Where appends a list predicates to the ProcessingRunUpdate builder.
func (_u *ProcessingRunUpdateOne) Where(ps ...predicate.ProcessingRun) *ProcessingRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingRunUpdateOne) Select(field string, fields ...string) *ProcessingRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingRun entity.
func (_u *ProcessingRunUpdateOne) Save(ctx context.Context) (*ProcessingRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingRunUpdateOne) SaveX(ctx context.Context) *ProcessingRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingRunUpdateOne) check() error {
	if v, ok := _u.mutation.EngineVersion(); ok {
		if err := processingrun.EngineVersionValidator(v); err != nil {
			return &ValidationError{Name: "engine_version", err: fmt.Errorf(`ent: validator failed for field "ProcessingRun.engine_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processingrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingRun.status": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingRun.invoice"`)
	}
	return nil
}

func (_u *ProcessingRunUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingrun.Table, processingrun.Columns, sqlgraph.NewFieldSpec(processingrun.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingrun.FieldID)
		for _, f := range fields {
			if !processingrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processingrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EngineVersion(); ok {
		_spec.SetField(processingrun.FieldEngineVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(processingrun.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(processingrun.FieldNotes, field.TypeString)
	}
	if _u.mutation.InvoiceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TemplateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProcessingRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
