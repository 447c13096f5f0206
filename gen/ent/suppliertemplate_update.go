// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/opsfin/invoice-engine/gen/ent/predicate"
	"github.com/opsfin/invoice-engine/gen/ent/processingrun"
	"github.com/opsfin/invoice-engine/gen/ent/supplier"
	"github.com/opsfin/invoice-engine/gen/ent/suppliertemplate"
	"github.com/opsfin/invoice-engine/internal/rules"
)

// SupplierTemplateUpdate is the builder for updating SupplierTemplate entities.
type SupplierTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *SupplierTemplateMutation
}

// Where appends a list predicates to the SupplierTemplateUpdate builder.
func (_u *SupplierTemplateUpdate) Where(ps ...predicate.SupplierTemplate) *SupplierTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *SupplierTemplateUpdate) SetSupplierID(v uuid.UUID) *SupplierTemplateUpdate {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *SupplierTemplateUpdate) SetNillableSupplierID(v *uuid.UUID) *SupplierTemplateUpdate {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *SupplierTemplateUpdate) SetVersion(v int) *SupplierTemplateUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SupplierTemplateUpdate) SetNillableVersion(v *int) *SupplierTemplateUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SupplierTemplateUpdate) AddVersion(v int) *SupplierTemplateUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetRules sets the "rules" field.
func (_u *SupplierTemplateUpdate) SetRules(v rules.Bundle) *SupplierTemplateUpdate {
	_u.mutation.SetRules(v)
	return _u
}

// SetNillableRules sets the "rules" field if the given value is not nil.
func (_u *SupplierTemplateUpdate) SetNillableRules(v *rules.Bundle) *SupplierTemplateUpdate {
	if v != nil {
		_u.SetRules(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *SupplierTemplateUpdate) SetActive(v bool) *SupplierTemplateUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *SupplierTemplateUpdate) SetNillableActive(v *bool) *SupplierTemplateUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *SupplierTemplateUpdate) SetApprovedBy(v string) *SupplierTemplateUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *SupplierTemplateUpdate) SetNillableApprovedBy(v *string) *SupplierTemplateUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *SupplierTemplateUpdate) ClearApprovedBy() *SupplierTemplateUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *SupplierTemplateUpdate) SetApprovedAt(v time.Time) *SupplierTemplateUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *SupplierTemplateUpdate) SetNillableApprovedAt(v *time.Time) *SupplierTemplateUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *SupplierTemplateUpdate) ClearApprovedAt() *SupplierTemplateUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *SupplierTemplateUpdate) SetSupplier(v *Supplier) *SupplierTemplateUpdate {
	return _u.SetSupplierID(v.ID)
}

// AddRunIDs adds the "runs" edge to the ProcessingRun entity by IDs.
func (_u *SupplierTemplateUpdate) AddRunIDs(ids ...uuid.UUID) *SupplierTemplateUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the ProcessingRun entity.
func (_u *SupplierTemplateUpdate) AddRuns(v ...*ProcessingRun) *SupplierTemplateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the SupplierTemplateMutation object of the builder.
func (_u *SupplierTemplateUpdate) Mutation() *SupplierTemplateMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *SupplierTemplateUpdate) ClearSupplier() *SupplierTemplateUpdate {
	_u.mutation.ClearSupplier()
	return _u
}

// ClearRuns clears all "runs" edges to the ProcessingRun entity.
func (_u *SupplierTemplateUpdate) ClearRuns() *SupplierTemplateUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to ProcessingRun entities by IDs.
func (_u *SupplierTemplateUpdate) RemoveRunIDs(ids ...uuid.UUID) *SupplierTemplateUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to ProcessingRun entities.
func (_u *SupplierTemplateUpdate) RemoveRuns(v ...*ProcessingRun) *SupplierTemplateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupplierTemplateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupplierTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierTemplateUpdate) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := suppliertemplate.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "SupplierTemplate.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rules(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "rules", err: fmt.Errorf(`ent: validator failed for field "SupplierTemplate.rules": %w`, err)}
		}
	}
	if _u.mutation.SupplierCleared() && len(_u.mutation.SupplierIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SupplierTemplate.supplier"`)
	}
	return nil
}

func (_u *SupplierTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suppliertemplate.Table, suppliertemplate.Columns, sqlgraph.NewFieldSpec(suppliertemplate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(suppliertemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(suppliertemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rules(); ok {
		_spec.SetField(suppliertemplate.FieldRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(suppliertemplate.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(suppliertemplate.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(suppliertemplate.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(suppliertemplate.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(suppliertemplate.FieldApprovedAt, field.TypeTime)
	}
	if _u.mutation.SupplierCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suppliertemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupplierTemplateUpdateOne is the builder for updating a single SupplierTemplate entity.
type SupplierTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupplierTemplateMutation
}

// SetSupplierID sets the "supplier_id" field.
func (_u *SupplierTemplateUpdateOne) SetSupplierID(v uuid.UUID) *SupplierTemplateUpdateOne {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *SupplierTemplateUpdateOne) SetNillableSupplierID(v *uuid.UUID) *SupplierTemplateUpdateOne {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *SupplierTemplateUpdateOne) SetVersion(v int) *SupplierTemplateUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SupplierTemplateUpdateOne) SetNillableVersion(v *int) *SupplierTemplateUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SupplierTemplateUpdateOne) AddVersion(v int) *SupplierTemplateUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetRules sets the "rules" field.
func (_u *SupplierTemplateUpdateOne) SetRules(v rules.Bundle) *SupplierTemplateUpdateOne {
	_u.mutation.SetRules(v)
	return _u
}

// SetNillableRules sets the "rules" field if the given value is not nil.
func (_u *SupplierTemplateUpdateOne) SetNillableRules(v *rules.Bundle) *SupplierTemplateUpdateOne {
	if v != nil {
		_u.SetRules(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *SupplierTemplateUpdateOne) SetActive(v bool) *SupplierTemplateUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *SupplierTemplateUpdateOne) SetNillableActive(v *bool) *SupplierTemplateUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *SupplierTemplateUpdateOne) SetApprovedBy(v string) *SupplierTemplateUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *SupplierTemplateUpdateOne) SetNillableApprovedBy(v *string) *SupplierTemplateUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *SupplierTemplateUpdateOne) ClearApprovedBy() *SupplierTemplateUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *SupplierTemplateUpdateOne) SetApprovedAt(v time.Time) *SupplierTemplateUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *SupplierTemplateUpdateOne) SetNillableApprovedAt(v *time.Time) *SupplierTemplateUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *SupplierTemplateUpdateOne) ClearApprovedAt() *SupplierTemplateUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *SupplierTemplateUpdateOne) SetSupplier(v *Supplier) *SupplierTemplateUpdateOne {
	return _u.SetSupplierID(v.ID)
}

// AddRunIDs adds the "runs" edge to the ProcessingRun entity by IDs.
func (_u *SupplierTemplateUpdateOne) AddRunIDs(ids ...uuid.UUID) *SupplierTemplateUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the ProcessingRun entity.
func (_u *SupplierTemplateUpdateOne) AddRuns(v ...*ProcessingRun) *SupplierTemplateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the SupplierTemplateMutation object of the builder.
func (_u *SupplierTemplateUpdateOne) Mutation() *SupplierTemplateMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *SupplierTemplateUpdateOne) ClearSupplier() *SupplierTemplateUpdateOne {
	_u.mutation.ClearSupplier()
	return _u
}

// ClearRuns clears all "runs" edges to the ProcessingRun entity.
func (_u *SupplierTemplateUpdateOne) ClearRuns() *SupplierTemplateUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to ProcessingRun entities by IDs.
func (_u *SupplierTemplateUpdateOne) RemoveRunIDs(ids ...uuid.UUID) *SupplierTemplateUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to ProcessingRun entities.
func (_u *SupplierTemplateUpdateOne) RemoveRuns(v ...*ProcessingRun) *SupplierTemplateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Where appends a list predicates to the SupplierTemplateUpdate builder.
func (_u *SupplierTemplateUpdateOne) Where(ps ...predicate.SupplierTemplate) *SupplierTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupplierTemplateUpdateOne) Select(field string, fields ...string) *SupplierTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SupplierTemplate entity.
func (_u *SupplierTemplateUpdateOne) Save(ctx context.Context) (*SupplierTemplate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierTemplateUpdateOne) SaveX(ctx context.Context) *SupplierTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupplierTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := suppliertemplate.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "SupplierTemplate.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rules(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "rules", err: fmt.Errorf(`ent: validator failed for field "SupplierTemplate.rules": %w`, err)}
		}
	}
	if _u.mutation.SupplierCleared() && len(_u.mutation.SupplierIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SupplierTemplate.supplier"`)
	}
	return nil
}

func (_u *SupplierTemplateUpdateOne) sqlSave(ctx context.Context) (_node *SupplierTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suppliertemplate.Table, suppliertemplate.Columns, sqlgraph.NewFieldSpec(suppliertemplate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SupplierTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, suppliertemplate.FieldID)
		for _, f := range fields {
			if !suppliertemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != suppliertemplate.FieldID {
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
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(suppliertemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(suppliertemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rules(); ok {
		_spec.SetField(suppliertemplate.FieldRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(suppliertemplate.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(suppliertemplate.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(suppliertemplate.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(suppliertemplate.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(suppliertemplate.FieldApprovedAt, field.TypeTime)
	}
	if _u.mutation.SupplierCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SupplierTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suppliertemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
