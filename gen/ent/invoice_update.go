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
	"github.com/opsfin/invoice-engine/gen/ent/invoice"
	"github.com/opsfin/invoice-engine/gen/ent/invoiceline"
	"github.com/opsfin/invoice-engine/gen/ent/predicate"
	"github.com/opsfin/invoice-engine/gen/ent/processingrun"
	"github.com/opsfin/invoice-engine/gen/ent/supplier"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *InvoiceUpdate) SetSupplierID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSupplierID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// SetExternalReference sets the "external_reference" field.
func (_u *InvoiceUpdate) SetExternalReference(v string) *InvoiceUpdate {
	_u.mutation.SetExternalReference(v)
	return _u
}

// SetNillableExternalReference sets the "external_reference" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableExternalReference(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetExternalReference(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdate) ClearInvoiceDate() *InvoiceUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetTotalNet sets the "total_net" field.
func (_u *InvoiceUpdate) SetTotalNet(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotalNet()
	_u.mutation.SetTotalNet(v)
	return _u
}

// SetNillableTotalNet sets the "total_net" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotalNet(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotalNet(*v)
	}
	return _u
}

// AddTotalNet adds value to the "total_net" field.
func (_u *InvoiceUpdate) AddTotalNet(v float64) *InvoiceUpdate {
	_u.mutation.AddTotalNet(v)
	return _u
}

// ClearTotalNet clears the value of the "total_net" field.
func (_u *InvoiceUpdate) ClearTotalNet() *InvoiceUpdate {
	_u.mutation.ClearTotalNet()
	return _u
}

// SetTotalTax sets the "total_tax" field.
func (_u *InvoiceUpdate) SetTotalTax(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotalTax()
	_u.mutation.SetTotalTax(v)
	return _u
}

// SetNillableTotalTax sets the "total_tax" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotalTax(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotalTax(*v)
	}
	return _u
}

// AddTotalTax adds value to the "total_tax" field.
func (_u *InvoiceUpdate) AddTotalTax(v float64) *InvoiceUpdate {
	_u.mutation.AddTotalTax(v)
	return _u
}

// ClearTotalTax clears the value of the "total_tax" field.
func (_u *InvoiceUpdate) ClearTotalTax() *InvoiceUpdate {
	_u.mutation.ClearTotalTax()
	return _u
}

// SetTotalGross sets the "total_gross" field.
func (_u *InvoiceUpdate) SetTotalGross(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotalGross()
	_u.mutation.SetTotalGross(v)
	return _u
}

// SetNillableTotalGross sets the "total_gross" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotalGross(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotalGross(*v)
	}
	return _u
}

// AddTotalGross adds value to the "total_gross" field.
func (_u *InvoiceUpdate) AddTotalGross(v float64) *InvoiceUpdate {
	_u.mutation.AddTotalGross(v)
	return _u
}

// ClearTotalGross clears the value of the "total_gross" field.
func (_u *InvoiceUpdate) ClearTotalGross() *InvoiceUpdate {
	_u.mutation.ClearTotalGross()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *InvoiceUpdate) SetCurrencyCode(v string) *InvoiceUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCurrencyCode(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *InvoiceUpdate) SetSupplier(v *Supplier) *InvoiceUpdate {
	return _u.SetSupplierID(v.ID)
}

// AddLineIDs adds the "lines" edge to the InvoiceLine entity by IDs.
func (_u *InvoiceUpdate) AddLineIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddLineIDs(ids...)
	return _u
}

// AddLines adds the "lines" edges to the InvoiceLine entity.
func (_u *InvoiceUpdate) AddLines(v ...*InvoiceLine) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineIDs(ids...)
}

// AddRunIDs adds the "runs" edge to the ProcessingRun entity by IDs.
func (_u *InvoiceUpdate) AddRunIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the ProcessingRun entity.
func (_u *InvoiceUpdate) AddRuns(v ...*ProcessingRun) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *InvoiceUpdate) ClearSupplier() *InvoiceUpdate {
	_u.mutation.ClearSupplier()
	return _u
}

// ClearLines clears all "lines" edges to the InvoiceLine entity.
func (_u *InvoiceUpdate) ClearLines() *InvoiceUpdate {
	_u.mutation.ClearLines()
	return _u
}

// RemoveLineIDs removes the "lines" edge to InvoiceLine entities by IDs.
func (_u *InvoiceUpdate) RemoveLineIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveLineIDs(ids...)
	return _u
}

// RemoveLines removes "lines" edges to InvoiceLine entities.
func (_u *InvoiceUpdate) RemoveLines(v ...*InvoiceLine) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineIDs(ids...)
}

// ClearRuns clears all "runs" edges to the ProcessingRun entity.
func (_u *InvoiceUpdate) ClearRuns() *InvoiceUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to ProcessingRun entities by IDs.
func (_u *InvoiceUpdate) RemoveRunIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to ProcessingRun entities.
func (_u *InvoiceUpdate) RemoveRuns(v ...*ProcessingRun) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.ExternalReference(); ok {
		if err := invoice.ExternalReferenceValidator(v); err != nil {
			return &ValidationError{Name: "external_reference", err: fmt.Errorf(`ent: validator failed for field "Invoice.external_reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := invoice.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency_code": %w`, err)}
		}
	}
	if _u.mutation.SupplierCleared() && len(_u.mutation.SupplierIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.supplier"`)
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExternalReference(); ok {
		_spec.SetField(invoice.FieldExternalReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalNet(); ok {
		_spec.SetField(invoice.FieldTotalNet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalNet(); ok {
		_spec.AddField(invoice.FieldTotalNet, field.TypeFloat64, value)
	}
	if _u.mutation.TotalNetCleared() {
		_spec.ClearField(invoice.FieldTotalNet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalTax(); ok {
		_spec.SetField(invoice.FieldTotalTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalTax(); ok {
		_spec.AddField(invoice.FieldTotalTax, field.TypeFloat64, value)
	}
	if _u.mutation.TotalTaxCleared() {
		_spec.ClearField(invoice.FieldTotalTax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalGross(); ok {
		_spec.SetField(invoice.FieldTotalGross, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalGross(); ok {
		_spec.AddField(invoice.FieldTotalGross, field.TypeFloat64, value)
	}
	if _u.mutation.TotalGrossCleared() {
		_spec.ClearField(invoice.FieldTotalGross, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.SupplierCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinesIDs(); len(nodes) > 0 && !_u.mutation.LinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetSupplierID sets the "supplier_id" field.
func (_u *InvoiceUpdateOne) SetSupplierID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSupplierID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// SetExternalReference sets the "external_reference" field.
func (_u *InvoiceUpdateOne) SetExternalReference(v string) *InvoiceUpdateOne {
	_u.mutation.SetExternalReference(v)
	return _u
}

// SetNillableExternalReference sets the "external_reference" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableExternalReference(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetExternalReference(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdateOne) ClearInvoiceDate() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetTotalNet sets the "total_net" field.
func (_u *InvoiceUpdateOne) SetTotalNet(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotalNet()
	_u.mutation.SetTotalNet(v)
	return _u
}

// SetNillableTotalNet sets the "total_net" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotalNet(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotalNet(*v)
	}
	return _u
}

// AddTotalNet adds value to the "total_net" field.
func (_u *InvoiceUpdateOne) AddTotalNet(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotalNet(v)
	return _u
}

// ClearTotalNet clears the value of the "total_net" field.
func (_u *InvoiceUpdateOne) ClearTotalNet() *InvoiceUpdateOne {
	_u.mutation.ClearTotalNet()
	return _u
}

// SetTotalTax sets the "total_tax" field.
func (_u *InvoiceUpdateOne) SetTotalTax(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotalTax()
	_u.mutation.SetTotalTax(v)
	return _u
}

// SetNillableTotalTax sets the "total_tax" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotalTax(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotalTax(*v)
	}
	return _u
}

// AddTotalTax adds value to the "total_tax" field.
func (_u *InvoiceUpdateOne) AddTotalTax(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotalTax(v)
	return _u
}

// ClearTotalTax clears the value of the "total_tax" field.
func (_u *InvoiceUpdateOne) ClearTotalTax() *InvoiceUpdateOne {
	_u.mutation.ClearTotalTax()
	return _u
}

// SetTotalGross sets the "total_gross" field.
func (_u *InvoiceUpdateOne) SetTotalGross(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotalGross()
	_u.mutation.SetTotalGross(v)
	return _u
}

// SetNillableTotalGross sets the "total_gross" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotalGross(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotalGross(*v)
	}
	return _u
}

// AddTotalGross adds value to the "total_gross" field.
func (_u *InvoiceUpdateOne) AddTotalGross(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotalGross(v)
	return _u
}

// ClearTotalGross clears the value of the "total_gross" field.
func (_u *InvoiceUpdateOne) ClearTotalGross() *InvoiceUpdateOne {
	_u.mutation.ClearTotalGross()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *InvoiceUpdateOne) SetCurrencyCode(v string) *InvoiceUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCurrencyCode(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *InvoiceUpdateOne) SetSupplier(v *Supplier) *InvoiceUpdateOne {
	return _u.SetSupplierID(v.ID)
}

// AddLineIDs adds the "lines" edge to the InvoiceLine entity by IDs.
func (_u *InvoiceUpdateOne) AddLineIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddLineIDs(ids...)
	return _u
}

// AddLines adds the "lines" edges to the InvoiceLine entity.
func (_u *InvoiceUpdateOne) AddLines(v ...*InvoiceLine) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineIDs(ids...)
}

// AddRunIDs adds the "runs" edge to the ProcessingRun entity by IDs.
func (_u *InvoiceUpdateOne) AddRunIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the ProcessingRun entity.
func (_u *InvoiceUpdateOne) AddRuns(v ...*ProcessingRun) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *InvoiceUpdateOne) ClearSupplier() *InvoiceUpdateOne {
	_u.mutation.ClearSupplier()
	return _u
}

// ClearLines clears all "lines" edges to the InvoiceLine entity.
func (_u *InvoiceUpdateOne) ClearLines() *InvoiceUpdateOne {
	_u.mutation.ClearLines()
	return _u
}

// RemoveLineIDs removes the "lines" edge to InvoiceLine entities by IDs.
func (_u *InvoiceUpdateOne) RemoveLineIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveLineIDs(ids...)
	return _u
}

// RemoveLines removes "lines" edges to InvoiceLine entities.
func (_u *InvoiceUpdateOne) RemoveLines(v ...*InvoiceLine) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineIDs(ids...)
}

// ClearRuns clears all "runs" edges to the ProcessingRun entity.
func (_u *InvoiceUpdateOne) ClearRuns() *InvoiceUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to ProcessingRun entities by IDs.
func (_u *InvoiceUpdateOne) RemoveRunIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to ProcessingRun entities.
func (_u *InvoiceUpdateOne) RemoveRuns(v ...*ProcessingRun) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.ExternalReference(); ok {
		if err := invoice.ExternalReferenceValidator(v); err != nil {
			return &ValidationError{Name: "external_reference", err: fmt.Errorf(`ent: validator failed for field "Invoice.external_reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := invoice.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency_code": %w`, err)}
		}
	}
	if _u.mutation.SupplierCleared() && len(_u.mutation.SupplierIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.supplier"`)
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
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
	if value, ok := _u.mutation.ExternalReference(); ok {
		_spec.SetField(invoice.FieldExternalReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalNet(); ok {
		_spec.SetField(invoice.FieldTotalNet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalNet(); ok {
		_spec.AddField(invoice.FieldTotalNet, field.TypeFloat64, value)
	}
	if _u.mutation.TotalNetCleared() {
		_spec.ClearField(invoice.FieldTotalNet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalTax(); ok {
		_spec.SetField(invoice.FieldTotalTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalTax(); ok {
		_spec.AddField(invoice.FieldTotalTax, field.TypeFloat64, value)
	}
	if _u.mutation.TotalTaxCleared() {
		_spec.ClearField(invoice.FieldTotalTax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalGross(); ok {
		_spec.SetField(invoice.FieldTotalGross, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalGross(); ok {
		_spec.AddField(invoice.FieldTotalGross, field.TypeFloat64, value)
	}
	if _u.mutation.TotalGrossCleared() {
		_spec.ClearField(invoice.FieldTotalGross, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.SupplierCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinesIDs(); len(nodes) > 0 && !_u.mutation.LinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
