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
	"github.com/opsfin/invoice-engine/gen/ent/supplier"
	"github.com/opsfin/invoice-engine/gen/ent/suppliertemplate"
)

// SupplierUpdate is the builder for updating Supplier entities.
type SupplierUpdate struct {
	config
	hooks    []Hook
	mutation *SupplierMutation
}

// Where appends a list predicates to the SupplierUpdate builder.
func (_u *SupplierUpdate) Where(ps ...predicate.Supplier) *SupplierUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SupplierUpdate) SetName(v string) *SupplierUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableName(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTaxNumber sets the "tax_number" field.
func (_u *SupplierUpdate) SetTaxNumber(v string) *SupplierUpdate {
	_u.mutation.SetTaxNumber(v)
	return _u
}

// SetNillableTaxNumber sets the "tax_number" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableTaxNumber(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetTaxNumber(*v)
	}
	return _u
}

// ClearTaxNumber clears the value of the "tax_number" field.
func (_u *SupplierUpdate) ClearTaxNumber() *SupplierUpdate {
	_u.mutation.ClearTaxNumber()
	return _u
}

// SetCountryCode sets the "country_code" field.
func (_u *SupplierUpdate) SetCountryCode(v string) *SupplierUpdate {
	_u.mutation.SetCountryCode(v)
	return _u
}

// SetNillableCountryCode sets the "country_code" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableCountryCode(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetCountryCode(*v)
	}
	return _u
}

// AddTemplateIDs adds the "templates" edge to the SupplierTemplate entity by IDs.
func (_u *SupplierUpdate) AddTemplateIDs(ids ...uuid.UUID) *SupplierUpdate {
	_u.mutation.AddTemplateIDs(ids...)
	return _u
}

// AddTemplates adds the "templates" edges to the SupplierTemplate entity.
func (_u *SupplierUpdate) AddTemplates(v ...*SupplierTemplate) *SupplierUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTemplateIDs(ids...)
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *SupplierUpdate) AddInvoiceIDs(ids ...uuid.UUID) *SupplierUpdate {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *SupplierUpdate) AddInvoices(v ...*Invoice) *SupplierUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the SupplierMutation object of the builder.
func (_u *SupplierUpdate) Mutation() *SupplierMutation {
	return _u.mutation
}

// ClearTemplates clears all "templates" edges to the SupplierTemplate entity.
func (_u *SupplierUpdate) ClearTemplates() *SupplierUpdate {
	_u.mutation.ClearTemplates()
	return _u
}

// RemoveTemplateIDs removes the "templates" edge to SupplierTemplate entities by IDs.
func (_u *SupplierUpdate) RemoveTemplateIDs(ids ...uuid.UUID) *SupplierUpdate {
	_u.mutation.RemoveTemplateIDs(ids...)
	return _u
}

// RemoveTemplates removes "templates" edges to SupplierTemplate entities.
func (_u *SupplierUpdate) RemoveTemplates(v ...*SupplierTemplate) *SupplierUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTemplateIDs(ids...)
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *SupplierUpdate) ClearInvoices() *SupplierUpdate {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *SupplierUpdate) RemoveInvoiceIDs(ids ...uuid.UUID) *SupplierUpdate {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *SupplierUpdate) RemoveInvoices(v ...*Invoice) *SupplierUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupplierUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupplierUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := supplier.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Supplier.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CountryCode(); ok {
		if err := supplier.CountryCodeValidator(v); err != nil {
			return &ValidationError{Name: "country_code", err: fmt.Errorf(`ent: validator failed for field "Supplier.country_code": %w`, err)}
		}
	}
	return nil
}

func (_u *SupplierUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplier.Table, supplier.Columns, sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(supplier.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaxNumber(); ok {
		_spec.SetField(supplier.FieldTaxNumber, field.TypeString, value)
	}
	if _u.mutation.TaxNumberCleared() {
		_spec.ClearField(supplier.FieldTaxNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CountryCode(); ok {
		_spec.SetField(supplier.FieldCountryCode, field.TypeString, value)
	}
	if _u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.TemplatesTable,
			Columns: []string{supplier.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suppliertemplate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTemplatesIDs(); len(nodes) > 0 && !_u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.TemplatesTable,
			Columns: []string{supplier.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suppliertemplate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.TemplatesTable,
			Columns: []string{supplier.TemplatesColumn},
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
	if _u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.InvoicesTable,
			Columns: []string{supplier.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.InvoicesTable,
			Columns: []string{supplier.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.InvoicesTable,
			Columns: []string{supplier.InvoicesColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupplierUpdateOne is the builder for updating a single Supplier entity.
type SupplierUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupplierMutation
}

// SetName sets the "name" field.
func (_u *SupplierUpdateOne) SetName(v string) *SupplierUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableName(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTaxNumber sets the "tax_number" field.
func (_u *SupplierUpdateOne) SetTaxNumber(v string) *SupplierUpdateOne {
	_u.mutation.SetTaxNumber(v)
	return _u
}

// SetNillableTaxNumber sets the "tax_number" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableTaxNumber(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetTaxNumber(*v)
	}
	return _u
}

// ClearTaxNumber clears the value of the "tax_number" field.
func (_u *SupplierUpdateOne) ClearTaxNumber() *SupplierUpdateOne {
	_u.mutation.ClearTaxNumber()
	return _u
}

// SetCountryCode sets the "country_code" field.
func (_u *SupplierUpdateOne) SetCountryCode(v string) *SupplierUpdateOne {
	_u.mutation.SetCountryCode(v)
	return _u
}

// SetNillableCountryCode sets the "country_code" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableCountryCode(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetCountryCode(*v)
	}
	return _u
}

// AddTemplateIDs adds the "templates" edge to the SupplierTemplate entity by IDs.
func (_u *SupplierUpdateOne) AddTemplateIDs(ids ...uuid.UUID) *SupplierUpdateOne {
	_u.mutation.AddTemplateIDs(ids...)
	return _u
}

// AddTemplates adds the "templates" edges to the SupplierTemplate entity.
func (_u *SupplierUpdateOne) AddTemplates(v ...*SupplierTemplate) *SupplierUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTemplateIDs(ids...)
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *SupplierUpdateOne) AddInvoiceIDs(ids ...uuid.UUID) *SupplierUpdateOne {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *SupplierUpdateOne) AddInvoices(v ...*Invoice) *SupplierUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the SupplierMutation object of the builder.
func (_u *SupplierUpdateOne) Mutation() *SupplierMutation {
	return _u.mutation
}

// ClearTemplates clears all "templates" edges to the SupplierTemplate entity.
func (_u *SupplierUpdateOne) ClearTemplates() *SupplierUpdateOne {
	_u.mutation.ClearTemplates()
	return _u
}

// RemoveTemplateIDs removes the "templates" edge to SupplierTemplate entities by IDs.
func (_u *SupplierUpdateOne) RemoveTemplateIDs(ids ...uuid.UUID) *SupplierUpdateOne {
	_u.mutation.RemoveTemplateIDs(ids...)
	return _u
}

// RemoveTemplates removes "templates" edges to SupplierTemplate entities.
func (_u *SupplierUpdateOne) RemoveTemplates(v ...*SupplierTemplate) *SupplierUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTemplateIDs(ids...)
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *SupplierUpdateOne) ClearInvoices() *SupplierUpdateOne {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *SupplierUpdateOne) RemoveInvoiceIDs(ids ...uuid.UUID) *SupplierUpdateOne {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *SupplierUpdateOne) RemoveInvoices(v ...*Invoice) *SupplierUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Where appends a list predicates to the SupplierUpdate builder.
func (_u *SupplierUpdateOne) Where(ps ...predicate.Supplier) *SupplierUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupplierUpdateOne) Select(field string, fields ...string) *SupplierUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Supplier entity.
func (_u *SupplierUpdateOne) Save(ctx context.Context) (*Supplier, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierUpdateOne) SaveX(ctx context.Context) *Supplier {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupplierUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := supplier.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Supplier.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CountryCode(); ok {
		if err := supplier.CountryCodeValidator(v); err != nil {
			return &ValidationError{Name: "country_code", err: fmt.Errorf(`ent: validator failed for field "Supplier.country_code": %w`, err)}
		}
	}
	return nil
}

func (_u *SupplierUpdateOne) sqlSave(ctx context.Context) (_node *Supplier, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplier.Table, supplier.Columns, sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Supplier.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, supplier.FieldID)
		for _, f := range fields {
			if !supplier.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != supplier.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(supplier.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaxNumber(); ok {
		_spec.SetField(supplier.FieldTaxNumber, field.TypeString, value)
	}
	if _u.mutation.TaxNumberCleared() {
		_spec.ClearField(supplier.FieldTaxNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CountryCode(); ok {
		_spec.SetField(supplier.FieldCountryCode, field.TypeString, value)
	}
	if _u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.TemplatesTable,
			Columns: []string{supplier.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suppliertemplate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTemplatesIDs(); len(nodes) > 0 && !_u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.TemplatesTable,
			Columns: []string{supplier.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suppliertemplate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.TemplatesTable,
			Columns: []string{supplier.TemplatesColumn},
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
	if _u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.InvoicesTable,
			Columns: []string{supplier.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.InvoicesTable,
			Columns: []string{supplier.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplier.InvoicesTable,
			Columns: []string{supplier.InvoicesColumn},
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
	_node = &Supplier{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
