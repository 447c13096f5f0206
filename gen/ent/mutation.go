// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/opsfin/invoice-engine/gen/ent/invoice"
	"github.com/opsfin/invoice-engine/gen/ent/invoiceline"
	"github.com/opsfin/invoice-engine/gen/ent/predicate"
	"github.com/opsfin/invoice-engine/gen/ent/processingrun"
	"github.com/opsfin/invoice-engine/gen/ent/supplier"
	"github.com/opsfin/invoice-engine/gen/ent/suppliertemplate"
	"github.com/opsfin/invoice-engine/internal/rules"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInvoice          = "Invoice"
	TypeInvoiceLine      = "InvoiceLine"
	TypeProcessingRun    = "ProcessingRun"
	TypeSupplier         = "Supplier"
	TypeSupplierTemplate = "SupplierTemplate"
)

// InvoiceMutation represents an operation that mutates the Invoice nodes in the graph.
type InvoiceMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	external_reference *string
	invoice_date       *time.Time
	total_net          *float64
	addtotal_net       *float64
	total_tax          *float64
	addtotal_tax       *float64
	total_gross        *float64
	addtotal_gross     *float64
	currency_code      *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	supplier           *uuid.UUID
	clearedsupplier    bool
	lines              map[uuid.UUID]struct{}
	removedlines       map[uuid.UUID]struct{}
	clearedlines       bool
	runs               map[uuid.UUID]struct{}
	removedruns        map[uuid.UUID]struct{}
	clearedruns        bool
	done               bool
	oldValue           func(context.Context) (*Invoice, error)
	predicates         []predicate.Invoice
}

var _ ent.Mutation = (*InvoiceMutation)(nil)

// invoiceOption allows management of the mutation configuration using functional options.
type invoiceOption func(*InvoiceMutation)

// newInvoiceMutation creates new mutation for the Invoice entity.
func newInvoiceMutation(c config, op Op, opts ...invoiceOption) *InvoiceMutation {
	m := &InvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceID sets the ID field of the mutation.
func withInvoiceID(id uuid.UUID) invoiceOption {
	return func(m *InvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Invoice
		)
		m.oldValue = func(ctx context.Context) (*Invoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoice sets the old Invoice of the mutation.
func withInvoice(node *Invoice) invoiceOption {
	return func(m *InvoiceMutation) {
		m.oldValue = func(context.Context) (*Invoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invoice entities.
func (m *InvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSupplierID sets the "supplier_id" field.
func (m *InvoiceMutation) SetSupplierID(u uuid.UUID) {
	m.supplier = &u
}

// SupplierID returns the value of the "supplier_id" field in the mutation.
func (m *InvoiceMutation) SupplierID() (r uuid.UUID, exists bool) {
	v := m.supplier
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierID returns the old "supplier_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldSupplierID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierID: %w", err)
	}
	return oldValue.SupplierID, nil
}

// ResetSupplierID resets all changes to the "supplier_id" field.
func (m *InvoiceMutation) ResetSupplierID() {
	m.supplier = nil
}

// SetExternalReference sets the "external_reference" field.
func (m *InvoiceMutation) SetExternalReference(s string) {
	m.external_reference = &s
}

// ExternalReference returns the value of the "external_reference" field in the mutation.
func (m *InvoiceMutation) ExternalReference() (r string, exists bool) {
	v := m.external_reference
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalReference returns the old "external_reference" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldExternalReference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalReference: %w", err)
	}
	return oldValue.ExternalReference, nil
}

// ResetExternalReference resets all changes to the "external_reference" field.
func (m *InvoiceMutation) ResetExternalReference() {
	m.external_reference = nil
}

// SetInvoiceDate sets the "invoice_date" field.
func (m *InvoiceMutation) SetInvoiceDate(t time.Time) {
	m.invoice_date = &t
}

// InvoiceDate returns the value of the "invoice_date" field in the mutation.
func (m *InvoiceMutation) InvoiceDate() (r time.Time, exists bool) {
	v := m.invoice_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceDate returns the old "invoice_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceDate: %w", err)
	}
	return oldValue.InvoiceDate, nil
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (m *InvoiceMutation) ClearInvoiceDate() {
	m.invoice_date = nil
	m.clearedFields[invoice.FieldInvoiceDate] = struct{}{}
}

// InvoiceDateCleared returns if the "invoice_date" field was cleared in this mutation.
func (m *InvoiceMutation) InvoiceDateCleared() bool {
	_, ok := m.clearedFields[invoice.FieldInvoiceDate]
	return ok
}

// ResetInvoiceDate resets all changes to the "invoice_date" field.
func (m *InvoiceMutation) ResetInvoiceDate() {
	m.invoice_date = nil
	delete(m.clearedFields, invoice.FieldInvoiceDate)
}

// SetTotalNet sets the "total_net" field.
func (m *InvoiceMutation) SetTotalNet(f float64) {
	m.total_net = &f
	m.addtotal_net = nil
}

// TotalNet returns the value of the "total_net" field in the mutation.
func (m *InvoiceMutation) TotalNet() (r float64, exists bool) {
	v := m.total_net
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalNet returns the old "total_net" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTotalNet(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalNet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalNet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalNet: %w", err)
	}
	return oldValue.TotalNet, nil
}

// AddTotalNet adds f to the "total_net" field.
func (m *InvoiceMutation) AddTotalNet(f float64) {
	if m.addtotal_net != nil {
		*m.addtotal_net += f
	} else {
		m.addtotal_net = &f
	}
}

// AddedTotalNet returns the value that was added to the "total_net" field in this mutation.
func (m *InvoiceMutation) AddedTotalNet() (r float64, exists bool) {
	v := m.addtotal_net
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalNet clears the value of the "total_net" field.
func (m *InvoiceMutation) ClearTotalNet() {
	m.total_net = nil
	m.addtotal_net = nil
	m.clearedFields[invoice.FieldTotalNet] = struct{}{}
}

// TotalNetCleared returns if the "total_net" field was cleared in this mutation.
func (m *InvoiceMutation) TotalNetCleared() bool {
	_, ok := m.clearedFields[invoice.FieldTotalNet]
	return ok
}

// ResetTotalNet resets all changes to the "total_net" field.
func (m *InvoiceMutation) ResetTotalNet() {
	m.total_net = nil
	m.addtotal_net = nil
	delete(m.clearedFields, invoice.FieldTotalNet)
}

// SetTotalTax sets the "total_tax" field.
func (m *InvoiceMutation) SetTotalTax(f float64) {
	m.total_tax = &f
	m.addtotal_tax = nil
}

// TotalTax returns the value of the "total_tax" field in the mutation.
func (m *InvoiceMutation) TotalTax() (r float64, exists bool) {
	v := m.total_tax
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTax returns the old "total_tax" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTotalTax(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTax: %w", err)
	}
	return oldValue.TotalTax, nil
}

// AddTotalTax adds f to the "total_tax" field.
func (m *InvoiceMutation) AddTotalTax(f float64) {
	if m.addtotal_tax != nil {
		*m.addtotal_tax += f
	} else {
		m.addtotal_tax = &f
	}
}

// AddedTotalTax returns the value that was added to the "total_tax" field in this mutation.
func (m *InvoiceMutation) AddedTotalTax() (r float64, exists bool) {
	v := m.addtotal_tax
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalTax clears the value of the "total_tax" field.
func (m *InvoiceMutation) ClearTotalTax() {
	m.total_tax = nil
	m.addtotal_tax = nil
	m.clearedFields[invoice.FieldTotalTax] = struct{}{}
}

// TotalTaxCleared returns if the "total_tax" field was cleared in this mutation.
func (m *InvoiceMutation) TotalTaxCleared() bool {
	_, ok := m.clearedFields[invoice.FieldTotalTax]
	return ok
}

// ResetTotalTax resets all changes to the "total_tax" field.
func (m *InvoiceMutation) ResetTotalTax() {
	m.total_tax = nil
	m.addtotal_tax = nil
	delete(m.clearedFields, invoice.FieldTotalTax)
}

// SetTotalGross sets the "total_gross" field.
func (m *InvoiceMutation) SetTotalGross(f float64) {
	m.total_gross = &f
	m.addtotal_gross = nil
}

// TotalGross returns the value of the "total_gross" field in the mutation.
func (m *InvoiceMutation) TotalGross() (r float64, exists bool) {
	v := m.total_gross
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalGross returns the old "total_gross" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTotalGross(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalGross is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalGross requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalGross: %w", err)
	}
	return oldValue.TotalGross, nil
}

// AddTotalGross adds f to the "total_gross" field.
func (m *InvoiceMutation) AddTotalGross(f float64) {
	if m.addtotal_gross != nil {
		*m.addtotal_gross += f
	} else {
		m.addtotal_gross = &f
	}
}

// AddedTotalGross returns the value that was added to the "total_gross" field in this mutation.
func (m *InvoiceMutation) AddedTotalGross() (r float64, exists bool) {
	v := m.addtotal_gross
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalGross clears the value of the "total_gross" field.
func (m *InvoiceMutation) ClearTotalGross() {
	m.total_gross = nil
	m.addtotal_gross = nil
	m.clearedFields[invoice.FieldTotalGross] = struct{}{}
}

// TotalGrossCleared returns if the "total_gross" field was cleared in this mutation.
func (m *InvoiceMutation) TotalGrossCleared() bool {
	_, ok := m.clearedFields[invoice.FieldTotalGross]
	return ok
}

// ResetTotalGross resets all changes to the "total_gross" field.
func (m *InvoiceMutation) ResetTotalGross() {
	m.total_gross = nil
	m.addtotal_gross = nil
	delete(m.clearedFields, invoice.FieldTotalGross)
}

// SetCurrencyCode sets the "currency_code" field.
func (m *InvoiceMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *InvoiceMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *InvoiceMutation) ResetCurrencyCode() {
	m.currency_code = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (m *InvoiceMutation) ClearSupplier() {
	m.clearedsupplier = true
	m.clearedFields[invoice.FieldSupplierID] = struct{}{}
}

// SupplierCleared reports if the "supplier" edge to the Supplier entity was cleared.
func (m *InvoiceMutation) SupplierCleared() bool {
	return m.clearedsupplier
}

// SupplierIDs returns the "supplier" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SupplierID instead. It exists only for internal usage by the builders.
func (m *InvoiceMutation) SupplierIDs() (ids []uuid.UUID) {
	if id := m.supplier; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSupplier resets all changes to the "supplier" edge.
func (m *InvoiceMutation) ResetSupplier() {
	m.supplier = nil
	m.clearedsupplier = false
}

// AddLineIDs adds the "lines" edge to the InvoiceLine entity by ids.
func (m *InvoiceMutation) AddLineIDs(ids ...uuid.UUID) {
	if m.lines == nil {
		m.lines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.lines[ids[i]] = struct{}{}
	}
}

// ClearLines clears the "lines" edge to the InvoiceLine entity.
func (m *InvoiceMutation) ClearLines() {
	m.clearedlines = true
}

// LinesCleared reports if the "lines" edge to the InvoiceLine entity was cleared.
func (m *InvoiceMutation) LinesCleared() bool {
	return m.clearedlines
}

// RemoveLineIDs removes the "lines" edge to the InvoiceLine entity by IDs.
func (m *InvoiceMutation) RemoveLineIDs(ids ...uuid.UUID) {
	if m.removedlines == nil {
		m.removedlines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.lines, ids[i])
		m.removedlines[ids[i]] = struct{}{}
	}
}

// RemovedLines returns the removed IDs of the "lines" edge to the InvoiceLine entity.
func (m *InvoiceMutation) RemovedLinesIDs() (ids []uuid.UUID) {
	for id := range m.removedlines {
		ids = append(ids, id)
	}
	return
}

// LinesIDs returns the "lines" edge IDs in the mutation.
func (m *InvoiceMutation) LinesIDs() (ids []uuid.UUID) {
	for id := range m.lines {
		ids = append(ids, id)
	}
	return
}

// ResetLines resets all changes to the "lines" edge.
func (m *InvoiceMutation) ResetLines() {
	m.lines = nil
	m.clearedlines = false
	m.removedlines = nil
}

// AddRunIDs adds the "runs" edge to the ProcessingRun entity by ids.
func (m *InvoiceMutation) AddRunIDs(ids ...uuid.UUID) {
	if m.runs == nil {
		m.runs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the ProcessingRun entity.
func (m *InvoiceMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the ProcessingRun entity was cleared.
func (m *InvoiceMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the ProcessingRun entity by IDs.
func (m *InvoiceMutation) RemoveRunIDs(ids ...uuid.UUID) {
	if m.removedruns == nil {
		m.removedruns = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the ProcessingRun entity.
func (m *InvoiceMutation) RemovedRunsIDs() (ids []uuid.UUID) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *InvoiceMutation) RunsIDs() (ids []uuid.UUID) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *InvoiceMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the InvoiceMutation builder.
func (m *InvoiceMutation) Where(ps ...predicate.Invoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invoice).
func (m *InvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.supplier != nil {
		fields = append(fields, invoice.FieldSupplierID)
	}
	if m.external_reference != nil {
		fields = append(fields, invoice.FieldExternalReference)
	}
	if m.invoice_date != nil {
		fields = append(fields, invoice.FieldInvoiceDate)
	}
	if m.total_net != nil {
		fields = append(fields, invoice.FieldTotalNet)
	}
	if m.total_tax != nil {
		fields = append(fields, invoice.FieldTotalTax)
	}
	if m.total_gross != nil {
		fields = append(fields, invoice.FieldTotalGross)
	}
	if m.currency_code != nil {
		fields = append(fields, invoice.FieldCurrencyCode)
	}
	if m.created_at != nil {
		fields = append(fields, invoice.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldSupplierID:
		return m.SupplierID()
	case invoice.FieldExternalReference:
		return m.ExternalReference()
	case invoice.FieldInvoiceDate:
		return m.InvoiceDate()
	case invoice.FieldTotalNet:
		return m.TotalNet()
	case invoice.FieldTotalTax:
		return m.TotalTax()
	case invoice.FieldTotalGross:
		return m.TotalGross()
	case invoice.FieldCurrencyCode:
		return m.CurrencyCode()
	case invoice.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoice.FieldSupplierID:
		return m.OldSupplierID(ctx)
	case invoice.FieldExternalReference:
		return m.OldExternalReference(ctx)
	case invoice.FieldInvoiceDate:
		return m.OldInvoiceDate(ctx)
	case invoice.FieldTotalNet:
		return m.OldTotalNet(ctx)
	case invoice.FieldTotalTax:
		return m.OldTotalTax(ctx)
	case invoice.FieldTotalGross:
		return m.OldTotalGross(ctx)
	case invoice.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case invoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Invoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldSupplierID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierID(v)
		return nil
	case invoice.FieldExternalReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalReference(v)
		return nil
	case invoice.FieldInvoiceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceDate(v)
		return nil
	case invoice.FieldTotalNet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalNet(v)
		return nil
	case invoice.FieldTotalTax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTax(v)
		return nil
	case invoice.FieldTotalGross:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalGross(v)
		return nil
	case invoice.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case invoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_net != nil {
		fields = append(fields, invoice.FieldTotalNet)
	}
	if m.addtotal_tax != nil {
		fields = append(fields, invoice.FieldTotalTax)
	}
	if m.addtotal_gross != nil {
		fields = append(fields, invoice.FieldTotalGross)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldTotalNet:
		return m.AddedTotalNet()
	case invoice.FieldTotalTax:
		return m.AddedTotalTax()
	case invoice.FieldTotalGross:
		return m.AddedTotalGross()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldTotalNet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalNet(v)
		return nil
	case invoice.FieldTotalTax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTax(v)
		return nil
	case invoice.FieldTotalGross:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalGross(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoice.FieldInvoiceDate) {
		fields = append(fields, invoice.FieldInvoiceDate)
	}
	if m.FieldCleared(invoice.FieldTotalNet) {
		fields = append(fields, invoice.FieldTotalNet)
	}
	if m.FieldCleared(invoice.FieldTotalTax) {
		fields = append(fields, invoice.FieldTotalTax)
	}
	if m.FieldCleared(invoice.FieldTotalGross) {
		fields = append(fields, invoice.FieldTotalGross)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceMutation) ClearField(name string) error {
	switch name {
	case invoice.FieldInvoiceDate:
		m.ClearInvoiceDate()
		return nil
	case invoice.FieldTotalNet:
		m.ClearTotalNet()
		return nil
	case invoice.FieldTotalTax:
		m.ClearTotalTax()
		return nil
	case invoice.FieldTotalGross:
		m.ClearTotalGross()
		return nil
	}
	return fmt.Errorf("unknown Invoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceMutation) ResetField(name string) error {
	switch name {
	case invoice.FieldSupplierID:
		m.ResetSupplierID()
		return nil
	case invoice.FieldExternalReference:
		m.ResetExternalReference()
		return nil
	case invoice.FieldInvoiceDate:
		m.ResetInvoiceDate()
		return nil
	case invoice.FieldTotalNet:
		m.ResetTotalNet()
		return nil
	case invoice.FieldTotalTax:
		m.ResetTotalTax()
		return nil
	case invoice.FieldTotalGross:
		m.ResetTotalGross()
		return nil
	case invoice.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case invoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.supplier != nil {
		edges = append(edges, invoice.EdgeSupplier)
	}
	if m.lines != nil {
		edges = append(edges, invoice.EdgeLines)
	}
	if m.runs != nil {
		edges = append(edges, invoice.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeSupplier:
		if id := m.supplier; id != nil {
			return []ent.Value{*id}
		}
	case invoice.EdgeLines:
		ids := make([]ent.Value, 0, len(m.lines))
		for id := range m.lines {
			ids = append(ids, id)
		}
		return ids
	case invoice.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedlines != nil {
		edges = append(edges, invoice.EdgeLines)
	}
	if m.removedruns != nil {
		edges = append(edges, invoice.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeLines:
		ids := make([]ent.Value, 0, len(m.removedlines))
		for id := range m.removedlines {
			ids = append(ids, id)
		}
		return ids
	case invoice.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsupplier {
		edges = append(edges, invoice.EdgeSupplier)
	}
	if m.clearedlines {
		edges = append(edges, invoice.EdgeLines)
	}
	if m.clearedruns {
		edges = append(edges, invoice.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceMutation) EdgeCleared(name string) bool {
	switch name {
	case invoice.EdgeSupplier:
		return m.clearedsupplier
	case invoice.EdgeLines:
		return m.clearedlines
	case invoice.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceMutation) ClearEdge(name string) error {
	switch name {
	case invoice.EdgeSupplier:
		m.ClearSupplier()
		return nil
	}
	return fmt.Errorf("unknown Invoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceMutation) ResetEdge(name string) error {
	switch name {
	case invoice.EdgeSupplier:
		m.ResetSupplier()
		return nil
	case invoice.EdgeLines:
		m.ResetLines()
		return nil
	case invoice.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown Invoice edge %s", name)
}

// InvoiceLineMutation represents an operation that mutates the InvoiceLine nodes in the graph.
type InvoiceLineMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	description    *string
	quantity       *float64
	addquantity    *float64
	unit_price     *float64
	addunit_price  *float64
	line_total     *float64
	addline_total  *float64
	clearedFields  map[string]struct{}
	invoice        *uuid.UUID
	clearedinvoice bool
	done           bool
	oldValue       func(context.Context) (*InvoiceLine, error)
	predicates     []predicate.InvoiceLine
}

var _ ent.Mutation = (*InvoiceLineMutation)(nil)

// invoicelineOption allows management of the mutation configuration using functional options.
type invoicelineOption func(*InvoiceLineMutation)

// newInvoiceLineMutation creates new mutation for the InvoiceLine entity.
func newInvoiceLineMutation(c config, op Op, opts ...invoicelineOption) *InvoiceLineMutation {
	m := &InvoiceLineMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoiceLine,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceLineID sets the ID field of the mutation.
func withInvoiceLineID(id uuid.UUID) invoicelineOption {
	return func(m *InvoiceLineMutation) {
		var (
			err   error
			once  sync.Once
			value *InvoiceLine
		)
		m.oldValue = func(ctx context.Context) (*InvoiceLine, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvoiceLine.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoiceLine sets the old InvoiceLine of the mutation.
func withInvoiceLine(node *InvoiceLine) invoicelineOption {
	return func(m *InvoiceLineMutation) {
		m.oldValue = func(context.Context) (*InvoiceLine, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceLineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceLineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InvoiceLine entities.
func (m *InvoiceLineMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceLineMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceLineMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvoiceLine.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvoiceID sets the "invoice_id" field.
func (m *InvoiceLineMutation) SetInvoiceID(u uuid.UUID) {
	m.invoice = &u
}

// InvoiceID returns the value of the "invoice_id" field in the mutation.
func (m *InvoiceLineMutation) InvoiceID() (r uuid.UUID, exists bool) {
	v := m.invoice
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceID returns the old "invoice_id" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldInvoiceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceID: %w", err)
	}
	return oldValue.InvoiceID, nil
}

// ResetInvoiceID resets all changes to the "invoice_id" field.
func (m *InvoiceLineMutation) ResetInvoiceID() {
	m.invoice = nil
}

// SetDescription sets the "description" field.
func (m *InvoiceLineMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *InvoiceLineMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *InvoiceLineMutation) ResetDescription() {
	m.description = nil
}

// SetQuantity sets the "quantity" field.
func (m *InvoiceLineMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *InvoiceLineMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldQuantity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *InvoiceLineMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *InvoiceLineMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *InvoiceLineMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *InvoiceLineMutation) SetUnitPrice(f float64) {
	m.unit_price = &f
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *InvoiceLineMutation) UnitPrice() (r float64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldUnitPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds f to the "unit_price" field.
func (m *InvoiceLineMutation) AddUnitPrice(f float64) {
	if m.addunit_price != nil {
		*m.addunit_price += f
	} else {
		m.addunit_price = &f
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *InvoiceLineMutation) AddedUnitPrice() (r float64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *InvoiceLineMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
}

// SetLineTotal sets the "line_total" field.
func (m *InvoiceLineMutation) SetLineTotal(f float64) {
	m.line_total = &f
	m.addline_total = nil
}

// LineTotal returns the value of the "line_total" field in the mutation.
func (m *InvoiceLineMutation) LineTotal() (r float64, exists bool) {
	v := m.line_total
	if v == nil {
		return
	}
	return *v, true
}

// OldLineTotal returns the old "line_total" field's value of the InvoiceLine entity.
// If the InvoiceLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineMutation) OldLineTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineTotal: %w", err)
	}
	return oldValue.LineTotal, nil
}

// AddLineTotal adds f to the "line_total" field.
func (m *InvoiceLineMutation) AddLineTotal(f float64) {
	if m.addline_total != nil {
		*m.addline_total += f
	} else {
		m.addline_total = &f
	}
}

// AddedLineTotal returns the value that was added to the "line_total" field in this mutation.
func (m *InvoiceLineMutation) AddedLineTotal() (r float64, exists bool) {
	v := m.addline_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetLineTotal resets all changes to the "line_total" field.
func (m *InvoiceLineMutation) ResetLineTotal() {
	m.line_total = nil
	m.addline_total = nil
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (m *InvoiceLineMutation) ClearInvoice() {
	m.clearedinvoice = true
	m.clearedFields[invoiceline.FieldInvoiceID] = struct{}{}
}

// InvoiceCleared reports if the "invoice" edge to the Invoice entity was cleared.
func (m *InvoiceLineMutation) InvoiceCleared() bool {
	return m.clearedinvoice
}

// InvoiceIDs returns the "invoice" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvoiceID instead. It exists only for internal usage by the builders.
func (m *InvoiceLineMutation) InvoiceIDs() (ids []uuid.UUID) {
	if id := m.invoice; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvoice resets all changes to the "invoice" edge.
func (m *InvoiceLineMutation) ResetInvoice() {
	m.invoice = nil
	m.clearedinvoice = false
}

// Where appends a list predicates to the InvoiceLineMutation builder.
func (m *InvoiceLineMutation) Where(ps ...predicate.InvoiceLine) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceLineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceLineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvoiceLine, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceLineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceLineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvoiceLine).
func (m *InvoiceLineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceLineMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.invoice != nil {
		fields = append(fields, invoiceline.FieldInvoiceID)
	}
	if m.description != nil {
		fields = append(fields, invoiceline.FieldDescription)
	}
	if m.quantity != nil {
		fields = append(fields, invoiceline.FieldQuantity)
	}
	if m.unit_price != nil {
		fields = append(fields, invoiceline.FieldUnitPrice)
	}
	if m.line_total != nil {
		fields = append(fields, invoiceline.FieldLineTotal)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceLineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoiceline.FieldInvoiceID:
		return m.InvoiceID()
	case invoiceline.FieldDescription:
		return m.Description()
	case invoiceline.FieldQuantity:
		return m.Quantity()
	case invoiceline.FieldUnitPrice:
		return m.UnitPrice()
	case invoiceline.FieldLineTotal:
		return m.LineTotal()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceLineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoiceline.FieldInvoiceID:
		return m.OldInvoiceID(ctx)
	case invoiceline.FieldDescription:
		return m.OldDescription(ctx)
	case invoiceline.FieldQuantity:
		return m.OldQuantity(ctx)
	case invoiceline.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case invoiceline.FieldLineTotal:
		return m.OldLineTotal(ctx)
	}
	return nil, fmt.Errorf("unknown InvoiceLine field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceLineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoiceline.FieldInvoiceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceID(v)
		return nil
	case invoiceline.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case invoiceline.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case invoiceline.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case invoiceline.FieldLineTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineTotal(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceLineMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, invoiceline.FieldQuantity)
	}
	if m.addunit_price != nil {
		fields = append(fields, invoiceline.FieldUnitPrice)
	}
	if m.addline_total != nil {
		fields = append(fields, invoiceline.FieldLineTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceLineMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoiceline.FieldQuantity:
		return m.AddedQuantity()
	case invoiceline.FieldUnitPrice:
		return m.AddedUnitPrice()
	case invoiceline.FieldLineTotal:
		return m.AddedLineTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceLineMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoiceline.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case invoiceline.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case invoiceline.FieldLineTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLineTotal(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceLineMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceLineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceLineMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InvoiceLine nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceLineMutation) ResetField(name string) error {
	switch name {
	case invoiceline.FieldInvoiceID:
		m.ResetInvoiceID()
		return nil
	case invoiceline.FieldDescription:
		m.ResetDescription()
		return nil
	case invoiceline.FieldQuantity:
		m.ResetQuantity()
		return nil
	case invoiceline.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case invoiceline.FieldLineTotal:
		m.ResetLineTotal()
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceLineMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.invoice != nil {
		edges = append(edges, invoiceline.EdgeInvoice)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceLineMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoiceline.EdgeInvoice:
		if id := m.invoice; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceLineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceLineMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceLineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvoice {
		edges = append(edges, invoiceline.EdgeInvoice)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceLineMutation) EdgeCleared(name string) bool {
	switch name {
	case invoiceline.EdgeInvoice:
		return m.clearedinvoice
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceLineMutation) ClearEdge(name string) error {
	switch name {
	case invoiceline.EdgeInvoice:
		m.ClearInvoice()
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceLineMutation) ResetEdge(name string) error {
	switch name {
	case invoiceline.EdgeInvoice:
		m.ResetInvoice()
		return nil
	}
	return fmt.Errorf("unknown InvoiceLine edge %s", name)
}

// ProcessingRunMutation represents an operation that mutates the ProcessingRun nodes in the graph.
type ProcessingRunMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	engine_version  *string
	status          *string
	notes           *string
	completed_at    *time.Time
	clearedFields   map[string]struct{}
	invoice         *uuid.UUID
	clearedinvoice  bool
	template        *uuid.UUID
	clearedtemplate bool
	done            bool
	oldValue        func(context.Context) (*ProcessingRun, error)
	predicates      []predicate.ProcessingRun
}

var _ ent.Mutation = (*ProcessingRunMutation)(nil)

// processingrunOption allows management of the mutation configuration using functional options.
type processingrunOption func(*ProcessingRunMutation)

// newProcessingRunMutation creates new mutation for the ProcessingRun entity.
func newProcessingRunMutation(c config, op Op, opts ...processingrunOption) *ProcessingRunMutation {
	m := &ProcessingRunMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingRunID sets the ID field of the mutation.
func withProcessingRunID(id uuid.UUID) processingrunOption {
	return func(m *ProcessingRunMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingRun
		)
		m.oldValue = func(ctx context.Context) (*ProcessingRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingRun sets the old ProcessingRun of the mutation.
func withProcessingRun(node *ProcessingRun) processingrunOption {
	return func(m *ProcessingRunMutation) {
		m.oldValue = func(context.Context) (*ProcessingRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessingRun entities.
func (m *ProcessingRunMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingRunMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingRunMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvoiceID sets the "invoice_id" field.
func (m *ProcessingRunMutation) SetInvoiceID(u uuid.UUID) {
	m.invoice = &u
}

// InvoiceID returns the value of the "invoice_id" field in the mutation.
func (m *ProcessingRunMutation) InvoiceID() (r uuid.UUID, exists bool) {
	v := m.invoice
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceID returns the old "invoice_id" field's value of the ProcessingRun entity.
// If the ProcessingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingRunMutation) OldInvoiceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceID: %w", err)
	}
	return oldValue.InvoiceID, nil
}

// ResetInvoiceID resets all changes to the "invoice_id" field.
func (m *ProcessingRunMutation) ResetInvoiceID() {
	m.invoice = nil
}

// SetEngineVersion sets the "engine_version" field.
func (m *ProcessingRunMutation) SetEngineVersion(s string) {
	m.engine_version = &s
}

// EngineVersion returns the value of the "engine_version" field in the mutation.
func (m *ProcessingRunMutation) EngineVersion() (r string, exists bool) {
	v := m.engine_version
	if v == nil {
		return
	}
	return *v, true
}

// OldEngineVersion returns the old "engine_version" field's value of the ProcessingRun entity.
// If the ProcessingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingRunMutation) OldEngineVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngineVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngineVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngineVersion: %w", err)
	}
	return oldValue.EngineVersion, nil
}

// ResetEngineVersion resets all changes to the "engine_version" field.
func (m *ProcessingRunMutation) ResetEngineVersion() {
	m.engine_version = nil
}

// SetTemplateID sets the "template_id" field.
func (m *ProcessingRunMutation) SetTemplateID(u uuid.UUID) {
	m.template = &u
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *ProcessingRunMutation) TemplateID() (r uuid.UUID, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the ProcessingRun entity.
// If the ProcessingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingRunMutation) OldTemplateID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ClearTemplateID clears the value of the "template_id" field.
func (m *ProcessingRunMutation) ClearTemplateID() {
	m.template = nil
	m.clearedFields[processingrun.FieldTemplateID] = struct{}{}
}

// TemplateIDCleared returns if the "template_id" field was cleared in this mutation.
func (m *ProcessingRunMutation) TemplateIDCleared() bool {
	_, ok := m.clearedFields[processingrun.FieldTemplateID]
	return ok
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *ProcessingRunMutation) ResetTemplateID() {
	m.template = nil
	delete(m.clearedFields, processingrun.FieldTemplateID)
}

// SetStatus sets the "status" field.
func (m *ProcessingRunMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessingRunMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessingRun entity.
// If the ProcessingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingRunMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessingRunMutation) ResetStatus() {
	m.status = nil
}

// SetNotes sets the "notes" field.
func (m *ProcessingRunMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ProcessingRunMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the ProcessingRun entity.
// If the ProcessingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingRunMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *ProcessingRunMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[processingrun.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *ProcessingRunMutation) NotesCleared() bool {
	_, ok := m.clearedFields[processingrun.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *ProcessingRunMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, processingrun.FieldNotes)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ProcessingRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ProcessingRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ProcessingRun entity.
// If the ProcessingRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingRunMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ProcessingRunMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (m *ProcessingRunMutation) ClearInvoice() {
	m.clearedinvoice = true
	m.clearedFields[processingrun.FieldInvoiceID] = struct{}{}
}

// InvoiceCleared reports if the "invoice" edge to the Invoice entity was cleared.
func (m *ProcessingRunMutation) InvoiceCleared() bool {
	return m.clearedinvoice
}

// InvoiceIDs returns the "invoice" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvoiceID instead. It exists only for internal usage by the builders.
func (m *ProcessingRunMutation) InvoiceIDs() (ids []uuid.UUID) {
	if id := m.invoice; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvoice resets all changes to the "invoice" edge.
func (m *ProcessingRunMutation) ResetInvoice() {
	m.invoice = nil
	m.clearedinvoice = false
}

// ClearTemplate clears the "template" edge to the SupplierTemplate entity.
func (m *ProcessingRunMutation) ClearTemplate() {
	m.clearedtemplate = true
	m.clearedFields[processingrun.FieldTemplateID] = struct{}{}
}

// TemplateCleared reports if the "template" edge to the SupplierTemplate entity was cleared.
func (m *ProcessingRunMutation) TemplateCleared() bool {
	return m.TemplateIDCleared() || m.clearedtemplate
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *ProcessingRunMutation) TemplateIDs() (ids []uuid.UUID) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *ProcessingRunMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// Where appends a list predicates to the ProcessingRunMutation builder.
func (m *ProcessingRunMutation) Where(ps ...predicate.ProcessingRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingRun).
func (m *ProcessingRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingRunMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.invoice != nil {
		fields = append(fields, processingrun.FieldInvoiceID)
	}
	if m.engine_version != nil {
		fields = append(fields, processingrun.FieldEngineVersion)
	}
	if m.template != nil {
		fields = append(fields, processingrun.FieldTemplateID)
	}
	if m.status != nil {
		fields = append(fields, processingrun.FieldStatus)
	}
	if m.notes != nil {
		fields = append(fields, processingrun.FieldNotes)
	}
	if m.completed_at != nil {
		fields = append(fields, processingrun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processingrun.FieldInvoiceID:
		return m.InvoiceID()
	case processingrun.FieldEngineVersion:
		return m.EngineVersion()
	case processingrun.FieldTemplateID:
		return m.TemplateID()
	case processingrun.FieldStatus:
		return m.Status()
	case processingrun.FieldNotes:
		return m.Notes()
	case processingrun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processingrun.FieldInvoiceID:
		return m.OldInvoiceID(ctx)
	case processingrun.FieldEngineVersion:
		return m.OldEngineVersion(ctx)
	case processingrun.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case processingrun.FieldStatus:
		return m.OldStatus(ctx)
	case processingrun.FieldNotes:
		return m.OldNotes(ctx)
	case processingrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processingrun.FieldInvoiceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceID(v)
		return nil
	case processingrun.FieldEngineVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngineVersion(v)
		return nil
	case processingrun.FieldTemplateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case processingrun.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processingrun.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case processingrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProcessingRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processingrun.FieldTemplateID) {
		fields = append(fields, processingrun.FieldTemplateID)
	}
	if m.FieldCleared(processingrun.FieldNotes) {
		fields = append(fields, processingrun.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingRunMutation) ClearField(name string) error {
	switch name {
	case processingrun.FieldTemplateID:
		m.ClearTemplateID()
		return nil
	case processingrun.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown ProcessingRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingRunMutation) ResetField(name string) error {
	switch name {
	case processingrun.FieldInvoiceID:
		m.ResetInvoiceID()
		return nil
	case processingrun.FieldEngineVersion:
		m.ResetEngineVersion()
		return nil
	case processingrun.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case processingrun.FieldStatus:
		m.ResetStatus()
		return nil
	case processingrun.FieldNotes:
		m.ResetNotes()
		return nil
	case processingrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.invoice != nil {
		edges = append(edges, processingrun.EdgeInvoice)
	}
	if m.template != nil {
		edges = append(edges, processingrun.EdgeTemplate)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processingrun.EdgeInvoice:
		if id := m.invoice; id != nil {
			return []ent.Value{*id}
		}
	case processingrun.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedinvoice {
		edges = append(edges, processingrun.EdgeInvoice)
	}
	if m.clearedtemplate {
		edges = append(edges, processingrun.EdgeTemplate)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingRunMutation) EdgeCleared(name string) bool {
	switch name {
	case processingrun.EdgeInvoice:
		return m.clearedinvoice
	case processingrun.EdgeTemplate:
		return m.clearedtemplate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingRunMutation) ClearEdge(name string) error {
	switch name {
	case processingrun.EdgeInvoice:
		m.ClearInvoice()
		return nil
	case processingrun.EdgeTemplate:
		m.ClearTemplate()
		return nil
	}
	return fmt.Errorf("unknown ProcessingRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingRunMutation) ResetEdge(name string) error {
	switch name {
	case processingrun.EdgeInvoice:
		m.ResetInvoice()
		return nil
	case processingrun.EdgeTemplate:
		m.ResetTemplate()
		return nil
	}
	return fmt.Errorf("unknown ProcessingRun edge %s", name)
}

// SupplierMutation represents an operation that mutates the Supplier nodes in the graph.
type SupplierMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	tax_number       *string
	country_code     *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	templates        map[uuid.UUID]struct{}
	removedtemplates map[uuid.UUID]struct{}
	clearedtemplates bool
	invoices         map[uuid.UUID]struct{}
	removedinvoices  map[uuid.UUID]struct{}
	clearedinvoices  bool
	done             bool
	oldValue         func(context.Context) (*Supplier, error)
	predicates       []predicate.Supplier
}

var _ ent.Mutation = (*SupplierMutation)(nil)

// supplierOption allows management of the mutation configuration using functional options.
type supplierOption func(*SupplierMutation)

// newSupplierMutation creates new mutation for the Supplier entity.
func newSupplierMutation(c config, op Op, opts ...supplierOption) *SupplierMutation {
	m := &SupplierMutation{
		config:        c,
		op:            op,
		typ:           TypeSupplier,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSupplierID sets the ID field of the mutation.
func withSupplierID(id uuid.UUID) supplierOption {
	return func(m *SupplierMutation) {
		var (
			err   error
			once  sync.Once
			value *Supplier
		)
		m.oldValue = func(ctx context.Context) (*Supplier, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Supplier.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSupplier sets the old Supplier of the mutation.
func withSupplier(node *Supplier) supplierOption {
	return func(m *SupplierMutation) {
		m.oldValue = func(context.Context) (*Supplier, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SupplierMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SupplierMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Supplier entities.
func (m *SupplierMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SupplierMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SupplierMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Supplier.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SupplierMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SupplierMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SupplierMutation) ResetName() {
	m.name = nil
}

// SetTaxNumber sets the "tax_number" field.
func (m *SupplierMutation) SetTaxNumber(s string) {
	m.tax_number = &s
}

// TaxNumber returns the value of the "tax_number" field in the mutation.
func (m *SupplierMutation) TaxNumber() (r string, exists bool) {
	v := m.tax_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxNumber returns the old "tax_number" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldTaxNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxNumber: %w", err)
	}
	return oldValue.TaxNumber, nil
}

// ClearTaxNumber clears the value of the "tax_number" field.
func (m *SupplierMutation) ClearTaxNumber() {
	m.tax_number = nil
	m.clearedFields[supplier.FieldTaxNumber] = struct{}{}
}

// TaxNumberCleared returns if the "tax_number" field was cleared in this mutation.
func (m *SupplierMutation) TaxNumberCleared() bool {
	_, ok := m.clearedFields[supplier.FieldTaxNumber]
	return ok
}

// ResetTaxNumber resets all changes to the "tax_number" field.
func (m *SupplierMutation) ResetTaxNumber() {
	m.tax_number = nil
	delete(m.clearedFields, supplier.FieldTaxNumber)
}

// SetCountryCode sets the "country_code" field.
func (m *SupplierMutation) SetCountryCode(s string) {
	m.country_code = &s
}

// CountryCode returns the value of the "country_code" field in the mutation.
func (m *SupplierMutation) CountryCode() (r string, exists bool) {
	v := m.country_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCountryCode returns the old "country_code" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldCountryCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountryCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountryCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountryCode: %w", err)
	}
	return oldValue.CountryCode, nil
}

// ResetCountryCode resets all changes to the "country_code" field.
func (m *SupplierMutation) ResetCountryCode() {
	m.country_code = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SupplierMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SupplierMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SupplierMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddTemplateIDs adds the "templates" edge to the SupplierTemplate entity by ids.
func (m *SupplierMutation) AddTemplateIDs(ids ...uuid.UUID) {
	if m.templates == nil {
		m.templates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.templates[ids[i]] = struct{}{}
	}
}

// ClearTemplates clears the "templates" edge to the SupplierTemplate entity.
func (m *SupplierMutation) ClearTemplates() {
	m.clearedtemplates = true
}

// TemplatesCleared reports if the "templates" edge to the SupplierTemplate entity was cleared.
func (m *SupplierMutation) TemplatesCleared() bool {
	return m.clearedtemplates
}

// RemoveTemplateIDs removes the "templates" edge to the SupplierTemplate entity by IDs.
func (m *SupplierMutation) RemoveTemplateIDs(ids ...uuid.UUID) {
	if m.removedtemplates == nil {
		m.removedtemplates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.templates, ids[i])
		m.removedtemplates[ids[i]] = struct{}{}
	}
}

// RemovedTemplates returns the removed IDs of the "templates" edge to the SupplierTemplate entity.
func (m *SupplierMutation) RemovedTemplatesIDs() (ids []uuid.UUID) {
	for id := range m.removedtemplates {
		ids = append(ids, id)
	}
	return
}

// TemplatesIDs returns the "templates" edge IDs in the mutation.
func (m *SupplierMutation) TemplatesIDs() (ids []uuid.UUID) {
	for id := range m.templates {
		ids = append(ids, id)
	}
	return
}

// ResetTemplates resets all changes to the "templates" edge.
func (m *SupplierMutation) ResetTemplates() {
	m.templates = nil
	m.clearedtemplates = false
	m.removedtemplates = nil
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by ids.
func (m *SupplierMutation) AddInvoiceIDs(ids ...uuid.UUID) {
	if m.invoices == nil {
		m.invoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.invoices[ids[i]] = struct{}{}
	}
}

// ClearInvoices clears the "invoices" edge to the Invoice entity.
func (m *SupplierMutation) ClearInvoices() {
	m.clearedinvoices = true
}

// InvoicesCleared reports if the "invoices" edge to the Invoice entity was cleared.
func (m *SupplierMutation) InvoicesCleared() bool {
	return m.clearedinvoices
}

// RemoveInvoiceIDs removes the "invoices" edge to the Invoice entity by IDs.
func (m *SupplierMutation) RemoveInvoiceIDs(ids ...uuid.UUID) {
	if m.removedinvoices == nil {
		m.removedinvoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.invoices, ids[i])
		m.removedinvoices[ids[i]] = struct{}{}
	}
}

// RemovedInvoices returns the removed IDs of the "invoices" edge to the Invoice entity.
func (m *SupplierMutation) RemovedInvoicesIDs() (ids []uuid.UUID) {
	for id := range m.removedinvoices {
		ids = append(ids, id)
	}
	return
}

// InvoicesIDs returns the "invoices" edge IDs in the mutation.
func (m *SupplierMutation) InvoicesIDs() (ids []uuid.UUID) {
	for id := range m.invoices {
		ids = append(ids, id)
	}
	return
}

// ResetInvoices resets all changes to the "invoices" edge.
func (m *SupplierMutation) ResetInvoices() {
	m.invoices = nil
	m.clearedinvoices = false
	m.removedinvoices = nil
}

// Where appends a list predicates to the SupplierMutation builder.
func (m *SupplierMutation) Where(ps ...predicate.Supplier) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SupplierMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SupplierMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Supplier, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SupplierMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SupplierMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Supplier).
func (m *SupplierMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SupplierMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, supplier.FieldName)
	}
	if m.tax_number != nil {
		fields = append(fields, supplier.FieldTaxNumber)
	}
	if m.country_code != nil {
		fields = append(fields, supplier.FieldCountryCode)
	}
	if m.created_at != nil {
		fields = append(fields, supplier.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SupplierMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case supplier.FieldName:
		return m.Name()
	case supplier.FieldTaxNumber:
		return m.TaxNumber()
	case supplier.FieldCountryCode:
		return m.CountryCode()
	case supplier.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SupplierMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case supplier.FieldName:
		return m.OldName(ctx)
	case supplier.FieldTaxNumber:
		return m.OldTaxNumber(ctx)
	case supplier.FieldCountryCode:
		return m.OldCountryCode(ctx)
	case supplier.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Supplier field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierMutation) SetField(name string, value ent.Value) error {
	switch name {
	case supplier.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case supplier.FieldTaxNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxNumber(v)
		return nil
	case supplier.FieldCountryCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountryCode(v)
		return nil
	case supplier.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Supplier field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SupplierMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SupplierMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Supplier numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SupplierMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(supplier.FieldTaxNumber) {
		fields = append(fields, supplier.FieldTaxNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SupplierMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SupplierMutation) ClearField(name string) error {
	switch name {
	case supplier.FieldTaxNumber:
		m.ClearTaxNumber()
		return nil
	}
	return fmt.Errorf("unknown Supplier nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SupplierMutation) ResetField(name string) error {
	switch name {
	case supplier.FieldName:
		m.ResetName()
		return nil
	case supplier.FieldTaxNumber:
		m.ResetTaxNumber()
		return nil
	case supplier.FieldCountryCode:
		m.ResetCountryCode()
		return nil
	case supplier.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Supplier field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SupplierMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.templates != nil {
		edges = append(edges, supplier.EdgeTemplates)
	}
	if m.invoices != nil {
		edges = append(edges, supplier.EdgeInvoices)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SupplierMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case supplier.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.templates))
		for id := range m.templates {
			ids = append(ids, id)
		}
		return ids
	case supplier.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.invoices))
		for id := range m.invoices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SupplierMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtemplates != nil {
		edges = append(edges, supplier.EdgeTemplates)
	}
	if m.removedinvoices != nil {
		edges = append(edges, supplier.EdgeInvoices)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SupplierMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case supplier.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.removedtemplates))
		for id := range m.removedtemplates {
			ids = append(ids, id)
		}
		return ids
	case supplier.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.removedinvoices))
		for id := range m.removedinvoices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SupplierMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtemplates {
		edges = append(edges, supplier.EdgeTemplates)
	}
	if m.clearedinvoices {
		edges = append(edges, supplier.EdgeInvoices)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SupplierMutation) EdgeCleared(name string) bool {
	switch name {
	case supplier.EdgeTemplates:
		return m.clearedtemplates
	case supplier.EdgeInvoices:
		return m.clearedinvoices
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SupplierMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Supplier unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SupplierMutation) ResetEdge(name string) error {
	switch name {
	case supplier.EdgeTemplates:
		m.ResetTemplates()
		return nil
	case supplier.EdgeInvoices:
		m.ResetInvoices()
		return nil
	}
	return fmt.Errorf("unknown Supplier edge %s", name)
}

// SupplierTemplateMutation represents an operation that mutates the SupplierTemplate nodes in the graph.
type SupplierTemplateMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	version         *int
	addversion      *int
	rules           *rules.Bundle
	active          *bool
	approved_by     *string
	approved_at     *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	supplier        *uuid.UUID
	clearedsupplier bool
	runs            map[uuid.UUID]struct{}
	removedruns     map[uuid.UUID]struct{}
	clearedruns     bool
	done            bool
	oldValue        func(context.Context) (*SupplierTemplate, error)
	predicates      []predicate.SupplierTemplate
}

var _ ent.Mutation = (*SupplierTemplateMutation)(nil)

// suppliertemplateOption allows management of the mutation configuration using functional options.
type suppliertemplateOption func(*SupplierTemplateMutation)

// newSupplierTemplateMutation creates new mutation for the SupplierTemplate entity.
func newSupplierTemplateMutation(c config, op Op, opts ...suppliertemplateOption) *SupplierTemplateMutation {
	m := &SupplierTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeSupplierTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSupplierTemplateID sets the ID field of the mutation.
func withSupplierTemplateID(id uuid.UUID) suppliertemplateOption {
	return func(m *SupplierTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *SupplierTemplate
		)
		m.oldValue = func(ctx context.Context) (*SupplierTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SupplierTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSupplierTemplate sets the old SupplierTemplate of the mutation.
func withSupplierTemplate(node *SupplierTemplate) suppliertemplateOption {
	return func(m *SupplierTemplateMutation) {
		m.oldValue = func(context.Context) (*SupplierTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SupplierTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SupplierTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SupplierTemplate entities.
func (m *SupplierTemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SupplierTemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SupplierTemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SupplierTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSupplierID sets the "supplier_id" field.
func (m *SupplierTemplateMutation) SetSupplierID(u uuid.UUID) {
	m.supplier = &u
}

// SupplierID returns the value of the "supplier_id" field in the mutation.
func (m *SupplierTemplateMutation) SupplierID() (r uuid.UUID, exists bool) {
	v := m.supplier
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierID returns the old "supplier_id" field's value of the SupplierTemplate entity.
// If the SupplierTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierTemplateMutation) OldSupplierID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierID: %w", err)
	}
	return oldValue.SupplierID, nil
}

// ResetSupplierID resets all changes to the "supplier_id" field.
func (m *SupplierTemplateMutation) ResetSupplierID() {
	m.supplier = nil
}

// SetVersion sets the "version" field.
func (m *SupplierTemplateMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *SupplierTemplateMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the SupplierTemplate entity.
// If the SupplierTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierTemplateMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *SupplierTemplateMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *SupplierTemplateMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *SupplierTemplateMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetRules sets the "rules" field.
func (m *SupplierTemplateMutation) SetRules(r rules.Bundle) {
	m.rules = &r
}

// Rules returns the value of the "rules" field in the mutation.
func (m *SupplierTemplateMutation) Rules() (r rules.Bundle, exists bool) {
	v := m.rules
	if v == nil {
		return
	}
	return *v, true
}

// OldRules returns the old "rules" field's value of the SupplierTemplate entity.
// If the SupplierTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierTemplateMutation) OldRules(ctx context.Context) (v rules.Bundle, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRules: %w", err)
	}
	return oldValue.Rules, nil
}

// ResetRules resets all changes to the "rules" field.
func (m *SupplierTemplateMutation) ResetRules() {
	m.rules = nil
}

// SetActive sets the "active" field.
func (m *SupplierTemplateMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *SupplierTemplateMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the SupplierTemplate entity.
// If the SupplierTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierTemplateMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *SupplierTemplateMutation) ResetActive() {
	m.active = nil
}

// SetApprovedBy sets the "approved_by" field.
func (m *SupplierTemplateMutation) SetApprovedBy(s string) {
	m.approved_by = &s
}

// ApprovedBy returns the value of the "approved_by" field in the mutation.
func (m *SupplierTemplateMutation) ApprovedBy() (r string, exists bool) {
	v := m.approved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedBy returns the old "approved_by" field's value of the SupplierTemplate entity.
// If the SupplierTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierTemplateMutation) OldApprovedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedBy: %w", err)
	}
	return oldValue.ApprovedBy, nil
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (m *SupplierTemplateMutation) ClearApprovedBy() {
	m.approved_by = nil
	m.clearedFields[suppliertemplate.FieldApprovedBy] = struct{}{}
}

// ApprovedByCleared returns if the "approved_by" field was cleared in this mutation.
func (m *SupplierTemplateMutation) ApprovedByCleared() bool {
	_, ok := m.clearedFields[suppliertemplate.FieldApprovedBy]
	return ok
}

// ResetApprovedBy resets all changes to the "approved_by" field.
func (m *SupplierTemplateMutation) ResetApprovedBy() {
	m.approved_by = nil
	delete(m.clearedFields, suppliertemplate.FieldApprovedBy)
}

// SetApprovedAt sets the "approved_at" field.
func (m *SupplierTemplateMutation) SetApprovedAt(t time.Time) {
	m.approved_at = &t
}

// ApprovedAt returns the value of the "approved_at" field in the mutation.
func (m *SupplierTemplateMutation) ApprovedAt() (r time.Time, exists bool) {
	v := m.approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAt returns the old "approved_at" field's value of the SupplierTemplate entity.
// If the SupplierTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierTemplateMutation) OldApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAt: %w", err)
	}
	return oldValue.ApprovedAt, nil
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (m *SupplierTemplateMutation) ClearApprovedAt() {
	m.approved_at = nil
	m.clearedFields[suppliertemplate.FieldApprovedAt] = struct{}{}
}

// ApprovedAtCleared returns if the "approved_at" field was cleared in this mutation.
func (m *SupplierTemplateMutation) ApprovedAtCleared() bool {
	_, ok := m.clearedFields[suppliertemplate.FieldApprovedAt]
	return ok
}

// ResetApprovedAt resets all changes to the "approved_at" field.
func (m *SupplierTemplateMutation) ResetApprovedAt() {
	m.approved_at = nil
	delete(m.clearedFields, suppliertemplate.FieldApprovedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SupplierTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SupplierTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SupplierTemplate entity.
// If the SupplierTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SupplierTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (m *SupplierTemplateMutation) ClearSupplier() {
	m.clearedsupplier = true
	m.clearedFields[suppliertemplate.FieldSupplierID] = struct{}{}
}

// SupplierCleared reports if the "supplier" edge to the Supplier entity was cleared.
func (m *SupplierTemplateMutation) SupplierCleared() bool {
	return m.clearedsupplier
}

// SupplierIDs returns the "supplier" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SupplierID instead. It exists only for internal usage by the builders.
func (m *SupplierTemplateMutation) SupplierIDs() (ids []uuid.UUID) {
	if id := m.supplier; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSupplier resets all changes to the "supplier" edge.
func (m *SupplierTemplateMutation) ResetSupplier() {
	m.supplier = nil
	m.clearedsupplier = false
}

// AddRunIDs adds the "runs" edge to the ProcessingRun entity by ids.
func (m *SupplierTemplateMutation) AddRunIDs(ids ...uuid.UUID) {
	if m.runs == nil {
		m.runs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the ProcessingRun entity.
func (m *SupplierTemplateMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the ProcessingRun entity was cleared.
func (m *SupplierTemplateMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the ProcessingRun entity by IDs.
func (m *SupplierTemplateMutation) RemoveRunIDs(ids ...uuid.UUID) {
	if m.removedruns == nil {
		m.removedruns = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the ProcessingRun entity.
func (m *SupplierTemplateMutation) RemovedRunsIDs() (ids []uuid.UUID) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *SupplierTemplateMutation) RunsIDs() (ids []uuid.UUID) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *SupplierTemplateMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the SupplierTemplateMutation builder.
func (m *SupplierTemplateMutation) Where(ps ...predicate.SupplierTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SupplierTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SupplierTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SupplierTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SupplierTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SupplierTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SupplierTemplate).
func (m *SupplierTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SupplierTemplateMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.supplier != nil {
		fields = append(fields, suppliertemplate.FieldSupplierID)
	}
	if m.version != nil {
		fields = append(fields, suppliertemplate.FieldVersion)
	}
	if m.rules != nil {
		fields = append(fields, suppliertemplate.FieldRules)
	}
	if m.active != nil {
		fields = append(fields, suppliertemplate.FieldActive)
	}
	if m.approved_by != nil {
		fields = append(fields, suppliertemplate.FieldApprovedBy)
	}
	if m.approved_at != nil {
		fields = append(fields, suppliertemplate.FieldApprovedAt)
	}
	if m.created_at != nil {
		fields = append(fields, suppliertemplate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SupplierTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case suppliertemplate.FieldSupplierID:
		return m.SupplierID()
	case suppliertemplate.FieldVersion:
		return m.Version()
	case suppliertemplate.FieldRules:
		return m.Rules()
	case suppliertemplate.FieldActive:
		return m.Active()
	case suppliertemplate.FieldApprovedBy:
		return m.ApprovedBy()
	case suppliertemplate.FieldApprovedAt:
		return m.ApprovedAt()
	case suppliertemplate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SupplierTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case suppliertemplate.FieldSupplierID:
		return m.OldSupplierID(ctx)
	case suppliertemplate.FieldVersion:
		return m.OldVersion(ctx)
	case suppliertemplate.FieldRules:
		return m.OldRules(ctx)
	case suppliertemplate.FieldActive:
		return m.OldActive(ctx)
	case suppliertemplate.FieldApprovedBy:
		return m.OldApprovedBy(ctx)
	case suppliertemplate.FieldApprovedAt:
		return m.OldApprovedAt(ctx)
	case suppliertemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SupplierTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case suppliertemplate.FieldSupplierID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierID(v)
		return nil
	case suppliertemplate.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case suppliertemplate.FieldRules:
		v, ok := value.(rules.Bundle)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRules(v)
		return nil
	case suppliertemplate.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case suppliertemplate.FieldApprovedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedBy(v)
		return nil
	case suppliertemplate.FieldApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAt(v)
		return nil
	case suppliertemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SupplierTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SupplierTemplateMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, suppliertemplate.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SupplierTemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case suppliertemplate.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case suppliertemplate.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown SupplierTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SupplierTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(suppliertemplate.FieldApprovedBy) {
		fields = append(fields, suppliertemplate.FieldApprovedBy)
	}
	if m.FieldCleared(suppliertemplate.FieldApprovedAt) {
		fields = append(fields, suppliertemplate.FieldApprovedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SupplierTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SupplierTemplateMutation) ClearField(name string) error {
	switch name {
	case suppliertemplate.FieldApprovedBy:
		m.ClearApprovedBy()
		return nil
	case suppliertemplate.FieldApprovedAt:
		m.ClearApprovedAt()
		return nil
	}
	return fmt.Errorf("unknown SupplierTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SupplierTemplateMutation) ResetField(name string) error {
	switch name {
	case suppliertemplate.FieldSupplierID:
		m.ResetSupplierID()
		return nil
	case suppliertemplate.FieldVersion:
		m.ResetVersion()
		return nil
	case suppliertemplate.FieldRules:
		m.ResetRules()
		return nil
	case suppliertemplate.FieldActive:
		m.ResetActive()
		return nil
	case suppliertemplate.FieldApprovedBy:
		m.ResetApprovedBy()
		return nil
	case suppliertemplate.FieldApprovedAt:
		m.ResetApprovedAt()
		return nil
	case suppliertemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SupplierTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SupplierTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.supplier != nil {
		edges = append(edges, suppliertemplate.EdgeSupplier)
	}
	if m.runs != nil {
		edges = append(edges, suppliertemplate.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SupplierTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case suppliertemplate.EdgeSupplier:
		if id := m.supplier; id != nil {
			return []ent.Value{*id}
		}
	case suppliertemplate.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SupplierTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedruns != nil {
		edges = append(edges, suppliertemplate.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SupplierTemplateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case suppliertemplate.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SupplierTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsupplier {
		edges = append(edges, suppliertemplate.EdgeSupplier)
	}
	if m.clearedruns {
		edges = append(edges, suppliertemplate.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SupplierTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case suppliertemplate.EdgeSupplier:
		return m.clearedsupplier
	case suppliertemplate.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SupplierTemplateMutation) ClearEdge(name string) error {
	switch name {
	case suppliertemplate.EdgeSupplier:
		m.ClearSupplier()
		return nil
	}
	return fmt.Errorf("unknown SupplierTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SupplierTemplateMutation) ResetEdge(name string) error {
	switch name {
	case suppliertemplate.EdgeSupplier:
		m.ResetSupplier()
		return nil
	case suppliertemplate.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown SupplierTemplate edge %s", name)
}
