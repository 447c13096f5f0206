// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/opsfin/invoice-engine/gen/ent/invoice"
	"github.com/opsfin/invoice-engine/gen/ent/supplier"
)

// Invoice is the model entity for the Invoice schema.
type Invoice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SupplierID holds the value of the "supplier_id" field.
	SupplierID uuid.UUID `json:"supplier_id,omitempty"`
	// ExternalReference holds the value of the "external_reference" field.
	ExternalReference string `json:"external_reference,omitempty"`
	// InvoiceDate holds the value of the "invoice_date" field.
	InvoiceDate *time.Time `json:"invoice_date,omitempty"`
	// TotalNet holds the value of the "total_net" field.
	TotalNet *float64 `json:"total_net,omitempty"`
	// TotalTax holds the value of the "total_tax" field.
	TotalTax *float64 `json:"total_tax,omitempty"`
	// TotalGross holds the value of the "total_gross" field.
	TotalGross *float64 `json:"total_gross,omitempty"`
	// CurrencyCode holds the value of the "currency_code" field.
	CurrencyCode string `json:"currency_code,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceQuery when eager-loading is set.
	Edges        InvoiceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceEdges holds the relations/edges for other nodes in the graph.
type InvoiceEdges struct {
	// Supplier holds the value of the supplier edge.
	Supplier *Supplier `json:"supplier,omitempty"`
	// Lines holds the value of the lines edge.
	Lines []*InvoiceLine `json:"lines,omitempty"`
	// Runs holds the value of the runs edge.
	Runs []*ProcessingRun `json:"runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SupplierOrErr returns the Supplier value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceEdges) SupplierOrErr() (*Supplier, error) {
	if e.Supplier != nil {
		return e.Supplier, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: supplier.Label}
	}
	return nil, &NotLoadedError{edge: "supplier"}
}

// LinesOrErr returns the Lines value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) LinesOrErr() ([]*InvoiceLine, error) {
	if e.loadedTypes[1] {
		return e.Lines, nil
	}
	return nil, &NotLoadedError{edge: "lines"}
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) RunsOrErr() ([]*ProcessingRun, error) {
	if e.loadedTypes[2] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Invoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoice.FieldTotalNet, invoice.FieldTotalTax, invoice.FieldTotalGross:
			values[i] = new(sql.NullFloat64)
		case invoice.FieldExternalReference, invoice.FieldCurrencyCode:
			values[i] = new(sql.NullString)
		case invoice.FieldInvoiceDate, invoice.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case invoice.FieldID, invoice.FieldSupplierID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Invoice fields.
func (_m *Invoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoice.FieldSupplierID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_id", values[i])
			} else if value != nil {
				_m.SupplierID = *value
			}
		case invoice.FieldExternalReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_reference", values[i])
			} else if value.Valid {
				_m.ExternalReference = value.String
			}
		case invoice.FieldInvoiceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_date", values[i])
			} else if value.Valid {
				_m.InvoiceDate = new(time.Time)
				*_m.InvoiceDate = value.Time
			}
		case invoice.FieldTotalNet:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_net", values[i])
			} else if value.Valid {
				_m.TotalNet = new(float64)
				*_m.TotalNet = value.Float64
			}
		case invoice.FieldTotalTax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tax", values[i])
			} else if value.Valid {
				_m.TotalTax = new(float64)
				*_m.TotalTax = value.Float64
			}
		case invoice.FieldTotalGross:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_gross", values[i])
			} else if value.Valid {
				_m.TotalGross = new(float64)
				*_m.TotalGross = value.Float64
			}
		case invoice.FieldCurrencyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency_code", values[i])
			} else if value.Valid {
				_m.CurrencyCode = value.String
			}
		case invoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Invoice.
// This includes values selected through modifiers, order, etc.
func (_m *Invoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySupplier queries the "supplier" edge of the Invoice entity.
func (_m *Invoice) QuerySupplier() *SupplierQuery {
	return NewInvoiceClient(_m.config).QuerySupplier(_m)
}

// QueryLines queries the "lines" edge of the Invoice entity.
func (_m *Invoice) QueryLines() *InvoiceLineQuery {
	return NewInvoiceClient(_m.config).QueryLines(_m)
}

// QueryRuns queries the "runs" edge of the Invoice entity.
func (_m *Invoice) QueryRuns() *ProcessingRunQuery {
	return NewInvoiceClient(_m.config).QueryRuns(_m)
}

// Update returns a builder for updating this Invoice.
// Note that you need to call Invoice.Unwrap() before calling this method if this Invoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Invoice) Update() *InvoiceUpdateOne {
	return NewInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Invoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Invoice) Unwrap() *Invoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Invoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Invoice) String() string {
	var builder strings.Builder
	builder.WriteString("Invoice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("supplier_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupplierID))
	builder.WriteString(", ")
	builder.WriteString("external_reference=")
	builder.WriteString(_m.ExternalReference)
	builder.WriteString(", ")
	if v := _m.InvoiceDate; v != nil {
		builder.WriteString("invoice_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TotalNet; v != nil {
		builder.WriteString("total_net=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalTax; v != nil {
		builder.WriteString("total_tax=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalGross; v != nil {
		builder.WriteString("total_gross=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("currency_code=")
	builder.WriteString(_m.CurrencyCode)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Invoices is a parsable slice of Invoice.
type Invoices []*Invoice
