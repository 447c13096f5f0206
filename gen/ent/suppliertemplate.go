// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/opsfin/invoice-engine/gen/ent/supplier"
	"github.com/opsfin/invoice-engine/gen/ent/suppliertemplate"
	"github.com/opsfin/invoice-engine/internal/rules"
)

// SupplierTemplate is the model entity for the SupplierTemplate schema.
type SupplierTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SupplierID holds the value of the "supplier_id" field.
	SupplierID uuid.UUID `json:"supplier_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Rules holds the value of the "rules" field.
	Rules rules.Bundle `json:"rules,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// ApprovedBy holds the value of the "approved_by" field.
	ApprovedBy *string `json:"approved_by,omitempty"`
	// ApprovedAt holds the value of the "approved_at" field.
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SupplierTemplateQuery when eager-loading is set.
	Edges        SupplierTemplateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SupplierTemplateEdges holds the relations/edges for other nodes in the graph.
type SupplierTemplateEdges struct {
	// Supplier holds the value of the supplier edge.
	Supplier *Supplier `json:"supplier,omitempty"`
	// Runs holds the value of the runs edge.
	Runs []*ProcessingRun `json:"runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SupplierOrErr returns the Supplier value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SupplierTemplateEdges) SupplierOrErr() (*Supplier, error) {
	if e.Supplier != nil {
		return e.Supplier, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: supplier.Label}
	}
	return nil, &NotLoadedError{edge: "supplier"}
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e SupplierTemplateEdges) RunsOrErr() ([]*ProcessingRun, error) {
	if e.loadedTypes[1] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SupplierTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case suppliertemplate.FieldRules:
			values[i] = new([]byte)
		case suppliertemplate.FieldActive:
			values[i] = new(sql.NullBool)
		case suppliertemplate.FieldVersion:
			values[i] = new(sql.NullInt64)
		case suppliertemplate.FieldApprovedBy:
			values[i] = new(sql.NullString)
		case suppliertemplate.FieldApprovedAt, suppliertemplate.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case suppliertemplate.FieldID, suppliertemplate.FieldSupplierID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SupplierTemplate fields.
func (_m *SupplierTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case suppliertemplate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case suppliertemplate.FieldSupplierID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_id", values[i])
			} else if value != nil {
				_m.SupplierID = *value
			}
		case suppliertemplate.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case suppliertemplate.FieldRules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Rules); err != nil {
					return fmt.Errorf("unmarshal field rules: %w", err)
				}
			}
		case suppliertemplate.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case suppliertemplate.FieldApprovedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approved_by", values[i])
			} else if value.Valid {
				_m.ApprovedBy = new(string)
				*_m.ApprovedBy = value.String
			}
		case suppliertemplate.FieldApprovedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field approved_at", values[i])
			} else if value.Valid {
				_m.ApprovedAt = new(time.Time)
				*_m.ApprovedAt = value.Time
			}
		case suppliertemplate.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SupplierTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *SupplierTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySupplier queries the "supplier" edge of the SupplierTemplate entity.
func (_m *SupplierTemplate) QuerySupplier() *SupplierQuery {
	return NewSupplierTemplateClient(_m.config).QuerySupplier(_m)
}

// QueryRuns queries the "runs" edge of the SupplierTemplate entity.
func (_m *SupplierTemplate) QueryRuns() *ProcessingRunQuery {
	return NewSupplierTemplateClient(_m.config).QueryRuns(_m)
}

// Update returns a builder for updating this SupplierTemplate.
// Note that you need to call SupplierTemplate.Unwrap() before calling this method if this SupplierTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SupplierTemplate) Update() *SupplierTemplateUpdateOne {
	return NewSupplierTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SupplierTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SupplierTemplate) Unwrap() *SupplierTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SupplierTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SupplierTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("SupplierTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("supplier_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupplierID))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("rules=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rules))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	if v := _m.ApprovedBy; v != nil {
		builder.WriteString("approved_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ApprovedAt; v != nil {
		builder.WriteString("approved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SupplierTemplates is a parsable slice of SupplierTemplate.
type SupplierTemplates []*SupplierTemplate
