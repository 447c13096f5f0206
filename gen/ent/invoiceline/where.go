// Code generated by ent, DO NOT EDIT.

package invoiceline

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/opsfin/invoice-engine/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLTE(FieldID, id))
}

// InvoiceID applies equality check predicate on the "invoice_id" field. It's identical to InvoiceIDEQ.
func InvoiceID(v uuid.UUID) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldInvoiceID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldDescription, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldQuantity, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldUnitPrice, v))
}

// LineTotal applies equality check predicate on the "line_total" field. It's identical to LineTotalEQ.
func LineTotal(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldLineTotal, v))
}

// InvoiceIDEQ applies the EQ predicate on the "invoice_id" field.
func InvoiceIDEQ(v uuid.UUID) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldInvoiceID, v))
}

// InvoiceIDNEQ applies the NEQ predicate on the "invoice_id" field.
func InvoiceIDNEQ(v uuid.UUID) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldInvoiceID, v))
}

// InvoiceIDIn applies the In predicate on the "invoice_id" field.
func InvoiceIDIn(vs ...uuid.UUID) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldInvoiceID, vs...))
}

// InvoiceIDNotIn applies the NotIn predicate on the "invoice_id" field.
func InvoiceIDNotIn(vs ...uuid.UUID) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldInvoiceID, vs...))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldContainsFold(FieldDescription, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLTE(FieldQuantity, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLTE(FieldUnitPrice, v))
}

// LineTotalEQ applies the EQ predicate on the "line_total" field.
func LineTotalEQ(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldLineTotal, v))
}

// LineTotalNEQ applies the NEQ predicate on the "line_total" field.
func LineTotalNEQ(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldLineTotal, v))
}

// LineTotalIn applies the In predicate on the "line_total" field.
func LineTotalIn(vs ...float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldLineTotal, vs...))
}

// LineTotalNotIn applies the NotIn predicate on the "line_total" field.
func LineTotalNotIn(vs ...float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldLineTotal, vs...))
}

// LineTotalGT applies the GT predicate on the "line_total" field.
func LineTotalGT(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGT(FieldLineTotal, v))
}

// LineTotalGTE applies the GTE predicate on the "line_total" field.
func LineTotalGTE(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGTE(FieldLineTotal, v))
}

// LineTotalLT applies the LT predicate on the "line_total" field.
func LineTotalLT(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLT(FieldLineTotal, v))
}

// LineTotalLTE applies the LTE predicate on the "line_total" field.
func LineTotalLTE(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLTE(FieldLineTotal, v))
}

// HasInvoice applies the HasEdge predicate on the "invoice" edge.
func HasInvoice() predicate.InvoiceLine {
	return predicate.InvoiceLine(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InvoiceTable, InvoiceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvoiceWith applies the HasEdge predicate on the "invoice" edge with a given conditions (other predicates).
func HasInvoiceWith(preds ...predicate.Invoice) predicate.InvoiceLine {
	return predicate.InvoiceLine(func(s *sql.Selector) {
		step := newInvoiceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InvoiceLine) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InvoiceLine) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InvoiceLine) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.NotPredicates(p))
}
