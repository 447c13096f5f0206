// Code generated by ent, DO NOT EDIT.

package invoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/opsfin/invoice-engine/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldID, id))
}

// SupplierID applies equality check predicate on the "supplier_id" field. It's identical to SupplierIDEQ.
func SupplierID(v uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSupplierID, v))
}

// ExternalReference applies equality check predicate on the "external_reference" field. It's identical to ExternalReferenceEQ.
func ExternalReference(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldExternalReference, v))
}

// InvoiceDate applies equality check predicate on the "invoice_date" field. It's identical to InvoiceDateEQ.
func InvoiceDate(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// TotalNet applies equality check predicate on the "total_net" field. It's identical to TotalNetEQ.
func TotalNet(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotalNet, v))
}

// TotalTax applies equality check predicate on the "total_tax" field. It's identical to TotalTaxEQ.
func TotalTax(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotalTax, v))
}

// TotalGross applies equality check predicate on the "total_gross" field. It's identical to TotalGrossEQ.
func TotalGross(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotalGross, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCurrencyCode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCreatedAt, v))
}

// SupplierIDEQ applies the EQ predicate on the "supplier_id" field.
func SupplierIDEQ(v uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSupplierID, v))
}

// SupplierIDNEQ applies the NEQ predicate on the "supplier_id" field.
func SupplierIDNEQ(v uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSupplierID, v))
}

// SupplierIDIn applies the In predicate on the "supplier_id" field.
func SupplierIDIn(vs ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSupplierID, vs...))
}

// SupplierIDNotIn applies the NotIn predicate on the "supplier_id" field.
func SupplierIDNotIn(vs ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSupplierID, vs...))
}

// ExternalReferenceEQ applies the EQ predicate on the "external_reference" field.
func ExternalReferenceEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldExternalReference, v))
}

// ExternalReferenceNEQ applies the NEQ predicate on the "external_reference" field.
func ExternalReferenceNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldExternalReference, v))
}

// ExternalReferenceIn applies the In predicate on the "external_reference" field.
func ExternalReferenceIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldExternalReference, vs...))
}

// ExternalReferenceNotIn applies the NotIn predicate on the "external_reference" field.
func ExternalReferenceNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldExternalReference, vs...))
}

// ExternalReferenceGT applies the GT predicate on the "external_reference" field.
func ExternalReferenceGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldExternalReference, v))
}

// ExternalReferenceGTE applies the GTE predicate on the "external_reference" field.
func ExternalReferenceGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldExternalReference, v))
}

// ExternalReferenceLT applies the LT predicate on the "external_reference" field.
func ExternalReferenceLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldExternalReference, v))
}

// ExternalReferenceLTE applies the LTE predicate on the "external_reference" field.
func ExternalReferenceLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldExternalReference, v))
}

// ExternalReferenceContains applies the Contains predicate on the "external_reference" field.
func ExternalReferenceContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldExternalReference, v))
}

// ExternalReferenceHasPrefix applies the HasPrefix predicate on the "external_reference" field.
func ExternalReferenceHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldExternalReference, v))
}

// ExternalReferenceHasSuffix applies the HasSuffix predicate on the "external_reference" field.
func ExternalReferenceHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldExternalReference, v))
}

// ExternalReferenceEqualFold applies the EqualFold predicate on the "external_reference" field.
func ExternalReferenceEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldExternalReference, v))
}

// ExternalReferenceContainsFold applies the ContainsFold predicate on the "external_reference" field.
func ExternalReferenceContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldExternalReference, v))
}

// InvoiceDateEQ applies the EQ predicate on the "invoice_date" field.
func InvoiceDateEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// InvoiceDateNEQ applies the NEQ predicate on the "invoice_date" field.
func InvoiceDateNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldInvoiceDate, v))
}

// InvoiceDateIn applies the In predicate on the "invoice_date" field.
func InvoiceDateIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldInvoiceDate, vs...))
}

// InvoiceDateNotIn applies the NotIn predicate on the "invoice_date" field.
func InvoiceDateNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldInvoiceDate, vs...))
}

// InvoiceDateGT applies the GT predicate on the "invoice_date" field.
func InvoiceDateGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldInvoiceDate, v))
}

// InvoiceDateGTE applies the GTE predicate on the "invoice_date" field.
func InvoiceDateGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldInvoiceDate, v))
}

// InvoiceDateLT applies the LT predicate on the "invoice_date" field.
func InvoiceDateLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldInvoiceDate, v))
}

// InvoiceDateLTE applies the LTE predicate on the "invoice_date" field.
func InvoiceDateLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldInvoiceDate, v))
}

// InvoiceDateIsNil applies the IsNil predicate on the "invoice_date" field.
func InvoiceDateIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldInvoiceDate))
}

// InvoiceDateNotNil applies the NotNil predicate on the "invoice_date" field.
func InvoiceDateNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldInvoiceDate))
}

// TotalNetEQ applies the EQ predicate on the "total_net" field.
func TotalNetEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotalNet, v))
}

// TotalNetNEQ applies the NEQ predicate on the "total_net" field.
func TotalNetNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldTotalNet, v))
}

// TotalNetIn applies the In predicate on the "total_net" field.
func TotalNetIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldTotalNet, vs...))
}

// TotalNetNotIn applies the NotIn predicate on the "total_net" field.
func TotalNetNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldTotalNet, vs...))
}

// TotalNetGT applies the GT predicate on the "total_net" field.
func TotalNetGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldTotalNet, v))
}

// TotalNetGTE applies the GTE predicate on the "total_net" field.
func TotalNetGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldTotalNet, v))
}

// TotalNetLT applies the LT predicate on the "total_net" field.
func TotalNetLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldTotalNet, v))
}

// TotalNetLTE applies the LTE predicate on the "total_net" field.
func TotalNetLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldTotalNet, v))
}

// TotalNetIsNil applies the IsNil predicate on the "total_net" field.
func TotalNetIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldTotalNet))
}

// TotalNetNotNil applies the NotNil predicate on the "total_net" field.
func TotalNetNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldTotalNet))
}

// TotalTaxEQ applies the EQ predicate on the "total_tax" field.
func TotalTaxEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotalTax, v))
}

// TotalTaxNEQ applies the NEQ predicate on the "total_tax" field.
func TotalTaxNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldTotalTax, v))
}

// TotalTaxIn applies the In predicate on the "total_tax" field.
func TotalTaxIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldTotalTax, vs...))
}

// TotalTaxNotIn applies the NotIn predicate on the "total_tax" field.
func TotalTaxNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldTotalTax, vs...))
}

// TotalTaxGT applies the GT predicate on the "total_tax" field.
func TotalTaxGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldTotalTax, v))
}

// TotalTaxGTE applies the GTE predicate on the "total_tax" field.
func TotalTaxGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldTotalTax, v))
}

// TotalTaxLT applies the LT predicate on the "total_tax" field.
func TotalTaxLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldTotalTax, v))
}

// TotalTaxLTE applies the LTE predicate on the "total_tax" field.
func TotalTaxLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldTotalTax, v))
}

// TotalTaxIsNil applies the IsNil predicate on the "total_tax" field.
func TotalTaxIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldTotalTax))
}

// TotalTaxNotNil applies the NotNil predicate on the "total_tax" field.
func TotalTaxNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldTotalTax))
}

// TotalGrossEQ applies the EQ predicate on the "total_gross" field.
func TotalGrossEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotalGross, v))
}

// TotalGrossNEQ applies the NEQ predicate on the "total_gross" field.
func TotalGrossNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldTotalGross, v))
}

// TotalGrossIn applies the In predicate on the "total_gross" field.
func TotalGrossIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldTotalGross, vs...))
}

// TotalGrossNotIn applies the NotIn predicate on the "total_gross" field.
func TotalGrossNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldTotalGross, vs...))
}

// TotalGrossGT applies the GT predicate on the "total_gross" field.
func TotalGrossGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldTotalGross, v))
}

// TotalGrossGTE applies the GTE predicate on the "total_gross" field.
func TotalGrossGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldTotalGross, v))
}

// TotalGrossLT applies the LT predicate on the "total_gross" field.
func TotalGrossLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldTotalGross, v))
}

// TotalGrossLTE applies the LTE predicate on the "total_gross" field.
func TotalGrossLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldTotalGross, v))
}

// TotalGrossIsNil applies the IsNil predicate on the "total_gross" field.
func TotalGrossIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldTotalGross))
}

// TotalGrossNotNil applies the NotNil predicate on the "total_gross" field.
func TotalGrossNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldTotalGross))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSupplier applies the HasEdge predicate on the "supplier" edge.
func HasSupplier() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SupplierTable, SupplierColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSupplierWith applies the HasEdge predicate on the "supplier" edge with a given conditions (other predicates).
func HasSupplierWith(preds ...predicate.Supplier) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newSupplierStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLines applies the HasEdge predicate on the "lines" edge.
func HasLines() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LinesTable, LinesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLinesWith applies the HasEdge predicate on the "lines" edge with a given conditions (other predicates).
func HasLinesWith(preds ...predicate.InvoiceLine) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newLinesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.ProcessingRun) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.NotPredicates(p))
}
