// Code generated by ent, DO NOT EDIT.

package invoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the invoice type in the database.
	Label = "invoice"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSupplierID holds the string denoting the supplier_id field in the database.
	FieldSupplierID = "supplier_id"
	// FieldExternalReference holds the string denoting the external_reference field in the database.
	FieldExternalReference = "external_reference"
	// FieldInvoiceDate holds the string denoting the invoice_date field in the database.
	FieldInvoiceDate = "invoice_date"
	// FieldTotalNet holds the string denoting the total_net field in the database.
	FieldTotalNet = "total_net"
	// FieldTotalTax holds the string denoting the total_tax field in the database.
	FieldTotalTax = "total_tax"
	// FieldTotalGross holds the string denoting the total_gross field in the database.
	FieldTotalGross = "total_gross"
	// FieldCurrencyCode holds the string denoting the currency_code field in the database.
	FieldCurrencyCode = "currency_code"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSupplier holds the string denoting the supplier edge name in mutations.
	EdgeSupplier = "supplier"
	// EdgeLines holds the string denoting the lines edge name in mutations.
	EdgeLines = "lines"
	// EdgeRuns holds the string denoting the runs edge name in mutations.
	EdgeRuns = "runs"
	// Table holds the table name of the invoice in the database.
	Table = "invoices"
	// SupplierTable is the table that holds the supplier relation/edge.
	SupplierTable = "invoices"
	// SupplierInverseTable is the table name for the Supplier entity.
	// It exists in this package in order to avoid circular dependency with the "supplier" package.
	SupplierInverseTable = "suppliers"
	// SupplierColumn is the table column denoting the supplier relation/edge.
	SupplierColumn = "supplier_id"
	// LinesTable is the table that holds the lines relation/edge.
	LinesTable = "invoice_lines"
	// LinesInverseTable is the table name for the InvoiceLine entity.
	// It exists in this package in order to avoid circular dependency with the "invoiceline" package.
	LinesInverseTable = "invoice_lines"
	// LinesColumn is the table column denoting the lines relation/edge.
	LinesColumn = "invoice_id"
	// RunsTable is the table that holds the runs relation/edge.
	RunsTable = "processing_runs"
	// RunsInverseTable is the table name for the ProcessingRun entity.
	// It exists in this package in order to avoid circular dependency with the "processingrun" package.
	RunsInverseTable = "processing_runs"
	// RunsColumn is the table column denoting the runs relation/edge.
	RunsColumn = "invoice_id"
)

// Columns holds all SQL columns for invoice fields.
var Columns = []string{
	FieldID,
	FieldSupplierID,
	FieldExternalReference,
	FieldInvoiceDate,
	FieldTotalNet,
	FieldTotalTax,
	FieldTotalGross,
	FieldCurrencyCode,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ExternalReferenceValidator is a validator for the "external_reference" field. It is called by the builders before save.
	ExternalReferenceValidator func(string) error
	// DefaultCurrencyCode holds the default value on creation for the "currency_code" field.
	DefaultCurrencyCode string
	// CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	CurrencyCodeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Invoice queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySupplierID orders the results by the supplier_id field.
func BySupplierID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierID, opts...).ToFunc()
}

// ByExternalReference orders the results by the external_reference field.
func ByExternalReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalReference, opts...).ToFunc()
}

// ByInvoiceDate orders the results by the invoice_date field.
func ByInvoiceDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceDate, opts...).ToFunc()
}

// ByTotalNet orders the results by the total_net field.
func ByTotalNet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalNet, opts...).ToFunc()
}

// ByTotalTax orders the results by the total_tax field.
func ByTotalTax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTax, opts...).ToFunc()
}

// ByTotalGross orders the results by the total_gross field.
func ByTotalGross(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalGross, opts...).ToFunc()
}

// ByCurrencyCode orders the results by the currency_code field.
func ByCurrencyCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrencyCode, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySupplierField orders the results by supplier field.
func BySupplierField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSupplierStep(), sql.OrderByField(field, opts...))
	}
}

// ByLinesCount orders the results by lines count.
func ByLinesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLinesStep(), opts...)
	}
}

// ByLines orders the results by lines terms.
func ByLines(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLinesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRunsCount orders the results by runs count.
func ByRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRunsStep(), opts...)
	}
}

// ByRuns orders the results by runs terms.
func ByRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSupplierStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SupplierInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SupplierTable, SupplierColumn),
	)
}
func newLinesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LinesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LinesTable, LinesColumn),
	)
}
func newRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
	)
}
