// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// InvoiceLine is the predicate function for invoiceline builders.
type InvoiceLine func(*sql.Selector)

// ProcessingRun is the predicate function for processingrun builders.
type ProcessingRun func(*sql.Selector)

// Supplier is the predicate function for supplier builders.
type Supplier func(*sql.Selector)

// SupplierTemplate is the predicate function for suppliertemplate builders.
type SupplierTemplate func(*sql.Selector)
