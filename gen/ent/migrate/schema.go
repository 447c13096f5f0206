// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "external_reference", Type: field.TypeString},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "total_net", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_tax", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_gross", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency_code", Type: field.TypeString, Size: 3, Default: "GBP", SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "supplier_id", Type: field.TypeUUID},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_suppliers_invoices",
				Columns:    []*schema.Column{InvoicesColumns[8]},
				RefColumns: []*schema.Column{SuppliersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_supplier_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[8], InvoicesColumns[7]},
			},
			{
				Name:    "invoice_external_reference",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1]},
			},
		},
	}
	// InvoiceLinesColumns holds the columns for the "invoice_lines" table.
	InvoiceLinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "quantity", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "unit_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "line_total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// InvoiceLinesTable holds the schema information for the "invoice_lines" table.
	InvoiceLinesTable = &schema.Table{
		Name:       "invoice_lines",
		Columns:    InvoiceLinesColumns,
		PrimaryKey: []*schema.Column{InvoiceLinesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_lines_invoices_lines",
				Columns:    []*schema.Column{InvoiceLinesColumns[5]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoiceline_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{InvoiceLinesColumns[5]},
			},
		},
	}
	// ProcessingRunsColumns holds the columns for the "processing_runs" table.
	ProcessingRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "engine_version", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "invoice_id", Type: field.TypeUUID},
		{Name: "template_id", Type: field.TypeUUID, Nullable: true},
	}
	// ProcessingRunsTable holds the schema information for the "processing_runs" table.
	ProcessingRunsTable = &schema.Table{
		Name:       "processing_runs",
		Columns:    ProcessingRunsColumns,
		PrimaryKey: []*schema.Column{ProcessingRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_runs_invoices_runs",
				Columns:    []*schema.Column{ProcessingRunsColumns[5]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "processing_runs_supplier_templates_runs",
				Columns:    []*schema.Column{ProcessingRunsColumns[6]},
				RefColumns: []*schema.Column{SupplierTemplatesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processingrun_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{ProcessingRunsColumns[5]},
			},
			{
				Name:    "processingrun_template_id",
				Unique:  false,
				Columns: []*schema.Column{ProcessingRunsColumns[6]},
			},
			{
				Name:    "processingrun_status_completed_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingRunsColumns[2], ProcessingRunsColumns[4]},
			},
		},
	}
	// SuppliersColumns holds the columns for the "suppliers" table.
	SuppliersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "tax_number", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "country_code", Type: field.TypeString, Size: 2, Default: "GB", SchemaType: map[string]string{"postgres": "char(2)"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SuppliersTable holds the schema information for the "suppliers" table.
	SuppliersTable = &schema.Table{
		Name:       "suppliers",
		Columns:    SuppliersColumns,
		PrimaryKey: []*schema.Column{SuppliersColumns[0]},
	}
	// SupplierTemplatesColumns holds the columns for the "supplier_templates" table.
	SupplierTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "version", Type: field.TypeInt},
		{Name: "rules", Type: field.TypeJSON},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "supplier_id", Type: field.TypeUUID},
	}
	// SupplierTemplatesTable holds the schema information for the "supplier_templates" table.
	SupplierTemplatesTable = &schema.Table{
		Name:       "supplier_templates",
		Columns:    SupplierTemplatesColumns,
		PrimaryKey: []*schema.Column{SupplierTemplatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "supplier_templates_suppliers_templates",
				Columns:    []*schema.Column{SupplierTemplatesColumns[7]},
				RefColumns: []*schema.Column{SuppliersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "suppliertemplate_supplier_id_version",
				Unique:  true,
				Columns: []*schema.Column{SupplierTemplatesColumns[7], SupplierTemplatesColumns[1]},
			},
			{
				Name:    "suppliertemplate_supplier_id",
				Unique:  true,
				Columns: []*schema.Column{SupplierTemplatesColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "active",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InvoicesTable,
		InvoiceLinesTable,
		ProcessingRunsTable,
		SuppliersTable,
		SupplierTemplatesTable,
	}
)

func init() {
	InvoicesTable.ForeignKeys[0].RefTable = SuppliersTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceLinesTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceLinesTable.Annotation = &entsql.Annotation{
		Table: "invoice_lines",
	}
	ProcessingRunsTable.ForeignKeys[0].RefTable = InvoicesTable
	ProcessingRunsTable.ForeignKeys[1].RefTable = SupplierTemplatesTable
	ProcessingRunsTable.Annotation = &entsql.Annotation{
		Table: "processing_runs",
	}
	SuppliersTable.Annotation = &entsql.Annotation{
		Table: "suppliers",
	}
	SupplierTemplatesTable.ForeignKeys[0].RefTable = SuppliersTable
	SupplierTemplatesTable.Annotation = &entsql.Annotation{
		Table: "supplier_templates",
	}
}
