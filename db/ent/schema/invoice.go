package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("supplier_id", uuid.UUID{}),
		field.String("external_reference").NotEmpty(),
		field.Time("invoice_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("total_net").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_tax").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_gross").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency_code").NotEmpty().MinLen(3).MaxLen(3).
			Default("GBP").
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY invoices -> ONE supplier; supplier cannot be deleted from
		// under a referencing invoice.
		edge.From("supplier", Supplier.Type).
			Ref("invoices").
			Field("supplier_id").
			Required().
			Unique().
			Annotations(entsql.OnDelete(entsql.Restrict)),
		// ONE invoice -> MANY lines
		edge.To("lines", InvoiceLine.Type),
		// ONE invoice -> MANY runs (normally exactly one)
		edge.To("runs", ProcessingRun.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("supplier_id", "created_at"),
		index.Fields("external_reference"),
	}
}
