package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type InvoiceLine struct{ ent.Schema }

func (InvoiceLine) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_lines"},
	}
}

func (InvoiceLine) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("invoice_id", uuid.UUID{}),
		field.String("description").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("quantity").
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,2)"}),
		field.Float("unit_price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,2)"}),
		field.Float("line_total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
	}
}

func (InvoiceLine) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY lines -> ONE invoice; lines go with their invoice.
		edge.From("invoice", Invoice.Type).
			Ref("lines").
			Field("invoice_id").
			Required().
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (InvoiceLine) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id"),
	}
}
