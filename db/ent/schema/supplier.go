package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Supplier struct{ ent.Schema }

func (Supplier) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "suppliers"},
	}
}

func (Supplier) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		// unique-when-present; NULLs do not collide
		field.String("tax_number").Optional().Nillable().Unique(),
		field.String("country_code").NotEmpty().MinLen(2).MaxLen(2).
			Default("GB").
			SchemaType(map[string]string{dialect.Postgres: "char(2)"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Supplier) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE supplier -> MANY templates
		edge.To("templates", SupplierTemplate.Type),
		// ONE supplier -> MANY invoices
		edge.To("invoices", Invoice.Type),
	}
}
