package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/opsfin/invoice-engine/internal/rules"
)

type SupplierTemplate struct{ ent.Schema }

func (SupplierTemplate) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "supplier_templates"},
	}
}

func (SupplierTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define composite indexes
		field.UUID("supplier_id", uuid.UUID{}),
		field.Int("version").Positive(),
		field.JSON("rules", rules.Bundle{}),
		field.Bool("active").Default(false),
		field.String("approved_by").Optional().Nillable(),
		field.Time("approved_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (SupplierTemplate) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY templates -> ONE supplier
		edge.From("supplier", Supplier.Type).
			Ref("templates").
			Field("supplier_id").
			Required().
			Unique(),
		// ONE template -> MANY runs (historical; run survives template removal)
		edge.To("runs", ProcessingRun.Type),
	}
}

func (SupplierTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("supplier_id", "version").Unique(),
		// at most one active template per supplier
		index.Fields("supplier_id").
			Unique().
			Annotations(entsql.IndexWhere("active")),
	}
}
