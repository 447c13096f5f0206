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

	"github.com/opsfin/invoice-engine/constants"
	"github.com/opsfin/invoice-engine/db/ent/schema/utils"
)

// ProcessingRun is the immutable audit record of one extraction attempt.
type ProcessingRun struct{ ent.Schema }

func (ProcessingRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_runs"},
	}
}

func (ProcessingRun) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("invoice_id", uuid.UUID{}),
		field.String("engine_version").NotEmpty(),
		// retained as NULL if the template is later removed
		field.UUID("template_id", uuid.UUID{}).Optional().Nillable(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.RunStatuses...)),
		field.String("notes").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("completed_at").Default(time.Now).Immutable(),
	}
}

func (ProcessingRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("invoice", Invoice.Type).
			Ref("runs").
			Field("invoice_id").
			Required().
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("template", SupplierTemplate.Type).
			Ref("runs").
			Field("template_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

func (ProcessingRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id"),
		index.Fields("template_id"),
		index.Fields("status", "completed_at"),
	}
}
