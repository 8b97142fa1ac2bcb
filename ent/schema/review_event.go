package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records one graded review iteration within a session.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("UUID of the practice session"),
		field.String("user_id").
			Comment("Student identifier"),
		field.Int("iteration").
			Comment("1-based review iteration number"),
		field.Int("identified_count").
			Comment("Defects identified in this iteration"),
		field.Int("total_problems").
			Comment("Defect count fixed at generation time"),
		field.Float("identified_percentage").
			Comment("identified/total as a percentage"),
		field.Bool("sufficient").
			Comment("Whether this iteration met the sufficiency bar"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("session_id"),
	}
}
