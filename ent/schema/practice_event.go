package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeEvent records the completion of one practice session: the code
// that was generated, how many defects it carried, and how the student's
// review performed overall.
type PracticeEvent struct {
	ent.Schema
}

func (PracticeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PracticeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("UUID of the practice session"),
		field.String("user_id").
			Comment("Student identifier"),
		field.String("difficulty").
			Comment("easy, medium, hard"),
		field.Int("error_count").
			Comment("Number of defects fixed at generation time"),
		field.Int("identified_count").
			Default(0).
			Comment("Defects the student found by the end of the session"),
		field.Float("accuracy").
			Default(0).
			Comment("identified/error_count as a percentage"),
		field.Int("iterations_used").
			Default(0).
			Comment("Review iterations the student submitted"),
		field.Bool("sufficient").
			Default(false).
			Comment("Whether the final review met the sufficiency bar"),
	}
}

func (PracticeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("session_id"),
	}
}
