package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BadgeEvent records a point award or badge grant. Points and badges are
// both modelled as events; totals are aggregates over the event log.
type BadgeEvent struct {
	ent.Schema
}

func (BadgeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BadgeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Comment("Student identifier"),
		field.String("kind").
			Comment("points or badge"),
		field.Int("points").
			Default(0).
			Comment("Points awarded (zero for pure badge grants)"),
		field.String("badge_id").
			Default("").
			Comment("Badge identifier when kind is badge"),
		field.String("reason").
			Default("").
			Comment("Human-readable award reason"),
		field.String("category").
			Default("").
			Comment("Defect category the award relates to, if any"),
	}
}

func (BadgeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("kind"),
		index.Fields("badge_id"),
	}
}
