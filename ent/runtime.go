// Code generated by ent, DO NOT EDIT.

package ent

import (
	"revtrain/ent/badgeevent"
	"revtrain/ent/llmrequestevent"
	"revtrain/ent/practiceevent"
	"revtrain/ent/reviewevent"
	"revtrain/ent/schema"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescPoints is the schema descriptor for points field.
	badgeeventDescPoints := badgeeventFields[2].Descriptor()
	// badgeevent.DefaultPoints holds the default value on creation for the points field.
	badgeevent.DefaultPoints = badgeeventDescPoints.Default.(int)
	// badgeeventDescBadgeID is the schema descriptor for badge_id field.
	badgeeventDescBadgeID := badgeeventFields[3].Descriptor()
	// badgeevent.DefaultBadgeID holds the default value on creation for the badge_id field.
	badgeevent.DefaultBadgeID = badgeeventDescBadgeID.Default.(string)
	// badgeeventDescReason is the schema descriptor for reason field.
	badgeeventDescReason := badgeeventFields[4].Descriptor()
	// badgeevent.DefaultReason holds the default value on creation for the reason field.
	badgeevent.DefaultReason = badgeeventDescReason.Default.(string)
	// badgeeventDescCategory is the schema descriptor for category field.
	badgeeventDescCategory := badgeeventFields[5].Descriptor()
	// badgeevent.DefaultCategory holds the default value on creation for the category field.
	badgeevent.DefaultCategory = badgeeventDescCategory.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	practiceeventMixin := schema.PracticeEvent{}.Mixin()
	practiceeventMixinFields0 := practiceeventMixin[0].Fields()
	_ = practiceeventMixinFields0
	practiceeventFields := schema.PracticeEvent{}.Fields()
	_ = practiceeventFields
	// practiceeventDescTimestamp is the schema descriptor for timestamp field.
	practiceeventDescTimestamp := practiceeventMixinFields0[1].Descriptor()
	// practiceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	practiceevent.DefaultTimestamp = practiceeventDescTimestamp.Default.(func() time.Time)
	// practiceeventDescIdentifiedCount is the schema descriptor for identified_count field.
	practiceeventDescIdentifiedCount := practiceeventFields[4].Descriptor()
	// practiceevent.DefaultIdentifiedCount holds the default value on creation for the identified_count field.
	practiceevent.DefaultIdentifiedCount = practiceeventDescIdentifiedCount.Default.(int)
	// practiceeventDescAccuracy is the schema descriptor for accuracy field.
	practiceeventDescAccuracy := practiceeventFields[5].Descriptor()
	// practiceevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	practiceevent.DefaultAccuracy = practiceeventDescAccuracy.Default.(float64)
	// practiceeventDescIterationsUsed is the schema descriptor for iterations_used field.
	practiceeventDescIterationsUsed := practiceeventFields[6].Descriptor()
	// practiceevent.DefaultIterationsUsed holds the default value on creation for the iterations_used field.
	practiceevent.DefaultIterationsUsed = practiceeventDescIterationsUsed.Default.(int)
	// practiceeventDescSufficient is the schema descriptor for sufficient field.
	practiceeventDescSufficient := practiceeventFields[7].Descriptor()
	// practiceevent.DefaultSufficient holds the default value on creation for the sufficient field.
	practiceevent.DefaultSufficient = practiceeventDescSufficient.Default.(bool)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
}
