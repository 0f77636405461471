// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hwei-lab/cogscreen/ent/assessmentrecord"
	"github.com/hwei-lab/cogscreen/ent/gradeevent"
	"github.com/hwei-lab/cogscreen/ent/llmrequestevent"
	"github.com/hwei-lab/cogscreen/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentrecordFields := schema.AssessmentRecord{}.Fields()
	_ = assessmentrecordFields
	// assessmentrecordDescPatientGender is the schema descriptor for patient_gender field.
	assessmentrecordDescPatientGender := assessmentrecordFields[4].Descriptor()
	// assessmentrecord.DefaultPatientGender holds the default value on creation for the patient_gender field.
	assessmentrecord.DefaultPatientGender = assessmentrecordDescPatientGender.Default.(string)
	// assessmentrecordDescEducationYears is the schema descriptor for education_years field.
	assessmentrecordDescEducationYears := assessmentrecordFields[5].Descriptor()
	// assessmentrecord.DefaultEducationYears holds the default value on creation for the education_years field.
	assessmentrecord.DefaultEducationYears = assessmentrecordDescEducationYears.Default.(int)
	// assessmentrecordDescPatientID is the schema descriptor for patient_id field.
	assessmentrecordDescPatientID := assessmentrecordFields[6].Descriptor()
	// assessmentrecord.DefaultPatientID holds the default value on creation for the patient_id field.
	assessmentrecord.DefaultPatientID = assessmentrecordDescPatientID.Default.(string)
	// assessmentrecordDescEducationAdjusted is the schema descriptor for education_adjusted field.
	assessmentrecordDescEducationAdjusted := assessmentrecordFields[10].Descriptor()
	// assessmentrecord.DefaultEducationAdjusted holds the default value on creation for the education_adjusted field.
	assessmentrecord.DefaultEducationAdjusted = assessmentrecordDescEducationAdjusted.Default.(bool)
	// assessmentrecordDescImpairedItems is the schema descriptor for impaired_items field.
	assessmentrecordDescImpairedItems := assessmentrecordFields[11].Descriptor()
	// assessmentrecord.DefaultImpairedItems holds the default value on creation for the impaired_items field.
	assessmentrecord.DefaultImpairedItems = assessmentrecordDescImpairedItems.Default.(int)
	// assessmentrecordDescAnswers is the schema descriptor for answers field.
	assessmentrecordDescAnswers := assessmentrecordFields[15].Descriptor()
	// assessmentrecord.DefaultAnswers holds the default value on creation for the answers field.
	assessmentrecord.DefaultAnswers = assessmentrecordDescAnswers.Default.(string)
	// assessmentrecordDescScores is the schema descriptor for scores field.
	assessmentrecordDescScores := assessmentrecordFields[16].Descriptor()
	// assessmentrecord.DefaultScores holds the default value on creation for the scores field.
	assessmentrecord.DefaultScores = assessmentrecordDescScores.Default.(string)
	// assessmentrecordDescFeedback is the schema descriptor for feedback field.
	assessmentrecordDescFeedback := assessmentrecordFields[17].Descriptor()
	// assessmentrecord.DefaultFeedback holds the default value on creation for the feedback field.
	assessmentrecord.DefaultFeedback = assessmentrecordDescFeedback.Default.(string)
	gradeeventMixin := schema.GradeEvent{}.Mixin()
	gradeeventMixinFields0 := gradeeventMixin[0].Fields()
	_ = gradeeventMixinFields0
	gradeeventFields := schema.GradeEvent{}.Fields()
	_ = gradeeventFields
	// gradeeventDescTimestamp is the schema descriptor for timestamp field.
	gradeeventDescTimestamp := gradeeventMixinFields0[1].Descriptor()
	// gradeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	gradeevent.DefaultTimestamp = gradeeventDescTimestamp.Default.(func() time.Time)
	// gradeeventDescCategory is the schema descriptor for category field.
	gradeeventDescCategory := gradeeventFields[3].Descriptor()
	// gradeevent.DefaultCategory holds the default value on creation for the category field.
	gradeevent.DefaultCategory = gradeeventDescCategory.Default.(string)
	// gradeeventDescAnswer is the schema descriptor for answer field.
	gradeeventDescAnswer := gradeeventFields[4].Descriptor()
	// gradeevent.DefaultAnswer holds the default value on creation for the answer field.
	gradeevent.DefaultAnswer = gradeeventDescAnswer.Default.(string)
	// gradeeventDescFeedback is the schema descriptor for feedback field.
	gradeeventDescFeedback := gradeeventFields[7].Descriptor()
	// gradeevent.DefaultFeedback holds the default value on creation for the feedback field.
	gradeevent.DefaultFeedback = gradeeventDescFeedback.Default.(string)
	// gradeeventDescLatencyMs is the schema descriptor for latency_ms field.
	gradeeventDescLatencyMs := gradeeventFields[9].Descriptor()
	// gradeevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	gradeevent.DefaultLatencyMs = gradeeventDescLatencyMs.Default.(int64)
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
}
