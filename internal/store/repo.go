package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// GradeEventData captures one scored answer for the audit trail.
type GradeEventData struct {
	SessionID  string
	Instrument string
	QuestionID string
	Category   string
	Answer     string
	Score      int
	MaxScore   int
	Feedback   string
	Source     string
	LatencyMs  int64
}

// GradeEvent is a persisted grade event.
type GradeEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	GradeEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a persisted LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// AssessmentRecordData is the persisted summary of a completed assessment.
// Answers, Scores and Feedback hold the per-question detail as JSON.
type AssessmentRecordData struct {
	SessionID         string
	Instrument        string
	PatientName       string
	PatientAge        int
	PatientGender     string
	EducationYears    int
	PatientID         string
	RawScore          int
	FinalScore        int
	MaxScore          int
	EducationAdjusted bool
	ImpairedItems     int
	Interpretation    string
	StartedAt         time.Time
	CompletedAt       time.Time
	Answers           string
	Scores            string
	Feedback          string
}

// AssessmentRecord is a persisted assessment result.
type AssessmentRecord struct {
	ID int
	AssessmentRecordData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendGrade records a scored answer.
	AppendGrade(ctx context.Context, data GradeEventData) error

	// GradesForSession returns all grade events of one session in
	// sequence order.
	GradesForSession(ctx context.Context, sessionID string) ([]*GradeEvent, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error)

	// GetLLMEvent returns one LLM request event by ID, nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]*LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]*LLMModelUsage, error)
}

// RecordRepo manages persisted assessment results.
type RecordRepo interface {
	// SaveAssessment stores a completed assessment.
	SaveAssessment(ctx context.Context, data AssessmentRecordData) error

	// ListAssessments returns assessments, newest first.
	ListAssessments(ctx context.Context, limit int) ([]*AssessmentRecord, error)

	// GetAssessment returns one assessment by session ID, nil if absent.
	GetAssessment(ctx context.Context, sessionID string) (*AssessmentRecord, error)
}
