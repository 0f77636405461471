package report

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hwei-lab/cogscreen/internal/store"
)

// Exporter persists a finished summary. Implementations must tolerate
// being called more than once for the same session.
type Exporter interface {
	Save(ctx context.Context, s *Summary) error
}

// StoreExporter writes summaries to the assessment record table.
type StoreExporter struct {
	records store.RecordRepo
}

// NewStoreExporter returns an exporter backed by the given repo.
func NewStoreExporter(records store.RecordRepo) *StoreExporter {
	return &StoreExporter{records: records}
}

func (e *StoreExporter) Save(ctx context.Context, s *Summary) error {
	data := store.AssessmentRecordData{
		SessionID:         s.SessionID,
		Instrument:        string(s.Instrument),
		PatientName:       s.Patient.Name,
		PatientAge:        s.Patient.Age,
		PatientGender:     s.Patient.Gender,
		EducationYears:    s.Patient.EducationYears,
		PatientID:         s.Patient.PatientID,
		RawScore:          s.RawScore,
		FinalScore:        s.FinalScore,
		MaxScore:          s.MaxScore,
		EducationAdjusted: s.EducationAdjusted,
		ImpairedItems:     s.ImpairedItems,
		Interpretation:    s.Interpretation,
		StartedAt:         s.StartedAt,
		CompletedAt:       s.CompletedAt,
		Answers:           marshalMap(s.Answers),
		Scores:            marshalIntMap(s.Scores),
		Feedback:          marshalMap(s.Feedback),
	}

	if err := e.records.SaveAssessment(ctx, data); err != nil {
		return fmt.Errorf("export assessment %s: %w", s.SessionID, err)
	}
	return nil
}

func marshalMap(m map[string]string) string {
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}

func marshalIntMap(m map[string]int) string {
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}
