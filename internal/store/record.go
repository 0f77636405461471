package store

import (
	"context"
	"fmt"

	"github.com/hwei-lab/cogscreen/ent"
	"github.com/hwei-lab/cogscreen/ent/assessmentrecord"
)

// recordRepo implements RecordRepo backed by ent.
type recordRepo struct {
	client *ent.Client
}

func (r *recordRepo) SaveAssessment(ctx context.Context, data AssessmentRecordData) error {
	_, err := r.client.AssessmentRecord.Create().
		SetSessionID(data.SessionID).
		SetInstrument(data.Instrument).
		SetPatientName(data.PatientName).
		SetPatientAge(data.PatientAge).
		SetPatientGender(data.PatientGender).
		SetEducationYears(data.EducationYears).
		SetPatientID(data.PatientID).
		SetRawScore(data.RawScore).
		SetFinalScore(data.FinalScore).
		SetMaxScore(data.MaxScore).
		SetEducationAdjusted(data.EducationAdjusted).
		SetImpairedItems(data.ImpairedItems).
		SetInterpretation(data.Interpretation).
		SetStartedAt(data.StartedAt).
		SetCompletedAt(data.CompletedAt).
		SetAnswers(data.Answers).
		SetScores(data.Scores).
		SetFeedback(data.Feedback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment record: %w", err)
	}
	return nil
}

func (r *recordRepo) ListAssessments(ctx context.Context, limit int) ([]*AssessmentRecord, error) {
	q := r.client.AssessmentRecord.Query().
		Order(ent.Desc(assessmentrecord.FieldCompletedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assessment records: %w", err)
	}

	out := make([]*AssessmentRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, recordFromEnt(row))
	}
	return out, nil
}

func (r *recordRepo) GetAssessment(ctx context.Context, sessionID string) (*AssessmentRecord, error) {
	row, err := r.client.AssessmentRecord.Query().
		Where(assessmentrecord.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assessment record: %w", err)
	}
	return recordFromEnt(row), nil
}

func recordFromEnt(row *ent.AssessmentRecord) *AssessmentRecord {
	return &AssessmentRecord{
		ID: row.ID,
		AssessmentRecordData: AssessmentRecordData{
			SessionID:         row.SessionID,
			Instrument:        row.Instrument,
			PatientName:       row.PatientName,
			PatientAge:        row.PatientAge,
			PatientGender:     row.PatientGender,
			EducationYears:    row.EducationYears,
			PatientID:         row.PatientID,
			RawScore:          row.RawScore,
			FinalScore:        row.FinalScore,
			MaxScore:          row.MaxScore,
			EducationAdjusted: row.EducationAdjusted,
			ImpairedItems:     row.ImpairedItems,
			Interpretation:    row.Interpretation,
			StartedAt:         row.StartedAt,
			CompletedAt:       row.CompletedAt,
			Answers:           row.Answers,
			Scores:            row.Scores,
			Feedback:          row.Feedback,
		},
	}
}
