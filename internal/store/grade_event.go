package store

import (
	"context"
	"fmt"

	"github.com/hwei-lab/cogscreen/ent"
	"github.com/hwei-lab/cogscreen/ent/gradeevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendGrade(ctx context.Context, data GradeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GradeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetInstrument(data.Instrument).
		SetQuestionID(data.QuestionID).
		SetCategory(data.Category).
		SetAnswer(data.Answer).
		SetScore(data.Score).
		SetMaxScore(data.MaxScore).
		SetFeedback(data.Feedback).
		SetSource(data.Source).
		SetLatencyMs(data.LatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save grade event: %w", err)
	}
	return nil
}

func (r *eventRepo) GradesForSession(ctx context.Context, sessionID string) ([]*GradeEvent, error) {
	rows, err := r.client.GradeEvent.Query().
		Where(gradeevent.SessionID(sessionID)).
		Order(ent.Asc(gradeevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query grade events: %w", err)
	}

	out := make([]*GradeEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, gradeEventFromEnt(row))
	}
	return out, nil
}

func gradeEventFromEnt(row *ent.GradeEvent) *GradeEvent {
	return &GradeEvent{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		GradeEventData: GradeEventData{
			SessionID:  row.SessionID,
			Instrument: row.Instrument,
			QuestionID: row.QuestionID,
			Category:   row.Category,
			Answer:     row.Answer,
			Score:      row.Score,
			MaxScore:   row.MaxScore,
			Feedback:   row.Feedback,
			Source:     row.Source,
			LatencyMs:  row.LatencyMs,
		},
	}
}
