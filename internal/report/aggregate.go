// Package report turns a completed assessment into a clinical summary:
// instrument totals, the education correction, interpretation bands,
// and per-category breakdowns.
package report

import (
	"time"

	"github.com/hwei-lab/cogscreen/internal/catalog"
	"github.com/hwei-lab/cogscreen/internal/scoring"
	"github.com/hwei-lab/cogscreen/internal/session"
)

// Interpretation labels per instrument.
const (
	InterpNormal       = "认知功能正常"
	InterpMMSEMild     = "轻度认知功能障碍"
	InterpMMSEModerate = "中度认知功能障碍"
	InterpMMSESevere   = "重度认知功能障碍"
	InterpMoCAImpaired = "可能存在认知功能障碍"
	InterpADLNormal    = "日常生活能力完全正常"
	InterpADLSevere    = "明显功能障碍"
	InterpADLMild      = "不同程度功能下降"
)

// Cutoffs and the education correction threshold.
const (
	mmseNormalCutoff   = 27
	mmseMildCutoff     = 21
	mmseModerateCutoff = 10
	mocaNormalCutoff   = 26
	mocaEducationYears = 12
	adlNormalCutoff    = 26
	adlSevereTotal     = 22
	adlImpairedValue   = 3
	adlSevereImpaired  = 2
)

// CategoryScore is the earned/max pair for one question category.
type CategoryScore struct {
	Category string
	Earned   int
	Max      int
}

// Summary is the aggregated result of one assessment.
type Summary struct {
	SessionID   string
	Patient     session.PatientInfo
	Instrument  catalog.Instrument
	StartedAt   time.Time
	CompletedAt time.Time
	Duration    time.Duration

	RawScore   int
	FinalScore int // raw plus any education correction
	MaxScore   int

	// EducationAdjusted reports whether the MoCA +1 correction for
	// twelve or fewer education years was applied.
	EducationAdjusted bool

	// ImpairedItems counts ADL items rated 3 or 4.
	ImpairedItems int

	Interpretation string
	Categories     []CategoryScore

	Answers  map[string]string
	Scores   map[string]int
	Feedback map[string]string
}

// Aggregate computes the summary for a session. Questions without a
// recorded score count 0 for MMSE and MoCA; unanswered ADL items count
// as option 1, the independent baseline, so a skipped item never reads
// as impairment.
func Aggregate(sess *session.Session) *Summary {
	s := &Summary{
		SessionID:   sess.ID,
		Patient:     sess.Patient,
		Instrument:  sess.Instrument,
		StartedAt:   sess.StartedAt,
		CompletedAt: sess.CompletedAt,
		MaxScore:    catalog.MaxScore(sess.Instrument),
		Answers:     sess.Answers,
		Scores:      sess.Scores,
		Feedback:    sess.Feedback,
	}
	if !sess.CompletedAt.IsZero() {
		s.Duration = sess.CompletedAt.Sub(sess.StartedAt)
	}

	switch sess.Instrument {
	case catalog.ADL:
		aggregateADL(sess, s)
	case catalog.MoCA:
		aggregateMoCA(sess, s)
	default:
		aggregateMMSE(sess, s)
	}

	s.Categories = categoryBreakdown(sess)
	return s
}

func aggregateMMSE(sess *session.Session, s *Summary) {
	for _, q := range sess.Questions {
		s.RawScore += sess.Scores[q.ID]
	}
	s.FinalScore = s.RawScore

	switch {
	case s.FinalScore >= mmseNormalCutoff:
		s.Interpretation = InterpNormal
	case s.FinalScore >= mmseMildCutoff:
		s.Interpretation = InterpMMSEMild
	case s.FinalScore >= mmseModerateCutoff:
		s.Interpretation = InterpMMSEModerate
	default:
		s.Interpretation = InterpMMSESevere
	}
}

func aggregateMoCA(sess *session.Session, s *Summary) {
	for _, q := range sess.Questions {
		s.RawScore += sess.Scores[q.ID]
	}
	s.FinalScore = s.RawScore

	// One compensation point for twelve or fewer years of education,
	// never pushing the total past the scale maximum.
	if sess.Patient.EducationYears <= mocaEducationYears && s.RawScore < s.MaxScore {
		s.FinalScore = s.RawScore + 1
		s.EducationAdjusted = true
	}

	if s.FinalScore >= mocaNormalCutoff {
		s.Interpretation = InterpNormal
	} else {
		s.Interpretation = InterpMoCAImpaired
	}
}

func aggregateADL(sess *session.Session, s *Summary) {
	for _, q := range sess.Questions {
		v := scoring.ScoreChoice(sess.Answers[q.ID])
		s.RawScore += v
		if v >= adlImpairedValue {
			s.ImpairedItems++
		}
	}
	s.FinalScore = s.RawScore

	switch {
	case s.FinalScore <= adlNormalCutoff:
		s.Interpretation = InterpADLNormal
	case s.ImpairedItems >= adlSevereImpaired || s.FinalScore >= adlSevereTotal:
		s.Interpretation = InterpADLSevere
	default:
		s.Interpretation = InterpADLMild
	}
}

// categoryBreakdown groups earned and maximum points by question
// category, preserving first-appearance order.
func categoryBreakdown(sess *session.Session) []CategoryScore {
	var out []CategoryScore
	index := make(map[string]int)
	for _, q := range sess.Questions {
		i, ok := index[q.Category]
		if !ok {
			i = len(out)
			index[q.Category] = i
			out = append(out, CategoryScore{Category: q.Category})
		}
		earned := sess.Scores[q.ID]
		if sess.Instrument == catalog.ADL {
			earned = scoring.ScoreChoice(sess.Answers[q.ID])
		}
		out[i].Earned += earned
		out[i].Max += q.MaxScore
	}
	return out
}
