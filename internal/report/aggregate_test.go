package report

import (
	"testing"
	"time"

	"github.com/hwei-lab/cogscreen/internal/catalog"
	"github.com/hwei-lab/cogscreen/internal/session"
)

// sessionWithTotal builds a completed session whose scores sum to total,
// distributed greedily over the question bank.
func sessionWithTotal(inst catalog.Instrument, edu, total int) *session.Session {
	qs := catalog.Questions(inst)
	scores := make(map[string]int, len(qs))
	remaining := total
	for _, q := range qs {
		s := q.MaxScore
		if s > remaining {
			s = remaining
		}
		scores[q.ID] = s
		remaining -= s
	}
	started := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	return &session.Session{
		ID:          "test-session",
		Patient:     session.PatientInfo{Name: "李明", Age: 70, EducationYears: edu},
		Instrument:  inst,
		Questions:   qs,
		StartedAt:   started,
		CompletedAt: started.Add(12 * time.Minute),
		Answers:     map[string]string{},
		Scores:      scores,
		Feedback:    map[string]string{},
	}
}

// adlSession builds an ADL session answering every item with the given
// option ordinal; overrides replace individual answers.
func adlSession(option string, overrides map[string]string) *session.Session {
	qs := catalog.Questions(catalog.ADL)
	answers := make(map[string]string, len(qs))
	scores := make(map[string]int, len(qs))
	for _, q := range qs {
		a := option
		if o, ok := overrides[q.ID]; ok {
			a = o
		}
		if a != "" {
			answers[q.ID] = a
		}
	}
	return &session.Session{
		ID:         "adl-session",
		Patient:    session.PatientInfo{Name: "王芳", Age: 80},
		Instrument: catalog.ADL,
		Questions:  qs,
		Answers:    answers,
		Scores:     scores,
		Feedback:   map[string]string{},
	}
}

func TestAggregateMMSEBands(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{30, InterpNormal},
		{27, InterpNormal},
		{26, InterpMMSEMild},
		{21, InterpMMSEMild},
		{20, InterpMMSEModerate},
		{10, InterpMMSEModerate},
		{9, InterpMMSESevere},
		{0, InterpMMSESevere},
	}
	for _, tt := range tests {
		s := Aggregate(sessionWithTotal(catalog.MMSE, 16, tt.total))
		if s.RawScore != tt.total {
			t.Errorf("total %d: raw = %d", tt.total, s.RawScore)
		}
		if s.FinalScore != tt.total {
			t.Errorf("total %d: final = %d, MMSE has no correction", tt.total, s.FinalScore)
		}
		if s.Interpretation != tt.want {
			t.Errorf("total %d: interpretation = %q, want %q", tt.total, s.Interpretation, tt.want)
		}
		if s.MaxScore != 30 {
			t.Errorf("max = %d, want 30", s.MaxScore)
		}
	}
}

func TestAggregateMoCAEducationCorrection(t *testing.T) {
	tests := []struct {
		name     string
		edu      int
		raw      int
		want     int
		adjusted bool
		interp   string
	}{
		{"low education gains a point", 6, 25, 26, true, InterpNormal},
		{"twelve years still corrected", 12, 20, 21, true, InterpMoCAImpaired},
		{"high education uncorrected", 16, 25, 25, false, InterpMoCAImpaired},
		{"perfect score never exceeds max", 6, 30, 30, false, InterpNormal},
		{"uncorrected normal", 16, 26, 26, false, InterpNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Aggregate(sessionWithTotal(catalog.MoCA, tt.edu, tt.raw))
			if s.RawScore != tt.raw {
				t.Errorf("raw = %d, want %d", s.RawScore, tt.raw)
			}
			if s.FinalScore != tt.want {
				t.Errorf("final = %d, want %d", s.FinalScore, tt.want)
			}
			if s.EducationAdjusted != tt.adjusted {
				t.Errorf("adjusted = %v, want %v", s.EducationAdjusted, tt.adjusted)
			}
			if s.Interpretation != tt.interp {
				t.Errorf("interpretation = %q, want %q", s.Interpretation, tt.interp)
			}
		})
	}
}

func TestAggregateADL(t *testing.T) {
	t.Run("all independent is normal", func(t *testing.T) {
		s := Aggregate(adlSession("1", nil))
		if s.RawScore != 20 {
			t.Errorf("raw = %d, want 20", s.RawScore)
		}
		if s.ImpairedItems != 0 {
			t.Errorf("impaired = %d, want 0", s.ImpairedItems)
		}
		if s.Interpretation != InterpADLNormal {
			t.Errorf("interpretation = %q", s.Interpretation)
		}
	})

	t.Run("missing answers count as independent", func(t *testing.T) {
		s := Aggregate(adlSession("", nil))
		if s.RawScore != 20 {
			t.Errorf("raw = %d, want 20", s.RawScore)
		}
		if s.Interpretation != InterpADLNormal {
			t.Errorf("interpretation = %q", s.Interpretation)
		}
	})

	t.Run("two impaired items within cutoff stay normal", func(t *testing.T) {
		s := Aggregate(adlSession("1", map[string]string{
			"adl_10_walk_indoor": "3",
			"adl_14_bathing": "3",
		}))
		if s.RawScore != 24 {
			t.Errorf("raw = %d, want 24", s.RawScore)
		}
		if s.ImpairedItems != 2 {
			t.Errorf("impaired = %d, want 2", s.ImpairedItems)
		}
		if s.Interpretation != InterpADLNormal {
			t.Errorf("interpretation = %q, total within normal cutoff", s.Interpretation)
		}
	})

	t.Run("dependent profile is severe", func(t *testing.T) {
		s := Aggregate(adlSession("2", map[string]string{
			"adl_10_walk_indoor": "4",
			"adl_14_bathing": "4",
		}))
		if s.RawScore != 44 {
			t.Errorf("raw = %d, want 44", s.RawScore)
		}
		if s.ImpairedItems != 2 {
			t.Errorf("impaired = %d, want 2", s.ImpairedItems)
		}
		if s.Interpretation != InterpADLSevere {
			t.Errorf("interpretation = %q, want %q", s.Interpretation, InterpADLSevere)
		}
	})
}

func TestCategoryBreakdown(t *testing.T) {
	sess := sessionWithTotal(catalog.MMSE, 16, 30)
	s := Aggregate(sess)

	if len(s.Categories) == 0 {
		t.Fatal("no categories")
	}
	var earned, max int
	for _, c := range s.Categories {
		if c.Category == "" {
			t.Error("empty category name")
		}
		earned += c.Earned
		max += c.Max
	}
	if earned != 30 || max != 30 {
		t.Errorf("breakdown sums = %d/%d, want 30/30", earned, max)
	}
	if s.Categories[0].Category != sess.Questions[0].Category {
		t.Errorf("first category = %q, want question order preserved", s.Categories[0].Category)
	}
}

func TestAggregateDuration(t *testing.T) {
	s := Aggregate(sessionWithTotal(catalog.MMSE, 16, 28))
	if s.Duration != 12*time.Minute {
		t.Errorf("duration = %v, want 12m", s.Duration)
	}

	open := sessionWithTotal(catalog.MMSE, 16, 28)
	open.CompletedAt = time.Time{}
	if d := Aggregate(open).Duration; d != 0 {
		t.Errorf("duration for incomplete session = %v, want 0", d)
	}
}
