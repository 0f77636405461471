package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hwei-lab/cogscreen/internal/catalog"
	"github.com/hwei-lab/cogscreen/internal/grader"
)

func testPatient() PatientInfo {
	return PatientInfo{Name: "王芳", Age: 72, Gender: "女", EducationYears: 9}
}

// fullMockGrader returns a grader with enough canned results to cover
// every externally graded question of an instrument.
func fullMockGrader(inst catalog.Instrument, score int) *grader.MockGrader {
	m := grader.NewMockGrader()
	for _, q := range catalog.Questions(inst) {
		if q.Strategy == catalog.StrategyExternal {
			s := score
			if s > q.MaxScore {
				s = q.MaxScore
			}
			m.AddOutcome(grader.MockOutcome{Result: &grader.Result{Score: s, Reasoning: "正确"}})
		}
	}
	return m
}

func TestStartValidatesPatient(t *testing.T) {
	m := New(nil, nil)
	tests := []struct {
		name    string
		patient PatientInfo
	}{
		{"empty name", PatientInfo{Age: 70}},
		{"zero age", PatientInfo{Name: "张", Age: 0}},
		{"absurd age", PatientInfo{Name: "张", Age: 130}},
		{"negative education", PatientInfo{Name: "张", Age: 70, EducationYears: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Start(tt.patient, catalog.ADL); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestStartRejectsActiveSession(t *testing.T) {
	m := New(nil, nil)
	if _, err := m.Start(testPatient(), catalog.ADL); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if _, err := m.Start(testPatient(), catalog.MMSE); !errors.Is(err, ErrSessionActive) {
		t.Fatalf("second start error = %v, want ErrSessionActive", err)
	}
	m.Restart()
	if _, err := m.Start(testPatient(), catalog.MMSE); err != nil {
		t.Fatalf("start after restart: %v", err)
	}
}

func TestCurrentAndSubmitRequireInProgress(t *testing.T) {
	m := New(nil, nil)
	if _, err := m.Current(); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("Current error = %v, want ErrNotInProgress", err)
	}
	if _, err := m.Submit(context.Background(), Answer{Text: "x"}); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("Submit error = %v, want ErrNotInProgress", err)
	}
}

func TestADLRunToCompletion(t *testing.T) {
	m := New(nil, nil)
	sess, err := m.Start(testPatient(), catalog.ADL)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sess.ID == "" {
		t.Error("session ID not assigned")
	}

	total := len(sess.Questions)
	for i := 0; i < total; i++ {
		q, err := m.Current()
		if err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
		out, err := m.Submit(context.Background(), Answer{Text: q.Options[0]})
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if out.Score != 1 {
			t.Errorf("question %s score = %d, want 1", q.ID, out.Score)
		}
		if out.Source != SourceChoice {
			t.Errorf("question %s source = %s", q.ID, out.Source)
		}
		if out.Done != (i == total-1) {
			t.Errorf("question %d done = %v", i, out.Done)
		}
	}

	if !m.IsComplete() {
		t.Error("machine not complete after all answers")
	}
	if m.Phase() != PhaseComplete {
		t.Errorf("phase = %d, want PhaseComplete", m.Phase())
	}
	if sess.CompletedAt.IsZero() {
		t.Error("CompletedAt not set")
	}
	if _, err := m.Submit(context.Background(), Answer{Text: "1"}); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("submit after completion = %v, want ErrNotInProgress", err)
	}
}

func TestSerialStepChainRule(t *testing.T) {
	m := New(fullMockGrader(catalog.MMSE, 1), nil)
	sess, err := m.Start(testPatient(), catalog.MMSE)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Answers for the five serial steps: the first is wrong, the rest
	// follow the wrong answer consistently and earn their points.
	serialAnswers := map[string]struct {
		text string
		want int
	}{
		"mmse_serial7_1": {"92", 0},
		"mmse_serial7_2": {"85", 1},
		"mmse_serial7_3": {"78", 1},
		"mmse_serial7_4": {"71", 1},
		"mmse_serial7_5": {"64", 1},
	}

	for range sess.Questions {
		q, err := m.Current()
		if err != nil {
			t.Fatalf("current: %v", err)
		}
		ans := Answer{Text: "随便"}
		if sa, ok := serialAnswers[q.ID]; ok {
			ans.Text = sa.text
		}
		out, err := m.Submit(context.Background(), ans)
		if err != nil {
			t.Fatalf("submit %s: %v", q.ID, err)
		}
		if sa, ok := serialAnswers[q.ID]; ok {
			if out.Score != sa.want {
				t.Errorf("%s score = %d, want %d (%s)", q.ID, out.Score, sa.want, out.Feedback)
			}
			if out.Source != SourceSerialStep {
				t.Errorf("%s source = %s", q.ID, out.Source)
			}
		}
	}
	if !m.IsComplete() {
		t.Error("session did not complete")
	}
}

func TestSerialChainQuestion(t *testing.T) {
	m := New(fullMockGrader(catalog.MoCA, 1), nil)
	if _, err := m.Start(testPatient(), catalog.MoCA); err != nil {
		t.Fatalf("start: %v", err)
	}

	for !m.IsComplete() {
		q, err := m.Current()
		if err != nil {
			t.Fatalf("current: %v", err)
		}
		ans := Answer{Text: "好"}
		if q.Strategy == catalog.StrategySerialChain {
			ans.Text = "93，86，79，72，65"
		}
		out, err := m.Submit(context.Background(), ans)
		if err != nil {
			t.Fatalf("submit %s: %v", q.ID, err)
		}
		if q.Strategy == catalog.StrategySerialChain {
			if out.Score != 3 {
				t.Errorf("chain score = %d, want 3 (%s)", out.Score, out.Feedback)
			}
			if out.Source != SourceSerialChain {
				t.Errorf("chain source = %s", out.Source)
			}
		}
	}
}

func TestGraderFailureStillAdvances(t *testing.T) {
	// Empty mock queue: every external grade fails.
	m := New(grader.NewMockGrader(), nil)
	sess, err := m.Start(testPatient(), catalog.MMSE)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	indexBefore := 0
	for !m.IsComplete() {
		q, err := m.Current()
		if err != nil {
			t.Fatalf("current: %v", err)
		}
		out, err := m.Submit(context.Background(), Answer{Text: "93"})
		if err != nil {
			t.Fatalf("submit %s: %v", q.ID, err)
		}
		if q.Strategy == catalog.StrategyExternal {
			if out.Score != 0 {
				t.Errorf("%s score = %d, want 0 on grader failure", q.ID, out.Score)
			}
			if out.Source != SourceFailed {
				t.Errorf("%s source = %s, want %s", q.ID, out.Source, SourceFailed)
			}
			if out.Feedback == "" {
				t.Errorf("%s has no failure feedback", q.ID)
			}
		}
		answered, _ := m.Progress()
		if m.Phase() == PhaseInProgress && answered != indexBefore+1 {
			t.Fatalf("index did not advance after %s", q.ID)
		}
		indexBefore = answered
	}

	if len(sess.Scores) != len(sess.Questions) {
		t.Errorf("recorded %d scores, want %d", len(sess.Scores), len(sess.Questions))
	}
}

func TestNilGraderScoresZero(t *testing.T) {
	m := New(nil, nil)
	if _, err := m.Start(testPatient(), catalog.MMSE); err != nil {
		t.Fatalf("start: %v", err)
	}

	for !m.IsComplete() {
		q, _ := m.Current()
		out, err := m.Submit(context.Background(), Answer{Text: "93"})
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if q.Strategy == catalog.StrategyExternal && out.Source != SourceFailed {
			t.Errorf("%s source = %s, want %s", q.ID, out.Source, SourceFailed)
		}
	}
}

func TestExternalScoresRecorded(t *testing.T) {
	mock := fullMockGrader(catalog.MMSE, 1)
	m := New(mock, nil)
	sess, err := m.Start(testPatient(), catalog.MMSE)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	for i := 0; !m.IsComplete(); i++ {
		if _, err := m.Submit(context.Background(), Answer{Text: fmt.Sprintf("回答%d", i)}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	external := 0
	for _, q := range sess.Questions {
		if q.Strategy == catalog.StrategyExternal {
			external++
			if sess.Scores[q.ID] > q.MaxScore {
				t.Errorf("%s score %d exceeds max %d", q.ID, sess.Scores[q.ID], q.MaxScore)
			}
		}
	}
	if len(mock.Calls) != external {
		t.Errorf("grader called %d times, want %d", len(mock.Calls), external)
	}
}
