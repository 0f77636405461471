// Package session drives a single assessment run: it sequences the
// instrument's questions, dispatches each answer to the right scorer,
// and guarantees forward progress even when external grading fails.
package session

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hwei-lab/cogscreen/internal/catalog"
	"github.com/hwei-lab/cogscreen/internal/grader"
	"github.com/hwei-lab/cogscreen/internal/numparse"
	"github.com/hwei-lab/cogscreen/internal/scoring"
	"github.com/hwei-lab/cogscreen/internal/store"
)

// Phase is the machine state: Idle → InProgress → Complete, with
// Restart returning to Idle from anywhere.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInProgress
	PhaseComplete
)

// PatientInfo identifies the subject being screened.
type PatientInfo struct {
	Name           string
	Age            int
	Gender         string
	EducationYears int
	PatientID      string // optional external identifier
}

// Validate checks the intake fields before a session may start.
func (p PatientInfo) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("patient name is required")
	}
	if p.Age < 1 || p.Age > 120 {
		return fmt.Errorf("patient age %d out of range", p.Age)
	}
	if p.EducationYears < 0 || p.EducationYears > 30 {
		return fmt.Errorf("education years %d out of range", p.EducationYears)
	}
	return nil
}

// Answer is one submission: typed text, a speech transcript, and/or
// media captured for the current question.
type Answer struct {
	Text      string
	Image     []byte
	ImageMIME string
	Audio     []byte
	AudioMIME string
}

// Answer score sources recorded per question.
const (
	SourceSerialStep  = "serial_step"
	SourceSerialChain = "serial_chain"
	SourceChoice      = "choice"
	SourceExternal    = "external"
	SourceFailed      = "grading_failed"
)

// Outcome reports how one submission was scored.
type Outcome struct {
	Question catalog.Question
	Score    int
	Feedback string
	Source   string
	Latency  time.Duration
	Done     bool // the assessment completed with this submission
}

// Session is the mutable state of one assessment run.
type Session struct {
	ID          string
	Patient     PatientInfo
	Instrument  catalog.Instrument
	Questions   []catalog.Question
	StartedAt   time.Time
	CompletedAt time.Time

	Answers  map[string]string
	Scores   map[string]int
	Feedback map[string]string

	index int

	// forgiving chain rule state: the value parsed from the previous
	// serial step's answer, valid only while steps run consecutively.
	lastSerial   int
	lastSerialOK bool
}

// Machine owns the active session and enforces the phase transitions.
type Machine struct {
	mu       sync.Mutex
	phase    Phase
	grader   grader.Grader
	events   store.EventRepo
	sess     *Session
	awaiting bool
}

// New creates an idle machine. The grader may be nil when no LLM is
// configured; externally graded questions then score 0 with a notice.
// The event repo may be nil to disable the audit trail.
func New(g grader.Grader, events store.EventRepo) *Machine {
	return &Machine{grader: g, events: events}
}

// Phase returns the current machine phase.
func (m *Machine) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

// Session returns the active or completed session, nil when idle.
func (m *Machine) Session() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess
}

// Start begins an assessment for the given patient and instrument.
// Allowed from Idle or Complete; starting over a running session is an
// error, the caller must Restart first.
func (m *Machine) Start(patient PatientInfo, inst catalog.Instrument) (*Session, error) {
	if err := patient.Validate(); err != nil {
		return nil, err
	}
	qs := catalog.Questions(inst)
	if len(qs) == 0 {
		return nil, fmt.Errorf("unknown instrument %q", inst)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase == PhaseInProgress {
		return nil, ErrSessionActive
	}

	m.sess = &Session{
		ID:         uuid.NewString(),
		Patient:    patient,
		Instrument: inst,
		Questions:  qs,
		StartedAt:  time.Now(),
		Answers:    make(map[string]string, len(qs)),
		Scores:     make(map[string]int, len(qs)),
		Feedback:   make(map[string]string, len(qs)),
	}
	m.phase = PhaseInProgress
	m.awaiting = false
	return m.sess, nil
}

// Restart discards any session state and returns the machine to Idle.
func (m *Machine) Restart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.phase = PhaseIdle
	m.sess = nil
	m.awaiting = false
}

// Current returns the question awaiting an answer.
func (m *Machine) Current() (catalog.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != PhaseInProgress {
		return catalog.Question{}, ErrNotInProgress
	}
	return m.sess.Questions[m.sess.index], nil
}

// Progress reports the zero-based index of the current question and the
// total count.
func (m *Machine) Progress() (answered, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sess == nil {
		return 0, 0
	}
	return m.sess.index, len(m.sess.Questions)
}

// IsComplete reports whether the assessment has finished.
func (m *Machine) IsComplete() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase == PhaseComplete
}

// Submit scores the answer for the current question and advances.
//
// Only one submission may be in flight at a time: a second call while
// an external grade is pending returns ErrGradeInFlight. A grading
// failure never stalls the run; the question scores 0 with a failure
// notice and the index still advances.
func (m *Machine) Submit(ctx context.Context, ans Answer) (*Outcome, error) {
	m.mu.Lock()
	if m.phase != PhaseInProgress {
		m.mu.Unlock()
		return nil, ErrNotInProgress
	}
	if m.awaiting {
		m.mu.Unlock()
		return nil, ErrGradeInFlight
	}
	q := m.sess.Questions[m.sess.index]
	prevSerial, prevSerialOK := m.sess.lastSerial, m.sess.lastSerialOK
	m.awaiting = true
	m.mu.Unlock()

	start := time.Now()
	score, feedback, source, serial := m.score(ctx, q, ans, prevSerial, prevSerialOK)
	latency := time.Since(start)

	m.mu.Lock()
	m.sess.Answers[q.ID] = ans.Text
	m.sess.Scores[q.ID] = score
	m.sess.Feedback[q.ID] = feedback
	if q.Strategy == catalog.StrategySerialStep {
		m.sess.lastSerial, m.sess.lastSerialOK = serial.value, serial.ok
	} else {
		m.sess.lastSerialOK = false
	}
	m.sess.index++
	done := m.sess.index >= len(m.sess.Questions)
	if done {
		m.phase = PhaseComplete
		m.sess.CompletedAt = time.Now()
	}
	m.awaiting = false
	sessID := m.sess.ID
	m.mu.Unlock()

	m.appendGradeEvent(ctx, sessID, q, ans.Text, score, feedback, source, latency)

	return &Outcome{
		Question: q,
		Score:    score,
		Feedback: feedback,
		Source:   source,
		Latency:  latency,
		Done:     done,
	}, nil
}

type serialState struct {
	value int
	ok    bool
}

// score dispatches by the question's scoring strategy.
func (m *Machine) score(ctx context.Context, q catalog.Question, ans Answer, prevSerial int, prevSerialOK bool) (int, string, string, serialState) {
	switch q.Strategy {
	case catalog.StrategySerialStep:
		res := scoring.ScoreSerialStep(ans.Text, q.SerialExpected, prevSerial, prevSerialOK)
		return res.Score, res.Feedback, SourceSerialStep, serialState{res.Parsed, res.OK}

	case catalog.StrategySerialChain:
		res := scoring.ScoreSerialChain(chainTranscript(ans))
		return res.Score, res.Feedback, SourceSerialChain, serialState{}

	case catalog.StrategyChoice:
		return scoring.ScoreChoice(ans.Text), "", SourceChoice, serialState{}

	default:
		return m.gradeExternal(ctx, q, ans)
	}
}

// chainTranscript picks the text carrying the spoken chain. The audio
// screen stores the transcript in Text, so this is currently an alias
// kept for symmetry with future transcript sources.
func chainTranscript(ans Answer) string {
	return ans.Text
}

func (m *Machine) gradeExternal(ctx context.Context, q catalog.Question, ans Answer) (int, string, string, serialState) {
	if m.grader == nil {
		return 0, "AI评分不可用，此题计0分", SourceFailed, serialState{}
	}

	res, err := m.grader.Grade(ctx, grader.Request{
		QuestionID: q.ID,
		Category:   q.Category,
		Prompt:     questionPrompt(q),
		Rubric:     q.Rubric,
		Answer:     ans.Text,
		Image:      ans.Image,
		ImageMIME:  ans.ImageMIME,
		Audio:      ans.Audio,
		AudioMIME:  ans.AudioMIME,
		MaxScore:   q.MaxScore,
	})
	if err != nil {
		return 0, fmt.Sprintf("AI评分失败，此题计0分（%v）", err), SourceFailed, serialState{}
	}
	return res.Score, res.Reasoning, SourceExternal, serialState{}
}

func questionPrompt(q catalog.Question) string {
	if q.Subtext != "" {
		return q.Text + "：" + q.Subtext
	}
	return q.Text
}

// appendGradeEvent records the grading outcome for the audit trail.
// Persistence failures are reported but never fail the submission.
func (m *Machine) appendGradeEvent(ctx context.Context, sessID string, q catalog.Question, answer string, score int, feedback, source string, latency time.Duration) {
	if m.events == nil {
		return
	}
	err := m.events.AppendGrade(ctx, store.GradeEventData{
		SessionID:  sessID,
		Instrument: string(q.Instrument),
		QuestionID: q.ID,
		Category:   q.Category,
		Answer:     answer,
		Score:      score,
		MaxScore:   q.MaxScore,
		Feedback:   feedback,
		Source:     source,
		LatencyMs:  latency.Milliseconds(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record grade event: %v\n", err)
	}
}

// ParseSerialAnswer exposes the normalizer used for serial steps, for
// screens that want to echo what was understood.
func ParseSerialAnswer(text string) (int, bool) {
	return numparse.ParseNumber(text)
}
