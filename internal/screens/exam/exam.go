// Package exam runs the question loop of an active assessment: it shows
// the current question, captures the answer in the form the question
// asks for, and hands it to the session machine for scoring.
package exam

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/hwei-lab/cogscreen/internal/catalog"
	"github.com/hwei-lab/cogscreen/internal/report"
	"github.com/hwei-lab/cogscreen/internal/router"
	"github.com/hwei-lab/cogscreen/internal/screen"
	reportscreen "github.com/hwei-lab/cogscreen/internal/screens/reportview"
	"github.com/hwei-lab/cogscreen/internal/session"
	"github.com/hwei-lab/cogscreen/internal/ui/components"
	"github.com/hwei-lab/cogscreen/internal/ui/layout"
)

// ExamScreen drives one assessment from first question to report.
type ExamScreen struct {
	machine  *session.Machine
	exporter report.Exporter

	question    catalog.Question
	input       components.TextInput
	choice      components.ChoiceList
	grading     bool
	outcome     *session.Outcome
	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.EscInterceptor = (*ExamScreen)(nil)

// gradedMsg is sent when the machine has scored a submission.
type gradedMsg struct {
	Outcome *session.Outcome
	Err     error
}

// New creates the exam screen over an already started machine.
func New(machine *session.Machine, exporter report.Exporter) *ExamScreen {
	s := &ExamScreen{machine: machine, exporter: exporter}
	s.loadCurrent()
	return s
}

// loadCurrent pulls the machine's current question and resets the input
// widgets for its kind.
func (s *ExamScreen) loadCurrent() {
	q, err := s.machine.Current()
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.question = q
	s.outcome = nil

	if q.Kind == catalog.InputChoice {
		s.choice = components.NewChoiceList(q.Options)
	} else {
		placeholder := answerPlaceholder(q.Kind)
		s.input = components.NewTextInput(placeholder, false, 200)
	}
}

func answerPlaceholder(kind catalog.InputKind) string {
	switch kind {
	case catalog.InputDrawing:
		return "输入回答，或图片文件路径（png/jpg）"
	case catalog.InputAudio:
		return "输入口述内容，或录音文件路径"
	default:
		return "输入回答..."
	}
}

func (s *ExamScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ExamScreen) Title() string {
	return s.question.Instrument.DisplayName()
}

// InterceptEsc keeps Esc inside the exam so an accidental key press
// cannot abandon a half-finished assessment.
func (s *ExamScreen) InterceptEsc() bool {
	return s.errMsg == "" && !s.machine.IsComplete()
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "中止评估"},
			{Key: "N", Description: "继续"},
		}
	case s.outcome != nil:
		return []layout.KeyHint{
			{Key: "任意键", Description: "下一题"},
		}
	case s.grading:
		return []layout.KeyHint{
			{Key: "", Description: "评分中..."},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "提交"},
			{Key: "Esc", Description: "中止"},
		}
	}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gradedMsg:
		return s.handleGraded(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.grading && s.outcome == nil && !s.quitConfirm && s.question.Kind != catalog.InputChoice {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.machine.Restart()
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.grading {
		return s, nil
	}

	// Feedback shown: any key advances.
	if s.outcome != nil {
		if s.outcome.Done {
			return s.finish()
		}
		s.loadCurrent()
		return s, s.input.Init()
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	if s.question.Kind == catalog.InputChoice {
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Confirmed() {
			return s.submit(session.Answer{Text: s.choice.Value()})
		}
		return s, cmd
	}

	if key == "enter" {
		text := strings.TrimSpace(s.input.Value())
		ans := session.Answer{Text: text}
		attachAnswerFile(&ans, s.question.Kind, text)
		return s.submit(ans)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit hands the answer to the machine asynchronously; external
// grading can take seconds.
func (s *ExamScreen) submit(ans session.Answer) (screen.Screen, tea.Cmd) {
	s.grading = true
	machine := s.machine
	return s, func() tea.Msg {
		out, err := machine.Submit(context.Background(), ans)
		return gradedMsg{Outcome: out, Err: err}
	}
}

func (s *ExamScreen) handleGraded(msg gradedMsg) (screen.Screen, tea.Cmd) {
	s.grading = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.outcome = msg.Outcome
	return s, nil
}

// finish aggregates the completed session and navigates to the report.
func (s *ExamScreen) finish() (screen.Screen, tea.Cmd) {
	sess := s.machine.Session()
	if sess == nil {
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	summary := report.Aggregate(sess)
	s.machine.Restart()

	exporter := s.exporter
	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: reportscreen.New(summary, exporter),
		}
	}
}

func progressLabel(answered, total int) string {
	return fmt.Sprintf("第 %d / %d 题", answered+1, total)
}
