// Package intake collects the patient information required before an
// assessment can start.
package intake

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hwei-lab/cogscreen/internal/catalog"
	"github.com/hwei-lab/cogscreen/internal/report"
	"github.com/hwei-lab/cogscreen/internal/router"
	"github.com/hwei-lab/cogscreen/internal/screen"
	"github.com/hwei-lab/cogscreen/internal/screens/exam"
	"github.com/hwei-lab/cogscreen/internal/session"
	"github.com/hwei-lab/cogscreen/internal/ui/components"
	"github.com/hwei-lab/cogscreen/internal/ui/layout"
	"github.com/hwei-lab/cogscreen/internal/ui/theme"
)

const (
	fieldName = iota
	fieldAge
	fieldGender
	fieldEducation
	fieldPatientID
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"姓名",
	"年龄",
	"性别",
	"受教育年限",
	"病历号（可选）",
}

// IntakeScreen is the patient information form shown before a scale.
type IntakeScreen struct {
	machine    *session.Machine
	exporter   report.Exporter
	instrument catalog.Instrument

	inputs [fieldCount]components.TextInput
	focus  int
	errMsg string
}

var _ screen.Screen = (*IntakeScreen)(nil)
var _ screen.KeyHintProvider = (*IntakeScreen)(nil)

// New creates the intake form for the given instrument.
func New(machine *session.Machine, exporter report.Exporter, inst catalog.Instrument) *IntakeScreen {
	s := &IntakeScreen{
		machine:    machine,
		exporter:   exporter,
		instrument: inst,
	}
	s.inputs[fieldName] = components.NewTextInput("张三", false, 20)
	s.inputs[fieldAge] = components.NewTextInput("65", true, 3)
	s.inputs[fieldGender] = components.NewTextInput("男 / 女", false, 4)
	s.inputs[fieldEducation] = components.NewTextInput("9", true, 2)
	s.inputs[fieldPatientID] = components.NewTextInput("", false, 32)
	return s
}

func (s *IntakeScreen) Init() tea.Cmd {
	return s.inputs[s.focus].Init()
}

func (s *IntakeScreen) Title() string {
	return s.instrument.DisplayName()
}

func (s *IntakeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "切换"},
		{Key: "Enter", Description: "下一项/开始"},
		{Key: "Esc", Description: "返回"},
	}
}

func (s *IntakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			s.focus = (s.focus + 1) % fieldCount
			return s, s.inputs[s.focus].Init()
		case "shift+tab", "up":
			s.focus = (s.focus + fieldCount - 1) % fieldCount
			return s, s.inputs[s.focus].Init()
		case "enter":
			if s.focus < fieldCount-1 {
				s.focus++
				return s, s.inputs[s.focus].Init()
			}
			return s.start()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

// start validates the form and begins the assessment.
func (s *IntakeScreen) start() (screen.Screen, tea.Cmd) {
	age, _ := s.inputs[fieldAge].NumericValue()
	edu, _ := s.inputs[fieldEducation].NumericValue()

	patient := session.PatientInfo{
		Name:           strings.TrimSpace(s.inputs[fieldName].Value()),
		Age:            age,
		Gender:         strings.TrimSpace(s.inputs[fieldGender].Value()),
		EducationYears: edu,
		PatientID:      strings.TrimSpace(s.inputs[fieldPatientID].Value()),
	}

	if _, err := s.machine.Start(patient, s.instrument); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: exam.New(s.machine, s.exporter),
		}
	}
}

func (s *IntakeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(s.instrument.DisplayName()))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("请填写受检者信息"))
	b.WriteString("\n\n")

	var form strings.Builder
	for i := 0; i < fieldCount; i++ {
		label := fieldLabels[i]
		labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.focus {
			labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		form.WriteString(fmt.Sprintf("%s\n%s\n\n",
			labelStyle.Render(label),
			s.inputs[i].View(),
		))
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form.String()))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}
