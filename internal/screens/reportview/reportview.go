// Package reportview renders the final assessment report and persists
// it to the history.
package reportview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hwei-lab/cogscreen/internal/catalog"
	"github.com/hwei-lab/cogscreen/internal/report"
	"github.com/hwei-lab/cogscreen/internal/router"
	"github.com/hwei-lab/cogscreen/internal/screen"
	"github.com/hwei-lab/cogscreen/internal/ui/components"
	"github.com/hwei-lab/cogscreen/internal/ui/layout"
	"github.com/hwei-lab/cogscreen/internal/ui/theme"
)

// ReportScreen shows the aggregated result of a finished assessment.
type ReportScreen struct {
	summary  *report.Summary
	exporter report.Exporter

	saved   bool
	saveErr error
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)
var _ screen.EscInterceptor = (*ReportScreen)(nil)

// savedMsg reports the outcome of persisting the summary.
type savedMsg struct {
	Err error
}

// New creates the report screen for a summary.
func New(summary *report.Summary, exporter report.Exporter) *ReportScreen {
	return &ReportScreen{summary: summary, exporter: exporter}
}

// Init persists the summary in the background. A failed save is shown
// but never blocks viewing the report.
func (s *ReportScreen) Init() tea.Cmd {
	if s.exporter == nil {
		return nil
	}
	exporter := s.exporter
	summary := s.summary
	return func() tea.Msg {
		return savedMsg{Err: exporter.Save(context.Background(), summary)}
	}
}

func (s *ReportScreen) Title() string {
	return s.summary.Instrument.DisplayName() + " 报告"
}

// InterceptEsc routes Esc to the home screen instead of back into the
// finished exam.
func (s *ReportScreen) InterceptEsc() bool {
	return true
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "返回主页"},
		{Key: "Ctrl+C", Description: "退出"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.saved = msg.Err == nil
		s.saveErr = msg.Err
		return s, nil
	case tea.KeyMsg:
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(sum.Instrument.DisplayName() + " 评估报告"))
	b.WriteString("\n\n")

	// Patient line.
	patient := fmt.Sprintf("%s  %d岁", sum.Patient.Name, sum.Patient.Age)
	if sum.Patient.Gender != "" {
		patient += "  " + sum.Patient.Gender
	}
	if sum.Instrument == catalog.MoCA {
		patient += fmt.Sprintf("  受教育 %d 年", sum.Patient.EducationYears)
	}
	b.WriteString(theme.Subtitle.Width(width).Render(patient))
	b.WriteString("\n\n")

	// Score and interpretation.
	scoreStyle := theme.Correct
	if sum.Interpretation != report.InterpNormal && sum.Interpretation != report.InterpADLNormal {
		scoreStyle = theme.Incorrect
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(scoreStyle.Render(fmt.Sprintf("%d / %d　%s", sum.FinalScore, sum.MaxScore, sum.Interpretation))))
	b.WriteString("\n")

	var notes []string
	if sum.EducationAdjusted {
		notes = append(notes, fmt.Sprintf("已应用教育程度校正 +1 分（原始分 %d）", sum.RawScore))
	}
	if sum.Instrument == catalog.ADL {
		notes = append(notes, fmt.Sprintf("功能下降项目（≥3分）：%d / %d", sum.ImpairedItems, len(catalog.Questions(catalog.ADL))))
	}
	if sum.Duration > 0 {
		notes = append(notes, fmt.Sprintf("用时 %d 分 %02d 秒", int(sum.Duration.Minutes()), int(sum.Duration.Seconds())%60))
	}
	for _, n := range notes {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(n))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Per-category breakdown.
	barWidth := min(width-30, 40)
	var rows strings.Builder
	for _, c := range sum.Categories {
		pct := 0.0
		if c.Max > 0 {
			pct = float64(c.Earned) / float64(c.Max)
		}
		bar := components.NewProgressBar("", pct, false, barWidth)
		rows.WriteString(fmt.Sprintf("%s %s %2d/%-2d\n",
			lipgloss.NewStyle().Foreground(theme.Text).Width(14).Render(c.Category),
			bar.View(),
			c.Earned, c.Max,
		))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))
	b.WriteString("\n")

	// Save status.
	status := ""
	switch {
	case s.saveErr != nil:
		status = lipgloss.NewStyle().Foreground(theme.Error).Render("报告保存失败：" + s.saveErr.Error())
	case s.saved:
		status = lipgloss.NewStyle().Foreground(theme.Success).Render("报告已保存到历史记录")
	case s.exporter != nil:
		status = lipgloss.NewStyle().Foreground(theme.TextDim).Render("正在保存报告...")
	}
	if status != "" {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(status))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
