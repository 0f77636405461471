// Package history lists past assessment results.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hwei-lab/cogscreen/internal/screen"
	"github.com/hwei-lab/cogscreen/internal/store"
	"github.com/hwei-lab/cogscreen/internal/ui/layout"
	"github.com/hwei-lab/cogscreen/internal/ui/theme"
)

const pageSize = 50

// HistoryScreen shows the most recent assessment records.
type HistoryScreen struct {
	records store.RecordRepo

	rows    []*store.AssessmentRecord
	loaded  bool
	loadErr error
	offset  int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// recordsMsg carries the loaded records.
type recordsMsg struct {
	Rows []*store.AssessmentRecord
	Err  error
}

// New creates the history screen.
func New(records store.RecordRepo) *HistoryScreen {
	return &HistoryScreen{records: records}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.records
	return func() tea.Msg {
		rows, err := repo.ListAssessments(context.Background(), pageSize)
		return recordsMsg{Rows: rows, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "历史记录"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "滚动"},
		{Key: "Esc", Description: "返回"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsMsg:
		s.loaded = true
		s.rows = msg.Rows
		s.loadErr = msg.Err
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.rows)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("历史记录"))
	b.WriteString("\n\n")

	switch {
	case s.loadErr != nil:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("加载失败：" + s.loadErr.Error()))
		return b.String()
	case !s.loaded:
		b.WriteString(theme.Subtitle.Width(width).Render("加载中..."))
		return b.String()
	case len(s.rows) == 0:
		b.WriteString(theme.Subtitle.Width(width).Render("暂无评估记录"))
		return b.String()
	}

	header := fmt.Sprintf("%-17s %-6s %-10s %-8s %s",
		"日期", "量表", "受检者", "得分", "结果")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", lipgloss.Width(header)))))
	b.WriteString("\n")

	visible := height - 8
	if visible < 1 {
		visible = 1
	}
	end := s.offset + visible
	if end > len(s.rows) {
		end = len(s.rows)
	}

	var rows strings.Builder
	for _, r := range s.rows[s.offset:end] {
		line := fmt.Sprintf("%-17s %-6s %-10s %2d/%-5d %s",
			r.CompletedAt.Local().Format("2006-01-02 15:04"),
			r.Instrument,
			truncateName(r.PatientName, 10),
			r.FinalScore, r.MaxScore,
			r.Interpretation,
		)
		rows.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		rows.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))

	if len(s.rows) > visible {
		b.WriteString(theme.Subtitle.Width(width).Render(
			fmt.Sprintf("%d-%d / %d", s.offset+1, end, len(s.rows))))
	}

	return b.String()
}

func truncateName(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
