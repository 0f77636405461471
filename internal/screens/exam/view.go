package exam

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hwei-lab/cogscreen/internal/catalog"
	"github.com/hwei-lab/cogscreen/internal/session"
	"github.com/hwei-lab/cogscreen/internal/ui/components"
	"github.com/hwei-lab/cogscreen/internal/ui/theme"
)

func (s *ExamScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.quitConfirm:
		return renderQuitConfirm(width)
	case s.outcome != nil:
		return s.renderFeedback(width)
	default:
		return s.renderQuestion(width)
	}
}

func (s *ExamScreen) renderQuestion(width int) string {
	answered, total := s.machine.Progress()

	var b strings.Builder

	// Progress line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + s.question.Category)

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(progressLabel(answered, total))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(answered)/float64(total), false, width-8)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Question text.
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(s.question.Text))
	b.WriteString("\n")

	if s.question.Subtext != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(s.question.Subtext))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Input area.
	if s.grading {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("评分中，请稍候..."))
		return b.String()
	}

	if s.question.Kind == catalog.InputChoice {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("数字键直接选择，或 ↑↓ + Enter"))
	} else {
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("回答：" + s.input.View())
		b.WriteString(answerLine)
	}

	return b.String()
}

func (s *ExamScreen) renderFeedback(width int) string {
	out := s.outcome

	var b strings.Builder
	b.WriteString("\n\n")

	scoreStyle := theme.Correct
	if out.Score == 0 {
		scoreStyle = theme.Incorrect
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(scoreStyle.Render(fmt.Sprintf("得分 %d / %d", out.Score, out.Question.MaxScore))))
	b.WriteString("\n\n")

	if out.Feedback != "" {
		fb := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(out.Feedback)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fb))
		b.WriteString("\n\n")
	}

	if out.Source == session.SourceFailed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("评分服务不可用，已按0分记录并继续"))
		b.WriteString("\n\n")
	}

	next := "按任意键进入下一题..."
	if out.Done {
		next = "按任意键查看评估报告..."
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(next))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("中止本次评估？"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("未完成的评估不会生成报告。"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] 中止并返回主页"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] 继续作答"))

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  错误：%s\n\n  按任意键返回。", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
