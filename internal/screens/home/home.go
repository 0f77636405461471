// Package home is the entry screen: pick a scale to administer or
// browse past assessments.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hwei-lab/cogscreen/internal/catalog"
	"github.com/hwei-lab/cogscreen/internal/report"
	"github.com/hwei-lab/cogscreen/internal/router"
	"github.com/hwei-lab/cogscreen/internal/screen"
	"github.com/hwei-lab/cogscreen/internal/screens/history"
	"github.com/hwei-lab/cogscreen/internal/screens/intake"
	"github.com/hwei-lab/cogscreen/internal/session"
	"github.com/hwei-lab/cogscreen/internal/store"
	"github.com/hwei-lab/cogscreen/internal/ui/components"
	"github.com/hwei-lab/cogscreen/internal/ui/theme"
)

// HomeScreen is the main screen of the application.
type HomeScreen struct {
	menu     components.Menu
	llmModel string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(machine *session.Machine, records store.RecordRepo, exporter report.Exporter, llmModel string) *HomeScreen {
	startItem := func(inst catalog.Instrument) components.MenuItem {
		return components.MenuItem{
			Label: fmt.Sprintf("%s（%s）", inst.DisplayName(), inst),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: intake.New(machine, exporter, inst),
					}
				}
			},
		}
	}

	items := []components.MenuItem{
		startItem(catalog.MMSE),
		startItem(catalog.MoCA),
		startItem(catalog.ADL),
		{
			Label:    "历史记录",
			Disabled: records == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(records)}
				}
			},
		},
		{
			Label: "退出",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		llmModel: llmModel,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("认知功能筛查助手"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("MMSE · MoCA · ADL 三套量表，AI 辅助评分"))
	b.WriteString("\n\n")

	status := "AI 评分：未配置（主观题将计0分）"
	statusStyle := lipgloss.NewStyle().Foreground(theme.Error)
	if h.llmModel != "" {
		status = "AI 评分：" + h.llmModel
		statusStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(statusStyle.Render(status)))
	b.WriteString("\n\n")

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "主页"
}
