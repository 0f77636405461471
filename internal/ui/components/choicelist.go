package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hwei-lab/cogscreen/internal/ui/theme"
)

// ChoiceList is a single-select option list. Unlike a quiz widget it has
// no notion of a correct option; the selection itself is the answer.
type ChoiceList struct {
	Options  []string
	Selected int
	Chosen   int // -1 until confirmed
}

// NewChoiceList creates a choice list over the given options.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{
		Options: options,
		Chosen:  -1,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles navigation and confirmation. Number keys 1-9 jump to
// and confirm an option directly.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Chosen = c.Selected
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(c.Options) {
				c.Selected = i
				c.Chosen = i
			}
		}
	}

	return c, nil
}

// Confirmed reports whether an option has been chosen.
func (c ChoiceList) Confirmed() bool {
	return c.Chosen >= 0
}

// Value returns the chosen option text, empty until confirmed.
func (c ChoiceList) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}

// Reset clears the confirmation and selection.
func (c *ChoiceList) Reset() {
	c.Selected = 0
	c.Chosen = -1
}

// View renders the option list.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s", prefix, opt)

		if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
