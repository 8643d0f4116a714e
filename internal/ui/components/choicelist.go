package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clubcompass/clubcompass/internal/ui/theme"
)

// optionLabels prefix the choices; quiz questions have at most a few
// options each.
var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// ChoiceList is a single-select option list for one quiz question. The
// cursor and the committed selection are separate so navigating away
// from a chosen option keeps it marked until another is chosen.
type ChoiceList struct {
	Options []string
	Cursor  int
	Chosen  int // index of the selected option, -1 if none
}

// NewChoiceList creates a choice list with nothing chosen.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{
		Options: options,
		Chosen:  -1,
	}
}

// SetChosen marks the option equal to choice as selected, moving the
// cursor there. Used to rehydrate a previously given answer when the
// user navigates back to a question.
func (c *ChoiceList) SetChosen(choice string) {
	for i, opt := range c.Options {
		if opt == choice {
			c.Cursor = i
			c.Chosen = i
			return
		}
	}
	c.Chosen = -1
}

// Value returns the selected option text, or "" if none is chosen.
func (c ChoiceList) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and selection. Number keys jump-select.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space":
		c.Chosen = c.Cursor
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(c.Options) {
			c.Cursor = int(key[0] - '1')
			c.Chosen = c.Cursor
		}
	}

	return c, nil
}

// View renders the option list.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		marker := "( )"
		if i == c.Chosen {
			marker = "(●)"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
