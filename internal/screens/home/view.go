package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/clubcompass/clubcompass/internal/ui/theme"
)

const compassArt = `      ╭─────────╮
    ╭─┤    N    ├─╮
   ╱  ╰────┬────╯  ╲
  │ W ──── ◈ ──── E │
   ╲  ╭────┴────╮  ╱
    ╰─┤    S    ├─╯
      ╰─────────╯`

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	art := lipgloss.NewStyle().Foreground(theme.Secondary).Render(compassArt)
	if height >= 24 {
		sections = append(sections, art)
	}

	greeting := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Welcome back, %s", h.user.Name))
	sections = append(sections, greeting)

	role := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(h.user.Role)
	sections = append(sections, role)

	if summary := h.renderSummary(); summary != "" {
		sections = append(sections, "")
		sections = append(sections, summary)
	}

	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderSummary builds the one-line dashboard summary, "" when there is
// nothing to show yet.
func (h *HomeScreen) renderSummary() string {
	var parts []string
	if h.personality != "" {
		parts = append(parts, fmt.Sprintf("You are: %s", h.personality))
	}
	if h.bookmarks > 0 {
		noun := "clubs"
		if h.bookmarks == 1 {
			noun = "club"
		}
		parts = append(parts, fmt.Sprintf("%d saved %s", h.bookmarks, noun))
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(strings.Join(parts, "  ·  "))
}
