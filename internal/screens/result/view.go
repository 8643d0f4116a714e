package result

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/clubcompass/clubcompass/internal/ui/components"
	"github.com/clubcompass/clubcompass/internal/ui/theme"
)

func (s *ResultScreen) View(width, height int) string {
	if s.restoring {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Fetching your last result...")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Could not fetch your result: %s\n\n  Press any key to go back.", s.errMsg))
	}
	if s.result == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("You are: %s", s.result.PersonalityType)))
	b.WriteString("\n\n")

	desc := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(s.result.PersonalityDescription)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, desc))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recommended clubs")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	barWidth := min(width-40, 30)
	if barWidth < 10 {
		barWidth = 10
	}

	for i, rec := range s.result.Recommendations {
		prefix := "  "
		if i == s.cursor {
			prefix = "▸ "
		}

		name := fmt.Sprintf("%s%s", prefix, rec.ClubName)
		bar := components.NewProgressBar("", float64(rec.MatchPercentage)/100, true, barWidth)
		line := fmt.Sprintf("%-32s %s", name, bar.View())

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if i == s.cursor && rec.Reason != "" {
			reason := lipgloss.NewStyle().
				Width(min(width-12, 64)).
				Foreground(theme.TextDim).
				Render("    " + rec.Reason)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, reason))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
