package compare

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/ui/theme"
)

func (s *CompareScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Could not load clubs: %s\n\n  Press R to retry.", s.errMsg))
	case s.loading:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading...")
	case s.comparing:
		return s.renderComparison(width)
	}
	return s.renderPicker(width, height)
}

func (s *CompareScreen) renderPicker(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Pick %d-%d clubs, then press Enter  (%d selected)",
			minSelected, maxSelected, len(s.selected))))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n")

	for i, club := range s.clubs {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			cursor = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		marker := "( )"
		if s.selected[club.ID] {
			marker = "(●)"
			if i != s.cursor {
				style = lipgloss.NewStyle().Foreground(theme.Secondary)
			}
		}

		b.WriteString(fmt.Sprintf("  %s%s %s  %s\n",
			cursor,
			marker,
			style.Render(fmt.Sprintf("%-30s", club.Name)),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(club.Domain),
		))
	}

	if s.flash != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("  " + s.flash))
	}

	return b.String()
}

// renderComparison lays the chosen clubs out in columns.
func (s *CompareScreen) renderComparison(width int) string {
	n := len(s.compared)
	if n == 0 {
		return ""
	}

	colWidth := (width - 8) / n
	if colWidth < 20 {
		colWidth = 20
	}

	rows := []struct {
		label string
		value func(api.Club) string
	}{
		{"Domain", func(c api.Club) string { return c.Domain }},
		{"Members", func(c api.Club) string { return fmt.Sprintf("%d", c.MemberCount) }},
		{"Recruitment", func(c api.Club) string { return c.RecruitmentStatus }},
		{"Time", func(c api.Club) string { return c.TimeCommitment }},
		{"Skills", func(c api.Club) string { return strings.Join(c.Skills, ", ") }},
		{"Contact", func(c api.Club) string { return c.Contact }},
	}

	var b strings.Builder

	// Header row with club names.
	cells := make([]string, 0, n)
	for _, club := range s.compared {
		cells = append(cells, lipgloss.NewStyle().
			Width(colWidth).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render(club.Name))
	}
	b.WriteString("  " + lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	b.WriteString("\n")
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", colWidth*n)))
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("  " + row.label))
		b.WriteString("\n")

		cells = cells[:0]
		for _, club := range s.compared {
			cells = append(cells, lipgloss.NewStyle().
				Width(colWidth).
				Align(lipgloss.Center).
				Foreground(theme.Text).
				Render(row.value(club)))
		}
		b.WriteString("  " + lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n\n")
	}

	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
