package clubs

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/ui/theme"
)

func (s *ClubsScreen) View(width, height int) string {
	var b strings.Builder

	// Domain filter tabs.
	b.WriteString(s.renderDomainTabs(width))
	b.WriteString("\n")

	if s.searching || s.search.Value() != "" {
		b.WriteString("  " + s.search.View())
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n")

	switch {
	case s.errMsg != "":
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n  Could not load clubs: %s\n\n  Press R to retry.", s.errMsg)))
	case s.loading:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading clubs..."))
	case len(s.filtered) == 0:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No clubs match."))
	default:
		b.WriteString(s.renderList(width, height))
	}

	return b.String()
}

func (s *ClubsScreen) renderDomainTabs(width int) string {
	tabs := make([]string, 0, len(api.Domains)+1)
	labels := append([]string{"All"}, api.Domains...)
	for i, label := range labels {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.domainIdx {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
		}
		tabs = append(tabs, style.Render(label))
	}
	return "  " + strings.Join(tabs, "   ")
}

func (s *ClubsScreen) renderList(width, height int) string {
	headerLines := 3
	if s.searching || s.search.Value() != "" {
		headerLines++
	}
	visible := height - headerLines
	if visible < 1 {
		visible = 1
	}
	s.adjustScroll(visible)

	var b strings.Builder
	for i := s.scrollOffset; i < len(s.filtered) && i < s.scrollOffset+visible; i++ {
		b.WriteString(s.renderRow(i, width))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *ClubsScreen) renderRow(i, width int) string {
	club := s.filtered[i]
	selected := i == s.cursor

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	statusColor, ok := theme.StatusColors[club.RecruitmentStatus]
	if !ok {
		statusColor = theme.TextDim
	}

	nameWidth := width - 40
	if nameWidth < 16 {
		nameWidth = 16
	}
	name := club.Name
	if len(name) > nameWidth {
		name = name[:nameWidth-1] + "…"
	}

	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	return fmt.Sprintf("  %s%s  %s  %s",
		cursor,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-10s", club.Domain)),
		lipgloss.NewStyle().Foreground(statusColor).Render(club.RecruitmentStatus),
	)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
