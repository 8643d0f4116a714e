package clubdetail

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/clubcompass/clubcompass/internal/ui/theme"
)

func (s *ClubDetailScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Could not load club: %s", s.errMsg))
	}
	if s.club == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading club...")
	}

	club := s.club
	var b strings.Builder

	// Name with bookmark marker and recruitment status on one line.
	name := club.Name
	if s.bookmarked {
		name = "★ " + name
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(name))
	b.WriteString("\n")

	statusColor, ok := theme.StatusColors[club.RecruitmentStatus]
	if !ok {
		statusColor = theme.TextDim
	}
	meta := fmt.Sprintf("%s  ·  %d members  ·  Recruitment: %s",
		club.Domain, club.MemberCount, club.RecruitmentStatus)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(statusColor).
		Render(meta))
	b.WriteString("\n\n")

	desc := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(club.Description)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, desc))
	b.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		line := lipgloss.NewStyle().Foreground(theme.Secondary).Render(label+": ") +
			lipgloss.NewStyle().Foreground(theme.Text).Render(value)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(min(width-8, 70)).Render(line)))
		b.WriteString("\n")
	}

	field("Skills", strings.Join(club.Skills, ", "))
	field("Time commitment", club.TimeCommitment)
	field("Tags", strings.Join(club.Tags, ", "))
	field("Contact", club.Contact)

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
