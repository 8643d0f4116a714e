package login

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/clubcompass/clubcompass/internal/ui/theme"
)

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	title := "Sign in to Club Compass"
	if s.mode == modeSignUp {
		title = "Create your account"
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	if s.mode == modeSignUp {
		b.WriteString(s.name.View())
		b.WriteString("\n\n")
	}
	b.WriteString(s.email.View())
	b.WriteString("\n\n")
	b.WriteString(s.password.View())
	b.WriteString("\n\n")

	if s.mode == modeSignUp {
		b.WriteString(s.renderRoleSelector())
		b.WriteString("\n\n")
	}

	b.WriteString(s.submitBtn.View())
	b.WriteString("\n\n")

	switch {
	case s.busy:
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Signing in..."))
	case s.errMsg != "":
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	form := lipgloss.NewStyle().Width(min(width-8, 52)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, form)
}

func (s *LoginScreen) renderRoleSelector() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Role: ")

	parts := make([]string, 0, len(roles))
	for i, role := range roles {
		marker := "( )"
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.roleIdx {
			marker = "(●)"
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		if s.focus == 3 && i == s.roleIdx {
			style = style.Foreground(theme.Primary)
		}
		parts = append(parts, style.Render(marker+" "+role))
	}
	return label + strings.Join(parts, "   ")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
