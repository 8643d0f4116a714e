package qna

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/clubcompass/clubcompass/internal/ui/theme"
)

func (s *QnAScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Could not load the board: %s\n\n  Press R to retry.", s.errMsg))
	case s.loading:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading...")
	}

	switch s.mode {
	case modeThread:
		return s.renderThread(width)
	case modeCompose:
		return s.renderCompose(width)
	case modeReply:
		return s.renderReply(width)
	}
	return s.renderList(width)
}

func (s *QnAScreen) renderList(width int) string {
	if len(s.threads) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  No questions yet. Press N to ask the first one.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, t := range s.threads {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			cursor = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		title := t.Title
		titleWidth := width - 36
		if titleWidth < 20 {
			titleWidth = 20
		}
		if len(title) > titleWidth {
			title = title[:titleWidth-1] + "…"
		}

		own := " "
		if t.UserID == s.userID {
			own = "•"
		}

		b.WriteString(fmt.Sprintf("  %s%s %s  %s  %s\n",
			cursor,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(own),
			style.Render(fmt.Sprintf("%-*s", titleWidth, title)),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-14s", t.Author())),
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("%d replies", t.ReplyCount)),
		))
	}

	if s.flash != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  " + s.flash))
	}
	return b.String()
}

func (s *QnAScreen) renderThread(width int) string {
	t := s.active
	if t == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(t.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("asked by %s", t.Author())))
	b.WriteString("\n\n")

	if t.Description != "" {
		desc := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(t.Description)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, desc))
		b.WriteString("\n\n")
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d replies", len(t.Replies)))))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, r := range t.Replies {
		author := r.UserName
		if r.UserVerified {
			author += " ✓"
		}
		head := lipgloss.NewStyle().Foreground(theme.Secondary).Render(author) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+r.UserRole)
		body := lipgloss.NewStyle().
			Width(min(width-12, 64)).
			Foreground(theme.Text).
			Render(r.Content)

		block := head + "\n" + body
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(min(width-8, 68)).Render(block)))
		b.WriteString("\n\n")
	}

	return b.String()
}

func (s *QnAScreen) renderCompose(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Ask a question"))
	b.WriteString("\n\n")

	form := s.titleInput.View() + "\n\n" + s.bodyInput.View() + "\n\n"

	anon := "( ) Post anonymously"
	if s.anonymous {
		anon = "(●) Post anonymously"
	}
	form += lipgloss.NewStyle().Foreground(theme.TextDim).Render(anon)

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(min(width-8, 60)).Render(form)))

	if s.flash != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.flash))
	}
	return b.String()
}

func (s *QnAScreen) renderReply(width int) string {
	var b strings.Builder
	b.WriteString(s.renderThread(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(min(width-8, 60)).Render(s.replyInput.View())))

	if s.flash != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.flash))
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
