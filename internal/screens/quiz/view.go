package quiz

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	quizcore "github.com/clubcompass/clubcompass/internal/quiz"
	"github.com/clubcompass/clubcompass/internal/ui/components"
	"github.com/clubcompass/clubcompass/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.loadErr != "" {
		return renderLoadError(width, s.loadErr)
	}

	switch s.session.Phase() {
	case quizcore.PhaseLoading:
		return renderCentered(width, theme.TextDim, "\n\n\n  Loading questions...")
	case quizcore.PhaseSubmitting:
		return renderCentered(width, theme.TextDim, "\n\n\n  Finding your clubs...")
	case quizcore.PhaseFailed:
		return s.renderFailed(width)
	case quizcore.PhaseInProgress:
		return s.renderQuestion(width)
	}
	return ""
}

// renderQuestion renders the current question with its option list and
// a progress bar over the whole catalog.
func (s *QuizScreen) renderQuestion(width int) string {
	q, ok := s.session.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	counter := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", s.session.Position()+1, s.session.Len()))
	b.WriteString(counter)
	b.WriteString("\n")

	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	bar := components.NewProgressBar("", s.session.Progress(), true, barWidth)
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Prompt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))

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

// renderFailed renders the submission-failure state. The answers are
// still held, so the user can retry without redoing the quiz.
func (s *QuizScreen) renderFailed(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Submission failed"))
	b.WriteString("\n\n")

	if err := s.session.Err(); err != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Your answers are saved. Press R to retry."))

	return b.String()
}

func renderLoadError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Could not load the quiz: %s\n\n  Press R to retry, any other key to go back.", msg))
}

func renderCentered(width int, fg color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render(text)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
