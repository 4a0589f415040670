package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"geotutor/internal/ui/components"
	"geotutor/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	if p.example != nil {
		return p.renderExample(width)
	}
	if p.feedback != nil {
		return p.renderFeedback(width)
	}
	return p.renderQuestion(width)
}

// renderQuestion renders the active problem and the answer input.
func (p *PracticeScreen) renderQuestion(width int) string {
	problem := p.orch.Current()
	if problem == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing a problem...")
	}

	var b strings.Builder

	shapeLine := lipgloss.NewStyle().
		Foreground(theme.ShapeColor(problem.Shape)).
		Bold(true).
		Render(fmt.Sprintf("  %s", problem.Shape)) +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  (%s)", problem.Difficulty))
	b.WriteString(shapeLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ShapePreview(problem.Shape)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(problem.Prompt()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Area = " + p.input.View()))

	if p.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(p.errMsg))
	}

	return b.String()
}

// renderFeedback renders the graded-answer overlay.
func (p *PracticeScreen) renderFeedback(width int) string {
	res := p.feedback

	var b strings.Builder
	b.WriteString("\n\n")

	if res.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if p.answered != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("Correct area: %.2f", p.answered.CorrectArea)))
		}
	}

	b.WriteString("\n\n")

	bar := components.NewProgressBar("Mastery", res.Mastery, true, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(fmt.Sprintf("Next problem: %s", res.Difficulty)))

	if p.note != "" {
		b.WriteString("\n\n")
		noteStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, noteStyle.Render(p.note)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key for the next problem..."))

	return b.String()
}

// renderExample renders the worked-example overlay.
func (p *PracticeScreen) renderExample(width int) string {
	ex := p.example

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.ShapeColor(ex.Problem.Shape)).
		Bold(true).
		Render(fmt.Sprintf("Worked example: %s", ex.Problem.Shape)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ShapePreview(ex.Problem.Shape)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(ex.Problem.Prompt()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(ex.Explanation))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Area = %.2f", ex.Problem.CorrectArea)))

	if ex.Note != "" {
		b.WriteString("\n\n")
		noteStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, noteStyle.Render(ex.Note)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to go back..."))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
