// Package welcome holds the entry screen: it shows the banner and asks
// who is practicing. Submitting a learner id loads (or creates) that
// learner's profile and hands off to the practice screen.
package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"geotutor/internal/router"
	"geotutor/internal/screen"
	"geotutor/internal/session"
	"geotutor/internal/ui/components"
	"geotutor/internal/ui/layout"
	"geotutor/internal/ui/theme"
)

// WelcomeScreen asks for a learner id before practice starts.
type WelcomeScreen struct {
	orch            *session.Orchestrator
	practiceFactory func() screen.Screen
	input           components.TextInput
	errMsg          string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced
// by practiceFactory once a learner is identified.
func New(orch *session.Orchestrator, practiceFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		orch:            orch,
		practiceFactory: practiceFactory,
		input:           components.NewTextInput("Your name...", false, 24),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start practicing"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return w, w.submit()
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

// submit identifies the learner and replaces this screen with practice.
func (w *WelcomeScreen) submit() tea.Cmd {
	id := strings.TrimSpace(w.input.Value())
	if id == "" {
		w.errMsg = "Please enter a name first."
		return nil
	}

	if _, err := w.orch.Identify(id); err != nil {
		w.errMsg = err.Error()
		return nil
	}

	practice := w.practiceFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: practice}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Adaptive practice for triangle, square, and rectangle areas"))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Who's practicing today?"))
	sections = append(sections, "")
	sections = append(sections, w.input.View())

	if w.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
