package installer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// APIBaseStep lets the user override the inference endpoint. Empty input keeps the default.
type APIBaseStep struct {
	input textinput.Model
}

func NewAPIBaseStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.Width = 50
	return &APIBaseStep{input: ti}
}

func (s *APIBaseStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *APIBaseStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.input.Placeholder == "" {
		s.input.Placeholder = state.Config.APIBase
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if val := strings.TrimSpace(s.input.Value()); val != "" {
			state.Config.APIBase = val
		}
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *APIBaseStep) View(state *InstallState) string {
	return "Models API base URL (leave empty for " + state.Config.APIBase + "):\n\n" + s.input.View() + "\n\n(press enter to confirm)\n"
}
