package installer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TokenStep collects the GitHub token used against the models service.
type TokenStep struct {
	input textinput.Model
	empty bool
}

func NewTokenStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.Placeholder = "ghp_..."
	ti.CharLimit = 255
	ti.Width = 50
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return &TokenStep{input: ti}
}

func (s *TokenStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TokenStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := strings.TrimSpace(s.input.Value())
		if val == "" {
			s.empty = true
			return s, nil
		}
		state.Config.Token = val
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TokenStep) View(state *InstallState) string {
	hint := ""
	if s.empty {
		hint = errorStyle.Render("A token is required.") + "\n\n"
	}
	return "Enter your GitHub token (needs models:read):\n\n" + s.input.View() + "\n\n" + hint + "(press enter to confirm)\n"
}
