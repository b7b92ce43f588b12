package installer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/modelbench/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m tea.Model, text string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func pressEnter(m tea.Model) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestWizard_FullFlow(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "runtime", ".env")

	var m tea.Model = initialModel(envPath)
	m = typeText(m, "ghp_secret")
	m, _ = pressEnter(m)
	assert.Equal(t, 1, m.(model).currentStep)

	m = typeText(m, "http://localhost:8080")
	m, cmd := pressEnter(m)
	require.Equal(t, 2, m.(model).currentStep)
	require.NotNil(t, cmd)

	// save step kicks itself off
	m, _ = m.Update(cmd())
	final := m.(model)
	assert.Equal(t, 3, final.currentStep)
	assert.Equal(t, "Configuration complete!\n", final.View())

	data, err := os.ReadFile(envPath)
	require.NoError(t, err)
	assert.Equal(t, "GITHUB_TOKEN=ghp_secret\nGITHUB_MODELS_API_BASE=http://localhost:8080\n", string(data))

	info, err := os.Stat(envPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestTokenStep_RequiresValue(t *testing.T) {
	state := NewInstallState()
	step := NewTokenStep()

	next, _ := step.Update(tea.KeyMsg{Type: tea.KeyEnter}, state, 80, 24)
	require.NotNil(t, next, "empty token must not advance")
	assert.Contains(t, next.View(state), "A token is required.")
	assert.Empty(t, state.Config.Token)
}

func TestAPIBaseStep_KeepsDefault(t *testing.T) {
	state := NewInstallState()
	step := NewAPIBaseStep()

	next, _ := step.Update(tea.KeyMsg{Type: tea.KeyEnter}, state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, config.DefaultAPIBase, state.Config.APIBase)
}

func TestSaveEnv_RefusesOverwrite(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("GITHUB_TOKEN=old\n"), 0600))

	state := NewInstallState()
	state.Config.Token = "new"

	err := SaveEnv(envPath, state)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(envPath)
	require.NoError(t, err)
	assert.Equal(t, "GITHUB_TOKEN=old\n", string(data))
}

func TestWizard_CtrlC(t *testing.T) {
	var m tea.Model = initialModel(filepath.Join(t.TempDir(), ".env"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, m.(model).quitting)
	assert.Equal(t, "Setup cancelled.\n", m.View())
}
