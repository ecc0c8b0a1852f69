package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmontano/bundy/internal/api"
)

// Quitting notifies the backend from a command, never from Update itself:
// an unreachable endpoint must not stall the quit keypress.
func TestQuitLogsOutAsCommand(t *testing.T) {
	c := &scriptedCaller{}
	deps := employeeDeps(c)
	app := NewAppModel(deps)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Empty(t, c.actions, "Update must not call the backend synchronously")

	msg := cmd()
	assert.IsType(t, tea.QuitMsg{}, msg)
	assert.Equal(t, []string{api.ActionLogout}, c.actions)
	assert.False(t, deps.Mgr.Authenticated())
}
