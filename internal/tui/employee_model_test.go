package tui

import (
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmontano/bundy/internal/api"
	"github.com/kmontano/bundy/internal/config"
	"github.com/kmontano/bundy/internal/session"
)

// scriptedCaller scripts results per action and records everything dispatched.
type scriptedCaller struct {
	results map[string]api.Result
	actions []string
}

func (f *scriptedCaller) Call(action string, payload map[string]any) api.Result {
	f.actions = append(f.actions, action)
	if r, ok := f.results[action]; ok {
		return r
	}
	return api.Result{Success: true}
}

func (f *scriptedCaller) script(t *testing.T, action, raw string) {
	t.Helper()
	if f.results == nil {
		f.results = map[string]api.Result{}
	}
	var r api.Result
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	f.results[action] = r
}

// runCmd executes a command the way the runtime would, flattening batches
// into the messages they produce.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func employeeDeps(c api.Caller) Deps {
	mgr := session.NewManager(nil)
	mgr.Establish("tok", "EMP001", "Jane", session.RoleEmployee)
	return Deps{
		Cfg:    config.Config{Endpoint: "https://example.test/exec"},
		Client: c,
		Mgr:    mgr,
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// Switching to the inventory tab needs both the attendance status and the
// catalog, but only ever one call at a time: the catalog fetch is issued
// from the status handler, and the model stays busy across the whole chain.
func TestInventoryTabLoadsOneCallAtATime(t *testing.T) {
	c := &scriptedCaller{}
	c.script(t, api.ActionGetTodayAttendance, `{"success":true,"clockedIn":true,"clockInTime":"08:01"}`)
	c.script(t, api.ActionGetInventory, `{"success":true,"items":[{"product":"Coffee","sellingPrice":150.00,"stock":12}]}`)

	m := NewEmployeeModel(employeeDeps(c))

	m, cmd := m.update(keyRunes("2"))
	require.True(t, m.busy)

	msgs := runCmd(cmd)
	assert.Equal(t, []string{api.ActionGetTodayAttendance}, c.actions,
		"tab switch must dispatch the status fetch alone")

	// Still busy until the chain finishes: new work is rejected.
	_, cmd2 := m.update(keyRunes("r"))
	assert.Nil(t, cmd2)

	var followUp tea.Cmd
	for _, msg := range msgs {
		if sm, ok := msg.(statusLoadedMsg); ok {
			m, followUp = m.update(sm)
		}
	}
	require.True(t, m.busy, "catalog fetch keeps the model busy")

	msgs = runCmd(followUp)
	assert.Equal(t, []string{api.ActionGetTodayAttendance, api.ActionGetInventory}, c.actions)

	for _, msg := range msgs {
		if cm, ok := msg.(catalogLoadedMsg); ok {
			m, _ = m.update(cm)
		}
	}
	assert.False(t, m.busy)
	require.Len(t, m.catalog, 1)
	assert.Equal(t, "Coffee", m.catalog[0].Product)
	assert.True(t, m.status.ClockedIn)
}

// A recorded transaction refetches the catalog; the model must stay busy
// for that follow-up fetch too, or a second use could race it.
func TestUseReceiptKeepsModelBusyDuringRefetch(t *testing.T) {
	c := &scriptedCaller{}
	m := NewEmployeeModel(employeeDeps(c))
	m.tab = empTabInventory

	var cmd tea.Cmd
	m, cmd = m.update(useDoneMsg{})
	assert.True(t, m.busy)

	runCmd(cmd)
	assert.Equal(t, []string{api.ActionGetInventory}, c.actions)
}
