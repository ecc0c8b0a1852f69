package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmontano/bundy/internal/api"
	"github.com/kmontano/bundy/internal/config"
	"github.com/kmontano/bundy/internal/flows"
	"github.com/kmontano/bundy/internal/session"
)

// Deps is everything the screens need, owned by the application shell and
// passed down by reference. The session manager is the only mutable piece.
type Deps struct {
	Cfg    config.Config
	Client api.Caller
	Mgr    *session.Manager
}

// loginDoneMsg reports a successful login back to the shell.
type loginDoneMsg struct {
	res flows.LoginResult
}

// sessionEndedMsg reports that the session is gone (logout, idle expiry or
// a failed guard) and carries the notice to show on the login screen.
type sessionEndedMsg struct {
	notice string
}

// AppModel is the shell: it owns routing and delegates everything else to
// the screen for the current view. Handlers below it return state deltas;
// nothing outside View() renders.
type AppModel struct {
	deps Deps

	view     View
	login    LoginModel
	employee EmployeeModel
	admin    AdminModel

	width  int
	height int
}

// NewAppModel builds the shell. The initial view always comes out of Route
// on the current (anonymous) session.
func NewAppModel(deps Deps) AppModel {
	return AppModel{
		deps:  deps,
		view:  Route(deps.Mgr.Current()),
		login: NewLoginModel(deps, ""),
	}
}

// Init initializes the active screen.
func (m AppModel) Init() tea.Cmd {
	return m.active().Init()
}

// Update routes messages. Shell-level transitions (login established,
// session ended) re-run the router; everything else goes to the active
// screen unchanged.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.login = m.login.resize(msg.Width, msg.Height)
		m.employee = m.employee.resize(msg.Width, msg.Height)
		m.admin = m.admin.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// Best-effort logout so the backend can reap the session. Runs
			// as a command: a slow endpoint must not block the quit keypress.
			mgr, client := m.deps.Mgr, m.deps.Client
			return m, func() tea.Msg {
				mgr.Logout(client)
				return tea.QuitMsg{}
			}
		}

	case loginDoneMsg:
		m.deps.Mgr.Establish(msg.res.Token, msg.res.EmployeeID, msg.res.EmployeeName, msg.res.Role)
		return m.reroute()

	case sessionEndedMsg:
		m.login = NewLoginModel(m.deps, msg.notice).resize(m.width, m.height)
		return m.reroute()
	}

	return m.delegate(msg)
}

// View renders the active screen.
func (m AppModel) View() string {
	switch m.view {
	case ViewEmployee:
		return m.employee.View()
	case ViewAdmin:
		return m.admin.View()
	default:
		return m.login.View()
	}
}

// reroute re-evaluates the router against the session and initializes the
// screen when the view changed.
func (m AppModel) reroute() (tea.Model, tea.Cmd) {
	next := Route(m.deps.Mgr.Current())
	if next == m.view {
		return m, nil
	}
	m.view = next

	switch next {
	case ViewEmployee:
		m.employee = NewEmployeeModel(m.deps).resize(m.width, m.height)
		return m, m.employee.Init()
	case ViewAdmin:
		m.admin = NewAdminModel(m.deps).resize(m.width, m.height)
		return m, m.admin.Init()
	default:
		return m, m.login.Init()
	}
}

// delegate forwards a message to the active screen.
func (m AppModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ViewEmployee:
		m.employee, cmd = m.employee.update(msg)
	case ViewAdmin:
		m.admin, cmd = m.admin.update(msg)
	default:
		m.login, cmd = m.login.update(msg)
	}
	return m, cmd
}

// active returns the screen for the current view as a plain initializer.
func (m AppModel) active() interface{ Init() tea.Cmd } {
	switch m.view {
	case ViewEmployee:
		return m.employee
	case ViewAdmin:
		return m.admin
	default:
		return m.login
	}
}
