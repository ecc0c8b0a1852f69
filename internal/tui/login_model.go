package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmontano/bundy/internal/flows"
)

const (
	loginFieldID = iota
	loginFieldPassword
)

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	res flows.LoginResult
	err error
}

// LoginModel is the login screen. When the endpoint is not configured it
// renders the setup notice instead of the form. That is a persistent
// state, not an error popup.
type LoginModel struct {
	deps   Deps
	inputs []textinput.Model
	focus  int

	spin  spinner.Model
	busy  bool
	flash flash

	width  int
	height int
}

// NewLoginModel builds the login screen. A non-empty notice (for example
// "Session expired") is shown above the form.
func NewLoginModel(deps Deps, notice string) LoginModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 36
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[loginFieldID].Placeholder = "Employee ID"
	inputs[loginFieldID].Focus()
	inputs[loginFieldID].CharLimit = 50

	inputs[loginFieldPassword].Placeholder = "12-character password"
	inputs[loginFieldPassword].EchoMode = textinput.EchoPassword
	inputs[loginFieldPassword].CharLimit = 12

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))

	m := LoginModel{deps: deps, inputs: inputs, spin: spin}
	if notice != "" {
		m.flash = warningFlash(notice)
	}
	return m
}

// Init starts the cursor blink.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) resize(width, height int) LoginModel {
	m.width = width
	m.height = height
	return m
}

func (m LoginModel) update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case loginResultMsg:
		m.busy = false
		if msg.err != nil {
			m.flash = errorFlash(msg.err.Error())
			return m, nil
		}
		m.flash = flash{}
		return m, func() tea.Msg { return loginDoneMsg{res: msg.res} }

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down", "shift+tab", "up":
			m.inputs[m.focus].Blur()
			m.focus = 1 - m.focus
			m.inputs[m.focus].Focus()
			return m, textinput.Blink

		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit validates and dispatches the login call.
func (m LoginModel) submit() (LoginModel, tea.Cmd) {
	if !m.deps.Cfg.Configured() {
		return m, nil
	}

	creds := flows.Credentials{
		EmployeeID: strings.TrimSpace(m.inputs[loginFieldID].Value()),
		Password:   m.inputs[loginFieldPassword].Value(),
	}

	login := flows.NewLogin(m.deps.Client)
	m.busy = true
	m.flash = infoFlash("Authenticating...")
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		res, err := login.Submit(creds)
		return loginResultMsg{res: res, err: err}
	})
}

// View renders the form, or the setup notice when unconfigured.
func (m LoginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🔐 Attendance & Inventory System"))
	b.WriteString("\n\n")

	if !m.deps.Cfg.Configured() {
		b.WriteString(warningStyle.Render("⚠ System Configuration Required"))
		b.WriteString("\n\n")
		b.WriteString("The backend endpoint is not set.\n\n")
		b.WriteString("  1. Deploy the backend script and copy its web app URL\n")
		b.WriteString("  2. Put it in .env or the environment:\n\n")
		b.WriteString(captionStyle.Render("     BUNDY_ENDPOINT=\"https://...\""))
		b.WriteString("\n\n  3. Restart bundy\n")
		return frameStyle.Render(b.String())
	}

	if m.flash.level != flashNone {
		b.WriteString(m.flash.render())
		b.WriteString("\n\n")
	}

	b.WriteString("Employee ID\n")
	b.WriteString(m.inputs[loginFieldID].View())
	b.WriteString("\n\nPassword\n")
	b.WriteString(m.inputs[loginFieldPassword].View())
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(m.spin.View())
		b.WriteString(" Logging in...")
	} else {
		b.WriteString(helpStyle.Render("Enter: Login | Tab: Switch field | Ctrl+C: Quit"))
	}

	return frameStyle.Render(b.String())
}
