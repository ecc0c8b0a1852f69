package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmontano/bundy/internal/flows"
	"github.com/kmontano/bundy/internal/models"
	"github.com/kmontano/bundy/internal/session"
)

type admTab int

const (
	admTabApprovals admTab = iota
	admTabEmployees
	admTabPasswords
	admTabData
	admTabMessaging
	admTabLogs
)

var admTabLabels = []string{"Approvals", "Employees", "Passwords", "Employee Data", "Messaging", "Logs"}

// messageTypes an admin can broadcast.
var adminMessageTypes = []string{"GENERAL", "ANNOUNCEMENT", "WARNING", "URGENT", "OTHER"}

// broadcastRecipient addresses every employee at once.
const broadcastRecipient = "ALL EMPLOYEES"

type admStatsMsg struct {
	stats models.DashboardStats
	err   error
}

type admApprovalsMsg struct {
	approvals []models.Approval
	err       error
}

type admEmployeesMsg struct {
	employees []models.Employee
	err       error
}

type admProcessedMsg struct {
	approved bool
	err      error
}

type admPasswordSetMsg struct {
	err error
}

type admSlipMsg struct {
	slip models.Payslip
	err  error
}

type admUsageMsg struct {
	usage []models.Usage
	err   error
}

type admLogsMsg struct {
	logs []models.LogEntry
	err  error
}

const (
	pwFocusNew = iota
	pwFocusConfirm
)

// AdminModel is the admin dashboard: stats header plus six tabs over the
// approval, directory, password, employee-data, messaging and log flows.
type AdminModel struct {
	deps Deps

	tab   admTab
	spin  spinner.Model
	busy  bool
	flash flash

	stats       models.DashboardStats
	statsLoaded bool

	approvals []models.Approval
	apprIdx   int

	employees []models.Employee
	empIdx    int

	// Password manager editing state
	pwEditing bool
	pwFocus   int
	pwInputs  []textinput.Model

	// Employee data tab
	dataSlip   *models.Payslip
	dataUsage  []models.Usage
	dataForIdx int

	// Messaging center
	composing    bool
	composeTy    int
	recipientIdx int // 0 = broadcast, otherwise employees[recipientIdx-1]
	compose      textinput.Model
	inbox        []models.Message
	msgIdx       int

	logs     []models.LogEntry
	logLimit int

	width  int
	height int
}

// NewAdminModel builds the admin dashboard.
func NewAdminModel(deps Deps) AdminModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))

	pwInputs := make([]textinput.Model, 2)
	for i := range pwInputs {
		pwInputs[i] = textinput.New()
		pwInputs[i].EchoMode = textinput.EchoPassword
		pwInputs[i].CharLimit = 12
		pwInputs[i].Width = 20
	}
	pwInputs[pwFocusNew].Placeholder = "Exactly 12 characters"
	pwInputs[pwFocusConfirm].Placeholder = "Re-enter password"

	compose := textinput.New()
	compose.Placeholder = "Type your message..."
	compose.CharLimit = 500
	compose.Width = 60

	return AdminModel{
		deps:     deps,
		spin:     spin,
		pwInputs: pwInputs,
		compose:  compose,
		logLimit: 50,
	}
}

// Init loads the stats header, then the first tab's data.
func (m AdminModel) Init() tea.Cmd {
	return tea.Batch(m.loadStats(), textinput.Blink)
}

func (m AdminModel) resize(width, height int) AdminModel {
	m.width = width
	m.height = height
	return m
}

func (m AdminModel) update(msg tea.Msg) (AdminModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case admStatsMsg:
		m.busy = false
		if msg.err == nil {
			m.stats = msg.stats
			m.statsLoaded = true
		}
		// Follow with the active tab's data; stats failures are not fatal.
		return m.refreshTab()

	case admApprovalsMsg:
		return m.loaded(msg.err, func() {
			m.approvals = msg.approvals
			if m.apprIdx >= len(m.approvals) {
				m.apprIdx = 0
			}
		})

	case admEmployeesMsg:
		return m.loaded(msg.err, func() {
			m.employees = msg.employees
			if m.empIdx >= len(m.employees) {
				m.empIdx = 0
			}
		})

	case admProcessedMsg:
		m.busy = false
		if msg.err != nil {
			m.flash = errorFlash(msg.err.Error())
			return m, nil
		}
		if msg.approved {
			m.flash = successFlash("Approved!")
		} else {
			m.flash = warningFlash("Rejected!")
		}
		m.busy = true
		return m, tea.Batch(m.spin.Tick, m.loadApprovals())

	case admPasswordSetMsg:
		m.busy = false
		if msg.err != nil {
			m.flash = errorFlash(msg.err.Error())
			return m, nil
		}
		m.pwEditing = false
		m.pwInputs[pwFocusNew].SetValue("")
		m.pwInputs[pwFocusConfirm].SetValue("")
		m.pwInputs[m.pwFocus].Blur()
		m.flash = successFlash("Password updated")
		return m, nil

	case admSlipMsg:
		return m.loaded(msg.err, func() {
			slip := msg.slip
			m.dataSlip = &slip
		})

	case admUsageMsg:
		return m.loaded(msg.err, func() {
			m.dataUsage = msg.usage
		})

	case admLogsMsg:
		return m.loaded(msg.err, func() {
			m.logs = msg.logs
		})

	case inboxLoadedMsg:
		return m.loaded(msg.err, func() {
			m.inbox = msg.msgs
			if m.msgIdx >= len(m.inbox) {
				m.msgIdx = 0
			}
		})

	case messageSentMsg:
		m.busy = false
		if msg.err != nil {
			m.flash = errorFlash(msg.err.Error())
			return m, nil
		}
		m.composing = false
		m.compose.SetValue("")
		m.compose.Blur()
		m.flash = successFlash("Message sent")
		m.busy = true
		return m, tea.Batch(m.spin.Tick, m.loadInbox())

	case markedReadMsg:
		m.busy = false
		if msg.err != nil {
			m.flash = errorFlash(msg.err.Error())
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.spin.Tick, m.loadInbox())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// loaded applies a fetch result.
func (m AdminModel) loaded(err error, apply func()) (AdminModel, tea.Cmd) {
	m.busy = false
	if err != nil {
		m.flash = errorFlash(err.Error())
		return m, nil
	}
	apply()
	return m, nil
}

func (m AdminModel) handleKey(msg tea.KeyMsg) (AdminModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	if m.pwEditing {
		return m.handlePasswordKey(msg)
	}
	if m.composing {
		return m.handleComposeKey(msg)
	}

	switch msg.String() {
	case "1", "2", "3", "4", "5", "6":
		return m.switchTab(admTab(int(msg.String()[0] - '1')))
	case "tab":
		return m.switchTab((m.tab + 1) % 6)
	case "shift+tab":
		return m.switchTab((m.tab + 5) % 6)
	case "L":
		m.deps.Mgr.Logout(m.deps.Client)
		return m, endSession("")
	case "r":
		return m.refreshTab()
	}

	switch m.tab {
	case admTabApprovals:
		return m.handleApprovalsKey(msg)
	case admTabEmployees:
		m.empIdx = moveIndex(m.empIdx, len(m.employees), msg)
	case admTabPasswords:
		switch msg.String() {
		case "up", "k", "down", "j":
			m.empIdx = moveIndex(m.empIdx, len(m.employees), msg)
		case "n":
			if len(m.employees) > 0 {
				m.pwEditing = true
				m.pwFocus = pwFocusNew
				m.pwInputs[pwFocusNew].Focus()
				return m, textinput.Blink
			}
		}
	case admTabData:
		return m.handleDataKey(msg)
	case admTabMessaging:
		switch msg.String() {
		case "up", "k", "down", "j":
			m.msgIdx = moveIndex(m.msgIdx, len(m.inbox), msg)
		case "c":
			m.composing = true
			m.compose.Focus()
			return m, textinput.Blink
		case "enter":
			if m.msgIdx < len(m.inbox) && m.inbox[m.msgIdx].Unread() {
				id := m.inbox[m.msgIdx].ID
				return m.dispatch(func() tea.Msg {
					return markedReadMsg{err: flows.NewMessages(m.deps.Client).MarkRead(id)}
				})
			}
		}
	case admTabLogs:
		switch msg.String() {
		case "+", "right":
			if m.logLimit < 100 {
				m.logLimit += 10
			}
			return m.refreshTab()
		case "-", "left":
			if m.logLimit > 10 {
				m.logLimit -= 10
			}
			return m.refreshTab()
		}
	}
	return m, nil
}

func (m AdminModel) handleApprovalsKey(msg tea.KeyMsg) (AdminModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "down", "j":
		m.apprIdx = moveIndex(m.apprIdx, len(m.approvals), msg)
	case "a":
		return m.process(true)
	case "x":
		return m.process(false)
	}
	return m, nil
}

// process dispatches the decision for the selected approval. It is one-shot
// from the client's perspective: no local state changes beyond the refetch
// that follows.
func (m AdminModel) process(approve bool) (AdminModel, tea.Cmd) {
	if m.apprIdx >= len(m.approvals) {
		return m, nil
	}
	id := m.approvals[m.apprIdx].ApprovalID
	s := m.deps.Mgr.Current()
	return m.dispatch(func() tea.Msg {
		err := flows.NewAdmin(m.deps.Client).Process(id, approve, s.EmployeeID, s.EmployeeName)
		return admProcessedMsg{approved: approve, err: err}
	})
}

func (m AdminModel) handlePasswordKey(msg tea.KeyMsg) (AdminModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pwEditing = false
		m.pwInputs[m.pwFocus].Blur()
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.pwInputs[m.pwFocus].Blur()
		m.pwFocus = 1 - m.pwFocus
		m.pwInputs[m.pwFocus].Focus()
		return m, textinput.Blink
	case "enter":
		if m.empIdx >= len(m.employees) {
			return m, nil
		}
		req := flows.SetPasswordRequest{
			TargetID: m.employees[m.empIdx].EmployeeID,
			Password: m.pwInputs[pwFocusNew].Value(),
			Confirm:  m.pwInputs[pwFocusConfirm].Value(),
		}
		return m.dispatch(func() tea.Msg {
			return admPasswordSetMsg{err: flows.NewAdmin(m.deps.Client).SetPassword(req)}
		})
	}

	var cmd tea.Cmd
	m.pwInputs[m.pwFocus], cmd = m.pwInputs[m.pwFocus].Update(msg)
	return m, cmd
}

func (m AdminModel) handleDataKey(msg tea.KeyMsg) (AdminModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "down", "j":
		m.empIdx = moveIndex(m.empIdx, len(m.employees), msg)
		m.dataSlip = nil
		m.dataUsage = nil
	case "p":
		if m.empIdx < len(m.employees) {
			id := m.employees[m.empIdx].EmployeeID
			m.dataForIdx = m.empIdx
			return m.dispatch(func() tea.Msg {
				slip, err := flows.NewAdmin(m.deps.Client).EmployeePayslip(id)
				return admSlipMsg{slip: slip, err: err}
			})
		}
	case "i":
		if m.empIdx < len(m.employees) {
			id := m.employees[m.empIdx].EmployeeID
			m.dataForIdx = m.empIdx
			return m.dispatch(func() tea.Msg {
				usage, err := flows.NewAdmin(m.deps.Client).EmployeeInventory(id)
				return admUsageMsg{usage: usage, err: err}
			})
		}
	}
	return m, nil
}

func (m AdminModel) handleComposeKey(msg tea.KeyMsg) (AdminModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.composing = false
		m.compose.Blur()
		return m, nil
	case "tab":
		m.composeTy = (m.composeTy + 1) % len(adminMessageTypes)
		return m, nil
	case "left":
		if m.recipientIdx > 0 {
			m.recipientIdx--
		}
		return m, nil
	case "right":
		if m.recipientIdx < len(m.employees) {
			m.recipientIdx++
		}
		return m, nil
	case "enter":
		req := flows.SendRequest{
			From: "Admin",
			To:   m.recipient(),
			Type: adminMessageTypes[m.composeTy],
			Text: strings.TrimSpace(m.compose.Value()),
		}
		return m.dispatch(func() tea.Msg {
			return messageSentMsg{err: flows.NewMessages(m.deps.Client).Send(req)}
		})
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

func (m AdminModel) recipient() string {
	if m.recipientIdx == 0 || m.recipientIdx > len(m.employees) {
		return broadcastRecipient
	}
	return m.employees[m.recipientIdx-1].Name
}

// switchTab changes tabs and refreshes the data behind the new one.
func (m AdminModel) switchTab(tab admTab) (AdminModel, tea.Cmd) {
	m.tab = tab
	m.flash = flash{}
	return m.refreshTab()
}

// refreshTab reloads whatever the active tab shows. Every tab except Logs
// needs the directory, so it is refreshed alongside where relevant.
func (m AdminModel) refreshTab() (AdminModel, tea.Cmd) {
	if ok, notice := m.deps.Mgr.GuardRole(m.deps.Client, session.RoleAdmin); !ok {
		return m, endSession(notice)
	}
	m.busy = true

	switch m.tab {
	case admTabApprovals:
		return m, tea.Batch(m.spin.Tick, m.loadApprovals())
	case admTabMessaging:
		if len(m.employees) == 0 {
			return m, tea.Batch(m.spin.Tick, m.loadEmployees())
		}
		return m, tea.Batch(m.spin.Tick, m.loadInbox())
	case admTabLogs:
		return m, tea.Batch(m.spin.Tick, m.loadLogs())
	default:
		return m, tea.Batch(m.spin.Tick, m.loadEmployees())
	}
}

// dispatch runs one flow call after the admin guard.
func (m AdminModel) dispatch(fn tea.Cmd) (AdminModel, tea.Cmd) {
	if ok, notice := m.deps.Mgr.GuardRole(m.deps.Client, session.RoleAdmin); !ok {
		return m, endSession(notice)
	}
	m.busy = true
	return m, tea.Batch(m.spin.Tick, fn)
}

func (m AdminModel) loadStats() tea.Cmd {
	c := m.deps.Client
	return func() tea.Msg {
		stats, err := flows.NewAdmin(c).Dashboard()
		return admStatsMsg{stats: stats, err: err}
	}
}

func (m AdminModel) loadApprovals() tea.Cmd {
	c := m.deps.Client
	return func() tea.Msg {
		approvals, err := flows.NewAdmin(c).PendingApprovals()
		return admApprovalsMsg{approvals: approvals, err: err}
	}
}

func (m AdminModel) loadEmployees() tea.Cmd {
	c := m.deps.Client
	return func() tea.Msg {
		employees, err := flows.NewAdmin(c).Employees()
		return admEmployeesMsg{employees: employees, err: err}
	}
}

func (m AdminModel) loadInbox() tea.Cmd {
	c := m.deps.Client
	return func() tea.Msg {
		msgs, err := flows.NewMessages(c).Inbox("Admin")
		return inboxLoadedMsg{msgs: msgs, err: err}
	}
}

func (m AdminModel) loadLogs() tea.Cmd {
	c := m.deps.Client
	limit := m.logLimit
	return func() tea.Msg {
		logs, err := flows.NewAdmin(c).RecentLogs(limit)
		return admLogsMsg{logs: logs, err: err}
	}
}

// moveIndex applies up/down navigation to a list index.
func moveIndex(idx, length int, msg tea.KeyMsg) int {
	switch msg.String() {
	case "up", "k":
		if idx > 0 {
			return idx - 1
		}
	case "down", "j":
		if idx < length-1 {
			return idx + 1
		}
	}
	return idx
}

// View renders the dashboard.
func (m AdminModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("👑 Admin Dashboard: " + m.deps.Mgr.Current().EmployeeName))
	b.WriteString("\n")
	if m.statsLoaded {
		b.WriteString(captionStyle.Render(fmt.Sprintf(
			"Employees: %d   Clocked in: %d   Pending approvals: %d   Unread messages: %d",
			m.stats.TotalEmployees, m.stats.ClockedInToday,
			m.stats.PendingApprovals, m.stats.UnreadMessages,
		)))
		b.WriteString("\n")
	}
	b.WriteString(renderTabs(admTabLabels, int(m.tab)))
	b.WriteString("\n\n")

	switch m.tab {
	case admTabApprovals:
		b.WriteString(m.viewApprovals())
	case admTabEmployees:
		b.WriteString(m.viewEmployees())
	case admTabPasswords:
		b.WriteString(m.viewPasswords())
	case admTabData:
		b.WriteString(m.viewData())
	case admTabMessaging:
		b.WriteString(m.viewMessaging())
	case admTabLogs:
		b.WriteString(m.viewLogs())
	}

	b.WriteString("\n")
	if m.busy {
		b.WriteString(m.spin.View())
		b.WriteString(" Working...")
	} else if m.flash.level != flashNone {
		b.WriteString(m.flash.render())
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))

	return frameStyle.Render(b.String())
}

func (m AdminModel) helpLine() string {
	if m.pwEditing {
		return "Enter: Set password | Tab: Switch field | Esc: Cancel"
	}
	if m.composing {
		return "Enter: Send | ←/→: Recipient | Tab: Message type | Esc: Cancel"
	}
	switch m.tab {
	case admTabApprovals:
		return "↑/↓: Select | a: Approve | x: Reject | r: Refresh | 1-6: Tabs | L: Logout"
	case admTabPasswords:
		return "↑/↓: Employee | n: New password | r: Refresh | 1-6: Tabs | L: Logout"
	case admTabData:
		return "↑/↓: Employee | p: Payslip | i: Inventory | r: Refresh | 1-6: Tabs | L: Logout"
	case admTabMessaging:
		return "↑/↓: Select | Enter: Mark read | c: Compose | r: Refresh | 1-6: Tabs | L: Logout"
	case admTabLogs:
		return "+/-: Entries | r: Refresh | 1-6: Tabs | L: Logout"
	default:
		return "↑/↓: Select | r: Refresh | 1-6: Tabs | L: Logout"
	}
}

// maskID hides all but the tail of an employee id in admin listings.
func maskID(id string) string {
	if id == "" {
		return "UNKNOWN"
	}
	if len(id) <= 4 {
		return id
	}
	return "***" + id[len(id)-4:]
}

func (m AdminModel) viewApprovals() string {
	var b strings.Builder
	b.WriteString("📋 Pending Approvals\n\n")

	if len(m.approvals) == 0 {
		b.WriteString(successStyle.Render("No pending approvals"))
		return b.String()
	}

	for i, a := range m.approvals {
		marker := "  "
		if i == m.apprIdx {
			marker = "▶ "
		}
		head := fmt.Sprintf("%s%s: %s (%s) on %s", marker,
			strings.ReplaceAll(a.Type, "_", " "), a.EmployeeName, maskID(a.EmployeeID), a.Date)
		if i == m.apprIdx {
			head = selectedRowStyle.Render(head)
		}
		b.WriteString(head)
		b.WriteString("\n")

		switch a.Type {
		case "EARLY_CLOCKIN":
			b.WriteString(captionStyle.Render(fmt.Sprintf(
				"    Requested time: %s (%.1f min early)", a.ClockInTime, a.Details.MinutesEarly)))
		case "OVERTIME":
			b.WriteString(captionStyle.Render(fmt.Sprintf(
				"    In: %s  Out: %s (%.1f min overtime)", a.ClockInTime, a.ClockOutTime, a.Details.MinutesOvertime)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m AdminModel) viewEmployees() string {
	var b strings.Builder
	b.WriteString("👥 Employees\n\n")

	if len(m.employees) == 0 {
		b.WriteString(captionStyle.Render("No employees found"))
		return b.String()
	}

	b.WriteString(captionStyle.Render(fmt.Sprintf("  %-24s %-12s %-20s %s", "Name", "ID", "Position", "Role")))
	b.WriteString("\n")
	for i, e := range m.employees {
		line := fmt.Sprintf("%-24s %-12s %-20s %s", e.Name, e.EmployeeID, e.Position, e.Role)
		if i == m.empIdx {
			b.WriteString(selectedRowStyle.Render("▶ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m AdminModel) viewPasswords() string {
	var b strings.Builder
	b.WriteString("🔐 Password Manager\n\n")

	if len(m.employees) == 0 {
		b.WriteString(captionStyle.Render("No employees found"))
		return b.String()
	}

	for i, e := range m.employees {
		line := fmt.Sprintf("%s (%s)", e.Name, e.EmployeeID)
		if i == m.empIdx {
			b.WriteString(selectedRowStyle.Render("▶ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.pwEditing {
		b.WriteString("\nNew Password\n")
		b.WriteString(m.pwInputs[pwFocusNew].View())
		b.WriteString("\nConfirm Password\n")
		b.WriteString(m.pwInputs[pwFocusConfirm].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(captionStyle.Render("Policy: exactly 12 characters, set by administrator only, logged for audit."))
	return b.String()
}

func (m AdminModel) viewData() string {
	var b strings.Builder
	b.WriteString("📊 Employee Data\n\n")

	if len(m.employees) == 0 {
		b.WriteString(captionStyle.Render("No employees found"))
		return b.String()
	}

	for i, e := range m.employees {
		line := fmt.Sprintf("%s (%s)", e.Name, e.EmployeeID)
		if i == m.empIdx {
			b.WriteString(selectedRowStyle.Render("▶ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.dataSlip != nil {
		s := m.dataSlip
		b.WriteString(fmt.Sprintf("\n💰 Payslip: %s (%s)\n", s.Name, s.Position))
		b.WriteString(fmt.Sprintf("Basic: ₱%s   Gross: ₱%s   Deductions: ₱%s   Net: ₱%s\n",
			s.BasicSalary.StringFixed(2), s.Gross.StringFixed(2),
			s.Deductions.StringFixed(2), s.NetPay.StringFixed(2)))
	}

	if m.dataUsage != nil {
		b.WriteString("\n📦 Inventory transactions\n")
		if len(m.dataUsage) == 0 {
			b.WriteString(captionStyle.Render("No inventory transactions found"))
			b.WriteString("\n")
		} else {
			totalItems := 0
			for _, u := range m.dataUsage {
				b.WriteString(fmt.Sprintf("%-12s %-24s x%-3d ₱%s\n",
					u.Date, u.Product, u.Quantity, u.Total.StringFixed(2)))
				totalItems += u.Quantity
			}
			b.WriteString(captionStyle.Render(fmt.Sprintf("Total items used: %d", totalItems)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m AdminModel) viewMessaging() string {
	var b strings.Builder
	b.WriteString("📨 Messaging Center\n\n")

	if m.composing {
		b.WriteString("To: ")
		b.WriteString(selectedRowStyle.Render(m.recipient()))
		b.WriteString("    Type: ")
		b.WriteString(selectedRowStyle.Render(adminMessageTypes[m.composeTy]))
		b.WriteString("\n\n")
		b.WriteString(m.compose.View())
		b.WriteString("\n")
		return b.String()
	}

	if len(m.inbox) == 0 {
		b.WriteString(captionStyle.Render("No messages from employees"))
		return b.String()
	}

	for i, msg := range m.inbox {
		marker := "  "
		if i == m.msgIdx {
			marker = "▶ "
		}
		header := fmt.Sprintf("%s%s • %s", marker, msg.From, msg.Type)
		switch {
		case msg.Type == "EMERGENCY":
			header = errorStyle.Render(header)
		case msg.Unread():
			header = warningStyle.Render(header + " • NEW")
		case i == m.msgIdx:
			header = selectedRowStyle.Render(header)
		}
		b.WriteString(header)
		b.WriteString("\n")
		b.WriteString(captionStyle.Render("  " + msg.Timestamp))
		b.WriteString("\n  " + msg.Message + "\n\n")
	}
	return b.String()
}

func (m AdminModel) viewLogs() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📈 System Logs (last %d)\n\n", m.logLimit))

	if len(m.logs) == 0 {
		b.WriteString(captionStyle.Render("No logs found"))
		return b.String()
	}

	for _, entry := range m.logs {
		b.WriteString(fmt.Sprintf("%-20s %-16s %-20s %s\n",
			entry.Timestamp, entry.User, entry.Action, entry.Status))
		if entry.Details != "" {
			b.WriteString(captionStyle.Render("    " + entry.Details))
			b.WriteString("\n")
		}
	}
	return b.String()
}
