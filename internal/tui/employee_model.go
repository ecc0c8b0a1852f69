package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/kmontano/bundy/internal/flows"
	"github.com/kmontano/bundy/internal/models"
)

type empTab int

const (
	empTabAttendance empTab = iota
	empTabInventory
	empTabPayslip
	empTabMessages
)

var empTabLabels = []string{"Attendance", "Inventory", "Payslip", "Messages"}

// messageTypes an employee can send to the admin.
var employeeMessageTypes = []string{"GENERAL", "EMERGENCY", "QUESTION", "COMPLAINT", "OTHER"}

type statusLoadedMsg struct {
	status models.TodayStatus
	err    error
}

type clockDoneMsg struct {
	out flows.ClockOutcome
	err error
}

type requestFiledMsg struct {
	err error
}

type otpSentMsg struct {
	err error
}

type otpVerifiedMsg struct {
	err error
}

type catalogLoadedMsg struct {
	items []models.Item
	err   error
}

type useDoneMsg struct {
	receipt flows.UseReceipt
	err     error
}

type payslipLoadedMsg struct {
	slip models.Payslip
	err  error
}

type inboxLoadedMsg struct {
	msgs []models.Message
	err  error
}

type messageSentMsg struct {
	err error
}

type markedReadMsg struct {
	err error
}

// EmployeeModel is the employee dashboard: four tabs over the attendance,
// inventory, payslip and messaging flows. One call is in flight at a time;
// keys are ignored while busy.
type EmployeeModel struct {
	deps Deps

	tab   empTab
	spin  spinner.Model
	busy  bool
	flash flash

	// Attendance
	status       models.TodayStatus
	statusLoaded bool

	// Pending OTP modal; nil when no flow is pending
	pending  *flows.PendingFlow
	otpInput textinput.Model

	// Inventory
	catalog []models.Item
	itemIdx int
	qty     int

	// Payslip
	payslip       models.Payslip
	payslipLoaded bool

	// Messages
	inbox     []models.Message
	msgIdx    int
	composing bool
	composeTy int
	compose   textinput.Model

	width  int
	height int
}

// NewEmployeeModel builds the employee dashboard.
func NewEmployeeModel(deps Deps) EmployeeModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))

	otp := textinput.New()
	otp.Placeholder = "6-digit OTP"
	otp.CharLimit = 6
	otp.Width = 10

	compose := textinput.New()
	compose.Placeholder = "Type your message..."
	compose.CharLimit = 500
	compose.Width = 60

	return EmployeeModel{
		deps:     deps,
		spin:     spin,
		otpInput: otp,
		compose:  compose,
		qty:      1,
	}
}

// Init loads today's attendance.
func (m EmployeeModel) Init() tea.Cmd {
	return tea.Batch(m.loadStatus(), textinput.Blink)
}

func (m EmployeeModel) resize(width, height int) EmployeeModel {
	m.width = width
	m.height = height
	return m
}

func (m EmployeeModel) update(msg tea.Msg) (EmployeeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case statusLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.flash = errorFlash(msg.err.Error())
			return m, nil
		}
		m.status = msg.status
		m.statusLoaded = true
		if m.tab == empTabInventory {
			// The catalog fetch follows the status fetch; never both at once.
			m.busy = true
			return m, tea.Batch(m.spin.Tick, m.loadCatalog())
		}
		return m, nil

	case clockDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.flash = errorFlash(msg.err.Error())
			return m, nil
		}
		if msg.out.Pending != nil {
			// Rejected pending OTP verification: open the modal, do not
			// apply any success effect.
			m.pending = msg.out.Pending
			m.otpInput.SetValue("")
			m.otpInput.Focus()
			m.flash = warningFlash(pendingNotice(m.pending.Purpose))
			return m, textinput.Blink
		}
		m.flash = successFlash("Recorded!")
		return m.refreshStatus()

	case requestFiledMsg:
		m.busy = false
		if msg.err != nil {
			m.flash = errorFlash(msg.err.Error())
			return m, nil
		}
		m.flash = successFlash("Request sent! Check your email for OTP; admin approval is pending.")
		return m, nil

	case otpSentMsg:
		m.busy = false
		if msg.err != nil {
			m.flash = errorFlash(msg.err.Error())
			return m, nil
		}
		m.flash = successFlash("OTP sent to your registered email")
		return m, nil

	case otpVerifiedMsg:
		m.busy = false
		if msg.err != nil {
			m.flash = errorFlash(msg.err.Error())
			return m, nil
		}
		m.pending = nil
		m.otpInput.Blur()
		m.flash = successFlash("Verified successfully!")
		return m.refreshStatus()

	case catalogLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.flash = errorFlash(msg.err.Error())
			return m, nil
		}
		m.catalog = msg.items
		if m.itemIdx >= len(m.catalog) {
			m.itemIdx = 0
		}
		return m, nil

	case useDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.flash = errorFlash(msg.err.Error())
			return m, nil
		}
		m.flash = successFlash("Transaction: " + msg.receipt.TransactionID)
		m.busy = true
		return m, tea.Batch(m.spin.Tick, m.loadCatalog())

	case payslipLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.flash = infoFlash(msg.err.Error())
			return m, nil
		}
		m.payslip = msg.slip
		m.payslipLoaded = true
		return m, nil

	case inboxLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.flash = errorFlash(msg.err.Error())
			return m, nil
		}
		m.inbox = msg.msgs
		if m.msgIdx >= len(m.inbox) {
			m.msgIdx = 0
		}
		return m, nil

	case messageSentMsg:
		m.busy = false
		if msg.err != nil {
			m.flash = errorFlash(msg.err.Error())
			return m, nil
		}
		m.composing = false
		m.compose.SetValue("")
		m.compose.Blur()
		m.flash = successFlash("Message sent to Admin!")
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

func (m EmployeeModel) handleKey(msg tea.KeyMsg) (EmployeeModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	// The OTP modal captures all input while a flow is pending.
	if m.pending != nil {
		return m.handleOTPKey(msg)
	}
	if m.composing {
		return m.handleComposeKey(msg)
	}

	switch msg.String() {
	case "1", "2", "3", "4":
		return m.switchTab(empTab(int(msg.String()[0] - '1')))
	case "tab":
		return m.switchTab((m.tab + 1) % 4)
	case "shift+tab":
		return m.switchTab((m.tab + 3) % 4)
	case "L":
		m.deps.Mgr.Logout(m.deps.Client)
		return m, endSession("")
	case "r":
		return m.refreshTab()
	}

	switch m.tab {
	case empTabAttendance:
		return m.handleAttendanceKey(msg)
	case empTabInventory:
		return m.handleInventoryKey(msg)
	case empTabMessages:
		return m.handleMessagesKey(msg)
	}
	return m, nil
}

func (m EmployeeModel) handleAttendanceKey(msg tea.KeyMsg) (EmployeeModel, tea.Cmd) {
	switch msg.String() {
	case "i":
		if m.status.ClockedIn {
			m.flash = infoFlash("Already clocked in today")
			return m, nil
		}
		return m.dispatch(func() tea.Msg {
			out, err := flows.NewAttendance(m.deps.Client).ClockIn()
			return clockDoneMsg{out: out, err: err}
		})
	case "o":
		if !m.status.ClockedIn || m.status.ClockOutTime != "" {
			m.flash = infoFlash("Nothing to clock out")
			return m, nil
		}
		return m.dispatch(func() tea.Msg {
			out, err := flows.NewAttendance(m.deps.Client).ClockOut()
			return clockDoneMsg{out: out, err: err}
		})
	case "e":
		return m.dispatch(func() tea.Msg {
			err := flows.NewAttendance(m.deps.Client).RequestEarlyClockIn("Early clock-in request")
			return requestFiledMsg{err: err}
		})
	case "v":
		return m.dispatch(func() tea.Msg {
			err := flows.NewAttendance(m.deps.Client).RequestOvertime("Overtime request")
			return requestFiledMsg{err: err}
		})
	}
	return m, nil
}

func (m EmployeeModel) handleOTPKey(msg tea.KeyMsg) (EmployeeModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Explicit cancel clears the pending flow.
		m.pending = nil
		m.otpInput.Blur()
		m.flash = flash{}
		return m, nil
	case "ctrl+n":
		pending := *m.pending
		return m.dispatch(func() tea.Msg {
			err := flows.NewOTP(m.deps.Client).RequestCode(pending)
			return otpSentMsg{err: err}
		})
	case "enter":
		pending := *m.pending
		code := m.otpInput.Value()
		return m.dispatch(func() tea.Msg {
			err := flows.NewOTP(m.deps.Client).Verify(pending, code)
			return otpVerifiedMsg{err: err}
		})
	}

	var cmd tea.Cmd
	m.otpInput, cmd = m.otpInput.Update(msg)
	return m, cmd
}

func (m EmployeeModel) handleInventoryKey(msg tea.KeyMsg) (EmployeeModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.itemIdx > 0 {
			m.itemIdx--
		}
	case "down", "j":
		if m.itemIdx < len(m.catalog)-1 {
			m.itemIdx++
		}
	case "left", "-":
		if m.qty > 1 {
			m.qty--
		}
	case "right", "+":
		if m.qty < 50 {
			m.qty++
		}
	case "enter":
		if !m.status.ClockedIn {
			m.flash = warningFlash("You must be clocked in to access inventory")
			return m, nil
		}
		if len(m.catalog) == 0 {
			return m, nil
		}
		catalog := m.catalog
		req := flows.UseRequest{Item: m.catalog[m.itemIdx].Product, Quantity: m.qty}
		return m.dispatch(func() tea.Msg {
			receipt, err := flows.NewInventory(m.deps.Client).Use(catalog, req)
			return useDoneMsg{receipt: receipt, err: err}
		})
	}
	return m, nil
}

func (m EmployeeModel) handleComposeKey(msg tea.KeyMsg) (EmployeeModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.composing = false
		m.compose.Blur()
		return m, nil
	case "tab":
		m.composeTy = (m.composeTy + 1) % len(employeeMessageTypes)
		return m, nil
	case "enter":
		req := flows.SendRequest{
			From: m.deps.Mgr.Current().EmployeeName,
			To:   "Admin",
			Type: employeeMessageTypes[m.composeTy],
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

func (m EmployeeModel) handleMessagesKey(msg tea.KeyMsg) (EmployeeModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.msgIdx > 0 {
			m.msgIdx--
		}
	case "down", "j":
		if m.msgIdx < len(m.inbox)-1 {
			m.msgIdx++
		}
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
	return m, nil
}

// switchTab changes tabs and refreshes the data behind the new one.
func (m EmployeeModel) switchTab(tab empTab) (EmployeeModel, tea.Cmd) {
	m.tab = tab
	m.flash = flash{}
	return m.refreshTab()
}

// refreshTab reloads whatever the active tab shows.
func (m EmployeeModel) refreshTab() (EmployeeModel, tea.Cmd) {
	switch m.tab {
	case empTabAttendance:
		return m.refreshStatus()
	case empTabInventory:
		// Status first; the catalog load follows from its handler.
		return m.refreshStatus()
	case empTabPayslip:
		return m.dispatch(func() tea.Msg {
			slip, err := flows.NewPayslip(m.deps.Client).Own()
			return payslipLoadedMsg{slip: slip, err: err}
		})
	case empTabMessages:
		if ok, cmd := m.guarded(); !ok {
			return m, cmd
		}
		m.busy = true
		return m, tea.Batch(m.spin.Tick, m.loadInbox())
	}
	return m, nil
}

func (m EmployeeModel) refreshStatus() (EmployeeModel, tea.Cmd) {
	if ok, cmd := m.guarded(); !ok {
		return m, cmd
	}
	m.busy = true
	return m, tea.Batch(m.spin.Tick, m.loadStatus())
}

// dispatch runs one flow call after a guard check.
func (m EmployeeModel) dispatch(fn tea.Cmd) (EmployeeModel, tea.Cmd) {
	if ok, cmd := m.guarded(); !ok {
		return m, cmd
	}
	m.busy = true
	return m, tea.Batch(m.spin.Tick, fn)
}

// guarded enforces the idle timeout before any backend work. A failed
// guard aborts the view: the shell routes back to login with the notice.
func (m EmployeeModel) guarded() (bool, tea.Cmd) {
	if ok, notice := m.deps.Mgr.Guard(m.deps.Client); !ok {
		return false, endSession(notice)
	}
	return true, nil
}

func (m EmployeeModel) loadStatus() tea.Cmd {
	c := m.deps.Client
	return func() tea.Msg {
		status, err := flows.NewAttendance(c).Status()
		return statusLoadedMsg{status: status, err: err}
	}
}

func (m EmployeeModel) loadCatalog() tea.Cmd {
	c := m.deps.Client
	return func() tea.Msg {
		items, err := flows.NewInventory(c).Catalog()
		return catalogLoadedMsg{items: items, err: err}
	}
}

func (m EmployeeModel) loadInbox() tea.Cmd {
	c := m.deps.Client
	name := m.deps.Mgr.Current().EmployeeName
	return func() tea.Msg {
		msgs, err := flows.NewMessages(c).Inbox(name)
		return inboxLoadedMsg{msgs: msgs, err: err}
	}
}

// endSession tells the shell the session is gone.
func endSession(notice string) tea.Cmd {
	return func() tea.Msg { return sessionEndedMsg{notice: notice} }
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func pendingNotice(p flows.Purpose) string {
	if p == flows.PurposeOvertime {
		return "Overtime requires OTP verification"
	}
	return "Early clock-in requires OTP verification"
}

// View renders the dashboard.
func (m EmployeeModel) View() string {
	var b strings.Builder

	s := m.deps.Mgr.Current()
	b.WriteString(titleStyle.Render("👤 " + s.EmployeeName))
	b.WriteString("\n")
	b.WriteString(renderTabs(empTabLabels, int(m.tab)))
	b.WriteString("\n\n")

	switch m.tab {
	case empTabAttendance:
		b.WriteString(m.viewAttendance())
	case empTabInventory:
		b.WriteString(m.viewInventory())
	case empTabPayslip:
		b.WriteString(m.viewPayslip())
	case empTabMessages:
		b.WriteString(m.viewMessages())
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

func (m EmployeeModel) helpLine() string {
	if m.pending != nil {
		return "Enter: Verify OTP | Ctrl+N: Send new OTP | Esc: Cancel"
	}
	if m.composing {
		return "Enter: Send | Tab: Message type | Esc: Cancel"
	}
	switch m.tab {
	case empTabAttendance:
		return "i: Clock in | o: Clock out | e: Request early clock-in | v: Request overtime | r: Refresh | 1-4: Tabs | L: Logout"
	case empTabInventory:
		return "↑/↓: Item | ←/→: Quantity | Enter: Use item | r: Refresh | 1-4: Tabs | L: Logout"
	case empTabMessages:
		return "↑/↓: Select | Enter: Mark read | c: Compose | r: Refresh | 1-4: Tabs | L: Logout"
	default:
		return "r: Refresh | 1-4: Tabs | L: Logout"
	}
}

func (m EmployeeModel) viewAttendance() string {
	var b strings.Builder
	b.WriteString("⏰ Attendance\n\n")

	if !m.statusLoaded {
		b.WriteString(captionStyle.Render("Loading today's status..."))
		return b.String()
	}

	switch {
	case m.status.ClockOutTime != "":
		b.WriteString(successStyle.Render("✅ Clocked out at " + m.status.ClockOutTime))
	case m.status.ClockedIn:
		b.WriteString(successStyle.Render("🟢 Clocked in: " + m.status.ClockInTime))
		b.WriteString("\n")
		b.WriteString(captionStyle.Render("Currently working"))
	default:
		b.WriteString(warningStyle.Render("🔴 Not clocked in"))
	}
	b.WriteString("\n")

	if m.pending != nil {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(pendingNotice(m.pending.Purpose)))
		b.WriteString("\n\nEnter OTP\n")
		b.WriteString(m.otpInput.View())
		b.WriteString("\n")
	}

	return b.String()
}

func (m EmployeeModel) viewInventory() string {
	var b strings.Builder
	b.WriteString("📦 Inventory\n\n")

	if !m.status.ClockedIn {
		b.WriteString(warningStyle.Render("You must be clocked in to access inventory"))
		return b.String()
	}
	if len(m.catalog) == 0 {
		b.WriteString(captionStyle.Render("No inventory items available"))
		return b.String()
	}

	for i, item := range m.catalog {
		line := fmt.Sprintf("%-30s ₱%s", item.Product, item.SellingPrice.StringFixed(2))
		if i == m.itemIdx {
			b.WriteString(selectedRowStyle.Render("▶ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	selected := m.catalog[m.itemIdx]
	total := selected.SellingPrice.Mul(decimalFromInt(m.qty))
	b.WriteString(fmt.Sprintf("\nQuantity: %d    Unit: ₱%s    Total: ₱%s\n",
		m.qty, selected.SellingPrice.StringFixed(2), total.StringFixed(2)))

	return b.String()
}

func (m EmployeeModel) viewPayslip() string {
	var b strings.Builder
	b.WriteString("💰 Payslip\n\n")

	if !m.payslipLoaded {
		b.WriteString(captionStyle.Render("Payslip will be available at pay period end"))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Name:         %s\n", m.payslip.Name))
	b.WriteString(fmt.Sprintf("Basic Salary: ₱%s\n", m.payslip.BasicSalary.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Gross Pay:    ₱%s\n", m.payslip.Gross.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Deductions:   ₱%s\n", m.payslip.Deductions.StringFixed(2)))
	b.WriteString("\n")
	b.WriteString(successStyle.Render(fmt.Sprintf("Net Pay: ₱%s", m.payslip.NetPay.StringFixed(2))))
	b.WriteString("\n\n")
	b.WriteString(captionStyle.Render("Read-only. No export available per security policy."))
	return b.String()
}

func (m EmployeeModel) viewMessages() string {
	var b strings.Builder
	b.WriteString("📨 Messages\n\n")

	if m.composing {
		b.WriteString("To: Admin    Type: ")
		b.WriteString(selectedRowStyle.Render(employeeMessageTypes[m.composeTy]))
		b.WriteString("\n\n")
		b.WriteString(m.compose.View())
		b.WriteString("\n")
		return b.String()
	}

	if len(m.inbox) == 0 {
		b.WriteString(captionStyle.Render("No messages"))
		return b.String()
	}

	for i, msg := range m.inbox {
		marker := "  "
		if i == m.msgIdx {
			marker = "▶ "
		}
		header := fmt.Sprintf("%s%s • %s", marker, msg.From, msg.Type)
		if msg.Unread() {
			header = warningStyle.Render(header + " • NEW")
		} else if i == m.msgIdx {
			header = selectedRowStyle.Render(header)
		}
		b.WriteString(header)
		b.WriteString("\n")
		b.WriteString(captionStyle.Render("  " + msg.Timestamp))
		b.WriteString("\n  " + msg.Message + "\n\n")
	}
	return b.String()
}
