package flows

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmontano/bundy/internal/api"
	"github.com/kmontano/bundy/internal/models"
	"github.com/kmontano/bundy/internal/session"
)

// call records one dispatched action.
type call struct {
	action  string
	payload map[string]any
}

// fakeCaller scripts results per action and records everything dispatched.
type fakeCaller struct {
	results map[string]api.Result
	calls   []call
}

func (f *fakeCaller) Call(action string, payload map[string]any) api.Result {
	f.calls = append(f.calls, call{action: action, payload: payload})
	if r, ok := f.results[action]; ok {
		return r
	}
	return api.Result{Success: true}
}

func (f *fakeCaller) script(action, raw string) {
	if f.results == nil {
		f.results = map[string]api.Result{}
	}
	var r api.Result
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		panic(err)
	}
	f.results[action] = r
}

func (f *fakeCaller) last() call {
	return f.calls[len(f.calls)-1]
}

func TestLoginValidation(t *testing.T) {
	cases := []struct {
		name     string
		id       string
		password string
		want     string
	}{
		{"missing id", "", "abcdefgh1234", "Please enter both Employee ID and Password"},
		{"missing password", "EMP001", "", "Please enter both Employee ID and Password"},
		{"short password", "EMP001", "short", "Password must be exactly 12 characters"},
		{"long password", "EMP001", "abcdefgh12345", "Password must be exactly 12 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &fakeCaller{}
			_, err := NewLogin(c).Submit(Credentials{EmployeeID: tc.id, Password: tc.password})

			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Equal(t, tc.want, err.Error())
			assert.Empty(t, c.calls, "invalid input must never reach the backend")
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionLogin, `{"success":true,"sessionToken":"abc","employeeName":"Jane","role":"ADMIN"}`)

	res, err := NewLogin(c).Submit(Credentials{EmployeeID: "  EMP001  ", Password: "abcdefgh1234"})
	require.NoError(t, err)

	assert.Equal(t, "abc", res.Token)
	assert.Equal(t, "Jane", res.EmployeeName)
	assert.Equal(t, session.RoleAdmin, res.Role)
	// Backend echoed no employeeId; the trimmed input stands in.
	assert.Equal(t, "EMP001", res.EmployeeID)

	sent := c.last()
	assert.Equal(t, api.ActionLogin, sent.action)
	assert.Equal(t, "EMP001", sent.payload["employeeId"])
	assert.Equal(t, "abcdefgh1234", sent.payload["password"])
}

func TestLoginDefaultsToEmployeeRole(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionLogin, `{"success":true,"sessionToken":"abc","employeeName":"Jo"}`)

	res, err := NewLogin(c).Submit(Credentials{EmployeeID: "EMP002", Password: "abcdefgh1234"})
	require.NoError(t, err)
	assert.Equal(t, session.RoleEmployee, res.Role)
}

func TestLoginRejected(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionLogin, `{"success":false,"message":"Invalid credentials"}`)

	_, err := NewLogin(c).Submit(Credentials{EmployeeID: "EMP001", Password: "abcdefgh1234"})
	require.Error(t, err)
	assert.False(t, IsValidation(err))
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestLoginMissingTokenIsFailure(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionLogin, `{"success":true,"employeeName":"Jane"}`)

	_, err := NewLogin(c).Submit(Credentials{EmployeeID: "EMP001", Password: "abcdefgh1234"})
	require.Error(t, err)
	assert.Equal(t, "Login failed", err.Error())
}

func TestAttendanceStatus(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionGetTodayAttendance, `{"success":true,"clockedIn":true,"clockInTime":"08:01","clockOutTime":""}`)

	status, err := NewAttendance(c).Status()
	require.NoError(t, err)
	assert.True(t, status.ClockedIn)
	assert.Equal(t, "08:01", status.ClockInTime)
	assert.Empty(t, status.ClockOutTime)
}

func TestClockInStraightThrough(t *testing.T) {
	c := &fakeCaller{}
	out, err := NewAttendance(c).ClockIn()
	require.NoError(t, err)
	assert.Nil(t, out.Pending)
	assert.Equal(t, api.ActionClockIn, c.last().action)
}

func TestClockInPendingOTP(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionClockIn, `{"success":false,"requiresOTP":true,"message":"Early clock-in requires OTP"}`)

	out, err := NewAttendance(c).ClockIn()
	require.NoError(t, err)
	require.NotNil(t, out.Pending)
	assert.Equal(t, PurposeEarlyClockIn, out.Pending.Purpose)
	assert.Equal(t, api.ActionClockIn, out.Pending.Action)
}

func TestClockOutPendingOvertime(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionClockOut, `{"success":false,"requiresApproval":true}`)

	out, err := NewAttendance(c).ClockOut()
	require.NoError(t, err)
	require.NotNil(t, out.Pending)
	assert.Equal(t, PurposeOvertime, out.Pending.Purpose)
	assert.Equal(t, api.ActionClockOut, out.Pending.Action)
}

func TestClockInRejectedSurfacesMessage(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionClockIn, `{"success":false,"message":"Already clocked in today"}`)

	out, err := NewAttendance(c).ClockIn()
	require.Error(t, err)
	assert.Nil(t, out.Pending)
	assert.Equal(t, "Already clocked in today", err.Error())
}

func TestOTPRequestCode(t *testing.T) {
	c := &fakeCaller{}
	pending := PendingFlow{Purpose: PurposeOvertime, Action: api.ActionClockOut}

	require.NoError(t, NewOTP(c).RequestCode(pending))
	sent := c.last()
	assert.Equal(t, api.ActionGenerateOTP, sent.action)
	assert.Equal(t, "OVERTIME", sent.payload["purpose"])
}

func TestOTPVerifyValidation(t *testing.T) {
	pending := PendingFlow{Purpose: PurposeEarlyClockIn, Action: api.ActionClockIn}
	for _, code := range []string{"", "12345", "1234567", "12a45", "12a456"} {
		c := &fakeCaller{}
		err := NewOTP(c).Verify(pending, code)

		require.Error(t, err, "code=%q", code)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "Invalid OTP format", err.Error())
		assert.Empty(t, c.calls)
	}
}

func TestOTPVerifyRetriesPendingAction(t *testing.T) {
	c := &fakeCaller{}
	pending := PendingFlow{Purpose: PurposeEarlyClockIn, Action: api.ActionClockIn}

	require.NoError(t, NewOTP(c).Verify(pending, "123456"))
	sent := c.last()
	assert.Equal(t, api.ActionClockIn, sent.action)
	assert.Equal(t, "123456", sent.payload["otp"])
}

func TestOTPVerifyWrongCode(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionClockOut, `{"success":false,"message":"Invalid or expired OTP"}`)
	pending := PendingFlow{Purpose: PurposeOvertime, Action: api.ActionClockOut}

	err := NewOTP(c).Verify(pending, "000000")
	require.Error(t, err)
	assert.False(t, IsValidation(err))
	assert.Equal(t, "Invalid or expired OTP", err.Error())
}

func TestInventoryCatalog(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionGetInventory, `{"success":true,"items":[{"product":"Coffee","sellingPrice":150.00,"stock":12}]}`)

	items, err := NewInventory(c).Catalog()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Coffee", items[0].Product)
	assert.True(t, items[0].SellingPrice.Equal(decimal.RequireFromString("150")))
	assert.Equal(t, 12, items[0].Stock)
}

func testCatalog() []models.Item {
	return []models.Item{
		{Product: "Coffee", SellingPrice: decimal.RequireFromString("150.00"), Stock: 12},
		{Product: "Tea", SellingPrice: decimal.RequireFromString("85.50"), Stock: 4},
	}
}

func TestInventoryUseQuantityBounds(t *testing.T) {
	for _, qty := range []int{0, -1, 51} {
		c := &fakeCaller{}
		_, err := NewInventory(c).Use(testCatalog(), UseRequest{Item: "Coffee", Quantity: qty})

		require.Error(t, err, "qty=%d", qty)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "Quantity must be between 1 and 50", err.Error())
		assert.Empty(t, c.calls)
	}
}

func TestInventoryUseUnknownItem(t *testing.T) {
	c := &fakeCaller{}
	_, err := NewInventory(c).Use(testCatalog(), UseRequest{Item: "Sugar", Quantity: 1})

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Empty(t, c.calls)
}

func TestInventoryUsePricesFromCatalog(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionUseInventory, `{"success":true,"transactionId":"TXN-9"}`)

	receipt, err := NewInventory(c).Use(testCatalog(), UseRequest{Item: "Coffee", Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, "TXN-9", receipt.TransactionID)
	assert.True(t, receipt.UnitPrice.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, receipt.Total.Equal(decimal.RequireFromString("450.00")))

	sent := c.last()
	assert.Equal(t, api.ActionUseInventory, sent.action)
	assert.Equal(t, "Coffee", sent.payload["item"])
	assert.Equal(t, 3, sent.payload["quantity"])

	// The wire price is exactly the catalog price, not operator input.
	num, ok := sent.payload["unitPrice"].(json.Number)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString(string(num)).Equal(decimal.RequireFromString("150.00")))
}

func TestInventoryUseExactCentArithmetic(t *testing.T) {
	c := &fakeCaller{}
	receipt, err := NewInventory(c).Use(testCatalog(), UseRequest{Item: "Tea", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, "256.50", receipt.Total.StringFixed(2))
}

func TestPayslipOwn(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionGetPayslip, `{"success":true,"payslip":{"name":"Jane","basicSalary":25000,"gross":27500.00,"deductions":3293.75,"netPay":24206.25}}`)

	slip, err := NewPayslip(c).Own()
	require.NoError(t, err)
	assert.Equal(t, "Jane", slip.Name)
	assert.Equal(t, "24206.25", slip.NetPay.StringFixed(2))
}

func TestPayslipNotAvailable(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionGetPayslip, `{"success":false}`)

	_, err := NewPayslip(c).Own()
	require.Error(t, err)
	assert.Equal(t, "Payslip will be available at pay period end", err.Error())
}

func TestMessagesSendValidation(t *testing.T) {
	c := &fakeCaller{}
	err := NewMessages(c).Send(SendRequest{From: "Jane", To: "Admin", Type: "GENERAL", Text: ""})

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Please enter a message", err.Error())
	assert.Empty(t, c.calls)
}

func TestMessagesSend(t *testing.T) {
	c := &fakeCaller{}
	req := SendRequest{From: "Jane", To: "Admin", Type: "EMERGENCY", Text: "Printer on fire"}
	require.NoError(t, NewMessages(c).Send(req))

	sent := c.last()
	assert.Equal(t, api.ActionSendMessage, sent.action)
	assert.Equal(t, "Jane", sent.payload["from"])
	assert.Equal(t, "Admin", sent.payload["to"])
	assert.Equal(t, "EMERGENCY", sent.payload["type"])
	assert.Equal(t, "Printer on fire", sent.payload["message"])
}

func TestMessagesInboxFiltersRecipient(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionGetMessages, `{"success":true,"messages":[
		{"id":"1","from":"Admin","to":"Jane","message":"hello","status":"UNREAD"},
		{"id":"2","from":"Admin","to":"Bob","message":"other","status":"UNREAD"},
		{"id":"3","from":"Bob","to":"Jane","message":"hi","status":"READ"}
	]}`)

	inbox, err := NewMessages(c).Inbox("Jane")
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	assert.Equal(t, "1", inbox[0].ID)
	assert.Equal(t, "3", inbox[1].ID)
	assert.True(t, inbox[0].Unread())
	assert.False(t, inbox[1].Unread())
}

func TestMessagesMarkRead(t *testing.T) {
	c := &fakeCaller{}
	require.NoError(t, NewMessages(c).MarkRead("42"))
	assert.Equal(t, api.ActionMarkMessageRead, c.last().action)
	assert.Equal(t, "42", c.last().payload["messageId"])
}

func TestAdminSetPasswordValidation(t *testing.T) {
	cases := []struct {
		name string
		req  SetPasswordRequest
		want string
	}{
		{"no target", SetPasswordRequest{Password: "abcdefgh1234", Confirm: "abcdefgh1234"}, "Please select an employee"},
		{"wrong length", SetPasswordRequest{TargetID: "EMP001", Password: "short", Confirm: "short"}, "Password must be exactly 12 characters"},
		{"mismatch", SetPasswordRequest{TargetID: "EMP001", Password: "abcdefgh1234", Confirm: "abcdefgh1235"}, "Passwords do not match"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &fakeCaller{}
			err := NewAdmin(c).SetPassword(tc.req)

			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Equal(t, tc.want, err.Error())
			assert.Empty(t, c.calls)
		})
	}
}

func TestAdminSetPassword(t *testing.T) {
	c := &fakeCaller{}
	req := SetPasswordRequest{TargetID: "EMP001", Password: "abcdefgh1234", Confirm: "abcdefgh1234"}
	require.NoError(t, NewAdmin(c).SetPassword(req))

	sent := c.last()
	assert.Equal(t, api.ActionSetEmployeePassword, sent.action)
	assert.Equal(t, "EMP001", sent.payload["targetEmployeeId"])
	assert.Equal(t, "abcdefgh1234", sent.payload["newPassword"])
}

func TestAdminProcess(t *testing.T) {
	c := &fakeCaller{}
	require.NoError(t, NewAdmin(c).Process("APR-7", true, "ADM001", "Boss"))

	sent := c.last()
	assert.Equal(t, api.ActionProcessApproval, sent.action)
	assert.Equal(t, "APR-7", sent.payload["approvalId"])
	assert.Equal(t, true, sent.payload["approve"])
	assert.Equal(t, "ADM001", sent.payload["adminId"])
	assert.Equal(t, "Boss", sent.payload["adminName"])
}

func TestAdminProcessRejectedFallbacks(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionProcessApproval, `{"success":false}`)

	err := NewAdmin(c).Process("APR-7", false, "ADM001", "Boss")
	require.Error(t, err)
	assert.Equal(t, "Failed to reject", err.Error())
}

func TestAdminPendingApprovals(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionGetPendingApprovals, `{"success":true,"approvals":[
		{"approvalId":"APR-1","type":"EARLY_CLOCKIN","employeeId":"EMP001","employeeName":"Jane","date":"2025-06-02","clockInTime":"07:40","details":{"minutesEarly":20}}
	]}`)

	approvals, err := NewAdmin(c).PendingApprovals()
	require.NoError(t, err)
	require.Len(t, approvals, 1)
	assert.Equal(t, "EARLY_CLOCKIN", approvals[0].Type)
	assert.Equal(t, 20.0, approvals[0].Details.MinutesEarly)
}

func TestAdminDashboard(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionGetAdminDashboard, `{"success":true,"stats":{"totalEmployees":9,"clockedInToday":4,"pendingApprovals":2,"unreadMessages":1}}`)

	stats, err := NewAdmin(c).Dashboard()
	require.NoError(t, err)
	assert.Equal(t, 9, stats.TotalEmployees)
	assert.Equal(t, 4, stats.ClockedInToday)
	assert.Equal(t, 2, stats.PendingApprovals)
	assert.Equal(t, 1, stats.UnreadMessages)
}

func TestAdminRecentLogs(t *testing.T) {
	c := &fakeCaller{}
	c.script(api.ActionGetRecentLogs, `{"success":true,"logs":[{"timestamp":"2025-06-02 08:00","user":"EMP001","action":"LOGIN","status":"SUCCESS","details":""}]}`)

	logs, err := NewAdmin(c).RecentLogs(50)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 50, c.last().payload["limit"])
}
