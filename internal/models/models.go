package models

import "github.com/shopspring/decimal"

// Everything in this package is owned by the backend. The client decodes
// these views out of response envelopes, renders them, and throws them away
// on the next fetch; there is no local store.

// TodayStatus is the employee's attendance record for the current day.
type TodayStatus struct {
	ClockedIn    bool   `json:"clockedIn"`
	ClockInTime  string `json:"clockInTime"`
	ClockOutTime string `json:"clockOutTime"`
}

// Item is one row of the sellable inventory catalog. SellingPrice is the
// authoritative unit price: the use-item flow forwards it as fetched and
// never lets the operator edit it.
type Item struct {
	Product      string          `json:"product"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Stock        int             `json:"stock"`
}

// Usage is one recorded inventory transaction of an employee.
type Usage struct {
	Date     string          `json:"date"`
	Product  string          `json:"product"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// Payslip is the computed pay summary for one employee. All amounts are
// computed server-side; the client only displays them.
type Payslip struct {
	EmployeeID  string          `json:"employeeId"`
	Name        string          `json:"name"`
	Gender      string          `json:"gender"`
	Position    string          `json:"position"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
	Gross       decimal.Decimal `json:"gross"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetPay      decimal.Decimal `json:"netPay"`
}

// Employee is a directory entry.
type Employee struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Role       string `json:"role"`
}

// Approval is a pending early clock-in or overtime request awaiting an
// admin decision. The client never mutates one; it only asks the backend
// for a transition and refetches.
type Approval struct {
	ApprovalID   string          `json:"approvalId"`
	Type         string          `json:"type"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Date         string          `json:"date"`
	ClockInTime  string          `json:"clockInTime"`
	ClockOutTime string          `json:"clockOutTime"`
	Details      ApprovalDetails `json:"details"`
}

// ApprovalDetails carries the request-specific numbers the backend computed.
type ApprovalDetails struct {
	MinutesEarly    float64 `json:"minutesEarly"`
	MinutesOvertime float64 `json:"minutesOvertime"`
}

// Message is one entry of the in-app message board.
type Message struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Unread reports whether the message still needs acknowledging.
func (m Message) Unread() bool {
	return m.Status == "UNREAD"
}

// DashboardStats is the headline block of the admin dashboard.
type DashboardStats struct {
	TotalEmployees   int `json:"totalEmployees"`
	ClockedInToday   int `json:"clockedInToday"`
	PendingApprovals int `json:"pendingApprovals"`
	UnreadMessages   int `json:"unreadMessages"`
}

// LogEntry is one row of the backend's security log.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
	Action    string `json:"action"`
	Status    string `json:"status"`
	Details   string `json:"details"`
}
