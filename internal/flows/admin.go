package flows

import (
	"github.com/kmontano/bundy/internal/api"
	"github.com/kmontano/bundy/internal/models"
)

// SetPasswordRequest is the admin password-manager form input.
type SetPasswordRequest struct {
	TargetID string `validate:"required"`
	Password string `validate:"required,len=12"`
	Confirm  string `validate:"required,eqfield=Password"`
}

// Admin drives every admin-only flow. Role enforcement is the backend's
// job; the client additionally gates the whole admin view through
// Manager.GuardRole before any of these run.
type Admin struct {
	c api.Caller
}

func NewAdmin(c api.Caller) Admin {
	return Admin{c: c}
}

// Dashboard fetches the headline stats.
func (f Admin) Dashboard() (models.DashboardStats, error) {
	r := f.c.Call(api.ActionGetAdminDashboard, nil)
	if !r.Success {
		return models.DashboardStats{}, rejected(r, "Unable to load dashboard")
	}
	var stats models.DashboardStats
	if err := r.Decode("stats", &stats); err != nil {
		return models.DashboardStats{}, rejected(api.Failure(""), "Unable to load dashboard")
	}
	return stats, nil
}

// Employees fetches the directory.
func (f Admin) Employees() ([]models.Employee, error) {
	r := f.c.Call(api.ActionGetAllEmployees, nil)
	if !r.Success {
		return nil, rejected(r, "Failed to load employees")
	}
	var employees []models.Employee
	if err := r.Decode("employees", &employees); err != nil {
		return nil, rejected(api.Failure(""), "Failed to load employees")
	}
	return employees, nil
}

// PendingApprovals fetches the open early clock-in and overtime requests.
func (f Admin) PendingApprovals() ([]models.Approval, error) {
	r := f.c.Call(api.ActionGetPendingApprovals, nil)
	if !r.Success {
		return nil, rejected(r, "Failed to load approvals")
	}
	var approvals []models.Approval
	if err := r.Decode("approvals", &approvals); err != nil {
		return nil, rejected(api.Failure(""), "Failed to load approvals")
	}
	return approvals, nil
}

// Process approves or rejects one pending request. The call changes no
// local state; the caller refetches the list afterwards. Repeating it for
// an already-decided request is the backend's problem to reject.
func (f Admin) Process(approvalID string, approve bool, adminID, adminName string) error {
	r := f.c.Call(api.ActionProcessApproval, map[string]any{
		"approvalId": approvalID,
		"approve":    approve,
		"adminId":    adminID,
		"adminName":  adminName,
	})
	if !r.Success {
		if approve {
			return rejected(r, "Failed to approve")
		}
		return rejected(r, "Failed to reject")
	}
	return nil
}

// SetPassword assigns a new fixed-length password to an employee.
func (f Admin) SetPassword(req SetPasswordRequest) error {
	if fault := check(req); fault != nil {
		return fault
	}
	r := f.c.Call(api.ActionSetEmployeePassword, map[string]any{
		"targetEmployeeId": req.TargetID,
		"newPassword":      req.Password,
	})
	if !r.Success {
		return rejected(r, "Failed to set password")
	}
	return nil
}

// EmployeePayslip fetches another employee's pay summary.
func (f Admin) EmployeePayslip(employeeID string) (models.Payslip, error) {
	r := f.c.Call(api.ActionGetEmployeePayslip, map[string]any{"employeeId": employeeID})
	if !r.Success {
		return models.Payslip{}, rejected(r, "Payslip data not available")
	}
	var slip models.Payslip
	if err := r.Decode("payslip", &slip); err != nil {
		return models.Payslip{}, rejected(api.Failure(""), "Payslip data not available")
	}
	return slip, nil
}

// EmployeeInventory fetches another employee's recorded transactions.
func (f Admin) EmployeeInventory(employeeID string) ([]models.Usage, error) {
	r := f.c.Call(api.ActionGetEmployeeInventory, map[string]any{"employeeId": employeeID})
	if !r.Success {
		return nil, rejected(r, "Inventory data not available")
	}
	var usage []models.Usage
	if err := r.Decode("inventory", &usage); err != nil {
		return nil, rejected(api.Failure(""), "Inventory data not available")
	}
	return usage, nil
}

// RecentLogs fetches the newest security log entries.
func (f Admin) RecentLogs(limit int) ([]models.LogEntry, error) {
	r := f.c.Call(api.ActionGetRecentLogs, map[string]any{"limit": limit})
	if !r.Success {
		return nil, rejected(r, "Failed to load logs")
	}
	var logs []models.LogEntry
	if err := r.Decode("logs", &logs); err != nil {
		return nil, rejected(api.Failure(""), "Failed to load logs")
	}
	return logs, nil
}
