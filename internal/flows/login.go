package flows

import (
	"strings"

	"github.com/kmontano/bundy/internal/api"
	"github.com/kmontano/bundy/internal/session"
)

// Credentials is the login form input. Passwords are fixed-length by the
// backend's policy: exactly 12 characters, set by the administrator.
type Credentials struct {
	EmployeeID string `validate:"required"`
	Password   string `validate:"required,len=12"`
}

// LoginResult carries everything the session manager needs to establish
// the authenticated state.
type LoginResult struct {
	Token        string
	EmployeeID   string
	EmployeeName string
	Role         session.Role
}

// Login authenticates against the backend. It is the only flow that runs
// without a session token.
type Login struct {
	c api.Caller
}

func NewLogin(c api.Caller) Login {
	return Login{c: c}
}

// Submit validates the credentials and exchanges them for a session.
func (f Login) Submit(creds Credentials) (LoginResult, error) {
	creds.EmployeeID = strings.TrimSpace(creds.EmployeeID)
	creds.Password = strings.TrimSpace(creds.Password)
	if fault := check(creds); fault != nil {
		return LoginResult{}, fault
	}

	r := f.c.Call(api.ActionLogin, map[string]any{
		"employeeId": creds.EmployeeID,
		"password":   creds.Password,
	})
	if !r.Success {
		return LoginResult{}, rejected(r, "Login failed")
	}

	res := LoginResult{
		Token:        r.Str("sessionToken"),
		EmployeeID:   r.Str("employeeId"),
		EmployeeName: r.Str("employeeName"),
		Role:         session.RoleEmployee,
	}
	if res.EmployeeID == "" {
		// Older backend revisions echo nothing back; keep the input.
		res.EmployeeID = creds.EmployeeID
	}
	if r.Str("role") == string(session.RoleAdmin) {
		res.Role = session.RoleAdmin
	}
	if res.Token == "" {
		return LoginResult{}, rejected(api.Failure(""), "Login failed")
	}
	return res, nil
}
