package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/kmontano/bundy/internal/api"
)

// IdleTimeout is the maximum inactivity before an authenticated session is
// invalidated locally. Fixed at 10 minutes by the backend's policy.
const IdleTimeout = 600 * time.Second

// Role of the logged-in employee, as declared by the backend at login.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleAdmin    Role = "ADMIN"
)

// Session is the only mutable state the client owns. Token and Role are set
// and cleared together; one being present without the other is a bug.
// Nothing is persisted; the session dies with the process.
type Session struct {
	Token        string
	EmployeeID   string
	EmployeeName string
	Role         Role
	LastActivity time.Time
}

// Authenticated reports whether a login has been established.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Manager owns the process-wide Session and is the only code that mutates
// it. It is handed to the flows and the UI by reference; there is no global.
type Manager struct {
	now func() time.Time
	s   Session
	log *zap.Logger
}

// NewManager builds a manager. A nil clock means time.Now; tests inject
// their own.
func NewManager(now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{now: now, log: zap.L()}
}

// Current returns a copy of the session for rendering.
func (m *Manager) Current() Session {
	return m.s
}

// Token implements api.TokenSource.
func (m *Manager) Token() string {
	return m.s.Token
}

// Authenticated reports whether a session is established.
func (m *Manager) Authenticated() bool {
	return m.s.Authenticated()
}

// Establish transitions ANONYMOUS -> AUTHENTICATED from a successful login.
func (m *Manager) Establish(token, employeeID, employeeName string, role Role) {
	m.s = Session{
		Token:        token,
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Role:         role,
		LastActivity: m.now(),
	}
	m.log.Info("session established",
		zap.String("employee_id", employeeID),
		zap.String("role", string(role)),
	)
}

// Guard is called on every guarded access. It checks the idle timeout and,
// when the session is still live, refreshes LastActivity. The check is
// purely local arithmetic: no backend round-trip happens here. Server-side
// revocation instead surfaces on the next real action as an authorization
// failure, which forces the same logout. On failure the caller must treat
// the current view as aborted and fall back to the login screen with the
// returned notice.
func (m *Manager) Guard(c api.Caller) (ok bool, notice string) {
	if !m.s.Authenticated() {
		return false, "Please login to access this page"
	}

	if m.now().Sub(m.s.LastActivity) > IdleTimeout {
		m.log.Warn("session idle-expired", zap.String("employee_id", m.s.EmployeeID))
		m.Logout(c)
		return false, "Session expired. Please login again."
	}

	m.s.LastActivity = m.now()
	return true, ""
}

// GuardRole is Guard plus a role check. A role mismatch is deliberately
// treated the same as an expired session: full logout, not a redirect.
func (m *Manager) GuardRole(c api.Caller, role Role) (ok bool, notice string) {
	if ok, notice := m.Guard(c); !ok {
		return false, notice
	}
	if m.s.Role != role {
		m.log.Warn("unauthorized access attempt",
			zap.String("employee_id", m.s.EmployeeID),
			zap.String("have", string(m.s.Role)),
			zap.String("want", string(role)),
		)
		m.Logout(c)
		return false, "Unauthorized access"
	}
	return true, ""
}

// Logout notifies the backend best-effort, then clears local state
// unconditionally. The notification result is ignored on purpose: the local
// session must die even when the server is unreachable.
func (m *Manager) Logout(c api.Caller) {
	if m.s.Token != "" && c != nil {
		_ = c.Call(api.ActionLogout, nil)
	}
	m.Clear()
}

// Clear drops the session without telling the backend.
func (m *Manager) Clear() {
	m.s = Session{}
}
