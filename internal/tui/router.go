package tui

import "github.com/kmontano/bundy/internal/session"

// View identifies the active top-level screen.
type View int

const (
	ViewLogin View = iota
	ViewEmployee
	ViewAdmin
)

// Route maps the session onto the screen to show. Pure function of its
// argument, re-evaluated on every render and never cached: anonymous goes
// to login, admins to the admin dashboard, everyone else to the employee
// dashboard. There is no fourth branch.
func Route(s session.Session) View {
	switch {
	case !s.Authenticated():
		return ViewLogin
	case s.Role == session.RoleAdmin:
		return ViewAdmin
	default:
		return ViewEmployee
	}
}
