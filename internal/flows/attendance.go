package flows

import (
	"github.com/kmontano/bundy/internal/api"
	"github.com/kmontano/bundy/internal/models"
)

// Purpose tags a pending secondary-verification flow. The wire values are
// what the backend's generateOTP action expects.
type Purpose string

const (
	PurposeEarlyClockIn Purpose = "EARLYCLOCKIN"
	PurposeOvertime     Purpose = "OVERTIME"
)

// PendingFlow records that an action was rejected pending OTP verification.
// Action is the original action tag: verification retries it with the code
// merged in, and the backend correlates server-side. Cleared on success,
// explicit cancel, or session teardown.
type PendingFlow struct {
	Purpose Purpose
	Action  string
}

// ClockOutcome is the result of a clock action. A nil Pending means the
// punch went through; otherwise the caller must run the OTP flow.
type ClockOutcome struct {
	Pending *PendingFlow
}

// Attendance drives the clock-in/clock-out flows.
type Attendance struct {
	c api.Caller
}

func NewAttendance(c api.Caller) Attendance {
	return Attendance{c: c}
}

// Status fetches today's attendance record.
func (f Attendance) Status() (models.TodayStatus, error) {
	r := f.c.Call(api.ActionGetTodayAttendance, nil)
	if !r.Success {
		return models.TodayStatus{}, rejected(r, "Unable to load attendance status")
	}
	return models.TodayStatus{
		ClockedIn:    r.Bool("clockedIn"),
		ClockInTime:  r.Str("clockInTime"),
		ClockOutTime: r.Str("clockOutTime"),
	}, nil
}

// ClockIn punches in. An early punch is not an error: the backend flags it
// and the outcome carries the pending OTP flow instead.
func (f Attendance) ClockIn() (ClockOutcome, error) {
	return f.clock(api.ActionClockIn, PurposeEarlyClockIn, "Clock in failed")
}

// ClockOut punches out, with overtime as the follow-up case.
func (f Attendance) ClockOut() (ClockOutcome, error) {
	return f.clock(api.ActionClockOut, PurposeOvertime, "Clock out failed")
}

func (f Attendance) clock(action string, purpose Purpose, fallback string) (ClockOutcome, error) {
	r := f.c.Call(action, nil)
	if r.Success {
		return ClockOutcome{}, nil
	}
	if r.NeedsFollowUp() {
		return ClockOutcome{Pending: &PendingFlow{Purpose: purpose, Action: action}}, nil
	}
	return ClockOutcome{}, rejected(r, fallback)
}

// RequestEarlyClockIn files an approval request for punching in before the
// shift starts. One-shot; the admin decides out of band.
func (f Attendance) RequestEarlyClockIn(notes string) error {
	return f.request(api.ActionRequestEarlyClockIn, notes, "Early clock-in request failed")
}

// RequestOvertime files an approval request for working past the shift.
func (f Attendance) RequestOvertime(notes string) error {
	return f.request(api.ActionRequestOvertime, notes, "Overtime request failed")
}

func (f Attendance) request(action, notes, fallback string) error {
	payload := map[string]any{}
	if notes != "" {
		payload["notes"] = notes
	}
	r := f.c.Call(action, payload)
	if !r.Success {
		return rejected(r, fallback)
	}
	return nil
}
