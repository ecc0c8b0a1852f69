package flows

import "github.com/kmontano/bundy/internal/api"

type otpInput struct {
	Code string `validate:"required,len=6,numeric"`
}

// OTP completes a pending flow. While a flow is pending, a fresh code can
// be requested any number of times; each request stands alone.
type OTP struct {
	c api.Caller
}

func NewOTP(c api.Caller) OTP {
	return OTP{c: c}
}

// RequestCode asks the backend to mail a new OTP for the pending purpose.
func (f OTP) RequestCode(p PendingFlow) error {
	r := f.c.Call(api.ActionGenerateOTP, map[string]any{"purpose": string(p.Purpose)})
	if !r.Success {
		return rejected(r, "Failed to send OTP")
	}
	return nil
}

// Verify retries the pending action with the code attached. The code must
// be exactly six decimal digits; the backend matches it to the pending
// request by action and session, so the client holds no correlation id.
func (f OTP) Verify(p PendingFlow, code string) error {
	if fault := check(otpInput{Code: code}); fault != nil {
		return fault
	}

	r := f.c.Call(p.Action, map[string]any{"otp": code})
	if !r.Success {
		return rejected(r, "Invalid OTP")
	}
	return nil
}
