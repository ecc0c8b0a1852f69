package flows

import (
	"github.com/kmontano/bundy/internal/api"
	"github.com/kmontano/bundy/internal/models"
)

// Payslip fetches the caller's own pay summary.
type Payslip struct {
	c api.Caller
}

func NewPayslip(c api.Caller) Payslip {
	return Payslip{c: c}
}

// Own returns the payslip for the logged-in employee. The backend decides
// whose payslip that is from the session token.
func (f Payslip) Own() (models.Payslip, error) {
	r := f.c.Call(api.ActionGetPayslip, nil)
	if !r.Success {
		return models.Payslip{}, rejected(r, "Payslip will be available at pay period end")
	}
	var slip models.Payslip
	if err := r.Decode("payslip", &slip); err != nil {
		return models.Payslip{}, rejected(api.Failure(""), "Payslip data not available")
	}
	return slip, nil
}
