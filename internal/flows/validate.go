package flows

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validationMessages maps StructNamespace + tag onto the message the user
// sees. Anything not listed falls back to a generic notice.
var validationMessages = map[string]string{
	"Credentials.EmployeeID/required":      "Please enter both Employee ID and Password",
	"Credentials.Password/required":        "Please enter both Employee ID and Password",
	"Credentials.Password/len":             "Password must be exactly 12 characters",
	"otpInput.Code/required":               "Invalid OTP format",
	"otpInput.Code/len":                    "Invalid OTP format",
	"otpInput.Code/numeric":                "Invalid OTP format",
	"UseRequest.Item/required":             "Please select an item",
	"UseRequest.Quantity/min":              "Quantity must be between 1 and 50",
	"UseRequest.Quantity/max":              "Quantity must be between 1 and 50",
	"SendRequest.To/required":              "Please select a recipient",
	"SendRequest.Text/required":            "Please enter a message",
	"SetPasswordRequest.TargetID/required": "Please select an employee",
	"SetPasswordRequest.Password/required": "Please enter and confirm password",
	"SetPasswordRequest.Confirm/required":  "Please enter and confirm password",
	"SetPasswordRequest.Password/len":      "Password must be exactly 12 characters",
	"SetPasswordRequest.Confirm/eqfield":   "Passwords do not match",
}

// check runs struct validation and maps the first failure onto a
// user-facing validation fault.
func check(v any) *Fault {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := validationMessages[fe.StructNamespace()+"/"+fe.Tag()]; ok {
			return invalid(msg)
		}
	}
	return invalid("Invalid input")
}
