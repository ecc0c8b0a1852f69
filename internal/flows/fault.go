package flows

import (
	"errors"

	"github.com/kmontano/bundy/internal/api"
)

// Kind classifies why a flow did not complete.
type Kind int

const (
	// KindValidation means the input never left the client; the message
	// belongs inline next to the offending field.
	KindValidation Kind = iota
	// KindRejected covers everything the endpoint client reported back:
	// business rejections and normalized transport failures alike. Safe to
	// retry by re-invoking the same action.
	KindRejected
)

// Fault is the error type every flow returns.
type Fault struct {
	Kind    Kind
	Message string
}

func (f *Fault) Error() string {
	return f.Message
}

// IsValidation reports whether err is a client-side validation fault.
func IsValidation(err error) bool {
	var f *Fault
	return errors.As(err, &f) && f.Kind == KindValidation
}

// rejected turns a failure result into a fault, surfacing the backend's
// message verbatim when there is one.
func rejected(r api.Result, fallback string) *Fault {
	msg := r.Message
	if msg == "" {
		msg = fallback
	}
	return &Fault{Kind: KindRejected, Message: msg}
}

func invalid(message string) *Fault {
	return &Fault{Kind: KindValidation, Message: message}
}
