package api

import "encoding/json"

// Result is the uniform envelope every call resolves to, including calls
// that never reached the network. Callers branch on Success and read
// action-specific fields out of Data.
type Result struct {
	Success bool
	Message string
	Data    map[string]json.RawMessage
}

// Failure builds a local failure result with a human-readable message.
func Failure(message string) Result {
	return Result{Success: false, Message: message}
}

// UnmarshalJSON splits the flat response object into the envelope fields
// and the remaining action-specific payload.
func (r *Result) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["success"]; ok {
		if err := json.Unmarshal(raw, &r.Success); err != nil {
			return err
		}
		delete(fields, "success")
	}
	if raw, ok := fields["message"]; ok {
		// A null or non-string message is treated as absent.
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil {
			r.Message = msg
		}
		delete(fields, "message")
	}

	r.Data = fields
	return nil
}

// NeedsFollowUp reports whether the backend rejected the action pending
// secondary verification. Revisions of the backend disagree on the flag
// name, so both are honored.
func (r Result) NeedsFollowUp() bool {
	return r.Bool("requiresOTP") || r.Bool("requiresApproval")
}

// Bool reads a boolean field from the payload, false if absent or not a bool.
func (r Result) Bool(key string) bool {
	raw, ok := r.Data[key]
	if !ok {
		return false
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	return v
}

// Str reads a string field from the payload, "" if absent or not a string.
func (r Result) Str(key string) string {
	raw, ok := r.Data[key]
	if !ok {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}

// Decode unmarshals a payload field into v.
func (r Result) Decode(key string, v any) error {
	raw, ok := r.Data[key]
	if !ok {
		return &MissingFieldError{Key: key}
	}
	return json.Unmarshal(raw, v)
}

// MissingFieldError reports a payload field the backend did not send.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string {
	return "response is missing field " + e.Key
}
