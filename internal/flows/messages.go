package flows

import (
	"github.com/kmontano/bundy/internal/api"
	"github.com/kmontano/bundy/internal/models"
)

// SendRequest is the compose form input. To is either an employee name,
// "Admin", or the broadcast recipient "ALL EMPLOYEES".
type SendRequest struct {
	From string
	To   string `validate:"required"`
	Type string
	Text string `validate:"required"`
}

// Messages drives the in-app message board.
type Messages struct {
	c api.Caller
}

func NewMessages(c api.Caller) Messages {
	return Messages{c: c}
}

// Send delivers one message.
func (f Messages) Send(req SendRequest) error {
	if fault := check(req); fault != nil {
		return fault
	}
	r := f.c.Call(api.ActionSendMessage, map[string]any{
		"from":    req.From,
		"to":      req.To,
		"message": req.Text,
		"type":    req.Type,
	})
	if !r.Success {
		return rejected(r, "Failed to send message")
	}
	return nil
}

// Inbox fetches the messages addressed to the given name.
func (f Messages) Inbox(name string) ([]models.Message, error) {
	r := f.c.Call(api.ActionGetMessages, map[string]any{"employeeName": name})
	if !r.Success {
		return nil, rejected(r, "Unable to load messages")
	}
	var msgs []models.Message
	if err := r.Decode("messages", &msgs); err != nil {
		return nil, rejected(api.Failure(""), "Unable to load messages")
	}

	// The backend returns the whole board; keep only what is addressed to us.
	inbox := msgs[:0]
	for _, m := range msgs {
		if m.To == name {
			inbox = append(inbox, m)
		}
	}
	return inbox, nil
}

// MarkRead acknowledges one message.
func (f Messages) MarkRead(id string) error {
	r := f.c.Call(api.ActionMarkMessageRead, map[string]any{"messageId": id})
	if !r.Success {
		return rejected(r, "Failed to mark message read")
	}
	return nil
}
