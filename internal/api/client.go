package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Caller issues a single backend action. Flows depend on this interface so
// tests can substitute a fake.
type Caller interface {
	Call(action string, payload map[string]any) Result
}

// TokenSource supplies the current session token, "" when anonymous.
type TokenSource interface {
	Token() string
}

// Client talks to the one configured backend endpoint. Every action is a
// POST of a flat JSON object; every outcome, including transport failures,
// comes back as a Result. Call never returns an error value; that is the
// contract the flows are written against.
type Client struct {
	endpoint string
	http     *http.Client
	tokens   TokenSource
	log      *zap.Logger
}

// NewClient builds a client for the given endpoint. An empty endpoint is
// allowed: every call then fails fast with a configuration message and no
// network I/O. The timeout bounds the whole request (default 30s from
// config); there are no retries.
func NewClient(endpoint string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		tokens:   tokens,
		log:      zap.L(),
	}
}

// Call issues one action against the backend. The session token is attached
// to everything except the login action itself.
func (c *Client) Call(action string, payload map[string]any) Result {
	if c.endpoint == "" {
		return Failure("System not configured. Please contact admin.")
	}

	body := map[string]any{"action": action}
	for k, v := range payload {
		body[k] = v
	}
	if action != ActionLogin && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			body["sessionToken"] = token
		}
	}

	requestID := uuid.NewString()
	started := time.Now()

	encoded, err := json.Marshal(body)
	if err != nil {
		c.log.Warn("request encode failed", zap.String("action", action), zap.Error(err))
		return Failure("System error: could not encode request")
	}

	resp, err := c.http.Post(c.endpoint, "application/json", bytes.NewReader(encoded))
	if err != nil {
		c.log.Warn("transport failure",
			zap.String("action", action),
			zap.String("request_id", requestID),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		return Failure(transportMessage(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Failure("Cannot connect to server. Please try again.")
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		c.log.Warn("malformed response",
			zap.String("action", action),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
		)
		return Failure("Unexpected response from server. Please try again.")
	}

	c.log.Debug("endpoint call",
		zap.String("action", action),
		zap.String("request_id", requestID),
		zap.Duration("elapsed", time.Since(started)),
		zap.Bool("success", result.Success),
	)
	return result
}

// Ping checks that the endpoint answers with a well-formed envelope. The
// session probe action is used because it is cheap and side-effect free; a
// failure envelope (no token attached) still proves the backend is up.
func (c *Client) Ping() error {
	if c.endpoint == "" {
		return errors.New("no endpoint configured")
	}

	encoded, _ := json.Marshal(map[string]any{"action": ActionCheckSession})
	resp, err := c.http.Post(c.endpoint, "application/json", bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return errors.New("endpoint answered with a malformed response")
	}
	return nil
}

// transportMessage maps a transport error onto the message the user sees.
func transportMessage(err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "Connection timeout. Please try again."
	}
	return "Cannot connect to server. Check your internet."
}
