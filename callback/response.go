package callback

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const (
	DefaultResponseStatus = http.StatusOK
	DefaultAckMessage     = "callback received"
)

// header names are tokens: no separators, spaces or control characters
const headerNameForbidden = "\x00\t\r\n :()<>@,;\\\"/[]?={}"

// DefaultResponseHeaders returns the headers sent when a receiver has no header override
func DefaultResponseHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

/* ResponseConfig is the response override of a receiver
 * Zero values mean "use the default": status 200, JSON content type, acknowledgment body
 */
type ResponseConfig struct {
	Status  int
	Headers map[string]string
	Body    json.RawMessage // JSON document, empty when not overridden
}

// Response is what is sent back to the caller of a receiver
type Response struct {
	Status  int
	Headers map[string]string
	Body    []byte
}

type acknowledgment struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID int64  `json:"messageId"`
}

// Validate checks the override before it is stored
func (c ResponseConfig) Validate() error {
	if c.Status != 0 && (c.Status < 100 || c.Status > 599) {
		return fmt.Errorf("%w: response status must be between 100 and 599 (got %d)", ErrInvalidConfig, c.Status)
	}
	if len(c.Body) > 0 && !json.Valid(c.Body) {
		return fmt.Errorf("%w: response body must be valid JSON", ErrInvalidConfig)
	}
	for key, value := range c.Headers {
		if key == "" {
			return fmt.Errorf("%w: response header names cannot be empty", ErrInvalidConfig)
		}
		if strings.ContainsAny(key, headerNameForbidden) || strings.ContainsAny(value, "\x00\r\n") {
			return fmt.Errorf("%w: response header %q contains forbidden characters", ErrInvalidConfig, key)
		}
	}
	return nil
}

// HasBody reports whether the receiver overrides the response body
func (c ResponseConfig) HasBody() bool {
	return len(bytes.TrimSpace(c.Body)) > 0
}

/* Render computes the response for a newly recorded message
 * The message id is injected only in the default acknowledgment, never in an override body
 */
func (c ResponseConfig) Render(messageID int64) Response {
	res := Response{
		Status:  c.Status,
		Headers: DefaultResponseHeaders(),
	}
	if res.Status == 0 {
		res.Status = DefaultResponseStatus
	}
	if c.Headers != nil {
		res.Headers = make(map[string]string, len(c.Headers))
		for k, v := range c.Headers {
			res.Headers[k] = v
		}
	}

	if c.HasBody() {
		var buf bytes.Buffer
		if err := json.Compact(&buf, c.Body); err != nil {
			res.Body = []byte(c.Body)
		} else {
			res.Body = buf.Bytes()
		}
		return res
	}

	// marshaling a struct of plain fields cannot fail
	res.Body, _ = json.Marshal(acknowledgment{
		Success:   true,
		Message:   DefaultAckMessage,
		MessageID: messageID,
	})
	return res
}
