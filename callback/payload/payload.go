package payload

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"unicode/utf8"
)

// EncodingBase64 marks a body that is not valid UTF-8 and was base64 encoded for display
const EncodingBase64 = "base64"

// ForReplay prepares a stored message body for forwarding
// A body that parses as JSON is re-encoded compactly and reported as JSON,
// anything else is returned byte for byte
func ForReplay(body string) ([]byte, bool) {
	if len(bytes.TrimSpace([]byte(body))) == 0 {
		return []byte(body), false
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(body)); err != nil {
		return []byte(body), false
	}
	return buf.Bytes(), true
}

// Snapshot serializes a forward target's response body for the forward log
// JSON responses are kept as compact JSON, anything else becomes a JSON string
func Snapshot(b []byte) string {
	if len(bytes.TrimSpace(b)) > 0 {
		var buf bytes.Buffer
		if err := json.Compact(&buf, b); err == nil {
			return buf.String()
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// encoding a string never fails; invalid UTF-8 is replaced
	_ = enc.Encode(string(b))
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// Text renders a stored body for a JSON document
// Valid UTF-8 is returned as is with an empty encoding; anything else is base64 encoded
func Text(body string) (string, string) {
	if utf8.ValidString(body) {
		return body, ""
	}
	return base64.StdEncoding.EncodeToString([]byte(body)), EncodingBase64
}
