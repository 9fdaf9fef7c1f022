package fanout

import (
	"strconv"
	"time"

	"github.com/marcelsud/callback-inbox/callback"
	"github.com/marcelsud/callback-inbox/callback/payload"
)

// Server to client events
const (
	EventNewMessage    = "new-message"
	EventForwardResult = "forward-result"
	EventJoinedApp     = "joined-app"
	EventJoinAppError  = "join-app-error"
	EventPong          = "pong"
)

// Client to server events
const (
	EventJoinApp  = "join-app"
	EventLeaveApp = "leave-app"
	EventPing     = "ping"
)

// NewMessage is the payload of new-message
type NewMessage struct {
	ID           int64               `json:"id"`
	ReceiverID   int64               `json:"receiver_id"`
	Method       string              `json:"method"`
	Headers      map[string]string   `json:"headers"`
	Body         string              `json:"body"`
	BodyEncoding string              `json:"body_encoding,omitempty"`
	Query        map[string][]string `json:"query_params"`
	IP           string              `json:"ip_address"`
	UserAgent    string              `json:"user_agent"`
	ReceivedAt   time.Time           `json:"received_at"`
	CallbackName string              `json:"callback_name"`
	CallbackPath string              `json:"callback_path"`
}

// ForwardResult is the payload of forward-result
type ForwardResult struct {
	ID           int64     `json:"id"`
	MessageID    int64     `json:"message_id"`
	TargetID     int64     `json:"forward_url_id"`
	Status       string    `json:"status"`
	ResponseCode *int      `json:"response_code"`
	ResponseBody *string   `json:"response_body"`
	Error        *string   `json:"error_message"`
	ForwardedAt  time.Time `json:"forwarded_at"`
	ForwardName  string    `json:"forward_name"`
	ForwardURL   string    `json:"forward_url"`
}

// JoinedApp acknowledges a join-app request
type JoinedApp struct {
	AppID    int64  `json:"appId"`
	RoomName string `json:"roomName"`
}

// JoinAppError rejects a join-app request
type JoinAppError struct {
	Error string `json:"error"`
}

func NewMessageEvent(m callback.Message, r callback.Receiver) NewMessage {
	body, encoding := payload.Text(m.Body)
	return NewMessage{
		ID:           m.ID,
		ReceiverID:   m.ReceiverID,
		Method:       m.Method,
		Headers:      m.Headers,
		Body:         body,
		BodyEncoding: encoding,
		Query:        m.Query,
		IP:           m.IP,
		UserAgent:    m.UserAgent,
		ReceivedAt:   m.ReceivedAt,
		CallbackName: r.Name,
		CallbackPath: r.Path,
	}
}

func NewForwardResultEvent(l callback.ForwardLog, t callback.ForwardTarget) ForwardResult {
	return ForwardResult{
		ID:           l.ID,
		MessageID:    l.MessageID,
		TargetID:     l.TargetID,
		Status:       l.Status.String(),
		ResponseCode: l.ResponseCode,
		ResponseBody: l.ResponseBody,
		Error:        l.Error,
		ForwardedAt:  l.ForwardedAt,
		ForwardName:  t.Name,
		ForwardURL:   t.URL,
	}
}

// RoomName is the name reported to viewers for an application's subscription
func RoomName(appID int64) string {
	return "app-" + strconv.FormatInt(appID, 10)
}
