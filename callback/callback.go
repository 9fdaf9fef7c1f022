package callback

import "time"

/* Entities of the callback inbox
 * They use value semantics: they represent data, not behavior
 */

// Application groups receivers under a generated root path
type Application struct {
	ID        int64
	Name      string
	RootPath  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Receiver is a registered callback URL: /callback/{RootPath}/{Path}
type Receiver struct {
	ID          int64
	AppID       int64
	RootPath    string // root path of the owning application, filled by joins
	Name        string
	Path        string
	AutoForward bool
	Response    ResponseConfig
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ForwardTarget is a downstream URL messages of a receiver are replayed to
type ForwardTarget struct {
	ID         int64
	ReceiverID int64
	Name       string
	URL        string
	Enabled    bool
	CreatedAt  time.Time
}

/* Message is the immutable record of one inbound request
 * It is never updated once stored: write-once, read-many, delete-only
 */
type Message struct {
	ID         int64
	ReceiverID int64
	Method     string
	Headers    map[string]string
	Body       string
	Query      map[string][]string
	IP         string
	UserAgent  string
	ReceivedAt time.Time
}

// ForwardLog is the immutable record of one replay attempt of a message to a target
type ForwardLog struct {
	ID           int64
	MessageID    int64
	TargetID     int64
	Status       ForwardStatus
	ResponseCode *int // nil when no HTTP response was received
	ResponseBody *string
	Error        *string
	ForwardedAt  time.Time
}

// RequestContext is everything captured from an inbound request before it is recorded
type RequestContext struct {
	Method    string
	Headers   map[string]string
	Body      string
	Query     map[string][]string
	IP        string
	UserAgent string
}

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

// Page selects a window of a listing ordered newest first
type Page struct {
	Limit  int
	Offset int
}

// Normalize applies the default limit and clamps out of range values
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// TargetUpdate replaces a target's name and URL; a nil Enabled keeps the current flag
type TargetUpdate struct {
	Name    string
	URL     string
	Enabled *bool
}
