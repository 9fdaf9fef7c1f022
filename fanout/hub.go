package fanout

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

/* Hub keeps an explicit registry of viewer connections
 * Each connection is subscribed to at most one application at a time
 * Publishing only enqueues; a single loop started by Run does the delivery
 */

const defaultBuffer = 256

// Subscriber is one viewer connection
type Subscriber interface {
	ID() string
	Emit(event string, payload any) error
}

type envelope struct {
	appID   int64
	event   string
	payload any
}

type subscription struct {
	sub   Subscriber
	appID int64
}

type Hub struct {
	mu    sync.RWMutex
	conns map[string]subscription
	apps  map[int64]map[string]Subscriber

	broadcast chan envelope
	logger    zerolog.Logger
}

// NewHub creates a hub whose broadcast queue holds buffer events
func NewHub(logger zerolog.Logger, buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		conns:     make(map[string]subscription),
		apps:      make(map[int64]map[string]Subscriber),
		broadcast: make(chan envelope, buffer),
		logger:    logger,
	}
}

// Join subscribes the connection to appID, leaving any previous application first
func (h *Hub) Join(sub Subscriber, appID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := sub.ID()
	if current, ok := h.conns[id]; ok {
		h.detach(id, current.appID)
	}
	h.conns[id] = subscription{sub: sub, appID: appID}
	if h.apps[appID] == nil {
		h.apps[appID] = make(map[string]Subscriber)
	}
	h.apps[appID][id] = sub
}

// Leave unsubscribes the connection when it is subscribed to appID
func (h *Hub) Leave(connID string, appID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	current, ok := h.conns[connID]
	if !ok || current.appID != appID {
		return
	}
	h.detach(connID, appID)
	delete(h.conns, connID)
}

// Remove forgets the connection entirely
func (h *Hub) Remove(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	current, ok := h.conns[connID]
	if !ok {
		return
	}
	h.detach(connID, current.appID)
	delete(h.conns, connID)
}

// detach must be called with mu held
func (h *Hub) detach(connID string, appID int64) {
	subs := h.apps[appID]
	delete(subs, connID)
	if len(subs) == 0 {
		delete(h.apps, appID)
	}
}

// Subscribed returns the application the connection is subscribed to
func (h *Hub) Subscribed(connID string) (int64, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	current, ok := h.conns[connID]
	return current.appID, ok
}

// Viewers returns the number of subscribed connections
func (h *Hub) Viewers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.conns)
}

// ViewersOf returns the number of connections subscribed to appID
func (h *Hub) ViewersOf(appID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.apps[appID])
}

/* Publish queues an event for the application's viewers
 * It never blocks: with no viewers it is a no-op, and when the queue is full the event is dropped
 */
func (h *Hub) Publish(appID int64, event string, payload any) {
	if h.ViewersOf(appID) == 0 {
		return
	}
	select {
	case h.broadcast <- envelope{appID: appID, event: event, payload: payload}:
	default:
		h.logger.Warn().Int64("app_id", appID).Str("event", event).Msg("broadcast queue full, dropping event")
	}
}

// Run delivers queued events until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

func (h *Hub) deliver(msg envelope) {
	h.mu.RLock()
	subs := make([]Subscriber, 0, len(h.apps[msg.appID]))
	for _, sub := range h.apps[msg.appID] {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		h.emit(sub, msg)
	}
}

// emit isolates one subscriber's failure from the others
func (h *Hub) emit(sub Subscriber, msg envelope) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().Interface("panic", r).Str("conn_id", sub.ID()).Str("event", msg.event).Msg("emit panicked")
		}
	}()
	if err := sub.Emit(msg.event, msg.payload); err != nil {
		h.logger.Warn().Err(err).Str("conn_id", sub.ID()).Str("event", msg.event).Msg("emit failed")
	}
}
