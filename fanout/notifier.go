package fanout

import (
	"github.com/rs/zerolog"
)

// Notifier delivers an event to everything subscribed to an application
// Publish must never block the caller for long and never fail it
type Notifier interface {
	Publish(appID int64, event string, payload any)
}

// Notifiers fans one publish out to several sinks
type Notifiers struct {
	sinks  []Notifier
	logger zerolog.Logger
}

func NewNotifiers(logger zerolog.Logger, sinks ...Notifier) *Notifiers {
	return &Notifiers{sinks: sinks, logger: logger}
}

// Publish hands the event to every sink; a panicking sink does not stop the others
func (n *Notifiers) Publish(appID int64, event string, payload any) {
	for _, sink := range n.sinks {
		n.publish(sink, appID, event, payload)
	}
}

func (n *Notifiers) publish(sink Notifier, appID int64, event string, payload any) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error().
				Interface("panic", r).
				Int64("app_id", appID).
				Str("event", event).
				Msg("notifier panicked")
		}
	}()
	sink.Publish(appID, event, payload)
}

// Nop discards every event
type Nop struct{}

func (Nop) Publish(int64, string, any) {}
