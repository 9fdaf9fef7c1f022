package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcelsud/callback-inbox/callback"
	"github.com/marcelsud/callback-inbox/fanout"
	"github.com/marcelsud/callback-inbox/forward"
	"github.com/marcelsud/callback-inbox/metrics"
	"github.com/rs/zerolog"
)

/* Pipeline turns one inbound callback request into a stored message
 * RECEIVED -> RESOLVED -> RECORDED -> published -> RESPONDED, then forwarding is scheduled
 * Broadcast and forwarding never change the response the caller gets
 */

// Store is the part of the callback service the pipeline needs
type Store interface {
	Resolve(ctx context.Context, rootPath, callbackPath string) (callback.Receiver, error)
	Record(ctx context.Context, receiverID int64, req callback.RequestContext) (callback.Message, error)
}

// Enqueuer schedules background forwarding
type Enqueuer interface {
	Enqueue(job forward.Job) bool
}

// Request is an inbound callback addressed by its two path parts
type Request struct {
	RootPath     string
	CallbackPath string
	Context      callback.RequestContext
}

// Result is what Ingest produced: the stored message and the response to send
type Result struct {
	Message  callback.Message
	Receiver callback.Receiver
	Response callback.Response
}

type Pipeline struct {
	store       Store
	notifier    fanout.Notifier
	forwards    Enqueuer
	instruments *metrics.Instruments
	logger      zerolog.Logger
}

func NewPipeline(store Store, notifier fanout.Notifier, forwards Enqueuer, instruments *metrics.Instruments, logger zerolog.Logger) *Pipeline {
	if notifier == nil {
		notifier = fanout.Nop{}
	}
	return &Pipeline{
		store:       store,
		notifier:    notifier,
		forwards:    forwards,
		instruments: instruments,
		logger:      logger,
	}
}

/* Ingest resolves, records and broadcasts one request and computes its response
 * Nothing is recorded when resolution fails; nothing is broadcast when recording fails
 */
func (p *Pipeline) Ingest(ctx context.Context, req Request) (Result, error) {
	receiver, err := p.store.Resolve(ctx, req.RootPath, req.CallbackPath)
	if err != nil {
		reason := "storage"
		if errors.Is(err, callback.ErrReceiverNotFound) {
			reason = "not_found"
		} else if errors.Is(err, callback.ErrConfigurationCorrupt) {
			reason = "corrupt_config"
		}
		p.instruments.IngestFailed(ctx, reason)
		return Result{}, err
	}

	m, err := p.store.Record(ctx, receiver.ID, req.Context)
	if err != nil {
		p.instruments.IngestFailed(ctx, "storage")
		return Result{}, fmt.Errorf("ingesting callback: %w", err)
	}
	p.instruments.MessageReceived(ctx, m.Method)

	p.notifier.Publish(receiver.AppID, fanout.EventNewMessage, fanout.NewMessageEvent(m, receiver))

	p.logger.Debug().
		Int64("message_id", m.ID).
		Int64("receiver_id", receiver.ID).
		Str("method", m.Method).
		Msg("callback recorded")

	return Result{
		Message:  m,
		Receiver: receiver,
		Response: receiver.Response.Render(m.ID),
	}, nil
}

// Forward schedules auto-forwarding of an ingested message; call it once the response is flushed
func (p *Pipeline) Forward(res Result) {
	if !res.Receiver.AutoForward || p.forwards == nil {
		return
	}
	if !p.forwards.Enqueue(forward.Job{Message: res.Message}) {
		p.logger.Warn().Int64("message_id", res.Message.ID).Msg("auto-forward not scheduled")
	}
}
