package chi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/marcelsud/callback-inbox/callback"
	"github.com/marcelsud/callback-inbox/forward"
	"github.com/marcelsud/callback-inbox/metrics"
)

// Forwarder sends recorded messages to forward targets on demand
type Forwarder interface {
	Dispatch(ctx context.Context, m callback.Message, t callback.ForwardTarget) (callback.ForwardLog, error)
	DispatchAll(ctx context.Context, m callback.Message, targets []callback.ForwardTarget) []forward.Result
	Probe(ctx context.Context, targetURL string) forward.ProbeResult
}

type forwardLogResponse struct {
	ID           int64     `json:"id"`
	MessageID    int64     `json:"message_id"`
	TargetID     int64     `json:"target_id"`
	Status       string    `json:"status"`
	ResponseCode *int      `json:"response_code"`
	ResponseBody *string   `json:"response_body"`
	Error        *string   `json:"error_message"`
	ForwardedAt  time.Time `json:"forwarded_at"`
}

type forwardRequest struct {
	TargetID int64 `json:"target_id"`
}

type forwardResultResponse struct {
	TargetID   int64               `json:"target_id"`
	TargetName string              `json:"target_name"`
	TargetURL  string              `json:"target_url"`
	Log        *forwardLogResponse `json:"log,omitempty"`
	Error      string              `json:"error,omitempty"`
}

type probeRequest struct {
	URL string `json:"url"`
}

func toForwardLogResponse(l callback.ForwardLog) forwardLogResponse {
	return forwardLogResponse{
		ID:           l.ID,
		MessageID:    l.MessageID,
		TargetID:     l.TargetID,
		Status:       l.Status.String(),
		ResponseCode: l.ResponseCode,
		ResponseBody: l.ResponseBody,
		Error:        l.Error,
		ForwardedAt:  l.ForwardedAt,
	}
}

func toForwardResultResponse(res forward.Result) forwardResultResponse {
	out := forwardResultResponse{
		TargetID:   res.Target.ID,
		TargetName: res.Target.Name,
		TargetURL:  res.Target.URL,
	}
	if res.Err != nil {
		out.Error = "forward could not be recorded"
		return out
	}
	l := toForwardLogResponse(res.Log)
	out.Log = &l
	return out
}

/* postForward handles POST /v1/messages/{id}/forward
 * With a target_id only that target is used, even when disabled;
 * without one the message goes to every enabled target of its receiver
 * Forwarding is synchronous and the results are returned
 */
func postForward(service callback.UseCase, forwarder Forwarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid message id")
			return
		}
		var req forwardRequest
		if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
			badRequest(w, "invalid request body")
			return
		}

		m, err := service.Message(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var results []forward.Result
		if req.TargetID != 0 {
			t, err := service.Target(r.Context(), req.TargetID)
			if err != nil {
				writeError(w, r, err)
				return
			}
			if t.ReceiverID != m.ReceiverID {
				badRequest(w, "target does not belong to the message's receiver")
				return
			}
			l, err := forwarder.Dispatch(r.Context(), m, t)
			results = []forward.Result{{Target: t, Log: l, Err: err}}
		} else {
			targets, err := service.Targets(r.Context(), m.ReceiverID)
			if err != nil {
				writeError(w, r, err)
				return
			}
			results = forwarder.DispatchAll(r.Context(), m, targets)
		}

		out := make([]forwardResultResponse, 0, len(results))
		for _, res := range results {
			out = append(out, toForwardResultResponse(res))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// postProbe handles POST /v1/targets/probe
func postProbe(forwarder Forwarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req probeRequest
		if err := decodeJSON(r, &req); err != nil {
			badRequest(w, "invalid request body")
			return
		}
		if err := callback.ValidateTargetURL(req.URL); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, forwarder.Probe(r.Context(), req.URL))
	}
}

func getStats(collector metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := collector.Collect(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, m)
	}
}
