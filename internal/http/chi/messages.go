package chi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/marcelsud/callback-inbox/callback"
	"github.com/marcelsud/callback-inbox/callback/payload"
)

type messageResponse struct {
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
}

type messageDetailResponse struct {
	messageResponse
	ForwardLogs []forwardLogResponse `json:"forward_logs"`
}

type clearResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

func toMessageResponse(m callback.Message) messageResponse {
	body, encoding := payload.Text(m.Body)
	return messageResponse{
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
	}
}

func toMessageList(messages []callback.Message) []messageResponse {
	out := make([]messageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toMessageResponse(m))
	}
	return out
}

// pageParams reads ?limit=&offset=; absent values fall back to the defaults
func pageParams(r *http.Request) (callback.Page, bool) {
	var page callback.Page
	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, false
		}
		page.Limit = n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, false
		}
		page.Offset = n
	}
	return page, true
}

// getMessage handles GET /v1/messages/{id} and includes the message's forward history
func getMessage(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid message id")
			return
		}
		m, err := service.Message(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		logs, err := service.ForwardLogs(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		res := messageDetailResponse{
			messageResponse: toMessageResponse(m),
			ForwardLogs:     make([]forwardLogResponse, 0, len(logs)),
		}
		for _, l := range logs {
			res.ForwardLogs = append(res.ForwardLogs, toForwardLogResponse(l))
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// getReceiverMessages handles GET /v1/receivers/{id}/messages
func getReceiverMessages(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid receiver id")
			return
		}
		page, ok := pageParams(r)
		if !ok {
			badRequest(w, "limit and offset must be non-negative integers")
			return
		}
		messages, err := service.Messages(r.Context(), id, page)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toMessageList(messages))
	}
}

// getApplicationMessages handles GET /v1/applications/{id}/messages
func getApplicationMessages(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid application id")
			return
		}
		page, ok := pageParams(r)
		if !ok {
			badRequest(w, "limit and offset must be non-negative integers")
			return
		}
		messages, err := service.ApplicationMessages(r.Context(), id, page)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toMessageList(messages))
	}
}

func deleteMessage(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid message id")
			return
		}
		if err := service.DeleteMessage(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// clearMessages handles DELETE /v1/receivers/{id}/messages
func clearMessages(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid receiver id")
			return
		}
		n, err := service.ClearMessages(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, clearResponse{DeletedCount: n})
	}
}
