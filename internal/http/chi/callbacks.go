package chi

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/callback-inbox/callback"
	"github.com/marcelsud/callback-inbox/ingest"
)

// DefaultMaxBodyBytes is the largest callback body accepted
const DefaultMaxBodyBytes = 10 << 20

// Ingester is the ingestion pipeline seen from the HTTP layer
type Ingester interface {
	Ingest(ctx context.Context, req ingest.Request) (ingest.Result, error)
	Forward(res ingest.Result)
}

/* handleCallback serves ANY /callback/{rootPath}/*
 * The response is written and flushed before forwarding is scheduled,
 * so forwarding can never delay or change what the caller receives
 */
func handleCallback(pipeline Ingester, maxBodyBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rootPath := chi.URLParam(r, "rootPath")
		callbackPath := chi.URLParam(r, "*")
		if rootPath == "" || callbackPath == "" {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "receiver not found"})
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		body, err := io.ReadAll(r.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "payload too large"})
				return
			}
			badRequest(w, "failed to read request body")
			return
		}

		res, err := pipeline.Ingest(r.Context(), ingest.Request{
			RootPath:     rootPath,
			CallbackPath: callbackPath,
			Context:      captureRequest(r, body),
		})
		if err != nil {
			if errors.Is(err, callback.ErrReceiverNotFound) {
				writeJSON(w, http.StatusNotFound, errorResponse{Error: "receiver not found"})
				return
			}
			logger := httplog.LogEntry(r.Context())
			logger.Error().Err(err).Str("root_path", rootPath).Str("callback_path", callbackPath).Msg("ingesting callback")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
			return
		}

		writeRendered(w, res.Response)
		if err := http.NewResponseController(w).Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
			logger := httplog.LogEntry(r.Context())
			logger.Warn().Err(err).Int64("message_id", res.Message.ID).Msg("flushing callback response")
		}

		pipeline.Forward(res)
	}
}

func writeRendered(w http.ResponseWriter, res callback.Response) {
	for name, value := range res.Headers {
		w.Header().Set(name, value)
	}
	w.WriteHeader(res.Status)
	_, _ = w.Write(res.Body)
}

/* captureRequest snapshots an inbound request
 * Header names are lower-cased and repeated values joined with ", "
 * Host lives outside r.Header in net/http, so it is added back from r.Host
 */
func captureRequest(r *http.Request, body []byte) callback.RequestContext {
	headers := make(map[string]string, len(r.Header)+1)
	for name, values := range r.Header {
		headers[strings.ToLower(name)] = strings.Join(values, ", ")
	}
	if r.Host != "" {
		headers["host"] = r.Host
	}

	return callback.RequestContext{
		Method:    r.Method,
		Headers:   headers,
		Body:      string(body),
		Query:     r.URL.Query(),
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	}
}

// clientIP strips the port from RemoteAddr; RealIP has already applied proxy headers
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
