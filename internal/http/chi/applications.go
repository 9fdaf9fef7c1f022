package chi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/marcelsud/callback-inbox/callback"
)

/* HTTP layer DTOs for the management API
 * Separate from domain entities to avoid leaking internal structure
 */

type applicationRequest struct {
	Name string `json:"name"`
}

type applicationResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	RootPath     string    `json:"root_path"`
	CallbackBase string    `json:"callback_base"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type receiverRequest struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type responseConfigBody struct {
	Status  int               `json:"status,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    json.RawMessage   `json:"body,omitempty"`
}

type receiverUpdateRequest struct {
	Name        string              `json:"name"`
	Path        string              `json:"path"`
	AutoForward bool                `json:"auto_forward"`
	Response    *responseConfigBody `json:"response"`
}

type receiverResponse struct {
	ID          int64              `json:"id"`
	AppID       int64              `json:"app_id"`
	Name        string             `json:"name"`
	Path        string             `json:"path"`
	URL         string             `json:"url,omitempty"`
	AutoForward bool               `json:"auto_forward"`
	Response    responseConfigBody `json:"response"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type toggleRequest struct {
	Enabled *bool `json:"enabled"`
}

type targetRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type targetUpdateRequest struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Enabled *bool  `json:"enabled"`
}

type targetResponse struct {
	ID         int64     `json:"id"`
	ReceiverID int64     `json:"receiver_id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"created_at"`
}

func callbackBase(rootPath string) string {
	return "/callback/" + rootPath
}

func toApplicationResponse(app callback.Application) applicationResponse {
	return applicationResponse{
		ID:           app.ID,
		Name:         app.Name,
		RootPath:     app.RootPath,
		CallbackBase: callbackBase(app.RootPath),
		CreatedAt:    app.CreatedAt,
		UpdatedAt:    app.UpdatedAt,
	}
}

func toReceiverResponse(rc callback.Receiver) receiverResponse {
	res := receiverResponse{
		ID:          rc.ID,
		AppID:       rc.AppID,
		Name:        rc.Name,
		Path:        rc.Path,
		AutoForward: rc.AutoForward,
		Response: responseConfigBody{
			Status:  rc.Response.Status,
			Headers: rc.Response.Headers,
			Body:    rc.Response.Body,
		},
		CreatedAt: rc.CreatedAt,
		UpdatedAt: rc.UpdatedAt,
	}
	if rc.RootPath != "" {
		res.URL = callbackBase(rc.RootPath) + "/" + rc.Path
	}
	return res
}

func toTargetResponse(t callback.ForwardTarget) targetResponse {
	return targetResponse{
		ID:         t.ID,
		ReceiverID: t.ReceiverID,
		Name:       t.Name,
		URL:        t.URL,
		Enabled:    t.Enabled,
		CreatedAt:  t.CreatedAt,
	}
}

// postApplication handles POST /v1/applications
func postApplication(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req applicationRequest
		if err := decodeJSON(r, &req); err != nil {
			badRequest(w, "invalid request body")
			return
		}
		app, err := service.CreateApplication(r.Context(), req.Name)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toApplicationResponse(app))
	}
}

func getApplications(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apps, err := service.Applications(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		result := make([]applicationResponse, 0, len(apps))
		for _, app := range apps {
			result = append(result, toApplicationResponse(app))
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// putApplication handles PUT /v1/applications/{id}; only the name can change
func putApplication(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid application id")
			return
		}
		var req applicationRequest
		if err := decodeJSON(r, &req); err != nil {
			badRequest(w, "invalid request body")
			return
		}
		app, err := service.RenameApplication(r.Context(), id, req.Name)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toApplicationResponse(app))
	}
}

func getApplication(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid application id")
			return
		}
		app, err := service.Application(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toApplicationResponse(app))
	}
}

// deleteApplication removes the application with its receivers, targets, messages and logs
func deleteApplication(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid application id")
			return
		}
		if err := service.DeleteApplication(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// postReceiver handles POST /v1/applications/{id}/receivers
func postReceiver(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appID, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid application id")
			return
		}
		var req receiverRequest
		if err := decodeJSON(r, &req); err != nil {
			badRequest(w, "invalid request body")
			return
		}
		rc, err := service.CreateReceiver(r.Context(), appID, req.Name, req.Path)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toReceiverResponse(rc))
	}
}

// getReceivers handles GET /v1/applications/{id}/receivers
func getReceivers(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appID, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid application id")
			return
		}
		receivers, err := service.Receivers(r.Context(), appID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		result := make([]receiverResponse, 0, len(receivers))
		for _, rc := range receivers {
			result = append(result, toReceiverResponse(rc))
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func getReceiver(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid receiver id")
			return
		}
		rc, err := service.Receiver(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toReceiverResponse(rc))
	}
}

// putReceiver handles PUT /v1/receivers/{id}; omitting "response" keeps the stored override
func putReceiver(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid receiver id")
			return
		}
		var req receiverUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			badRequest(w, "invalid request body")
			return
		}
		update := callback.ReceiverUpdate{
			Name:        req.Name,
			Path:        req.Path,
			AutoForward: req.AutoForward,
		}
		if req.Response != nil {
			update.Response = &callback.ResponseConfig{
				Status:  req.Response.Status,
				Headers: req.Response.Headers,
				Body:    req.Response.Body,
			}
		}
		rc, err := service.ConfigureReceiver(r.Context(), id, update)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toReceiverResponse(rc))
	}
}

// putAutoForward handles PUT /v1/receivers/{id}/auto-forward
func putAutoForward(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid receiver id")
			return
		}
		var req toggleRequest
		if err := decodeJSON(r, &req); err != nil || req.Enabled == nil {
			badRequest(w, `body must be {"enabled": true|false}`)
			return
		}
		if err := service.SetAutoForward(r.Context(), id, *req.Enabled); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteReceiver(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid receiver id")
			return
		}
		if err := service.DeleteReceiver(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// postTarget handles POST /v1/receivers/{id}/targets
func postTarget(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		receiverID, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid receiver id")
			return
		}
		var req targetRequest
		if err := decodeJSON(r, &req); err != nil {
			badRequest(w, "invalid request body")
			return
		}
		t, err := service.CreateForwardTarget(r.Context(), receiverID, req.Name, req.URL)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toTargetResponse(t))
	}
}

func getTargets(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		receiverID, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid receiver id")
			return
		}
		targets, err := service.Targets(r.Context(), receiverID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		result := make([]targetResponse, 0, len(targets))
		for _, t := range targets {
			result = append(result, toTargetResponse(t))
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// putTargetEnabled handles PUT /v1/targets/{id}/enabled
func putTargetEnabled(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid target id")
			return
		}
		var req toggleRequest
		if err := decodeJSON(r, &req); err != nil || req.Enabled == nil {
			badRequest(w, `body must be {"enabled": true|false}`)
			return
		}
		if err := service.SetTargetEnabled(r.Context(), id, *req.Enabled); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// putTarget handles PUT /v1/targets/{id}; omitting "enabled" keeps the current flag
func putTarget(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid target id")
			return
		}
		var req targetUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			badRequest(w, "invalid request body")
			return
		}
		t, err := service.UpdateTarget(r.Context(), id, callback.TargetUpdate{
			Name:    req.Name,
			URL:     req.URL,
			Enabled: req.Enabled,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toTargetResponse(t))
	}
}

func deleteTarget(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid target id")
			return
		}
		if err := service.DeleteTarget(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// getTargetLogs handles GET /v1/targets/{id}/logs
func getTargetLogs(service callback.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			badRequest(w, "invalid target id")
			return
		}
		page, ok := pageParams(r)
		if !ok {
			badRequest(w, "limit and offset must be non-negative integers")
			return
		}
		logs, err := service.TargetForwardLogs(r.Context(), id, page)
		if err != nil {
			writeError(w, r, err)
			return
		}
		result := make([]forwardLogResponse, 0, len(logs))
		for _, l := range logs {
			result = append(result, toForwardLogResponse(l))
		}
		writeJSON(w, http.StatusOK, result)
	}
}
