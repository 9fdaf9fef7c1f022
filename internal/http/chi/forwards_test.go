package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marcelsud/callback-inbox/callback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func echoForwardLog(s *testServer) {
	s.store.On("LogForward", mock.Anything, mock.Anything).Return(func(_ context.Context, l callback.ForwardLog) (callback.ForwardLog, error) {
		l.ID = 900 + l.TargetID
		return l, nil
	})
	s.store.On("Receiver", mock.Anything, mock.Anything).Return(callback.Receiver{AppID: 1}, nil)
}

func TestPostForward_AllEnabledTargets(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer target.Close()

	s := newTestServer(t, 0)
	echoForwardLog(s)
	s.store.On("Message", mock.Anything, int64(42)).Return(callback.Message{ID: 42, ReceiverID: 3, Method: http.MethodPost}, nil)
	s.store.On("Targets", mock.Anything, int64(3)).Return([]callback.ForwardTarget{
		{ID: 4, ReceiverID: 3, URL: target.URL, Enabled: true},
		{ID: 5, ReceiverID: 3, URL: target.URL, Enabled: false},
	}, nil)

	w := s.do(http.MethodPost, "/v1/messages/42/forward", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var res []forwardResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res, 1)
	assert.Equal(t, int64(4), res[0].TargetID)
	require.NotNil(t, res[0].Log)
	assert.Equal(t, http.StatusAccepted, *res[0].Log.ResponseCode)
}

func TestPostForward_SingleTarget(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer target.Close()

	s := newTestServer(t, 0)
	echoForwardLog(s)
	s.store.On("Message", mock.Anything, int64(42)).Return(callback.Message{ID: 42, ReceiverID: 3, Method: http.MethodPost}, nil)
	s.store.On("Target", mock.Anything, int64(5)).Return(callback.ForwardTarget{ID: 5, ReceiverID: 3, URL: target.URL}, nil)

	w := s.do(http.MethodPost, "/v1/messages/42/forward", `{"target_id":5}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var res []forwardResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res, 1)
	assert.Equal(t, int64(905), res[0].Log.ID)
}

func TestPostForward_TargetOfAnotherReceiver(t *testing.T) {
	s := newTestServer(t, 0)
	s.store.On("Message", mock.Anything, int64(42)).Return(callback.Message{ID: 42, ReceiverID: 3}, nil)
	s.store.On("Target", mock.Anything, int64(7)).Return(callback.ForwardTarget{ID: 7, ReceiverID: 8}, nil)

	w := s.do(http.MethodPost, "/v1/messages/42/forward", `{"target_id":7}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostForward_UnknownMessage(t *testing.T) {
	s := newTestServer(t, 0)
	s.store.On("Message", mock.Anything, int64(42)).Return(callback.Message{}, callback.ErrNotFound)

	w := s.do(http.MethodPost, "/v1/messages/42/forward", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostProbe(t *testing.T) {
	target := httptest.NewServer(http.NotFoundHandler())
	defer target.Close()
	s := newTestServer(t, 0)

	w := s.do(http.MethodPost, "/v1/targets/probe", `{"url":"ftp://example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/v1/targets/probe", `{"url":"`+target.URL+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Reachable  bool `json:"reachable"`
		StatusCode int  `json:"status_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Reachable)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestGetStats(t *testing.T) {
	s := newTestServer(t, 0)
	s.store.On("ForwardStats", mock.Anything).Return(map[string]int64{"success": 3, "error": 1}, nil)

	w := s.do(http.MethodGet, "/v1/stats", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Viewers       int64            `json:"viewers"`
		ForwardCounts map[string]int64 `json:"forward_counts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, int64(3), res.ForwardCounts["success"])
	assert.Zero(t, res.Viewers)
}
