package forward_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/marcelsud/callback-inbox/callback"
	"github.com/marcelsud/callback-inbox/callback/mocks"
	"github.com/marcelsud/callback-inbox/fanout"
	"github.com/marcelsud/callback-inbox/forward"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type published struct {
	appID   int64
	event   string
	payload any
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []published
}

func (n *recordingNotifier) Publish(appID int64, event string, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, published{appID: appID, event: event, payload: payload})
}

func (n *recordingNotifier) all() []published {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]published(nil), n.events...)
}

// echoLog makes the store mock return the log it was given, with an id
func echoLog(store *mocks.UseCase) {
	store.On("LogForward", mock.Anything, mock.Anything).Return(func(_ context.Context, l callback.ForwardLog) (callback.ForwardLog, error) {
		l.ID = 100 + l.TargetID
		return l, nil
	})
}

func testMessage() callback.Message {
	return callback.Message{
		ID:         42,
		ReceiverID: 3,
		Method:     http.MethodPost,
		Headers: map[string]string{
			"host":            "inbox.example.com",
			"content-length":  "999",
			"connection":      "keep-alive",
			"accept-encoding": "br",
			"x-signature":     "abc",
		},
		Body:  "{ \"event\" : \"paid\" }",
		Query: map[string][]string{"tag": {"x", "y"}},
	}
}

func TestDispatch_Success(t *testing.T) {
	ctx := context.Background()

	var got *http.Request
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{ "ok": true }`))
	}))
	defer srv.Close()

	store := mocks.NewUseCase(t)
	echoLog(store)
	store.On("Receiver", mock.Anything, int64(3)).Return(callback.Receiver{ID: 3, AppID: 9}, nil)
	notifier := &recordingNotifier{}
	d := forward.NewDispatcher(store, notifier, zerolog.Nop())

	target := callback.ForwardTarget{ID: 1, Name: "local", URL: srv.URL + "/hook?static=1", Enabled: true}
	l, err := d.Dispatch(ctx, testMessage(), target)

	require.NoError(t, err)
	assert.Equal(t, callback.ForwardSuccess, l.Status)
	require.NotNil(t, l.ResponseCode)
	assert.Equal(t, http.StatusCreated, *l.ResponseCode)
	assert.Equal(t, `{"ok":true}`, *l.ResponseBody)
	assert.Nil(t, l.Error)

	require.NotNil(t, got)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/hook", got.URL.Path)
	assert.Equal(t, "1", got.URL.Query().Get("static"))
	assert.Equal(t, []string{"x", "y"}, got.URL.Query()["tag"])
	assert.Equal(t, "abc", got.Header.Get("X-Signature"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.NotEqual(t, "br", got.Header.Get("Accept-Encoding"))
	assert.NotEqual(t, "inbox.example.com", got.Host)
	assert.Equal(t, `{"event":"paid"}`, gotBody)
	assert.Equal(t, int64(len(gotBody)), got.ContentLength)

	events := notifier.all()
	require.Len(t, events, 1)
	assert.Equal(t, int64(9), events[0].appID)
	assert.Equal(t, fanout.EventForwardResult, events[0].event)
	result, ok := events[0].payload.(fanout.ForwardResult)
	require.True(t, ok)
	assert.Equal(t, "local", result.ForwardName)
	assert.Equal(t, int64(42), result.MessageID)
	assert.Equal(t, "success", result.Status)
}

func TestDispatch_ServerErrorIsStillSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := mocks.NewUseCase(t)
	echoLog(store)
	store.On("Receiver", mock.Anything, int64(3)).Return(callback.Receiver{AppID: 9}, nil)
	d := forward.NewDispatcher(store, &recordingNotifier{}, zerolog.Nop())

	l, err := d.Dispatch(context.Background(), testMessage(), callback.ForwardTarget{ID: 1, URL: srv.URL})

	require.NoError(t, err)
	assert.Equal(t, callback.ForwardSuccess, l.Status)
	assert.Equal(t, http.StatusInternalServerError, *l.ResponseCode)
	assert.Equal(t, `"boom\n"`, *l.ResponseBody)
}

func TestDispatch_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	store := mocks.NewUseCase(t)
	echoLog(store)
	store.On("Receiver", mock.Anything, int64(3)).Return(callback.Receiver{AppID: 9}, nil)
	notifier := &recordingNotifier{}
	d := forward.NewDispatcher(store, notifier, zerolog.Nop())

	l, err := d.Dispatch(context.Background(), testMessage(), callback.ForwardTarget{ID: 1, URL: url})

	require.NoError(t, err)
	assert.Equal(t, callback.ForwardError, l.Status)
	assert.Nil(t, l.ResponseCode)
	assert.Nil(t, l.ResponseBody)
	require.NotNil(t, l.Error)
	assert.True(t, strings.HasPrefix(*l.Error, "network error: "))
	assert.Len(t, notifier.all(), 1)
}

func TestDispatch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	store := mocks.NewUseCase(t)
	echoLog(store)
	store.On("Receiver", mock.Anything, int64(3)).Return(callback.Receiver{AppID: 9}, nil)
	d := forward.NewDispatcher(store, &recordingNotifier{}, zerolog.Nop(), forward.WithTimeout(50*time.Millisecond))

	l, err := d.Dispatch(context.Background(), testMessage(), callback.ForwardTarget{ID: 1, URL: srv.URL})

	require.NoError(t, err)
	assert.Equal(t, callback.ForwardError, l.Status)
	assert.Contains(t, *l.Error, "network error: ")
}

func TestDispatch_RequestError(t *testing.T) {
	store := mocks.NewUseCase(t)
	echoLog(store)
	store.On("Receiver", mock.Anything, int64(3)).Return(callback.Receiver{AppID: 9}, nil)
	d := forward.NewDispatcher(store, &recordingNotifier{}, zerolog.Nop())

	m := testMessage()
	m.Method = "NOT A METHOD"
	l, err := d.Dispatch(context.Background(), m, callback.ForwardTarget{ID: 1, URL: "http://localhost"})

	require.NoError(t, err)
	assert.Equal(t, callback.ForwardError, l.Status)
	assert.True(t, strings.HasPrefix(*l.Error, "request error: "))
}

func TestDispatch_RawBodyIsReplayedVerbatim(t *testing.T) {
	var gotBody, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	store := mocks.NewUseCase(t)
	echoLog(store)
	store.On("Receiver", mock.Anything, int64(3)).Return(callback.Receiver{AppID: 9}, nil)
	d := forward.NewDispatcher(store, &recordingNotifier{}, zerolog.Nop())

	m := testMessage()
	m.Body = "a=1&b=2"
	m.Headers = map[string]string{"content-type": "application/x-www-form-urlencoded"}
	l, err := d.Dispatch(context.Background(), m, callback.ForwardTarget{ID: 1, URL: srv.URL})

	require.NoError(t, err)
	assert.Equal(t, "a=1&b=2", gotBody)
	assert.Equal(t, "application/x-www-form-urlencoded", gotType)
	assert.Equal(t, `"ok"`, *l.ResponseBody)
}

func TestDispatch_LogFailureSkipsPublish(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	store := mocks.NewUseCase(t)
	store.On("LogForward", mock.Anything, mock.Anything).Return(callback.ForwardLog{}, errors.New("db down"))
	notifier := &recordingNotifier{}
	d := forward.NewDispatcher(store, notifier, zerolog.Nop())

	_, err := d.Dispatch(context.Background(), testMessage(), callback.ForwardTarget{ID: 1, URL: srv.URL})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording forward log")
	assert.Empty(t, notifier.all())
}

func TestDispatch_UnknownOwnerSkipsPublish(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	store := mocks.NewUseCase(t)
	echoLog(store)
	store.On("Receiver", mock.Anything, int64(3)).Return(callback.Receiver{}, callback.ErrNotFound)
	notifier := &recordingNotifier{}
	d := forward.NewDispatcher(store, notifier, zerolog.Nop())

	l, err := d.Dispatch(context.Background(), testMessage(), callback.ForwardTarget{ID: 1, URL: srv.URL})

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, *l.ResponseCode)
	assert.Empty(t, notifier.all())
}

func TestDispatchAll(t *testing.T) {
	var mu sync.Mutex
	hits := map[string]int{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits[r.URL.Path]++
		mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	store := mocks.NewUseCase(t)
	echoLog(store)
	store.On("Receiver", mock.Anything, int64(3)).Return(callback.Receiver{AppID: 9}, nil)
	notifier := &recordingNotifier{}
	d := forward.NewDispatcher(store, notifier, zerolog.Nop())

	targets := []callback.ForwardTarget{
		{ID: 1, URL: srv.URL + "/a", Enabled: true},
		{ID: 2, URL: srv.URL + "/b", Enabled: false},
		{ID: 3, URL: "http://127.0.0.1:1/unreachable", Enabled: true},
	}
	results := d.DispatchAll(context.Background(), testMessage(), targets)

	require.Len(t, results, 2)
	assert.Equal(t, int64(1), results[0].Target.ID)
	assert.Equal(t, callback.ForwardSuccess, results[0].Log.Status)
	assert.Equal(t, int64(3), results[1].Target.ID)
	assert.Equal(t, callback.ForwardError, results[1].Log.Status)
	assert.NoError(t, results[1].Err)

	assert.Equal(t, 1, hits["/a"])
	assert.Zero(t, hits["/b"])
	assert.Len(t, notifier.all(), 2)
}

func TestDispatchAll_LogFailureBecomesResultError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	store := mocks.NewUseCase(t)
	store.On("LogForward", mock.Anything, callback.MatchForwardLog(func(l callback.ForwardLog) bool {
		return l.TargetID == 1
	})).Return(callback.ForwardLog{}, errors.New("db down"))
	store.On("LogForward", mock.Anything, callback.MatchForwardLog(func(l callback.ForwardLog) bool {
		return l.TargetID == 2
	})).Return(callback.ForwardLog{ID: 7, TargetID: 2, Status: callback.ForwardSuccess}, nil)
	store.On("Receiver", mock.Anything, int64(3)).Return(callback.Receiver{AppID: 9}, nil)
	d := forward.NewDispatcher(store, &recordingNotifier{}, zerolog.Nop())

	results := d.DispatchAll(context.Background(), testMessage(), []callback.ForwardTarget{
		{ID: 1, URL: srv.URL, Enabled: true},
		{ID: 2, URL: srv.URL, Enabled: true},
	})

	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, int64(7), results[1].Log.ID)
}

func TestProbe(t *testing.T) {
	d := forward.NewDispatcher(mocks.NewUseCase(t), nil, zerolog.Nop())

	t.Run("client error is reachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		res := d.Probe(context.Background(), srv.URL)

		assert.True(t, res.Reachable)
		assert.Equal(t, http.StatusNotFound, *res.StatusCode)
	})

	t.Run("server error is unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		res := d.Probe(context.Background(), srv.URL)

		assert.False(t, res.Reachable)
		assert.Equal(t, http.StatusServiceUnavailable, *res.StatusCode)
	})

	t.Run("connection refused", func(t *testing.T) {
		res := d.Probe(context.Background(), "http://127.0.0.1:1")

		assert.False(t, res.Reachable)
		assert.Nil(t, res.StatusCode)
		assert.Contains(t, res.Error, "network error")
	})
}
