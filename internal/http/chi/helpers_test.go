package chi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/marcelsud/callback-inbox/callback/mocks"
	"github.com/marcelsud/callback-inbox/forward"
	"github.com/marcelsud/callback-inbox/ingest"
	"github.com/marcelsud/callback-inbox/metrics"
	"github.com/rs/zerolog"
)

type recordingQueue struct {
	mu   sync.Mutex
	jobs []forward.Job
}

func (q *recordingQueue) Enqueue(job forward.Job) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
	return true
}

type testServer struct {
	handler http.Handler
	store   *mocks.UseCase
	queue   *recordingQueue
}

func newTestServer(t *testing.T, maxBodyBytes int64) *testServer {
	t.Helper()
	store := mocks.NewUseCase(t)
	queue := &recordingQueue{}
	h := Handlers(Dependencies{
		Logger:       zerolog.Nop(),
		Service:      store,
		Pipeline:     ingest.NewPipeline(store, nil, queue, nil, zerolog.Nop()),
		Forwarder:    forward.NewDispatcher(store, nil, zerolog.Nop()),
		Collector:    metrics.NewSystemCollector(nil, nil, store),
		MaxBodyBytes: maxBodyBytes,
	})
	return &testServer{handler: h, store: store, queue: queue}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}
