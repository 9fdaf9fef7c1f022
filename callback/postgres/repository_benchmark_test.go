//go:build integration

package postgres

import (
	"context"
	"net/http"
	"testing"

	"github.com/marcelsud/callback-inbox/callback"
)

/*
Benchmarks for the ingestion hot path: resolving a receiver and recording a message

Run with: go test -tags=integration -bench=. -benchmem ./callback/postgres/

Each benchmark starts its own container; timing starts after setup (b.ResetTimer).
*/

func seedReceiver(b *testing.B, ctx context.Context, repo *Repository) callback.Receiver {
	b.Helper()

	app, err := repo.CreateApplication(ctx, callback.Application{Name: "bench", RootPath: "benchroot"})
	if err != nil {
		b.Fatalf("CreateApplication failed: %v", err)
	}
	rc, err := repo.CreateReceiver(ctx, callback.Receiver{AppID: app.ID, Name: "bench", Path: "hooks/bench"})
	if err != nil {
		b.Fatalf("CreateReceiver failed: %v", err)
	}
	return rc
}

func BenchmarkResolveReceiver_Postgres(b *testing.B) {
	ctx := context.Background()

	pgContainer, cleanup := SetupPostgresContainer(b, ctx)
	defer cleanup()

	repo := CreateTestRepository(b, ctx, pgContainer.ConnStr)
	defer repo.Close(ctx)
	seedReceiver(b, ctx, repo)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.ResolveReceiver(ctx, "benchroot", "hooks/bench"); err != nil {
			b.Fatalf("ResolveReceiver failed: %v", err)
		}
	}
}

func BenchmarkCreateMessage_Postgres(b *testing.B) {
	ctx := context.Background()

	pgContainer, cleanup := SetupPostgresContainer(b, ctx)
	defer cleanup()

	repo := CreateTestRepository(b, ctx, pgContainer.ConnStr)
	defer repo.Close(ctx)
	rc := seedReceiver(b, ctx, repo)

	m := callback.Message{
		ReceiverID: rc.ID,
		Method:     http.MethodPost,
		Headers:    map[string]string{"content-type": "application/json", "host": "bench"},
		Body:       `{"event":"bench","data":{"id":1}}`,
		Query:      map[string][]string{"source": {"bench"}},
		IP:         "127.0.0.1",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.CreateMessage(ctx, m); err != nil {
			b.Fatalf("CreateMessage failed: %v", err)
		}
	}
}
