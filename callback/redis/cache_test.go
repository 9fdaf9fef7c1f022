//go:build !integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/marcelsud/callback-inbox/callback"
	"github.com/marcelsud/callback-inbox/callback/mocks"
	cbredis "github.com/marcelsud/callback-inbox/callback/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableClient points at a closed port so every command fails fast
func unreachableClient() *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestCachedRepository_DegradesWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()

	t.Run("resolve falls through to the repository", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		cached := cbredis.NewCachedRepository(repo, unreachableClient(), time.Minute, zerolog.Nop())

		repo.On("ResolveReceiver", ctx, "abc123", "push").Return(callback.Receiver{ID: 7, RootPath: "abc123", Path: "push"}, nil)

		r, err := cached.ResolveReceiver(ctx, "abc123", "push")

		require.NoError(t, err)
		assert.Equal(t, int64(7), r.ID)
	})

	t.Run("miss is reported unchanged", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		cached := cbredis.NewCachedRepository(repo, unreachableClient(), time.Minute, zerolog.Nop())

		repo.On("ResolveReceiver", ctx, "abc123", "nope").Return(callback.Receiver{}, callback.ErrReceiverNotFound)

		_, err := cached.ResolveReceiver(ctx, "abc123", "nope")

		assert.ErrorIs(t, err, callback.ErrReceiverNotFound)
	})

	t.Run("mutations still reach the repository", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		cached := cbredis.NewCachedRepository(repo, unreachableClient(), time.Minute, zerolog.Nop())

		previous := callback.Receiver{ID: 7, RootPath: "abc123", Path: "push"}
		updated := previous
		updated.Path = "push2"
		repo.On("GetReceiver", ctx, int64(7)).Return(previous, nil)
		repo.On("UpdateReceiver", ctx, updated).Return(nil)

		require.NoError(t, cached.UpdateReceiver(ctx, updated))
	})

	t.Run("non-cached operations are delegated", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		cached := cbredis.NewCachedRepository(repo, unreachableClient(), time.Minute, zerolog.Nop())

		repo.On("ListEnabledForwardTargets", ctx, int64(7)).Return([]callback.ForwardTarget{{ID: 1}}, nil)

		targets, err := cached.ListEnabledForwardTargets(ctx, 7)

		require.NoError(t, err)
		assert.Len(t, targets, 1)
	})
}
