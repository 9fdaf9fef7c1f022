//go:build integration

package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/marcelsud/callback-inbox/callback"
	"github.com/marcelsud/callback-inbox/callback/mocks"
	cbredis "github.com/marcelsud/callback-inbox/callback/redis"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCachedRepository_Integration(t *testing.T) {
	ctx := context.Background()

	client, cleanup := SetupRedisContainer(t, ctx)
	defer cleanup()

	receiver := callback.Receiver{
		ID:          7,
		AppID:       1,
		RootPath:    "abc123",
		Name:        "push",
		Path:        "github/push",
		AutoForward: true,
		Response: callback.ResponseConfig{
			Status: 202,
			Body:   json.RawMessage(`{"ok":true}`),
		},
	}

	t.Run("second resolve is served from the cache", func(t *testing.T) {
		require.NoError(t, client.FlushAll(ctx).Err())
		repo := mocks.NewRepository(t)
		cached := cbredis.NewCachedRepository(repo, client, time.Minute, zerolog.Nop())

		repo.On("ResolveReceiver", ctx, "abc123", "github/push").Return(receiver, nil).Once()

		first, err := cached.ResolveReceiver(ctx, "abc123", "github/push")
		require.NoError(t, err)
		second, err := cached.ResolveReceiver(ctx, "abc123", "github/push")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 202, second.Response.Status)
		assert.JSONEq(t, `{"ok":true}`, string(second.Response.Body))
	})

	t.Run("misses are not cached", func(t *testing.T) {
		require.NoError(t, client.FlushAll(ctx).Err())
		repo := mocks.NewRepository(t)
		cached := cbredis.NewCachedRepository(repo, client, time.Minute, zerolog.Nop())

		repo.On("ResolveReceiver", ctx, "abc123", "later").Return(callback.Receiver{}, callback.ErrReceiverNotFound).Twice()

		_, err := cached.ResolveReceiver(ctx, "abc123", "later")
		assert.ErrorIs(t, err, callback.ErrReceiverNotFound)
		_, err = cached.ResolveReceiver(ctx, "abc123", "later")
		assert.ErrorIs(t, err, callback.ErrReceiverNotFound)
	})

	t.Run("update invalidates", func(t *testing.T) {
		require.NoError(t, client.FlushAll(ctx).Err())
		repo := mocks.NewRepository(t)
		cached := cbredis.NewCachedRepository(repo, client, time.Minute, zerolog.Nop())

		repo.On("ResolveReceiver", ctx, "abc123", "github/push").Return(receiver, nil).Once()
		_, err := cached.ResolveReceiver(ctx, "abc123", "github/push")
		require.NoError(t, err)

		disabled := receiver
		disabled.AutoForward = false
		repo.On("GetReceiver", ctx, int64(7)).Return(receiver, nil).Once()
		repo.On("UpdateReceiver", ctx, disabled).Return(nil).Once()
		require.NoError(t, cached.UpdateReceiver(ctx, disabled))

		repo.On("ResolveReceiver", ctx, "abc123", "github/push").Return(disabled, nil).Once()
		r, err := cached.ResolveReceiver(ctx, "abc123", "github/push")
		require.NoError(t, err)
		assert.False(t, r.AutoForward)
	})

	t.Run("application delete drops every receiver under its root", func(t *testing.T) {
		require.NoError(t, client.FlushAll(ctx).Err())
		repo := mocks.NewRepository(t)
		cached := cbredis.NewCachedRepository(repo, client, time.Minute, zerolog.Nop())

		other := receiver
		other.ID = 8
		other.Path = "stripe"
		repo.On("ResolveReceiver", ctx, "abc123", "github/push").Return(receiver, nil).Once()
		repo.On("ResolveReceiver", ctx, "abc123", "stripe").Return(other, nil).Once()
		_, err := cached.ResolveReceiver(ctx, "abc123", "github/push")
		require.NoError(t, err)
		_, err = cached.ResolveReceiver(ctx, "abc123", "stripe")
		require.NoError(t, err)

		repo.On("GetApplication", ctx, int64(1)).Return(callback.Application{ID: 1, RootPath: "abc123"}, nil)
		repo.On("DeleteApplication", ctx, int64(1)).Return(nil)
		require.NoError(t, cached.DeleteApplication(ctx, 1))

		keys, err := client.Keys(ctx, "receiver:abc123:*").Result()
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("update during a resolve keeps the old row out of the cache", func(t *testing.T) {
		require.NoError(t, client.FlushAll(ctx).Err())
		repo := mocks.NewRepository(t)
		cached := cbredis.NewCachedRepository(repo, client, time.Minute, zerolog.Nop())

		disabled := receiver
		disabled.AutoForward = false
		repo.On("GetReceiver", ctx, int64(7)).Return(receiver, nil).Once()
		repo.On("UpdateReceiver", ctx, disabled).Return(nil).Once()

		// the update commits after the stale row was read from the repository
		repo.On("ResolveReceiver", ctx, "abc123", "github/push").
			Run(func(mock.Arguments) {
				require.NoError(t, cached.UpdateReceiver(ctx, disabled))
			}).
			Return(receiver, nil).Once()

		r, err := cached.ResolveReceiver(ctx, "abc123", "github/push")
		require.NoError(t, err)
		assert.True(t, r.AutoForward)

		n, err := client.Exists(ctx, "receiver:abc123:github/push").Result()
		require.NoError(t, err)
		assert.Zero(t, n)

		repo.On("ResolveReceiver", ctx, "abc123", "github/push").Return(disabled, nil).Once()
		r, err = cached.ResolveReceiver(ctx, "abc123", "github/push")
		require.NoError(t, err)
		assert.False(t, r.AutoForward)
	})

	t.Run("empty header override survives a cache hit", func(t *testing.T) {
		require.NoError(t, client.FlushAll(ctx).Err())
		repo := mocks.NewRepository(t)
		cached := cbredis.NewCachedRepository(repo, client, time.Minute, zerolog.Nop())

		bare := receiver
		bare.Response.Headers = map[string]string{}
		repo.On("ResolveReceiver", ctx, "abc123", "github/push").Return(bare, nil).Once()

		_, err := cached.ResolveReceiver(ctx, "abc123", "github/push")
		require.NoError(t, err)
		hit, err := cached.ResolveReceiver(ctx, "abc123", "github/push")
		require.NoError(t, err)

		assert.Empty(t, hit.Response.Render(1).Headers)
	})
}
