package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/marcelsud/callback-inbox/callback"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

/* Cache-aside decorator for the routing resolver
 * Resolved receivers are kept under receiver:{root_path}:{path}
 * Misses are never cached, so a newly created receiver is reachable immediately
 * Redis failures are logged and the wrapped repository answers instead
 *
 * Every mutation bumps receiver-gen:{root_path} before deleting keys. A fill only
 * writes when the generation it read before querying the repository is unchanged,
 * checked under WATCH, so a lookup racing an update cannot put the old row back
 */

const (
	keyPrefix        = "receiver"
	generationPrefix = "receiver-gen"
)

var errStaleFill = errors.New("receiver changed while resolving")

// CachedRepository wraps a callback.Repository and caches ResolveReceiver
type CachedRepository struct {
	callback.Repository
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

type cachedReceiver struct {
	ID          int64             `json:"id"`
	AppID       int64             `json:"app_id"`
	RootPath    string            `json:"root_path"`
	Name        string            `json:"name"`
	Path        string            `json:"path"`
	AutoForward bool              `json:"auto_forward"`
	Status      int               `json:"status,omitempty"`
	Headers     map[string]string `json:"headers"` // null and {} render differently
	Body        json.RawMessage   `json:"body,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// NewClient creates a Redis client and checks the connection
func NewClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return client, nil
}

// NewCachedRepository decorates next with a resolver cache
func NewCachedRepository(next callback.Repository, client *redis.Client, ttl time.Duration, logger zerolog.Logger) *CachedRepository {
	return &CachedRepository{
		Repository: next,
		client:     client,
		ttl:        ttl,
		logger:     logger,
	}
}

func receiverKey(rootPath, path string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, rootPath, path)
}

func generationKey(rootPath string) string {
	return fmt.Sprintf("%s:%s", generationPrefix, rootPath)
}

// ResolveReceiver answers from the cache and fills it on a hit in the repository
func (c *CachedRepository) ResolveReceiver(ctx context.Context, rootPath, callbackPath string) (callback.Receiver, error) {
	key := receiverKey(rootPath, callbackPath)
	genKey := generationKey(rootPath)

	available := true
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var entry cachedReceiver
		if err := json.Unmarshal(raw, &entry); err == nil {
			return entry.toReceiver(), nil
		}
		c.logger.Warn().Str("key", key).Msg("discarding undecodable cache entry")
	case !errors.Is(err, redis.Nil):
		c.logger.Warn().Err(err).Str("key", key).Msg("resolver cache unavailable")
		available = false
	}

	var generation int64
	if available {
		generation, err = c.generation(ctx, genKey)
		if err != nil {
			c.logger.Warn().Err(err).Str("key", genKey).Msg("reading resolver cache generation")
			available = false
		}
	}

	r, err := c.Repository.ResolveReceiver(ctx, rootPath, callbackPath)
	if err != nil {
		return callback.Receiver{}, err
	}
	if available {
		c.fill(ctx, key, genKey, generation, r)
	}
	return r, nil
}

func (c *CachedRepository) generation(ctx context.Context, genKey string) (int64, error) {
	n, err := c.client.Get(ctx, genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// fill stores r unless the root path was invalidated since generation was read
func (c *CachedRepository) fill(ctx context.Context, key, genKey string, generation int64, r callback.Receiver) {
	encoded, err := json.Marshal(fromReceiver(r))
	if err != nil {
		return
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := c.txGeneration(ctx, tx, genKey)
		if err != nil {
			return err
		}
		if current != generation {
			return errStaleFill
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleFill), errors.Is(err, redis.TxFailedErr):
		c.logger.Debug().Str("key", key).Msg("skipping stale resolver cache fill")
	default:
		c.logger.Warn().Err(err).Str("key", key).Msg("filling resolver cache")
	}
}

func (c *CachedRepository) txGeneration(ctx context.Context, tx *redis.Tx, genKey string) (int64, error) {
	n, err := tx.Get(ctx, genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// UpdateReceiver invalidates both the previous and the new address of the receiver
func (c *CachedRepository) UpdateReceiver(ctx context.Context, r callback.Receiver) error {
	previous, lookupErr := c.Repository.GetReceiver(ctx, r.ID)

	if err := c.Repository.UpdateReceiver(ctx, r); err != nil {
		return err
	}

	keys := []string{}
	if lookupErr == nil {
		keys = append(keys, receiverKey(previous.RootPath, previous.Path))
		if r.RootPath == "" {
			r.RootPath = previous.RootPath
		}
	}
	if r.RootPath == "" {
		return nil
	}
	keys = append(keys, receiverKey(r.RootPath, r.Path))
	c.invalidate(ctx, r.RootPath, keys...)
	return nil
}

func (c *CachedRepository) DeleteReceiver(ctx context.Context, id int64) error {
	previous, lookupErr := c.Repository.GetReceiver(ctx, id)

	if err := c.Repository.DeleteReceiver(ctx, id); err != nil {
		return err
	}

	if lookupErr == nil {
		c.invalidate(ctx, previous.RootPath, receiverKey(previous.RootPath, previous.Path))
	}
	return nil
}

// DeleteApplication drops every cached receiver under the application's root path
func (c *CachedRepository) DeleteApplication(ctx context.Context, id int64) error {
	app, lookupErr := c.Repository.GetApplication(ctx, id)

	if err := c.Repository.DeleteApplication(ctx, id); err != nil {
		return err
	}
	if lookupErr != nil {
		return nil
	}

	var keys []string
	iter := c.client.Scan(ctx, 0, receiverKey(app.RootPath, "*"), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn().Err(err).Str("root_path", app.RootPath).Msg("scanning resolver cache")
	}
	c.invalidate(ctx, app.RootPath, keys...)
	return nil
}

// invalidate bumps the root path generation and deletes keys in one transaction
func (c *CachedRepository) invalidate(ctx context.Context, rootPath string, keys ...string) {
	genKey := generationKey(rootPath)

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		if c.ttl > 0 {
			pipe.Expire(ctx, genKey, 2*c.ttl)
		}
		if len(keys) > 0 {
			pipe.Del(ctx, keys...)
		}
		return nil
	})
	if err != nil {
		c.logger.Warn().Err(err).Strs("keys", keys).Msg("invalidating resolver cache")
	}
}

// Close closes the Redis client and the wrapped repository
func (c *CachedRepository) Close(ctx context.Context) error {
	if err := c.client.Close(); err != nil {
		c.logger.Warn().Err(err).Msg("closing redis client")
	}
	return c.Repository.Close(ctx)
}

func fromReceiver(r callback.Receiver) cachedReceiver {
	return cachedReceiver{
		ID:          r.ID,
		AppID:       r.AppID,
		RootPath:    r.RootPath,
		Name:        r.Name,
		Path:        r.Path,
		AutoForward: r.AutoForward,
		Status:      r.Response.Status,
		Headers:     r.Response.Headers,
		Body:        r.Response.Body,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (e cachedReceiver) toReceiver() callback.Receiver {
	return callback.Receiver{
		ID:          e.ID,
		AppID:       e.AppID,
		RootPath:    e.RootPath,
		Name:        e.Name,
		Path:        e.Path,
		AutoForward: e.AutoForward,
		Response: callback.ResponseConfig{
			Status:  e.Status,
			Headers: e.Headers,
			Body:    e.Body,
		},
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
