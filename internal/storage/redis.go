package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/loottable/pkg/loot"
	"github.com/jwebster45206/loottable/pkg/resource"
	"github.com/jwebster45206/loottable/pkg/storage"
	"github.com/redis/go-redis/v9"
)

// RedisStorage implements the Storage interface using Redis. Each table is a
// JSON string under "<prefix>:table:<id>"; the set "<prefix>:tables" indexes them.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
	prefix string
	ttl    time.Duration

	attempts   int
	retryDelay time.Duration
}

// Ensure RedisStorage implements Storage interface
var _ storage.Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance. A ttl of 0 keeps tables
// forever.
func NewRedisStorage(redisURL, prefix string, ttl time.Duration, logger *slog.Logger) (*RedisStorage, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if prefix == "" {
		prefix = "loottable"
	}

	return &RedisStorage{
		client: redis.NewClient(opt),
		logger: logger,
		prefix: prefix,
		ttl:    ttl,

		attempts:   30,
		retryDelay: 2 * time.Second,
	}, nil
}

func (r *RedisStorage) tableKey(id resource.Location) string {
	return r.prefix + ":table:" + id.String()
}

func (r *RedisStorage) indexKey() string {
	return r.prefix + ":tables"
}

// Ping checks the connection.
func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping %s: %w", r.client.Options().Addr, err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	err := r.client.Close()
	if err != nil {
		r.logger.Error("Failed to close Redis connection", "prefix", r.prefix, "error", err)
	}
	return err
}

// WaitForConnection pings until Redis answers, giving up after r.attempts pings
// or when ctx ends.
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	var err error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		if err = r.Ping(ctx); err == nil {
			r.logger.Info("Redis connection established", "prefix", r.prefix, "attempts", attempt)
			return nil
		}
		r.logger.Debug("Redis not ready yet", "attempt", attempt, "error", err)

		timer := time.NewTimer(r.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("waiting for redis: %w", ctx.Err())
		case <-timer.C:
		}
	}
	return fmt.Errorf("redis unavailable after %d attempts: %w", r.attempts, err)
}

// Table operations

func (r *RedisStorage) SaveTable(ctx context.Context, id resource.Location, doc loot.Document) (*storage.StoredTable, error) {
	if id.IsZero() {
		return nil, errors.New("table id cannot be empty")
	}

	stored := &storage.StoredTable{
		ID:        id,
		Revision:  uuid.New(),
		UpdatedAt: time.Now().UTC(),
		Table:     doc,
	}
	data, err := json.Marshal(stored)
	if err != nil {
		r.logger.Error("Failed to marshal loot table", "id", id, "error", err)
		return nil, fmt.Errorf("failed to marshal loot table: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.tableKey(id), data, r.ttl)
		pipe.SAdd(ctx, r.indexKey(), id.String())
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to save loot table", "id", id, "error", err)
		return nil, fmt.Errorf("failed to save loot table: %w", err)
	}

	r.logger.Debug("Saved loot table", "id", id, "revision", stored.Revision, "bytes", len(data))
	return stored, nil
}

func (r *RedisStorage) LoadTable(ctx context.Context, id resource.Location) (*storage.StoredTable, error) {
	data, err := r.client.Get(ctx, r.tableKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.logger.Debug("Loot table not found", "id", id)
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load loot table", "id", id, "error", err)
		return nil, fmt.Errorf("failed to load loot table: %w", err)
	}

	var stored storage.StoredTable
	if err := json.Unmarshal(data, &stored); err != nil {
		r.logger.Error("Failed to unmarshal loot table", "id", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal loot table: %w", err)
	}
	return &stored, nil
}

func (r *RedisStorage) DeleteTable(ctx context.Context, id resource.Location) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.tableKey(id))
		pipe.SRem(ctx, r.indexKey(), id.String())
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to delete loot table", "id", id, "error", err)
		return fmt.Errorf("failed to delete loot table: %w", err)
	}
	return nil
}

// ListTables returns the indexed tables that still exist. Index members whose
// table expired or cannot be parsed are pruned.
func (r *RedisStorage) ListTables(ctx context.Context) ([]resource.Location, error) {
	members, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		r.logger.Error("Failed to list loot tables", "error", err)
		return nil, fmt.Errorf("failed to list loot tables: %w", err)
	}

	var stale []any
	ids := make([]resource.Location, 0, len(members))
	for _, member := range members {
		id, err := resource.Parse(member)
		if err != nil {
			r.logger.Warn("Dropping unparseable loot table id", "member", member, "error", err)
			stale = append(stale, member)
			continue
		}
		ids = append(ids, id)
	}

	exists := make([]*redis.IntCmd, len(ids))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			exists[i] = pipe.Exists(ctx, r.tableKey(id))
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to check loot tables", "error", err)
		return nil, fmt.Errorf("failed to check loot tables: %w", err)
	}

	live := ids[:0]
	for i, id := range ids {
		if exists[i].Val() == 0 {
			stale = append(stale, id.String())
			continue
		}
		live = append(live, id)
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, r.indexKey(), stale...).Err(); err != nil {
			r.logger.Warn("Failed to prune loot table index", "error", err)
		} else {
			r.logger.Debug("Pruned loot table index", "removed", len(stale))
		}
	}

	slices.SortFunc(live, resource.Compare)
	return live, nil
}
