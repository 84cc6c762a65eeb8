package storage

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jwebster45206/loottable/pkg/loot"
	"github.com/jwebster45206/loottable/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T, ttl time.Duration) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store, err := NewRedisStorage("redis://"+mr.Addr(), "test", ttl, logger)
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis storage: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
		mr.Close()
	})
	return store, mr
}

func sampleTable(t *testing.T) loot.Document {
	t.Helper()
	looting, err := loot.BuildFunction(loot.LootingEnchant{Count: loot.Range{Min: 0, Max: 1}})
	require.NoError(t, err)
	entry, err := loot.BuildEntry(loot.ItemEntry{Name: "minecraft:rotten_flesh", Functions: []loot.Document{looting}})
	require.NoError(t, err)
	pool, err := loot.Pool{Rolls: 1, Name: "flesh", Entries: []loot.Document{entry}}.Build()
	require.NoError(t, err)
	table, err := loot.Table{Kind: loot.TableEntity, Pools: []loot.Document{pool}}.Build()
	require.NoError(t, err)
	return table
}

func TestRedisStorage_SaveAndLoadTable(t *testing.T) {
	store, mr := setupTestRedis(t, 0)
	ctx := context.Background()
	id := resource.MustParse("entities/zombie")
	table := sampleTable(t)

	saved, err := store.SaveTable(ctx, id, table)
	require.NoError(t, err)
	assert.True(t, mr.Exists("test:table:minecraft:entities/zombie"))
	members, err := mr.Members("test:tables")
	require.NoError(t, err)
	assert.Equal(t, []string{"minecraft:entities/zombie"}, members)

	loaded, err := store.LoadTable(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, id, loaded.ID)
	assert.Equal(t, saved.Revision, loaded.Revision)
	assert.True(t, saved.UpdatedAt.Equal(loaded.UpdatedAt))
	assert.Equal(t, table.String(), loaded.Table.String(), "table should survive storage byte for byte")
}

func TestRedisStorage_LoadMissingTable(t *testing.T) {
	store, _ := setupTestRedis(t, 0)

	loaded, err := store.LoadTable(context.Background(), resource.MustParse("chests/nowhere"))
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStorage_ListAndDelete(t *testing.T) {
	store, mr := setupTestRedis(t, 0)
	ctx := context.Background()
	table := sampleTable(t)

	for _, name := range []string{"entities/zombie", "blocks/dirt", "chests/igloo_chest"} {
		_, err := store.SaveTable(ctx, resource.MustParse(name), table)
		require.NoError(t, err)
	}

	ids, err := store.ListTables(ctx)
	require.NoError(t, err)
	assert.Equal(t, []resource.Location{
		resource.MustParse("blocks/dirt"),
		resource.MustParse("chests/igloo_chest"),
		resource.MustParse("entities/zombie"),
	}, ids)

	require.NoError(t, store.DeleteTable(ctx, resource.MustParse("blocks/dirt")))
	assert.False(t, mr.Exists("test:table:minecraft:blocks/dirt"))

	ids, err = store.ListTables(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestRedisStorage_ExpiredTablesArePruned(t *testing.T) {
	store, mr := setupTestRedis(t, time.Minute)
	ctx := context.Background()
	id := resource.MustParse("gameplay/fishing")

	_, err := store.SaveTable(ctx, id, sampleTable(t))
	require.NoError(t, err)
	assert.Equal(t, time.Minute, mr.TTL("test:table:minecraft:gameplay/fishing"))

	mr.FastForward(2 * time.Minute)

	ids, err := store.ListTables(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	members, _ := mr.Members("test:tables")
	assert.Empty(t, members, "expired id should be removed from the index")
}

func TestRedisStorage_UnparseableIndexMember(t *testing.T) {
	store, mr := setupTestRedis(t, 0)

	_, err := mr.SAdd("test:tables", "not a location")
	require.NoError(t, err)

	ids, err := store.ListTables(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRedisStorage_RejectsEmptyID(t *testing.T) {
	store, _ := setupTestRedis(t, 0)

	_, err := store.SaveTable(context.Background(), resource.Location{}, sampleTable(t))
	assert.Error(t, err)
}

func TestRedisStorage_BadURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	_, err := NewRedisStorage("http://localhost:6379", "", 0, logger)
	assert.Error(t, err)
}

func TestRedisStorage_WaitForConnection(t *testing.T) {
	t.Run("successful connection", func(t *testing.T) {
		store, _ := setupTestRedis(t, 0)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, store.WaitForConnection(ctx))
	})

	t.Run("gives up after attempts", func(t *testing.T) {
		store, mr := setupTestRedis(t, 0)
		mr.Close()
		store.attempts = 3
		store.retryDelay = time.Millisecond

		err := store.WaitForConnection(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 3 attempts")
	})

	t.Run("connection timeout", func(t *testing.T) {
		store, mr := setupTestRedis(t, 0)
		mr.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()
		err := store.WaitForConnection(ctx)
		assert.Error(t, err)
	})
}
