package session

import (
	"context"
	"testing"
	"time"

	"github.com/Gobusters/ectologger"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/pkg/models"
)

func noopLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

// memoryKV is an in-process KV for tests.
type memoryKV struct {
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: map[string]string{}}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, error) {
	value, ok := m.data[key]
	if !ok {
		return "", goredis.Nil
	}
	return value, nil
}

func (m *memoryKV) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.data[key] = value.(string)
	return nil
}

func (m *memoryKV) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func TestStore_GetOrCreate(t *testing.T) {
	store := NewStore(newMemoryKV(), noopLogger(), 0)
	ctx := context.Background()

	t.Run("creates when missing", func(t *testing.T) {
		sess, err := store.GetOrCreate(ctx, "sess-1", "web-1")
		require.NoError(t, err)
		assert.Equal(t, "sess-1", sess.ID)
		assert.Equal(t, "web-1", sess.WebSessionID)
	})

	t.Run("returns the existing session afterwards", func(t *testing.T) {
		sess, err := store.GetOrCreate(ctx, "sess-1", "")
		require.NoError(t, err)
		assert.Equal(t, "web-1", sess.WebSessionID)
	})

	t.Run("generates an id when none given", func(t *testing.T) {
		sess, err := store.GetOrCreate(ctx, "", "")
		require.NoError(t, err)
		assert.NotEmpty(t, sess.ID)
	})
}

func TestStore_Transcript(t *testing.T) {
	store := NewStore(newMemoryKV(), noopLogger(), 0)
	ctx := context.Background()

	sess, err := store.GetOrCreate(ctx, "sess-1", "")
	require.NoError(t, err)

	require.NoError(t, store.AppendMessage(ctx, sess, "user", "add Kyoto for 3 days"))
	require.NoError(t, store.AppendMessage(ctx, sess, "assistant", "Added Kyoto."))

	reloaded, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, reloaded.Transcript, 2)
	assert.Equal(t, models.ChatMessage{Role: "user", Content: "add Kyoto for 3 days"}, reloaded.Transcript[0])
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(newMemoryKV(), noopLogger(), 0)
	ctx := context.Background()

	_, err := store.GetOrCreate(ctx, "sess-1", "")
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, "sess-1"))

	sess, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, sess)
}
