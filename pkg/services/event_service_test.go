package services

import (
	"context"
	"testing"
	"time"

	testdb "github.com/majordomo-io/majordomo/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	seed := func(channel string, seq int) int {
		t.Helper()
		evt, err := client.Event.Create().
			SetChannel(channel).
			SetPayload(map[string]any{"seq": float64(seq)}).
			Save(ctx)
		require.NoError(t, err)
		return evt.ID
	}

	first := seed("user:user-1", 1)
	seed("user:user-1", 2)
	last := seed("user:user-1", 3)
	seed("user:user-2", 99)

	t.Run("returns events after the cursor in order", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "user:user-1", first, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, float64(2), events[0].Payload["seq"])
		assert.Equal(t, float64(3), events[1].Payload["seq"])
	})

	t.Run("cursor zero replays the channel", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "user:user-1", 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 3)
	})

	t.Run("respects the limit", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "user:user-1", 0, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, float64(1), events[0].Payload["seq"])
	})

	t.Run("filters by channel", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "user:user-2", 0, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, float64(99), events[0].Payload["seq"])
	})

	t.Run("caught up", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "user:user-1", last, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_DeleteOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	_, err := client.Event.Create().
		SetChannel("user:user-1").
		SetPayload(map[string]any{"kind": "old"}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Event.Create().
		SetChannel("user:user-1").
		SetPayload(map[string]any{"kind": "fresh"}).
		Save(ctx)
	require.NoError(t, err)

	n, err := service.DeleteOlderThan(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	remaining, err := service.GetEventsSince(ctx, "user:user-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh", remaining[0].Payload["kind"])
}
