package services

import (
	"context"
	"testing"
	"time"

	"github.com/majordomo-io/majordomo/pkg/models"
	testdb "github.com/majordomo-io/majordomo/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrationService_UpsertIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIntegrationService(client.Client)
	ctx := context.Background()

	t.Run("creates integration", func(t *testing.T) {
		expiry := time.Now().Add(time.Hour).Truncate(time.Second)
		integ, err := service.UpsertIntegration(ctx, models.UpsertIntegrationRequest{
			UserID:         "user-1",
			Provider:       "gmail",
			AccessToken:    "sealed-access",
			RefreshToken:   "sealed-refresh",
			TokenExpiresAt: &expiry,
			Metadata:       map[string]any{"email": "user@example.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, "gmail", integ.Provider)
		assert.True(t, integ.IsActive)
		assert.Equal(t, "sealed-access", integ.AccessToken)
		assert.Equal(t, map[string]any{"email": "user@example.com"}, integ.Metadata)
	})

	t.Run("second upsert updates in place", func(t *testing.T) {
		first, err := service.GetIntegration(ctx, "user-1", "gmail")
		require.NoError(t, err)

		integ, err := service.UpsertIntegration(ctx, models.UpsertIntegrationRequest{
			UserID:      "user-1",
			Provider:    "gmail",
			AccessToken: "sealed-access-2",
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, integ.ID)
		assert.Equal(t, "sealed-access-2", integ.AccessToken)
		// Fields absent from the request keep their stored values.
		assert.Equal(t, "sealed-refresh", integ.RefreshToken)
		assert.Equal(t, map[string]any{"email": "user@example.com"}, integ.Metadata)
	})

	t.Run("reconnect reactivates", func(t *testing.T) {
		_, err := service.DeactivateIntegration(ctx, "user-1", "gmail")
		require.NoError(t, err)

		integ, err := service.UpsertIntegration(ctx, models.UpsertIntegrationRequest{
			UserID:      "user-1",
			Provider:    "gmail",
			AccessToken: "sealed-access-3",
		})
		require.NoError(t, err)
		assert.True(t, integ.IsActive)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.UpsertIntegration(ctx, models.UpsertIntegrationRequest{Provider: "gmail"})
		assert.True(t, IsValidationError(err))
		_, err = service.UpsertIntegration(ctx, models.UpsertIntegrationRequest{UserID: "user-1"})
		assert.True(t, IsValidationError(err))
	})
}

func TestIntegrationService_Listing(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIntegrationService(client.Client)
	ctx := context.Background()

	for _, provider := range []string{"slack", "gmail", "google_drive"} {
		_, err := service.UpsertIntegration(ctx, models.UpsertIntegrationRequest{
			UserID:      "user-1",
			Provider:    provider,
			AccessToken: "sealed",
		})
		require.NoError(t, err)
	}
	_, err := service.DeactivateIntegration(ctx, "user-1", "slack")
	require.NoError(t, err)

	t.Run("active integrations in provider order", func(t *testing.T) {
		active, err := service.ListActiveIntegrations(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, active, 2)
		assert.Equal(t, "gmail", active[0].Provider)
		assert.Equal(t, "google_drive", active[1].Provider)
	})

	t.Run("full listing includes inactive", func(t *testing.T) {
		all, err := service.ListIntegrations(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("scoped to user", func(t *testing.T) {
		active, err := service.ListActiveIntegrations(ctx, "someone-else")
		require.NoError(t, err)
		assert.Empty(t, active)
	})
}

func TestIntegrationService_GetAndDeactivate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIntegrationService(client.Client)
	ctx := context.Background()

	_, err := service.GetIntegration(ctx, "user-1", "gmail")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.DeactivateIntegration(ctx, "user-1", "gmail")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.UpsertIntegration(ctx, models.UpsertIntegrationRequest{
		UserID:      "user-1",
		Provider:    "gmail",
		AccessToken: "sealed",
	})
	require.NoError(t, err)

	integ, err := service.DeactivateIntegration(ctx, "user-1", "gmail")
	require.NoError(t, err)
	assert.False(t, integ.IsActive)

	got, err := service.GetIntegration(ctx, "user-1", "gmail")
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}
