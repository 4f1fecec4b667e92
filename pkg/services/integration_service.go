package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/integration"
	"github.com/majordomo-io/majordomo/pkg/models"
)

// IntegrationService manages provider integrations. Token columns hold
// sealed ciphertext; sealing happens at the API boundary and unsealing
// happens while assembling a model invocation, never here.
type IntegrationService struct {
	client *ent.Client
}

// NewIntegrationService creates a new IntegrationService
func NewIntegrationService(client *ent.Client) *IntegrationService {
	return &IntegrationService{client: client}
}

// UpsertIntegration creates or refreshes a user's provider integration.
// Reconnecting reactivates a previously disconnected provider. Token
// fields left empty in the request keep their stored values.
func (s *IntegrationService) UpsertIntegration(_ context.Context, req models.UpsertIntegrationRequest) (*ent.Integration, error) {
	// Validate input
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Provider == "" {
		return nil, NewValidationError("provider", "required")
	}

	// Use background context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.Integration.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetProvider(req.Provider).
		SetIsActive(true).
		SetCreatedAt(time.Now())
	if req.AccessToken != "" {
		create = create.SetAccessToken(req.AccessToken)
	}
	if req.RefreshToken != "" {
		create = create.SetRefreshToken(req.RefreshToken)
	}
	if req.TokenExpiresAt != nil {
		create = create.SetTokenExpiresAt(*req.TokenExpiresAt)
	}
	if req.Metadata != nil {
		create = create.SetMetadata(req.Metadata)
	}

	id, err := create.
		OnConflictColumns(integration.FieldUserID, integration.FieldProvider).
		UpdateNewValues().
		ID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert integration: %w", err)
	}

	integ, err := s.client.Integration.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load integration: %w", err)
	}

	return integ, nil
}

// GetIntegration retrieves a user's integration for a provider
func (s *IntegrationService) GetIntegration(ctx context.Context, userID, provider string) (*ent.Integration, error) {
	integ, err := s.client.Integration.Query().
		Where(
			integration.UserIDEQ(userID),
			integration.ProviderEQ(provider),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get integration: %w", err)
	}

	return integ, nil
}

// ListIntegrations lists all of a user's integrations, active or not
func (s *IntegrationService) ListIntegrations(ctx context.Context, userID string) ([]*ent.Integration, error) {
	integrations, err := s.client.Integration.Query().
		Where(integration.UserIDEQ(userID)).
		Order(ent.Asc(integration.FieldProvider)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list integrations: %w", err)
	}

	return integrations, nil
}

// ListActiveIntegrations lists a user's active integrations in a stable
// provider order, the order toolkits are assembled in.
func (s *IntegrationService) ListActiveIntegrations(ctx context.Context, userID string) ([]*ent.Integration, error) {
	integrations, err := s.client.Integration.Query().
		Where(
			integration.UserIDEQ(userID),
			integration.IsActiveEQ(true),
		).
		Order(ent.Asc(integration.FieldProvider)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active integrations: %w", err)
	}

	return integrations, nil
}

// DeactivateIntegration disconnects a provider without discarding the
// row, so a later reconnect restores metadata.
func (s *IntegrationService) DeactivateIntegration(_ context.Context, userID, provider string) (*ent.Integration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	integ, err := s.GetIntegration(ctx, userID, provider)
	if err != nil {
		return nil, err
	}

	integ, err = integ.Update().
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate integration: %w", err)
	}

	return integ, nil
}
