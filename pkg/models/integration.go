package models

import "time"

// UpsertIntegrationRequest contains fields for connecting or refreshing a
// provider integration. Token fields carry sealed ciphertext; callers
// encrypt before handing them to the service. Empty token fields leave
// the stored values untouched.
type UpsertIntegrationRequest struct {
	UserID         string         `json:"user_id"`
	Provider       string         `json:"provider"`
	AccessToken    string         `json:"access_token,omitempty"`
	RefreshToken   string         `json:"refresh_token,omitempty"`
	TokenExpiresAt *time.Time     `json:"token_expires_at,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}
