package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/majordomo-io/majordomo/pkg/models"
)

type connectIntegrationRequest struct {
	UserID         string         `json:"user_id"`
	AccessToken    string         `json:"access_token,omitempty"`
	RefreshToken   string         `json:"refresh_token,omitempty"`
	TokenExpiresAt *time.Time     `json:"token_expires_at,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

func (s *Server) handleListIntegrations(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		badRequest(c, "user_id is required")
		return
	}

	integrations, err := s.deps.Integrations.ListIntegrations(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"integrations": integrations})
}

// handleConnectIntegration stores or refreshes a provider's OAuth
// credentials. Tokens are sealed here, at the boundary; nothing past
// this handler sees them in the clear.
func (s *Server) handleConnectIntegration(c *gin.Context) {
	var req connectIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	upsert := models.UpsertIntegrationRequest{
		UserID:         req.UserID,
		Provider:       c.Param("provider"),
		TokenExpiresAt: req.TokenExpiresAt,
		Metadata:       req.Metadata,
	}

	var err error
	if req.AccessToken != "" {
		if upsert.AccessToken, err = s.deps.Sealer.Encrypt(req.AccessToken); err != nil {
			respondError(c, err)
			return
		}
	}
	if req.RefreshToken != "" {
		if upsert.RefreshToken, err = s.deps.Sealer.Encrypt(req.RefreshToken); err != nil {
			respondError(c, err)
			return
		}
	}

	integ, err := s.deps.Integrations.UpsertIntegration(c.Request.Context(), upsert)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, integ)
}

func (s *Server) handleDisconnectIntegration(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		badRequest(c, "user_id is required")
		return
	}

	integ, err := s.deps.Integrations.DeactivateIntegration(c.Request.Context(), userID, c.Param("provider"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, integ)
}
