package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/majordomo-io/majordomo/pkg/models"
)

func (s *Server) handleListNotifications(c *gin.Context) {
	filters := models.NotificationFilters{
		UserID:     c.Query("user_id"),
		UnreadOnly: c.Query("unread_only") == "true",
		Limit:      intQuery(c, "limit", 0),
		Offset:     intQuery(c, "offset", 0),
	}
	if filters.UserID == "" {
		badRequest(c, "user_id is required")
		return
	}

	resp, err := s.deps.Notifications.ListNotifications(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleMarkRead(c *gin.Context) {
	n, err := s.deps.Notifications.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *Server) handleMarkAllRead(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		badRequest(c, "user_id is required")
		return
	}

	count, err := s.deps.Notifications.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marked_read": count})
}
