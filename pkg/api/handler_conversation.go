package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/majordomo-io/majordomo/pkg/models"
)

type createConversationRequest struct {
	UserID string   `json:"user_id"`
	Title  string   `json:"title,omitempty"`
	Skills []string `json:"skills,omitempty"`
}

type chatTurnRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleListConversations(c *gin.Context) {
	filters := models.ConversationFilters{
		UserID:          c.Query("user_id"),
		Status:          c.Query("status"),
		IncludeArchived: c.Query("include_archived") == "true",
		Limit:           intQuery(c, "limit", 0),
		Offset:          intQuery(c, "offset", 0),
	}

	resp, err := s.deps.Conversations.ListConversations(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCreateConversation(c *gin.Context) {
	var req createConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	conv, err := s.deps.Conversations.CreateConversation(c.Request.Context(), models.CreateConversationRequest{
		UserID: req.UserID,
		Title:  req.Title,
		Skills: req.Skills,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conv)
}

func (s *Server) handleGetConversation(c *gin.Context) {
	conv, err := s.deps.Conversations.GetConversation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (s *Server) handleArchiveConversation(c *gin.Context) {
	conv, err := s.deps.Conversations.ArchiveConversation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (s *Server) handleListMessages(c *gin.Context) {
	resp, err := s.deps.Messages.ListMessages(c.Request.Context(), c.Param("id"),
		intQuery(c, "limit", 0), intQuery(c, "offset", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// handleChatTurn runs one synchronous chat turn. The response carries
// both persisted messages and the conversation status after any
// structured actions ran.
func (s *Server) handleChatTurn(c *gin.Context) {
	var req chatTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		badRequest(c, "content is required")
		return
	}

	result, err := s.deps.Chat.ProcessTurn(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// intQuery parses an integer query parameter, falling back to def on
// absence or garbage.
func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
