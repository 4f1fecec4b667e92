package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/majordomo-io/majordomo/pkg/models"
)

func (s *Server) handleListTasks(c *gin.Context) {
	filters := models.TaskFilters{
		UserID:         c.Query("user_id"),
		ConversationID: c.Query("conversation_id"),
		Status:         c.Query("status"),
		IncludeDeleted: c.Query("include_deleted") == "true",
		Limit:          intQuery(c, "limit", 0),
		Offset:         intQuery(c, "offset", 0),
	}

	resp, err := s.deps.Tasks.ListTasks(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleGetTask(c *gin.Context) {
	t, err := s.deps.Tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handlePauseTask(c *gin.Context) {
	t, err := s.deps.Tasks.PauseTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handleResumeTask(c *gin.Context) {
	t, err := s.deps.Tasks.ResumeTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	t, err := s.deps.Tasks.DeleteTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
