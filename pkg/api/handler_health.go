package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/majordomo-io/majordomo/pkg/mcp"
	"github.com/majordomo-io/majordomo/pkg/queue"
)

type healthResponse struct {
	Status     string               `json:"status"`
	Database   string               `json:"database,omitempty"`
	Workers    []queue.WorkerHealth `json:"workers,omitempty"`
	MCPServers []*mcp.HealthStatus  `json:"mcp_servers,omitempty"`
}

// handleHealth aggregates database, worker, and MCP server health.
// Still returns 200 when degraded so probes can read the detail; only
// a dead database flips the status code.
func (s *Server) handleHealth(c *gin.Context) {
	resp := healthResponse{Status: "ok"}
	code := http.StatusOK

	if s.deps.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.deps.DB.DB().PingContext(ctx); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
			code = http.StatusServiceUnavailable
		} else {
			resp.Database = "ok"
		}
	}

	for _, w := range s.deps.Workers {
		h := w.Health()
		resp.Workers = append(resp.Workers, h)
		if !h.Running {
			resp.Status = "degraded"
		}
	}

	if s.deps.MCP != nil {
		resp.MCPServers = s.deps.MCP.Statuses()
		for _, st := range resp.MCPServers {
			if !st.Healthy {
				resp.Status = "degraded"
			}
		}
	}

	c.JSON(code, resp)
}
