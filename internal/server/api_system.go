package server

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cooper-xs/cf-daily-tracker/internal/health"
)

// GetHealth: 서비스 상태를 반환합니다.
// 캐시 스토어가 PING에 응답하지 않으면 status 를 degraded 로 낮춥니다.
func (h *APIHandler) GetHealth(c *gin.Context) {
	resp := health.Get()
	if h.valkeyCache != nil && !h.valkeyCache.IsConnected(c.Request.Context()) {
		resp.Status = "degraded"
	}
	c.JSON(200, resp)
}

// GetSystemStats: 현재 시스템 리소스 사용량을 반환합니다.
func (h *APIHandler) GetSystemStats(c *gin.Context) {
	if h.systemStats == nil {
		c.JSON(400, gin.H{
			"status":  "error",
			"message": "system stats collector not available",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.systemStats.GetCurrentStats(ctx)
	if err != nil {
		c.JSON(500, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(200, gin.H{
		"status": "ok",
		"stats":  stats,
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}
