package server

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/cooper-xs/cf-daily-tracker/internal/constants"
	"github.com/cooper-xs/cf-daily-tracker/internal/domain"
)

// GetTheme 는 동작을 수행한다.
func (h *APIHandler) GetTheme(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), constants.RequestTimeout.Prefs)
	defer cancel()

	c.JSON(200, gin.H{
		"status": "ok",
		"theme":  h.prefs.GetTheme(ctx),
	})
}

// PutTheme: 표시 테마를 저장합니다.
func (h *APIHandler) PutTheme(c *gin.Context) {
	var req struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{
			"status":  "error",
			"message": "theme field is required",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), constants.RequestTimeout.Prefs)
	defer cancel()

	if err := h.prefs.SetTheme(ctx, domain.Theme(req.Theme)); err != nil {
		c.JSON(400, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(200, gin.H{
		"status": "ok",
		"theme":  req.Theme,
	})
}

// GetLanguage 는 동작을 수행한다.
func (h *APIHandler) GetLanguage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), constants.RequestTimeout.Prefs)
	defer cancel()

	c.JSON(200, gin.H{
		"status":   "ok",
		"language": h.prefs.GetLanguage(ctx),
	})
}

// PutLanguage: 표시 언어를 저장합니다.
func (h *APIHandler) PutLanguage(c *gin.Context) {
	var req struct {
		Language string `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{
			"status":  "error",
			"message": "language field is required",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), constants.RequestTimeout.Prefs)
	defer cancel()

	if err := h.prefs.SetLanguage(ctx, domain.Language(req.Language)); err != nil {
		c.JSON(400, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(200, gin.H{
		"status":   "ok",
		"language": req.Language,
	})
}

// GetRecentHandles: 최근에 조회한 핸들 목록을 반환합니다. (최신순)
func (h *APIHandler) GetRecentHandles(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), constants.RequestTimeout.Prefs)
	defer cancel()

	c.JSON(200, gin.H{
		"status":  "ok",
		"handles": h.prefs.RecentHandles(ctx),
	})
}

// PostRecentHandles: 핸들들을 최근 목록 맨 앞에 기록합니다.
func (h *APIHandler) PostRecentHandles(c *gin.Context) {
	var req struct {
		Handles []string `json:"handles" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{
			"status":  "error",
			"message": "handles field is required",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), constants.RequestTimeout.Prefs)
	defer cancel()

	h.prefs.RecordHandles(ctx, req.Handles)
	c.JSON(200, gin.H{
		"status":  "ok",
		"handles": h.prefs.RecentHandles(ctx),
	})
}

// DeleteRecentHandles: handle 쿼리가 있으면 그 핸들만, 없으면 전체를 지웁니다.
func (h *APIHandler) DeleteRecentHandles(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), constants.RequestTimeout.Prefs)
	defer cancel()

	var err error
	if handle := c.Query("handle"); handle != "" {
		err = h.prefs.RemoveRecentHandle(ctx, handle)
	} else {
		err = h.prefs.ClearRecentHandles(ctx)
	}
	if err != nil {
		c.JSON(500, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}

// GetSearchHistory: 최근 조회 이력을 반환합니다. (최신순)
func (h *APIHandler) GetSearchHistory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), constants.RequestTimeout.Prefs)
	defer cancel()

	c.JSON(200, gin.H{
		"status":  "ok",
		"history": h.prefs.SearchHistory(ctx),
	})
}

// DeleteSearchHistory 는 동작을 수행한다.
func (h *APIHandler) DeleteSearchHistory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), constants.RequestTimeout.Prefs)
	defer cancel()

	if err := h.prefs.ClearSearchHistory(ctx); err != nil {
		c.JSON(500, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
