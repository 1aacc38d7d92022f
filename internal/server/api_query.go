package server

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/cooper-xs/cf-daily-tracker/internal/constants"
	"github.com/cooper-xs/cf-daily-tracker/internal/domain"
	"github.com/cooper-xs/cf-daily-tracker/pkg/errors"
)

type queryRequest struct {
	Handles string `json:"handles"`
	Input   string `json:"input"` // handles 의 별칭 (검색창 원문 입력)
	Start   string `json:"start"`
	End     string `json:"end"`
}

// PostQuery: 핸들 입력과 날짜 범위로 전체 조회를 실행합니다.
// start/end 를 생략하면 오늘(UTC+8) 범위로 조회합니다.
func (h *APIHandler) PostQuery(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{
			"status":  "error",
			"message": "invalid request body",
		})
		return
	}

	input := req.Handles
	if input == "" {
		input = req.Input
	}
	if input == "" {
		c.JSON(400, gin.H{
			"status":  "error",
			"message": "handles field is required",
		})
		return
	}

	r := domain.TodayRange()
	if req.Start != "" || req.End != "" {
		parsed, err := domain.NewDateRange(req.Start, req.End)
		if err != nil {
			c.JSON(400, gin.H{
				"status":  "error",
				"message": err.Error(),
			})
			return
		}
		r = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), constants.RequestTimeout.Query)
	defer cancel()

	state, err := h.tracker.Query(ctx, input, r)
	if err != nil {
		status := 500
		switch err.(type) {
		case *errors.ValidationError:
			status = 400
		case *errors.NotFoundError:
			status = 404
		case *errors.APIError:
			status = 502
		}
		c.JSON(status, gin.H{
			"status":  "error",
			"message": err.Error(),
			"state":   state,
		})
		return
	}

	c.JSON(200, gin.H{
		"status": "ok",
		"state":  state,
	})
}

// GetState: 현재 조회 상태 스냅샷을 반환합니다.
func (h *APIHandler) GetState(c *gin.Context) {
	c.JSON(200, gin.H{
		"status": "ok",
		"state":  h.tracker.Snapshot(),
	})
}

// ClearErrorState: 오류 상태를 지우고 다음 조회를 받을 준비로 되돌립니다.
func (h *APIHandler) ClearErrorState(c *gin.Context) {
	c.JSON(200, gin.H{
		"status": "ok",
		"state":  h.tracker.ClearError(),
	})
}
