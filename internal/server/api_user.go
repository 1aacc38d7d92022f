package server

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cooper-xs/cf-daily-tracker/internal/constants"
	"github.com/cooper-xs/cf-daily-tracker/internal/domain"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/tracker"
)

// GetUsers: 핸들 목록의 프로필을 직접 조회합니다.
// 조회 상태 기계를 거치지 않는 단건 API 입니다.
func (h *APIHandler) GetUsers(c *gin.Context) {
	handles, err := tracker.ParseHandles(c.Query("handles"))
	if err != nil {
		c.JSON(400, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), constants.RequestTimeout.Lookup)
	defer cancel()

	users, err := h.codeforces.FetchUsers(ctx, handles)
	if err != nil {
		c.JSON(502, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	cards := make([]gin.H, 0, len(users))
	for _, u := range users {
		cards = append(cards, gin.H{
			"user":       u,
			"rankColor":  u.RankColor(),
			"profileUrl": u.ProfileURL(),
		})
	}

	c.JSON(200, gin.H{
		"status": "ok",
		"users":  cards,
	})
}

// GetSubmissions: 단일 핸들의 제출을 조회합니다.
// from/count 가 주어지면 업스트림 페이지를 그대로 반환하고,
// 아니면 날짜 범위(생략 시 오늘 UTC+8)로 조회합니다.
func (h *APIHandler) GetSubmissions(c *gin.Context) {
	handle := c.Query("handle")
	if handle == "" {
		c.JSON(400, gin.H{
			"status":  "error",
			"message": "handle query parameter is required",
		})
		return
	}

	if c.Query("from") != "" || c.Query("count") != "" {
		h.getSubmissionPage(c, handle)
		return
	}

	r := domain.TodayRange()
	if start, end := c.Query("start"), c.Query("end"); start != "" || end != "" {
		parsed, err := domain.NewDateRange(start, end)
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

	var subs map[string][]*domain.Submission
	if r.IsToday() {
		subs = h.codeforces.FetchTodaySubmissions(ctx, []string{handle})
	} else {
		subs = h.codeforces.FetchSubmissionsInRange(ctx, []string{handle}, r)
	}

	c.JSON(200, gin.H{
		"status":      "ok",
		"handle":      handle,
		"range":       r,
		"submissions": subs[handle],
	})
}

func (h *APIHandler) getSubmissionPage(c *gin.Context, handle string) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "1"))
	if err != nil || from < 1 {
		c.JSON(400, gin.H{
			"status":  "error",
			"message": "from must be a positive integer",
		})
		return
	}
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(constants.QueryConfig.TodayPageSize)))
	if err != nil || count < 1 || count > constants.QueryConfig.RangePageSize {
		c.JSON(400, gin.H{
			"status":  "error",
			"message": "count is out of range",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), constants.RequestTimeout.Query)
	defer cancel()

	subs, err := h.codeforces.FetchSubmissions(ctx, handle, from, count)
	if err != nil {
		c.JSON(502, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(200, gin.H{
		"status":      "ok",
		"handle":      handle,
		"submissions": subs,
	})
}
