package server

import (
	"github.com/gin-gonic/gin"

	"github.com/cooper-xs/cf-daily-tracker/internal/domain"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/stats"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/tracker"
)

// currentSubmissions: 마지막으로 성공한 조회의 제출 데이터를 꺼낸다.
// 성공한 조회가 없으면 nil 을 반환한다.
func (h *APIHandler) currentSubmissions() (tracker.State, map[string][]*domain.Submission) {
	state := h.tracker.Snapshot()
	if len(state.SubmissionsByHandle) == 0 {
		return state, nil
	}
	return state, state.SubmissionsByHandle
}

// GetLeaderboard: 현재 조회 결과를 지정한 차원으로 정렬해 반환합니다.
// 조회 없이도 뷰 전환이 가능하도록 항상 스냅샷 데이터만 사용합니다.
func (h *APIHandler) GetLeaderboard(c *gin.Context) {
	dim := domain.Dimension(c.DefaultQuery("dimension", string(domain.DimensionSolveCount)))
	if !dim.IsValid() {
		c.JSON(400, gin.H{
			"status":  "error",
			"message": "unknown ranking dimension",
		})
		return
	}

	state, subs := h.currentSubmissions()
	if subs == nil {
		c.JSON(200, gin.H{
			"status":    "ok",
			"dimension": dim,
			"queryId":   state.QueryID,
			"entries":   []any{},
		})
		return
	}

	c.JSON(200, gin.H{
		"status":    "ok",
		"dimension": dim,
		"queryId":   state.QueryID,
		"entries":   stats.BuildLeaderboard(subs, dim),
	})
}

// GetCompare: 현재 조회 결과에 포함된 두 핸들을 1:1 로 비교합니다.
func (h *APIHandler) GetCompare(c *gin.Context) {
	left := c.Query("left")
	right := c.Query("right")
	if left == "" || right == "" || left == right {
		c.JSON(400, gin.H{
			"status":  "error",
			"message": "left and right query parameters must name two different handles",
		})
		return
	}

	_, subs := h.currentSubmissions()
	if subs == nil {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "no query result to compare against",
		})
		return
	}

	leftSubs, leftOK := subs[left]
	rightSubs, rightOK := subs[right]
	if !leftOK || !rightOK {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "both handles must be part of the current query",
		})
		return
	}

	c.JSON(200, gin.H{
		"status": "ok",
		"result": stats.ComparePair(left, leftSubs, right, rightSubs),
	})
}

// GetDistribution: 난이도 구간별 제출 분포를 반환합니다.
// handle 을 지정하면 해당 핸들만, 생략하면 전체 합산으로 집계합니다.
// 합산 뷰에서는 여러 명이 같은 문제를 풀어도 해결 문제로는 한 번만 센다.
// (그룹이 함께 푼 문제 집합을 보여주는 뷰이며, 인별 수치는 handle 지정으로 조회)
func (h *APIHandler) GetDistribution(c *gin.Context) {
	filter := domain.ResultFilter(c.DefaultQuery("filter", string(domain.ResultFilterAll)))
	if !filter.IsValid() {
		c.JSON(400, gin.H{
			"status":  "error",
			"message": "filter must be one of all, accepted, rejected",
		})
		return
	}

	_, subs := h.currentSubmissions()
	if subs == nil {
		c.JSON(200, gin.H{
			"status":  "ok",
			"filter":  filter,
			"buckets": []any{},
		})
		return
	}

	var pool []*domain.Submission
	if handle := c.Query("handle"); handle != "" {
		handleSubs, ok := subs[handle]
		if !ok {
			c.JSON(404, gin.H{
				"status":  "error",
				"message": "handle is not part of the current query",
			})
			return
		}
		pool = handleSubs
	} else {
		for _, handleSubs := range subs {
			pool = append(pool, handleSubs...)
		}
	}

	c.JSON(200, gin.H{
		"status":  "ok",
		"filter":  filter,
		"buckets": stats.ComputeRatingDistribution(pool),
	})
}
