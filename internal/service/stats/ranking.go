package stats

import (
	"sort"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/cooper-xs/cf-daily-tracker/internal/constants"
	"github.com/cooper-xs/cf-daily-tracker/internal/domain"
)

// LeaderboardEntry: 리더보드의 한 줄
type LeaderboardEntry struct {
	Rank   int               `json:"rank"`
	Handle string            `json:"handle"`
	Value  float64           `json:"value"`
	Stats  *domain.UserStats `json:"stats"`
}

// BuildLeaderboard: 핸들별 제출 목록을 통계로 바꾸고 지정한 차원으로 정렬한다.
// 통계 계산은 핸들별로 독립이라 제한된 고루틴 풀에서 병렬로 수행한다.
// 값이 같으면 핸들 사전순으로 순위를 고정한다.
func BuildLeaderboard(subsByHandle map[string][]*domain.Submission, dim domain.Dimension) []*LeaderboardEntry {
	entries := make([]*LeaderboardEntry, 0, len(subsByHandle))

	var mu sync.Mutex
	p := pool.New().WithMaxGoroutines(constants.LeaderboardConfig.MaxGoroutines)
	for handle, subs := range subsByHandle {
		handle, subs := handle, subs
		p.Go(func() {
			entry := &LeaderboardEntry{
				Handle: handle,
				Stats:  ComputeStats(subs),
			}
			entry.Value = dim.ValueOf(*entry.Stats)

			mu.Lock()
			entries = append(entries, entry)
			mu.Unlock()
		})
	}
	p.Wait()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Handle < entries[j].Handle
	})
	for i, entry := range entries {
		entry.Rank = i + 1
	}

	return entries
}

// DimensionOutcome: 1:1 비교에서 한 차원의 결과
type DimensionOutcome struct {
	Dimension domain.Dimension `json:"dimension"`
	Left      float64          `json:"left"`
	Right     float64          `json:"right"`
	Winner    string           `json:"winner,omitempty"`
}

// CompareResult: 두 핸들의 전 차원 비교 결과
type CompareResult struct {
	LeftHandle  string              `json:"leftHandle"`
	RightHandle string              `json:"rightHandle"`
	LeftStats   *domain.UserStats   `json:"leftStats"`
	RightStats  *domain.UserStats   `json:"rightStats"`
	Outcomes    []*DimensionOutcome `json:"outcomes"`
	Winner      string              `json:"winner,omitempty"`
}

// ComparePair: 두 핸들의 통계를 모든 차원에 대해 비교한다.
// 차원별 승자를 가린 뒤 더 많은 차원을 이긴 쪽이 전체 승자가 된다.
// 동점이면 승자를 비워 둔다.
func ComparePair(leftHandle string, leftSubs []*domain.Submission, rightHandle string, rightSubs []*domain.Submission) *CompareResult {
	result := &CompareResult{
		LeftHandle:  leftHandle,
		RightHandle: rightHandle,
		LeftStats:   ComputeStats(leftSubs),
		RightStats:  ComputeStats(rightSubs),
	}

	leftWins := 0
	rightWins := 0
	for _, dim := range domain.Dimensions {
		outcome := &DimensionOutcome{
			Dimension: dim,
			Left:      dim.ValueOf(*result.LeftStats),
			Right:     dim.ValueOf(*result.RightStats),
		}
		switch {
		case outcome.Left > outcome.Right:
			outcome.Winner = leftHandle
			leftWins++
		case outcome.Right > outcome.Left:
			outcome.Winner = rightHandle
			rightWins++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	switch {
	case leftWins > rightWins:
		result.Winner = leftHandle
	case rightWins > leftWins:
		result.Winner = rightHandle
	}

	return result
}
