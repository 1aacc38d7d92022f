package stats

import (
	"sort"

	"github.com/cooper-xs/cf-daily-tracker/internal/domain"
	"github.com/cooper-xs/cf-daily-tracker/internal/util"
)

// solveGapMaxMinutes: 이 간격을 넘는 연속 정답 쌍은 풀이 속도 계산에서 제외한다
const solveGapMaxMinutes = 120.0

// ComputeStats: 제출 목록에서 사용자 통계를 계산한다.
// 입력을 변경하지 않는 순수 함수이며 빈 입력은 전부 0 인 통계를 반환한다.
func ComputeStats(submissions []*domain.Submission) *domain.UserStats {
	stats := &domain.UserStats{}
	if len(submissions) == 0 {
		return stats
	}

	days := make(map[string]struct{})
	var accepted []*domain.Submission
	ratedSum := 0
	ratedCount := 0

	for _, sub := range submissions {
		days[util.DayKey(sub.CreationTimeSeconds)] = struct{}{}

		hour := util.HourOfDay(sub.CreationTimeSeconds)
		if hour >= 22 || hour < 6 {
			stats.NightOwlCount++
		}

		if !sub.IsAccepted() {
			continue
		}
		accepted = append(accepted, sub)
		if sub.Problem.Rating != nil {
			ratedSum += *sub.Problem.Rating
			ratedCount++
		}
	}

	stats.SolveCount = len(accepted)
	stats.ActiveDays = len(days)
	stats.AcRate = util.Round1(float64(len(accepted)) / float64(len(submissions)) * 100)
	stats.TotalScore = ratedSum
	if ratedCount > 0 {
		stats.AvgRating = util.Round1(float64(ratedSum) / float64(ratedCount))
	}
	stats.AvgSolveSpeed = averageSolveGap(accepted)

	return stats
}

// averageSolveGap: 시간순으로 정렬한 정답 제출의 연속 간격 평균(분)
// 0 이하이거나 120분 이상인 간격은 별개 세션으로 보고 제외한다.
func averageSolveGap(accepted []*domain.Submission) float64 {
	if len(accepted) < 2 {
		return 0
	}

	ordered := make([]*domain.Submission, len(accepted))
	copy(ordered, accepted)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].CreationTimeSeconds < ordered[j].CreationTimeSeconds
	})

	var sum float64
	count := 0
	for i := 1; i < len(ordered); i++ {
		gap := float64(ordered[i].CreationTimeSeconds-ordered[i-1].CreationTimeSeconds) / 60.0
		if gap <= 0 || gap >= solveGapMaxMinutes {
			continue
		}
		sum += gap
		count++
	}
	if count == 0 {
		return 0
	}
	return util.Round1(sum / float64(count))
}

// ComputeRatingDistribution: 제출을 문제 레이팅 구간별로 집계한다.
// attempted 는 제출 건수, solved 는 contestId+index 로 중복을 제거한
// 정답 문제 수, failed 는 정답이 아닌 제출 건수다. 시도가 없는 구간은
// 결과에서 빠지며 unrated 구간도 같은 규칙을 따른다.
func ComputeRatingDistribution(submissions []*domain.Submission) []*domain.RatingBucket {
	buckets := make([]*domain.RatingBucket, 0, len(domain.RatingBands)+1)
	for _, band := range domain.RatingBands {
		buckets = append(buckets, &domain.RatingBucket{Band: band})
	}
	unrated := &domain.RatingBucket{Band: domain.UnratedBand, Unrated: true}
	buckets = append(buckets, unrated)

	bucketFor := func(rating *int) *domain.RatingBucket {
		if rating == nil {
			return unrated
		}
		band := domain.BandFor(rating)
		for _, b := range buckets {
			if !b.Unrated && b.Band.Label == band.Label {
				return b
			}
		}
		return unrated
	}

	solvedKeys := make(map[string]struct{})
	for _, sub := range submissions {
		bucket := bucketFor(sub.Problem.Rating)
		bucket.Attempted++

		if sub.IsAccepted() {
			key := sub.Problem.Key()
			if _, seen := solvedKeys[key]; !seen {
				solvedKeys[key] = struct{}{}
				bucket.Solved++
			}
		} else {
			bucket.Failed++
		}
	}

	result := make([]*domain.RatingBucket, 0, len(buckets))
	for _, b := range buckets {
		if b.Attempted == 0 {
			continue
		}
		result = append(result, b)
	}
	return result
}
