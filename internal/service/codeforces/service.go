package codeforces

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/cooper-xs/cf-daily-tracker/internal/constants"
	"github.com/cooper-xs/cf-daily-tracker/internal/domain"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/cache"
	"github.com/cooper-xs/cf-daily-tracker/internal/util"
	"github.com/cooper-xs/cf-daily-tracker/pkg/errors"
)

// Service: Codeforces API 위에 캐싱과 도메인 변환을 얹은 서비스 레이어
type Service struct {
	requester Requester
	cache     *cache.Service
	logger    *slog.Logger
}

// NewService: Codeforces 서비스를 생성한다. cache 는 nil 일 수 있다.
func NewService(requester Requester, cacheService *cache.Service, logger *slog.Logger) *Service {
	return &Service{
		requester: requester,
		cache:     cacheService,
		logger:    logger,
	}
}

// FetchUsers: user.info 로 핸들 목록의 프로필을 한 번에 조회한다.
// 빈 입력은 업스트림 호출 없이 빈 목록을 반환하고, 배치 중 하나라도
// 유효하지 않은 핸들이 있으면 전체 조회가 실패한다.
func (s *Service) FetchUsers(ctx context.Context, handles []string) ([]*domain.User, error) {
	if len(handles) == 0 {
		return []*domain.User{}, nil
	}

	normalized := make([]string, len(handles))
	for i, h := range handles {
		normalized[i] = util.Normalize(h)
	}
	cacheKey := "user_info:" + strings.Join(normalized, ";")

	if s.cache != nil {
		var cached []*domain.User
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil && cached != nil {
			return cached, nil
		}
	}

	params := url.Values{}
	params.Set("handles", strings.Join(handles, ";"))

	result, err := s.requester.DoRequest(ctx, "user.info", params)
	if err != nil {
		return nil, err
	}

	var users []*domain.User
	if err := json.Unmarshal(result, &users); err != nil {
		return nil, errors.NewAPIError("user.info", 0, "failed to parse users", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, users, constants.CacheTTL.UserInfo); err != nil {
			s.logger.Warn("failed to cache user info", slog.Any("error", err))
		}
	}

	return users, nil
}

// FetchSubmissions: user.status 로 단일 핸들의 제출 한 페이지를 조회한다.
func (s *Service) FetchSubmissions(ctx context.Context, handle string, from, count int) ([]*domain.Submission, error) {
	params := url.Values{}
	params.Set("handle", handle)
	params.Set("from", strconv.Itoa(from))
	params.Set("count", strconv.Itoa(count))

	result, err := s.requester.DoRequest(ctx, "user.status", params)
	if err != nil {
		return nil, err
	}

	var submissions []*domain.Submission
	if err := json.Unmarshal(result, &submissions); err != nil {
		return nil, errors.NewAPIError("user.status", 0, "failed to parse submissions", err)
	}

	return submissions, nil
}

// FetchTodaySubmissions: 각 핸들의 오늘(UTC+8) 제출을 조회한다.
// 최근 제출 한 페이지만 읽어 오늘 범위로 거른다. 조회에 실패한
// 핸들은 빈 목록으로 처리되어 나머지 핸들에 영향을 주지 않는다.
func (s *Service) FetchTodaySubmissions(ctx context.Context, handles []string) map[string][]*domain.Submission {
	today := domain.TodayRange()
	out := make(map[string][]*domain.Submission, len(handles))

	for _, handle := range handles {
		out[handle] = s.fetchTodayForHandle(ctx, handle, today)
	}

	return out
}

func (s *Service) fetchTodayForHandle(ctx context.Context, handle string, today domain.DateRange) []*domain.Submission {
	cacheKey := fmt.Sprintf("today_subs:%s:%s", util.Normalize(handle), today.Start)
	if s.cache != nil {
		var cached []*domain.Submission
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil && cached != nil {
			return cached
		}
	}

	page, err := s.FetchSubmissions(ctx, handle, 1, constants.QueryConfig.TodayPageSize)
	if err != nil {
		s.logger.Warn("failed to fetch today submissions",
			slog.String("handle", handle),
			slog.Any("error", err))
		return []*domain.Submission{}
	}

	filtered := filterByRange(page, today)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, filtered, constants.CacheTTL.Submissions); err != nil {
			s.logger.Warn("failed to cache today submissions",
				slog.String("handle", handle),
				slog.Any("error", err))
		}
	}

	return filtered
}

// FetchSubmissionsInRange: 각 핸들의 제출을 날짜 범위로 조회한다.
// user.status 는 최신순이므로 범위 시작보다 오래된 제출이 나오면
// 페이지 넘김을 멈춘다. 실패한 핸들은 빈 목록으로 처리된다.
func (s *Service) FetchSubmissionsInRange(ctx context.Context, handles []string, r domain.DateRange) map[string][]*domain.Submission {
	out := make(map[string][]*domain.Submission, len(handles))

	for _, handle := range handles {
		subs, err := s.fetchRangeForHandle(ctx, handle, r)
		if err != nil {
			s.logger.Warn("failed to fetch submissions in range",
				slog.String("handle", handle),
				slog.String("start", r.Start),
				slog.String("end", r.End),
				slog.Any("error", err))
			out[handle] = []*domain.Submission{}
			continue
		}
		out[handle] = subs
	}

	return out
}

func (s *Service) fetchRangeForHandle(ctx context.Context, handle string, r domain.DateRange) ([]*domain.Submission, error) {
	pageSize := constants.QueryConfig.RangePageSize
	startUnix := r.StartUnix()

	var collected []*domain.Submission
	from := 1
	for {
		page, err := s.FetchSubmissions(ctx, handle, from, pageSize)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}

		collected = append(collected, filterByRange(page, r)...)

		oldest := page[len(page)-1]
		if len(page) < pageSize || oldest.CreationTimeSeconds < startUnix {
			break
		}
		from += pageSize
	}

	if collected == nil {
		collected = []*domain.Submission{}
	}
	return collected, nil
}

func filterByRange(submissions []*domain.Submission, r domain.DateRange) []*domain.Submission {
	filtered := make([]*domain.Submission, 0, len(submissions))
	for _, sub := range submissions {
		if r.Contains(sub.CreationTimeSeconds) {
			filtered = append(filtered, sub)
		}
	}
	return filtered
}
