package tracker

import (
	"context"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"github.com/cooper-xs/cf-daily-tracker/internal/constants"
	"github.com/cooper-xs/cf-daily-tracker/internal/domain"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/stats"
	"github.com/cooper-xs/cf-daily-tracker/internal/util"
	"github.com/cooper-xs/cf-daily-tracker/pkg/errors"
)

// Phase: 조회 수명주기 상태
type Phase string

// Phase 상수 목록.
const (
	// PhaseIdle 는 상수다.
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// State: 프레젠테이션 레이어에 노출되는 조회 상태 스냅샷
// 새 조회가 시작되면 loading 으로 바뀌지만 직전 성공 결과는
// 다음 결과로 대체되기 전까지 유지된다.
type State struct {
	Phase               Phase                           `json:"phase"`
	QueryID             uint64                          `json:"queryId"`
	Handles             []string                        `json:"handles"`
	Range               domain.DateRange                `json:"range"`
	Users               []*domain.User                  `json:"users"`
	SubmissionsByHandle map[string][]*domain.Submission `json:"submissionsByHandle"`
	StatsByHandle       map[string]*domain.UserStats    `json:"statsByHandle"`
	Error               string                          `json:"error,omitempty"`
	UpdatedAt           int64                           `json:"updatedAt"`
}

// Fetcher: 오케스트레이터가 사용하는 업스트림 조회 동작
type Fetcher interface {
	FetchUsers(ctx context.Context, handles []string) ([]*domain.User, error)
	FetchTodaySubmissions(ctx context.Context, handles []string) map[string][]*domain.Submission
	FetchSubmissionsInRange(ctx context.Context, handles []string, r domain.DateRange) map[string][]*domain.Submission
}

// HistoryRecorder: 성공한 조회를 이력에 남기는 동작
type HistoryRecorder interface {
	RecordHandles(ctx context.Context, handles []string)
	RecordSearch(ctx context.Context, handles []string, r domain.DateRange)
}

var handleSeparators = regexp.MustCompile(`[,，\s]+`)

// ParseHandles: 원본 입력을 핸들 목록으로 정규화한다.
// 쉼표/전각 쉼표/공백으로 나누고, 대소문자만 다른 중복은 먼저 나온
// 표기를 남기며, 상한을 넘는 핸들은 잘라낸다. 핸들이 하나도 없으면
// 검증 오류를 반환한다.
func ParseHandles(raw string) ([]string, error) {
	parts := handleSeparators.Split(raw, -1)

	handles := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		handle := util.TrimSpace(part)
		if handle == "" {
			continue
		}
		key := util.Normalize(handle)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		handles = append(handles, handle)
		if len(handles) == constants.QueryConfig.MaxHandles {
			break
		}
	}

	if len(handles) == 0 {
		return nil, errors.NewValidationError("at least one handle is required", "handles")
	}
	return handles, nil
}

// Service: 한 번의 조회를 끝까지 끌고 가는 오케스트레이터
// idle → loading → success/error 상태 기계를 유지하고, 동시에 여러
// 조회가 겹치면 가장 마지막에 시작한 조회만 최종 상태를 쓴다.
type Service struct {
	fetcher Fetcher
	history HistoryRecorder
	logger  *slog.Logger

	mu          sync.RWMutex
	state       State
	seq         uint64
	subscribers map[chan State]struct{}
}

// NewService 는 동작을 수행한다. history 는 nil 일 수 있다.
func NewService(fetcher Fetcher, history HistoryRecorder, logger *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		history: history,
		logger:  logger,
		state: State{
			Phase:               PhaseIdle,
			Handles:             []string{},
			Range:               domain.TodayRange(),
			Users:               []*domain.User{},
			SubmissionsByHandle: map[string][]*domain.Submission{},
			StatsByHandle:       map[string]*domain.UserStats{},
			UpdatedAt:           time.Now().Unix(),
		},
		subscribers: make(map[chan State]struct{}),
	}
}

// Query: 핸들 입력과 날짜 범위로 전체 조회를 수행한다.
// 프로필 일괄 조회가 실패하거나 일치하는 유저가 없으면 오류 상태로
// 끝난다. 제출 조회는 핸들 단위로 실패가 격리되어 있어 일부 핸들의
// 실패가 전체를 막지 않는다.
func (s *Service) Query(ctx context.Context, rawHandles string, r domain.DateRange) (State, error) {
	handles, err := ParseHandles(rawHandles)
	if err != nil {
		return s.Snapshot(), err
	}

	seq := s.beginQuery(handles, r)

	users, err := s.fetcher.FetchUsers(ctx, handles)
	if err != nil {
		s.logger.Warn("user lookup failed",
			slog.Any("handles", handles),
			slog.Any("error", err))
		s.finishError(seq, err.Error())
		return s.Snapshot(), err
	}
	if len(users) == 0 {
		nfErr := errors.NewNotFoundError("user", rawHandles)
		s.finishError(seq, nfErr.Error())
		return s.Snapshot(), nfErr
	}

	var subsByHandle map[string][]*domain.Submission
	if r.IsToday() {
		subsByHandle = s.fetcher.FetchTodaySubmissions(ctx, handles)
	} else {
		subsByHandle = s.fetcher.FetchSubmissionsInRange(ctx, handles, r)
	}

	statsByHandle := make(map[string]*domain.UserStats, len(subsByHandle))
	for handle, subs := range subsByHandle {
		statsByHandle[handle] = stats.ComputeStats(subs)
	}

	if !s.finishSuccess(seq, users, subsByHandle, statsByHandle) {
		// 더 새로운 조회가 이미 시작됨: 결과를 버린다
		s.logger.Debug("stale query result discarded", slog.Uint64("queryId", seq))
		return s.Snapshot(), nil
	}

	if s.history != nil {
		s.history.RecordHandles(ctx, handles)
		s.history.RecordSearch(ctx, handles, r)
	}

	return s.Snapshot(), nil
}

// beginQuery: 시퀀스를 올리고 loading 상태를 게시한다.
func (s *Service) beginQuery(handles []string, r domain.DateRange) uint64 {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.state.Phase = PhaseLoading
	s.state.QueryID = seq
	s.state.Handles = handles
	s.state.Range = r
	s.state.Error = ""
	s.state.UpdatedAt = time.Now().Unix()
	snapshot := s.state
	s.mu.Unlock()

	s.broadcast(snapshot)
	return seq
}

// finishSuccess: 이 조회가 여전히 최신일 때만 성공 상태를 쓴다.
func (s *Service) finishSuccess(seq uint64, users []*domain.User, subs map[string][]*domain.Submission, statsByHandle map[string]*domain.UserStats) bool {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return false
	}
	s.state.Phase = PhaseSuccess
	s.state.Users = users
	s.state.SubmissionsByHandle = subs
	s.state.StatsByHandle = statsByHandle
	s.state.Error = ""
	s.state.UpdatedAt = time.Now().Unix()
	snapshot := s.state
	s.mu.Unlock()

	s.broadcast(snapshot)
	return true
}

func (s *Service) finishError(seq uint64, message string) {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return
	}
	s.state.Phase = PhaseError
	s.state.Error = message
	s.state.UpdatedAt = time.Now().Unix()
	snapshot := s.state
	s.mu.Unlock()

	s.broadcast(snapshot)
}

// ClearError: 오류 상태를 지우고 다음 조회를 받을 준비 상태로 돌린다.
// 직전 성공 결과는 그대로 남는다.
func (s *Service) ClearError() State {
	s.mu.Lock()
	if s.state.Phase == PhaseError {
		s.state.Phase = PhaseIdle
		s.state.Error = ""
		s.state.UpdatedAt = time.Now().Unix()
	}
	snapshot := s.state
	s.mu.Unlock()

	s.broadcast(snapshot)
	return snapshot
}

// Snapshot: 현재 상태의 복사본
func (s *Service) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe: 상태 변경 스트림을 구독한다. 반환된 함수로 구독을 해지한다.
// 채널 버퍼가 가득 찬 구독자는 해당 갱신을 건너뛴다.
func (s *Service) Subscribe() (<-chan State, func()) {
	ch := make(chan State, constants.WebSocketConfig.SendBuffer)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Service) broadcast(snapshot State) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.subscribers {
		select {
		case ch <- snapshot:
		default:
		}
	}
}
