package prefs

import (
	"context"
	"log/slog"
	"time"

	"github.com/cooper-xs/cf-daily-tracker/internal/constants"
	"github.com/cooper-xs/cf-daily-tracker/internal/domain"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/cache"
	"github.com/cooper-xs/cf-daily-tracker/internal/util"
	"github.com/cooper-xs/cf-daily-tracker/pkg/errors"
)

const (
	prefsHashKey     = "prefs"
	themeField       = "theme"
	languageField    = "language"
	recentHandlesKey = "recent_handles"
	searchHistoryKey = "search_history"
)

// SearchRecord: 최근 조회 이력 한 건
type SearchRecord struct {
	Handles []string `json:"handles"`
	Start   string   `json:"start"`
	End     string   `json:"end"`
	At      int64    `json:"at"`
}

// Service: 테마/언어 설정과 최근 핸들, 조회 이력을 관리한다.
// 이력 기록은 best-effort 로, 저장 실패가 조회 자체를 막지 않는다.
type Service struct {
	cache  *cache.Service
	logger *slog.Logger
}

// NewService 는 동작을 수행한다.
func NewService(cacheService *cache.Service, logger *slog.Logger) *Service {
	return &Service{cache: cacheService, logger: logger}
}

// GetTheme: 저장된 테마를 반환한다. 비어 있거나 알 수 없는 값이면 기본 테마.
func (s *Service) GetTheme(ctx context.Context) domain.Theme {
	value, err := s.cache.HGet(ctx, prefsHashKey, themeField)
	if err != nil {
		s.logger.Warn("failed to read theme", slog.Any("error", err))
		return domain.DefaultTheme
	}
	theme := domain.Theme(value)
	if !theme.IsValid() {
		return domain.DefaultTheme
	}
	return theme
}

// SetTheme 는 동작을 수행한다.
func (s *Service) SetTheme(ctx context.Context, theme domain.Theme) error {
	if !theme.IsValid() {
		return errors.NewValidationError("unknown theme", "theme")
	}
	return s.cache.HSet(ctx, prefsHashKey, themeField, string(theme))
}

// GetLanguage: 저장된 표시 언어를 반환한다. 기본값은 중국어.
func (s *Service) GetLanguage(ctx context.Context) domain.Language {
	value, err := s.cache.HGet(ctx, prefsHashKey, languageField)
	if err != nil {
		s.logger.Warn("failed to read language", slog.Any("error", err))
		return domain.DefaultLanguage
	}
	lang := domain.Language(value)
	if !lang.IsValid() {
		return domain.DefaultLanguage
	}
	return lang
}

// SetLanguage 는 동작을 수행한다.
func (s *Service) SetLanguage(ctx context.Context, lang domain.Language) error {
	if !lang.IsValid() {
		return errors.NewValidationError("unknown language", "language")
	}
	return s.cache.HSet(ctx, prefsHashKey, languageField, string(lang))
}

// RecentHandles: 최근에 조회한 핸들 목록 (최신순)
// 읽기 실패는 빈 목록으로 처리한다.
func (s *Service) RecentHandles(ctx context.Context) []string {
	var handles []string
	if err := s.cache.Get(ctx, recentHandlesKey, &handles); err != nil {
		s.logger.Warn("failed to read recent handles", slog.Any("error", err))
		return []string{}
	}
	if handles == nil {
		return []string{}
	}
	return handles
}

// RecordHandles: 조회한 핸들을 최근 목록 맨 앞으로 올린다.
// 대소문자만 다른 핸들은 하나로 취급하고 목록은 상한까지 자른다.
func (s *Service) RecordHandles(ctx context.Context, handles []string) {
	if len(handles) == 0 {
		return
	}

	existing := s.RecentHandles(ctx)

	merged := make([]string, 0, len(handles)+len(existing))
	seen := make(map[string]struct{}, len(handles)+len(existing))
	for _, h := range handles {
		key := util.Normalize(h)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, h)
	}
	for _, h := range existing {
		key := util.Normalize(h)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, h)
	}

	if len(merged) > constants.HistoryConfig.MaxRecentHandles {
		merged = merged[:constants.HistoryConfig.MaxRecentHandles]
	}

	if err := s.cache.Set(ctx, recentHandlesKey, merged, 0); err != nil {
		s.logger.Warn("failed to store recent handles", slog.Any("error", err))
	}
}

// RemoveRecentHandle: 최근 목록에서 핸들 하나를 지운다. (대소문자 무시)
func (s *Service) RemoveRecentHandle(ctx context.Context, handle string) error {
	key := util.Normalize(handle)
	if key == "" {
		return errors.NewValidationError("handle is empty", "handle")
	}

	existing := s.RecentHandles(ctx)
	remaining := make([]string, 0, len(existing))
	for _, h := range existing {
		if util.Normalize(h) == key {
			continue
		}
		remaining = append(remaining, h)
	}
	if len(remaining) == len(existing) {
		return nil
	}
	return s.cache.Set(ctx, recentHandlesKey, remaining, 0)
}

// ClearRecentHandles 는 동작을 수행한다.
func (s *Service) ClearRecentHandles(ctx context.Context) error {
	return s.cache.Del(ctx, recentHandlesKey)
}

// SearchHistory: 최근 조회 이력 (최신순)
func (s *Service) SearchHistory(ctx context.Context) []SearchRecord {
	var records []SearchRecord
	if err := s.cache.Get(ctx, searchHistoryKey, &records); err != nil {
		s.logger.Warn("failed to read search history", slog.Any("error", err))
		return []SearchRecord{}
	}
	if records == nil {
		return []SearchRecord{}
	}
	return records
}

// RecordSearch: 완료된 조회를 이력 맨 앞에 기록한다.
func (s *Service) RecordSearch(ctx context.Context, handles []string, r domain.DateRange) {
	if len(handles) == 0 {
		return
	}

	record := SearchRecord{
		Handles: handles,
		Start:   r.Start,
		End:     r.End,
		At:      time.Now().Unix(),
	}

	records := append([]SearchRecord{record}, s.SearchHistory(ctx)...)
	if len(records) > constants.HistoryConfig.MaxSearchHistory {
		records = records[:constants.HistoryConfig.MaxSearchHistory]
	}

	if err := s.cache.Set(ctx, searchHistoryKey, records, 0); err != nil {
		s.logger.Warn("failed to store search history", slog.Any("error", err))
	}
}

// ClearSearchHistory 는 동작을 수행한다.
func (s *Service) ClearSearchHistory(ctx context.Context) error {
	return s.cache.Del(ctx, searchHistoryKey)
}
