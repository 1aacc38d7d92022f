package domain

import (
	"fmt"
	"time"

	"github.com/cooper-xs/cf-daily-tracker/internal/util"
)

// DateRange: UTC+8 달력 날짜 기준의 조회 범위 (양 끝 포함)
// Start와 End는 "2006-01-02" 형식의 날짜 문자열이다.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewDateRange: 날짜 범위를 생성하고 정규화한다.
// 역전된 입력(start > end)은 start 하루로 접어서 처리한다.
func NewDateRange(start, end string) (DateRange, error) {
	startTime, err := util.ParseCivilDate(start)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	endTime, err := util.ParseCivilDate(end)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}

	if startTime.After(endTime) {
		return DateRange{Start: start, End: start}, nil
	}
	return DateRange{Start: start, End: end}, nil
}

// TodayRange: 오늘(UTC+8) 하루짜리 범위를 반환한다.
func TodayRange() DateRange {
	today := util.TodayCivilDate()
	return DateRange{Start: today, End: today}
}

// StartUnix: 범위 시작일의 UTC+8 00:00:00 Unix 타임스탬프를 반환한다.
func (r DateRange) StartUnix() int64 {
	start, err := util.ParseCivilDate(r.Start)
	if err != nil {
		return 0
	}
	return start.Unix()
}

// EndUnix: 범위 종료일의 UTC+8 23:59:59 Unix 타임스탬프를 반환한다.
func (r DateRange) EndUnix() int64 {
	end, err := util.ParseCivilDate(r.End)
	if err != nil {
		return 0
	}
	return end.Add(24*time.Hour - time.Second).Unix()
}

// Contains: Unix 타임스탬프(초)가 범위 안에 포함되는지 확인한다. (양 끝 포함)
func (r DateRange) Contains(unixSeconds int64) bool {
	return unixSeconds >= r.StartUnix() && unixSeconds <= r.EndUnix()
}

// IsToday: 범위가 정확히 오늘(UTC+8) 하루인지 확인한다.
// 오늘 하루짜리 쿼리는 전용 오늘 조회 경로를 탄다.
func (r DateRange) IsToday() bool {
	today := util.TodayCivilDate()
	return r.Start == today && r.End == today
}

// IsValid: Start/End가 모두 파싱 가능한 날짜인지 확인한다.
func (r DateRange) IsValid() bool {
	if _, err := util.ParseCivilDate(r.Start); err != nil {
		return false
	}
	if _, err := util.ParseCivilDate(r.End); err != nil {
		return false
	}
	return true
}
