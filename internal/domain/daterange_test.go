package domain

import (
	"testing"
	"time"

	"github.com/cooper-xs/cf-daily-tracker/internal/util"
)

func TestNewDateRangeNormalizesReversedInput(t *testing.T) {
	t.Parallel()

	r, err := NewDateRange("2024-03-10", "2024-03-01")
	if err != nil {
		t.Fatalf("NewDateRange failed: %v", err)
	}
	if r.Start != "2024-03-10" || r.End != "2024-03-10" {
		t.Fatalf("reversed range should collapse to single day, got %+v", r)
	}
}

func TestNewDateRangeRejectsInvalidDate(t *testing.T) {
	t.Parallel()

	if _, err := NewDateRange("2024/03/01", "2024-03-02"); err == nil {
		t.Fatalf("expected error for invalid start date")
	}
	if _, err := NewDateRange("2024-03-01", "not-a-date"); err == nil {
		t.Fatalf("expected error for invalid end date")
	}
}

func TestDateRangeBounds(t *testing.T) {
	t.Parallel()

	r, err := NewDateRange("2024-03-01", "2024-03-02")
	if err != nil {
		t.Fatalf("NewDateRange failed: %v", err)
	}

	start := time.Unix(r.StartUnix(), 0).In(util.CSTLocation())
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Fatalf("expected start at midnight UTC+8, got %v", start)
	}

	end := time.Unix(r.EndUnix(), 0).In(util.CSTLocation())
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Fatalf("expected end at 23:59:59 UTC+8, got %v", end)
	}

	// 양 끝 포함 확인
	if !r.Contains(r.StartUnix()) {
		t.Fatalf("range should contain its start instant")
	}
	if !r.Contains(r.EndUnix()) {
		t.Fatalf("range should contain its end instant")
	}
	if r.Contains(r.StartUnix() - 1) {
		t.Fatalf("range should not contain instant before start")
	}
	if r.Contains(r.EndUnix() + 1) {
		t.Fatalf("range should not contain instant after end")
	}
}

func TestDateRangeIsToday(t *testing.T) {
	t.Parallel()

	today := TodayRange()
	if !today.IsToday() {
		t.Fatalf("TodayRange should report IsToday")
	}

	r := DateRange{Start: "2020-01-01", End: "2020-01-01"}
	if r.IsToday() {
		t.Fatalf("past single day should not report IsToday")
	}
}
