package util

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		unix     int64
		expected string
	}{
		"utc midnight is utc+8 morning": {
			// 2024-03-01 00:30:00 UTC == 2024-03-01 08:30:00 UTC+8
			unix:     time.Date(2024, 3, 1, 0, 30, 0, 0, time.UTC).Unix(),
			expected: "2024-03-01",
		},
		"late utc evening rolls into next civil day": {
			// 2024-03-01 17:00:00 UTC == 2024-03-02 01:00:00 UTC+8
			unix:     time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC).Unix(),
			expected: "2024-03-02",
		},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := DayKey(tc.unix); got != tc.expected {
				t.Fatalf("DayKey() = %s, expected %s", got, tc.expected)
			}
		})
	}
}

func TestHourOfDay(t *testing.T) {
	t.Parallel()

	// 2024-03-01 15:00:00 UTC == 23:00 UTC+8
	unix := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC).Unix()
	if got := HourOfDay(unix); got != 23 {
		t.Fatalf("HourOfDay() = %d, expected 23", got)
	}
}

func TestParseCivilDate(t *testing.T) {
	t.Parallel()

	parsed, err := ParseCivilDate("2024-03-01")
	if err != nil {
		t.Fatalf("ParseCivilDate failed: %v", err)
	}
	if parsed.Hour() != 0 || parsed.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", parsed)
	}
	// UTC+8 자정은 UTC 전날 16시
	if got := parsed.UTC().Hour(); got != 16 {
		t.Fatalf("expected 16:00 UTC, got %d", got)
	}

	if _, err := ParseCivilDate("01/03/2024"); err == nil {
		t.Fatalf("expected error for invalid format")
	}
}
