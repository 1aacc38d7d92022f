package util

import (
	"time"
)

var cstLocation *time.Location

func init() {
	var err error
	cstLocation, err = time.LoadLocation("Asia/Shanghai")
	if err != nil {
		cstLocation = time.FixedZone("CST", 8*60*60)
	}
}

// CSTLocation: 서비스 전체에서 사용하는 고정 UTC+8 타임존을 반환합니다.
// 일일 통계의 하루 경계는 뷰어의 로컬 타임존과 무관하게 UTC+8 기준이다.
func CSTLocation() *time.Location {
	return cstLocation
}

// NowCST: 현재 시간을 UTC+8 기준으로 반환합니다.
func NowCST() time.Time {
	return time.Now().In(cstLocation)
}

// DayKey: Unix 타임스탬프(초)가 속하는 UTC+8 달력 날짜 키("2006-01-02")를 반환합니다.
// 활동일 집계 등 "같은 날" 판정에 사용된다.
func DayKey(unixSeconds int64) string {
	return time.Unix(unixSeconds, 0).In(cstLocation).Format("2006-01-02")
}

// HourOfDay: Unix 타임스탬프(초)의 UTC+8 기준 시(hour, 0-23)를 반환합니다.
func HourOfDay(unixSeconds int64) int {
	return time.Unix(unixSeconds, 0).In(cstLocation).Hour()
}

// ParseCivilDate: "2006-01-02" 형식의 날짜 문자열을 UTC+8 자정 시각으로 파싱합니다.
func ParseCivilDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, cstLocation)
}

// TodayCivilDate: 오늘의 UTC+8 달력 날짜 문자열("2006-01-02")을 반환합니다.
func TodayCivilDate() string {
	return NowCST().Format("2006-01-02")
}
