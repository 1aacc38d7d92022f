package util

// Round1: 실수를 소수점 첫째 자리까지 반올림합니다. (통과율 등 표시용 수치)
func Round1(v float64) float64 {
	if v >= 0 {
		return float64(int64(v*10+0.5)) / 10
	}
	return float64(int64(v*10-0.5)) / 10
}
