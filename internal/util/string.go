package util

import "strings"

// TrimSpace: 문자열 양쪽 끝의 공백을 제거한다. (strings.TrimSpace 래퍼)
func TrimSpace(s string) string {
	return strings.TrimSpace(s)
}

// Normalize: 문자열을 소문자로 변환하고 양쪽 공백을 제거합니다.
// 핸들 중복 판정은 대소문자를 구분하지 않으므로 비교 키 생성에 사용된다.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
