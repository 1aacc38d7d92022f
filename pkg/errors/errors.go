// Package errors: cf-daily-tracker 서비스 전체에서 사용되는 에러 타입들을 정의한다.
// 표준 Go 에러 스타일(Unwrap 지원)을 따른다.
package errors

import "fmt"

// APIError: Codeforces API 호출 중 발생한 에러
// 업스트림이 FAILED 엔벨로프로 응답한 경우 comment가 Message에 담긴다.
type APIError struct {
	Operation  string // 수행 중이던 API 메서드 (user.info, user.status 등)
	StatusCode int    // HTTP 상태 코드 (0이면 네트워크 오류)
	Message    string // 업스트림이 제공한 comment (없으면 일반 메시지)
	Err        error  // 원인 에러
}

func (e APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error operation=%s status=%d: %s", e.Operation, e.StatusCode, e.Message)
	}
	if e.Err == nil {
		return fmt.Sprintf("api error operation=%s status=%d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("api error operation=%s status=%d: %v", e.Operation, e.StatusCode, e.Err)
}

func (e APIError) Unwrap() error { return e.Err }

// NewAPIError: API 에러를 생성한다.
func NewAPIError(operation string, statusCode int, message string, cause error) *APIError {
	return &APIError{
		Operation:  operation,
		StatusCode: statusCode,
		Message:    message,
		Err:        cause,
	}
}

// ValidationError: 입력 검증 실패 에러 (핸들 0개 등)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("validation error field=%s: %s", e.Field, e.Message)
}

// NewValidationError: 검증 에러를 생성한다.
func NewValidationError(message, field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NotFoundError: 업스트림 호출은 성공했지만 요청한 핸들에 대한 프로필이 없는 경우
type NotFoundError struct {
	Resource string
	Query    string
}

func (e NotFoundError) Error() string {
	if e.Query == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s not found query=%s", e.Resource, e.Query)
}

// NewNotFoundError: NotFound 에러를 생성한다.
func NewNotFoundError(resource, query string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Query:    query,
	}
}

// CacheError: 캐시 작업 중 발생한 에러
type CacheError struct {
	Operation string // get, set, delete 등
	Key       string // 캐시 키
	Err       error  // 원인 에러
}

func (e CacheError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cache error operation=%s key=%s", e.Operation, e.Key)
	}
	return fmt.Sprintf("cache error operation=%s key=%s: %v", e.Operation, e.Key, e.Err)
}

func (e CacheError) Unwrap() error { return e.Err }

// NewCacheError: 캐시 에러를 생성한다.
func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		Operation: operation,
		Key:       key,
		Err:       cause,
	}
}

