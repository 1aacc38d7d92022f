package domain

import "fmt"

// Verdict 는 타입이다.
type Verdict string

// Verdict 상수 목록.
const (
	// VerdictOK 는 상수다.
	VerdictOK                      Verdict = "OK"
	VerdictWrongAnswer             Verdict = "WRONG_ANSWER"
	VerdictTimeLimitExceeded       Verdict = "TIME_LIMIT_EXCEEDED"
	VerdictMemoryLimitExceeded     Verdict = "MEMORY_LIMIT_EXCEEDED"
	VerdictRuntimeError            Verdict = "RUNTIME_ERROR"
	VerdictCompilationError        Verdict = "COMPILATION_ERROR"
	VerdictPresentationError       Verdict = "PRESENTATION_ERROR"
	VerdictIdlenessLimitExceeded   Verdict = "IDLENESS_LIMIT_EXCEEDED"
	VerdictSecurityViolated        Verdict = "SECURITY_VIOLATED"
	VerdictCrashed                 Verdict = "CRASHED"
	VerdictInputPreparationCrashed Verdict = "INPUT_PREPARATION_CRASHED"
	VerdictChallenged              Verdict = "CHALLENGED"
	VerdictSkipped                 Verdict = "SKIPPED"
	VerdictTesting                 Verdict = "TESTING"
	VerdictRejected                Verdict = "REJECTED"
)

func (v Verdict) String() string {
	return string(v)
}

// IsAccepted 는 동작을 수행한다.
func (v Verdict) IsAccepted() bool {
	return v == VerdictOK
}

// IsPending: 아직 채점이 끝나지 않은 제출인지 확인한다. (verdict 누락 포함)
func (v Verdict) IsPending() bool {
	return v == VerdictTesting || v == ""
}

// IsRejected: 채점이 끝났지만 통과하지 못한 제출인지 확인한다.
func (v Verdict) IsRejected() bool {
	return !v.IsAccepted() && !v.IsPending()
}

// Problem: 제출 대상 문제 정보
// ContestID가 0이면 대회에 속하지 않은 문제, Rating이 nil이면 난이도 미부여 문제다.
type Problem struct {
	ContestID int64    `json:"contestId,omitempty"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Type      string   `json:"type,omitempty"`
	Points    *float64 `json:"points,omitempty"`
	Rating    *int     `json:"rating,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// Key: 문제 식별 키(contestId + index)를 반환한다.
// 같은 문제를 여러 번 통과해도 해결 문제 수는 한 번만 세기 위한 중복 제거용.
func (p *Problem) Key() string {
	return fmt.Sprintf("%d-%s", p.ContestID, p.Index)
}

// URL: 문제 페이지 링크를 반환한다. (대회 정보가 없으면 빈 문자열)
func (p *Problem) URL() string {
	if p == nil || p.ContestID == 0 {
		return ""
	}
	return fmt.Sprintf("https://codeforces.com/contest/%d/problem/%s", p.ContestID, p.Index)
}

// Submission: Codeforces user.status 응답의 제출 기록 (수신 후 불변)
type Submission struct {
	ID                  int64   `json:"id"`
	ContestID           int64   `json:"contestId,omitempty"`
	CreationTimeSeconds int64   `json:"creationTimeSeconds"`
	RelativeTimeSeconds int64   `json:"relativeTimeSeconds"`
	Problem             Problem `json:"problem"`
	ProgrammingLanguage string  `json:"programmingLanguage"`
	Verdict             Verdict `json:"verdict,omitempty"`
	Testset             string  `json:"testset,omitempty"`
	PassedTestCount     int     `json:"passedTestCount"`
	TimeConsumedMillis  int64   `json:"timeConsumedMillis"`
	MemoryConsumedBytes int64   `json:"memoryConsumedBytes"`
}

// IsAccepted 는 동작을 수행한다.
func (s *Submission) IsAccepted() bool {
	if s == nil {
		return false
	}
	return s.Verdict.IsAccepted()
}

// URL: 제출 상세 페이지 링크를 반환한다. (대회 정보가 없으면 빈 문자열)
func (s *Submission) URL() string {
	if s == nil || s.ContestID == 0 {
		return ""
	}
	return fmt.Sprintf("https://codeforces.com/contest/%d/submission/%d", s.ContestID, s.ID)
}
