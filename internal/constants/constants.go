package constants

import "time"

// APIConfig 는 패키지 변수다.
var APIConfig = struct {
	CodeforcesBaseURL string
	CodeforcesTimeout time.Duration
}{
	CodeforcesBaseURL: "https://codeforces.com/api",
	CodeforcesTimeout: 15 * time.Second, // 간헐적 서버 지연 대응
}

// QueueConfig 는 패키지 변수다.
var QueueConfig = struct {
	MinInterval   time.Duration
	PendingBuffer int
}{
	MinInterval:   400 * time.Millisecond, // 2초당 최대 5회 요청 (Codeforces 제한)
	PendingBuffer: 64,                     // 대기 태스크 버퍼 (핸들 10개 × 여유분)
}

// QueryConfig 는 패키지 변수다.
var QueryConfig = struct {
	MaxHandles    int
	TodayPageSize int
	RangePageSize int
}{
	MaxHandles:    10,  // 한 번에 조회 가능한 핸들 수
	TodayPageSize: 50,  // 오늘 조회 경로의 user.status 페이지 크기
	RangePageSize: 100, // 날짜 범위 조회 경로의 user.status 페이지 크기
}

// CacheTTL 는 패키지 변수다.
var CacheTTL = struct {
	UserInfo    time.Duration
	Submissions time.Duration
}{
	UserInfo:    60 * time.Second, // 1분 - 프로필은 쿼리 수명 동안만 신선하면 충분
	Submissions: 60 * time.Second, // 1분 - 제출 페이지
}

// HistoryConfig 는 패키지 변수다.
var HistoryConfig = struct {
	MaxRecentHandles int
	MaxSearchHistory int
}{
	MaxRecentHandles: 20, // 최근 핸들 목록 상한 (최신순)
	MaxSearchHistory: 20, // 레거시 검색 기록 상한
}

// ValkeyConfig 는 패키지 변수다.
var ValkeyConfig = struct {
	ReadyTimeout      time.Duration
	DialTimeout       time.Duration
	ConnWriteTimeout  time.Duration
	BlockingPoolSize  int
	PipelineMultiplex int
}{
	ReadyTimeout:      5 * time.Second,
	DialTimeout:       5 * time.Second,
	ConnWriteTimeout:  10 * time.Second,
	BlockingPoolSize:  100,
	PipelineMultiplex: 4,
}

// ServerTimeout 는 패키지 변수다.
var ServerTimeout = struct {
	ReadHeader     time.Duration
	Read           time.Duration
	Write          time.Duration
	Idle           time.Duration
	Shutdown       time.Duration
	MaxHeaderBytes int
}{
	ReadHeader:     5 * time.Second,
	Read:           30 * time.Second,
	Write:          60 * time.Second, // WebSocket 업그레이드 전 일반 응답 기준
	Idle:           120 * time.Second,
	Shutdown:       10 * time.Second,
	MaxHeaderBytes: 1 << 20,
}

// RequestTimeout 는 패키지 변수다.
var RequestTimeout = struct {
	Query   time.Duration
	Lookup  time.Duration
	Prefs   time.Duration
	Default time.Duration
}{
	Query:   90 * time.Second, // 핸들 10개 × 직렬 큐 400ms 간격 + 업스트림 지연 여유
	Lookup:  20 * time.Second,
	Prefs:   5 * time.Second,
	Default: 15 * time.Second,
}

// ServerConfig 는 패키지 변수다.
var ServerConfig = struct {
	TrustedProxies []string
}{
	TrustedProxies: []string{"127.0.0.1", "::1"},
}

// CORSConfig 는 패키지 변수다.
var CORSConfig = struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
}{
	AllowOrigins: []string{"http://localhost:5173", "http://localhost:4173"}, // Vite dev/preview
	AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
}

// WebSocketConfig 는 패키지 변수다.
var WebSocketConfig = struct {
	ReadBufferSize  int
	WriteBufferSize int
	WriteTimeout    time.Duration
	PingInterval    time.Duration
	SendBuffer      int
}{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	WriteTimeout:    10 * time.Second,
	PingInterval:    30 * time.Second,
	SendBuffer:      8, // 상태 전이 브로드캐스트 버퍼
}

// LeaderboardConfig 는 패키지 변수다.
var LeaderboardConfig = struct {
	MaxGoroutines int
}{
	MaxGoroutines: 4, // 유저별 통계 집계 병렬도 (순수 연산, API 큐와 무관)
}

// AppTimeout 는 패키지 변수다.
var AppTimeout = struct {
	Build time.Duration
}{
	Build: 30 * time.Second,
}
