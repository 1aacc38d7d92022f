package server

import (
	"log/slog"
	"time"

	"github.com/cooper-xs/cf-daily-tracker/internal/service/cache"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/codeforces"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/prefs"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/system"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/tracker"
)

// APIHandler: 대시보드 API 요청을 처리하는 핸들러입니다.
// 핸들러 메서드는 도메인별 파일로 분리됨:
//   - api_query.go: 조회 실행 + 상태 조회
//   - api_user.go: 유저 프로필/제출 직접 조회
//   - api_stats.go: 리더보드/PK 비교/난이도 분포
//   - api_prefs.go: 테마/언어 설정 + 조회 이력
//   - websocket.go: 상태 스트리밍
type APIHandler struct {
	tracker     *tracker.Service
	codeforces  *codeforces.Service
	prefs       *prefs.Service
	valkeyCache *cache.Service
	systemStats *system.Collector
	logger      *slog.Logger
	startTime   time.Time
}

// NewAPIHandler: 새로운 API 핸들러를 생성합니다.
func NewAPIHandler(
	trackerSvc *tracker.Service,
	codeforcesSvc *codeforces.Service,
	prefsSvc *prefs.Service,
	valkeyCache *cache.Service,
	systemSvc *system.Collector,
	logger *slog.Logger,
) *APIHandler {
	return &APIHandler{
		tracker:     trackerSvc,
		codeforces:  codeforcesSvc,
		prefs:       prefsSvc,
		valkeyCache: valkeyCache,
		systemStats: systemSvc,
		logger:      logger,
		startTime:   time.Now(),
	}
}
