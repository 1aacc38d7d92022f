package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/cooper-xs/cf-daily-tracker/internal/config"
	"github.com/cooper-xs/cf-daily-tracker/internal/constants"
	"github.com/cooper-xs/cf-daily-tracker/internal/server"
)

// ProvideAPIAddr: 서버가 리슨할 주소를 반환합니다.
func ProvideAPIAddr(cfg *config.Config) string {
	return fmt.Sprintf(":%d", cfg.Server.Port)
}

// ProvideAPIServer: HTTP 서버 인스턴스를 생성합니다.
// H2C(HTTP/2 Cleartext)를 기본으로 사용하여 멀티플렉싱과 헤더 압축 이점을 제공한다.
func ProvideAPIServer(addr string, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           server.WrapH2C(router),
		ReadHeaderTimeout: constants.ServerTimeout.ReadHeader,
		ReadTimeout:       constants.ServerTimeout.Read,
		WriteTimeout:      constants.ServerTimeout.Write,
		IdleTimeout:       constants.ServerTimeout.Idle,
		MaxHeaderBytes:    constants.ServerTimeout.MaxHeaderBytes,
	}
}

// ProvideAPIRouter: 대시보드 API를 서빙하는 Gin 라우터를 설정합니다.
func ProvideAPIRouter(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	apiHandler *server.APIHandler,
) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	if err := router.SetTrustedProxies(constants.ServerConfig.TrustedProxies); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	router.Use(gin.Recovery())
	router.Use(server.LoggerMiddleware(ctx, logger,
		"/health",
		"/api/ws*", // 상태 스트림은 오래 붙어 있으므로 접속 로그에서 제외
	))
	router.Use(cors.New(newCORSConfig(cfg)))
	router.Use(server.SecurityHeadersMiddleware())
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/ws"})))

	registerRoutes(router, apiHandler)

	return router, nil
}

func newCORSConfig(cfg *config.Config) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = constants.CORSConfig.AllowOrigins
	if len(cfg.Server.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Server.AllowOrigins
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = constants.CORSConfig.AllowMethods
	corsConfig.AllowHeaders = constants.CORSConfig.AllowHeaders
	return corsConfig
}

func registerRoutes(router *gin.Engine, h *server.APIHandler) {
	router.GET("/health", h.GetHealth)

	api := router.Group("/api")
	{
		api.GET("/system", h.GetSystemStats)

		api.POST("/query", h.PostQuery)
		api.GET("/state", h.GetState)
		api.POST("/state/error/clear", h.ClearErrorState)
		api.GET("/ws", h.StreamState)

		api.GET("/users", h.GetUsers)
		api.GET("/submissions", h.GetSubmissions)

		api.GET("/leaderboard", h.GetLeaderboard)
		api.GET("/compare", h.GetCompare)
		api.GET("/distribution", h.GetDistribution)

		prefs := api.Group("/prefs")
		{
			prefs.GET("/theme", h.GetTheme)
			prefs.PUT("/theme", h.PutTheme)
			prefs.GET("/language", h.GetLanguage)
			prefs.PUT("/language", h.PutLanguage)
		}

		history := api.Group("/history")
		{
			history.GET("/recent", h.GetRecentHandles)
			history.POST("/recent", h.PostRecentHandles)
			history.DELETE("/recent", h.DeleteRecentHandles)
			history.GET("/search", h.GetSearchHistory)
			history.DELETE("/search", h.DeleteSearchHistory)
		}
	}
}
