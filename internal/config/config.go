package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/cooper-xs/cf-daily-tracker/internal/constants"
	"github.com/cooper-xs/cf-daily-tracker/internal/util"
)

// Config: 트래커 서비스 전체 동작에 필요한 설정을 담는 구조체
type Config struct {
	Server     ServerConfig
	Codeforces CodeforcesConfig
	Valkey     ValkeyConfig
	Logging    LoggingConfig
	Version    string
}

// ServerConfig: HTTP API 서버 설정
type ServerConfig struct {
	Port         int
	AllowOrigins []string
}

// CodeforcesConfig: Codeforces API 호출 관련 설정
type CodeforcesConfig struct {
	BaseURL     string
	Timeout     time.Duration
	MinInterval time.Duration // 요청 간 최소 간격 (업스트림 제한: 2초당 5회)
}

// ValkeyConfig: 캐시 및 설정 저장소(Valkey) 연결 설정
type ValkeyConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// LoggingConfig: 애플리케이션 로그 설정 (레벨, 디렉토리, 로테이션 정책)
type LoggingConfig struct {
	Level      string
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Load: .env 파일 및 환경 변수로부터 설정을 로드하고, 기본값을 적용하여 Config 객체를 생성한다.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvInt("SERVER_PORT", 30080),
			AllowOrigins: parseCommaSeparated(getEnv("CORS_ALLOW_ORIGINS", "")),
		},
		Codeforces: CodeforcesConfig{
			BaseURL: getEnv("CF_API_BASE_URL", constants.APIConfig.CodeforcesBaseURL),
			Timeout: time.Duration(getEnvInt(
				"CF_API_TIMEOUT_SECONDS",
				int(constants.APIConfig.CodeforcesTimeout.Seconds()),
			)) * time.Second,
			MinInterval: time.Duration(getEnvInt(
				"CF_MIN_INTERVAL_MS",
				int(constants.QueueConfig.MinInterval.Milliseconds()),
			)) * time.Millisecond,
		},
		Valkey: ValkeyConfig{
			Host:     getEnv("CACHE_HOST", "localhost"),
			Port:     getEnvInt("CACHE_PORT", 6379),
			Password: getEnv("CACHE_PASSWORD", ""),
			DB:       getEnvInt("CACHE_DB", 0),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Dir:        getEnv("LOG_DIR", "logs"),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 30),
			Compress:   getEnvBool("LOG_COMPRESS", true),
		},
		Version: util.TrimSpace(getEnv("APP_VERSION", "1.0.0-go")),
	}

	if len(cfg.Server.AllowOrigins) == 0 {
		cfg.Server.AllowOrigins = constants.CORSConfig.AllowOrigins
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate: 필수 설정값이 올바른지 검증한다.
func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.Codeforces.BaseURL == "" {
		return fmt.Errorf("CF_API_BASE_URL is required")
	}
	if c.Codeforces.MinInterval <= 0 {
		return fmt.Errorf("CF_MIN_INTERVAL_MS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := util.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
