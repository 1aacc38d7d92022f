package codeforces

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"

	"github.com/cooper-xs/cf-daily-tracker/pkg/errors"
)

// Requester: Codeforces API 메서드 호출을 추상화하는 인터페이스
// 서비스 레이어 테스트에서 가짜 구현을 주입한다.
type Requester interface {
	DoRequest(ctx context.Context, apiMethod string, params url.Values) (json.RawMessage, error)
}

// envelope: 모든 응답을 감싸는 업스트림 공통 포맷
// status 가 "OK" 가 아니면 result 대신 comment 에 사유가 담긴다.
type envelope struct {
	Status  string          `json:"status"`
	Comment string          `json:"comment,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
}

// APIClient: 요청 큐를 통해 Codeforces REST API 를 호출하는 HTTP 클라이언트
type APIClient struct {
	httpClient *http.Client
	baseURL    string
	queue      *RateLimitedQueue
	logger     *slog.Logger
}

// NewAPIClient: 타임아웃과 요청 큐가 연결된 API 클라이언트를 생성한다.
func NewAPIClient(baseURL string, timeout time.Duration, queue *RateLimitedQueue, logger *slog.Logger) *APIClient {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 4
	transport.IdleConnTimeout = 90 * time.Second

	return &APIClient{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		baseURL: baseURL,
		queue:   queue,
		logger:  logger,
	}
}

// DoRequest: API 메서드 호출을 큐에 넣고 envelope 의 result 를 반환한다.
// status 가 FAILED 인 응답은 comment 를 담은 APIError 로 변환된다.
func (c *APIClient) DoRequest(ctx context.Context, apiMethod string, params url.Values) (json.RawMessage, error) {
	body, err := c.queue.Enqueue(ctx, func(taskCtx context.Context) ([]byte, error) {
		return c.fetch(taskCtx, apiMethod, params)
	})
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errors.NewAPIError(apiMethod, 0, "invalid response body", err)
	}

	if env.Status != "OK" {
		comment := env.Comment
		if comment == "" {
			comment = "request failed without comment"
		}
		c.logger.Warn("codeforces API rejected request",
			slog.String("method", apiMethod),
			slog.String("comment", comment))
		return nil, errors.NewAPIError(apiMethod, 0, comment, nil)
	}

	return env.Result, nil
}

func (c *APIClient) fetch(ctx context.Context, apiMethod string, params url.Values) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, apiMethod)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewAPIError(apiMethod, 0, "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewAPIError(apiMethod, 0, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewAPIError(apiMethod, resp.StatusCode, "failed to read response body", err)
	}

	c.logger.Debug("codeforces API request",
		slog.String("method", apiMethod),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	// FAILED envelope 도 4xx/5xx 로 내려오므로 본문은 그대로 위로 넘긴다
	if resp.StatusCode != http.StatusOK && len(body) == 0 {
		return nil, errors.NewAPIError(apiMethod, resp.StatusCode, "empty error response", nil)
	}

	return body, nil
}
