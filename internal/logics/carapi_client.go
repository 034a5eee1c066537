package logics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// RetryPolicy 제어 명령 재시도 정책. 호출부에 하드코딩하지 않고 설정에서 주입합니다.
type RetryPolicy struct {
	// MaxAttempts 총 시도 횟수 (최초 시도 포함)
	MaxAttempts int
	// InitialInterval 첫 재시도 전 대기 시간
	InitialInterval time.Duration
	// Multiplier 대기 시간 배수
	Multiplier float64
}

// CarAPIClient 외부 차량 텔레메트리 서비스(car-api) HTTP 클라이언트입니다.
// 연결 실패 / 타임아웃 / 비정상 응답을 구분된 에러로 보고합니다.
type CarAPIClient struct {
	logger       *zap.Logger
	baseURL      string
	httpClient   *http.Client
	healthClient *http.Client
	retryPolicy  RetryPolicy
}

// NewCarAPIClient car-api 클라이언트 생성
func NewCarAPIClient(logger *zap.Logger, baseURL string, timeout, healthTimeout time.Duration, policy RetryPolicy) *CarAPIClient {
	return &CarAPIClient{
		logger:       logger,
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: timeout},
		healthClient: &http.Client{Timeout: healthTimeout},
		retryPolicy:  policy,
	}
}

// GetStatus는 차량 상태를 1회 조회합니다. 재시도하지 않습니다.
func (c *CarAPIClient) GetStatus(ctx context.Context, carID uint) (map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/api/vehicle/status?id=%d", c.baseURL, carID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	return c.do(c.httpClient, req)
}

// Control은 제어 명령을 전달합니다. 설정된 재시도 정책에 따라 재시도하며,
// 첫 성공에서 중단하고 전부 실패하면 마지막 에러를 반환합니다.
func (c *CarAPIClient) Control(ctx context.Context, carID uint, property, value string) (map[string]interface{}, error) {
	body, err := json.Marshal(map[string]interface{}{
		"id":       carID,
		"property": property,
		"value":    value,
	})
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	attempt := 0

	operation := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/vehicle/control", bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.do(c.httpClient, req)
		if err != nil {
			c.logger.Warn("car-api 제어 명령 실패",
				zap.Int("attempt", attempt),
				zap.Uint("car_id", carID),
				zap.String("property", property),
				zap.Error(err),
			)
			return err
		}

		result = resp
		return nil
	}

	// 고정 배수 백오프: 기본 설정으로 200ms, 400ms 대기 후 총 3회 시도
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = c.retryPolicy.InitialInterval
	expo.Multiplier = c.retryPolicy.Multiplier
	expo.RandomizationFactor = 0
	expo.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(c.retryPolicy.MaxAttempts-1)), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return result, nil
}

// Health는 car-api 헬스 엔드포인트를 짧은 타임아웃으로 1회 조회합니다.
func (c *CarAPIClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	_, err = c.do(c.healthClient, req)
	return err
}

// do는 요청을 실행하고 실패 유형을 구분된 에러로 돌려줍니다.
func (c *CarAPIClient) do(client *http.Client, req *http.Request) (map[string]interface{}, error) {
	resp, err := client.Do(req)
	if err != nil {
		// 타임아웃과 연결 실패를 구분해 보고
		if uerr, ok := err.(*url.Error); ok && uerr.Timeout() {
			return nil, fmt.Errorf("car-api 응답 시간 초과: %w", err)
		}
		return nil, fmt.Errorf("car-api 연결 실패: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("car-api 응답 읽기 실패: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("car-api 비정상 응답 (status %d): %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var payload map[string]interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("car-api 응답 파싱 실패: %w", err)
		}
	}

	return payload, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
