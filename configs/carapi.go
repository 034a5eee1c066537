package configs

// CarAPIConfig는 외부 차량 텔레메트리 서비스(car-api) 연동 설정입니다.
// 재시도 정책을 설정으로 노출하여 호출부에 하드코딩하지 않습니다.
type CarAPIConfig struct {
	BaseURL string `yaml:"base_url"`
	// TimeoutSeconds 일반 호출 타임아웃 (기본 10초)
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// HealthTimeoutSeconds 헬스체크 타임아웃 (기본 5초)
	HealthTimeoutSeconds int `yaml:"health_timeout_seconds"`
	// RetryMaxAttempts 제어 명령 총 시도 횟수 (기본 3회)
	RetryMaxAttempts int `yaml:"retry_max_attempts"`
	// RetryInitialIntervalMs 첫 재시도 전 대기 시간 (기본 200ms)
	RetryInitialIntervalMs int `yaml:"retry_initial_interval_ms"`
	// RetryMultiplier 대기 시간 배수 (기본 2.0 → 200ms, 400ms)
	RetryMultiplier float64 `yaml:"retry_multiplier"`
}

func (c *CarAPIConfig) applyDefaults() {
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 10
	}
	if c.HealthTimeoutSeconds == 0 {
		c.HealthTimeoutSeconds = 5
	}
	if c.RetryMaxAttempts == 0 {
		c.RetryMaxAttempts = 3
	}
	if c.RetryInitialIntervalMs == 0 {
		c.RetryInitialIntervalMs = 200
	}
	if c.RetryMultiplier == 0 {
		c.RetryMultiplier = 2.0
	}
}
