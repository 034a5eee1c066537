package configs

type SessionConfig struct {
	// CookieName 세션 쿠키 이름
	CookieName string `yaml:"cookie_name"`
	// MaxAgeSeconds 세션 수명 (기본 1시간)
	MaxAgeSeconds int `yaml:"max_age_seconds"`
	// Secure HTTPS 전용 쿠키 여부
	Secure bool `yaml:"secure"`
}

func (c *SessionConfig) applyDefaults() {
	if c.CookieName == "" {
		c.CookieName = "carlink_session"
	}
	if c.MaxAgeSeconds == 0 {
		c.MaxAgeSeconds = 3600
	}
}
