package logics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/OuserDev/Connected-Car-BE/internal/models"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// 세션 키 접두사
const sessionPrefix = "session:"

// SessionService 서버측 세션 관리 서비스.
// 쿠키에는 서명된 세션 ID만 싣고, 실제 세션 상태(유효성/만료)는 Redis가 가집니다.
// 요청마다 TTL을 연장하는 슬라이딩 만료 방식입니다.
type SessionService struct {
	logger     *zap.Logger
	redis      *redis.Client
	cookieName string
	maxAge     time.Duration
	secure     bool
}

// NewSessionService 세션 서비스 생성
func NewSessionService(logger *zap.Logger, redisClient *redis.Client, cookieName string, maxAgeSeconds int, secure bool) *SessionService {
	return &SessionService{
		logger:     logger,
		redis:      redisClient,
		cookieName: cookieName,
		maxAge:     time.Duration(maxAgeSeconds) * time.Second,
		secure:     secure,
	}
}

// Create는 로그인한 사용자를 위한 새 세션을 생성합니다.
func (s *SessionService) Create(c echo.Context, user *models.User) error {
	sessionID, err := gonanoid.New(21)
	if err != nil {
		return apperrors.Internal("세션 ID 생성 실패", err)
	}

	// Redis에 세션 등록 (폐기/만료의 기준)
	key := sessionPrefix + sessionID
	if err := s.redis.Set(c.Request().Context(), key, strconv.FormatUint(uint64(user.ID), 10), s.maxAge).Err(); err != nil {
		return apperrors.Internal("세션 저장 실패", err)
	}

	sess, err := session.Get(s.cookieName, c)
	if err != nil {
		// 손상된 쿠키는 새 세션으로 대체
		s.logger.Warn("기존 세션 쿠키 복호화 실패, 새로 발급합니다", zap.Error(err))
	}
	sess.Values = make(map[interface{}]interface{})
	sess.Values["session_id"] = sessionID
	sess.Values["user_id"] = user.ID
	sess.Values["username"] = user.Username
	sess.Options = s.cookieOptions(int(s.maxAge.Seconds()))

	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return apperrors.Internal("세션 쿠키 저장 실패", err)
	}

	return nil
}

// Validate는 요청의 세션을 검증하고 사용자 ID와 이름을 반환합니다.
// 유효한 세션은 TTL을 연장합니다 (슬라이딩 만료).
func (s *SessionService) Validate(c echo.Context) (uint, string, error) {
	sess, err := session.Get(s.cookieName, c)
	if err != nil {
		return 0, "", apperrors.Unauthenticated("세션이 유효하지 않습니다. 다시 로그인해주세요.")
	}

	sessionID, ok := sess.Values["session_id"].(string)
	if !ok || sessionID == "" {
		return 0, "", apperrors.Unauthenticated("로그인이 필요합니다.")
	}

	userID, ok := sess.Values["user_id"].(uint)
	if !ok {
		return 0, "", apperrors.Unauthenticated("세션에 사용자 정보가 없습니다.")
	}
	username, _ := sess.Values["username"].(string)

	// Redis에 세션이 남아 있는지 확인 (로그아웃/강제 폐기 반영)
	key := sessionPrefix + sessionID
	exists, err := s.redis.Exists(c.Request().Context(), key).Result()
	if err != nil {
		return 0, "", apperrors.Internal("세션 검증 중 오류 발생", err)
	}
	if exists == 0 {
		return 0, "", apperrors.Unauthenticated("세션이 만료되었습니다. 다시 로그인해주세요.")
	}

	// 만료 시간 연장
	if err := s.redis.Expire(c.Request().Context(), key, s.maxAge).Err(); err != nil {
		s.logger.Warn("세션 TTL 갱신 실패", zap.Error(err))
	}

	return userID, username, nil
}

// Revoke는 현재 요청의 세션을 폐기합니다. 이미 만료된 세션은 성공으로 처리합니다.
func (s *SessionService) Revoke(c echo.Context) error {
	sess, err := session.Get(s.cookieName, c)
	if err == nil {
		if sessionID, ok := sess.Values["session_id"].(string); ok && sessionID != "" {
			if err := s.redis.Del(c.Request().Context(), sessionPrefix+sessionID).Err(); err != nil {
				s.logger.Error("세션 삭제 실패", zap.Error(err))
				return apperrors.Internal("세션 삭제 실패", err)
			}
		}
	}

	s.Reset(c)
	return nil
}

func (s *SessionService) cookieOptions(maxAge int) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Reset은 클라이언트의 세션 쿠키를 즉시 만료시킵니다.
func (s *SessionService) Reset(c echo.Context) {
	sess, _ := session.Get(s.cookieName, c)
	sess.Values = make(map[interface{}]interface{})
	sess.Options = s.cookieOptions(-1) // 즉시 만료
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		s.logger.Warn("세션 쿠키 초기화 실패", zap.Error(err))
	}
}

// SessionKeyFor는 Redis에 저장되는 세션 키를 반환합니다. 테스트에서 사용합니다.
func SessionKeyFor(sessionID string) string {
	return fmt.Sprintf("%s%s", sessionPrefix, sessionID)
}
