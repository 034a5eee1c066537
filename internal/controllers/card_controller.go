package controllers

import (
	"net/http"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"
	"github.com/OuserDev/Connected-Car-BE/internal/middlewares"
	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CardController 결제 카드 HTTP 요청을 처리합니다.
type CardController struct {
	BaseController
	cardService *logics.CardService
}

// NewCardController CardController 생성
func NewCardController(logger *zap.Logger, cardService *logics.CardService) *CardController {
	return &CardController{
		BaseController: NewBaseController(logger),
		cardService:    cardService,
	}
}

// List 내 카드 목록
func (cc *CardController) List(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return cc.Fail(c, err)
	}

	cards, err := cc.cardService.List(c.Request().Context(), userID)
	if err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusOK, cards)
}

// Register 카드 등록
func (cc *CardController) Register(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return cc.Fail(c, err)
	}

	var req models.CardRegisterRequest
	if err := cc.bindAndValidate(c, &req); err != nil {
		return cc.Fail(c, err)
	}

	card, err := cc.cardService.Register(c.Request().Context(), userID, req)
	if err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusCreated, card)
}

// SetDefault 기본 카드 전환
func (cc *CardController) SetDefault(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return cc.Fail(c, err)
	}

	cardID, err := cc.paramUint(c, "id")
	if err != nil {
		return cc.Fail(c, err)
	}

	if err := cc.cardService.SetDefault(c.Request().Context(), userID, cardID); err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusOK, map[string]string{"message": "기본 카드가 변경되었습니다."})
}

// Delete 카드 삭제
func (cc *CardController) Delete(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return cc.Fail(c, err)
	}

	cardID, err := cc.paramUint(c, "id")
	if err != nil {
		return cc.Fail(c, err)
	}

	if err := cc.cardService.Delete(c.Request().Context(), userID, cardID); err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusOK, map[string]string{"message": "카드가 삭제되었습니다."})
}
