package logics

import (
	"context"
	"encoding/json"

	"github.com/OuserDev/Connected-Car-BE/internal/models"
	"github.com/OuserDev/Connected-Car-BE/internal/repositories"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"go.uber.org/zap"
)

// 로컬 처리 전용 속성. car-api가 지원하지 않아 업스트림으로 전달하지 않고
// 이력만 기록합니다. 의도된 정책이므로 세 가지 토큰을 그대로 유지해야 합니다.
var localOnlyProperties = map[string]bool{
	"horn":          true,
	"flash":         true,
	"hazard_lights": true,
}

// ControlService 차량 상태 조회와 제어 명령 전달을 담당하는 서비스입니다.
// 모든 제어 시도는 성공/실패와 무관하게 정확히 1건의 이력을 남깁니다.
type ControlService struct {
	logger      *zap.Logger
	carRepo     repositories.CarRepository
	historyRepo repositories.HistoryRepository
	client      *CarAPIClient
}

// NewControlService 제어 서비스 생성
func NewControlService(logger *zap.Logger, carRepo repositories.CarRepository, historyRepo repositories.HistoryRepository, client *CarAPIClient) *ControlService {
	return &ControlService{
		logger:      logger,
		carRepo:     carRepo,
		historyRepo: historyRepo,
		client:      client,
	}
}

// GetStatus는 소유권 확인 후 차량 상태를 조회합니다. 이력은 남기지 않습니다.
func (s *ControlService) GetStatus(ctx context.Context, carID, userID uint) (map[string]interface{}, error) {
	if _, err := RequireCarOwnership(ctx, s.carRepo, carID, userID); err != nil {
		return nil, err
	}

	status, err := s.client.GetStatus(ctx, carID)
	if err != nil {
		return nil, apperrors.Unavailable("차량 상태 조회에 실패했습니다.", err)
	}

	return status, nil
}

// Control은 제어 명령을 처리합니다.
//   - horn/flash/hazard_lights: 업스트림으로 전달하지 않고 성공 이력만 기록
//   - 그 외 속성: 재시도 정책에 따라 car-api로 전달, 결과와 무관하게 이력 1건 기록
func (s *ControlService) Control(ctx context.Context, carID, userID uint, property, value string) (map[string]interface{}, error) {
	if property == "" {
		return nil, apperrors.InvalidArgument("property는 필수입니다.")
	}

	// 부수 효과 발생 전 소유권 확인
	if _, err := RequireCarOwnership(ctx, s.carRepo, carID, userID); err != nil {
		return nil, err
	}

	// car-api가 지원하지 않는 속성은 전달 없이 성공 이력만 남깁니다
	if localOnlyProperties[property] {
		params := map[string]interface{}{
			"property": property,
			"value":    value,
			"note":     "Temporary action - logged only",
		}
		s.appendHistory(ctx, carID, userID, property+"_activated", params, models.HistoryResultSuccess)

		return map[string]interface{}{
			"action": property + "_activated",
			"note":   "Temporary action - logged only",
		}, nil
	}

	resp, err := s.client.Control(ctx, carID, property, value)

	params := map[string]interface{}{
		"property": property,
		"value":    value,
	}

	if err != nil {
		// 재시도 소진 실패도 이력 1건을 남깁니다. 이력은 감사 기록이지 성공 지표가 아닙니다.
		params["error"] = err.Error()
		s.appendHistory(ctx, carID, userID, "control_error_"+property, params, models.HistoryResultError)

		return nil, apperrors.Unavailable("차량 제어 명령 전달에 실패했습니다.", err)
	}

	if resp != nil {
		params["response"] = resp
	}
	s.appendHistory(ctx, carID, userID, property+"_"+value, params, models.HistoryResultSuccess)

	return resp, nil
}

// GetLocation은 상태 응답에서 위치 정보를 추출합니다.
func (s *ControlService) GetLocation(ctx context.Context, carID, userID uint) (map[string]interface{}, error) {
	status, err := s.GetStatus(ctx, carID, userID)
	if err != nil {
		return nil, err
	}

	if location, ok := status["location"].(map[string]interface{}); ok {
		return location, nil
	}
	return status, nil
}

// GetDiagnostics는 상태 응답에서 진단 정보를 추출합니다.
func (s *ControlService) GetDiagnostics(ctx context.Context, carID, userID uint) (map[string]interface{}, error) {
	status, err := s.GetStatus(ctx, carID, userID)
	if err != nil {
		return nil, err
	}

	if diagnostics, ok := status["diagnostics"].(map[string]interface{}); ok {
		return diagnostics, nil
	}
	return status, nil
}

// Health는 car-api 헬스 상태를 보고합니다. 부수 효과가 없습니다.
func (s *ControlService) Health(ctx context.Context) (bool, error) {
	if err := s.client.Health(ctx); err != nil {
		return false, nil
	}
	return true, nil
}

// appendHistory는 이력 1건을 기록합니다. 기록 실패는 호출자의 결과를 바꾸지 않고 로그로만 남깁니다.
func (s *ControlService) appendHistory(ctx context.Context, carID, userID uint, action string, params map[string]interface{}, result string) {
	raw, err := json.Marshal(params)
	if err != nil {
		s.logger.Error("이력 파라미터 직렬화 실패", zap.Error(err))
		raw = []byte("{}")
	}

	entry := &models.CarHistory{
		CarID:      carID,
		UserID:     userID,
		Action:     action,
		Parameters: raw,
		Result:     result,
	}

	if err := s.historyRepo.Append(ctx, entry); err != nil {
		apperrors.LogError(s.logger, err, "차량 이력 기록 실패",
			zap.Uint("car_id", carID),
			zap.String("action", action),
		)
	}
}
