package logics

import (
	"context"

	"github.com/OuserDev/Connected-Car-BE/internal/models"
	"github.com/OuserDev/Connected-Car-BE/internal/repositories"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"
)

// RequireCarOwnership은 차량 소유권을 확인하는 공용 가드입니다.
// 모든 차량 단위 작업은 부수 효과(외부 호출, 이력 기록)가 생기기 전에 이 검사를 통과해야 합니다.
func RequireCarOwnership(ctx context.Context, cars repositories.CarRepository, carID, userID uint) (*models.Car, error) {
	car, err := cars.FindByID(ctx, carID)
	if err != nil {
		return nil, apperrors.Internal("차량 조회 실패", err)
	}
	if car == nil {
		return nil, apperrors.NotFound("차량을 찾을 수 없습니다.")
	}
	if car.OwnerID == nil || *car.OwnerID != userID {
		return nil, apperrors.Unauthorized("해당 차량에 대한 권한이 없습니다.")
	}

	return car, nil
}
