package logics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"
	"github.com/OuserDev/Connected-Car-BE/internal/models"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fastRetryPolicy() logics.RetryPolicy {
	return logics.RetryPolicy{
		MaxAttempts:     3,
		InitialInterval: time.Millisecond,
		Multiplier:      2.0,
	}
}

func ownedCar(carID, userID uint) *models.Car {
	return &models.Car{ID: carID, OwnerID: &userID, VIN: "KMHXX00XXXX000001", LicensePlate: "12가3456"}
}

func newControlService(t *testing.T, upstreamURL string, carRepo *MockCarRepository, historyRepo *MockHistoryRepository) *logics.ControlService {
	t.Helper()
	client := logics.NewCarAPIClient(zap.NewNop(), upstreamURL, 2*time.Second, time.Second, fastRetryPolicy())
	return logics.NewControlService(zap.NewNop(), carRepo, historyRepo, client)
}

func TestControlService_Control(t *testing.T) {
	ctx := context.Background()

	t.Run("horn is handled locally without upstream call", func(t *testing.T) {
		var upstreamCalls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&upstreamCalls, 1)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		carRepo := new(MockCarRepository)
		historyRepo := new(MockHistoryRepository)
		carRepo.On("FindByID", mock.Anything, uint(1)).Return(ownedCar(1, 10), nil)

		var recorded []*models.CarHistory
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("*models.CarHistory")).
			Run(func(args mock.Arguments) {
				recorded = append(recorded, args.Get(1).(*models.CarHistory))
			}).
			Return(nil)

		service := newControlService(t, server.URL, carRepo, historyRepo)

		result, err := service.Control(ctx, 1, 10, "horn", "on")
		require.NoError(t, err)
		assert.Equal(t, "horn_activated", result["action"])
		assert.Equal(t, "Temporary action - logged only", result["note"])

		assert.Equal(t, int32(0), atomic.LoadInt32(&upstreamCalls))
		require.Len(t, recorded, 1)
		assert.Equal(t, "horn_activated", recorded[0].Action)
		assert.Equal(t, models.HistoryResultSuccess, recorded[0].Result)
	})

	t.Run("forwarded command succeeds after transient failures", func(t *testing.T) {
		var upstreamCalls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			n := atomic.AddInt32(&upstreamCalls, 1)
			if n < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"result": "ok"}`))
		}))
		defer server.Close()

		carRepo := new(MockCarRepository)
		historyRepo := new(MockHistoryRepository)
		carRepo.On("FindByID", mock.Anything, uint(1)).Return(ownedCar(1, 10), nil)

		var recorded []*models.CarHistory
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("*models.CarHistory")).
			Run(func(args mock.Arguments) {
				recorded = append(recorded, args.Get(1).(*models.CarHistory))
			}).
			Return(nil)

		service := newControlService(t, server.URL, carRepo, historyRepo)

		result, err := service.Control(ctx, 1, 10, "engine", "start")
		require.NoError(t, err)
		assert.Equal(t, "ok", result["result"])

		// 2회 실패 후 3번째 시도에서 성공
		assert.Equal(t, int32(3), atomic.LoadInt32(&upstreamCalls))
		require.Len(t, recorded, 1)
		assert.Equal(t, "engine_start", recorded[0].Action)
		assert.Equal(t, models.HistoryResultSuccess, recorded[0].Result)
	})

	t.Run("exhausted retries record a single error entry", func(t *testing.T) {
		var upstreamCalls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&upstreamCalls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		carRepo := new(MockCarRepository)
		historyRepo := new(MockHistoryRepository)
		carRepo.On("FindByID", mock.Anything, uint(1)).Return(ownedCar(1, 10), nil)

		var recorded []*models.CarHistory
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("*models.CarHistory")).
			Run(func(args mock.Arguments) {
				recorded = append(recorded, args.Get(1).(*models.CarHistory))
			}).
			Return(nil)

		service := newControlService(t, server.URL, carRepo, historyRepo)

		_, err := service.Control(ctx, 1, 10, "engine", "start")
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrUnavailable, appErr.Code())

		assert.Equal(t, int32(3), atomic.LoadInt32(&upstreamCalls))
		require.Len(t, recorded, 1)
		assert.Equal(t, "control_error_engine", recorded[0].Action)
		assert.Equal(t, models.HistoryResultError, recorded[0].Result)
	})

	t.Run("non-owner gets forbidden without side effects", func(t *testing.T) {
		var upstreamCalls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&upstreamCalls, 1)
		}))
		defer server.Close()

		carRepo := new(MockCarRepository)
		historyRepo := new(MockHistoryRepository)
		carRepo.On("FindByID", mock.Anything, uint(1)).Return(ownedCar(1, 10), nil)

		service := newControlService(t, server.URL, carRepo, historyRepo)

		_, err := service.Control(ctx, 1, 99, "engine", "start")
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code())

		assert.Equal(t, int32(0), atomic.LoadInt32(&upstreamCalls))
		historyRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("missing car returns not found", func(t *testing.T) {
		carRepo := new(MockCarRepository)
		historyRepo := new(MockHistoryRepository)
		carRepo.On("FindByID", mock.Anything, uint(77)).Return(nil, nil)

		service := newControlService(t, "http://127.0.0.1:1", carRepo, historyRepo)

		_, err := service.Control(ctx, 77, 10, "engine", "start")
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrNotFound, appErr.Code())
		historyRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("empty property is rejected before ownership check", func(t *testing.T) {
		carRepo := new(MockCarRepository)
		historyRepo := new(MockHistoryRepository)

		service := newControlService(t, "http://127.0.0.1:1", carRepo, historyRepo)

		_, err := service.Control(ctx, 1, 10, "", "on")
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrInvalidArgument, appErr.Code())
		carRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestControlService_GetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("returns upstream status for owner", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"battery": 82, "location": {"lat": 37.5, "lng": 127.0}}`))
		}))
		defer server.Close()

		carRepo := new(MockCarRepository)
		historyRepo := new(MockHistoryRepository)
		carRepo.On("FindByID", mock.Anything, uint(1)).Return(ownedCar(1, 10), nil)

		service := newControlService(t, server.URL, carRepo, historyRepo)

		status, err := service.GetStatus(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, float64(82), status["battery"])

		// 상태 조회는 이력을 남기지 않음
		historyRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("location is extracted from status payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"location": {"lat": 37.5, "lng": 127.0}}`))
		}))
		defer server.Close()

		carRepo := new(MockCarRepository)
		historyRepo := new(MockHistoryRepository)
		carRepo.On("FindByID", mock.Anything, uint(1)).Return(ownedCar(1, 10), nil)

		service := newControlService(t, server.URL, carRepo, historyRepo)

		location, err := service.GetLocation(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 37.5, location["lat"])
	})

	t.Run("upstream failure maps to unavailable", func(t *testing.T) {
		carRepo := new(MockCarRepository)
		historyRepo := new(MockHistoryRepository)
		carRepo.On("FindByID", mock.Anything, uint(1)).Return(ownedCar(1, 10), nil)

		// 닫힌 포트로 연결 실패 유도
		service := newControlService(t, "http://127.0.0.1:1", carRepo, historyRepo)

		_, err := service.GetStatus(ctx, 1, 10)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrUnavailable, appErr.Code())
	})
}

func TestControlService_Health(t *testing.T) {
	t.Run("healthy upstream", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "ok"}`))
		}))
		defer server.Close()

		service := newControlService(t, server.URL, new(MockCarRepository), new(MockHistoryRepository))

		healthy, err := service.Health(context.Background())
		require.NoError(t, err)
		assert.True(t, healthy)
	})

	t.Run("unreachable upstream reports unhealthy without error", func(t *testing.T) {
		service := newControlService(t, "http://127.0.0.1:1", new(MockCarRepository), new(MockHistoryRepository))

		healthy, err := service.Health(context.Background())
		require.NoError(t, err)
		assert.False(t, healthy)
	})
}
