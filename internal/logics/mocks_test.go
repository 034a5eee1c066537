package logics_test

import (
	"context"
	"time"

	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCarRepository is a mock implementation of CarRepository
type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) FindByID(ctx context.Context, id uint) (*models.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Car, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]models.Car), args.Error(1)
}

func (m *MockCarRepository) Create(ctx context.Context, car *models.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepository) ExistsVIN(ctx context.Context, vin string) (bool, error) {
	args := m.Called(ctx, vin)
	return args.Bool(0), args.Error(1)
}

func (m *MockCarRepository) ExistsPlate(ctx context.Context, plate string) (bool, error) {
	args := m.Called(ctx, plate)
	return args.Bool(0), args.Error(1)
}

func (m *MockCarRepository) ClearOwner(ctx context.Context, carID uint) error {
	args := m.Called(ctx, carID)
	return args.Error(0)
}

func (m *MockCarRepository) ReleaseAllByOwner(ctx context.Context, ownerID uint) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

// MockHistoryRepository is a mock implementation of HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Append(ctx context.Context, entry *models.CarHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListByCar(ctx context.Context, carID uint, limit, offset int) ([]models.CarHistory, error) {
	args := m.Called(ctx, carID, limit, offset)
	return args.Get(0).([]models.CarHistory), args.Error(1)
}

func (m *MockHistoryRepository) CountByCar(ctx context.Context, carID uint) (int64, error) {
	args := m.Called(ctx, carID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockSpecRepository is a mock implementation of SpecRepository
type MockSpecRepository struct {
	mock.Mock
}

func (m *MockSpecRepository) List(ctx context.Context) ([]models.VehicleSpec, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.VehicleSpec), args.Error(1)
}

func (m *MockSpecRepository) FindByID(ctx context.Context, id uint) (*models.VehicleSpec, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VehicleSpec), args.Error(1)
}

func (m *MockSpecRepository) Search(ctx context.Context, keyword string) ([]models.VehicleSpec, error) {
	args := m.Called(ctx, keyword)
	return args.Get(0).([]models.VehicleSpec), args.Error(1)
}

func (m *MockSpecRepository) Random(ctx context.Context) (*models.VehicleSpec, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VehicleSpec), args.Error(1)
}

// MockCardRepository is a mock implementation of CardRepository
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) ListByUser(ctx context.Context, userID uint) ([]models.RegisteredCard, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.RegisteredCard), args.Error(1)
}

func (m *MockCardRepository) FindByID(ctx context.Context, id uint) (*models.RegisteredCard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RegisteredCard), args.Error(1)
}

func (m *MockCardRepository) ExistsByHash(ctx context.Context, userID uint, hash string) (bool, error) {
	args := m.Called(ctx, userID, hash)
	return args.Bool(0), args.Error(1)
}

func (m *MockCardRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCardRepository) Create(ctx context.Context, card *models.RegisteredCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) SetDefault(ctx context.Context, userID, cardID uint) error {
	args := m.Called(ctx, userID, cardID)
	return args.Error(0)
}

func (m *MockCardRepository) DeleteAndPromote(ctx context.Context, userID, cardID uint) error {
	args := m.Called(ctx, userID, cardID)
	return args.Error(0)
}

// MockPhotoRepository is a mock implementation of PhotoRepository
type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) ListByUser(ctx context.Context, userID uint) ([]models.CarPhoto, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.CarPhoto), args.Error(1)
}

func (m *MockPhotoRepository) FindByID(ctx context.Context, id uint) (*models.CarPhoto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CarPhoto), args.Error(1)
}

func (m *MockPhotoRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPhotoRepository) Create(ctx context.Context, photo *models.CarPhoto) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) SetMain(ctx context.Context, userID, photoID uint) error {
	args := m.Called(ctx, userID, photoID)
	return args.Error(0)
}

func (m *MockPhotoRepository) DeleteAndPromote(ctx context.Context, userID, photoID uint) (*models.CarPhoto, error) {
	args := m.Called(ctx, userID, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CarPhoto), args.Error(1)
}

// MockDrivingRecordRepository is a mock implementation of DrivingRecordRepository
type MockDrivingRecordRepository struct {
	mock.Mock
}

func (m *MockDrivingRecordRepository) ListByUser(ctx context.Context, userID uint, carID uint) ([]models.DrivingRecord, error) {
	args := m.Called(ctx, userID, carID)
	return args.Get(0).([]models.DrivingRecord), args.Error(1)
}

func (m *MockDrivingRecordRepository) Create(ctx context.Context, record *models.DrivingRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDrivingRecordRepository) Summary(ctx context.Context, userID uint) (*models.DrivingSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DrivingSummary), args.Error(1)
}

// MockMarketRepository is a mock implementation of MarketRepository
type MockMarketRepository struct {
	mock.Mock
}

func (m *MockMarketRepository) List(ctx context.Context, status string, limit, offset int) ([]models.MarketPost, error) {
	args := m.Called(ctx, status, limit, offset)
	return args.Get(0).([]models.MarketPost), args.Error(1)
}

func (m *MockMarketRepository) FindByID(ctx context.Context, id uint) (*models.MarketPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MarketPost), args.Error(1)
}

func (m *MockMarketRepository) IncrementViewAndGet(ctx context.Context, id uint) (*models.MarketPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MarketPost), args.Error(1)
}

func (m *MockMarketRepository) Create(ctx context.Context, post *models.MarketPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockMarketRepository) Update(ctx context.Context, post *models.MarketPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockMarketRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
