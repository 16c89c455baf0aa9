package service

import (
	"context"
	"time"

	"travelbook/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) CreateCustomer(ctx context.Context, a *models.Account, c *models.Customer) error {
	return m.Called(ctx, a, c).Error(0)
}
func (m *mockStore) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}
func (m *mockStore) GetCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}
func (m *mockStore) DeleteCustomer(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockStore) CountCustomerBookings(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockStore) CreateBooking(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockStore) CancelBooking(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
func (m *mockStore) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
func (m *mockStore) ListCustomerBookings(ctx context.Context, id int64) ([]*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}
func (m *mockStore) ListBookings(ctx context.Context) ([]*models.BookingLedgerRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BookingLedgerRow), args.Error(1)
}
func (m *mockStore) SettlePayment(ctx context.Context, id int64, amount float64) error {
	return m.Called(ctx, id, amount).Error(0)
}
func (m *mockStore) GetPaymentByBookingID(ctx context.Context, id int64) (*models.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}
func (m *mockStore) GetTotalPayment(ctx context.Context, id int64) (float64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Error(1)
}
func (m *mockStore) CreatePackage(ctx context.Context, p *models.Package) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockStore) GetPackage(ctx context.Context, id int64) (*models.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Package), args.Error(1)
}
func (m *mockStore) ListActivePackages(ctx context.Context) ([]*models.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Package), args.Error(1)
}
func (m *mockStore) DeactivatePackage(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockStore) CreateHotel(ctx context.Context, h *models.Hotel) error {
	return m.Called(ctx, h).Error(0)
}
func (m *mockStore) GetHotel(ctx context.Context, id int64) (*models.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hotel), args.Error(1)
}
func (m *mockStore) ListActiveHotels(ctx context.Context) ([]*models.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Hotel), args.Error(1)
}
func (m *mockStore) DeactivateHotel(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockStore) CreateReview(ctx context.Context, r *models.Review) error {
	return m.Called(ctx, r).Error(0)
}
func (m *mockStore) GetAvgHotelRating(ctx context.Context, id int64) (float64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Error(1)
}
func (m *mockStore) GetAvgPackageRating(ctx context.Context, id int64) (float64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Error(1)
}

type mockEventBus struct {
	mock.Mock
}

func (m *mockEventBus) PublishJSON(eventType string, payload interface{}) error {
	return m.Called(eventType, payload).Error(0)
}

type mockStatsCache struct {
	mock.Mock
}

func (m *mockStatsCache) GetInt64(ctx context.Context, key string) (int64, bool, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}
func (m *mockStatsCache) SetInt64(ctx context.Context, key string, value int64, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}
func (m *mockStatsCache) GetFloat64(ctx context.Context, key string) (float64, bool, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}
func (m *mockStatsCache) SetFloat64(ctx context.Context, key string, value float64, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}
func (m *mockStatsCache) Invalidate(ctx context.Context, keys ...string) error {
	callArgs := make([]interface{}, 0, len(keys)+1)
	callArgs = append(callArgs, ctx)
	for _, key := range keys {
		callArgs = append(callArgs, key)
	}
	return m.Called(callArgs...).Error(0)
}
