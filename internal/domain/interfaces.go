package domain

import (
	"context"
	"time"

	"travelbook/internal/models"
)

// Store is the transactional entity store behind every service.
type Store interface {
	CreateCustomer(ctx context.Context, account *models.Account, customer *models.Customer) error
	GetCustomer(ctx context.Context, id int64) (*models.Customer, error)
	GetCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
	CountCustomerBookings(ctx context.Context, customerID int64) (int64, error)

	CreateBooking(ctx context.Context, booking *models.Booking) error
	CancelBooking(ctx context.Context, bookingID int64) (string, error)
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	ListCustomerBookings(ctx context.Context, customerID int64) ([]*models.Booking, error)
	ListBookings(ctx context.Context) ([]*models.BookingLedgerRow, error)

	SettlePayment(ctx context.Context, bookingID int64, amount float64) error
	GetPaymentByBookingID(ctx context.Context, bookingID int64) (*models.Payment, error)
	GetTotalPayment(ctx context.Context, bookingID int64) (float64, error)

	CreatePackage(ctx context.Context, pkg *models.Package) error
	GetPackage(ctx context.Context, id int64) (*models.Package, error)
	ListActivePackages(ctx context.Context) ([]*models.Package, error)
	DeactivatePackage(ctx context.Context, id int64) error
	CreateHotel(ctx context.Context, hotel *models.Hotel) error
	GetHotel(ctx context.Context, id int64) (*models.Hotel, error)
	ListActiveHotels(ctx context.Context) ([]*models.Hotel, error)
	DeactivateHotel(ctx context.Context, id int64) error

	CreateReview(ctx context.Context, review *models.Review) error
	GetAvgHotelRating(ctx context.Context, hotelID int64) (float64, error)
	GetAvgPackageRating(ctx context.Context, packageID int64) (float64, error)
}

// StatsCache keeps derived aggregates (booking counts, ratings) close at hand.
// A cache failure must never fail the request; callers fall back to the store.
type StatsCache interface {
	GetInt64(ctx context.Context, key string) (int64, bool, error)
	SetInt64(ctx context.Context, key string, value int64, ttl time.Duration) error
	GetFloat64(ctx context.Context, key string) (float64, bool, error)
	SetFloat64(ctx context.Context, key string, value float64, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}
