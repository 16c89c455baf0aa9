package service

import (
	"context"
	"fmt"

	"travelbook/internal/database"
	"travelbook/internal/domain"
	"travelbook/internal/events"
	"travelbook/internal/metrics"
	"travelbook/internal/models"
	"travelbook/internal/repository"

	"github.com/rs/zerolog"
)

type BookingService struct {
	store    domain.Store
	eventBus domain.EventPublisher
	cache    domain.StatsCache
	logger   *zerolog.Logger
}

func NewBookingService(store domain.Store, eventBus domain.EventPublisher, cache domain.StatsCache, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		store:    store,
		eventBus: eventBus,
		cache:    cache,
		logger:   logger,
	}
}

// CreateBooking creates a pending booking; the store pairs it with its
// zero-amount pending payment atomically.
func (s *BookingService) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if booking.CustomerID <= 0 {
		return fmt.Errorf("customer_id is required: %w", database.ErrValidation)
	}
	if booking.PackageID < 0 || booking.HotelID < 0 {
		return fmt.Errorf("package_id and hotel_id must be positive: %w", database.ErrValidation)
	}

	if err := s.store.CreateBooking(ctx, booking); err != nil {
		return err
	}

	s.logger.Info().
		Int64("booking_id", booking.ID).
		Int64("customer_id", booking.CustomerID).
		Int64("package_id", booking.PackageID).
		Int64("hotel_id", booking.HotelID).
		Msg("booking created")

	metrics.IncBooking(models.BookingStatusPending)
	s.publishBookingEvent(events.EventBookingCreated, booking)

	if err := s.cache.Invalidate(ctx, repository.BookingCountKey(booking.CustomerID)); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate booking count")
	}

	return nil
}

// CancelBooking is idempotent: cancelling a cancelled booking succeeds
// without publishing anything.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID int64) error {
	prev, err := s.store.CancelBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if prev == models.BookingStatusCancelled {
		s.logger.Debug().Int64("booking_id", bookingID).Msg("booking already cancelled")
		return nil
	}

	s.logger.Info().Int64("booking_id", bookingID).Str("previous_status", prev).Msg("booking cancelled")
	metrics.IncBooking(models.BookingStatusCancelled)

	booking, err := s.store.GetBooking(ctx, bookingID)
	if err == nil {
		s.publishBookingEvent(events.EventBookingCancelled, booking)
	}

	return nil
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	return s.store.GetBooking(ctx, id)
}

func (s *BookingService) ListCustomerBookings(ctx context.Context, customerID int64) ([]*models.Booking, error) {
	return s.store.ListCustomerBookings(ctx, customerID)
}

func (s *BookingService) publishBookingEvent(eventType string, booking *models.Booking) {
	_ = s.eventBus.PublishJSON(eventType, events.BookingEventPayload{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		PackageID:  booking.PackageID,
		HotelID:    booking.HotelID,
		Status:     booking.Status,
	})
}
