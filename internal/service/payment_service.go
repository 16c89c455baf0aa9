package service

import (
	"context"
	"fmt"

	"travelbook/internal/database"
	"travelbook/internal/domain"
	"travelbook/internal/events"
	"travelbook/internal/metrics"
	"travelbook/internal/models"

	"github.com/rs/zerolog"
)

type PaymentService struct {
	store    domain.Store
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewPaymentService(store domain.Store, eventBus domain.EventPublisher, logger *zerolog.Logger) *PaymentService {
	return &PaymentService{
		store:    store,
		eventBus: eventBus,
		logger:   logger,
	}
}

// SettlePayment completes the booking's payment and confirms the booking in
// one store transaction. Settling a cancelled booking re-confirms it.
func (s *PaymentService) SettlePayment(ctx context.Context, bookingID int64, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive: %w", database.ErrValidation)
	}

	if err := s.store.SettlePayment(ctx, bookingID, amount); err != nil {
		return err
	}

	s.logger.Info().Int64("booking_id", bookingID).Float64("amount", amount).Msg("payment settled")
	metrics.IncPaymentSettled()
	metrics.IncBooking(models.BookingStatusConfirmed)

	_ = s.eventBus.PublishJSON(events.EventPaymentSettled, events.PaymentEventPayload{
		BookingID: bookingID,
		Amount:    amount,
		Status:    models.PaymentStatusCompleted,
	})

	booking, err := s.store.GetBooking(ctx, bookingID)
	if err == nil {
		_ = s.eventBus.PublishJSON(events.EventBookingConfirmed, events.BookingEventPayload{
			BookingID:  booking.ID,
			CustomerID: booking.CustomerID,
			PackageID:  booking.PackageID,
			HotelID:    booking.HotelID,
			Status:     booking.Status,
		})
	}

	return nil
}

// GetTotalPayment returns the summed payment amount for a booking, zero for
// an unknown booking.
func (s *PaymentService) GetTotalPayment(ctx context.Context, bookingID int64) (float64, error) {
	return s.store.GetTotalPayment(ctx, bookingID)
}

func (s *PaymentService) GetPayment(ctx context.Context, bookingID int64) (*models.Payment, error) {
	return s.store.GetPaymentByBookingID(ctx, bookingID)
}
