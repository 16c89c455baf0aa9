package service

import (
	"context"
	"io"
	"testing"

	"travelbook/internal/database"
	"travelbook/internal/events"
	"travelbook/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentService(t *testing.T) {
	store := new(mockStore)
	bus := new(mockEventBus)
	logger := zerolog.New(io.Discard)
	svc := NewPaymentService(store, bus, &logger)
	ctx := context.Background()

	t.Run("SettlePayment", func(t *testing.T) {
		booking := &models.Booking{ID: 1, CustomerID: 2, Status: models.BookingStatusConfirmed}

		store.On("SettlePayment", ctx, int64(1), 1500.0).Return(nil).Once()
		store.On("GetBooking", ctx, int64(1)).Return(booking, nil).Once()
		bus.On("PublishJSON", events.EventPaymentSettled, mock.Anything).Return(nil).Once()
		bus.On("PublishJSON", events.EventBookingConfirmed, mock.Anything).Return(nil).Once()

		err := svc.SettlePayment(ctx, 1, 1500)
		assert.NoError(t, err)
		store.AssertExpectations(t)
		bus.AssertExpectations(t)
	})

	t.Run("SettlePaymentNonPositiveAmount", func(t *testing.T) {
		for _, amount := range []float64{0, -10} {
			err := svc.SettlePayment(ctx, 1, amount)
			assert.ErrorIs(t, err, database.ErrValidation)
		}
		store.AssertNotCalled(t, "SettlePayment", ctx, int64(1), 0.0)
	})

	t.Run("SettlePaymentNotFound", func(t *testing.T) {
		store.On("SettlePayment", ctx, int64(777), 50.0).Return(database.ErrNotFound).Once()

		err := svc.SettlePayment(ctx, 777, 50)
		assert.ErrorIs(t, err, database.ErrNotFound)
		store.AssertExpectations(t)
	})

	t.Run("GetTotalPayment", func(t *testing.T) {
		store.On("GetTotalPayment", ctx, int64(3)).Return(450.5, nil).Once()

		total, err := svc.GetTotalPayment(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, 450.5, total)
		store.AssertExpectations(t)
	})

	t.Run("GetPayment", func(t *testing.T) {
		payment := &models.Payment{ID: 4, BookingID: 3}
		store.On("GetPaymentByBookingID", ctx, int64(3)).Return(payment, nil).Once()

		got, err := svc.GetPayment(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, payment, got)
		store.AssertExpectations(t)
	})
}
