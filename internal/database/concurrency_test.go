package database

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"travelbook/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentBookingCreation(t *testing.T) {
	logger := zerolog.Nop()
	dbPath := filepath.Join(t.TempDir(), "concurrency.db")
	db, err := NewDB(dbPath, &logger)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	customer := createTestCustomer(t, db, "001")
	hotel := createTestHotel(t, db)

	const numGoroutines = 10
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	results := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			booking := &models.Booking{CustomerID: customer.ID, HotelID: hotel.ID}
			results <- db.CreateBooking(ctx, booking)
		}()
	}

	wg.Wait()
	close(results)

	for err := range results {
		assert.NoError(t, err)
	}

	count, err := db.CountCustomerBookings(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(numGoroutines), count)

	// У каждой брони ровно один платеж
	bookings, err := db.ListCustomerBookings(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, bookings, numGoroutines)
	for _, b := range bookings {
		payment, err := db.GetPaymentByBookingID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPending, payment.Status)
	}
}

func TestConcurrentSettleAndCancel(t *testing.T) {
	logger := zerolog.Nop()
	dbPath := filepath.Join(t.TempDir(), "settle_cancel.db")
	db, err := NewDB(dbPath, &logger)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	customer := createTestCustomer(t, db, "001")
	hotel := createTestHotel(t, db)

	booking := &models.Booking{CustomerID: customer.ID, HotelID: hotel.ID}
	require.NoError(t, db.CreateBooking(ctx, booking))

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		assert.NoError(t, db.SettlePayment(ctx, booking.ID, 500))
	}()
	go func() {
		defer wg.Done()
		_, err := db.CancelBooking(ctx, booking.ID)
		assert.NoError(t, err)
	}()

	wg.Wait()

	// Транзакции сериализуются: бронь в одном из двух терминальных статусов
	got, err := db.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Contains(t, []string{models.BookingStatusConfirmed, models.BookingStatusCancelled}, got.Status)

	payment, err := db.GetPaymentByBookingID(ctx, booking.ID)
	require.NoError(t, err)
	if got.Status == models.BookingStatusConfirmed {
		assert.Equal(t, models.PaymentStatusCompleted, payment.Status)
	}
}
