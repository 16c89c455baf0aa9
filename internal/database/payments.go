package database

import (
	"context"
	"fmt"
	"time"

	"travelbook/internal/models"
)

// SettlePayment records the amount, marks the payment completed and confirms
// the owning booking, all in one transaction. A payment may be settled even
// after the booking was cancelled; settlement re-confirms it.
func (db *DB) SettlePayment(ctx context.Context, bookingID int64, amount float64) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now()
	res, err := tx.ExecContext(ctx,
		`UPDATE payments SET amount = ?, status = ?, paid_at = ?, updated_at = ? WHERE booking_id = ?`,
		amount, models.PaymentStatusCompleted, now, now, bookingID,
	)
	if err != nil {
		return fmt.Errorf("failed to settle payment: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("payment for booking %d: %w", bookingID, ErrNotFound)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?`,
		models.BookingStatusConfirmed, now, bookingID,
	)
	if err != nil {
		return fmt.Errorf("failed to confirm booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (db *DB) GetPaymentByBookingID(ctx context.Context, bookingID int64) (*models.Payment, error) {
	var p models.Payment
	query := `SELECT id, booking_id, amount, status, paid_at, created_at, updated_at
              FROM payments WHERE booking_id = ?`
	err := db.QueryRowContext(ctx, query, bookingID).Scan(
		&p.ID, &p.BookingID, &p.Amount, &p.Status, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", translateSQLError(err))
	}
	return &p, nil
}

// GetTotalPayment sums the payment amounts for a booking. Zero when no
// payment rows exist, never an error for an unknown booking.
func (db *DB) GetTotalPayment(ctx context.Context, bookingID int64) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE booking_id = ?`
	err := db.QueryRowContext(ctx, query, bookingID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to get total payment: %w", err)
	}
	return total, nil
}
