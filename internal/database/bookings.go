package database

import (
	"context"
	"fmt"
	"time"

	"travelbook/internal/models"
)

// CreateBooking inserts a pending booking together with its zero-amount
// pending payment. Both rows land in the same transaction: a booking
// without a payment must never be observable.
func (db *DB) CreateBooking(ctx context.Context, booking *models.Booking) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	ok, err := exists(ctx, tx, `SELECT COUNT(*) FROM customers WHERE id = ?`, booking.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to check customer: %w", err)
	}
	if !ok {
		return fmt.Errorf("customer %d: %w", booking.CustomerID, ErrNotFound)
	}

	if booking.PackageID != 0 {
		ok, err = exists(ctx, tx, `SELECT COUNT(*) FROM packages WHERE id = ? AND is_active = 1`, booking.PackageID)
		if err != nil {
			return fmt.Errorf("failed to check package: %w", err)
		}
		if !ok {
			return fmt.Errorf("package %d: %w", booking.PackageID, ErrNotFound)
		}
	}

	if booking.HotelID != 0 {
		ok, err = exists(ctx, tx, `SELECT COUNT(*) FROM hotels WHERE id = ? AND is_active = 1`, booking.HotelID)
		if err != nil {
			return fmt.Errorf("failed to check hotel: %w", err)
		}
		if !ok {
			return fmt.Errorf("hotel %d: %w", booking.HotelID, ErrNotFound)
		}
	}

	now := time.Now()
	bookedAt := booking.BookedAt
	if bookedAt.IsZero() {
		bookedAt = now
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (customer_id, package_id, hotel_id, status, booked_at, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		booking.CustomerID, nullableID(booking.PackageID), nullableID(booking.HotelID),
		models.BookingStatusPending, bookedAt, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", translateSQLError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO payments (booking_id, amount, status, created_at, updated_at)
         VALUES (?, 0, ?, ?, ?)`,
		id, models.PaymentStatusPending, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", translateSQLError(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	booking.ID = id
	booking.Status = models.BookingStatusPending
	booking.BookedAt = bookedAt
	booking.CreatedAt = now
	booking.UpdatedAt = now

	return nil
}

// CancelBooking sets the booking to cancelled and fails its pending payment.
// Cancelling an already cancelled booking is a no-op success. Returns the
// previous booking status.
func (db *DB) CancelBooking(ctx context.Context, bookingID int64) (string, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var prev string
	err = tx.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = ?`, bookingID).Scan(&prev)
	if err != nil {
		return "", fmt.Errorf("failed to get booking: %w", translateSQLError(err))
	}

	if prev == models.BookingStatusCancelled {
		return prev, tx.Commit()
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?`,
		models.BookingStatusCancelled, now, bookingID,
	)
	if err != nil {
		return "", fmt.Errorf("failed to cancel booking: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE payments SET status = ?, updated_at = ? WHERE booking_id = ? AND status = ?`,
		models.PaymentStatusFailed, now, bookingID, models.PaymentStatusPending,
	)
	if err != nil {
		return "", fmt.Errorf("failed to fail pending payment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	return prev, nil
}

func (db *DB) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	var b models.Booking
	query := `SELECT id, customer_id, COALESCE(package_id, 0), COALESCE(hotel_id, 0),
                     status, booked_at, created_at, updated_at
              FROM bookings WHERE id = ?`
	err := db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.CustomerID, &b.PackageID, &b.HotelID, &b.Status, &b.BookedAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", translateSQLError(err))
	}
	return &b, nil
}

func (db *DB) ListCustomerBookings(ctx context.Context, customerID int64) ([]*models.Booking, error) {
	query := `SELECT id, customer_id, COALESCE(package_id, 0), COALESCE(hotel_id, 0),
                     status, booked_at, created_at, updated_at
              FROM bookings WHERE customer_id = ? ORDER BY created_at DESC`
	rows, err := db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b := &models.Booking{}
		err := rows.Scan(&b.ID, &b.CustomerID, &b.PackageID, &b.HotelID, &b.Status, &b.BookedAt, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// ListBookings returns every booking joined with its payment, for exports.
func (db *DB) ListBookings(ctx context.Context) ([]*models.BookingLedgerRow, error) {
	query := `SELECT b.id, b.customer_id, c.name, COALESCE(b.package_id, 0), COALESCE(b.hotel_id, 0),
                     b.status, b.booked_at, COALESCE(p.amount, 0), COALESCE(p.status, '')
              FROM bookings b
              JOIN customers c ON c.id = b.customer_id
              LEFT JOIN payments p ON p.booking_id = b.id
              ORDER BY b.id`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var out []*models.BookingLedgerRow
	for rows.Next() {
		r := &models.BookingLedgerRow{}
		err := rows.Scan(&r.BookingID, &r.CustomerID, &r.CustomerName, &r.PackageID, &r.HotelID,
			&r.Status, &r.BookedAt, &r.PaymentAmount, &r.PaymentStatus)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// nullableID converts 0 to NULL for optional foreign keys.
func nullableID(id int64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}
