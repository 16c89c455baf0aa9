package database

import (
	"context"
	"fmt"
	"time"

	"travelbook/internal/models"
)

// CreateCustomer inserts the account and the linked customer in one transaction.
func (db *DB) CreateCustomer(ctx context.Context, account *models.Account, customer *models.Customer) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO accounts (username, email, password_hash, role, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		account.Username, account.Email, account.PasswordHash, models.RoleCustomer, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", translateSQLError(err))
	}
	accountID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	res, err = tx.ExecContext(ctx,
		`INSERT INTO customers (account_id, name, phone, address, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		accountID, customer.Name, customer.Phone, customer.Address, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", translateSQLError(err))
	}
	customerID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	account.ID = accountID
	account.Role = models.RoleCustomer
	account.CreatedAt = now
	account.UpdatedAt = now
	customer.ID = customerID
	customer.AccountID = accountID
	customer.CreatedAt = now
	customer.UpdatedAt = now

	return nil
}

func (db *DB) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	var c models.Customer
	query := `SELECT id, account_id, name, phone, address, created_at, updated_at
              FROM customers WHERE id = ?`
	err := db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.AccountID, &c.Name, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", translateSQLError(err))
	}
	return &c, nil
}

func (db *DB) GetCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var c models.Customer
	query := `SELECT id, account_id, name, phone, address, created_at, updated_at
              FROM customers WHERE phone = ?`
	err := db.QueryRowContext(ctx, query, phone).Scan(
		&c.ID, &c.AccountID, &c.Name, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by phone: %w", translateSQLError(err))
	}
	return &c, nil
}

// DeleteCustomer removes the customer with their bookings, payments, reviews
// and the linked account. Fails when any booking is confirmed.
func (db *DB) DeleteCustomer(ctx context.Context, customerID int64) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var accountID int64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(account_id, 0) FROM customers WHERE id = ?`, customerID,
	).Scan(&accountID)
	if err != nil {
		return fmt.Errorf("failed to get customer: %w", translateSQLError(err))
	}

	confirmed, err := exists(ctx, tx,
		`SELECT COUNT(*) FROM bookings WHERE customer_id = ? AND status = ?`,
		customerID, models.BookingStatusConfirmed,
	)
	if err != nil {
		return fmt.Errorf("failed to check confirmed bookings: %w", err)
	}
	if confirmed {
		return fmt.Errorf("cannot delete customer with active bookings: %w", ErrConstraintViolation)
	}

	steps := []struct {
		query string
		args  []interface{}
	}{
		{`DELETE FROM payments WHERE booking_id IN (SELECT id FROM bookings WHERE customer_id = ?)`, []interface{}{customerID}},
		{`DELETE FROM bookings WHERE customer_id = ?`, []interface{}{customerID}},
		{`DELETE FROM reviews WHERE customer_id = ?`, []interface{}{customerID}},
		{`DELETE FROM customers WHERE id = ?`, []interface{}{customerID}},
	}
	for _, step := range steps {
		if _, err := tx.ExecContext(ctx, step.query, step.args...); err != nil {
			return fmt.Errorf("failed to cascade delete customer: %w", err)
		}
	}

	if accountID != 0 {
		if _, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, accountID); err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CountCustomerBookings counts the customer's bookings in any status.
func (db *DB) CountCustomerBookings(ctx context.Context, customerID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM bookings WHERE customer_id = ?`
	err := db.QueryRowContext(ctx, query, customerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count customer bookings: %w", err)
	}
	return count, nil
}
