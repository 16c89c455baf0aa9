package database

import (
	"context"
	"fmt"
	"time"

	"travelbook/internal/models"
)

func (db *DB) CreatePackage(ctx context.Context, pkg *models.Package) error {
	query := `INSERT INTO packages (name, description, destination, price, duration_days, is_active, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	res, err := db.ExecContext(ctx, query,
		pkg.Name, pkg.Description, pkg.Destination, pkg.Price, pkg.DurationDays, pkg.IsActive, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create package: %w", translateSQLError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	pkg.ID = id
	pkg.CreatedAt = now
	pkg.UpdatedAt = now
	return nil
}

func (db *DB) GetPackage(ctx context.Context, id int64) (*models.Package, error) {
	var p models.Package
	query := `SELECT id, name, description, destination, price, duration_days, is_active, created_at, updated_at
              FROM packages WHERE id = ?`
	err := db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Destination, &p.Price, &p.DurationDays, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", translateSQLError(err))
	}
	return &p, nil
}

func (db *DB) ListActivePackages(ctx context.Context) ([]*models.Package, error) {
	query := `SELECT id, name, description, destination, price, duration_days, is_active, created_at, updated_at
              FROM packages WHERE is_active = 1 ORDER BY id`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer rows.Close()

	var packages []*models.Package
	for rows.Next() {
		p := &models.Package{}
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Destination, &p.Price, &p.DurationDays, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

func (db *DB) DeactivatePackage(ctx context.Context, id int64) error {
	query := `UPDATE packages SET is_active = 0, updated_at = ? WHERE id = ?`
	_, err := db.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (db *DB) CreateHotel(ctx context.Context, hotel *models.Hotel) error {
	query := `INSERT INTO hotels (name, city, address, price_per_night, is_active, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	res, err := db.ExecContext(ctx, query,
		hotel.Name, hotel.City, hotel.Address, hotel.PricePerNight, hotel.IsActive, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create hotel: %w", translateSQLError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	hotel.ID = id
	hotel.CreatedAt = now
	hotel.UpdatedAt = now
	return nil
}

func (db *DB) GetHotel(ctx context.Context, id int64) (*models.Hotel, error) {
	var h models.Hotel
	query := `SELECT id, name, city, address, price_per_night, is_active, created_at, updated_at
              FROM hotels WHERE id = ?`
	err := db.QueryRowContext(ctx, query, id).Scan(
		&h.ID, &h.Name, &h.City, &h.Address, &h.PricePerNight, &h.IsActive, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get hotel: %w", translateSQLError(err))
	}
	return &h, nil
}

func (db *DB) ListActiveHotels(ctx context.Context) ([]*models.Hotel, error) {
	query := `SELECT id, name, city, address, price_per_night, is_active, created_at, updated_at
              FROM hotels WHERE is_active = 1 ORDER BY id`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	defer rows.Close()

	var hotels []*models.Hotel
	for rows.Next() {
		h := &models.Hotel{}
		err := rows.Scan(&h.ID, &h.Name, &h.City, &h.Address, &h.PricePerNight, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotel: %w", err)
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

func (db *DB) DeactivateHotel(ctx context.Context, id int64) error {
	query := `UPDATE hotels SET is_active = 0, updated_at = ? WHERE id = ?`
	_, err := db.ExecContext(ctx, query, time.Now(), id)
	return err
}
