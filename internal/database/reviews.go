package database

import (
	"context"
	"fmt"
	"time"

	"travelbook/internal/models"
)

// CreateReview validates the rating range and the referenced records before
// inserting. A review must point at a package, a hotel, or both.
func (db *DB) CreateReview(ctx context.Context, review *models.Review) error {
	if review.Rating < models.MinRating || review.Rating > models.MaxRating {
		return fmt.Errorf("rating %d out of range [1,5]: %w", review.Rating, ErrValidation)
	}
	if review.PackageID == 0 && review.HotelID == 0 {
		return fmt.Errorf("review requires a package or a hotel: %w", ErrValidation)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	ok, err := exists(ctx, tx, `SELECT COUNT(*) FROM customers WHERE id = ?`, review.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to check customer: %w", err)
	}
	if !ok {
		return fmt.Errorf("customer %d: %w", review.CustomerID, ErrNotFound)
	}

	if review.PackageID != 0 {
		ok, err = exists(ctx, tx, `SELECT COUNT(*) FROM packages WHERE id = ?`, review.PackageID)
		if err != nil {
			return fmt.Errorf("failed to check package: %w", err)
		}
		if !ok {
			return fmt.Errorf("package %d: %w", review.PackageID, ErrNotFound)
		}
	}

	if review.HotelID != 0 {
		ok, err = exists(ctx, tx, `SELECT COUNT(*) FROM hotels WHERE id = ?`, review.HotelID)
		if err != nil {
			return fmt.Errorf("failed to check hotel: %w", err)
		}
		if !ok {
			return fmt.Errorf("hotel %d: %w", review.HotelID, ErrNotFound)
		}
	}

	now := time.Now()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO reviews (customer_id, package_id, hotel_id, rating, comment, created_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		review.CustomerID, nullableID(review.PackageID), nullableID(review.HotelID),
		review.Rating, review.Comment, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", translateSQLError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	review.ID = id
	review.CreatedAt = now
	return nil
}

// GetAvgHotelRating returns the mean review rating for a hotel, zero when
// the hotel has no reviews.
func (db *DB) GetAvgHotelRating(ctx context.Context, hotelID int64) (float64, error) {
	var avg float64
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE hotel_id = ?`
	err := db.QueryRowContext(ctx, query, hotelID).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("failed to get avg hotel rating: %w", err)
	}
	return avg, nil
}

func (db *DB) GetAvgPackageRating(ctx context.Context, packageID int64) (float64, error) {
	var avg float64
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE package_id = ?`
	err := db.QueryRowContext(ctx, query, packageID).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("failed to get avg package rating: %w", err)
	}
	return avg, nil
}
