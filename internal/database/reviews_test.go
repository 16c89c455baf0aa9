package database

import (
	"context"
	"testing"

	"travelbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview_AndAvgRating(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	customer := createTestCustomer(t, db, "001")
	hotel := createTestHotel(t, db)

	ratings := []int64{5, 4, 3}
	for _, r := range ratings {
		review := &models.Review{CustomerID: customer.ID, HotelID: hotel.ID, Rating: r}
		require.NoError(t, db.CreateReview(ctx, review))
		assert.NotZero(t, review.ID)
	}

	avg, err := db.GetAvgHotelRating(ctx, hotel.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 0.001)
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	customer := createTestCustomer(t, db, "001")
	hotel := createTestHotel(t, db)

	for _, rating := range []int64{0, 6, -1} {
		review := &models.Review{CustomerID: customer.ID, HotelID: hotel.ID, Rating: rating}
		err := db.CreateReview(ctx, review)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestCreateReview_RequiresTarget(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	customer := createTestCustomer(t, db, "001")

	review := &models.Review{CustomerID: customer.ID, Rating: 4}
	err := db.CreateReview(context.Background(), review)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateReview_UnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	customer := createTestCustomer(t, db, "001")

	review := &models.Review{CustomerID: customer.ID, HotelID: 777, Rating: 4}
	assert.ErrorIs(t, db.CreateReview(ctx, review), ErrNotFound)

	review = &models.Review{CustomerID: 777, PackageID: 1, Rating: 4}
	assert.ErrorIs(t, db.CreateReview(ctx, review), ErrNotFound)
}

func TestGetAvgHotelRating_NoReviews(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	hotel := createTestHotel(t, db)

	avg, err := db.GetAvgHotelRating(context.Background(), hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(0), avg)
}

func TestGetAvgPackageRating(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	customer := createTestCustomer(t, db, "001")
	pkg := createTestPackage(t, db)

	avg, err := db.GetAvgPackageRating(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(0), avg)

	review := &models.Review{CustomerID: customer.ID, PackageID: pkg.ID, Rating: 5, Comment: "отлично"}
	require.NoError(t, db.CreateReview(ctx, review))

	avg, err = db.GetAvgPackageRating(ctx, pkg.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, avg, 0.001)
}
