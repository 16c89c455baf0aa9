package database

import (
	"context"
	"testing"

	"travelbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActivePackages_FiltersInactive(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	active := createTestPackage(t, db)

	inactive := &models.Package{Name: "Old Tour", IsActive: false}
	require.NoError(t, db.CreatePackage(ctx, inactive))

	packages, err := db.ListActivePackages(ctx)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, active.ID, packages[0].ID)
}

func TestDeactivateHotel(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	hotel := createTestHotel(t, db)

	require.NoError(t, db.DeactivateHotel(ctx, hotel.ID))

	hotels, err := db.ListActiveHotels(ctx)
	require.NoError(t, err)
	assert.Empty(t, hotels)

	// Запись остается доступной по id
	got, err := db.GetHotel(ctx, hotel.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestGetPackage_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.GetPackage(context.Background(), 777)
	assert.ErrorIs(t, err, ErrNotFound)
}
