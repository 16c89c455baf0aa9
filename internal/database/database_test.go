package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"travelbook/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	logger := zerolog.Nop()
	db, err := NewDB(":memory:", &logger)
	require.NoError(t, err)
	return db
}

func createTestCustomer(t *testing.T, db *DB, suffix string) *models.Customer {
	ctx := context.Background()
	account := &models.Account{
		Username:     "user_" + suffix,
		Email:        fmt.Sprintf("user_%s@example.com", suffix),
		PasswordHash: "hash",
	}
	customer := &models.Customer{
		Name:  "Customer " + suffix,
		Phone: "+7900" + suffix,
	}
	err := db.CreateCustomer(ctx, account, customer)
	require.NoError(t, err)
	return customer
}

func createTestPackage(t *testing.T, db *DB) *models.Package {
	pkg := &models.Package{
		Name:         "Test Tour",
		Destination:  "Sochi",
		Price:        1500,
		DurationDays: 7,
		IsActive:     true,
	}
	err := db.CreatePackage(context.Background(), pkg)
	require.NoError(t, err)
	return pkg
}

func createTestHotel(t *testing.T, db *DB) *models.Hotel {
	hotel := &models.Hotel{
		Name:          "Test Hotel",
		City:          "Sochi",
		PricePerNight: 120,
		IsActive:      true,
	}
	err := db.CreateHotel(context.Background(), hotel)
	require.NoError(t, err)
	return hotel
}

func TestNewDB_DirectoryCreation(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "db_test_dir")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "dir", "test.db")
	logger := zerolog.Nop()

	db, err := NewDB(dbPath, &logger)
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, dbPath)
}

func TestDB_Ping(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := db.PingContext(context.Background())
	assert.NoError(t, err)
}
