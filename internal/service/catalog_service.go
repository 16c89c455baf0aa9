package service

import (
	"context"
	"fmt"
	"strings"

	"travelbook/internal/database"
	"travelbook/internal/domain"
	"travelbook/internal/models"

	"github.com/rs/zerolog"
)

// CatalogService manages the package and hotel catalog the bookings refer to.
type CatalogService struct {
	store  domain.Store
	logger *zerolog.Logger
}

func NewCatalogService(store domain.Store, logger *zerolog.Logger) *CatalogService {
	return &CatalogService{store: store, logger: logger}
}

func (s *CatalogService) CreatePackage(ctx context.Context, pkg *models.Package) error {
	pkg.Name = strings.TrimSpace(pkg.Name)
	if pkg.Name == "" {
		return fmt.Errorf("package name is required: %w", database.ErrValidation)
	}
	if pkg.DurationDays <= 0 {
		pkg.DurationDays = 1
	}
	pkg.IsActive = true

	if err := s.store.CreatePackage(ctx, pkg); err != nil {
		return err
	}
	s.logger.Info().Int64("package_id", pkg.ID).Str("name", pkg.Name).Msg("package created")
	return nil
}

func (s *CatalogService) CreateHotel(ctx context.Context, hotel *models.Hotel) error {
	hotel.Name = strings.TrimSpace(hotel.Name)
	if hotel.Name == "" {
		return fmt.Errorf("hotel name is required: %w", database.ErrValidation)
	}
	hotel.IsActive = true

	if err := s.store.CreateHotel(ctx, hotel); err != nil {
		return err
	}
	s.logger.Info().Int64("hotel_id", hotel.ID).Str("name", hotel.Name).Msg("hotel created")
	return nil
}

func (s *CatalogService) ListPackages(ctx context.Context) ([]*models.Package, error) {
	return s.store.ListActivePackages(ctx)
}

func (s *CatalogService) ListHotels(ctx context.Context) ([]*models.Hotel, error) {
	return s.store.ListActiveHotels(ctx)
}

func (s *CatalogService) DeactivatePackage(ctx context.Context, id int64) error {
	return s.store.DeactivatePackage(ctx, id)
}

func (s *CatalogService) DeactivateHotel(ctx context.Context, id int64) error {
	return s.store.DeactivateHotel(ctx, id)
}
