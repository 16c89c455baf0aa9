package service

import (
	"context"

	"travelbook/internal/domain"
	"travelbook/internal/events"
	"travelbook/internal/models"
	"travelbook/internal/repository"

	"github.com/rs/zerolog"
)

type ReviewService struct {
	store    domain.Store
	eventBus domain.EventPublisher
	cache    domain.StatsCache
	logger   *zerolog.Logger
}

func NewReviewService(store domain.Store, eventBus domain.EventPublisher, cache domain.StatsCache, logger *zerolog.Logger) *ReviewService {
	return &ReviewService{
		store:    store,
		eventBus: eventBus,
		cache:    cache,
		logger:   logger,
	}
}

// AddReview stores the review; range and reference checks live in the store.
func (s *ReviewService) AddReview(ctx context.Context, review *models.Review) error {
	if err := s.store.CreateReview(ctx, review); err != nil {
		return err
	}

	s.logger.Info().
		Int64("review_id", review.ID).
		Int64("customer_id", review.CustomerID).
		Int64("rating", review.Rating).
		Msg("review added")

	var stale []string
	if review.HotelID != 0 {
		stale = append(stale, repository.HotelRatingKey(review.HotelID))
	}
	if review.PackageID != 0 {
		stale = append(stale, repository.PackageRatingKey(review.PackageID))
	}
	if err := s.cache.Invalidate(ctx, stale...); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate rating cache")
	}

	_ = s.eventBus.PublishJSON(events.EventReviewAdded, map[string]int64{
		"review_id": review.ID,
		"rating":    review.Rating,
	})

	return nil
}

// GetHotelRating returns the mean review rating for a hotel, zero without
// reviews. Served from the stats cache when warm.
func (s *ReviewService) GetHotelRating(ctx context.Context, hotelID int64) (float64, error) {
	key := repository.HotelRatingKey(hotelID)
	if avg, ok, err := s.cache.GetFloat64(ctx, key); err == nil && ok {
		return avg, nil
	}

	avg, err := s.store.GetAvgHotelRating(ctx, hotelID)
	if err != nil {
		return 0, err
	}

	if err := s.cache.SetFloat64(ctx, key, avg, statsCacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache hotel rating")
	}
	return avg, nil
}

func (s *ReviewService) GetPackageRating(ctx context.Context, packageID int64) (float64, error) {
	key := repository.PackageRatingKey(packageID)
	if avg, ok, err := s.cache.GetFloat64(ctx, key); err == nil && ok {
		return avg, nil
	}

	avg, err := s.store.GetAvgPackageRating(ctx, packageID)
	if err != nil {
		return 0, err
	}

	if err := s.cache.SetFloat64(ctx, key, avg, statsCacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache package rating")
	}
	return avg, nil
}
