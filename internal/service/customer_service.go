package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travelbook/internal/database"
	"travelbook/internal/domain"
	"travelbook/internal/events"
	"travelbook/internal/models"
	"travelbook/internal/repository"

	"github.com/rs/zerolog"
)

const statsCacheTTL = 5 * time.Minute

type CustomerService struct {
	store    domain.Store
	eventBus domain.EventPublisher
	cache    domain.StatsCache
	logger   *zerolog.Logger
}

func NewCustomerService(store domain.Store, eventBus domain.EventPublisher, cache domain.StatsCache, logger *zerolog.Logger) *CustomerService {
	return &CustomerService{
		store:    store,
		eventBus: eventBus,
		cache:    cache,
		logger:   logger,
	}
}

// CreateCustomer registers an account with the customer role and the linked
// customer record.
func (s *CustomerService) CreateCustomer(ctx context.Context, account *models.Account, customer *models.Customer) error {
	account.Username = strings.TrimSpace(account.Username)
	account.Email = strings.TrimSpace(account.Email)
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Phone = strings.TrimSpace(customer.Phone)

	if account.Username == "" {
		return fmt.Errorf("username is required: %w", database.ErrValidation)
	}
	if account.Email == "" {
		return fmt.Errorf("email is required: %w", database.ErrValidation)
	}
	if customer.Phone == "" {
		return fmt.Errorf("phone is required: %w", database.ErrValidation)
	}

	if err := s.store.CreateCustomer(ctx, account, customer); err != nil {
		return err
	}

	s.logger.Info().Int64("customer_id", customer.ID).Str("username", account.Username).Msg("customer created")
	_ = s.eventBus.PublishJSON(events.EventCustomerCreated, map[string]int64{"customer_id": customer.ID})

	return nil
}

// DeleteCustomer removes the customer and cascades, unless a confirmed
// booking blocks the deletion.
func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	if err := s.store.DeleteCustomer(ctx, customerID); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, repository.BookingCountKey(customerID)); err != nil {
		s.logger.Warn().Err(err).Int64("customer_id", customerID).Msg("failed to invalidate booking count")
	}

	s.logger.Info().Int64("customer_id", customerID).Msg("customer deleted")
	_ = s.eventBus.PublishJSON(events.EventCustomerDeleted, map[string]int64{"customer_id": customerID})

	return nil
}

// GetBookingCount returns the number of bookings a customer owns, in any
// status. Served from the stats cache when warm.
func (s *CustomerService) GetBookingCount(ctx context.Context, customerID int64) (int64, error) {
	key := repository.BookingCountKey(customerID)
	if count, ok, err := s.cache.GetInt64(ctx, key); err == nil && ok {
		return count, nil
	}

	count, err := s.store.CountCustomerBookings(ctx, customerID)
	if err != nil {
		return 0, err
	}

	if err := s.cache.SetInt64(ctx, key, count, statsCacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache booking count")
	}
	return count, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	return s.store.GetCustomer(ctx, id)
}
