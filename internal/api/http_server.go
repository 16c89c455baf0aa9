package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"travelbook/internal/config"
	"travelbook/internal/export"
	"travelbook/internal/service"

	"github.com/rs/zerolog"
)

// HTTPServer exposes the booking operations over a small JSON API.
type HTTPServer struct {
	cfg       config.APIConfig
	customers *service.CustomerService
	bookings  *service.BookingService
	payments  *service.PaymentService
	reviews   *service.ReviewService
	catalog   *service.CatalogService
	exporter  *export.LedgerExporter
	server    *http.Server
	auth      *HTTPAuth
	logger    *zerolog.Logger
}

func NewHTTPServer(
	cfg config.APIConfig,
	customers *service.CustomerService,
	bookings *service.BookingService,
	payments *service.PaymentService,
	reviews *service.ReviewService,
	catalog *service.CatalogService,
	exporter *export.LedgerExporter,
	logger *zerolog.Logger,
) *HTTPServer {
	srv := &HTTPServer{
		cfg:       cfg,
		customers: customers,
		bookings:  bookings,
		payments:  payments,
		reviews:   reviews,
		catalog:   catalog,
		exporter:  exporter,
		logger:    logger,
	}
	srv.auth = NewHTTPAuth(cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", srv.handleHealth)

	mux.HandleFunc("POST /api/v1/customers", srv.handleCreateCustomer)
	mux.HandleFunc("DELETE /api/v1/customers/{id}", srv.handleDeleteCustomer)
	mux.HandleFunc("GET /api/v1/customers/{id}/bookings", srv.handleListCustomerBookings)
	mux.HandleFunc("GET /api/v1/customers/{id}/bookings/count", srv.handleBookingCount)

	mux.HandleFunc("POST /api/v1/bookings", srv.handleCreateBooking)
	mux.HandleFunc("GET /api/v1/bookings/{id}", srv.handleGetBooking)
	mux.HandleFunc("POST /api/v1/bookings/{id}/cancel", srv.handleCancelBooking)
	mux.HandleFunc("POST /api/v1/bookings/{id}/payment", srv.handleSettlePayment)
	mux.HandleFunc("GET /api/v1/bookings/{id}/payment/total", srv.handleTotalPayment)

	mux.HandleFunc("POST /api/v1/reviews", srv.handleCreateReview)
	mux.HandleFunc("GET /api/v1/hotels/{id}/rating", srv.handleHotelRating)
	mux.HandleFunc("GET /api/v1/packages/{id}/rating", srv.handlePackageRating)

	mux.HandleFunc("POST /api/v1/packages", srv.handleCreatePackage)
	mux.HandleFunc("GET /api/v1/packages", srv.handleListPackages)
	mux.HandleFunc("POST /api/v1/hotels", srv.handleCreateHotel)
	mux.HandleFunc("GET /api/v1/hotels", srv.handleListHotels)

	mux.HandleFunc("POST /api/v1/exports/bookings", srv.handleExportBookings)

	handler := requestIDMiddleware(loggingMiddleware(logger, srv.auth.Wrap(mux)))

	srv.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	return srv
}

func (s *HTTPServer) Start() error {
	if s.server == nil {
		return fmt.Errorf("http server is not initialized")
	}
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
