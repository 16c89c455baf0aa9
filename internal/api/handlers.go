package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"travelbook/internal/database"
	"travelbook/internal/models"
)

func (s *HTTPServer) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username     string `json:"username"`
		PasswordHash string `json:"password_hash"`
		Email        string `json:"email"`
		Name         string `json:"name"`
		Phone        string `json:"phone"`
		Address      string `json:"address"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	account := &models.Account{
		Username:     body.Username,
		Email:        body.Email,
		PasswordHash: body.PasswordHash,
	}
	customer := &models.Customer{
		Name:    body.Name,
		Phone:   body.Phone,
		Address: body.Address,
	}

	if err := s.customers.CreateCustomer(r.Context(), account, customer); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"customer_id": customer.ID})
}

func (s *HTTPServer) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.customers.DeleteCustomer(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleBookingCount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	count, err := s.customers.GetBookingCount(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"customer_id": id, "booking_count": count})
}

func (s *HTTPServer) handleListCustomerBookings(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	bookings, err := s.bookings.ListCustomerBookings(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

func (s *HTTPServer) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CustomerID int64 `json:"customer_id"`
		PackageID  int64 `json:"package_id"`
		HotelID    int64 `json:"hotel_id"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	booking := &models.Booking{
		CustomerID: body.CustomerID,
		PackageID:  body.PackageID,
		HotelID:    body.HotelID,
	}
	if err := s.bookings.CreateBooking(r.Context(), booking); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"booking_id": booking.ID,
		"status":     booking.Status,
	})
}

func (s *HTTPServer) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	booking, err := s.bookings.GetBooking(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

func (s *HTTPServer) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.bookings.CancelBooking(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"booking_id": id, "status": models.BookingStatusCancelled})
}

func (s *HTTPServer) handleSettlePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.payments.SettlePayment(r.Context(), id, body.Amount); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"booking_id": id,
		"status":     models.BookingStatusConfirmed,
	})
}

func (s *HTTPServer) handleTotalPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	total, err := s.payments.GetTotalPayment(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"booking_id": id, "total": total})
}

func (s *HTTPServer) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CustomerID int64  `json:"customer_id"`
		PackageID  int64  `json:"package_id"`
		HotelID    int64  `json:"hotel_id"`
		Rating     int64  `json:"rating"`
		Comment    string `json:"comment"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	review := &models.Review{
		CustomerID: body.CustomerID,
		PackageID:  body.PackageID,
		HotelID:    body.HotelID,
		Rating:     body.Rating,
		Comment:    body.Comment,
	}
	if err := s.reviews.AddReview(r.Context(), review); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"review_id": review.ID})
}

func (s *HTTPServer) handleHotelRating(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	avg, err := s.reviews.GetHotelRating(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"hotel_id": id, "avg_rating": avg})
}

func (s *HTTPServer) handlePackageRating(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	avg, err := s.reviews.GetPackageRating(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"package_id": id, "avg_rating": avg})
}

func (s *HTTPServer) handleCreatePackage(w http.ResponseWriter, r *http.Request) {
	var pkg models.Package
	if err := decodeJSON(r, &pkg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.catalog.CreatePackage(r.Context(), &pkg); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"package_id": pkg.ID})
}

func (s *HTTPServer) handleListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := s.catalog.ListPackages(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"packages": packages})
}

func (s *HTTPServer) handleCreateHotel(w http.ResponseWriter, r *http.Request) {
	var hotel models.Hotel
	if err := decodeJSON(r, &hotel); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.catalog.CreateHotel(r.Context(), &hotel); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"hotel_id": hotel.ID})
}

func (s *HTTPServer) handleListHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := s.catalog.ListHotels(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hotels": hotels})
}

func (s *HTTPServer) handleExportBookings(w http.ResponseWriter, r *http.Request) {
	path, err := s.exporter.WriteBookingsLedger(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"file": path})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// writeServiceError maps store sentinel errors onto HTTP status codes. The
// response body always names the violated rule.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, database.ErrDuplicateKey):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, database.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, database.ErrConstraintViolation):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, database.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
