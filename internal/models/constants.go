package models

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusFailed    = "failed"
	PaymentStatusCompleted = "completed"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

const (
	// MinRating и MaxRating границы оценки в отзыве
	MinRating = 1
	MaxRating = 5
)
