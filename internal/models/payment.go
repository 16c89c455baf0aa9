package models

import "time"

type Payment struct {
	ID        int64      `json:"id"`
	BookingID int64      `json:"booking_id"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"` // pending, failed, completed
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
