package models

import "time"

type Booking struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	PackageID  int64     `json:"package_id,omitempty"` // 0 когда пакет не выбран
	HotelID    int64     `json:"hotel_id,omitempty"`   // 0 когда отель не выбран
	Status     string    `json:"status"`               // pending, confirmed, cancelled
	BookedAt   time.Time `json:"booked_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
