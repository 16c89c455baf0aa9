package models

import "time"

type Review struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	PackageID  int64     `json:"package_id,omitempty"`
	HotelID    int64     `json:"hotel_id,omitempty"`
	Rating     int64     `json:"rating"` // 1..5
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
