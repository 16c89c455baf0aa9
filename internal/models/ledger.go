package models

import "time"

// BookingLedgerRow is a booking joined with its payment, used by exports.
type BookingLedgerRow struct {
	BookingID     int64
	CustomerID    int64
	CustomerName  string
	PackageID     int64
	HotelID       int64
	Status        string
	BookedAt      time.Time
	PaymentAmount float64
	PaymentStatus string
}
