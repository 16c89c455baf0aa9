package repository

import "fmt"

// Cache keys for derived aggregates.
func BookingCountKey(customerID int64) string {
	return fmt.Sprintf("booking_count:%d", customerID)
}

func HotelRatingKey(hotelID int64) string {
	return fmt.Sprintf("hotel_rating:%d", hotelID)
}

func PackageRatingKey(packageID int64) string {
	return fmt.Sprintf("package_rating:%d", packageID)
}
