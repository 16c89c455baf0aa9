package models

import "time"

type Package struct {
	ID           int64     `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Description  string    `json:"description" yaml:"description"`
	Destination  string    `json:"destination" yaml:"destination"`
	Price        float64   `json:"price" yaml:"price"`
	DurationDays int64     `json:"duration_days" yaml:"duration_days"`
	IsActive     bool      `json:"is_active" yaml:"is_active"`
	CreatedAt    time.Time `json:"created_at" yaml:"-"`
	UpdatedAt    time.Time `json:"updated_at" yaml:"-"`
}

type Hotel struct {
	ID            int64     `json:"id" yaml:"id"`
	Name          string    `json:"name" yaml:"name"`
	City          string    `json:"city" yaml:"city"`
	Address       string    `json:"address" yaml:"address"`
	PricePerNight float64   `json:"price_per_night" yaml:"price_per_night"`
	IsActive      bool      `json:"is_active" yaml:"is_active"`
	CreatedAt     time.Time `json:"created_at" yaml:"-"`
	UpdatedAt     time.Time `json:"updated_at" yaml:"-"`
}
