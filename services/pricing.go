package services

import (
	"strings"
	"time"

	"hotels-api/models"
)

// CostCalculator computes the total cost of a stay. The legacy system
// charged a flat placeholder amount; the real formula is still unconfirmed,
// so the calculator is pluggable and selected by configuration.
type CostCalculator interface {
	TotalCost(room models.Room, checkIn, checkOut time.Time) float64
}

// FlatCost charges a fixed amount per reservation regardless of room or
// stay length. This mirrors the legacy behavior and is the default.
type FlatCost struct {
	Amount float64
}

func (f FlatCost) TotalCost(models.Room, time.Time, time.Time) float64 {
	return f.Amount
}

// NightlyCost charges base cost plus tax for each night of the stay.
type NightlyCost struct{}

func (NightlyCost) TotalCost(room models.Room, checkIn, checkOut time.Time) float64 {
	nights := Nights(checkIn, checkOut)
	perNight := room.BaseCost * (1 + room.TaxPercentage/100)
	return perNight * float64(nights)
}

// Nights counts the nights in the half-open interval [checkIn, checkOut).
func Nights(checkIn, checkOut time.Time) int {
	ci := checkIn.Truncate(24 * time.Hour)
	co := checkOut.Truncate(24 * time.Hour)
	n := int(co.Sub(ci).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// NewCostCalculator picks the calculator for the configured pricing mode,
// falling back to flat pricing for unknown modes.
func NewCostCalculator(mode string, flatAmount float64) CostCalculator {
	if strings.EqualFold(mode, "nightly") {
		return NightlyCost{}
	}
	return FlatCost{Amount: flatAmount}
}
