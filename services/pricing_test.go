package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotels-api/models"
)

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		in, out  string
		expected int
	}{
		{"four nights", "2024-06-01", "2024-06-05", 4},
		{"single night", "2024-06-01", "2024-06-02", 1},
		{"same day", "2024-06-01", "2024-06-01", 0},
		{"reversed clamps to zero", "2024-06-05", "2024-06-01", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Nights(date(t, tc.in), date(t, tc.out)))
		})
	}
}

func TestFlatCostIgnoresStay(t *testing.T) {
	calc := FlatCost{Amount: 500}
	room := models.Room{BaseCost: 120, TaxPercentage: 19}

	short := calc.TotalCost(room, date(t, "2024-06-01"), date(t, "2024-06-02"))
	long := calc.TotalCost(room, date(t, "2024-06-01"), date(t, "2024-07-01"))

	assert.Equal(t, 500.0, short)
	assert.Equal(t, 500.0, long)
}

func TestNightlyCost(t *testing.T) {
	calc := NightlyCost{}
	room := models.Room{BaseCost: 100, TaxPercentage: 10}

	total := calc.TotalCost(room, date(t, "2024-06-01"), date(t, "2024-06-05"))

	// 4 nights at 100 plus 10% tax
	assert.InDelta(t, 440.0, total, 0.001)
}

func TestNewCostCalculator(t *testing.T) {
	assert.IsType(t, FlatCost{}, NewCostCalculator("flat", 500))
	assert.IsType(t, NightlyCost{}, NewCostCalculator("nightly", 0))
	assert.IsType(t, FlatCost{}, NewCostCalculator("unknown", 500))
}
