package utils

import "math"

// RoundHours rounds an hour total to 2 decimal places.
func RoundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}
