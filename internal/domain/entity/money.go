package entity

import "math"

// RoundCents rounds an amount to two decimal places, half away from zero.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
