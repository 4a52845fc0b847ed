// Package settlement converts a completed transaction into course access
// and wallet credits. The math helpers are pure; Applier does the writes
// inside the caller's unit of work.
package settlement

import "math"

// Round2 rounds to two decimal places, the resolution of all stored
// money figures.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Tax computes the tax on a subtotal at the given rate.
func Tax(subtotal, rate float64) float64 {
	return Round2(subtotal * rate)
}

// Discount computes the voucher discount for a percentage off the
// subtotal.
func Discount(subtotal, percentage float64) float64 {
	return Round2(subtotal * percentage / 100)
}

// Split divides an amount between instructor and platform. The platform
// part is the remainder after rounding the instructor share, so the two
// always sum to exactly the input.
func Split(amount, instructorShare float64) (instructor, platform float64) {
	instructor = Round2(amount * instructorShare)
	platform = Round2(amount - instructor)
	return instructor, platform
}
