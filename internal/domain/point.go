package domain

// Point is a position in screen or popup-local coordinates.
// Values are fractional after display-scale conversion.
type Point struct {
	X float64
	Y float64
}
