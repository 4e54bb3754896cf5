package refresh

// Point is a scroll offset in surface units.
type Point struct {
	X float64
	Y float64
}

// Size is a width/height pair in surface units.
type Size struct {
	W float64
	H float64
}

// Insets is the padding a surface adds around its content.
type Insets struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

func lerp(from, to, t float64) float64 {
	if t >= 1 {
		return to
	}
	return from + (to-from)*t
}
