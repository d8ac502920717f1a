package raster

// Clamp8 limits v to [0, 255] and truncates it to a channel value.
func Clamp8(v float64) uint8 {
	return uint8(ClampRange(v, 0, 255))
}

// ClampRange limits v to the inclusive range [lo, hi].
func ClampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
