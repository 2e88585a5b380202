package qrimage

import "math"

// Sizing is the responsive size policy for the on-page QR code.
type Sizing struct {
	Default     int
	Min         int
	MaxViewport int
	Scale       float64
}

var DefaultSizing = Sizing{
	Default:     240,
	Min:         180,
	MaxViewport: 480,
	Scale:       0.6,
}

// ResponsiveSize scales the viewport width down to a QR edge length, never below s.Min.
// An unknown viewport (<= 0) gets s.Default.
func ResponsiveSize(viewport int, s Sizing) int {
	if viewport <= 0 {
		return s.Default
	}
	w := viewport
	if s.MaxViewport > 0 && w > s.MaxViewport {
		w = s.MaxViewport
	}
	size := int(math.Floor(float64(w) * s.Scale))
	if size < s.Min {
		size = s.Min
	}
	return size
}
