package config

// Specification of page size class. Dimensions are in PDF points.
// ENUM(a4, letter, legal)
type PageSize int

// Dimensions returns page width and height in points for portrait
// orientation.
func (p PageSize) Dimensions() (w, h float64) {
	switch p {
	case PageSizeLetter:
		return 612, 792
	case PageSizeLegal:
		return 612, 1008
	default:
		return 595, 842
	}
}

// Specification of page orientation.
// ENUM(portrait, landscape)
type Orientation int

// Apply returns page dimensions with orientation taken into account -
// landscape swaps width and height.
func (o Orientation) Apply(w, h float64) (float64, float64) {
	if o == OrientationLandscape {
		return h, w
	}
	return w, h
}

// Specification of re-encoding quality for images which cannot be embedded
// into PDF directly.
// ENUM(high, medium, low)
type Quality int

// JPEGLevel maps quality class to JPEG encoder quality level.
func (q Quality) JPEGLevel() int {
	switch q {
	case QualityMedium:
		return 70
	case QualityLow:
		return 50
	default:
		return 90
	}
}
