// Package layout computes image placement on fixed-size PDF pages. It is
// purely computational - all inputs and outputs are in page points, placement
// never crops and never distorts aspect ratio.
package layout

import "math"

// Gap is the fixed inter-image spacing used by multi-image page grids, in
// points.
const Gap = 10.0

// Rect describes placement of a single scaled image in page coordinate space.
// Y grows from the top of the page down.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// ComputeSlot returns placement rectangle for an image with intrinsic pixel
// dimensions imgW x imgH put into slot number slot on a pageW x pageH page
// with given margin and perPage images on every page.
//
// Supported modes are 1 (single image centered on the page), 2 (two vertical
// columns) and 4 (2x2 grid). Any other value falls back to the single image
// mode. Image dimensions must be positive - caller is expected to drop
// undecodable images before asking for placement.
func ComputeSlot(imgW, imgH, pageW, pageH, margin float64, perPage, slot int) Rect {
	switch perPage {
	case 2:
		halfW := pageW / 2
		availW := halfW - margin - Gap
		availH := pageH - 2*margin
		r := fit(imgW, imgH, availW, availH)
		r.X = float64(slot%2)*halfW + margin + (availW-r.Width)/2
		r.Y = margin + (availH-r.Height)/2
		return r
	case 4:
		halfW, halfH := pageW/2, pageH/2
		availW := halfW - margin - Gap
		availH := halfH - margin - Gap
		r := fit(imgW, imgH, availW, availH)
		r.X = float64(slot%2)*halfW + margin + (availW-r.Width)/2
		r.Y = float64(slot/2%2)*halfH + margin + (availH-r.Height)/2
		return r
	default:
		availW := pageW - 2*margin
		availH := pageH - 2*margin
		r := fit(imgW, imgH, availW, availH)
		r.X = margin + (availW-r.Width)/2
		r.Y = margin + (availH-r.Height)/2
		return r
	}
}

// fit scales imgW x imgH uniformly to the largest size not exceeding
// availW x availH in either dimension.
func fit(imgW, imgH, availW, availH float64) Rect {
	scale := math.Min(availW/imgW, availH/imgH)
	return Rect{Width: imgW * scale, Height: imgH * scale}
}
