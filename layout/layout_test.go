package layout

import (
	"math"
	"testing"
)

const eps = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestComputeSlot_SinglePerPage(t *testing.T) {
	// A4 portrait, margin 20, one 400x300 image:
	// scale = min(555/400, 802/300) = 1.3875
	r := ComputeSlot(400, 300, 595, 842, 20, 1, 0)

	if !almostEqual(r.Width, 555.0) {
		t.Errorf("Width = %f, want 555.0", r.Width)
	}
	if !almostEqual(r.Height, 416.25) {
		t.Errorf("Height = %f, want 416.25", r.Height)
	}
	if !almostEqual(r.X, 20) {
		t.Errorf("X = %f, want 20", r.X)
	}
	if !almostEqual(r.Y, 20+(802-416.25)/2) {
		t.Errorf("Y = %f, want %f", r.Y, 20+(802-416.25)/2)
	}
}

func TestComputeSlot_TwoPerPage(t *testing.T) {
	pageW, pageH, margin := 595.0, 842.0, 20.0
	halfW := pageW / 2
	availW := halfW - margin - Gap
	availH := pageH - 2*margin

	for slot := range 2 {
		r := ComputeSlot(800, 600, pageW, pageH, margin, 2, slot)

		if r.Width > availW+eps || r.Height > availH+eps {
			t.Errorf("slot %d: rect %fx%f exceeds cell %fx%f", slot, r.Width, r.Height, availW, availH)
		}
		// column boundaries
		if slot == 0 && r.X+r.Width > halfW+eps {
			t.Errorf("slot 0 crosses into right column: X+W = %f", r.X+r.Width)
		}
		if slot == 1 && r.X < halfW-eps {
			t.Errorf("slot 1 starts in left column: X = %f", r.X)
		}
	}
}

func TestComputeSlot_FourPerPage(t *testing.T) {
	pageW, pageH, margin := 612.0, 792.0, 15.0
	halfW, halfH := pageW/2, pageH/2

	positions := []struct {
		slot       int
		col, row   int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{2, 0, 1},
		{3, 1, 1},
	}

	for _, p := range positions {
		r := ComputeSlot(1000, 1000, pageW, pageH, margin, 4, p.slot)

		if minX := float64(p.col) * halfW; r.X < minX-eps || r.X+r.Width > minX+halfW+eps {
			t.Errorf("slot %d: X span [%f, %f] outside column %d", p.slot, r.X, r.X+r.Width, p.col)
		}
		if minY := float64(p.row) * halfH; r.Y < minY-eps || r.Y+r.Height > minY+halfH+eps {
			t.Errorf("slot %d: Y span [%f, %f] outside row %d", p.slot, r.Y, r.Y+r.Height, p.row)
		}
	}
}

func TestComputeSlot_UnrecognizedModeFallsBack(t *testing.T) {
	want := ComputeSlot(400, 300, 595, 842, 20, 1, 0)

	for _, perPage := range []int{0, 3, 5, -1, 100} {
		got := ComputeSlot(400, 300, 595, 842, 20, perPage, 0)
		if got != want {
			t.Errorf("perPage %d: got %+v, want single-image placement %+v", perPage, got, want)
		}
	}
}

func TestComputeSlot_PreservesAspectRatio(t *testing.T) {
	dims := []struct{ w, h float64 }{
		{100, 100}, {1920, 1080}, {300, 4000}, {7, 5}, {5000, 50},
	}

	for _, d := range dims {
		for _, perPage := range []int{1, 2, 4} {
			for slot := range perPage {
				r := ComputeSlot(d.w, d.h, 595, 842, 20, perPage, slot)

				if r.Width <= 0 || r.Height <= 0 {
					t.Fatalf("%fx%f per-page %d slot %d: degenerate rect %+v", d.w, d.h, perPage, slot, r)
				}
				if got, want := r.Width/r.Height, d.w/d.h; !almostEqual(got/want, 1) {
					t.Errorf("%fx%f per-page %d slot %d: aspect %f, want %f", d.w, d.h, perPage, slot, got, want)
				}
			}
		}
	}
}

func TestComputeSlot_Deterministic(t *testing.T) {
	a := ComputeSlot(123, 456, 612, 1008, 36, 4, 3)
	b := ComputeSlot(123, 456, 612, 1008, 36, 4, 3)
	if a != b {
		t.Errorf("identical inputs produced different rects: %+v vs %+v", a, b)
	}
}

func TestComputeSlot_UpscalesSmallImages(t *testing.T) {
	// fit-and-center scales up to fill the cell, it only never crops
	r := ComputeSlot(10, 10, 595, 842, 20, 1, 0)
	if r.Width < 500 {
		t.Errorf("small image was not scaled up to the cell: %+v", r)
	}
	if r.Width > 595-2*20+eps {
		t.Errorf("image exceeds available width: %+v", r)
	}
}
