package config

import "testing"

func TestPageSizeDimensions(t *testing.T) {
	cases := []struct {
		size PageSize
		w, h float64
	}{
		{PageSizeA4, 595, 842},
		{PageSizeLetter, 612, 792},
		{PageSizeLegal, 612, 1008},
	}
	for _, tc := range cases {
		if w, h := tc.size.Dimensions(); w != tc.w || h != tc.h {
			t.Errorf("%s dimensions = %gx%g, want %gx%g", tc.size, w, h, tc.w, tc.h)
		}
	}
}

func TestOrientationApply(t *testing.T) {
	if w, h := OrientationPortrait.Apply(595, 842); w != 595 || h != 842 {
		t.Errorf("portrait = %gx%g, want 595x842", w, h)
	}
	if w, h := OrientationLandscape.Apply(595, 842); w != 842 || h != 595 {
		t.Errorf("landscape = %gx%g, want 842x595", w, h)
	}
}

func TestQualityJPEGLevel(t *testing.T) {
	cases := []struct {
		quality Quality
		level   int
	}{
		{QualityHigh, 90},
		{QualityMedium, 70},
		{QualityLow, 50},
	}
	for _, tc := range cases {
		if got := tc.quality.JPEGLevel(); got != tc.level {
			t.Errorf("%s JPEG level = %d, want %d", tc.quality, got, tc.level)
		}
	}
}

func TestEnumParsing(t *testing.T) {
	if v, err := ParsePageSize("letter"); err != nil || v != PageSizeLetter {
		t.Errorf("ParsePageSize(letter) = %v, %v", v, err)
	}
	if _, err := ParsePageSize("a5"); err == nil {
		t.Error("ParsePageSize(a5) expected error")
	}
	if v, err := ParseOrientation("landscape"); err != nil || v != OrientationLandscape {
		t.Errorf("ParseOrientation(landscape) = %v, %v", v, err)
	}
	if v, err := ParseQuality("medium"); err != nil || v != QualityMedium {
		t.Errorf("ParseQuality(medium) = %v, %v", v, err)
	}
}
