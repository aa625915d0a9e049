package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"

	"img2pdf/config"
	"img2pdf/gallery"
)

func defaultDocumentConfig() *config.DocumentConfig {
	return &config.DocumentConfig{
		Page: config.PageConfig{
			Size:          config.PageSizeA4,
			Orientation:   config.OrientationPortrait,
			Margin:        20,
			ImagesPerPage: 1,
		},
		Images: config.ImagesConfig{
			Quality:     config.QualityHigh,
			MaxCount:    100,
			MaxFileSize: 10 << 20,
		},
	}
}

func encodePNG(tb testing.TB, width, height int, c color.Color) []byte {
	tb.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		tb.Fatalf("failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(tb testing.TB, width, height int, quality int) []byte {
	tb.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.Set(x, y, color.RGBA{uint8(x * 7), uint8(y * 7), 100, 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		tb.Fatalf("failed to encode JPEG: %v", err)
	}
	return buf.Bytes()
}

func testItems(tb testing.TB, count int) []*gallery.Item {
	tb.Helper()
	items := make([]*gallery.Item, 0, count)
	for i := range count {
		item, err := gallery.NewItem(fmt.Sprintf("image-%d.png", i),
			encodePNG(tb, 40+i, 30+i, color.RGBA{uint8(i * 20), 100, 200, 255}))
		if err != nil {
			tb.Fatalf("failed to create item: %v", err)
		}
		items = append(items, item)
	}
	return items
}

func pageCount(tb testing.TB, data []byte) int {
	tb.Helper()
	ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		tb.Fatalf("produced document does not validate: %v", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		tb.Fatalf("unable to get page count: %v", err)
	}
	return ctx.PageCount
}

func TestGenerate_SingleImagePerPage(t *testing.T) {
	gen := NewGenerator(defaultDocumentConfig(), zap.NewNop())

	res, err := gen.Generate(context.Background(), testItems(t, 3), nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if res.Placed != 3 || res.Skipped != 0 {
		t.Errorf("Placed = %d, Skipped = %d, want 3, 0", res.Placed, res.Skipped)
	}
	if res.Pages != 3 {
		t.Errorf("Pages = %d, want 3", res.Pages)
	}
	if got := pageCount(t, res.Data); got != 3 {
		t.Errorf("document has %d pages, want 3", got)
	}
}

func TestGenerate_PageCounts(t *testing.T) {
	cases := []struct {
		images    int
		perPage   int
		wantPages int
	}{
		{1, 1, 1},
		{5, 4, 2},
		{4, 2, 2},
		{1, 4, 1},
		{8, 4, 2},
		{0, 1, 1},
		{3, 7, 3}, // unsupported mode falls back to single image
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d at %d per page", tc.images, tc.perPage), func(t *testing.T) {
			cfg := defaultDocumentConfig()
			cfg.Page.ImagesPerPage = tc.perPage
			gen := NewGenerator(cfg, zap.NewNop())

			res, err := gen.Generate(context.Background(), testItems(t, tc.images), nil)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if res.Pages != tc.wantPages {
				t.Errorf("Pages = %d, want %d", res.Pages, tc.wantPages)
			}
			if got := pageCount(t, res.Data); got != tc.wantPages {
				t.Errorf("document has %d pages, want %d", got, tc.wantPages)
			}
		})
	}
}

func TestGenerate_SkipsBadImages(t *testing.T) {
	good := testItems(t, 2)
	items := []*gallery.Item{
		good[0],
		{ID: "corrupt", Name: "corrupt.png", MediaType: "image/png", Data: []byte("these bytes never decode")},
		good[1],
	}

	cfg := defaultDocumentConfig()
	cfg.Page.ImagesPerPage = 2
	gen := NewGenerator(cfg, zap.NewNop())

	res, err := gen.Generate(context.Background(), items, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if res.Placed != 2 || res.Skipped != 1 {
		t.Errorf("Placed = %d, Skipped = %d, want 2, 1", res.Placed, res.Skipped)
	}
	// two good images still share one page, the failure leaves no hole
	if res.Pages != 1 {
		t.Errorf("Pages = %d, want 1", res.Pages)
	}
	if got := pageCount(t, res.Data); got != 1 {
		t.Errorf("document has %d pages, want 1", got)
	}
}

func TestGenerate_AllImagesBad(t *testing.T) {
	items := []*gallery.Item{
		{ID: "a", Name: "a.png", Data: []byte("garbage")},
		{ID: "b", Name: "b.png", Data: []byte("more garbage")},
	}
	gen := NewGenerator(defaultDocumentConfig(), zap.NewNop())

	res, err := gen.Generate(context.Background(), items, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if res.Placed != 0 || res.Skipped != 2 {
		t.Errorf("Placed = %d, Skipped = %d, want 0, 2", res.Placed, res.Skipped)
	}
	if got := pageCount(t, res.Data); got != 1 {
		t.Errorf("document has %d pages, want single empty page", got)
	}
}

func TestGenerate_Progress(t *testing.T) {
	gen := NewGenerator(defaultDocumentConfig(), zap.NewNop())

	var reported []float64
	items := testItems(t, 4)
	if _, err := gen.Generate(context.Background(), items, func(percent float64) {
		reported = append(reported, percent)
	}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(reported) != len(items)+1 {
		t.Fatalf("progress reported %d times, want %d", len(reported), len(items)+1)
	}
	if reported[0] != 0 {
		t.Errorf("first progress report = %g, want 0", reported[0])
	}
	if last := reported[len(reported)-1]; last != 100 {
		t.Errorf("last progress report = %g, want 100", last)
	}
	for i := 1; i < len(reported); i++ {
		if reported[i] < reported[i-1] {
			t.Errorf("progress went backwards: %g after %g", reported[i], reported[i-1])
		}
	}
}

func TestGenerate_Cancellation(t *testing.T) {
	gen := NewGenerator(defaultDocumentConfig(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := gen.Generate(ctx, testItems(t, 2), nil); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestGenerate_MixedFormats(t *testing.T) {
	items := []*gallery.Item{
		{ID: "p", Name: "p.png", Data: encodePNG(t, 30, 20, color.RGBA{10, 20, 30, 255})},
		{ID: "j", Name: "j.jpg", Data: encodeJPEG(t, 50, 40, 85)},
	}

	cfg := defaultDocumentConfig()
	cfg.Page.Orientation = config.OrientationLandscape
	cfg.Page.Size = config.PageSizeLetter
	gen := NewGenerator(cfg, zap.NewNop())

	res, err := gen.Generate(context.Background(), items, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if res.Placed != 2 {
		t.Errorf("Placed = %d, want 2", res.Placed)
	}
	if got := pageCount(t, res.Data); got != 2 {
		t.Errorf("document has %d pages, want 2", got)
	}
}
