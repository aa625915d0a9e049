// Package pdf assembles the ordered image list into a paginated PDF
// document. Placement geometry comes from the layout package, everything
// wire-format related is delegated to gofpdf.
package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"img2pdf/config"
	"img2pdf/gallery"
	"img2pdf/layout"
)

// ProgressFunc receives assembly progress in percents. It is called once per
// image before processing starts and once with exactly 100 when assembly is
// done.
type ProgressFunc func(percent float64)

// Result describes a finished assembly run.
type Result struct {
	Data    []byte // serialized PDF document
	Placed  int    // images successfully placed
	Skipped int    // images dropped due to per-image failures
	Pages   int    // pages in the document, always at least 1
}

// Generator builds PDF documents from image lists according to document
// configuration. It is safe to reuse for multiple Generate calls but not
// concurrently.
type Generator struct {
	page   config.PageConfig
	images config.ImagesConfig
	log    *zap.Logger
}

// NewGenerator creates a document generator. Unsupported images_per_page
// values fall back to single image per page.
func NewGenerator(cfg *config.DocumentConfig, log *zap.Logger) *Generator {
	g := &Generator{
		page:   cfg.Page,
		images: cfg.Images,
		log:    log,
	}
	switch g.page.ImagesPerPage {
	case 1, 2, 4:
	default:
		log.Warn("Unsupported images per page value, using single image layout", zap.Int("images_per_page", g.page.ImagesPerPage))
		g.page.ImagesPerPage = 1
	}
	return g
}

// Generate places all images from the list on fixed-size pages in list order
// and serializes the document. A failure to process a particular image is
// logged and counted in the result but never aborts the run - the document is
// always produced, possibly with a single empty page when nothing could be
// placed. Context cancellation aborts the whole run.
func (g *Generator) Generate(ctx context.Context, items []*gallery.Item, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(float64) {}
	}

	pageW, pageH := g.page.Orientation.Apply(g.page.Size.Dimensions())
	perPage := g.page.ImagesPerPage

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	res := &Result{Pages: 1}
	total := len(items)
	slot := 0

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("document assembly interrupted: %w", err)
		}
		progress(float64(i) / float64(total) * 100)

		emb, err := prepare(item, &g.images)
		if err != nil {
			g.log.Warn("Skipping image", zap.String("image", item.Name), zap.Error(err))
			res.Skipped++
			continue
		}

		info := doc.RegisterImageOptionsReader(item.ID,
			gofpdf.ImageOptions{ImageType: emb.imageType},
			bytes.NewReader(emb.data))
		if doc.Err() {
			g.log.Warn("Skipping image", zap.String("image", item.Name), zap.Error(doc.Error()))
			doc.ClearError()
			res.Skipped++
			continue
		}

		// new page only when a successful image actually needs it, so
		// failed images never leave empty pages behind
		if slot == perPage {
			doc.AddPage()
			res.Pages++
			slot = 0
		}

		rect := layout.ComputeSlot(info.Width(), info.Height(), pageW, pageH, g.page.Margin, perPage, slot)
		doc.ImageOptions(item.ID, rect.X, rect.Y, rect.Width, rect.Height, false,
			gofpdf.ImageOptions{ImageType: emb.imageType}, 0, "")
		if doc.Err() {
			return nil, fmt.Errorf("unable to place %s: %w", item.Name, doc.Error())
		}

		g.log.Debug("Placed image",
			zap.String("image", item.Name),
			zap.Int("page", res.Pages),
			zap.Int("slot", slot))
		res.Placed++
		slot++
	}
	progress(100)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("unable to serialize document: %w", err)
	}
	res.Data = buf.Bytes()
	return res, nil
}
