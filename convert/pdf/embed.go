package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"img2pdf/config"
	"img2pdf/gallery"
	"img2pdf/jpegquality"
)

// embeddable is an image converted to a form the document encoder accepts
// natively: PNG or JPEG bytes.
type embeddable struct {
	data      []byte
	imageType string // registration type, "PNG" or "JPG"
}

// prepare normalizes an image to embeddable form. PNG and JPEG content goes
// in as is when possible, everything else decodable is re-encoded as JPEG at
// the configured quality. Returned error means this particular image cannot
// be placed, never that the whole document is in trouble.
func prepare(item *gallery.Item, cfg *config.ImagesConfig) (*embeddable, error) {
	imgConf, format, err := image.DecodeConfig(bytes.NewReader(item.Data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", item.Name, err)
	}
	if imgConf.Width <= 0 || imgConf.Height <= 0 {
		return nil, fmt.Errorf("%s has degenerate dimensions %dx%d", item.Name, imgConf.Width, imgConf.Height)
	}

	switch format {
	case "png":
		if cfg.RemovePNGTransparency && hasAlpha(imgConf) {
			data, err := flattenPNG(item.Data)
			if err != nil {
				return nil, fmt.Errorf("unable to remove transparency from %s: %w", item.Name, err)
			}
			return &embeddable{data: data, imageType: "PNG"}, nil
		}
		return &embeddable{data: item.Data, imageType: "PNG"}, nil
	case "jpeg":
		if cfg.Optimize {
			if data, err := optimizeJPEG(item.Data, cfg.Quality.JPEGLevel()); err == nil {
				return &embeddable{data: data, imageType: "JPG"}, nil
			}
			// keep the original on any optimization trouble
		}
		return &embeddable{data: item.Data, imageType: "JPG"}, nil
	default:
		data, err := reencodeJPEG(item.Data, cfg.Quality.JPEGLevel())
		if err != nil {
			return nil, fmt.Errorf("unable to convert %s (%s): %w", item.Name, format, err)
		}
		return &embeddable{data: data, imageType: "JPG"}, nil
	}
}

// hasAlpha reports if decoded PNG color model could carry transparency.
func hasAlpha(conf image.Config) bool {
	switch conf.ColorModel {
	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model, color.AlphaModel, color.Alpha16Model:
		return true
	}
	_, ok := conf.ColorModel.(color.Palette)
	return ok
}

// flattenPNG composites image over a white background dropping the alpha
// channel. Some PDF viewers render transparent areas black otherwise.
func flattenPNG(data []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	flat := image.NewRGBA(img.Bounds())
	draw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Over)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// optimizeJPEG re-encodes a JPEG at the target quality level, but only when
// its detected quality is higher than the target - recompressing an already
// low quality image buys nothing and loses detail.
func optimizeJPEG(data []byte, level int) ([]byte, error) {
	jr, err := jpegquality.NewWithBytes(data)
	if err != nil {
		return nil, err
	}
	if jr.Quality() <= level {
		return data, nil
	}
	return reencodeJPEG(data, level)
}

// reencodeJPEG decodes image in any registered format and encodes it as
// baseline JPEG at the given quality level.
func reencodeJPEG(data []byte, level int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(level)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
