// Package gallery maintains the ordered image list a document is assembled
// from: importing, reordering and removing images plus persisting named
// sessions between program invocations.
package gallery

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
)

// Item is a single image in the ordered list. Data holds the original
// (unprocessed) image bytes, MediaType is detected from content at import
// time and never trusted from file extension.
type Item struct {
	ID        string
	Name      string
	MediaType string
	Data      []byte
}

// Size returns size of the original image data in bytes.
func (i *Item) Size() int64 {
	return int64(len(i.Data))
}

// NewItem sniffs data content and creates a list item. Anything not
// recognized as a raster image is rejected here - the assembler only ever
// sees validated items.
func NewItem(name string, data []byte) (*Item, error) {
	if !filetype.IsImage(data) {
		return nil, fmt.Errorf("%s is not a recognized raster image", name)
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("unable to detect type of %s: %w", name, err)
	}
	return &Item{
		ID:        uuid.NewString(),
		Name:      name,
		MediaType: kind.MIME.Value,
		Data:      data,
	}, nil
}
