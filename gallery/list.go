package gallery

import (
	"fmt"
	"slices"

	"img2pdf/config"
)

// List is the ordered, user-mutable image sequence. Order is significant -
// it defines placement order during assembly. List owns its items: they are
// dropped on removal or clear.
type List struct {
	maxCount int
	maxBytes int64
	items    []*Item
}

// NewList creates an empty list enforcing import limits from configuration.
func NewList(cfg *config.ImagesConfig) *List {
	return &List{
		maxCount: cfg.MaxCount,
		maxBytes: cfg.MaxFileSize,
	}
}

// Len returns number of images in the list.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns items in list order. Returned slice is owned by the list and
// must not be mutated by the caller.
func (l *List) Items() []*Item {
	return l.items
}

// Add validates data against import limits, creates a new item and appends it
// to the end of the list.
func (l *List) Add(name string, data []byte) (*Item, error) {
	if l.maxCount > 0 && len(l.items) >= l.maxCount {
		return nil, fmt.Errorf("image limit reached (%d), not adding %s", l.maxCount, name)
	}
	if l.maxBytes > 0 && int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("%s is too big (%d bytes, limit %d)", name, len(data), l.maxBytes)
	}

	item, err := NewItem(name, data)
	if err != nil {
		return nil, err
	}
	l.items = append(l.items, item)
	return item, nil
}

// AddItem appends an already validated item (loaded from a session store).
func (l *List) AddItem(item *Item) error {
	if l.maxCount > 0 && len(l.items) >= l.maxCount {
		return fmt.Errorf("image limit reached (%d), not adding %s", l.maxCount, item.Name)
	}
	l.items = append(l.items, item)
	return nil
}

// Remove drops item with the given id from the list. Returns false when no
// such item exists.
func (l *List) Remove(id string) bool {
	for i, item := range l.items {
		if item.ID == id {
			l.items[i] = nil // release item data
			l.items = slices.Delete(l.items, i, i+1)
			return true
		}
	}
	return false
}

// Move relocates item at index from to index to keeping relative order of all
// other items - an explicit form of drag-reorder.
func (l *List) Move(from, to int) error {
	if from < 0 || from >= len(l.items) {
		return fmt.Errorf("move source index %d out of range [0, %d)", from, len(l.items))
	}
	if to < 0 || to >= len(l.items) {
		return fmt.Errorf("move target index %d out of range [0, %d)", to, len(l.items))
	}
	if from == to {
		return nil
	}

	item := l.items[from]
	l.items = slices.Delete(l.items, from, from+1)
	l.items = slices.Insert(l.items, to, item)
	return nil
}

// Clear drops all items.
func (l *List) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}
