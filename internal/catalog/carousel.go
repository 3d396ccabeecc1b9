package catalog

import (
	"math"
	"reflect"

	"github.com/yigit/grantsphere/internal/app/models"
)

// DefaultGroupSize is the number of cards per carousel page
const DefaultGroupSize = 3

// slideWidth is the track offset of one page, in percent of the viewport
const slideWidth = 100.0

// Partition splits items into consecutive groups of size. The last group may
// be shorter.
func Partition(items []*models.Scholarship, size int) [][]*models.Scholarship {
	if size <= 0 {
		size = DefaultGroupSize
	}
	groups := make([][]*models.Scholarship, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		groups = append(groups, items[i:end:end])
	}
	return groups
}

// Carousel pages through a fixed list of recommended records. Offset is the
// track position in percent: 0 shows the first page, -100*i shows page i.
type Carousel struct {
	size      int
	items     []*models.Scholarship
	groups    [][]*models.Scholarship
	index     int
	offset    float64
	dragging  bool
	dragStart float64
}

// NewCarousel creates an empty carousel
func NewCarousel(groupSize int) *Carousel {
	if groupSize <= 0 {
		groupSize = DefaultGroupSize
	}
	return &Carousel{size: groupSize, groups: [][]*models.Scholarship{}}
}

// SetItems re-partitions the carousel and resets it to the first page, but
// only when items differ in content from the current list. It reports
// whether a re-partition happened.
func (c *Carousel) SetItems(items []*models.Scholarship) bool {
	if c.items != nil && sameRecords(c.items, items) {
		return false
	}
	c.items = append(make([]*models.Scholarship, 0, len(items)), items...)
	c.groups = Partition(c.items, c.size)
	c.index = 0
	c.offset = 0
	c.dragging = false
	return true
}

func sameRecords(a, b []*models.Scholarship) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Groups returns the pages
func (c *Carousel) Groups() [][]*models.Scholarship {
	return c.groups
}

// GroupCount returns the number of pages
func (c *Carousel) GroupCount() int {
	return len(c.groups)
}

// Index returns the current page
func (c *Carousel) Index() int {
	return c.index
}

// Offset returns the track position in percent
func (c *Carousel) Offset() float64 {
	return c.offset
}

// Dragging reports whether a drag is in progress
func (c *Carousel) Dragging() bool {
	return c.dragging
}

// GoTo jumps to page index, clamped to the valid range
func (c *Carousel) GoTo(index int) {
	n := len(c.groups)
	if n == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= n {
		index = n - 1
	}
	c.index = index
	c.offset = -float64(index) * slideWidth
}

// Next moves one page forward
func (c *Carousel) Next() {
	c.GoTo(c.index + 1)
}

// Prev moves one page back
func (c *Carousel) Prev() {
	c.GoTo(c.index - 1)
}

// BeginDrag starts a drag at pointer position pos
func (c *Carousel) BeginDrag(pos float64) {
	c.dragging = true
	c.dragStart = pos - c.offset
}

// DragTo moves the track with the pointer, bounded by the first and last page
func (c *Carousel) DragTo(pos float64) {
	if !c.dragging {
		return
	}
	minOffset := 0.0
	if n := len(c.groups); n > 0 {
		minOffset = -float64(n-1) * slideWidth
	}
	c.offset = math.Max(minOffset, math.Min(0, pos-c.dragStart))
}

// EndDrag snaps the track to the nearest page
func (c *Carousel) EndDrag() {
	if !c.dragging {
		return
	}
	c.dragging = false
	c.GoTo(int(math.Round(-c.offset / slideWidth)))
}
