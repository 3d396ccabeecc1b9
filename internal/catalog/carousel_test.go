package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/grantsphere/internal/app/models"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		n     int
		sizes []int
	}{
		{0, []int{}},
		{1, []int{1}},
		{3, []int{3}},
		{7, []int{3, 3, 1}},
		{9, []int{3, 3, 3}},
	}

	for _, tt := range tests {
		items := records(tt.n)
		groups := Partition(items, DefaultGroupSize)

		sizes := make([]int, 0, len(groups))
		var flat []*models.Scholarship
		for _, g := range groups {
			sizes = append(sizes, len(g))
			flat = append(flat, g...)
		}
		assert.Equal(t, tt.sizes, sizes, "n=%d", tt.n)
		assert.Equal(t, ids(items), ids(flat), "concatenation restores the input")
	}
}

func TestCarouselPaging(t *testing.T) {
	c := NewCarousel(DefaultGroupSize)
	require.True(t, c.SetItems(records(7)))
	require.Equal(t, 3, c.GroupCount())
	assert.Equal(t, 0, c.Index())

	c.Prev()
	assert.Equal(t, 0, c.Index(), "prev on the first page is a no-op")

	c.Next()
	c.Next()
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, -200.0, c.Offset())

	c.Next()
	assert.Equal(t, 2, c.Index(), "next on the last page is a no-op")

	c.GoTo(10)
	assert.Equal(t, 2, c.Index())
	c.GoTo(-3)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0.0, c.Offset())
}

func TestCarouselEmpty(t *testing.T) {
	c := NewCarousel(DefaultGroupSize)
	c.SetItems(nil)
	assert.Equal(t, 0, c.GroupCount())

	c.Next()
	c.GoTo(2)
	assert.Equal(t, 0, c.Index())
	assert.NotNil(t, c.Groups())
}

func TestCarouselSetItemsComparesContent(t *testing.T) {
	items := records(6)
	c := NewCarousel(DefaultGroupSize)
	require.True(t, c.SetItems(items))
	c.Next()

	// Equal content in a fresh slice with fresh pointers
	clone := make([]*models.Scholarship, len(items))
	for i, r := range items {
		cp := *r
		clone[i] = &cp
	}
	assert.False(t, c.SetItems(clone))
	assert.Equal(t, 1, c.Index(), "unchanged items keep the current page")

	changed := records(6)
	changed[5].Name = "Другая стипендия"
	assert.True(t, c.SetItems(changed))
	assert.Equal(t, 0, c.Index(), "new items reset to the first page")
}

func TestCarouselDragSnapsToNearestPage(t *testing.T) {
	c := NewCarousel(DefaultGroupSize)
	c.SetItems(records(9))

	c.BeginDrag(0)
	c.DragTo(-140)
	assert.True(t, c.Dragging())
	assert.Equal(t, -140.0, c.Offset())
	c.EndDrag()
	assert.False(t, c.Dragging())
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, -100.0, c.Offset())

	c.BeginDrag(50)
	c.DragTo(-10)
	c.EndDrag()
	assert.Equal(t, 2, c.Index())
}

func TestCarouselDragIsBounded(t *testing.T) {
	c := NewCarousel(DefaultGroupSize)
	c.SetItems(records(9))

	c.BeginDrag(0)
	c.DragTo(80)
	assert.Equal(t, 0.0, c.Offset())
	c.DragTo(-900)
	assert.Equal(t, -200.0, c.Offset())
	c.EndDrag()
	assert.Equal(t, 2, c.Index())
}

func TestCarouselDragWithoutBeginIsIgnored(t *testing.T) {
	c := NewCarousel(DefaultGroupSize)
	c.SetItems(records(9))

	c.DragTo(-150)
	c.EndDrag()
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0.0, c.Offset())
}
