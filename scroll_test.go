package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertViewportInvariants 检查视口不变式
func assertViewportInvariants(t *testing.T, v *Viewport, desc string) {
	t.Helper()

	limit := max(0, v.ItemCount()-v.Height())
	if v.Height() == 0 {
		limit = 0
	}

	assert.GreaterOrEqual(t, v.Offset(), 0, "%s: offset", desc)
	assert.LessOrEqual(t, v.Offset(), limit, "%s: offset <= maxOffset", desc)
	assert.GreaterOrEqual(t, v.Target(), 0, "%s: target", desc)
	assert.LessOrEqual(t, v.Target(), limit, "%s: target <= maxOffset", desc)

	if v.ItemCount() == 0 {
		assert.Equal(t, 0, v.Selected(), "%s: empty selected", desc)
		return
	}

	assert.GreaterOrEqual(t, v.Selected(), 0, "%s: selected", desc)
	assert.Less(t, v.Selected(), v.ItemCount(), "%s: selected < itemCount", desc)

	if v.Height() > 0 {
		assert.LessOrEqual(t, v.Offset(), v.Selected(), "%s: selection below offset", desc)
		assert.Less(t, v.Selected(), min(v.ItemCount(), v.Offset()+v.Height()), "%s: selection past window", desc)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// newViewport 构造一个已经有数据和高度的视口
func newViewport(n, h int) *Viewport {
	v := &Viewport{}
	v.SetDataset(n)
	v.SetHeight(h)
	return v
}

func TestViewportBoundsAfterResizeAndReload(t *testing.T) {
	for n := 0; n <= 30; n++ {
		for h := 0; h <= 12; h++ {
			for _, sel := range []int{0, n / 2, n - 1} {
				a := &Viewport{}
				a.SetDataset(40)
				a.SetHeight(7)
				for i := 0; i < sel; i++ {
					a.SelectDown()
				}
				a.PageDown()
				a.Tick()
				a.SetDataset(n)
				a.SetHeight(h)
				assertViewportInvariants(t, a, fmt.Sprintf("dataset then height n=%d h=%d sel=%d", n, h, sel))

				b := &Viewport{}
				b.SetHeight(7)
				b.SetDataset(40)
				for i := 0; i < sel; i++ {
					b.SelectDown()
				}
				b.SetHeight(h)
				b.SetDataset(n)
				assertViewportInvariants(t, b, fmt.Sprintf("height then dataset n=%d h=%d sel=%d", n, h, sel))
			}
		}
	}
}

func TestViewportEmptyDataset(t *testing.T) {
	for h := 0; h <= 20; h++ {
		v := newViewport(0, h)

		v.SelectDown()
		v.SelectUp()
		v.ScrollLineDown()
		v.ScrollLineUp()
		v.PageDown()
		v.PageUp()
		v.Tick()

		assert.Equal(t, 0, v.Selected(), "h=%d", h)
		assert.Equal(t, 0, v.Offset(), "h=%d", h)
		assert.Equal(t, 0, v.Target(), "h=%d", h)
		assert.Equal(t, 0, v.ScrollbarContentLength(), "h=%d", h)
	}
}

func TestViewportZeroHeight(t *testing.T) {
	v := newViewport(50, 10)
	for i := 0; i < 30; i++ {
		v.SelectDown()
	}
	require.Equal(t, 21, v.Offset())

	v.SetHeight(0)
	assert.Equal(t, 0, v.Offset())
	assert.Equal(t, 0, v.Target())
	assert.Equal(t, 30, v.Selected())
	assert.Equal(t, 50, v.ScrollbarContentLength())

	v.PageDown()
	v.ScrollLineDown()
	v.Tick()
	assert.Equal(t, 0, v.Offset())
	assert.Equal(t, 0, v.Target())
}

func TestViewportSelectMoves(t *testing.T) {
	tests := []struct {
		desc       string
		n, h       int
		downs, ups int
		selected   int
		offset     int
	}{
		{"下移两行不滚动", 100, 10, 2, 0, 2, 0},
		{"到达视口底部", 100, 10, 9, 0, 9, 0},
		{"越过视口底部时对齐", 100, 10, 10, 0, 10, 1},
		{"最后一行", 100, 10, 150, 0, 99, 90},
		{"顶部上移无效", 100, 10, 0, 3, 0, 0},
		{"列表短于视口", 4, 10, 10, 0, 3, 0},
		{"上移回到顶部", 100, 10, 30, 30, 0, 0},
		{"单行视口", 5, 1, 3, 1, 2, 2},
	}

	for _, tt := range tests {
		v := newViewport(tt.n, tt.h)
		for i := 0; i < tt.downs; i++ {
			v.SelectDown()
		}
		for i := 0; i < tt.ups; i++ {
			v.SelectUp()
		}

		assert.Equal(t, tt.selected, v.Selected(), "%s: selected", tt.desc)
		assert.Equal(t, tt.offset, v.Offset(), "%s: offset", tt.desc)
		assert.Equal(t, v.Offset(), v.Target(), "%s: selection moves never ease", tt.desc)
		assertViewportInvariants(t, v, tt.desc)
	}
}

func TestViewportSelectionFollowsScroll(t *testing.T) {
	v := newViewport(100, 10)
	for i := 0; i < 59; i++ {
		v.SelectDown()
	}
	require.Equal(t, 59, v.Selected())
	require.Equal(t, 50, v.Offset())

	for i := 0; i < 9; i++ {
		v.SelectUp()
		assert.Equal(t, 50, v.Offset())
	}
	require.Equal(t, 50, v.Selected())

	for want := 49; want >= 40; want-- {
		v.SelectUp()
		assert.Equal(t, want, v.Selected())
		assert.Equal(t, want, v.Offset(), "offset moves in lock-step")
		assert.Equal(t, want, v.Target(), "no animation pending")
	}
}

func TestViewportLineScroll(t *testing.T) {
	v := newViewport(100, 10)

	v.ScrollLineDown()
	assert.Equal(t, 1, v.Offset())
	assert.Equal(t, 1, v.Target())
	assert.Equal(t, 1, v.Selected(), "cursor pushed to the top edge")

	for i := 0; i < 5; i++ {
		v.SelectDown()
	}
	require.Equal(t, 6, v.Selected())

	v.ScrollLineUp()
	assert.Equal(t, 0, v.Offset())
	assert.Equal(t, 6, v.Selected(), "cursor still visible, stays put")

	v.ScrollLineUp()
	assert.Equal(t, 0, v.Offset(), "top is a no-op")

	for i := 0; i < 200; i++ {
		v.ScrollLineDown()
	}
	assert.Equal(t, 90, v.Offset())
	assert.Equal(t, 90, v.Selected())

	for i := 0; i < 3; i++ {
		v.ScrollLineUp()
	}
	assert.Equal(t, 87, v.Offset())
	assert.Equal(t, 90, v.Selected(), "cursor still inside the window")
	assert.Equal(t, 96, v.Offset()+v.Height()-1)

	for i := 0; i < 6; i++ {
		v.SelectDown()
	}
	require.Equal(t, 96, v.Selected())
	v.ScrollLineUp()
	assert.Equal(t, 86, v.Offset())
	assert.Equal(t, 95, v.Selected(), "cursor pulled up to the bottom edge")
}

func TestViewportLineScrollCancelsAnimation(t *testing.T) {
	v := newViewport(100, 10)
	v.PageDown()
	require.Equal(t, 10, v.Target())
	require.Equal(t, 0, v.Offset())

	v.ScrollLineDown()
	assert.Equal(t, 1, v.Offset())
	assert.Equal(t, 1, v.Target())
}

func TestViewportPageAtBoundary(t *testing.T) {
	v := newViewport(100, 10)
	for i := 0; i < 5; i++ {
		v.SelectDown()
	}

	v.PageUp()
	assert.Equal(t, 0, v.Target())
	assert.Equal(t, 0, v.Selected())

	for v.Offset() != 90 {
		v.PageDown()
		for i := 0; i < 20; i++ {
			v.Tick()
		}
	}
	assert.Equal(t, 90, v.Target())

	v.PageDown()
	assert.Equal(t, 90, v.Target())
	assert.Equal(t, 99, v.Selected())
	assertViewportInvariants(t, v, "bottom")
}

func TestViewportPageGlides(t *testing.T) {
	v := newViewport(100, 10)

	v.PageDown()
	assert.Equal(t, 10, v.Target())
	assert.Equal(t, 0, v.Offset(), "page jumps only move the target")
	assert.Equal(t, 0, v.Selected())

	v.Tick()
	assert.Equal(t, 3, v.Offset())
	assert.Equal(t, 3, v.Selected(), "cursor dragged along by the window")

	for i := 0; i < 10; i++ {
		v.Tick()
	}
	assert.Equal(t, 10, v.Offset())
	assert.Equal(t, 10, v.Selected())

	v.PageDown()
	v.PageDown()
	assert.Equal(t, 30, v.Target())

	v.PageUp()
	assert.Equal(t, 20, v.Target())
	assert.Equal(t, 10, v.Offset())
}

func TestViewportPageShortList(t *testing.T) {
	v := newViewport(4, 10)
	v.SelectDown()

	v.PageDown()
	assert.Equal(t, 3, v.Selected())
	assert.Equal(t, 0, v.Target())

	v.PageUp()
	assert.Equal(t, 0, v.Selected())
	assert.Equal(t, 0, v.Target())
}

func TestViewportTickIdempotent(t *testing.T) {
	v := newViewport(100, 10)
	for i := 0; i < 42; i++ {
		v.SelectDown()
	}
	before := *v

	for i := 0; i < 5; i++ {
		v.Tick()
		assert.Equal(t, before, *v)
	}
}

func TestViewportTickConvergence(t *testing.T) {
	tests := []struct {
		desc     string
		distance int
		maxTicks int
	}{
		{"settle threshold", 2, 1},
		{"one step", 3, 2},
		{"one page", 10, 6},
		{"hundred rows", 100, 12},
		{"thousand rows", 1000, 18},
	}

	for _, tt := range tests {
		for _, dir := range []int{1, -1} {
			v := newViewport(tt.distance+50, 10)
			if dir > 0 {
				v.target = tt.distance
			} else {
				v.offset = tt.distance
				v.target = 0
				v.selected = tt.distance
			}

			ticks := 0
			prev := absInt(v.target - v.offset)
			for !v.Settled() && ticks < 100 {
				v.Tick()
				ticks++
				remaining := absInt(v.target - v.offset)
				assert.Less(t, remaining, prev, "%s: distance must strictly shrink", tt.desc)
				prev = remaining
			}

			assert.True(t, v.Settled(), "%s dir=%d", tt.desc, dir)
			assert.LessOrEqual(t, ticks, tt.maxTicks, "%s dir=%d", tt.desc, dir)
		}
	}
}

func TestViewportTickSteps(t *testing.T) {
	v := newViewport(200, 10)
	v.target = 100

	want := []int{33, 55, 70, 80, 86, 90, 93, 95, 96, 97, 98, 100}
	for i, offset := range want {
		v.Tick()
		assert.Equal(t, offset, v.Offset(), "tick %d", i+1)
	}
}

func TestViewportDatasetShrink(t *testing.T) {
	v := newViewport(100, 10)
	for i := 0; i < 95; i++ {
		v.SelectDown()
	}
	require.Equal(t, 86, v.Offset())

	v.SetDataset(20)
	assert.Equal(t, 19, v.Selected())
	assert.Equal(t, 10, v.Offset())
	assert.Equal(t, 10, v.Target())

	v.SetDataset(5)
	assert.Equal(t, 4, v.Selected())
	assert.Equal(t, 0, v.Offset())

	v.SetDataset(0)
	assert.Equal(t, 0, v.Selected())
	assert.Equal(t, 0, v.Offset())
}

func TestViewportResizeKeepsSelection(t *testing.T) {
	v := newViewport(100, 20)
	for i := 0; i < 19; i++ {
		v.SelectDown()
	}
	require.Equal(t, 0, v.Offset())

	v.SetHeight(5)
	assert.Equal(t, 19, v.Selected())
	assert.Equal(t, 15, v.Offset())
	assertViewportInvariants(t, v, "shrink height")

	v.SetHeight(40)
	assert.Equal(t, 19, v.Selected())
	assert.Equal(t, 15, v.Offset())
	assertViewportInvariants(t, v, "grow height")
}

func TestViewportScrollbar(t *testing.T) {
	v := newViewport(100, 10)
	assert.Equal(t, 90, v.ScrollbarContentLength())
	assert.Equal(t, 0, v.ScrollbarPosition())

	v.ScrollLineDown()
	v.ScrollLineDown()
	assert.Equal(t, 2, v.ScrollbarPosition())

	v.SetHeight(120)
	assert.Equal(t, 0, v.ScrollbarContentLength())
	assert.Equal(t, 0, v.ScrollbarPosition())
}

func TestViewportNegativeInputs(t *testing.T) {
	v := &Viewport{}
	v.SetDataset(-5)
	v.SetHeight(-3)
	assert.Equal(t, 0, v.ItemCount())
	assert.Equal(t, 0, v.Height())
	assertViewportInvariants(t, v, "negative")
}
