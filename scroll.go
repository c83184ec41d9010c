package main

// ============================================================================
// 行情列表视口控制（选中行 / 滚动位置 / 动画目标 / 滚动条）
// ============================================================================

// animationSettle 目标距离小于等于该值时直接对齐
const animationSettle = 2

// Viewport 行情表格的视口状态机
//
// offset 是第一条可见记录的下标，target 是动画正在逼近的位置。
// 所有方法都是全函数：越界输入一律钳制，不会返回错误。
type Viewport struct {
	itemCount int // 数据条数
	height    int // 可见行数
	selected  int // 当前选中行
	offset    int // 当前滚动位置
	target    int // 动画目标滚动位置
}

// Selected 当前选中行下标
func (v *Viewport) Selected() int { return v.selected }

// Offset 第一条可见记录的下标
func (v *Viewport) Offset() int { return v.offset }

// Target 动画目标滚动位置
func (v *Viewport) Target() int { return v.target }

// Height 可见行数
func (v *Viewport) Height() int { return v.height }

// ItemCount 数据条数
func (v *Viewport) ItemCount() int { return v.itemCount }

// ScrollbarPosition 滚动条位置，与 offset 一致
func (v *Viewport) ScrollbarPosition() int { return v.offset }

// ScrollbarContentLength 滚动条内容长度 max(0, itemCount-height)
func (v *Viewport) ScrollbarContentLength() int {
	return max(0, v.itemCount-v.height)
}

// maxOffset 最大滚动位置；高度为0时视为退化状态，固定为0
func (v *Viewport) maxOffset() int {
	if v.height <= 0 {
		return 0
	}
	return max(0, v.itemCount-v.height)
}

// ============================================================================
// 数据 / 尺寸变更
// ============================================================================

// SetDataset 替换数据条数并重新钳制所有位置
func (v *Viewport) SetDataset(n int) {
	v.itemCount = max(0, n)
	v.clamp()
}

// SetHeight 更新可见行数（每次终端尺寸变化时调用）
func (v *Viewport) SetHeight(h int) {
	v.height = max(0, h)
	v.clamp()
}

// clamp 把 selected/offset/target 拉回合法范围，并保证选中行可见
func (v *Viewport) clamp() {
	if v.itemCount == 0 {
		v.selected, v.offset, v.target = 0, 0, 0
		return
	}

	v.selected = clampInt(v.selected, 0, v.itemCount-1)

	limit := v.maxOffset()
	v.offset = clampInt(v.offset, 0, limit)
	v.target = clampInt(v.target, 0, limit)

	v.scrollToSelected()
}

// ============================================================================
// 选中行移动（立即对齐，无动画）
// ============================================================================

// SelectUp 选中上一行
func (v *Viewport) SelectUp() {
	if v.itemCount == 0 || v.selected == 0 {
		return
	}
	v.selected--
	v.scrollToSelected()
}

// SelectDown 选中下一行
func (v *Viewport) SelectDown() {
	if v.selected >= v.itemCount-1 {
		return
	}
	v.selected++
	v.scrollToSelected()
}

// scrollToSelected 选中行超出可见范围时，滚动位置和目标一起跳到选中行
func (v *Viewport) scrollToSelected() {
	if v.height <= 0 {
		return
	}

	if v.selected < v.offset {
		v.offset = v.selected
		v.target = v.offset
	}

	if v.selected >= v.offset+v.height {
		v.offset = v.selected - v.height + 1
		v.target = v.offset
	}
}

// ============================================================================
// 单行滚动（滚动条先动，光标跟随）
// ============================================================================

// ScrollLineUp 向上滚动一行
func (v *Viewport) ScrollLineUp() {
	if v.offset > 0 {
		v.offset--
	}
	v.target = v.offset
	v.selectWithinView()
}

// ScrollLineDown 向下滚动一行
func (v *Viewport) ScrollLineDown() {
	if v.offset < v.maxOffset() {
		v.offset++
	}
	v.target = v.offset
	v.selectWithinView()
}

// selectWithinView 选中行被滚出视口时，钳制到最近的边缘
func (v *Viewport) selectWithinView() {
	if v.itemCount == 0 || v.height <= 0 {
		return
	}

	if v.selected < v.offset {
		v.selected = v.offset
	}

	if v.selected >= v.offset+v.height {
		v.selected = v.offset + v.height - 1
	}

	v.selected = clampInt(v.selected, 0, v.itemCount-1)
}

// ============================================================================
// 翻页（只移动目标位置，由 Tick 动画追上）
// ============================================================================

// PageDown 目标位置向下移动一整页
func (v *Viewport) PageDown() {
	if v.itemCount == 0 {
		return
	}

	limit := v.maxOffset()
	if v.offset == limit {
		v.selected = v.itemCount - 1
	}

	v.target = min(v.target+v.height, limit)
}

// PageUp 目标位置向上移动一整页
func (v *Viewport) PageUp() {
	if v.itemCount == 0 {
		return
	}

	if v.offset == 0 {
		v.selected = 0
	}

	v.target = max(v.target-v.height, 0)
}

// ============================================================================
// 动画
// ============================================================================

// Tick 推进一步滚动动画，每帧调用一次
//
// 距离大于 animationSettle 时每次移动剩余距离的 1/3（整数除法），
// 否则直接对齐到目标。
func (v *Viewport) Tick() {
	diff := v.target - v.offset

	switch {
	case diff > animationSettle:
		v.offset += diff / 3
	case diff < -animationSettle:
		v.offset -= (-diff) / 3
	default:
		v.offset = v.target
	}

	v.selectWithinView()
}

// Settled 动画是否已经结束
func (v *Viewport) Settled() bool {
	return v.offset == v.target
}

// clampInt 把 x 限制在 [lo, hi]
func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
