package main

// ============================================================================
// 竖向滚动条
// ============================================================================

// 滚动条字符
const (
	scrollbarBegin = "▲"
	scrollbarEnd   = "▼"
	scrollbarTrack = "│"
	scrollbarThumb = "█"
)

// renderScrollbar 生成长度为 trackHeight 的滚动条字符列（自上而下）
//
// 两端是箭头，中间是轨道；滑块长度与可见比例成正比，至少 1 格。
// position 取值 [0, contentLength]，contentLength 为 0 表示内容全部可见。
func renderScrollbar(trackHeight, position, contentLength, viewportHeight int) []string {
	if trackHeight <= 0 {
		return nil
	}

	glyphs := make([]string, trackHeight)
	if trackHeight < 3 {
		for i := range glyphs {
			glyphs[i] = scrollbarTrack
		}
		return glyphs
	}

	glyphs[0] = scrollbarBegin
	glyphs[trackHeight-1] = scrollbarEnd

	inner := trackHeight - 2
	thumbStart, thumbLen := scrollbarThumbSpan(inner, position, contentLength, viewportHeight)

	for i := 0; i < inner; i++ {
		if i >= thumbStart && i < thumbStart+thumbLen {
			glyphs[i+1] = scrollbarThumb
		} else {
			glyphs[i+1] = scrollbarTrack
		}
	}
	return glyphs
}

// scrollbarThumbSpan 计算滑块在轨道内的起点和长度
func scrollbarThumbSpan(inner, position, contentLength, viewportHeight int) (start, length int) {
	if inner <= 0 {
		return 0, 0
	}
	if contentLength <= 0 {
		return 0, inner
	}

	viewportHeight = max(0, viewportHeight)
	length = clampInt(inner*viewportHeight/(viewportHeight+contentLength), 1, inner)

	position = clampInt(position, 0, contentLength)
	start = (inner - length) * position / contentLength
	return start, length
}
