package main

// ============================================================================
// 画面组装（纯数据，不含样式）
// ============================================================================

// FrameRow 可见范围内的一行
type FrameRow struct {
	Index    int      // 在数据集中的下标
	Selected bool     // 是否为选中行
	Positive bool     // 涨跌幅是否为正（决定红绿）
	Cells    []string // 已对齐到列宽的单元格
}

// Frame 一帧画面所需的全部数据
type Frame struct {
	Header []string   // 已对齐的表头
	Rows   []FrameRow // 可见行，最多 viewport 高度行

	// 滚动条参数，原样取自视口
	ScrollbarPosition      int
	ScrollbarContentLength int
	ViewportHeight         int
}

// composeFrame 根据视口状态截取 [offset, offset+height) 范围的记录并排版
//
// 排名显示为数据集下标+1，与接口返回的 rank 字段无关。
func composeFrame(records []PriceRecord, vp *Viewport, tableWidth int) Frame {
	widths := columnWidths(tableWidth)

	frame := Frame{
		Header:                 alignCells(generateHeader(), widths),
		ScrollbarPosition:      vp.ScrollbarPosition(),
		ScrollbarContentLength: vp.ScrollbarContentLength(),
		ViewportHeight:         vp.Height(),
	}

	start := min(vp.Offset(), len(records))
	end := min(len(records), start+vp.Height())

	for i := start; i < end; i++ {
		record := records[i]
		frame.Rows = append(frame.Rows, FrameRow{
			Index:    i,
			Selected: i == vp.Selected(),
			Positive: isChangePositive(record.Change),
			Cells:    alignCells(generateRow(i+1, record), widths),
		})
	}

	return frame
}

// alignCells 按列元数据截断并对齐
func alignCells(cells []string, widths []int) []string {
	aligned := make([]string, len(cells))
	for i, cell := range cells {
		aligned[i] = fitCell(cell, widths[i], tableColumns[i].Align)
	}
	return aligned
}
