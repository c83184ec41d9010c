package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

// ============================================================================
// 布局
// ============================================================================

// layout 终端尺寸推导出的各区域大小
//
// 边框内自上而下：空行、表头、空行、数据行、状态栏。
// 滚动条从表头所在行开始，长度为可见行数+2，位于右侧留白中。
type layout struct {
	marginV, marginH int // 边框外的边距
	outerW, outerH   int // 含边框
	innerW, innerH   int // 边框内
	padLeft          int // 表格左侧留白
	tableW           int // 表格宽度
	padRight         int // 表格右侧留白（含滚动条）
	viewportH        int // 可见数据行数
}

// computeLayout 根据终端尺寸计算布局
func computeLayout(width, height int) layout {
	l := layout{marginV: 0, marginH: 1}
	if width > compactWidth {
		l.marginV, l.marginH = 3, 9
	}

	l.outerW = max(0, width-2*l.marginH)
	l.outerH = max(0, height-2*l.marginV)
	l.innerW = max(0, l.outerW-2)
	l.innerH = max(0, l.outerH-2)

	l.padLeft = min(tablePadding, l.innerW)
	l.tableW = max(0, l.innerW-2*tablePadding)
	l.padRight = l.innerW - l.padLeft - l.tableW

	// 表格区域（表头+空行+数据行）为 innerH-2，数据行再减去表头和空行
	l.viewportH = max(0, l.innerH-4)
	return l
}

// ============================================================================
// 渲染
// ============================================================================

// View 渲染整个界面
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	l := computeLayout(m.width, m.height)
	frame := composeFrame(m.records, &m.viewport, l.tableW)

	lines := m.renderBox(l, m.renderContent(l, frame))

	margin := strings.Repeat(" ", l.marginH)
	out := make([]string, 0, m.height)
	for i := 0; i < l.marginV; i++ {
		out = append(out, "")
	}
	for _, line := range lines {
		out = append(out, margin+line)
	}
	for len(out) < m.height {
		out = append(out, "")
	}
	return strings.Join(out[:m.height], "\n")
}

// renderContent 生成边框内的每一行，每行宽度恰好为 innerW
func (m *Model) renderContent(l layout, frame Frame) []string {
	lines := make([]string, l.innerH)
	scrollbar := renderScrollbar(frame.ViewportHeight+2, frame.ScrollbarPosition,
		frame.ScrollbarContentLength, frame.ViewportHeight)
	left := strings.Repeat(" ", l.padLeft)

	for i := range lines {
		if i == l.innerH-1 {
			lines[i] = left + fitLine(m.statusLine(), l.innerW-l.padLeft)
			continue
		}

		var table string
		switch {
		case i == 1:
			table = m.styles.Header.Render(strings.Join(frame.Header, strings.Repeat(" ", columnSpacing)))
		case i >= 3 && i-3 < len(frame.Rows):
			table = m.renderRow(frame.Rows[i-3], l.tableW)
		}

		lines[i] = left + fitLine(table, l.tableW) + m.renderRightPad(l.padRight, scrollbar, i-1)
	}
	return lines
}

// renderRow 渲染一行数据；选中行整行高亮，涨跌幅列按正负着色
func (m *Model) renderRow(row FrameRow, width int) string {
	base := lipgloss.NewStyle()
	if row.Selected {
		base = m.styles.Highlight
	}

	var b strings.Builder
	gap := base.Render(strings.Repeat(" ", columnSpacing))
	for i, cell := range row.Cells {
		if i > 0 {
			b.WriteString(gap)
		}

		style := base
		if tableColumns[i].ID == ColChange {
			if row.Positive {
				style = m.styles.Up.Inherit(base)
			} else {
				style = m.styles.Down.Inherit(base)
			}
		}
		b.WriteString(style.Render(cell))
	}

	line := ansi.Truncate(b.String(), width, "")
	if fill := width - ansi.StringWidth(line); fill > 0 {
		line += base.Render(strings.Repeat(" ", fill))
	}
	return line
}

// renderRightPad 右侧留白，滚动条字符放在倒数第三列
func (m *Model) renderRightPad(width int, scrollbar []string, index int) string {
	if width <= 0 {
		return ""
	}
	if width < 3 || index < 0 || index >= len(scrollbar) {
		return strings.Repeat(" ", width)
	}
	col := width - 3
	return strings.Repeat(" ", col) + m.styles.Scrollbar.Render(scrollbar[index]) + strings.Repeat(" ", width-col-1)
}

// renderBox 给内容加上圆角边框，标题居中嵌在上边框中
func (m *Model) renderBox(l layout, content []string) []string {
	if l.outerW < 2 || l.outerH < 2 {
		return nil
	}

	border := lipgloss.RoundedBorder()
	paint := m.styles.Border.Render

	title := getText("app.title")
	titleW := ansi.StringWidth(title)
	var top string
	if titleW+2 <= l.innerW {
		before := (l.innerW - titleW) / 2
		after := l.innerW - titleW - before
		top = paint(border.TopLeft+strings.Repeat(border.Top, before)) +
			m.styles.Title.Render(title) +
			paint(strings.Repeat(border.Top, after)+border.TopRight)
	} else {
		top = paint(border.TopLeft + strings.Repeat(border.Top, l.innerW) + border.TopRight)
	}

	lines := make([]string, 0, l.outerH)
	lines = append(lines, top)
	for _, line := range content {
		lines = append(lines, paint(border.Left)+line+paint(border.Right))
	}
	lines = append(lines, paint(border.BottomLeft+strings.Repeat(border.Bottom, l.innerW)+border.BottomRight))
	return lines
}

// statusLine 状态栏：加载状态 / 错误 / 最后更新时间，后接按键帮助
func (m *Model) statusLine() string {
	var status string
	switch {
	case m.loading:
		status = m.spinner.View() + " " + getText("status.loading")
	case m.lastErr != nil:
		msg := strings.ReplaceAll(m.lastErr.Error(), "\n", " ")
		status = m.styles.Error.Render(fmt.Sprintf(getText("status.refreshFailed"), msg))
	case m.lastUpdate.IsZero():
		status = getText("status.empty")
	default:
		status = m.styles.Status.Render(
			fmt.Sprintf(getText("status.updated"), m.lastUpdate.Format("15:04:05"), humanize.Time(m.lastUpdate)) +
				" · " + newPrinter().Sprintf(getText("status.assets"), len(m.records)))
	}

	return status + "   " + m.help.View(m.keys)
}

// fitLine 按显示宽度截断或补齐（保留 ANSI 样式）
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if fill := width - ansi.StringWidth(s); fill > 0 {
		s += strings.Repeat(" ", fill)
	}
	return s
}
