package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
)

// ColumnID - 列的唯一标识符
type ColumnID string

// 行情表列ID常量
const (
	ColRank      ColumnID = "rank"
	ColSymbol    ColumnID = "symbol"
	ColName      ColumnID = "name"
	ColPrice     ColumnID = "price"
	ColChange    ColumnID = "change"
	ColMarketCap ColumnID = "market_cap"
	ColVolume    ColumnID = "volume"
)

// ColumnMetadata - 列的元数据
type ColumnMetadata struct {
	ID      ColumnID   // 列ID
	I18nKey string     // 国际化翻译键
	Align   text.Align // 对齐方式
	Width   int        // 固定宽度，0 表示平分剩余宽度
}

// tableColumns 行情表的列（顺序即显示顺序）
var tableColumns = []ColumnMetadata{
	{ID: ColRank, I18nKey: "col.rank", Align: text.AlignRight, Width: rankWidth},
	{ID: ColSymbol, I18nKey: "col.symbol", Align: text.AlignLeft, Width: symbolWidth},
	{ID: ColName, I18nKey: "col.name", Align: text.AlignLeft},
	{ID: ColPrice, I18nKey: "col.price", Align: text.AlignRight},
	{ID: ColChange, I18nKey: "col.change", Align: text.AlignRight},
	{ID: ColMarketCap, I18nKey: "col.market_cap", Align: text.AlignRight},
	{ID: ColVolume, I18nKey: "col.volume", Align: text.AlignRight},
}

// columnWidths 按表格宽度计算每列宽度
//
// 固定列使用自身宽度，其余列平分剩余宽度，再扣掉平摊到每列的列间距。
// 结果不会是负数，总宽度（含列间距）不超过 tableWidth。
func columnWidths(tableWidth int) []int {
	fixed, flexible := 0, 0
	for _, col := range tableColumns {
		if col.Width > 0 {
			fixed += col.Width
		} else {
			flexible++
		}
	}

	flexWidth := 0
	if flexible > 0 {
		spacing := len(tableColumns) * columnSpacing / flexible
		flexWidth = max(0, max(0, tableWidth-fixed)/flexible-spacing)
	}

	widths := make([]int, len(tableColumns))
	for i, col := range tableColumns {
		if col.Width > 0 {
			widths[i] = col.Width
		} else {
			widths[i] = flexWidth
		}
	}
	return widths
}

// generateHeader 生成表头文本
func generateHeader() []string {
	header := make([]string, len(tableColumns))
	for i, col := range tableColumns {
		header[i] = getText(col.I18nKey)
	}
	return header
}

// generateRow 生成一行的单元格文本（未对齐）
func generateRow(rank int, record PriceRecord) []string {
	row := make([]string, len(tableColumns))
	for i, col := range tableColumns {
		switch col.ID {
		case ColRank:
			row[i] = strconv.Itoa(rank)
		case ColSymbol:
			row[i] = record.Symbol
		case ColName:
			row[i] = record.Name
		case ColPrice:
			row[i] = formatPrice(record.Price)
		case ColChange:
			row[i] = formatChange(record.Change)
		case ColMarketCap:
			row[i] = formatPrice(record.MarketCap)
		case ColVolume:
			row[i] = formatPrice(record.Volume24h)
		}
	}
	return row
}

// fitCell 截断并对齐到指定宽度（按显示宽度计算，支持中文）
func fitCell(content string, width int, align text.Align) string {
	if width <= 0 {
		return ""
	}
	return align.Apply(text.Trim(content, width), width)
}
