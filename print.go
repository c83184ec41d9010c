package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ============================================================================
// 一次性快照输出（-print）
// ============================================================================

// runPrint 获取一次行情并以表格输出，返回退出码
func runPrint(ctx context.Context, source AssetSource, stdout, stderr io.Writer) int {
	records, err := source.FetchTopAssets(ctx)
	if err != nil {
		logError("log.print.fail", err)
		fmt.Fprintf(stderr, getText("print.fetchFailed"), err)
		return 1
	}

	renderSnapshotTable(stdout, records)
	return 0
}

// renderSnapshotTable 用 go-pretty 输出行情表，末尾附市值和成交额合计
func renderSnapshotTable(w io.Writer, records []PriceRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(tableColumns))
	configs := make([]table.ColumnConfig, len(tableColumns))
	for i, col := range tableColumns {
		header[i] = getText(col.I18nKey)
		configs[i] = table.ColumnConfig{Number: i + 1, Align: col.Align, AlignHeader: col.Align, AlignFooter: col.Align}
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	var totalCap, totalVolume float64
	for i, record := range records {
		changeColor := text.FgRed
		if isChangePositive(record.Change) {
			changeColor = text.FgGreen
		}

		row := make(table.Row, len(tableColumns))
		for j, cell := range generateRow(i+1, record) {
			if tableColumns[j].ID == ColChange {
				row[j] = changeColor.Sprint(cell)
			} else {
				row[j] = cell
			}
		}
		t.AppendRow(row)

		totalCap += record.MarketCap
		totalVolume += record.Volume24h
	}

	footer := make(table.Row, len(tableColumns))
	for i, col := range tableColumns {
		switch col.ID {
		case ColSymbol:
			footer[i] = getText("print.total")
		case ColName:
			footer[i] = strconv.Itoa(len(records))
		case ColMarketCap:
			footer[i] = formatPrice(totalCap)
		case ColVolume:
			footer[i] = formatPrice(totalVolume)
		default:
			footer[i] = ""
		}
	}
	t.AppendFooter(footer)

	t.Render()
}
