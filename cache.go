package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// 行情快照刷新
// ============================================================================

// fetchAssetsCmd 在 bubbletea 的 goroutine 中请求行情，结果以消息形式返回
func fetchAssetsCmd(ctx context.Context, source AssetSource) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		records, err := source.FetchTopAssets(ctx)
		return assetsFetchedMsg{
			Records: records,
			Err:     err,
			At:      time.Now(),
			Took:    time.Since(start),
		}
	}
}

// startRefresh 发起一次刷新；上一次请求未完成时忽略
func (m *Model) startRefresh() tea.Cmd {
	if m.loading {
		logDebug("log.refresh.ignored")
		return nil
	}

	m.loading = true
	return tea.Batch(m.spinner.Tick, fetchAssetsCmd(m.ctx, m.source))
}

// applyFetchResult 处理刷新结果
//
// 成功时整体替换数据并重新钳制视口；失败时保留上一次成功的数据，只更新状态栏。
func (m *Model) applyFetchResult(msg assetsFetchedMsg) {
	m.loading = false

	if msg.Err != nil {
		m.lastErr = msg.Err
		logWarn("log.api.fail", msg.Err)
		return
	}

	m.records = msg.Records
	m.viewport.SetDataset(len(m.records))
	m.lastErr = nil
	m.lastUpdate = msg.At
	logInfo("log.api.success", len(msg.Records), msg.Took.Round(time.Millisecond))
}
