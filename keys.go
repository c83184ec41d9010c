package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// 按键绑定
// ============================================================================

// keyMap 行情表的全部按键
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Refresh    key.Binding
	Quit       key.Binding
}

// newKeyMap 创建按键绑定，帮助文本使用当前语言
func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", getText("help.select"))),
		Down:       key.NewBinding(key.WithKeys("down")),
		ScrollUp:   key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑/↓", getText("help.scroll"))),
		ScrollDown: key.NewBinding(key.WithKeys("shift+down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", getText("help.page"))),
		PageDown:   key.NewBinding(key.WithKeys("pgdown")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", getText("help.refresh"))),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", getText("help.quit"))),
	}
}

// ShortHelp 帮助栏显示的按键（成对的按键只显示一次）
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.ScrollUp, k.PageUp, k.Refresh, k.Quit}
}

// FullHelp 完整帮助
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.ScrollUp, k.ScrollDown},
		{k.PageUp, k.PageDown},
		{k.Refresh, k.Quit},
	}
}

// handleKey 分发按键；未绑定的按键忽略
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		logInfo("log.app.exit")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.viewport.SelectUp()
	case key.Matches(msg, m.keys.Down):
		m.viewport.SelectDown()
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.ScrollLineUp()
	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.ScrollLineDown()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.startRefresh()
	}
	return m, nil
}
