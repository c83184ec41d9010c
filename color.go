package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorUtils 颜色工具类
type ColorUtils struct{}

// NewColorUtils 创建颜色工具实例
func NewColorUtils() *ColorUtils {
	return &ColorUtils{}
}

// GetSupportedColors 获取配置文件可用的颜色名称（ANSI 16色）
func (c *ColorUtils) GetSupportedColors() map[string]lipgloss.Color {
	return map[string]lipgloss.Color{
		"black":    lipgloss.Color("0"),
		"red":      lipgloss.Color("1"),
		"green":    lipgloss.Color("2"),
		"yellow":   lipgloss.Color("3"),
		"blue":     lipgloss.Color("4"),
		"magenta":  lipgloss.Color("5"),
		"cyan":     lipgloss.Color("6"),
		"gray":     lipgloss.Color("7"),
		"darkgray": lipgloss.Color("8"),
		"white":    lipgloss.Color("15"),
	}
}

// ColorFor 按名称取颜色，未知名称使用 fallback
func (c *ColorUtils) ColorFor(name, fallback string) lipgloss.Color {
	colors := c.GetSupportedColors()
	if color, exists := colors[strings.ToLower(name)]; exists {
		return color
	}
	return colors[fallback]
}

// GetColorFromConfigOrDefault 从配置获取颜色，如果无效则使用默认颜色
func (c *ColorUtils) GetColorFromConfigOrDefault(configColor, defaultColor string) string {
	if configColor == "" {
		return defaultColor
	}

	colors := c.GetSupportedColors()
	if _, exists := colors[strings.ToLower(configColor)]; exists {
		return strings.ToLower(configColor)
	}

	return defaultColor
}

// ============================================================================
// 界面样式
// ============================================================================

// Styles 界面各部分的 lipgloss 样式
type Styles struct {
	Border    lipgloss.Style
	Title     lipgloss.Style
	Header    lipgloss.Style
	Highlight lipgloss.Style
	Up        lipgloss.Style
	Down      lipgloss.Style
	Scrollbar lipgloss.Style
	Error     lipgloss.Style
	Status    lipgloss.Style
}

// newStyles 根据显示配置创建样式
func newStyles(cfg DisplayConfig) Styles {
	colors := NewColorUtils()
	border := colors.ColorFor(cfg.BorderColor, "red")

	return Styles{
		Border:    lipgloss.NewStyle().Foreground(border),
		Title:     lipgloss.NewStyle().Foreground(border).Bold(true),
		Header:    lipgloss.NewStyle().Foreground(colors.ColorFor(cfg.HeaderColor, "yellow")).Bold(true),
		Highlight: lipgloss.NewStyle().Foreground(colors.ColorFor("black", "black")).Background(colors.ColorFor(cfg.HighlightColor, "darkgray")),
		Up:        lipgloss.NewStyle().Foreground(colors.ColorFor("green", "green")),
		Down:      lipgloss.NewStyle().Foreground(colors.ColorFor("red", "red")),
		Scrollbar: lipgloss.NewStyle().Foreground(colors.ColorFor(cfg.ScrollbarColor, "white")),
		Error:     lipgloss.NewStyle().Foreground(colors.ColorFor("red", "red")),
		Status:    lipgloss.NewStyle().Faint(true),
	}
}
