package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
)

// PriceRecord 单个币种的行情快照（来自API，刷新时整体替换）
type PriceRecord struct {
	Rank      int     `json:"rank"`       // 数据源给出的市值排名
	Name      string  `json:"name"`       // 名称，如 "Bitcoin"
	Symbol    string  `json:"symbol"`     // 代码，如 "BTC"
	Price     float64 `json:"price"`      // 美元价格
	Change    float64 `json:"change"`     // 24小时涨跌幅（%）
	MarketCap float64 `json:"market_cap"` // 市值（美元）
	Volume24h float64 `json:"volume_24h"` // 24小时成交额（美元）
}

// Config 系统配置结构
type Config struct {
	System  SystemConfig  `yaml:"system"`  // 系统设置
	API     APIConfig     `yaml:"api"`     // 行情接口设置
	Display DisplayConfig `yaml:"display"` // 显示设置
	Log     LogConfig     `yaml:"log"`     // 日志设置
}

// SystemConfig 系统设置
type SystemConfig struct {
	Language  string `yaml:"language"`   // 界面语言 "en" 或 "zh"
	DebugMode bool   `yaml:"debug_mode"` // 调试模式开关（输出DEBUG日志）
}

// APIConfig 行情接口设置
type APIConfig struct {
	URL            string `yaml:"url"`             // 资产列表接口地址
	Limit          int    `yaml:"limit"`           // 获取的币种数量
	TimeoutSeconds int    `yaml:"timeout_seconds"` // HTTP 超时（秒）
	APIKey         string `yaml:"api_key"`         // 可选的 Bearer token
}

// DisplayConfig 显示设置（颜色名称）
type DisplayConfig struct {
	BorderColor    string `yaml:"border_color"`    // 边框颜色
	HeaderColor    string `yaml:"header_color"`    // 表头颜色
	HighlightColor string `yaml:"highlight_color"` // 选中行背景色
	ScrollbarColor string `yaml:"scrollbar_color"` // 滚动条颜色
}

// LogConfig 日志设置
type LogConfig struct {
	Dir        string `yaml:"dir"`          // 日志目录
	Level      string `yaml:"level"`        // 最低日志级别 debug/info/warn/error
	MaxSizeMB  int    `yaml:"max_size_mb"`  // 单个日志文件大小上限
	MaxBackups int    `yaml:"max_backups"`  // 保留的旧日志数量
	MaxAgeDays int    `yaml:"max_age_days"` // 旧日志保留天数
}

// TextMap 文本映射结构（用于i18n）
type TextMap map[string]string

// Model 应用程序主模型
type Model struct {
	ctx    context.Context
	config Config
	source AssetSource

	// 行情数据
	records    []PriceRecord
	loading    bool      // 是否正在请求
	lastErr    error     // 最近一次刷新失败的原因
	lastUpdate time.Time // 最近一次成功刷新的时间

	// 视口与终端尺寸
	viewport Viewport
	width    int
	height   int

	// 界面组件
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	styles  Styles
}

// frameMsg 动画帧消息
type frameMsg struct{}

// assetsFetchedMsg 行情请求完成消息
type assetsFetchedMsg struct {
	Records []PriceRecord
	Err     error
	At      time.Time
	Took    time.Duration
}
