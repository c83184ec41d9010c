package main

import "time"

// 文件路径常量
const (
	configFile  = "cmd/conf/config.yml"
	logFileName = "cryptop.log"
)

// 界面节奏
const (
	frameInterval = 32 * time.Millisecond // 动画帧间隔，同时也是输入轮询间隔
)

// 布局常量
const (
	compactWidth  = 160 // 终端宽度不超过该值时使用紧凑边距
	tablePadding  = 4   // 表格左右留白（滚动条位于右侧留白中）
	columnSpacing = 3   // 列间距
	rankWidth     = 3   // 排名列宽度
	symbolWidth   = 8   // 代码列宽度
)

// 语言常量
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)
