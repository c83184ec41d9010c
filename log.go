package main

import "fmt"

// ============================================================================
// 日志函数 - 四个级别
// ============================================================================

// logDebug DEBUG 级别日志 - 详细调试信息
// key: i18n 键名（如 "log.api.request"）
// args: 格式化参数（替换 i18n 文本中的 %s, %d 等占位符）
func logDebug(key string, args ...any) {
	logWithKey(LogDebug, key, args...)
}

// logInfo INFO 级别日志 - 正常运行信息
func logInfo(key string, args ...any) {
	logWithKey(LogInfo, key, args...)
}

// logWarn WARN 级别日志 - 可能的问题
func logWarn(key string, args ...any) {
	logWithKey(LogWarn, key, args...)
}

// logError ERROR 级别日志 - 需要关注的错误
func logError(key string, args ...any) {
	logWithKey(LogError, key, args...)
}

// logWithKey 取出 i18n 文本作为格式串，写入全局 logger；未初始化时丢弃
func logWithKey(level LogLevel, key string, args ...any) {
	if globalLogger == nil {
		return
	}

	text := getText(key)
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}

	globalLogger.Log(level, key, text)
}
