package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ============================================================================
// 日志级别定义
// ============================================================================

// LogLevel 日志级别
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

// parseLogLevel 把配置中的级别名称转换为 LogLevel，未知名称按 INFO 处理
func parseLogLevel(name string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LogDebug
	case "warn", "warning":
		return LogWarn
	case "error":
		return LogError
	default:
		return LogInfo
	}
}

// ============================================================================
// Logger 结构
// ============================================================================

// Logger 封装 zap logger，底层写入按大小轮转的日志文件
//
// 终端界面占用了 stdout，所以日志只写文件。
type Logger struct {
	mu   sync.Mutex         // 保护 zap 实例的并发访问
	zap  *zap.Logger        // zap logger 实例
	sink *lumberjack.Logger // 轮转文件
}

var globalLogger *Logger

// ============================================================================
// 初始化
// ============================================================================

// InitLogger 初始化全局日志系统
func InitLogger(cfg LogConfig, level LogLevel) error {
	logger, err := newLogger(cfg, level)
	if err != nil {
		return err
	}
	globalLogger = logger
	return nil
}

// newLogger 创建写入 cfg.Dir/cryptop.log 的 Logger
func newLogger(cfg LogConfig, level LogLevel) (*Logger, error) {
	// 确保日志目录存在
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, logFileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}

	// 配置编码器（自定义格式）
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:    "time",
		LevelKey:   "level",
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
		// 自定义编码器：[2006-01-02 15:04:05][DEBUG]
		EncodeLevel: bracketLevelEncoder,
		EncodeTime:  bracketTimeEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(sink),
		levelToZapLevel(level),
	)

	return &Logger{
		zap:  zap.New(core),
		sink: sink,
	}, nil
}

// ============================================================================
// 编码器
// ============================================================================

// bracketTimeEncoder 自定义时间编码器: [2006-01-02 15:04:05]
func bracketTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("2006-01-02 15:04:05") + "]")
}

// bracketLevelEncoder 自定义级别编码器: [DEBUG]
func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// levelToZapLevel 将自定义 LogLevel 转换为 zapcore.Level
func levelToZapLevel(l LogLevel) zapcore.Level {
	switch l {
	case LogDebug:
		return zapcore.DebugLevel
	case LogInfo:
		return zapcore.InfoLevel
	case LogWarn:
		return zapcore.WarnLevel
	case LogError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ============================================================================
// 日志接口
// ============================================================================

// Log 写入一条日志，格式为 [pathKey][message]，pathKey 为空时只有 [message]
func (l *Logger) Log(level LogLevel, pathKey string, message string) {
	formatted := "[" + message + "]"
	if pathKey != "" {
		formatted = "[" + pathKey + "]" + formatted
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if ce := l.zap.Check(levelToZapLevel(level), formatted); ce != nil {
		ce.Write()
	}
}

// Close 刷新缓冲区并关闭日志文件（应用退出时调用）
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_ = l.zap.Sync()
	return l.sink.Close()
}
