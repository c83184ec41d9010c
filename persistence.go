package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// Config 配置文件持久化
// ============================================================================

// 默认值
const (
	defaultAPIURL         = "https://api.coincap.io/v2/assets"
	defaultAPILimit       = 100
	maxAPILimit           = 2000
	defaultTimeoutSeconds = 10
	maxTimeoutSeconds     = 120
)

// getDefaultConfig 获取默认配置
func getDefaultConfig() Config {
	return Config{
		System: SystemConfig{
			Language:  "en",  // 默认英文
			DebugMode: false, // 调试模式关闭
		},
		API: APIConfig{
			URL:            defaultAPIURL,
			Limit:          defaultAPILimit,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Display: DisplayConfig{
			BorderColor:    "red",
			HeaderColor:    "yellow",
			HighlightColor: "darkgray",
			ScrollbarColor: "white",
		},
		Log: LogConfig{
			Dir:        "logs",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// loadConfig 加载配置文件
//
// 总会返回一份可用的配置。文件不存在时写入默认配置；格式错误时使用默认配置；
// 不合理的字段被重置为默认值。返回的 error 描述发生过的回退，调用方只需记录。
func loadConfig(path string) (Config, error) {
	config := getDefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		// 如果配置文件不存在，创建默认配置文件
		if err := saveConfig(path, config); err != nil {
			logWarn("log.config.saveFail", path, err)
		}
		overrideWithEnv(&config)
		return config, nil
	}
	if err != nil {
		overrideWithEnv(&config)
		return config, fmt.Errorf("read config: %w", err)
	}

	// 先填默认值再解析，文件里缺失的字段保留默认值
	if err := yaml.Unmarshal(data, &config); err != nil {
		config = getDefaultConfig()
		overrideWithEnv(&config)
		return config, fmt.Errorf("parse config, using defaults: %w", err)
	}

	validateErr := config.validate()
	overrideWithEnv(&config)
	return config, validateErr
}

// saveConfig 保存配置文件
func saveConfig(path string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// validate 验证配置的合理性，把不合理的字段重置为默认值
func (c *Config) validate() error {
	defaults := getDefaultConfig()
	var errs []error

	reset := func(field string, bad, good any) {
		errs = append(errs, fmt.Errorf("invalid %s %v, reset to %v", field, bad, good))
	}

	if c.System.Language == "" {
		c.System.Language = defaults.System.Language
	}

	if !strings.HasPrefix(c.API.URL, "http://") && !strings.HasPrefix(c.API.URL, "https://") {
		reset("api.url", c.API.URL, defaults.API.URL)
		c.API.URL = defaults.API.URL
	}
	if c.API.Limit <= 0 || c.API.Limit > maxAPILimit {
		reset("api.limit", c.API.Limit, defaults.API.Limit)
		c.API.Limit = defaults.API.Limit
	}
	if c.API.TimeoutSeconds <= 0 || c.API.TimeoutSeconds > maxTimeoutSeconds {
		reset("api.timeout_seconds", c.API.TimeoutSeconds, defaults.API.TimeoutSeconds)
		c.API.TimeoutSeconds = defaults.API.TimeoutSeconds
	}

	// 颜色名称不合法时静默回退，显示效果不影响使用
	colors := NewColorUtils()
	c.Display.BorderColor = colors.GetColorFromConfigOrDefault(c.Display.BorderColor, defaults.Display.BorderColor)
	c.Display.HeaderColor = colors.GetColorFromConfigOrDefault(c.Display.HeaderColor, defaults.Display.HeaderColor)
	c.Display.HighlightColor = colors.GetColorFromConfigOrDefault(c.Display.HighlightColor, defaults.Display.HighlightColor)
	c.Display.ScrollbarColor = colors.GetColorFromConfigOrDefault(c.Display.ScrollbarColor, defaults.Display.ScrollbarColor)

	if c.Log.Dir == "" {
		c.Log.Dir = defaults.Log.Dir
	}
	if c.Log.MaxSizeMB <= 0 {
		reset("log.max_size_mb", c.Log.MaxSizeMB, defaults.Log.MaxSizeMB)
		c.Log.MaxSizeMB = defaults.Log.MaxSizeMB
	}
	if c.Log.MaxBackups < 0 {
		reset("log.max_backups", c.Log.MaxBackups, defaults.Log.MaxBackups)
		c.Log.MaxBackups = defaults.Log.MaxBackups
	}
	if c.Log.MaxAgeDays < 0 {
		reset("log.max_age_days", c.Log.MaxAgeDays, defaults.Log.MaxAgeDays)
		c.Log.MaxAgeDays = defaults.Log.MaxAgeDays
	}

	return errors.Join(errs...)
}

// overrideWithEnv 环境变量存在时覆盖配置值（不会写回文件）
func overrideWithEnv(c *Config) {
	if url := os.Getenv("CRYPTOP_API_URL"); url != "" {
		c.API.URL = url
	}
	if key := os.Getenv("CRYPTOP_API_KEY"); key != "" {
		c.API.APIKey = key
	}
}
