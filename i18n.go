package main

import (
	"embed"
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed i18n/*.json
var i18nFS embed.FS

// texts i18n 配置 - 存储各语言的文本映射
var texts map[Language]TextMap

// currentLanguage 当前界面语言
var currentLanguage = English

// supportedLanguages 与 languageTags 一一对应
var (
	supportedLanguages = []Language{English, Chinese}
	languageTags       = []language.Tag{language.English, language.Chinese}
	languageMatcher    = language.NewMatcher(languageTags)
)

// loadI18nFiles 加载内嵌的 i18n 文件
func loadI18nFiles() error {
	loaded := make(map[Language]TextMap, len(supportedLanguages))

	for _, lang := range supportedLanguages {
		path := fmt.Sprintf("i18n/%s.json", lang)
		data, err := i18nFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		var langTexts TextMap
		if err := json.Unmarshal(data, &langTexts); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		loaded[lang] = langTexts
	}

	texts = loaded
	return nil
}

// resolveLanguage 把配置里的语言标签（"zh-CN"、"en_US"、"chinese" 等）匹配到支持的语言
func resolveLanguage(setting string) Language {
	if setting == "chinese" || setting == "中文" {
		return Chinese
	}
	_, index := language.MatchStrings(languageMatcher, setting)
	return supportedLanguages[index]
}

// setLanguage 切换界面语言
func setLanguage(lang Language) {
	currentLanguage = lang
}

// languageTag 当前语言对应的 language.Tag
func languageTag() language.Tag {
	for i, lang := range supportedLanguages {
		if lang == currentLanguage {
			return languageTags[i]
		}
	}
	return language.English
}

// newPrinter 按当前语言格式化数字（千分位等）
func newPrinter() *message.Printer {
	return message.NewPrinter(languageTag())
}

// getText 获取本地化文本
func getText(key string) string {
	if text, exists := texts[currentLanguage][key]; exists {
		return text
	}
	// 如果找不到文本，返回英文版本作为备用
	if text, exists := texts[English][key]; exists {
		return text
	}
	return key // 最后备用返回key本身
}
