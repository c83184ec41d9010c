package main

import (
	"fmt"
	"math"
	"strconv"
)

// ============================================================================
// 价格 / 市值 / 成交量格式化（K/M/B/T）
// ============================================================================

// significantDigits 小于等于 1 美元时保留的有效数字位数
const significantDigits = 5

// formatPrice 把金额格式化为带量级后缀的美元字符串
func formatPrice(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "$" + strconv.FormatFloat(value, 'f', -1, 64)
	}

	switch {
	case value > 1e12:
		return fmt.Sprintf("$%.2fT", value/1e12)
	case value > 1e9:
		return fmt.Sprintf("$%.2fB", value/1e9)
	case value > 1e6:
		return fmt.Sprintf("$%.2fM", value/1e6)
	case value > 1e5:
		return fmt.Sprintf("$%.2fK", value/1e3)
	case value > 1.0:
		return fmt.Sprintf("$%.2f", value)
	default:
		return "$" + formatSignificant(value, significantDigits)
	}
}

// formatSignificant 以定点小数形式输出 digits 位有效数字（不使用科学计数法）
func formatSignificant(value float64, digits int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	if value == 0 {
		return strconv.FormatFloat(0, 'f', digits-1, 64)
	}

	exponent := int(math.Floor(math.Log10(abs(value))))
	decimals := max(0, digits-1-exponent)

	// 四舍五入进位后（如 0.999996 -> 1.0000）量级会变大一位，按新量级重新计算小数位
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(value, 'f', decimals, 64), 64)
	if rounded != 0 && int(math.Floor(math.Log10(abs(rounded)))) > exponent {
		decimals = max(0, decimals-1)
	}

	return strconv.FormatFloat(value, 'f', decimals, 64)
}

// formatChange 格式化24小时涨跌幅
func formatChange(percent float64) string {
	return fmt.Sprintf("%.2f%%", percent)
}

// isChangePositive 涨跌幅为正时显示绿色，0 和负数显示红色
func isChangePositive(percent float64) bool {
	return percent > 0
}

// abs 返回浮点数的绝对值
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
