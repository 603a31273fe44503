package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

var spaceRe = regexp.MustCompile(`\s+`)

// NormalizeColumnName 规范化列名：去除空白与换行，英文统一小写
func NormalizeColumnName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\n", "")
	name = strings.ReplaceAll(name, "\r", "")
	name = strings.ReplaceAll(name, "\t", "")
	name = spaceRe.ReplaceAllString(name, "")
	return strings.ToLower(name)
}

// ContainsAny 检查字符串是否包含任意一个关键词
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// MatchPattern 使用正则匹配
func MatchPattern(text, pattern string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// ParseQuantity 宽松解析数量：容忍千分位、百分号与吨位后缀，失败返回 0
func ParseQuantity(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "，", "")
	s = strings.ReplaceAll(s, "％", "")
	s = strings.ReplaceAll(s, "%", "")
	s = strings.TrimSuffix(s, "吨")
	s = strings.TrimSpace(s)
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// 月在前的短日期是 Excel 默认单元格格式的显示结果
var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"2006年1月2日",
	"2006-1-2 15:04:05",
	"2006/1/2 15:04:05",
	time.RFC3339,
	"1-2-06",
	"1/2/06",
	"1/2/2006",
	"02-Jan-06",
}

// ParseDate 宽松解析日期：依次尝试常见版式，再退回 Excel 序列号；
// 全部失败返回零值，由调用方按日期缺失降级处理。
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.DateOnly(t)
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 1000 && serial < 200000 {
		return excelSerialDate(serial)
	}
	return time.Time{}
}

// excelSerialDate Excel 序列号转日期，纪元 1899-12-30
func excelSerialDate(serial float64) time.Time {
	base := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	return model.DateOnly(base.AddDate(0, 0, int(serial)))
}
