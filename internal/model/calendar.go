package model

import "time"

// DayCell 月历格子，InMonth 为 false 表示补齐整周的邻月日期
type DayCell struct {
	Date    time.Time `json:"date"`
	InMonth bool      `json:"inMonth"`
}

// BarSegment 事件条在某一周内的分段
// Col 为分段起点的星期下标（周一为 0），Span 为本周内覆盖的天数
type BarSegment struct {
	Col     int     `json:"col"`
	Span    int     `json:"span"`
	Label   string  `json:"label"`
	Detail  string  `json:"detail,omitempty"`
	Color   string  `json:"color"`
	Carrier string  `json:"carrier"`
	QtyTons float64 `json:"qtyTons"`
}

// WeekRow 月历中的一周：七个格子加本周内的事件分段
type WeekRow struct {
	Days [7]DayCell   `json:"days"`
	Bars []BarSegment `json:"bars"`
}

// MonthGrid 单月网格，周一开头，首尾用邻月日期补齐整周
type MonthGrid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Weeks []WeekRow  `json:"weeks"`
}

// LegendEntry 图例项：船公司与其固定配色
type LegendEntry struct {
	Carrier string `json:"carrier"`
	Color   string `json:"color"`
}

// ProductCalendar 单品名的到货日历
type ProductCalendar struct {
	Category    Category      `json:"category"`
	WindowStart time.Time     `json:"windowStart"`
	WindowEnd   time.Time     `json:"windowEnd"`
	Months      []MonthGrid   `json:"months"`
	Legend      []LegendEntry `json:"legend"`
}
