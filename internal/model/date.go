package model

import "time"

// DateOnly 取日历日：统一落到 UTC 零点，保证不同来源的日期可直接比较
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween 两个日历日之间的天数，to 早于 from 时为负
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}
