package calendar

import "time"

// WeekdayIndex 周一为 0 的星期下标
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// MonthWeeks 某月的周网格：每周从周一开始，首尾以邻月日期补齐整周
func MonthWeeks(year int, month time.Month) [][7]time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	cur := first.AddDate(0, 0, -WeekdayIndex(first))

	var weeks [][7]time.Time
	for !cur.After(last) {
		var week [7]time.Time
		for i := range week {
			week[i] = cur
			cur = cur.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// MonthsInWindow 窗口触及的月份，每项为当月一号，按时间顺序
func MonthsInWindow(start, end time.Time) []time.Time {
	cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	stop := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)

	var months []time.Time
	for !cur.After(stop) {
		months = append(months, cur)
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}
