package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

// defaultTransitDays 到达日完全未知时按装货后 7 天画事件条
const defaultTransitDays = 7

// Event 单条到货事件，闭区间，Start/End 已裁剪到窗口内
type Event struct {
	Start     time.Time
	End       time.Time
	FullStart time.Time // 未裁剪区间与天数留给标签展示
	FullEnd   time.Time
	Days      int
	QtyTons   float64
	Carrier   string
	Warehouse string
	Container string
}

// BuildEvents 取指定品名的条目构造日历事件并裁剪到窗口
// 缺装货日的条目无法上历，裁剪后为空的事件直接丢弃
func BuildEvents(items []model.ShipmentItem, cat model.Category, windowStart time.Time, days int) []Event {
	start := model.DateOnly(windowStart)
	end := start.AddDate(0, 0, days-1)

	var events []Event
	for _, it := range items {
		if it.Category != cat || it.ShipDate.IsZero() {
			continue
		}
		fullStart := model.DateOnly(it.ShipDate)
		fullEnd, ok := it.EffectiveArrival()
		if !ok {
			fullEnd = fullStart.AddDate(0, 0, defaultTransitDays)
		}
		s := maxDate(fullStart, start)
		e := minDate(fullEnd, end)
		if s.After(e) {
			continue
		}
		events = append(events, Event{
			Start:     s,
			End:       e,
			FullStart: fullStart,
			FullEnd:   fullEnd,
			Days:      model.DaysBetween(fullStart, fullEnd) + 1,
			QtyTons:   it.QtyTons,
			Carrier:   it.Carrier,
			Warehouse: it.WarehouseCustomer,
			Container: it.ContainerNo,
		})
	}
	return events
}

// Layout 把事件排进逐月周网格，按周裁出跨列条形分段
func Layout(cat model.Category, windowStart time.Time, days int, events []Event, colors *CarrierColors, short bool) *model.ProductCalendar {
	start := model.DateOnly(windowStart)
	end := start.AddDate(0, 0, days-1)

	cal := &model.ProductCalendar{
		Category:    cat,
		WindowStart: start,
		WindowEnd:   end,
		Legend:      colors.Legend(),
	}
	for _, m := range MonthsInWindow(start, end) {
		grid := model.MonthGrid{Year: m.Year(), Month: m.Month()}
		for _, week := range MonthWeeks(m.Year(), m.Month()) {
			row := model.WeekRow{}
			for i, d := range week {
				row.Days[i] = model.DayCell{Date: d, InMonth: d.Month() == m.Month()}
			}
			for _, ev := range events {
				segStart := maxDate(ev.Start, week[0])
				segEnd := minDate(ev.End, week[6])
				if segStart.After(segEnd) {
					continue
				}
				row.Bars = append(row.Bars, model.BarSegment{
					Col:     WeekdayIndex(segStart),
					Span:    model.DaysBetween(segStart, segEnd) + 1,
					Label:   barLabel(ev, short),
					Color:   colors.ColorFor(ev.Carrier),
					Carrier: ev.Carrier,
					QtyTons: ev.QtyTons,
				})
			}
			grid.Weeks = append(grid.Weeks, row)
		}
		cal.Months = append(cal.Months, grid)
	}
	return cal
}

// barLabel 事件条文案，short 模式省略仓库与柜号
// 日期范围与天数始终取未裁剪区间，条被窗口截短也报真实海运时长
func barLabel(ev Event, short bool) string {
	qty := strconv.FormatFloat(ev.QtyTons, 'f', -1, 64)
	rng := fmt.Sprintf("%s ~ %s", ev.FullStart.Format("2006-01-02"), ev.FullEnd.Format("2006-01-02"))
	if short {
		return fmt.Sprintf("%st | %s | %s (%d days)", qty, ev.Carrier, rng, ev.Days)
	}
	return fmt.Sprintf("%st | %s/%s | ctn:%s | %s (%d days)", qty, ev.Carrier, ev.Warehouse, ev.Container, rng, ev.Days)
}

// CategoriesWithData 条目覆盖到的品名，按固定展示顺序
func CategoriesWithData(items []model.ShipmentItem) []model.Category {
	seen := make(map[model.Category]bool)
	for _, it := range items {
		seen[it.Category] = true
	}
	var cats []model.Category
	for _, c := range model.PreferredOrder {
		if seen[c] {
			cats = append(cats, c)
		}
	}
	return cats
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
