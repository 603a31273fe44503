package inventory

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
	"github.com/kakujikakuji/jm-warehouse-app/internal/service/product"
)

// Aggregator 库存与在途汇总计算器，纯函数式，不保留任何中间状态
type Aggregator struct {
	NoteLimit int // 备注拼接后的最大字符数
}

// NewAggregator 创建汇总计算器，备注上限默认 200 字
func NewAggregator() *Aggregator {
	return &Aggregator{NoteLimit: 200}
}

// FilterTracking 只保留收货地址或仓库/客户包含关键词的跟踪行，关键词为空不过滤
func FilterTracking(recs []model.TrackingRecord, keyword string) []model.TrackingRecord {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return recs
	}
	out := make([]model.TrackingRecord, 0, len(recs))
	for _, r := range recs {
		if strings.Contains(r.ReceiveAddress, keyword) || strings.Contains(r.WarehouseCustomer, keyword) {
			out = append(out, r)
		}
	}
	return out
}

// stockSum 单品名的库存累计
type stockSum struct {
	actual   float64
	recorded float64
	notes    []string
}

// Aggregate 合并库存与在途条目，产出汇总表
// 行集合为规范库存品名与在途品名的并集，数值缺口补 0，文本缺口补空串
func (a *Aggregator) Aggregate(stock []model.StockRecord, items []model.ShipmentItem, today, cutoff time.Time) *model.SummaryTable {
	today = model.DateOnly(today)
	cutoff = model.DateOnly(cutoff)

	// 库存侧：归一后只保留规范品名，按品名累计
	stockAgg := make(map[model.Category]*stockSum)
	for _, rec := range stock {
		cat := product.CanonicalizeStock(rec.CategoryText)
		if !cat.IsCanonical() {
			continue
		}
		s := stockAgg[cat]
		if s == nil {
			s = &stockSum{}
			stockAgg[cat] = s
		}
		s.actual += rec.ActualQty
		s.recorded += rec.RecordedQty
		if note := strings.TrimSpace(rec.Note); note != "" {
			s.notes = append(s.notes, note)
		}
	}

	// 在途侧：装货标签分桶、在途合计、截止日到货
	labelCols := make(map[string]model.LabelColumn)
	buckets := make(map[model.Category]map[string]float64)
	transit := make(map[model.Category]float64)
	arrive := make(map[model.Category]float64)
	universe := make(map[model.Category]bool)

	for _, it := range items {
		if !it.InTransit(today) {
			continue
		}
		universe[it.Category] = true
		transit[it.Category] += it.QtyTons
		if it.ArrivesBy(cutoff) {
			arrive[it.Category] += it.QtyTons
		}
		label, col, ok := transitLabel(it)
		if !ok {
			continue
		}
		labelCols[label] = col
		b := buckets[it.Category]
		if b == nil {
			b = make(map[string]float64)
			buckets[it.Category] = b
		}
		b[label] += it.QtyTons
	}
	for cat := range stockAgg {
		universe[cat] = true
	}

	// 标签列按装货日升序，同日按海运天数
	cols := make([]model.LabelColumn, 0, len(labelCols))
	for _, c := range labelCols {
		cols = append(cols, c)
	}
	sort.Slice(cols, func(i, j int) bool {
		if !cols[i].ShipDate.Equal(cols[j].ShipDate) {
			return cols[i].ShipDate.Before(cols[j].ShipDate)
		}
		if cols[i].TransitDays != cols[j].TransitDays {
			return cols[i].TransitDays < cols[j].TransitDays
		}
		return cols[i].Label < cols[j].Label
	})

	// 行按固定品名顺序
	cats := make([]model.Category, 0, len(universe))
	for cat := range universe {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].OrderIndex() != cats[j].OrderIndex() {
			return cats[i].OrderIndex() < cats[j].OrderIndex()
		}
		return cats[i] < cats[j]
	})

	table := &model.SummaryTable{
		Today:        today,
		Cutoff:       cutoff,
		LabelColumns: cols,
		Rows:         make([]model.SummaryRow, 0, len(cats)),
	}
	for _, cat := range cats {
		row := model.SummaryRow{Category: cat}
		if s := stockAgg[cat]; s != nil {
			row.ActualStock = s.actual
			row.RecordedStock = s.recorded
			row.Note = joinNotes(s.notes, a.NoteLimit)
		}
		row.InTransitTotal = transit[cat]
		row.ArriveByCutoff = arrive[cat]
		row.ProjectedStock = row.ActualStock + row.ArriveByCutoff
		if b := buckets[cat]; b != nil {
			for _, col := range cols {
				if qty, ok := b[col.Label]; ok {
					row.Labels = append(row.Labels, model.LabelCell{Label: col.Label, QtyTons: qty})
				}
			}
		}
		table.Rows = append(table.Rows, row)

		table.Totals.ActualStock += row.ActualStock
		table.Totals.InTransitTotal += row.InTransitTotal
		table.Totals.ArriveByCutoff += row.ArriveByCutoff
		table.Totals.ProjectedStock += row.ProjectedStock
		table.Totals.RecordedStock += row.RecordedStock
	}
	return table
}

// transitLabel 生成“loaded 装货日 (N days transit)”标签
// 需要装货日与到港日同时已知，到港缺失时用到仓日替代，仍缺则不产生标签
func transitLabel(it model.ShipmentItem) (string, model.LabelColumn, bool) {
	if it.ShipDate.IsZero() {
		return "", model.LabelColumn{}, false
	}
	eta := it.ETAPort
	if eta.IsZero() {
		eta = it.ETADest
	}
	if eta.IsZero() {
		return "", model.LabelColumn{}, false
	}
	ship := model.DateOnly(it.ShipDate)
	days := model.DaysBetween(ship, eta)
	label := fmt.Sprintf("loaded %s (%d days transit)", ship.Format("2006-01-02"), days)
	return label, model.LabelColumn{Label: label, ShipDate: ship, TransitDays: days}, true
}

// joinNotes 拼接非空备注并按上限截断
func joinNotes(notes []string, limit int) string {
	joined := strings.Join(notes, "; ")
	rs := []rune(joined)
	if limit > 0 && len(rs) > limit {
		return string(rs[:limit])
	}
	return joined
}
