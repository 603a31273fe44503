package inventory

import (
	"fmt"
	"strings"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
	"github.com/kakujikakuji/jm-warehouse-app/internal/service/product"
)

// Check 汇总结果自检，返回面向状态页的警告文案，永远不返回错误
// 覆盖三类恒等式与库存表无法归一的品名清单
func (a *Aggregator) Check(table *model.SummaryTable, stock []model.StockRecord, items []model.ShipmentItem) []string {
	const eps = 1e-6
	var warns []string

	// 库存表中被剔除的品名
	for _, rec := range stock {
		if cat := product.CanonicalizeStock(rec.CategoryText); !cat.IsCanonical() {
			warns = append(warns, fmt.Sprintf("库存表第 %d 行品名无法归一，已从汇总剔除：%s",
				rec.RowNo, strings.TrimSpace(rec.CategoryText)))
		}
	}

	// 无标签在途量：装货日或到港日缺失的条目
	unlabeled := make(map[model.Category]float64)
	for _, it := range items {
		if !it.InTransit(table.Today) {
			continue
		}
		if _, _, ok := transitLabel(it); !ok {
			unlabeled[it.Category] += it.QtyTons
		}
	}

	for _, row := range table.Rows {
		if row.ActualStock < 0 {
			warns = append(warns, fmt.Sprintf("品名 %s 实际库存为负（%.3f）", row.Category, row.ActualStock))
		}
		if diff := row.ProjectedStock - row.ActualStock - row.ArriveByCutoff; diff > eps || diff < -eps {
			warns = append(warns, fmt.Sprintf("品名 %s 预计库存恒等式不成立（%.3f ≠ %.3f + %.3f）",
				row.Category, row.ProjectedStock, row.ActualStock, row.ArriveByCutoff))
		}
		labelSum := 0.0
		for _, c := range row.Labels {
			labelSum += c.QtyTons
		}
		if diff := row.InTransitTotal - labelSum - unlabeled[row.Category]; diff > eps || diff < -eps {
			warns = append(warns, fmt.Sprintf("品名 %s 在途合计与标签分解不守恒（%.3f ≠ %.3f + %.3f）",
				row.Category, row.InTransitTotal, labelSum, unlabeled[row.Category]))
		}
	}
	return warns
}
