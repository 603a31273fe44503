package api

import (
	"math"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

// roundSummaryInPlace 数值列保留三位小数，与导出工作簿的展示口径一致
func roundSummaryInPlace(table *model.SummaryTable) {
	for ri := range table.Rows {
		r := &table.Rows[ri]
		r.ActualStock = round3(r.ActualStock)
		r.InTransitTotal = round3(r.InTransitTotal)
		r.ArriveByCutoff = round3(r.ArriveByCutoff)
		r.ProjectedStock = round3(r.ProjectedStock)
		r.RecordedStock = round3(r.RecordedStock)
		for li := range r.Labels {
			r.Labels[li].QtyTons = round3(r.Labels[li].QtyTons)
		}
	}
	table.Totals.ActualStock = round3(table.Totals.ActualStock)
	table.Totals.InTransitTotal = round3(table.Totals.InTransitTotal)
	table.Totals.ArriveByCutoff = round3(table.Totals.ArriveByCutoff)
	table.Totals.ProjectedStock = round3(table.Totals.ProjectedStock)
	table.Totals.RecordedStock = round3(table.Totals.RecordedStock)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
