package model

import "time"

// LabelColumn 汇总表中的装货日期列，按装货日升序排列
type LabelColumn struct {
	Label       string    `json:"label"`
	ShipDate    time.Time `json:"shipDate"`
	TransitDays int       `json:"transitDays"`
}

// LabelCell 某品名落在某装货日期列下的在途吨数
type LabelCell struct {
	Label   string  `json:"label"`
	QtyTons float64 `json:"qtyTons"`
}

// SummaryRow 汇总表一行，对应一个品名
type SummaryRow struct {
	Category       Category    `json:"category"`
	ActualStock    float64     `json:"actualStock"`
	Labels         []LabelCell `json:"labels"`
	InTransitTotal float64     `json:"inTransitTotal"`
	ArriveByCutoff float64     `json:"arriveByCutoff"`
	ProjectedStock float64     `json:"projectedStock"`
	RecordedStock  float64     `json:"recordedStock"`
	Note           string      `json:"note"`
}

// LabelQty 该行在指定装货日期列下的吨数，没有则为 0
func (r SummaryRow) LabelQty(label string) float64 {
	for _, c := range r.Labels {
		if c.Label == label {
			return c.QtyTons
		}
	}
	return 0
}

// SummaryTotals 合计行，只累计数值列，装货日期列和备注不参与
type SummaryTotals struct {
	ActualStock    float64 `json:"actualStock"`
	InTransitTotal float64 `json:"inTransitTotal"`
	ArriveByCutoff float64 `json:"arriveByCutoff"`
	ProjectedStock float64 `json:"projectedStock"`
	RecordedStock  float64 `json:"recordedStock"`
}

// SummaryTable 一次汇总计算的完整结果
type SummaryTable struct {
	Today        time.Time     `json:"today"`
	Cutoff       time.Time     `json:"cutoff"`
	LabelColumns []LabelColumn `json:"labelColumns"`
	Rows         []SummaryRow  `json:"rows"`
	Totals       SummaryTotals `json:"totals"`
}
