package exporter

import (
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

// summarySheet 汇总工作簿唯一工作表名，沿用线上报表的叫法
const summarySheet = "汇总(产品)"

// SummaryExporter 把汇总表写成全新的 xlsx 工作簿
//
// 不依赖模板：表头、装货标签列数随数据变化，整张表每次重建。
type SummaryExporter struct{}

// NewSummaryExporter 创建汇总导出器
func NewSummaryExporter() *SummaryExporter {
	return &SummaryExporter{}
}

// Export 导出汇总工作簿，progress 可为 nil
func (e *SummaryExporter) Export(table *model.SummaryTable, progress func(ProgressEvent)) (*excelize.File, error) {
	if table == nil {
		return nil, fmt.Errorf("汇总表为空，无法导出")
	}
	reportProgress(progress, 0, "准备工作簿")

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("重命名工作表失败: %w", err)
	}

	if err := writeSheetRow(f, summarySheet, 1, summaryHeaders(table)); err != nil {
		_ = f.Close()
		return nil, err
	}
	reportProgress(progress, 10, "写入表头")

	for i, row := range table.Rows {
		if err := writeSheetRow(f, summarySheet, i+2, summaryRowValues(table, row)); err != nil {
			_ = f.Close()
			return nil, err
		}
		reportProgress(progress, 10+(i+1)*80/len(table.Rows), fmt.Sprintf("写入 %s", row.Category))
	}

	if err := writeSheetRow(f, summarySheet, len(table.Rows)+2, summaryTotalsValues(table)); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := applySummaryColumnWidths(f, table); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	reportProgress(progress, 100, "完成")
	return f, nil
}

// SummaryFileName 汇总工作簿下载文件名
func SummaryFileName(cutoff time.Time) string {
	return fmt.Sprintf("汇总(产品)_含装货标签_在途_预计库存_截止%s.xlsx", cutoff.Format("20060102"))
}

func summaryHeaders(table *model.SummaryTable) []interface{} {
	cutoff := table.Cutoff.Format("2006-01-02")
	headers := make([]interface{}, 0, len(table.LabelColumns)+7)
	headers = append(headers, "category", "actual_stock")
	for _, col := range table.LabelColumns {
		headers = append(headers, col.Label)
	}
	headers = append(headers,
		"in_transit_total",
		fmt.Sprintf("projected_arrival_by_cutoff (%s)", cutoff),
		fmt.Sprintf("projected_stock_at_cutoff (%s)", cutoff),
		"recorded_stock",
		"note",
	)
	return headers
}

func summaryRowValues(table *model.SummaryTable, row model.SummaryRow) []interface{} {
	values := make([]interface{}, 0, len(table.LabelColumns)+7)
	values = append(values, string(row.Category), roundHalfUp(row.ActualStock, 3))
	for _, col := range table.LabelColumns {
		// 没有任何装货标签的行，标签列整行留空
		if len(row.Labels) == 0 {
			values = append(values, "")
			continue
		}
		values = append(values, roundHalfUp(row.LabelQty(col.Label), 3))
	}
	values = append(values,
		roundHalfUp(row.InTransitTotal, 3),
		roundHalfUp(row.ArriveByCutoff, 3),
		roundHalfUp(row.ProjectedStock, 3),
		roundHalfUp(row.RecordedStock, 3),
		row.Note,
	)
	return values
}

// summaryTotalsValues 合计行只累计数值列，装货标签列与备注留空
func summaryTotalsValues(table *model.SummaryTable) []interface{} {
	values := make([]interface{}, 0, len(table.LabelColumns)+7)
	values = append(values, "合计", roundHalfUp(table.Totals.ActualStock, 3))
	for range table.LabelColumns {
		values = append(values, "")
	}
	values = append(values,
		roundHalfUp(table.Totals.InTransitTotal, 3),
		roundHalfUp(table.Totals.ArriveByCutoff, 3),
		roundHalfUp(table.Totals.ProjectedStock, 3),
		roundHalfUp(table.Totals.RecordedStock, 3),
		"",
	)
	return values
}

func writeSheetRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("定位第 %d 行失败: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("写入第 %d 行失败: %w", row, err)
	}
	return nil
}

func applySummaryColumnWidths(f *excelize.File, table *model.SummaryTable) error {
	setWidth := func(col int, width float64) error {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		return f.SetColWidth(summarySheet, name, name, width)
	}

	labelCount := len(table.LabelColumns)
	if err := setWidth(1, 24); err != nil {
		return fmt.Errorf("设置列宽失败: %w", err)
	}
	if err := setWidth(2, 13); err != nil {
		return fmt.Errorf("设置列宽失败: %w", err)
	}
	for i := 0; i < labelCount; i++ {
		if err := setWidth(3+i, 30); err != nil {
			return fmt.Errorf("设置列宽失败: %w", err)
		}
	}
	for i, width := range []float64{15, 33, 33, 14, 40} {
		if err := setWidth(3+labelCount+i, width); err != nil {
			return fmt.Errorf("设置列宽失败: %w", err)
		}
	}
	return nil
}

func roundHalfUp(v float64, digits int) float64 {
	if digits < 0 {
		return v
	}
	scale := math.Pow10(digits)
	x := v * scale
	if x >= 0 {
		return math.Floor(x+0.5) / scale
	}
	return -math.Floor(-x+0.5) / scale
}
