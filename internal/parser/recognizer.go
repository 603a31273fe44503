package parser

import "strings"

// TableRecognizer 工作表类型识别器。按表头命中率给库存/跟踪两种
// 类型打分，工作表名包含关键词时加分。
type TableRecognizer struct {
	mapper *HeaderMapper
}

// NewTableRecognizer 创建识别器
func NewTableRecognizer() *TableRecognizer {
	return &TableRecognizer{mapper: NewHeaderMapper()}
}

// Recognize 识别工作表类型
func (r *TableRecognizer) Recognize(sheetName string, columnNames []string) TableRecognitionResult {
	stockScore := r.score(r.mapper.MapStock(columnNames), stockRequired)
	trackingScore := r.score(r.mapper.MapTracking(columnNames), trackingRequired)

	// 工作表名辅助判定
	name := strings.ToLower(sheetName)
	if ContainsAny(name, []string{"库存", "stock", "inventory"}) {
		stockScore += 0.2
	}
	if ContainsAny(name, []string{"跟踪", "在途", "货柜", "tracking", "transit", "shipment"}) {
		trackingScore += 0.2
	}

	result := TableRecognitionResult{SheetName: sheetName, Kind: TableKindUnknown}
	switch {
	case trackingScore >= 0.5 && trackingScore >= stockScore:
		result.Kind = TableKindTracking
		result.Confidence = trackingScore
	case stockScore >= 0.5:
		result.Kind = TableKindStock
		result.Confidence = stockScore
	default:
		result.Confidence = max(stockScore, trackingScore)
	}
	return result
}

// score 命中的必需列占比
func (r *TableRecognizer) score(mappings map[int]FieldMapping, required []string) float64 {
	matched := len(required) - len(missingFields(mappings, required))
	return float64(matched) / float64(len(required))
}
