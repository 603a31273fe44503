package parser

import (
	"io"
	"strings"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

// TrackingParser 货柜跟踪表解析器
type TrackingParser struct {
	mapper *HeaderMapper
}

// NewTrackingParser 创建跟踪表解析器
func NewTrackingParser() *TrackingParser {
	return &TrackingParser{mapper: NewHeaderMapper()}
}

// Parse 从上传文件解析跟踪记录，工作簿自动挑选跟踪工作表
func (p *TrackingParser) Parse(r io.Reader, filename string) ([]model.TrackingRecord, error) {
	source, rows, err := readTable(r, filename, TableKindTracking)
	if err != nil {
		return nil, err
	}
	return p.ParseRows(source, rows)
}

// ParseRows 解析跟踪表原始行，第一行为表头。必需列缺失时返回
// *SchemaError。日期解析失败按缺失处理，留给下游降级。
func (p *TrackingParser) ParseRows(source string, rows [][]string) ([]model.TrackingRecord, error) {
	if len(rows) < 1 {
		return nil, &SchemaError{Kind: TableKindTracking, Source: source, Missing: trackingRequired}
	}

	mappings := p.mapper.MapTracking(rows[0])
	if missing := missingFields(mappings, trackingRequired); len(missing) > 0 {
		return nil, &SchemaError{Kind: TableKindTracking, Source: source, Missing: missing}
	}

	var records []model.TrackingRecord
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		record := p.parseRow(rows[rowIdx], mappings, rowIdx+1)
		if record.ProductText == "" && record.ContainerNo == "" {
			continue // 跳过空行
		}
		records = append(records, record)
	}
	return records, nil
}

// parseRow 解析单行数据
func (p *TrackingParser) parseRow(row []string, mappings map[int]FieldMapping, rowNo int) model.TrackingRecord {
	record := model.TrackingRecord{RowNo: rowNo}

	for colIdx, mapping := range mappings {
		if colIdx >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[colIdx])
		if value == "" {
			continue
		}

		switch mapping.Field {
		case FieldSeq:
			record.Seq = value
		case FieldShipDate:
			record.ShipDate = ParseDate(value)
		case FieldLoadAddress:
			record.LoadAddress = value
		case FieldReceiveAddress:
			record.ReceiveAddress = value
		case FieldWarehouseCustomer:
			record.WarehouseCustomer = value
		case FieldProductText:
			record.ProductText = value
		case FieldContainerNo:
			record.ContainerNo = value
		case FieldETAPort:
			record.ETAPort = ParseDate(value)
		case FieldETADest:
			record.ETADest = ParseDate(value)
		case FieldCarrier:
			record.Carrier = value
		}
	}

	return record
}
