package parser

import (
	"io"
	"strings"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

// StockParser 库存表解析器
type StockParser struct {
	mapper *HeaderMapper
}

// NewStockParser 创建库存表解析器
func NewStockParser() *StockParser {
	return &StockParser{mapper: NewHeaderMapper()}
}

// Parse 从上传文件解析库存记录，工作簿自动挑选库存工作表
func (p *StockParser) Parse(r io.Reader, filename string) ([]model.StockRecord, error) {
	source, rows, err := readTable(r, filename, TableKindStock)
	if err != nil {
		return nil, err
	}
	return p.ParseRows(source, rows)
}

// ParseRows 解析库存表原始行，第一行为表头。必需列缺失时返回
// *SchemaError，不做任何行级解析。
func (p *StockParser) ParseRows(source string, rows [][]string) ([]model.StockRecord, error) {
	if len(rows) < 1 {
		return nil, &SchemaError{Kind: TableKindStock, Source: source, Missing: stockRequired}
	}

	mappings := p.mapper.MapStock(rows[0])
	if missing := missingFields(mappings, stockRequired); len(missing) > 0 {
		return nil, &SchemaError{Kind: TableKindStock, Source: source, Missing: missing}
	}

	var records []model.StockRecord
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		record := p.parseRow(rows[rowIdx], mappings, rowIdx+1)
		if record.CategoryText == "" {
			continue // 跳过品名为空的行
		}
		records = append(records, record)
	}
	return records, nil
}

// parseRow 解析单行数据
func (p *StockParser) parseRow(row []string, mappings map[int]FieldMapping, rowNo int) model.StockRecord {
	record := model.StockRecord{RowNo: rowNo}

	for colIdx, mapping := range mappings {
		if colIdx >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[colIdx])
		if value == "" {
			continue
		}

		switch mapping.Field {
		case FieldCategoryText:
			record.CategoryText = value
		case FieldActualQty:
			record.ActualQty = ParseQuantity(value)
		case FieldRecordedQty:
			record.RecordedQty = ParseQuantity(value)
		case FieldNote:
			record.Note = value
		}
	}

	return record
}
