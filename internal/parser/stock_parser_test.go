package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// sheetFixture 内存工作簿夹具
type sheetFixture struct {
	name string
	rows [][]interface{}
}

func buildWorkbook(t *testing.T, sheets []sheetFixture) *bytes.Reader {
	t.Helper()

	wb := excelize.NewFile()
	defaultSheet := wb.GetSheetName(wb.GetActiveSheetIndex())

	for _, sheet := range sheets {
		if _, err := wb.NewSheet(sheet.name); err != nil {
			t.Fatalf("NewSheet %s failed: %v", sheet.name, err)
		}
		for i, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName failed: %v", err)
			}
			if err := wb.SetSheetRow(sheet.name, cell, &row); err != nil {
				t.Fatalf("SetSheetRow %s failed: %v", sheet.name, err)
			}
		}
	}
	_ = wb.DeleteSheet(defaultSheet)

	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestStockParseRows(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"产品", "江门实际库存数量", "账面数量", "备注"},
		{"白色粉末优镁粉", "100", "120", "含待检 5 吨"},
		{"棕色1号优镁粉", "0", "5", ""},
		{"", "", "", ""},
	}
	records, err := NewStockParser().ParseRows("库存", rows)
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	first := records[0]
	if first.RowNo != 2 || first.CategoryText != "白色粉末优镁粉" {
		t.Errorf("records[0] = %+v", first)
	}
	if first.ActualQty != 100 || first.RecordedQty != 120 {
		t.Errorf("数量 = %v/%v, want 100/120", first.ActualQty, first.RecordedQty)
	}
	if first.Note != "含待检 5 吨" {
		t.Errorf("Note = %q", first.Note)
	}
	if records[1].ActualQty != 0 || records[1].RecordedQty != 5 {
		t.Errorf("records[1] 数量 = %v/%v, want 0/5", records[1].ActualQty, records[1].RecordedQty)
	}
}

func TestStockParseRowsSchemaError(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"产品", "备注"},
		{"白色粉末优镁粉", "x"},
	}
	_, err := NewStockParser().ParseRows("库存", rows)

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("err = %v, want *SchemaError", err)
	}
	if schemaErr.Kind != TableKindStock {
		t.Errorf("Kind = %q, want %q", schemaErr.Kind, TableKindStock)
	}
	if len(schemaErr.Missing) != 2 {
		t.Errorf("Missing = %v, want 2 项", schemaErr.Missing)
	}
	if !strings.Contains(schemaErr.Error(), FieldActualQty) {
		t.Errorf("Error() = %q, 应包含 %q", schemaErr.Error(), FieldActualQty)
	}
}

func TestStockParseWorkbook(t *testing.T) {
	t.Parallel()

	r := buildWorkbook(t, []sheetFixture{
		{
			name: "库存",
			rows: [][]interface{}{
				{"产品", "江门实际库存数量", "账面数量", "备注"},
				{"金黄色粉末1号优镁粉", "30.5", "30.5", ""},
			},
		},
	})

	records, err := NewStockParser().Parse(r, "库存表.xlsx")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].CategoryText != "金黄色粉末1号优镁粉" || records[0].ActualQty != 30.5 {
		t.Errorf("records[0] = %+v", records[0])
	}
}

func TestStockParseCSVWithBOM(t *testing.T) {
	t.Parallel()

	csvData := "\xEF\xBB\xBF" +
		"category_text,actual_quantity,recorded_quantity,note\n" +
		"white powder premium,\"1,250.5\",1300,priority\n"

	records, err := NewStockParser().Parse(strings.NewReader(csvData), "stock.csv")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].ActualQty != 1250.5 {
		t.Errorf("ActualQty = %v, want 1250.5", records[0].ActualQty)
	}
	if records[0].Note != "priority" {
		t.Errorf("Note = %q, want priority", records[0].Note)
	}
}
