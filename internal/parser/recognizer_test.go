package parser

import "testing"

func TestRecognizeStockSheet(t *testing.T) {
	t.Parallel()

	headers := []string{"产品", "江门实际库存数量", "账面数量", "备注"}
	result := NewTableRecognizer().Recognize("Sheet1", headers)

	if result.Kind != TableKindStock {
		t.Fatalf("Kind = %q, want %q", result.Kind, TableKindStock)
	}
	if result.Confidence < 1 {
		t.Errorf("Confidence = %v, want >= 1", result.Confidence)
	}
}

func TestRecognizeTrackingSheet(t *testing.T) {
	t.Parallel()

	headers := []string{"序号", "装货日期", "装货地址", "收货地址", "仓库/客户", "品名", "柜号", "到港日", "预计到货", "船公司"}
	result := NewTableRecognizer().Recognize("货柜跟踪", headers)

	if result.Kind != TableKindTracking {
		t.Fatalf("Kind = %q, want %q", result.Kind, TableKindTracking)
	}
	if result.Confidence < 1 {
		t.Errorf("Confidence = %v, want >= 1", result.Confidence)
	}
}

func TestRecognizeSheetNameBoost(t *testing.T) {
	t.Parallel()

	// 表头只命中一半，工作表名关键词体现在置信度上
	headers := []string{"产品", "江门实际库存数量"}
	result := NewTableRecognizer().Recognize("8月库存", headers)

	if result.Kind != TableKindStock {
		t.Fatalf("Kind = %q, want %q", result.Kind, TableKindStock)
	}
	if result.Confidence < 0.7 {
		t.Errorf("Confidence = %v, want >= 0.7", result.Confidence)
	}
}

func TestRecognizeUnknownSheet(t *testing.T) {
	t.Parallel()

	headers := []string{"姓名", "电话", "地区"}
	result := NewTableRecognizer().Recognize("通讯录", headers)

	if result.Kind != TableKindUnknown {
		t.Fatalf("Kind = %q, want %q", result.Kind, TableKindUnknown)
	}
	if result.Confidence >= 0.5 {
		t.Errorf("Confidence = %v, want < 0.5", result.Confidence)
	}
}
