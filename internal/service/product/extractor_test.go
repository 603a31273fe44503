package product

import (
	"testing"
	"time"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

func testDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestSplitItemsComposite 测试一柜多品拆分与元数据复制
func TestSplitItemsComposite(t *testing.T) {
	rec := model.TrackingRecord{
		RowNo:             3,
		ContainerNo:       "TCLU1234567",
		ProductText:       "20 tons white powder + 5 tons brown grade 1",
		Carrier:           "CarrierA",
		ShipDate:          testDate(2024, 3, 1),
		ETAPort:           testDate(2024, 3, 5),
		WarehouseCustomer: "江门仓",
	}

	items, dropped := SplitItems(rec)
	if len(dropped) != 0 {
		t.Fatalf("dropped = %v, want empty", dropped)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	if items[0].Category != model.CategoryWhite || items[0].QtyTons != 20 {
		t.Errorf("items[0] = %q/%v, want white powder/20", items[0].Category, items[0].QtyTons)
	}
	if items[1].Category != model.CategoryBrownGrade1 || items[1].QtyTons != 5 {
		t.Errorf("items[1] = %q/%v, want brown grade 1/5", items[1].Category, items[1].QtyTons)
	}

	// 两条条目共享同一行的柜号与日期
	for i, it := range items {
		if it.ContainerNo != rec.ContainerNo {
			t.Errorf("items[%d].ContainerNo = %q, want %q", i, it.ContainerNo, rec.ContainerNo)
		}
		if !it.ShipDate.Equal(rec.ShipDate) {
			t.Errorf("items[%d].ShipDate = %v, want %v", i, it.ShipDate, rec.ShipDate)
		}
		if it.Carrier != rec.Carrier {
			t.Errorf("items[%d].Carrier = %q, want %q", i, it.Carrier, rec.Carrier)
		}
		if it.SourceRowNo != rec.RowNo {
			t.Errorf("items[%d].SourceRowNo = %d, want %d", i, it.SourceRowNo, rec.RowNo)
		}
	}
}

// TestSplitItemsFullWidth 测试全角分隔符与小数吨位
func TestSplitItemsFullWidth(t *testing.T) {
	rec := model.TrackingRecord{
		RowNo:       1,
		ProductText: "白色粉末优镁粉25吨＋金黄色粉末1号5.5吨",
	}

	items, dropped := SplitItems(rec)
	if len(dropped) != 0 {
		t.Fatalf("dropped = %v, want empty", dropped)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Category != model.CategoryWhite || items[0].QtyTons != 25 {
		t.Errorf("items[0] = %q/%v, want white powder/25", items[0].Category, items[0].QtyTons)
	}
	if items[1].Category != model.CategoryGoldenGrade1 || items[1].QtyTons != 5.5 {
		t.Errorf("items[1] = %q/%v, want golden powder grade 1/5.5", items[1].Category, items[1].QtyTons)
	}
}

// TestSplitItemsDrops 测试无吨位与无法归一片段的丢弃记录
func TestSplitItemsDrops(t *testing.T) {
	rec := model.TrackingRecord{
		RowNo:       7,
		ContainerNo: "MSKU0000001",
		ProductText: "misc cargo 3 tons, white powder",
	}

	items, dropped := SplitItems(rec)
	if len(items) != 0 {
		t.Fatalf("len(items) = %d, want 0", len(items))
	}
	if len(dropped) != 2 {
		t.Fatalf("len(dropped) = %d, want 2", len(dropped))
	}
	if dropped[0].Reason != model.DropUnclassified {
		t.Errorf("dropped[0].Reason = %q, want %q", dropped[0].Reason, model.DropUnclassified)
	}
	if dropped[1].Reason != model.DropNoQuantity {
		t.Errorf("dropped[1].Reason = %q, want %q", dropped[1].Reason, model.DropNoQuantity)
	}
	if dropped[0].SourceRowNo != 7 {
		t.Errorf("dropped[0].SourceRowNo = %d, want 7", dropped[0].SourceRowNo)
	}
}

// TestSplitItemsEmptyText 测试空产品描述整行记为丢弃
func TestSplitItemsEmptyText(t *testing.T) {
	items, dropped := SplitItems(model.TrackingRecord{RowNo: 2, ProductText: "  "})
	if len(items) != 0 {
		t.Fatalf("len(items) = %d, want 0", len(items))
	}
	if len(dropped) != 1 || dropped[0].Reason != model.DropEmptyText {
		t.Fatalf("dropped = %v, want single empty_text", dropped)
	}
}

// TestExtractAll 测试多行拆分保持输入顺序
func TestExtractAll(t *testing.T) {
	recs := []model.TrackingRecord{
		{RowNo: 1, ProductText: "白色粉末优镁粉25吨"},
		{RowNo: 2, ProductText: "nothing useful"},
		{RowNo: 3, ProductText: "brown grade 2 10t"},
	}

	items, dropped := ExtractAll(recs)
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].SourceRowNo != 1 || items[1].SourceRowNo != 3 {
		t.Errorf("item source rows = %d/%d, want 1/3", items[0].SourceRowNo, items[1].SourceRowNo)
	}
	if len(dropped) != 1 || dropped[0].Reason != model.DropNoQuantity {
		t.Fatalf("dropped = %v, want single no_quantity", dropped)
	}
}
