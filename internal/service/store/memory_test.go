package store

import (
	"testing"
	"time"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

func TestStoreDatasetLifecycle(t *testing.T) {
	s := NewMemoryStore(model.DefaultSettings())

	if s.HasDataset() {
		t.Fatalf("新存储不应有数据集")
	}
	if _, err := s.Dataset(); err != ErrNoDataset {
		t.Fatalf("err = %v, want ErrNoDataset", err)
	}
	if _, ok := s.Meta(); ok {
		t.Fatalf("Meta ok = true, want false")
	}

	dataset := &model.Dataset{
		ID:         "d-1",
		ImportedAt: time.Now(),
		StockFile:  "stock.xlsx",
		Stock:      []model.StockRecord{{RowNo: 2, CategoryText: "白色粉末优镁粉", ActualQty: 100}},
	}
	s.SetDataset(dataset)

	got, err := s.Dataset()
	if err != nil {
		t.Fatalf("Dataset: %v", err)
	}
	if got.ID != "d-1" || len(got.Stock) != 1 {
		t.Errorf("dataset = %+v", got.Meta())
	}

	meta, ok := s.Meta()
	if !ok || meta.StockRows != 1 {
		t.Errorf("Meta = %+v, ok = %v", meta, ok)
	}
}

func TestStoreUpdateSettings(t *testing.T) {
	s := NewMemoryStore(model.DefaultSettings())

	keyword := "佛山"
	days := 14
	updated := s.UpdateSettings(model.SettingsPatch{
		LocationKeyword:   &keyword,
		DefaultWindowDays: &days,
	})

	if updated.LocationKeyword != "佛山" || updated.DefaultWindowDays != 14 {
		t.Errorf("updated = %+v", updated)
	}
	if updated.NoteJoinLimit != model.DefaultNoteJoinLimit {
		t.Errorf("未更新字段被改动: %+v", updated)
	}
	if got := s.Settings(); got != updated {
		t.Errorf("Settings() = %+v, want %+v", got, updated)
	}
}
