package exporter

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

func buildShipmentItems() []model.ShipmentItem {
	return []model.ShipmentItem{
		{
			Category: model.CategoryWhite,
			QtyTons:  20,
			ShipDate: testDate(2024, 3, 1),
			ETAPort:  testDate(2024, 3, 5),
			Carrier:  "MSK",
		},
		{
			Category: model.CategoryDarkYellow,
			QtyTons:  10,
			ShipDate: testDate(2024, 3, 3),
			ETADest:  testDate(2024, 3, 12),
			Carrier:  "COSCO",
		},
	}
}

func readZipEntries(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}
	entries := make(map[string]string)
	for _, zf := range zr.File {
		rc, err := zf.Open()
		if err != nil {
			t.Fatalf("打开条目 %s 失败: %v", zf.Name, err)
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("读取条目 %s 失败: %v", zf.Name, err)
		}
		entries[zf.Name] = string(body)
	}
	return entries
}

// TestCalendarExportZip 测试打包内容：每品名一页加索引页
func TestCalendarExportZip(t *testing.T) {
	opts := CalendarBundleOptions{WindowStart: testDate(2024, 3, 1), WindowDays: 30}
	data, err := NewCalendarExporter().ExportZip(buildShipmentItems(), opts, nil)
	if err != nil {
		t.Fatalf("ExportZip() error = %v", err)
	}

	entries := readZipEntries(t, data)
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3: %v", len(entries), entryNames(entries))
	}

	white, ok := entries["calendar_white_powder.html"]
	if !ok {
		t.Fatal("缺少 calendar_white_powder.html")
	}
	if !strings.Contains(white, "white powder") {
		t.Error("白色粉末日历缺少品名标题")
	}
	if !strings.Contains(white, "MSK") {
		t.Error("白色粉末日历缺少船公司")
	}
	if _, ok := entries["calendar_dark_yellow_powder.html"]; !ok {
		t.Fatal("缺少 calendar_dark_yellow_powder.html")
	}

	index, ok := entries["index.html"]
	if !ok {
		t.Fatal("缺少 index.html")
	}
	for _, name := range []string{"calendar_white_powder.html", "calendar_dark_yellow_powder.html"} {
		if !strings.Contains(index, name) {
			t.Errorf("索引页缺少链接 %s", name)
		}
	}
}

func entryNames(entries map[string]string) []string {
	var names []string
	for name := range entries {
		names = append(names, name)
	}
	return names
}

// TestCalendarExportZipProgress 测试进度回调从 0 走到 100
func TestCalendarExportZipProgress(t *testing.T) {
	var events []ProgressEvent
	opts := CalendarBundleOptions{WindowStart: testDate(2024, 3, 1), WindowDays: 30}
	_, err := NewCalendarExporter().ExportZip(buildShipmentItems(), opts, func(ev ProgressEvent) {
		events = append(events, ev)
	})
	if err != nil {
		t.Fatalf("ExportZip() error = %v", err)
	}
	if len(events) < 2 {
		t.Fatalf("len(events) = %d, want >= 2", len(events))
	}
	if events[0].Percent != 0 {
		t.Errorf("首个进度 = %d, want 0", events[0].Percent)
	}
	if last := events[len(events)-1]; last.Percent != 100 {
		t.Errorf("末个进度 = %d, want 100", last.Percent)
	}
}

// TestCalendarExportZipEmpty 测试没有任何在途条目时报错
func TestCalendarExportZipEmpty(t *testing.T) {
	opts := CalendarBundleOptions{WindowStart: testDate(2024, 3, 1), WindowDays: 30}
	if _, err := NewCalendarExporter().ExportZip(nil, opts, nil); err == nil {
		t.Fatal("ExportZip(nil) error = nil, want error")
	}
}

func TestCalendarBundleFileName(t *testing.T) {
	if got := CalendarBundleFileName(); !strings.HasSuffix(got, ".zip") {
		t.Errorf("CalendarBundleFileName() = %q, want .zip 后缀", got)
	}
}
