package calendar

import (
	"strings"
	"testing"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

// TestRenderHTML 测试单品日历页的关键要素
func TestRenderHTML(t *testing.T) {
	items := []model.ShipmentItem{
		{
			Category: model.CategoryWhite,
			QtyTons:  20,
			Carrier:  "COSCO",
			ShipDate: testDate(2024, 3, 1),
			ETAPort:  testDate(2024, 3, 5),
		},
	}
	events := BuildEvents(items, model.CategoryWhite, testDate(2024, 3, 1), 14)
	cal := Layout(model.CategoryWhite, testDate(2024, 3, 1), 14, events, AssignColors(items), true)

	html, err := RenderHTML(cal, false)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	for _, want := range []string{
		"white powder",
		"2024年3月",
		"20t | COSCO | 2024-03-01 ~ 2024-03-05 (5 days)",
		palette[0],
		"class=\"day muted\"",
		"grid-column: 5 / span 3",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

// TestRenderHTMLCompact 测试紧凑模式切换尺寸
func TestRenderHTMLCompact(t *testing.T) {
	cal := Layout(model.CategoryWhite, testDate(2024, 3, 1), 7, nil, AssignColors(nil), true)

	normal, err := RenderHTML(cal, false)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	compact, err := RenderHTML(cal, true)
	if err != nil {
		t.Fatalf("RenderHTML compact: %v", err)
	}
	if !strings.Contains(normal, "min-height: 64px") {
		t.Errorf("normal mode missing 64px day cells")
	}
	if !strings.Contains(compact, "min-height: 52px") {
		t.Errorf("compact mode missing 52px day cells")
	}
}

// TestRenderIndex 测试索引页链接与文件名
func TestRenderIndex(t *testing.T) {
	html, err := RenderIndex([]model.Category{model.CategoryWhite, model.CategoryBrownGrade2})
	if err != nil {
		t.Fatalf("RenderIndex: %v", err)
	}
	if !strings.Contains(html, "href=\"calendar_white_powder.html\"") {
		t.Errorf("index missing white powder link: %s", html)
	}
	if !strings.Contains(html, "href=\"calendar_brown_grade_2.html\"") {
		t.Errorf("index missing brown grade 2 link: %s", html)
	}
}

// TestCalendarFileName 测试文件名里的空格替换
func TestCalendarFileName(t *testing.T) {
	if got := CalendarFileName(model.CategoryGoldenGrade1); got != "calendar_golden_powder_grade_1.html" {
		t.Errorf("CalendarFileName = %q", got)
	}
}
