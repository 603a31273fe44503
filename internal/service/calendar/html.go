package calendar

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var tplFuncs = template.FuncMap{
	"inc":      func(n int) int { return n + 1 },
	"monthNum": func(m time.Month) int { return int(m) },
}

var pageTpl = template.Must(template.New("calendar.html").Funcs(tplFuncs).ParseFS(templateFS, "templates/calendar.html"))
var indexTpl = template.Must(template.New("index.html").ParseFS(templateFS, "templates/index.html"))

// pageData 单品日历页模板数据
type pageData struct {
	Cal     *model.ProductCalendar
	Compact bool
}

// RenderHTML 渲染单品名日历为独立 HTML 文档，compact 使用移动端紧凑尺寸
func RenderHTML(cal *model.ProductCalendar, compact bool) (string, error) {
	var buf strings.Builder
	if err := pageTpl.Execute(&buf, pageData{Cal: cal, Compact: compact}); err != nil {
		return "", fmt.Errorf("渲染日历页面: %w", err)
	}
	return buf.String(), nil
}

// IndexEntry 索引页里的一条链接
type IndexEntry struct {
	Category model.Category
	File     string
}

// CalendarFileName 打包内单品日历的文件名，空格换下划线
func CalendarFileName(cat model.Category) string {
	return "calendar_" + strings.ReplaceAll(string(cat), " ", "_") + ".html"
}

// RenderIndex 渲染打包索引页，链接顺序与传入品名一致
func RenderIndex(cats []model.Category) (string, error) {
	entries := make([]IndexEntry, 0, len(cats))
	for _, c := range cats {
		entries = append(entries, IndexEntry{Category: c, File: CalendarFileName(c)})
	}
	var buf strings.Builder
	if err := indexTpl.Execute(&buf, entries); err != nil {
		return "", fmt.Errorf("渲染索引页面: %w", err)
	}
	return buf.String(), nil
}
