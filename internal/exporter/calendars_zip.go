package exporter

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
	"github.com/kakujikakuji/jm-warehouse-app/internal/service/calendar"
)

// CalendarBundleOptions 日历打包参数
type CalendarBundleOptions struct {
	WindowStart time.Time
	WindowDays  int
	Compact     bool
	ShortLabel  bool
}

// CalendarExporter 为每个有在途数据的品名渲染一页月历 HTML，
// 连同索引页打成一个 zip
type CalendarExporter struct{}

// NewCalendarExporter 创建日历导出器
func NewCalendarExporter() *CalendarExporter {
	return &CalendarExporter{}
}

// ExportZip 生成日历打包，progress 可为 nil
func (e *CalendarExporter) ExportZip(items []model.ShipmentItem, opts CalendarBundleOptions, progress func(ProgressEvent)) ([]byte, error) {
	cats := calendar.CategoriesWithData(items)
	if len(cats) == 0 {
		return nil, fmt.Errorf("没有可生成日历的品名")
	}
	colors := calendar.AssignColors(items)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	reportProgress(progress, 0, "开始生成日历")

	for i, cat := range cats {
		events := calendar.BuildEvents(items, cat, opts.WindowStart, opts.WindowDays)
		cal := calendar.Layout(cat, opts.WindowStart, opts.WindowDays, events, colors, opts.ShortLabel)
		html, err := calendar.RenderHTML(cal, opts.Compact)
		if err != nil {
			return nil, fmt.Errorf("渲染 %s 日历失败: %w", cat, err)
		}
		w, err := zw.Create(calendar.CalendarFileName(cat))
		if err != nil {
			return nil, fmt.Errorf("创建压缩包条目失败: %w", err)
		}
		if _, err := w.Write([]byte(html)); err != nil {
			return nil, fmt.Errorf("写入 %s 日历失败: %w", cat, err)
		}
		reportProgress(progress, (i+1)*90/len(cats), fmt.Sprintf("已生成 %s", cat))
	}

	indexHTML, err := calendar.RenderIndex(cats)
	if err != nil {
		return nil, fmt.Errorf("渲染索引页失败: %w", err)
	}
	w, err := zw.Create("index.html")
	if err != nil {
		return nil, fmt.Errorf("创建索引页条目失败: %w", err)
	}
	if _, err := w.Write([]byte(indexHTML)); err != nil {
		return nil, fmt.Errorf("写入索引页失败: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("关闭压缩包失败: %w", err)
	}
	reportProgress(progress, 100, "完成")
	return buf.Bytes(), nil
}

// CalendarBundleFileName 日历打包下载文件名
func CalendarBundleFileName() string {
	return "产品到货_连续事件条_月历_HTML打包.zip"
}
