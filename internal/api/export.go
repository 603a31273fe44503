package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kakujikakuji/jm-warehouse-app/internal/exporter"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	zipContentType  = "application/zip"

	downloadTTL = 10 * time.Minute
)

type exportProgressEvent struct {
	Type      string      `json:"type"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// sseSender 切换到 SSE 响应并返回事件发送函数
func sseSender(c *gin.Context) (func(exportProgressEvent), bool) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "不支持流式响应"})
		return nil, false
	}

	return func(event exportProgressEvent) {
		b, err := json.Marshal(event)
		if err != nil {
			return
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", b)
		flusher.Flush()
	}, true
}

// exportProgressFn 把导出器进度转成 SSE 事件，百分比没变化就不发
func exportProgressFn(send func(exportProgressEvent)) func(exporter.ProgressEvent) {
	lastPercent := -1
	return func(p exporter.ProgressEvent) {
		if p.Percent == lastPercent {
			return
		}
		lastPercent = p.Percent
		send(exportProgressEvent{
			Type:      "progress",
			Message:   p.Stage,
			Data:      map[string]any{"percent": p.Percent},
			Timestamp: time.Now(),
		})
	}
}

func (h *Handler) exportTempDir() string {
	if h.exportDir != "" {
		return h.exportDir
	}
	return os.TempDir()
}

// ExportSummary 导出汇总工作簿（SSE 进度 + 完成后提供下载地址）
// POST /api/export/summary?today=&cutoff=&keyword=
func (h *Handler) ExportSummary(c *gin.Context) {
	p, err := h.resolveSummaryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	table, _, err := h.computeSummary(p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	send, ok := sseSender(c)
	if !ok {
		return
	}
	send(exportProgressEvent{
		Type:    "start",
		Message: "开始导出汇总",
		Data: map[string]any{
			"today":   p.Today.Format("2006-01-02"),
			"cutoff":  p.Cutoff.Format("2006-01-02"),
			"keyword": p.Keyword,
		},
		Timestamp: time.Now(),
	})

	file, err := exporter.NewSummaryExporter().Export(table, exportProgressFn(send))
	if err != nil {
		send(exportProgressEvent{
			Type:      "error",
			Message:   "导出失败: " + err.Error(),
			Data:      map[string]any{},
			Timestamp: time.Now(),
		})
		return
	}
	defer file.Close()

	tempPath := filepath.Join(h.exportTempDir(), fmt.Sprintf("jmwh_summary_%d.xlsx", time.Now().UnixNano()))
	if err := file.SaveAs(tempPath); err != nil {
		send(exportProgressEvent{
			Type:      "error",
			Message:   "写入导出文件失败: " + err.Error(),
			Data:      map[string]any{},
			Timestamp: time.Now(),
		})
		_ = os.Remove(tempPath)
		return
	}

	token := h.downloads.put(exportDownload{
		filePath:    tempPath,
		asciiName:   fmt.Sprintf("stock-summary-%s.xlsx", p.Cutoff.Format("2006-01-02")),
		utf8Name:    exporter.SummaryFileName(p.Cutoff),
		contentType: xlsxContentType,
	}, downloadTTL)

	send(exportProgressEvent{
		Type:    "done",
		Message: "导出完成",
		Data: map[string]any{
			"percent":     100,
			"downloadUrl": "/api/export/download/" + token,
		},
		Timestamp: time.Now(),
	})
}

// ExportCalendars 导出日历打包（SSE 进度 + 完成后提供下载地址）
// POST /api/export/calendars?start=&days=&keyword=&compact=&short=
func (h *Handler) ExportCalendars(c *gin.Context) {
	p, err := h.resolveWindowParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items, err := h.datasetItems(p.Keyword)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	send, ok := sseSender(c)
	if !ok {
		return
	}
	send(exportProgressEvent{
		Type:    "start",
		Message: "开始生成日历打包",
		Data: map[string]any{
			"start":   p.Start.Format("2006-01-02"),
			"days":    p.Days,
			"keyword": p.Keyword,
		},
		Timestamp: time.Now(),
	})

	data, err := exporter.NewCalendarExporter().ExportZip(items, exporter.CalendarBundleOptions{
		WindowStart: p.Start,
		WindowDays:  p.Days,
		Compact:     p.Compact,
		ShortLabel:  p.Short,
	}, exportProgressFn(send))
	if err != nil {
		send(exportProgressEvent{
			Type:      "error",
			Message:   "生成日历失败: " + err.Error(),
			Data:      map[string]any{},
			Timestamp: time.Now(),
		})
		return
	}

	tempPath := filepath.Join(h.exportTempDir(), fmt.Sprintf("jmwh_calendars_%d.zip", time.Now().UnixNano()))
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		send(exportProgressEvent{
			Type:      "error",
			Message:   "写入导出文件失败: " + err.Error(),
			Data:      map[string]any{},
			Timestamp: time.Now(),
		})
		_ = os.Remove(tempPath)
		return
	}

	token := h.downloads.put(exportDownload{
		filePath:    tempPath,
		asciiName:   "arrival-calendars.zip",
		utf8Name:    exporter.CalendarBundleFileName(),
		contentType: zipContentType,
	}, downloadTTL)

	send(exportProgressEvent{
		Type:    "done",
		Message: "导出完成",
		Data: map[string]any{
			"percent":     100,
			"downloadUrl": "/api/export/download/" + token,
		},
		Timestamp: time.Now(),
	})
}

// DownloadExport 下载导出文件（一次性）
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 token"})
		return
	}

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接已失效"})
		return
	}

	if _, err := os.Stat(item.filePath); err != nil {
		h.downloads.delete(token)
		c.JSON(http.StatusNotFound, gin.H{"error": "导出文件不存在"})
		return
	}

	c.Header("Content-Disposition", buildDownloadContentDisposition(item.asciiName, item.utf8Name))
	c.Header("Content-Type", item.contentType)
	c.File(item.filePath)

	h.downloads.delete(token)
	_ = os.Remove(item.filePath)
}
