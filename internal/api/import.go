package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kakujikakuji/jm-warehouse-app/internal/importer"
)

// Import 导入库存表与货柜跟踪表 (SSE 流式响应)
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	stockData, stockName, err := readFormFile(c, "stock")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	trackingData, trackingName, err := readFormFile(c, "tracking")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	keyword := c.PostForm("keyword")

	// 设置 SSE 响应头
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "不支持流式响应"})
		return
	}

	coordinator := importer.NewCoordinator(h.store)
	progressChan := coordinator.Import(importer.ImportOptions{
		StockFilename:    stockName,
		StockData:        stockData,
		TrackingFilename: trackingName,
		TrackingData:     trackingData,
		Keyword:          keyword,
	})

	// 流式发送进度事件
	for event := range progressChan {
		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}
}

// readFormFile 把上传文件整体读进内存，解析器需要可回溯的字节流
func readFormFile(c *gin.Context, field string) ([]byte, string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, "", fmt.Errorf("缺少 %s 文件", field)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("打开 %s 文件失败", field)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fmt.Errorf("读取 %s 文件失败", field)
	}
	return data, fh.Filename, nil
}
