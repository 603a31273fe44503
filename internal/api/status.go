package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized  bool     `json:"initialized"`            // 是否已导入数据集
	DatasetID    string   `json:"datasetId,omitempty"`    // 数据集标识
	StockFile    string   `json:"stockFile,omitempty"`    // 库存表文件名
	TrackingFile string   `json:"trackingFile,omitempty"` // 跟踪表文件名
	Keyword      string   `json:"keyword,omitempty"`      // 导入时使用的地点关键词
	StockRows    int      `json:"stockRows"`              // 库存行数
	TrackingRows int      `json:"trackingRows"`           // 跟踪行数
	DroppedParts int      `json:"droppedParts"`           // 拆分时被丢弃的片段数
	ImportedAt   string   `json:"importedAt,omitempty"`   // 导入时间
	Warnings     []string `json:"warnings,omitempty"`     // 数据体检提示
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	meta, ok := h.store.Meta()
	if !ok {
		c.JSON(http.StatusOK, StatusResponse{Initialized: false})
		return
	}

	resp := StatusResponse{
		Initialized:  true,
		DatasetID:    meta.ID,
		StockFile:    meta.StockFile,
		TrackingFile: meta.TrackingFile,
		Keyword:      meta.Keyword,
		StockRows:    meta.StockRows,
		TrackingRows: meta.TrackingRows,
		DroppedParts: meta.DroppedParts,
		ImportedAt:   meta.ImportedAt.Format(time.RFC3339),
	}

	// 用导入时的关键词跑一遍体检，把未识别片段之类的问题带回给前端
	today := model.DateOnly(time.Now())
	if _, warnings, err := h.computeSummary(summaryParams{
		Today:   today,
		Cutoff:  today.AddDate(0, 0, h.store.Settings().DefaultWindowDays),
		Keyword: meta.Keyword,
	}); err == nil {
		resp.Warnings = warnings
	}

	c.JSON(http.StatusOK, resp)
}
