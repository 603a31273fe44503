package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kakujikakuji/jm-warehouse-app/internal/service/store"
)

// Handler 仓库 API 处理器
type Handler struct {
	store     *store.MemoryStore
	exportDir string
	downloads *exportDownloadStore
}

// NewHandler 创建 API 处理器，exportDir 为空时导出文件写入系统临时目录
func NewHandler(st *store.MemoryStore, exportDir string) *Handler {
	return &Handler{
		store:     st,
		exportDir: exportDir,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 配置管理
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)

	// 数据导入
	router.POST("/import", h.Import)

	// 汇总与日历
	router.GET("/summary", h.GetSummary)
	router.GET("/calendar", h.GetCalendar)
	router.GET("/calendar/html", h.GetCalendarHTML)
	router.GET("/carriers", h.ListCarriers)

	// 数据导出
	router.POST("/export/summary", h.ExportSummary)
	router.POST("/export/calendars", h.ExportCalendars)
	router.GET("/export/download/:token", h.DownloadExport)
}
