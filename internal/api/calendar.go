package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
	"github.com/kakujikakuji/jm-warehouse-app/internal/service/calendar"
	"github.com/kakujikakuji/jm-warehouse-app/internal/service/inventory"
	"github.com/kakujikakuji/jm-warehouse-app/internal/service/product"
)

// windowParams 日历窗口参数
type windowParams struct {
	Start   time.Time
	Days    int
	Keyword string
	Compact bool
	Short   bool
}

// resolveWindowParams 解析窗口参数，days 超出允许区间直接报错而不是静默收缩
func (h *Handler) resolveWindowParams(c *gin.Context) (windowParams, error) {
	settings := h.store.Settings()

	p := windowParams{
		Start:   model.DateOnly(time.Now()),
		Days:    settings.DefaultWindowDays,
		Keyword: settings.LocationKeyword,
		Compact: c.DefaultQuery("compact", "false") == "true",
		Short:   c.DefaultQuery("short", "false") == "true",
	}
	if v := c.Query("start"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return p, fmt.Errorf("start 参数无效: %q", v)
		}
		p.Start = model.DateOnly(t)
	}
	if v := c.Query("days"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("days 参数无效: %q", v)
		}
		if d < model.MinWindowDays || d > model.MaxWindowDays {
			return p, fmt.Errorf("days 必须在 %d 到 %d 之间", model.MinWindowDays, model.MaxWindowDays)
		}
		p.Days = d
	}
	if v, ok := c.GetQuery("keyword"); ok {
		p.Keyword = v
	}
	return p, nil
}

// datasetItems 按关键词过滤后拆出的在途条目
func (h *Handler) datasetItems(keyword string) ([]model.ShipmentItem, error) {
	ds, err := h.store.Dataset()
	if err != nil {
		return nil, err
	}
	matched := inventory.FilterTracking(ds.Tracking, keyword)
	items, _ := product.ExtractAll(matched)
	return items, nil
}

// bindCategory 校验 category 参数，未知品名返回 404
func bindCategory(c *gin.Context) (model.Category, bool) {
	cat := model.Category(strings.TrimSpace(c.Query("category")))
	if cat == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 category 参数"})
		return "", false
	}
	if !cat.IsCanonical() {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("未知品名: %s", cat)})
		return "", false
	}
	return cat, true
}

// buildCalendar 为单个品名布局到货月历
func (h *Handler) buildCalendar(cat model.Category, p windowParams) (*model.ProductCalendar, error) {
	items, err := h.datasetItems(p.Keyword)
	if err != nil {
		return nil, err
	}
	events := calendar.BuildEvents(items, cat, p.Start, p.Days)
	colors := calendar.AssignColors(items)
	return calendar.Layout(cat, p.Start, p.Days, events, colors, p.Short), nil
}

// GetCalendar 单品名到货月历
// GET /api/calendar?category=&start=&days=&keyword=&compact=&short=
func (h *Handler) GetCalendar(c *gin.Context) {
	cat, ok := bindCategory(c)
	if !ok {
		return
	}
	p, err := h.resolveWindowParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cal, err := h.buildCalendar(cat, p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cal)
}

// GetCalendarHTML 单品名到货月历，独立 HTML 文档
// GET /api/calendar/html?category=&start=&days=&keyword=&compact=&short=
func (h *Handler) GetCalendarHTML(c *gin.Context) {
	cat, ok := bindCategory(c)
	if !ok {
		return
	}
	p, err := h.resolveWindowParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cal, err := h.buildCalendar(cat, p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	html, err := calendar.RenderHTML(cal, p.Compact)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "渲染日历失败: " + err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// ListCarriers 船公司图例
// GET /api/carriers?keyword=
func (h *Handler) ListCarriers(c *gin.Context) {
	keyword := h.store.Settings().LocationKeyword
	if v, ok := c.GetQuery("keyword"); ok {
		keyword = v
	}

	items, err := h.datasetItems(keyword)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	colors := calendar.AssignColors(items)
	c.JSON(http.StatusOK, gin.H{"carriers": colors.Legend()})
}
