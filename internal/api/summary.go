package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
	"github.com/kakujikakuji/jm-warehouse-app/internal/service/inventory"
	"github.com/kakujikakuji/jm-warehouse-app/internal/service/product"
)

// summaryParams 汇总计算参数，缺省值来自配置与当前日期
type summaryParams struct {
	Today   time.Time
	Cutoff  time.Time
	Keyword string
}

func (h *Handler) resolveSummaryParams(c *gin.Context) (summaryParams, error) {
	settings := h.store.Settings()

	p := summaryParams{
		Today:   model.DateOnly(time.Now()),
		Keyword: settings.LocationKeyword,
	}
	if v := c.Query("today"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return p, fmt.Errorf("today 参数无效: %q", v)
		}
		p.Today = model.DateOnly(t)
	}

	p.Cutoff = p.Today.AddDate(0, 0, settings.DefaultWindowDays)
	if v := c.Query("cutoff"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return p, fmt.Errorf("cutoff 参数无效: %q", v)
		}
		p.Cutoff = model.DateOnly(t)
	}

	// 显式传空串表示不过滤，与缺省用配置关键词区分开
	if v, ok := c.GetQuery("keyword"); ok {
		p.Keyword = v
	}
	return p, nil
}

// computeSummary 从原始数据集现算汇总表，每次请求都重算
func (h *Handler) computeSummary(p summaryParams) (*model.SummaryTable, []string, error) {
	ds, err := h.store.Dataset()
	if err != nil {
		return nil, nil, err
	}

	matched := inventory.FilterTracking(ds.Tracking, p.Keyword)
	items, _ := product.ExtractAll(matched)

	agg := inventory.NewAggregator()
	agg.NoteLimit = h.store.Settings().NoteJoinLimit
	table := agg.Aggregate(ds.Stock, items, p.Today, p.Cutoff)
	warnings := agg.Check(table, ds.Stock, items)
	return table, warnings, nil
}

// GetSummary 汇总表查询
// GET /api/summary?today=&cutoff=&keyword=
func (h *Handler) GetSummary(c *gin.Context) {
	p, err := h.resolveSummaryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, warnings, err := h.computeSummary(p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roundSummaryInPlace(table)
	c.JSON(http.StatusOK, gin.H{
		"keyword":  p.Keyword,
		"table":    table,
		"warnings": warnings,
	})
}
