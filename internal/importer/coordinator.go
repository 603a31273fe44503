package importer

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
	"github.com/kakujikakuji/jm-warehouse-app/internal/parser"
	"github.com/kakujikakuji/jm-warehouse-app/internal/service/inventory"
	"github.com/kakujikakuji/jm-warehouse-app/internal/service/product"
	"github.com/kakujikakuji/jm-warehouse-app/internal/service/store"
)

// Coordinator 导入协调器：解析两张输入表，建立新数据集并替换存储中
// 的旧数据集，过程通过进度通道上报
type Coordinator struct {
	store          *store.MemoryStore
	stockParser    *parser.StockParser
	trackingParser *parser.TrackingParser
}

// NewCoordinator 创建导入协调器
func NewCoordinator(st *store.MemoryStore) *Coordinator {
	return &Coordinator{
		store:          st,
		stockParser:    parser.NewStockParser(),
		trackingParser: parser.NewTrackingParser(),
	}
}

// ImportOptions 导入选项。文件内容一次性读入内存，避免上传流被重复消费
type ImportOptions struct {
	StockFilename    string
	StockData        []byte
	TrackingFilename string
	TrackingData     []byte
	Keyword          string // 为空时取业务参数的默认关键词
}

// ProgressEvent 进度事件
type ProgressEvent struct {
	Type      string      `json:"type"` // start/table_done/warning/error/done
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ImportReport 导入报告
type ImportReport struct {
	DatasetID    string              `json:"datasetId"`
	StockFile    string              `json:"stockFile"`
	TrackingFile string              `json:"trackingFile"`
	Keyword      string              `json:"keyword"`
	StockRows    int                 `json:"stockRows"`
	TrackingRows int                 `json:"trackingRows"`
	MatchedRows  int                 `json:"matchedRows"`  // 命中关键词的跟踪行
	FilteredRows int                 `json:"filteredRows"` // 被关键词过滤掉的跟踪行
	ItemCount    int                 `json:"itemCount"`    // 拆分出的单品条目
	Dropped      []model.DroppedPart `json:"dropped"`
	Warnings     []string            `json:"warnings,omitempty"`
	Duration     time.Duration       `json:"duration"`
}

// Import 执行导入，返回进度通道。通道在导入结束后关闭，
// 最后一个事件是 done（携带报告）或 error。
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doImport(opts, progressChan)
	}()

	return progressChan
}

// doImport 执行导入逻辑
func (c *Coordinator) doImport(opts ImportOptions, ch chan ProgressEvent) {
	startTime := time.Now()

	c.sendProgress(ch, ProgressEvent{
		Type:    "start",
		Message: "开始导入库存表与货柜跟踪表",
		Data: map[string]string{
			"stockFile":    opts.StockFilename,
			"trackingFile": opts.TrackingFilename,
		},
		Timestamp: time.Now(),
	})

	stockRecords, err := c.stockParser.Parse(bytes.NewReader(opts.StockData), opts.StockFilename)
	if err != nil {
		c.sendError(ch, fmt.Errorf("解析库存表失败: %w", err))
		return
	}
	c.sendProgress(ch, ProgressEvent{
		Type:    "table_done",
		Message: fmt.Sprintf("库存表解析完成: %d 行", len(stockRecords)),
		Data: map[string]interface{}{
			"kind": parser.TableKindStock,
			"rows": len(stockRecords),
		},
		Timestamp: time.Now(),
	})

	trackingRecords, err := c.trackingParser.Parse(bytes.NewReader(opts.TrackingData), opts.TrackingFilename)
	if err != nil {
		c.sendError(ch, fmt.Errorf("解析跟踪表失败: %w", err))
		return
	}
	c.sendProgress(ch, ProgressEvent{
		Type:    "table_done",
		Message: fmt.Sprintf("跟踪表解析完成: %d 行", len(trackingRecords)),
		Data: map[string]interface{}{
			"kind": parser.TableKindTracking,
			"rows": len(trackingRecords),
		},
		Timestamp: time.Now(),
	})

	keyword := strings.TrimSpace(opts.Keyword)
	if keyword == "" {
		keyword = c.store.Settings().LocationKeyword
	}

	// 关键词过滤与单品拆分在查询时还会按请求参数重算，
	// 这里先跑一遍以便在报告中给出行数与丢弃明细
	matched := inventory.FilterTracking(trackingRecords, keyword)
	items, droppedParts := product.ExtractAll(matched)

	report := &ImportReport{
		DatasetID:    uuid.New().String(),
		StockFile:    opts.StockFilename,
		TrackingFile: opts.TrackingFilename,
		Keyword:      keyword,
		StockRows:    len(stockRecords),
		TrackingRows: len(trackingRecords),
		MatchedRows:  len(matched),
		FilteredRows: len(trackingRecords) - len(matched),
		ItemCount:    len(items),
		Dropped:      droppedParts,
	}

	if len(trackingRecords) > 0 && len(matched) == 0 {
		warning := fmt.Sprintf("没有跟踪行命中关键词 %q，汇总将只包含库存数据", keyword)
		report.Warnings = append(report.Warnings, warning)
		c.sendProgress(ch, ProgressEvent{Type: "warning", Message: warning, Timestamp: time.Now()})
	}
	if len(droppedParts) > 0 {
		warning := fmt.Sprintf("%d 个品名片段无法识别，已从汇总中剔除", len(droppedParts))
		report.Warnings = append(report.Warnings, warning)
		c.sendProgress(ch, ProgressEvent{Type: "warning", Message: warning, Timestamp: time.Now()})
	}

	c.store.SetDataset(&model.Dataset{
		ID:           report.DatasetID,
		ImportedAt:   time.Now(),
		StockFile:    opts.StockFilename,
		TrackingFile: opts.TrackingFilename,
		Keyword:      keyword,
		Stock:        stockRecords,
		Tracking:     trackingRecords,
		Dropped:      droppedParts,
	})

	report.Duration = time.Since(startTime)
	c.sendProgress(ch, ProgressEvent{
		Type:      "done",
		Message:   "导入完成",
		Data:      report,
		Timestamp: time.Now(),
	})
}

// sendError 发送错误事件
func (c *Coordinator) sendError(ch chan ProgressEvent, err error) {
	c.sendProgress(ch, ProgressEvent{
		Type:      "error",
		Message:   err.Error(),
		Timestamp: time.Now(),
	})
}

// sendProgress 发送进度事件
func (c *Coordinator) sendProgress(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
		// 通道已满，丢弃事件
	}
}
