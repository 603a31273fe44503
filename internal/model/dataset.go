package model

import "time"

// DropReason 拆分条目被丢弃的原因
type DropReason string

const (
	DropNoQuantity   DropReason = "no_quantity"  // 片段里找不到吨数
	DropUnclassified DropReason = "unclassified" // 片段无法归入规范品名
	DropEmptyText    DropReason = "empty_text"   // 产品描述为空
)

// DroppedPart 被静默丢弃的片段，留档供导入报告展示
type DroppedPart struct {
	SourceRowNo int        `json:"sourceRowNo"`
	ContainerNo string     `json:"containerNo"`
	Text        string     `json:"text"`
	Reason      DropReason `json:"reason"`
}

// Dataset 一次导入形成的数据集，后续计算全部由它派生
type Dataset struct {
	ID           string           `json:"id"`
	ImportedAt   time.Time        `json:"importedAt"`
	StockFile    string           `json:"stockFile"`
	TrackingFile string           `json:"trackingFile"`
	Keyword      string           `json:"keyword"`
	Stock        []StockRecord    `json:"-"`
	Tracking     []TrackingRecord `json:"-"`
	Dropped      []DroppedPart    `json:"-"`
}

// DatasetMeta 数据集概要，列表接口返回用，不携带行数据
type DatasetMeta struct {
	ID           string    `json:"id"`
	ImportedAt   time.Time `json:"importedAt"`
	StockFile    string    `json:"stockFile"`
	TrackingFile string    `json:"trackingFile"`
	Keyword      string    `json:"keyword"`
	StockRows    int       `json:"stockRows"`
	TrackingRows int       `json:"trackingRows"`
	DroppedParts int       `json:"droppedParts"`
}

// Meta 提取数据集概要
func (d *Dataset) Meta() DatasetMeta {
	return DatasetMeta{
		ID:           d.ID,
		ImportedAt:   d.ImportedAt,
		StockFile:    d.StockFile,
		TrackingFile: d.TrackingFile,
		Keyword:      d.Keyword,
		StockRows:    len(d.Stock),
		TrackingRows: len(d.Tracking),
		DroppedParts: len(d.Dropped),
	}
}
