package parser

import (
	"fmt"
	"strings"
	"time"
)

// TableKind 输入表类型
type TableKind string

const (
	TableKindStock    TableKind = "stock"
	TableKindTracking TableKind = "tracking"
	TableKindUnknown  TableKind = "unknown"
)

// FieldMapping 字段映射结果
type FieldMapping struct {
	ColumnIndex int    `json:"columnIndex"` // 表格列索引
	ColumnName  string `json:"columnName"`  // 规范化后的列名
	Field       string `json:"field"`       // 逻辑列名
}

// TableRecognitionResult 工作表识别结果
type TableRecognitionResult struct {
	SheetName  string    `json:"sheetName"`
	Kind       TableKind `json:"kind"`
	Confidence float64   `json:"confidence"` // 置信度 0-1
}

// SchemaError 必需列缺失。这是唯一跨出解析层的致命错误，
// 其余异常都在行级降级处理。
type SchemaError struct {
	Kind    TableKind
	Source  string   // 工作表名或文件名
	Missing []string // 缺失的逻辑列名
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s表 %q 缺少必需列: %s", kindLabel(e.Kind), e.Source, strings.Join(e.Missing, ", "))
}

func kindLabel(kind TableKind) string {
	switch kind {
	case TableKindStock:
		return "库存"
	case TableKindTracking:
		return "跟踪"
	default:
		return "未知"
	}
}

// ParseResult 单表解析结果
type ParseResult struct {
	Source       string        `json:"source"`
	Kind         TableKind     `json:"kind"`
	Status       string        `json:"status"` // imported/skipped/error
	ImportedRows int           `json:"importedRows"`
	SkippedRows  int           `json:"skippedRows"`
	Errors       []string      `json:"errors,omitempty"`
	Duration     time.Duration `json:"duration"`
}
