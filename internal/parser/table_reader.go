package parser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readTable 读取一张输入表的全部行。工作簿按识别结果挑选目标类型
// 的工作表，CSV 视为单表。返回来源名（工作表名或文件名）与原始行。
func readTable(r io.Reader, filename string, want TableKind) (string, [][]string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		rows, err := readCSVRows(r)
		if err != nil {
			return "", nil, fmt.Errorf("读取 CSV 失败: %w", err)
		}
		return filepath.Base(filename), rows, nil
	}
	return readWorkbookSheet(r, filename, want)
}

// readWorkbookSheet 打开工作簿并挑选目标类型的工作表。没有命中
// 识别时退回第一张非空工作表，由后续表头校验给出缺列明细。
func readWorkbookSheet(r io.Reader, filename string, want TableKind) (string, [][]string, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return "", nil, fmt.Errorf("打开工作簿失败: %w", err)
	}
	defer file.Close()

	recognizer := NewTableRecognizer()

	var fallbackName string
	var fallbackRows [][]string
	for _, sheetName := range file.GetSheetList() {
		rows, err := file.GetRows(sheetName)
		if err != nil || len(rows) == 0 {
			continue
		}
		if fallbackRows == nil {
			fallbackName, fallbackRows = sheetName, rows
		}
		if result := recognizer.Recognize(sheetName, rows[0]); result.Kind == want {
			return sheetName, rows, nil
		}
	}

	if fallbackRows == nil {
		return "", nil, fmt.Errorf("工作簿 %s 没有可用的工作表", filepath.Base(filename))
	}
	return fallbackName, fallbackRows, nil
}

// readCSVRows 读取 CSV 全部行，容忍 UTF-8 BOM 与列数不齐
func readCSVRows(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr.ReadAll()
}
