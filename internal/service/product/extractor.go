package product

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

// partSep 复合品名分隔符，兼容全角加号与逗号
var partSep = regexp.MustCompile(`[+＋,，]`)

// qtyRe 吨位 token：数字 + 吨/t/ton(s)
var qtyRe = regexp.MustCompile(`(?i)([0-9]+(\.[0-9]+)?)\s*(吨|tons?\b|t\b)`)

// SplitItems 把一行跟踪记录里的一柜多品拆成多条单品条目
// 无吨位或归一失败的片段丢弃并记入 dropped；整行拆不出条目不是错误
func SplitItems(rec model.TrackingRecord) (items []model.ShipmentItem, dropped []model.DroppedPart) {
	text := strings.TrimSpace(rec.ProductText)
	if text == "" {
		dropped = append(dropped, model.DroppedPart{
			SourceRowNo: rec.RowNo,
			ContainerNo: rec.ContainerNo,
			Reason:      model.DropEmptyText,
		})
		return nil, dropped
	}
	for _, part := range partSep.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := qtyRe.FindStringSubmatch(part)
		if m == nil {
			dropped = append(dropped, model.DroppedPart{
				SourceRowNo: rec.RowNo,
				ContainerNo: rec.ContainerNo,
				Text:        part,
				Reason:      model.DropNoQuantity,
			})
			continue
		}
		qty, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			dropped = append(dropped, model.DroppedPart{
				SourceRowNo: rec.RowNo,
				ContainerNo: rec.ContainerNo,
				Text:        part,
				Reason:      model.DropNoQuantity,
			})
			continue
		}
		cat, ok := Normalize(part)
		if !ok {
			dropped = append(dropped, model.DroppedPart{
				SourceRowNo: rec.RowNo,
				ContainerNo: rec.ContainerNo,
				Text:        part,
				Reason:      model.DropUnclassified,
			})
			continue
		}
		items = append(items, model.ShipmentItem{
			ContainerNo:       rec.ContainerNo,
			RawText:           part,
			Category:          cat,
			QtyTons:           qty,
			ShipDate:          rec.ShipDate,
			ETAPort:           rec.ETAPort,
			ETADest:           rec.ETADest,
			WarehouseCustomer: rec.WarehouseCustomer,
			Carrier:           rec.Carrier,
			SourceRowNo:       rec.RowNo,
		})
	}
	return items, dropped
}

// ExtractAll 逐行拆分全部跟踪记录，顺序与输入一致
func ExtractAll(recs []model.TrackingRecord) ([]model.ShipmentItem, []model.DroppedPart) {
	var items []model.ShipmentItem
	var dropped []model.DroppedPart
	for _, rec := range recs {
		its, drs := SplitItems(rec)
		items = append(items, its...)
		dropped = append(dropped, drs...)
	}
	return items, dropped
}
