package calendar

import (
	"sort"
	"strings"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

// palette 事件条配色，按船公司字典序循环取用
var palette = [...]string{
	"#FAD7A0", "#AED6F1", "#A9DFBF", "#F5B7B1", "#D7BDE2",
	"#F9E79F", "#85C1E9", "#ABEBC6", "#F8C471", "#F5CBA7",
}

// defaultBarColor 未知船公司的中性底色，不占调色板槽位
const defaultBarColor = "#e8e8e8"

// CarrierColors 一次计算内固定的船公司配色表
type CarrierColors struct {
	colors map[string]string
	names  []string
}

// AssignColors 收集条目里的非空船公司名，按字典序分配调色板颜色
// 同一批船公司无论条目顺序如何，得到的配色一致
func AssignColors(items []model.ShipmentItem) *CarrierColors {
	set := make(map[string]bool)
	for _, it := range items {
		if strings.TrimSpace(it.Carrier) != "" {
			set[it.Carrier] = true
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	colors := make(map[string]string, len(names))
	for i, name := range names {
		colors[name] = palette[i%len(palette)]
	}
	return &CarrierColors{colors: colors, names: names}
}

// ColorFor 查询船公司颜色，未知或空名返回中性色
func (cc *CarrierColors) ColorFor(carrier string) string {
	if c, ok := cc.colors[carrier]; ok {
		return c
	}
	return defaultBarColor
}

// Legend 图例，顺序与配色分配一致
func (cc *CarrierColors) Legend() []model.LegendEntry {
	entries := make([]model.LegendEntry, 0, len(cc.names))
	for _, name := range cc.names {
		entries = append(entries, model.LegendEntry{Carrier: name, Color: cc.colors[name]})
	}
	return entries
}
