package model

import "time"

// StockRecord 库存表一行（按原始台账原样保留，归一在计算时进行）
type StockRecord struct {
	RowNo        int     `json:"rowNo"`
	CategoryText string  `json:"categoryText"`
	ActualQty    float64 `json:"actualQty"`
	RecordedQty  float64 `json:"recordedQty"`
	Note         string  `json:"note"`
}

// TrackingRecord 在途跟踪表一行，日期零值表示原表为空
type TrackingRecord struct {
	RowNo             int       `json:"rowNo"`
	Seq               string    `json:"seq"`
	ShipDate          time.Time `json:"shipDate"`
	LoadAddress       string    `json:"loadAddress"`
	ReceiveAddress    string    `json:"receiveAddress"`
	WarehouseCustomer string    `json:"warehouseCustomer"`
	ProductText       string    `json:"productText"`
	ContainerNo       string    `json:"containerNo"`
	ETAPort           time.Time `json:"etaPort"`
	ETADest           time.Time `json:"etaDest"`
	Carrier           string    `json:"carrier"`
}

// ShipmentItem 从跟踪行拆出的单品条目，一行复合品名产生多条
type ShipmentItem struct {
	ContainerNo       string    `json:"containerNo"`
	RawText           string    `json:"rawText"`
	Category          Category  `json:"category"`
	QtyTons           float64   `json:"qtyTons"`
	ShipDate          time.Time `json:"shipDate"`
	ETAPort           time.Time `json:"etaPort"`
	ETADest           time.Time `json:"etaDest"`
	WarehouseCustomer string    `json:"warehouseCustomer"`
	Carrier           string    `json:"carrier"`
	SourceRowNo       int       `json:"sourceRowNo"`
}

// EffectiveArrival 有效到达日：优先到仓日，缺失时退回到港日
func (it ShipmentItem) EffectiveArrival() (time.Time, bool) {
	if !it.ETADest.IsZero() {
		return DateOnly(it.ETADest), true
	}
	if !it.ETAPort.IsZero() {
		return DateOnly(it.ETAPort), true
	}
	return time.Time{}, false
}

// InTransit 是否在途：到仓日未知视为仍在途，已知则按不早于今天判断
func (it ShipmentItem) InTransit(today time.Time) bool {
	if it.ETADest.IsZero() {
		return true
	}
	return !DateOnly(it.ETADest).Before(DateOnly(today))
}

// ArrivesBy 是否在截止日（含当天）前到达，按有效到达日判断
func (it ShipmentItem) ArrivesBy(cutoff time.Time) bool {
	at, ok := it.EffectiveArrival()
	if !ok {
		return false
	}
	return !at.After(DateOnly(cutoff))
}
