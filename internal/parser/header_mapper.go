package parser

// 逻辑列名，两张输入表的规范表头
const (
	FieldCategoryText = "category_text"
	FieldActualQty    = "actual_quantity"
	FieldRecordedQty  = "recorded_quantity"
	FieldNote         = "note"

	FieldSeq               = "sequence_id"
	FieldShipDate          = "ship_date"
	FieldLoadAddress       = "load_address"
	FieldReceiveAddress    = "receive_address"
	FieldWarehouseCustomer = "warehouse_or_customer"
	FieldProductText       = "product_text"
	FieldContainerNo       = "container_seal_id"
	FieldETAPort           = "eta_port"
	FieldETADest           = "eta_destination"
	FieldCarrier           = "carrier"
)

// columnAlias 逻辑列的表头别名，英文规范名与原始中文表头都可匹配。
// 列表按优先级排列，一个表头只认领第一个命中的逻辑列。
type columnAlias struct {
	field   string
	pattern string
}

var stockAliases = []columnAlias{
	{FieldCategoryText, `^category(_?text)?$|^品名$|产品`},
	{FieldActualQty, `^actual(_?quantity|_?stock)?$|实际库存|实际数量`},
	{FieldRecordedQty, `^recorded(_?quantity|_?stock)?$|账面|登记数量|系统库存`},
	{FieldNote, `^notes?$|^remarks?$|备注`},
}

var trackingAliases = []columnAlias{
	{FieldSeq, `^seq(uence)?(_?id|_?no)?$|^no\.?$|序号|编号`},
	{FieldShipDate, `^ship(ping)?_?date$|^load(ing)?_?date$|装货日期|装柜日期|发货日期`},
	{FieldLoadAddress, `^load(ing)?_?(address|addr|place)$|装货地[址点]`},
	{FieldReceiveAddress, `^receive_?(address|addr)$|^delivery_?address$|收货地[址点]`},
	{FieldWarehouseCustomer, `^warehouse(_?or_?customer)?$|^customer$|仓库/?客户|仓库客服`},
	{FieldProductText, `^product(_?text|_?desc(ription)?)?$|^goods$|^cargo$|品名|产品|货物`},
	{FieldContainerNo, `^container(_?seal)?(_?id|_?no)?$|^ctn_?no$|柜号|箱号|封号`},
	{FieldETAPort, `^eta_?port$|^port_?eta$|到港日期?|预计到港`},
	{FieldETADest, `^eta_?dest(ination)?$|^warehouse_?eta$|预计到[仓货]|到仓日期?`},
	{FieldCarrier, `^carriers?$|^shipping_?(line|company)$|船公司|承运|货代`},
}

var stockRequired = []string{
	FieldCategoryText,
	FieldActualQty,
	FieldRecordedQty,
	FieldNote,
}

var trackingRequired = []string{
	FieldSeq,
	FieldShipDate,
	FieldLoadAddress,
	FieldReceiveAddress,
	FieldWarehouseCustomer,
	FieldProductText,
	FieldContainerNo,
	FieldETAPort,
	FieldETADest,
	FieldCarrier,
}

// HeaderMapper 表头映射器
type HeaderMapper struct{}

// NewHeaderMapper 创建表头映射器
func NewHeaderMapper() *HeaderMapper {
	return &HeaderMapper{}
}

// MapStock 映射库存表表头
func (m *HeaderMapper) MapStock(columnNames []string) map[int]FieldMapping {
	return m.mapColumns(columnNames, stockAliases)
}

// MapTracking 映射跟踪表表头
func (m *HeaderMapper) MapTracking(columnNames []string) map[int]FieldMapping {
	return m.mapColumns(columnNames, trackingAliases)
}

// mapColumns 按别名表映射列名。每个逻辑列只绑定最先出现的列，
// 多余的列原样忽略。
func (m *HeaderMapper) mapColumns(columnNames []string, aliases []columnAlias) map[int]FieldMapping {
	mappings := make(map[int]FieldMapping)
	claimed := make(map[string]bool)

	for idx, raw := range columnNames {
		col := NormalizeColumnName(raw)
		if col == "" {
			continue
		}
		for _, alias := range aliases {
			if claimed[alias.field] {
				continue
			}
			if MatchPattern(col, alias.pattern) {
				mappings[idx] = FieldMapping{
					ColumnIndex: idx,
					ColumnName:  col,
					Field:       alias.field,
				}
				claimed[alias.field] = true
				break
			}
		}
	}

	return mappings
}

// missingFields 返回 required 中未被映射到的逻辑列
func missingFields(mappings map[int]FieldMapping, required []string) []string {
	mapped := make(map[string]bool, len(mappings))
	for _, m := range mappings {
		mapped[m.Field] = true
	}

	var missing []string
	for _, field := range required {
		if !mapped[field] {
			missing = append(missing, field)
		}
	}
	return missing
}
