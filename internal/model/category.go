package model

// Category 规范品名（全局固定十类）
type Category string

const (
	CategoryWhite           Category = "white powder"             // 白色粉末
	CategoryWhiteSweet      Category = "white powder sweet"       // 白色粉末甜味
	CategoryWhiteSkin       Category = "white powder white-skin"  // 白色粉末（白皮）
	CategoryGoldenGrade1    Category = "golden powder grade 1"    // 金黄色粉末1号
	CategoryGoldenGrade2    Category = "golden powder grade 2"    // 金黄色粉末2号
	CategoryDarkYellow      Category = "dark yellow powder"       // 深黄色粉末
	CategoryDarkYellowSweet Category = "dark yellow powder sweet" // 深黄色粉末甜味
	CategoryLightYellow     Category = "light yellow powder"      // 浅黄色粉末
	CategoryBrownGrade1     Category = "brown grade 1"            // 棕色1号
	CategoryBrownGrade2     Category = "brown grade 2"            // 棕色2号
)

// CategoryLegacyBrownGrade0 旧品名：棕色0号已并入棕色2号，归一后统一替换
const CategoryLegacyBrownGrade0 Category = "brown grade 0"

// PreferredOrder 汇总表与日历的固定展示顺序（顺序本身是业务约定，不可重排）
var PreferredOrder = []Category{
	CategoryWhite,
	CategoryWhiteSweet,
	CategoryWhiteSkin,
	CategoryGoldenGrade1,
	CategoryGoldenGrade2,
	CategoryDarkYellow,
	CategoryDarkYellowSweet,
	CategoryLightYellow,
	CategoryBrownGrade1,
	CategoryBrownGrade2,
}

// categoryOrder 品名 → 展示顺序下标
var categoryOrder = func() map[Category]int {
	m := make(map[Category]int, len(PreferredOrder))
	for i, c := range PreferredOrder {
		m[c] = i
	}
	return m
}()

// IsCanonical 是否属于规范十类
func (c Category) IsCanonical() bool {
	_, ok := categoryOrder[c]
	return ok
}

// OrderIndex 展示顺序下标；非规范品名排在所有规范品名之后
func (c Category) OrderIndex() int {
	if i, ok := categoryOrder[c]; ok {
		return i
	}
	return len(PreferredOrder)
}
