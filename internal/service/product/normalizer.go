package product

import (
	"regexp"
	"strings"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

// rule 归一规则：正则命中即得到规范品名
type rule struct {
	re  *regexp.Regexp
	cat model.Category
}

// rules 有序判定表，自上而下首个命中生效
// 顺序承载业务含义：细分款式（甜味/白皮/新配方/号数）必须排在同色兜底规则之前，不可重排
var rules = []rule{
	// 白色
	{regexp.MustCompile(`(?i)white powder.*(t-grade|sweet)|白色粉末.*(T|甜)`), model.CategoryWhiteSweet},
	{regexp.MustCompile(`(?i)white powder.*white[- ]?skin|白色粉末.*白皮`), model.CategoryWhiteSkin},
	{regexp.MustCompile(`(?i)white powder|白色粉末`), model.CategoryWhite},
	// 金黄色
	{regexp.MustCompile(`(?i)golden powder.*new[- ]?formula|金黄色粉末.*新配方`), model.CategoryGoldenGrade2},
	{regexp.MustCompile(`(?i)golden powder.*grade\s*1|金黄色粉末.*1号`), model.CategoryGoldenGrade1},
	{regexp.MustCompile(`(?i)golden powder.*grade\s*2|金黄色粉末.*2号`), model.CategoryGoldenGrade2},
	{regexp.MustCompile(`(?i)golden powder|金黄色粉末`), model.CategoryGoldenGrade1},
	// 深黄色
	{regexp.MustCompile(`(?i)dark yellow powder.*(t-grade|sweet)|深黄色粉末.*(T|甜)`), model.CategoryDarkYellowSweet},
	{regexp.MustCompile(`(?i)dark yellow powder|深黄色粉末`), model.CategoryDarkYellow},
	// 浅黄色
	{regexp.MustCompile(`(?i)light yellow powder|浅黄色粉末`), model.CategoryLightYellow},
	// 棕色号
	{regexp.MustCompile(`(?i)brown.*grade\s*1|棕色.*1号`), model.CategoryBrownGrade1},
	{regexp.MustCompile(`(?i)brown.*(grade\s*0|grade\s*2)|棕色.*(0号|2号)`), model.CategoryBrownGrade2},
}

// precleanRe 匹配“<品名>（白皮）25.5吨（装箱）”式的吨位尾注
// 只在吨位前已有文字描述时生效，前置吨位写法（"20 tons white powder"）原样保留
var precleanRe = regexp.MustCompile(`(?i)^(.*?[a-z\p{Han}].*?)(（白皮）|\(white-skin\))?\s*[0-9]+(\.[0-9]+)?\s*(吨|tons?\b|t\b).*$`)

// Preclean 剪掉吨位、装箱方式等尾注避免干扰规则匹配，白皮标记保留
func Preclean(raw string) string {
	return precleanRe.ReplaceAllString(strings.TrimSpace(raw), "${1}${2}")
}

// Normalize 把各种写法归一到规范品名，匹配不到时 ok 为 false
// 调用方应把 false 当作“剔除该条”处理，而不是错误
func Normalize(raw string) (model.Category, bool) {
	s := Preclean(raw)
	if s == "" {
		return "", false
	}
	for _, r := range rules {
		if r.re.MatchString(s) {
			return r.cat, true
		}
	}
	return "", false
}

// CanonicalizeStock 库存表品名归一：匹配不到时保留原文，旧品名棕色0号并入2号
func CanonicalizeStock(raw string) model.Category {
	if c, ok := Normalize(raw); ok {
		return c
	}
	c := model.Category(strings.TrimSpace(raw))
	if c == model.CategoryLegacyBrownGrade0 {
		return model.CategoryBrownGrade2
	}
	return c
}
