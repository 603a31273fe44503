package product

import (
	"testing"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

// TestNormalizeCanonicalIdempotent 测试规范品名归一后保持不变
func TestNormalizeCanonicalIdempotent(t *testing.T) {
	for _, c := range model.PreferredOrder {
		got, ok := Normalize(string(c))
		if !ok {
			t.Errorf("Normalize(%q) ok = false, want true", c)
			continue
		}
		if got != c {
			t.Errorf("Normalize(%q) = %q, want %q", c, got, c)
		}
	}
}

// TestNormalizeVariants 测试各种写法归一到规范品名
func TestNormalizeVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.Category
		ok   bool
	}{
		{"甜味优先于白色兜底", "white powder sweet T-grade", model.CategoryWhiteSweet, true},
		{"大小写不敏感", "White Powder", model.CategoryWhite, true},
		{"中文白色兜底", "白色粉末优镁粉", model.CategoryWhite, true},
		{"中文白皮带吨位尾注", "白色粉末（白皮）25.5吨（装集装箱）", model.CategoryWhiteSkin, true},
		{"英文白皮带吨位尾注", "white powder (white-skin) 25 tons (bagged)", model.CategoryWhiteSkin, true},
		{"前置吨位不影响归一", "20 tons white powder", model.CategoryWhite, true},
		{"新配方归入金黄2号", "golden powder new formula", model.CategoryGoldenGrade2, true},
		{"中文新配方", "金黄色粉末优镁粉（新配方）", model.CategoryGoldenGrade2, true},
		{"金黄1号", "金黄色粉末优镁粉1号", model.CategoryGoldenGrade1, true},
		{"金黄2号", "金黄色粉末优镁粉2号", model.CategoryGoldenGrade2, true},
		{"金黄兜底归1号", "golden powder", model.CategoryGoldenGrade1, true},
		{"深黄甜味", "深黄色粉末甜味优镁粉", model.CategoryDarkYellowSweet, true},
		{"深黄兜底", "dark yellow powder", model.CategoryDarkYellow, true},
		{"浅黄", "light yellow powder", model.CategoryLightYellow, true},
		{"棕色1号", "棕色1号优镁粉", model.CategoryBrownGrade1, true},
		{"棕色2号", "brown grade 2", model.CategoryBrownGrade2, true},
		{"棕色0号并入2号", "brown grade 0", model.CategoryBrownGrade2, true},
		{"无法归一", "mystery cargo", "", false},
		{"空文本", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.raw)
			if ok != tt.ok {
				t.Fatalf("Normalize(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// TestPreclean 测试吨位尾注剪除
func TestPreclean(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"白皮尾注保留标记", "白色粉末（白皮）25.5吨（装集装箱）", "白色粉末（白皮）"},
		{"英文白皮尾注", "white powder (white-skin) 25 tons (bagged)", "white powder (white-skin)"},
		{"普通吨位尾注", "golden powder 30 tons bagged", "golden powder"},
		{"前置吨位不剪", "20 tons white powder", "20 tons white powder"},
		{"号数数字不当吨位", "棕色1号优镁粉", "棕色1号优镁粉"},
		{"无吨位原样返回", "浅黄色粉末优镁粉", "浅黄色粉末优镁粉"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preclean(tt.raw); got != tt.want {
				t.Errorf("Preclean(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// TestCanonicalizeStock 测试库存表品名归一的原文保留与旧品名修正
func TestCanonicalizeStock(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.Category
	}{
		{"规范写法直接归一", "白色粉末优镁粉", model.CategoryWhite},
		{"旧品名棕色0号", "棕色0号优镁粉", model.CategoryBrownGrade2},
		{"英文旧品名", "brown grade 0", model.CategoryBrownGrade2},
		{"匹配不到保留原文", "不知名货物A", model.Category("不知名货物A")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalizeStock(tt.raw); got != tt.want {
				t.Errorf("CanonicalizeStock(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
