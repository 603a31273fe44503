package model

// 日历窗口天数的合法区间与默认值
const (
	MinWindowDays     = 7
	MaxWindowDays     = 60
	DefaultWindowDays = 30
)

// DefaultNoteJoinLimit 汇总备注拼接的默认截断长度（按字符计）
const DefaultNoteJoinLimit = 200

// DefaultLocationKeyword 默认收货地关键词
const DefaultLocationKeyword = "江门"

// Settings 运行期业务参数，导入与计算取这里的默认值
type Settings struct {
	LocationKeyword   string `json:"locationKeyword"`
	DefaultWindowDays int    `json:"defaultWindowDays"`
	NoteJoinLimit     int    `json:"noteJoinLimit"`
}

// SettingsPatch 业务参数的部分更新，nil 字段表示不修改
type SettingsPatch struct {
	LocationKeyword   *string `json:"locationKeyword"`
	DefaultWindowDays *int    `json:"defaultWindowDays"`
	NoteJoinLimit     *int    `json:"noteJoinLimit"`
}

// DefaultSettings 默认业务参数
func DefaultSettings() Settings {
	return Settings{
		LocationKeyword:   DefaultLocationKeyword,
		DefaultWindowDays: DefaultWindowDays,
		NoteJoinLimit:     DefaultNoteJoinLimit,
	}
}

// ClampWindowDays 把窗口天数收敛到合法区间，非正值取默认
func ClampWindowDays(days int) int {
	if days <= 0 {
		return DefaultWindowDays
	}
	if days < MinWindowDays {
		return MinWindowDays
	}
	if days > MaxWindowDays {
		return MaxWindowDays
	}
	return days
}
