package store

import (
	"errors"
	"sync"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

// ErrNoDataset 尚未导入任何数据集
var ErrNoDataset = errors.New("尚未导入数据集")

// MemoryStore 内存数据存储。只保留最近一次导入的数据集与运行期
// 业务参数；汇总和日历每次从原始行重算，不缓存派生结果。
type MemoryStore struct {
	dataset  *model.Dataset
	settings model.Settings
	mu       sync.RWMutex
}

// NewMemoryStore 创建内存存储
func NewMemoryStore(settings model.Settings) *MemoryStore {
	return &MemoryStore{settings: settings}
}

// SetDataset 替换当前数据集
func (s *MemoryStore) SetDataset(dataset *model.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = dataset
}

// Dataset 获取当前数据集
func (s *MemoryStore) Dataset() (*model.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dataset == nil {
		return nil, ErrNoDataset
	}
	return s.dataset, nil
}

// Meta 当前数据集概要，第二个返回值表示是否已有数据
func (s *MemoryStore) Meta() (model.DatasetMeta, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dataset == nil {
		return model.DatasetMeta{}, false
	}
	return s.dataset.Meta(), true
}

// HasDataset 是否已导入数据
func (s *MemoryStore) HasDataset() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset != nil
}

// Settings 获取业务参数
func (s *MemoryStore) Settings() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings 应用部分更新并返回更新后的业务参数。
// 取值校验由调用方负责。
func (s *MemoryStore) UpdateSettings(patch model.SettingsPatch) model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.LocationKeyword != nil {
		s.settings.LocationKeyword = *patch.LocationKeyword
	}
	if patch.DefaultWindowDays != nil {
		s.settings.DefaultWindowDays = *patch.DefaultWindowDays
	}
	if patch.NoteJoinLimit != nil {
		s.settings.NoteJoinLimit = *patch.NoteJoinLimit
	}
	return s.settings
}
