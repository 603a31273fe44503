package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kakujikakuji/jm-warehouse-app/internal/model"
)

// GetConfig 获取业务默认值
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Settings())
}

// UpdateConfig 更新业务默认值，未出现的字段保持原值
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var patch model.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	if patch.DefaultWindowDays != nil {
		if d := *patch.DefaultWindowDays; d < model.MinWindowDays || d > model.MaxWindowDays {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("defaultWindowDays 必须在 %d 到 %d 之间", model.MinWindowDays, model.MaxWindowDays),
			})
			return
		}
	}
	if patch.NoteJoinLimit != nil && *patch.NoteJoinLimit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "noteJoinLimit 不能为负数"})
		return
	}

	c.JSON(http.StatusOK, h.store.UpdateSettings(patch))
}
