package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct{}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController() *HealthCheckController {
	return &HealthCheckController{}
}

// Status 健康检查端点
// @Summary      API健康状态
// @Description  返回服务运行状态和当前时间戳
// @Tags         Status
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /status [get]
func (h *HealthCheckController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "SafeTrack API is running",
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
