package controllers

import (
	"errors"

	"safetrack-http-service/internal/error/code"
	"safetrack-http-service/internal/error/response"
	"safetrack-http-service/middleware"
	"safetrack-http-service/services"
	"safetrack-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// AlertController 处理紧急警报相关的请求
type AlertController struct {
	BaseControllerImpl
}

// NewAlertController 创建一个新的紧急警报控制器
func (f *ControllerFactory) NewAlertController(ctx *gin.Context) *AlertController {
	return &AlertController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// AlertCreateRequest 表示创建警报请求
type AlertCreateRequest struct {
	Message string `json:"message" example:"Need help near the main gate"`
}

// AlertUpdateRequest 表示警报状态更新请求
type AlertUpdateRequest struct {
	Status string `json:"status" binding:"required" example:"resolved"`
}

// CreateAlert 创建紧急警报，当前档案字段快照进警报
// @Summary      Trigger emergency alert
// @Description  Create an active alert carrying a snapshot of the caller's profile
// @Tags         Alerts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        lang query string false "Response language (en|bn)"
// @Param        request body AlertCreateRequest true "Alert parameters"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /alerts [post]
func (c *AlertController) CreateAlert() {
	student, ok := middleware.CurrentStudent(c.Context)
	if !ok {
		response.Unauthorized(c.Context, "")
		return
	}

	var req AlertCreateRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "Invalid request parameters: "+err.Error())
		return
	}

	alert, err := c.Container.GetAlertService().CreateAlert(student, req.Message)
	if err != nil {
		response.ServerError(c.Context)
		return
	}

	response.SuccessWithMessage(c.Context, c.T("alert_created"), gin.H{
		"alert_id": alert.ID,
	})
}

// GetAlerts 查询警报列表。非管理员只能看到自己的警报；
// 状态过滤默认为 active，显式传空的 status_filter 表示不过滤
// @Summary      List alerts
// @Description  List alerts newest first, scoped by role; admins see all accounts' alerts
// @Tags         Alerts
// @Produce      json
// @Security     BearerAuth
// @Param        status_filter query string false "Alert status filter (default active)"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /alerts [get]
func (c *AlertController) GetAlerts() {
	student, ok := middleware.CurrentStudent(c.Context)
	if !ok {
		response.Unauthorized(c.Context, "")
		return
	}

	statusFilter := c.Context.DefaultQuery("status_filter", "active")

	// 先应用状态过滤，再对非管理员追加所有者限制
	owner := ""
	if !student.IsAdmin {
		owner = student.StudentID
	}

	alerts, err := c.Container.GetAlertService().GetAlerts(statusFilter, owner)
	if err != nil {
		response.ServerError(c.Context)
		return
	}

	response.Success(c.Context, gin.H{
		"alerts": alerts,
		"total":  len(alerts),
	})
}

// GetActiveAlerts 获取所有活跃警报（仅管理员）
// @Summary      List all active alerts
// @Description  Admin dashboard view of every account's active alerts, newest first
// @Tags         Alerts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /alerts/active [get]
func (c *AlertController) GetActiveAlerts() {
	alerts, err := c.Container.GetAlertService().GetActiveAlerts()
	if err != nil {
		response.ServerError(c.Context)
		return
	}

	response.Success(c.Context, gin.H{
		"alerts": alerts,
		"total":  len(alerts),
	})
}

// UpdateAlertStatus 更新警报状态（仅管理员）。转换为 resolved 时
// 记录处理时间和处理人学号
// @Summary      Update alert status
// @Description  Resolve an alert; stamps resolved_at and the resolving admin's id
// @Tags         Alerts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Alert ID"
// @Param        request body AlertUpdateRequest true "Status update parameters"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /alerts/{id} [put]
func (c *AlertController) UpdateAlertStatus() {
	admin, ok := middleware.CurrentStudent(c.Context)
	if !ok {
		response.Unauthorized(c.Context, "")
		return
	}

	var req AlertUpdateRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "Invalid request parameters: "+err.Error())
		return
	}

	alertID := c.Context.Param("id")
	_, err := c.Container.GetAlertService().UpdateAlertStatus(alertID, req.Status, admin.StudentID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlertNotFound):
			response.Fail(c.Context, code.ErrAlertNotFound, nil)
		case errors.Is(err, services.ErrAlertStatusInvalid):
			response.Fail(c.Context, code.ErrAlertStatusInvalid, nil)
		default:
			response.ServerError(c.Context)
		}
		return
	}

	response.SuccessWithMessage(c.Context, c.T("alert_updated"), nil)
}

// HandleAlertFunc 返回一个处理警报请求的Gin处理函数
func HandleAlertFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewAlertController(ctx)

		switch method {
		case "createAlert":
			controller.CreateAlert()
		case "getAlerts":
			controller.GetAlerts()
		case "getActiveAlerts":
			controller.GetActiveAlerts()
		case "updateAlertStatus":
			controller.UpdateAlertStatus()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}
