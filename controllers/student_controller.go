package controllers

import (
	"safetrack-http-service/internal/error/response"
	"safetrack-http-service/middleware"
	"safetrack-http-service/services"
	"safetrack-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// StudentController 处理学生档案相关的请求
type StudentController struct {
	BaseControllerImpl
}

// NewStudentController 创建一个新的学生档案控制器
func (f *ControllerFactory) NewStudentController(ctx *gin.Context) *StudentController {
	return &StudentController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// GetProfile 获取当前登录学生的档案
// @Summary      Get own profile
// @Description  Return the authenticated student's profile
// @Tags         Students
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /students/me [get]
func (c *StudentController) GetProfile() {
	student, ok := middleware.CurrentStudent(c.Context)
	if !ok {
		response.Unauthorized(c.Context, "")
		return
	}

	response.Success(c.Context, student)
}

// UpdateProfile 部分更新当前登录学生的档案，仅应用请求中提供的字段
// @Summary      Update own profile
// @Description  Apply the provided fields to the authenticated student's profile
// @Tags         Students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        lang query string false "Response language (en|bn)"
// @Param        request body services.StudentUpdate true "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /students/me [put]
func (c *StudentController) UpdateProfile() {
	student, ok := middleware.CurrentStudent(c.Context)
	if !ok {
		response.Unauthorized(c.Context, "")
		return
	}

	var update services.StudentUpdate
	if err := c.Context.ShouldBindJSON(&update); err != nil {
		response.ParamError(c.Context, "Invalid request parameters: "+err.Error())
		return
	}

	updated, err := c.Container.GetStudentService().UpdateProfile(student.StudentID, &update)
	if err != nil {
		response.ServerError(c.Context)
		return
	}

	response.SuccessWithMessage(c.Context, c.T("profile_updated"), updated)
}

// GetStudents 获取所有学生账户（仅管理员）
// @Summary      List all students
// @Description  Return all registered accounts without password hashes (admin only)
// @Tags         Students
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /students [get]
func (c *StudentController) GetStudents() {
	students, err := c.Container.GetStudentService().GetAllStudents()
	if err != nil {
		response.ServerError(c.Context)
		return
	}

	response.Success(c.Context, gin.H{
		"students": students,
		"total":    len(students),
	})
}

// HandleStudentFunc 返回一个处理学生档案请求的Gin处理函数
func HandleStudentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewStudentController(ctx)

		switch method {
		case "getProfile":
			controller.GetProfile()
		case "updateProfile":
			controller.UpdateProfile()
		case "getStudents":
			controller.GetStudents()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}
