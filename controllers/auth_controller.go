package controllers

import (
	"errors"

	"safetrack-http-service/internal/error/code"
	"safetrack-http-service/internal/error/response"
	"safetrack-http-service/models"
	"safetrack-http-service/services"
	"safetrack-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// AuthController 处理注册和登录请求
type AuthController struct {
	BaseControllerImpl
}

// NewAuthController 创建一个新的认证控制器
func (f *ControllerFactory) NewAuthController(ctx *gin.Context) *AuthController {
	return &AuthController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// RegisterRequest 表示注册请求
type RegisterRequest struct {
	Name              string                      `json:"name" binding:"required" example:"Ayesha Rahman"`
	StudentID         string                      `json:"student_id" binding:"required" example:"s1"`
	Email             string                      `json:"email" binding:"required,email" example:"ayesha@example.com"`
	Password          string                      `json:"password" binding:"required,min=6" example:"p1secret"`
	BloodGroup        string                      `json:"blood_group" binding:"required" example:"O+"`
	EmergencyContacts models.EmergencyContactList `json:"emergency_contacts"`
	Location          string                      `json:"location" example:"Dhanmondi, Dhaka"`
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	StudentID string `json:"student_id" binding:"required" example:"s1"`
	Password  string `json:"password" binding:"required" example:"p1secret"`
}

// Register 处理学生注册
// @Summary      Student registration
// @Description  Register a new student account with profile and emergency contacts
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        lang query string false "Response language (en|bn)"
// @Param        request body RegisterRequest true "Registration parameters"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "Invalid request parameters: "+err.Error())
		return
	}

	student := &models.Student{
		Name:              req.Name,
		StudentID:         req.StudentID,
		Email:             req.Email,
		BloodGroup:        req.BloodGroup,
		EmergencyContacts: req.EmergencyContacts,
		Location:          req.Location,
	}

	if err := c.Container.GetStudentService().Register(student, req.Password); err != nil {
		if errors.Is(err, services.ErrStudentExists) {
			response.FailWithMessage(c.Context, code.ErrStudentAlreadyExist, c.T("user_exists"), nil)
			return
		}
		response.ServerError(c.Context)
		return
	}

	response.SuccessWithMessage(c.Context, c.T("user_registered"), gin.H{
		"student_id": student.StudentID,
	})
}

// Login 处理学生登录
// @Summary      Student login
// @Description  Verify credentials and return a bearer token valid for 24 hours
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        lang query string false "Response language (en|bn)"
// @Param        request body LoginRequest true "Login parameters"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "Invalid request parameters: "+err.Error())
		return
	}

	student, err := c.Container.GetStudentService().Authenticate(req.StudentID, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.FailWithMessage(c.Context, code.ErrInvalidCredentials, c.T("invalid_credentials"), nil)
			return
		}
		response.ServerError(c.Context)
		return
	}

	token, err := c.Container.GetJWTService().GenerateToken(student.StudentID)
	if err != nil {
		response.ServerError(c.Context)
		return
	}

	response.SuccessWithMessage(c.Context, c.T("login_successful"), gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         student,
	})
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewAuthController(ctx)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}
