package middleware

import (
	"strings"

	"safetrack-http-service/internal/error/response"
	"safetrack-http-service/models"
	"safetrack-http-service/services"

	"github.com/gin-gonic/gin"
)

// 当前登录账户在Gin上下文中的键
const currentStudentKey = "currentStudent"

// 角色常量，用于统一的授权判定
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// Authentication 统一的认证中间件：验证令牌、解析学号、加载账户记录。
// 令牌缺失/格式错误/过期，或学号已无法解析出账户时返回401
func Authentication(jwtService services.InterfaceJWTService, studentService services.InterfaceStudentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		tokenString := extractToken(authHeader)
		studentID, err := jwtService.ExtractStudentID(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}

		student, err := studentService.GetByStudentID(studentID)
		if err != nil {
			response.Unauthorized(c, "Invalid token: account not found")
			c.Abort()
			return
		}

		c.Set(currentStudentKey, student)
		c.Next()
	}
}

// AdminOnly 管理员专用中间件，必须在 Authentication 之后使用
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		student, ok := CurrentStudent(c)
		if !ok {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !Authorize(student, RoleAdmin) {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// Authorize 是统一的授权判定：给定账户和所需角色，返回是否放行
func Authorize(student *models.Student, requiredRole string) bool {
	if student == nil {
		return false
	}
	switch requiredRole {
	case RoleAdmin:
		return student.IsAdmin
	case RoleStudent:
		return true
	default:
		return false
	}
}

// CurrentStudent 从Gin上下文中取出已认证的账户记录
func CurrentStudent(c *gin.Context) (*models.Student, bool) {
	value, exists := c.Get(currentStudentKey)
	if !exists {
		return nil, false
	}
	student, ok := value.(*models.Student)
	return student, ok
}
