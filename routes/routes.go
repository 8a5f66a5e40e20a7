package routes

import (
	"safetrack-http-service/config"
	"safetrack-http-service/controllers"
	"safetrack-http-service/middleware"
	"safetrack-http-service/services/container"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件，允许的来源由配置决定
	r.Use(corsMiddleware(cfg))
	// 设置正确的Content-Type，确保UTF-8编码（孟加拉语消息）
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 响应语言选择
	r.Use(middleware.Language())

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// corsMiddleware 根据配置的来源列表设置CORS响应头
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowAll := false
	allowed := map[string]bool{}
	for _, origin := range cfg.CORSOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查
	healthController := controllers.NewHealthCheckController()
	api.GET("/status", healthController.Status)

	// 认证路由
	api.POST("/auth/register", controllers.HandleAuthFunc(container, "register"))
	api.POST("/auth/login", controllers.HandleAuthFunc(container, "login"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件：令牌验证 + 账户加载
	auth := api.Group("/")
	auth.Use(middleware.Authentication(container.GetJWTService(), container.GetStudentService()))

	// 学生档案路由
	auth.GET("/students/me", controllers.HandleStudentFunc(container, "getProfile"))
	auth.PUT("/students/me", controllers.HandleStudentFunc(container, "updateProfile"))

	// 警报路由
	auth.POST("/alerts", controllers.HandleAlertFunc(container, "createAlert"))
	auth.GET("/alerts", controllers.HandleAlertFunc(container, "getAlerts"))

	// 管理员专用路由
	admin := auth.Group("/")
	admin.Use(middleware.AdminOnly())
	admin.GET("/students", controllers.HandleStudentFunc(container, "getStudents"))
	admin.GET("/alerts/active", controllers.HandleAlertFunc(container, "getActiveAlerts"))
	admin.PUT("/alerts/:id", controllers.HandleAlertFunc(container, "updateAlertStatus"))
}
