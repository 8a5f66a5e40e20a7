package container

import (
	"sync"

	"safetrack-http-service/config"
	"safetrack-http-service/internal/i18n"
	"safetrack-http-service/services"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService services.InterfaceJWTService
	translator *i18n.Translator

	// 数据存储服务
	redisService *services.RedisService

	// 业务服务
	studentService services.InterfaceStudentService
	alertService   services.InterfaceAlertService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器。redisClient 可以为nil，
// 此时警报缓存被禁用，所有读写直接走数据库
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)
	c.translator = i18n.NewTranslator()

	// 初始化Redis服务（仅当提供了客户端时）
	if c.redis != nil {
		c.redisService = services.NewRedisService(c.config, c.redis)
	}

	// 初始化业务服务
	c.studentService = services.NewStudentService(c.db, c.config)
	c.alertService = services.NewAlertService(c.db, c.config, c.redisService)
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig 获取应用配置
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// GetJWTService 获取JWT服务
func (c *ServiceContainer) GetJWTService() services.InterfaceJWTService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jwtService
}

// GetTranslator 获取双语翻译器
func (c *ServiceContainer) GetTranslator() *i18n.Translator {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.translator
}

// GetStudentService 获取学生账户服务
func (c *ServiceContainer) GetStudentService() services.InterfaceStudentService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.studentService
}

// GetAlertService 获取紧急警报服务
func (c *ServiceContainer) GetAlertService() services.InterfaceAlertService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.alertService
}

// GetRedisService 获取Redis服务（可能为nil）
func (c *ServiceContainer) GetRedisService() *services.RedisService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redisService
}
