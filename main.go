// @title           SafeTrack API
// @version         1.0
// @description     Student Safety and Emergency Support System

// @contact.name   API Support
// @contact.email  support@safetrack.com

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"

	"safetrack-http-service/config"
	"safetrack-http-service/models"
	"safetrack-http-service/routes"
	"safetrack-http-service/utils"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	// 初始化日志配置
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		config.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，环境变量可能已通过其他方式设置
	} else {
		config.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 连接数据库
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("无法连接数据库: %v", err)
	}

	// 自动迁移，只会添加新列和新表
	if err := autoMigrate(db); err != nil {
		log.Fatalf("自动迁移失败: %v", err)
	}

	// 确保系统中有管理员账户
	ensureAdminExists(db, cfg)

	// 初始化Redis客户端（警报缓存，连接失败时禁用缓存）
	redisClient := initRedis(cfg)

	// 初始化路由
	r := routes.SetupRouter(db, cfg, redisClient)

	// 启动服务器
	config.Info("服务器启动在: http://localhost:%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		config.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// initDB 初始化数据库连接
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// 重复键错误转换为 gorm.ErrDuplicatedKey，学号唯一性由索引兜底
		TranslateError: true,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	config.Info("Database connection established")
	return db, nil
}

// autoMigrate 自动迁移所有模型
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Student{},
		&models.Alert{},
	)
}

// initRedis 初始化Redis客户端，Ping失败时返回nil以禁用缓存
func initRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	if err := client.Ping(client.Context()).Err(); err != nil {
		config.Warning("Redis连接测试失败: %v，将不使用警报缓存", err)
		return nil
	}
	return client
}

// ensureAdminExists 确保系统中至少有一个管理员账户
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.Student{}).Where("is_admin = ?", true).Count(&count)

	// 如果没有管理员，则创建一个默认管理员
	if count == 0 {
		hashedPassword, err := utils.HashPassword(cfg.DefaultAdminPassword)
		if err != nil {
			log.Printf("无法为默认管理员哈希密码: %v", err)
			return
		}

		admin := models.Student{
			Name:         "System Administrator",
			StudentID:    "admin",
			Email:        "admin@safetrack.com",
			PasswordHash: hashedPassword,
			BloodGroup:   "Unknown",
			Location:     "Admin Office",
			IsAdmin:      true,
		}

		if err := db.Create(&admin).Error; err != nil {
			log.Printf("无法创建默认管理员: %v", err)
			return
		}

		config.Info("已创建默认管理员账户 (学号: admin)")
	}
}
