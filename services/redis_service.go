package services

import (
	"context"
	"encoding/json"
	"time"

	"safetrack-http-service/config"
	"safetrack-http-service/models"

	"github.com/go-redis/redis/v8"
)

// 活跃警报列表的缓存键和过期时间
const (
	activeAlertsCacheKey = "alerts:active"
	activeAlertsCacheTTL = 30 * time.Second
)

// RedisService handles Redis operations. 缓存是尽力而为的：
// Redis 不可用时所有方法安静降级，读写直接走数据库
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config, client *redis.Client) *RedisService {
	if client == nil {
		client = redis.NewClient(&redis.Options{
			Addr: cfg.GetRedisAddr(),
			DB:   cfg.RedisDB,
		})
	}

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// CacheActiveAlerts 缓存活跃警报列表，短TTL
func (s *RedisService) CacheActiveAlerts(alerts []models.Alert) {
	if s == nil || s.Client == nil {
		return
	}
	// 缓存写入失败直接忽略
	_ = s.Set(activeAlertsCacheKey, alerts, activeAlertsCacheTTL)
}

// GetCachedActiveAlerts 尝试从缓存读取活跃警报列表
func (s *RedisService) GetCachedActiveAlerts() ([]models.Alert, bool) {
	if s == nil || s.Client == nil {
		return nil, false
	}

	var alerts []models.Alert
	if err := s.Get(activeAlertsCacheKey, &alerts); err != nil {
		return nil, false
	}
	return alerts, true
}

// InvalidateActiveAlerts 使活跃警报缓存失效（警报创建或状态变更后调用）
func (s *RedisService) InvalidateActiveAlerts() {
	if s == nil || s.Client == nil {
		return
	}
	_ = s.Delete(activeAlertsCacheKey)
}
