package services

import (
	"errors"
	"time"

	"safetrack-http-service/config"
	"safetrack-http-service/models"

	"gorm.io/gorm"
)

// 警报相关的业务错误
var (
	ErrAlertNotFound      = errors.New("alert not found")
	ErrAlertStatusInvalid = errors.New("invalid alert status")
)

// InterfaceAlertService defines the emergency alert service interface
type InterfaceAlertService interface {
	CreateAlert(student *models.Student, message string) (*models.Alert, error)
	GetAlerts(statusFilter, ownerStudentID string) ([]models.Alert, error)
	GetActiveAlerts() ([]models.Alert, error)
	UpdateAlertStatus(id, status, resolvedBy string) (*models.Alert, error)
}

// AlertService 提供紧急警报相关的服务
type AlertService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  *RedisService
}

// NewAlertService 创建一个新的紧急警报服务
func NewAlertService(db *gorm.DB, cfg *config.Config, redisService *RedisService) InterfaceAlertService {
	return &AlertService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// 1 CreateAlert 创建新警报，将学生当前的档案字段快照进警报记录。
// 快照字段在创建后不会随档案修改而变化
func (s *AlertService) CreateAlert(student *models.Student, message string) (*models.Alert, error) {
	alert := &models.Alert{
		StudentID:         student.StudentID,
		StudentName:       student.Name,
		StudentEmail:      student.Email,
		BloodGroup:        student.BloodGroup,
		EmergencyContacts: student.EmergencyContacts,
		Location:          student.Location,
		Timestamp:         time.Now(),
		Status:            models.AlertStatusActive,
		Message:           message,
	}

	if err := s.DB.Create(alert).Error; err != nil {
		return nil, err
	}

	// 活跃警报列表缓存失效，缓存错误不影响主流程
	s.Redis.InvalidateActiveAlerts()

	return alert, nil
}

// 2 GetAlerts 查询警报列表，按创建时间倒序。statusFilter 为空表示不过滤状态；
// ownerStudentID 非空时仅返回该学生自己的警报（非管理员视角）
func (s *AlertService) GetAlerts(statusFilter, ownerStudentID string) ([]models.Alert, error) {
	query := s.DB.Model(&models.Alert{})
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}
	if ownerStudentID != "" {
		query = query.Where("student_id = ?", ownerStudentID)
	}

	var alerts []models.Alert
	if err := query.Order("timestamp DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// 3 GetActiveAlerts 获取所有活跃警报（管理员视角），优先命中Redis缓存
func (s *AlertService) GetActiveAlerts() ([]models.Alert, error) {
	if cached, ok := s.Redis.GetCachedActiveAlerts(); ok {
		return cached, nil
	}

	alerts, err := s.GetAlerts(models.AlertStatusActive, "")
	if err != nil {
		return nil, err
	}

	s.Redis.CacheActiveAlerts(alerts)
	return alerts, nil
}

// 4 UpdateAlertStatus 更新警报状态。转换为 resolved 时记录处理时间和处理人；
// 警报不存在时返回 ErrAlertNotFound
func (s *AlertService) UpdateAlertStatus(id, status, resolvedBy string) (*models.Alert, error) {
	if status != models.AlertStatusActive && status != models.AlertStatusResolved {
		return nil, ErrAlertStatusInvalid
	}

	var alert models.Alert
	if err := s.DB.First(&alert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{"status": status}
	if status == models.AlertStatusResolved {
		now := time.Now()
		updates["resolved_at"] = &now
		updates["resolved_by"] = resolvedBy
	}

	if err := s.DB.Model(&alert).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.Redis.InvalidateActiveAlerts()

	return &alert, nil
}
