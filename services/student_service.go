package services

import (
	"errors"

	"safetrack-http-service/config"
	"safetrack-http-service/models"
	"safetrack-http-service/utils"

	"gorm.io/gorm"
)

// 学生账户相关的业务错误
var (
	ErrStudentExists      = errors.New("student id already registered")
	ErrStudentNotFound    = errors.New("student not found")
	ErrInvalidCredentials = errors.New("invalid student id or password")
)

// StudentUpdate 表示档案的部分更新，nil 字段保持原值不变
type StudentUpdate struct {
	Name              *string                      `json:"name"`
	BloodGroup        *string                      `json:"blood_group"`
	EmergencyContacts *models.EmergencyContactList `json:"emergency_contacts"`
	Location          *string                      `json:"location"`
}

// ToUpdates 将非nil字段合并为GORM更新映射
func (u *StudentUpdate) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.BloodGroup != nil {
		updates["blood_group"] = *u.BloodGroup
	}
	if u.EmergencyContacts != nil {
		updates["emergency_contacts"] = *u.EmergencyContacts
	}
	if u.Location != nil {
		updates["location"] = *u.Location
	}
	return updates
}

// InterfaceStudentService defines the student account service interface
type InterfaceStudentService interface {
	Register(student *models.Student, password string) error
	Authenticate(studentID, password string) (*models.Student, error)
	GetByStudentID(studentID string) (*models.Student, error)
	UpdateProfile(studentID string, update *StudentUpdate) (*models.Student, error)
	GetAllStudents() ([]models.Student, error)
}

// StudentService 提供学生账户相关的服务
type StudentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewStudentService 创建一个新的学生账户服务
func NewStudentService(db *gorm.DB, cfg *config.Config) InterfaceStudentService {
	return &StudentService{
		DB:     db,
		Config: cfg,
	}
}

// 1 Register 注册新学生账户。学号唯一性由唯一索引兜底，
// 并发注册同一学号时其中一个会命中重复键错误
func (s *StudentService) Register(student *models.Student, password string) error {
	var count int64
	if err := s.DB.Model(&models.Student{}).Where("student_id = ?", student.StudentID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrStudentExists
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	student.PasswordHash = hashedPassword
	student.IsAdmin = false

	if err := s.DB.Create(student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrStudentExists
		}
		return err
	}
	return nil
}

// 2 Authenticate 校验学号和密码，成功返回账户记录
func (s *StudentService) Authenticate(studentID, password string) (*models.Student, error) {
	student, err := s.GetByStudentID(studentID)
	if err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, student.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return student, nil
}

// 3 GetByStudentID 根据学号获取账户
func (s *StudentService) GetByStudentID(studentID string) (*models.Student, error) {
	var student models.Student
	if err := s.DB.Where("student_id = ?", studentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// 4 UpdateProfile 部分更新学生档案，仅应用请求中提供的字段
func (s *StudentService) UpdateProfile(studentID string, update *StudentUpdate) (*models.Student, error) {
	student, err := s.GetByStudentID(studentID)
	if err != nil {
		return nil, err
	}

	updates := update.ToUpdates()
	if len(updates) > 0 {
		if err := s.DB.Model(student).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	// 重新获取更新后的档案
	return s.GetByStudentID(studentID)
}

// 5 GetAllStudents 获取所有学生账户（密码哈希不参与JSON序列化）
func (s *StudentService) GetAllStudents() ([]models.Student, error) {
	var students []models.Student
	if err := s.DB.Order("created_at DESC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}
