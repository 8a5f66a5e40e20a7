package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 警报状态，只存在 active -> resolved 的单向转换
const (
	AlertStatusActive   = "active"
	AlertStatusResolved = "resolved"
)

// Alert 表示一条紧急警报记录。学生档案字段（姓名、邮箱、血型、联系人、位置）
// 在创建时快照进警报，之后不再随档案更新而变化；
// 创建后仅 status / resolved_at / resolved_by 允许修改
type Alert struct {
	ID                string               `gorm:"type:varchar(36);primaryKey" json:"id"`
	StudentID         string               `gorm:"type:varchar(50);index;not null" json:"student_id"`
	StudentName       string               `gorm:"type:varchar(100);not null" json:"student_name"`
	StudentEmail      string               `gorm:"type:varchar(100)" json:"student_email"`
	BloodGroup        string               `gorm:"type:varchar(10)" json:"blood_group"`
	EmergencyContacts EmergencyContactList `gorm:"type:json" json:"emergency_contacts"`
	Location          string               `gorm:"type:varchar(255)" json:"location,omitempty"`
	Timestamp         time.Time            `gorm:"index" json:"timestamp"`
	Status            string               `gorm:"type:varchar(20);index;default:active" json:"status"`
	Message           string               `gorm:"type:text" json:"message,omitempty"`
	ResolvedAt        *time.Time           `json:"resolved_at,omitempty"`
	ResolvedBy        string               `gorm:"type:varchar(50)" json:"resolved_by,omitempty"`
}

// BeforeCreate 是一个GORM钩子，在创建新记录前生成警报ID
func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.EmergencyContacts == nil {
		a.EmergencyContacts = EmergencyContactList{}
	}
	return nil
}
