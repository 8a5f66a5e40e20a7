package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student represents a registered student account
type Student struct {
	ID                string               `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name              string               `gorm:"type:varchar(100);not null" json:"name"`
	StudentID         string               `gorm:"type:varchar(50);uniqueIndex;not null" json:"student_id"` // 登录账号，全局唯一
	Email             string               `gorm:"type:varchar(100)" json:"email"`
	PasswordHash      string               `gorm:"type:varchar(100);not null" json:"-"` // 不在JSON中暴露密码哈希
	BloodGroup        string               `gorm:"type:varchar(10)" json:"blood_group"`
	EmergencyContacts EmergencyContactList `gorm:"type:json" json:"emergency_contacts"`
	Location          string               `gorm:"type:varchar(255)" json:"location,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	IsAdmin           bool                 `gorm:"default:false" json:"is_admin"`
}

// BeforeCreate 是一个GORM钩子，在创建新记录前生成内部ID
func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.EmergencyContacts == nil {
		s.EmergencyContacts = EmergencyContactList{}
	}
	return nil
}
