package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// EmergencyContact 表示学生档案中的紧急联系人信息
type EmergencyContact struct {
	Name         string `json:"name" binding:"required" example:"Rahim Uddin"`
	Relationship string `json:"relationship" binding:"required" example:"father"`
	Phone        string `json:"phone" binding:"required" example:"+8801712345678"`
	Email        string `json:"email,omitempty" example:"rahim@example.com"`
}

// EmergencyContactList 是紧急联系人的有序列表，以JSON列的形式持久化，
// 保证警报快照中的联系人顺序与录入顺序一致
type EmergencyContactList []EmergencyContact

// Value 实现 driver.Valuer 接口，将联系人列表序列化为JSON存储
func (l EmergencyContactList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan 实现 sql.Scanner 接口，从JSON列反序列化联系人列表
func (l *EmergencyContactList) Scan(value interface{}) error {
	if value == nil {
		*l = EmergencyContactList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for EmergencyContactList")
	}

	if len(data) == 0 {
		*l = EmergencyContactList{}
		return nil
	}
	return json.Unmarshal(data, l)
}
