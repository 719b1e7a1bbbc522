package models

import (
	"time"

	"github.com/google/uuid"
)

// LoginEvent is one successful storefront sign-in
type LoginEvent struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;not null;index"`
	Method     string    `json:"method" gorm:"type:varchar(20);not null"`
	LoggedInAt time.Time `json:"logged_in_at" gorm:"not null;index"`
	IPAddress  string    `json:"ip_address" gorm:"type:varchar(64)"`
	UserAgent  string    `json:"user_agent" gorm:"type:text"`
	DeviceType string    `json:"device_type" gorm:"type:varchar(20)"`
	Browser    string    `json:"browser" gorm:"type:varchar(50)"`
	OS         string    `json:"os" gorm:"column:os;type:varchar(50)"`
}

func (LoginEvent) TableName() string {
	return "login_events"
}
