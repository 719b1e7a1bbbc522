package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a storefront account created through OTP registration
type Customer struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"type:varchar(200);not null"`
	Phone        string    `json:"phone" gorm:"type:varchar(15)"`
	IsVerified   bool      `json:"is_verified" gorm:"default:false"`
	PasswordHash string    `json:"-" gorm:"column:password;type:varchar(200);not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (Customer) TableName() string {
	return "customers"
}

func (u *Customer) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// LoginOTP is a one-time passcode issued for email login
type LoginOTP struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email      string    `json:"email" gorm:"type:varchar(255);not null;index"`
	Code       string    `json:"-" gorm:"column:otp;type:varchar(6);not null"`
	IsVerified bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (LoginOTP) TableName() string {
	return "login_otps"
}

func (o *LoginOTP) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// IsExpired reports whether the code is older than ttl at now
func (o LoginOTP) IsExpired(now time.Time, ttl time.Duration) bool {
	return o.CreatedAt.Before(now.Add(-ttl))
}

// PendingRegistration holds sign-up details until the emailed OTP is confirmed
type PendingRegistration struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"password"`
	OTP          string    `json:"otp"`
	CreatedAt    time.Time `json:"created_at"`
}
