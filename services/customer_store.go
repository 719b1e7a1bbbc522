package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerStore persists accounts and login OTPs
type CustomerStore interface {
	FindCustomer(ctx context.Context, email string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	// ReplaceLoginOTP drops every earlier code for email and stores code.
	ReplaceLoginOTP(ctx context.Context, email, code string) error
	// FindLoginOTP returns the unused code for email, or ErrNotFound.
	FindLoginOTP(ctx context.Context, email, code string) (*models.LoginOTP, error)
	MarkOTPVerified(ctx context.Context, id uuid.UUID) error
}

type GormCustomerStore struct {
	db *gorm.DB
}

func NewGormCustomerStore(db *gorm.DB) *GormCustomerStore {
	return &GormCustomerStore{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *GormCustomerStore) FindCustomer(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *GormCustomerStore) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	customer.Email = normalizeEmail(customer.Email)
	return s.db.WithContext(ctx).Create(customer).Error
}

func (s *GormCustomerStore) ReplaceLoginOTP(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", email).Delete(&models.LoginOTP{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.LoginOTP{Email: email, Code: code}).Error
	})
}

func (s *GormCustomerStore) FindLoginOTP(ctx context.Context, email, code string) (*models.LoginOTP, error) {
	var otp models.LoginOTP
	err := s.db.WithContext(ctx).
		Where("email = ? AND otp = ? AND is_verified = ?", normalizeEmail(email), code, false).
		Order("created_at DESC").
		First(&otp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (s *GormCustomerStore) MarkOTPVerified(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).
		Model(&models.LoginOTP{}).
		Where("id = ?", id).
		Update("is_verified", true).Error
}
