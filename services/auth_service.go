package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"golang.org/x/crypto/bcrypt"
)

const pendingRegistrationKey = "pending_registration"

const (
	LoginMethodOTP          = "otp"
	LoginMethodRegistration = "registration"
)

// AuthService runs the OTP sign-up and sign-in flows
type AuthService struct {
	customers CustomerStore
	sessions  SessionStore
	mailer    Mailer
	otpTTL    time.Duration
	now       func() time.Time
	newOTP    func() (string, error)
}

func NewAuthService(customers CustomerStore, sessions SessionStore, mailer Mailer, otpTTL time.Duration) *AuthService {
	return &AuthService{
		customers: customers,
		sessions:  sessions,
		mailer:    mailer,
		otpTTL:    otpTTL,
		now:       time.Now,
		newOTP:    GenerateOTP,
	}
}

// Register validates the form, parks it in the session and mails an OTP.
// The account is only created by VerifyRegistration.
func (s *AuthService) Register(ctx context.Context, sessionID string, in RegisterInput) error {
	in = in.normalized()
	if err := validateForm(in); err != nil {
		return err
	}

	_, err := s.customers.FindCustomer(ctx, in.Email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	otp, err := s.newOTP()
	if err != nil {
		return err
	}

	pending := models.PendingRegistration{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		OTP:          otp,
		CreatedAt:    s.now(),
	}
	if err := s.sessions.Set(ctx, sessionID, pendingRegistrationKey, pending, s.otpTTL); err != nil {
		return err
	}

	if err := s.mailer.SendOTP(ctx, in.Email, otp, s.otpTTL); err != nil {
		log.Printf("❌ [auth] registration OTP for %s not sent: %v", in.Email, err)
		_ = s.sessions.Delete(ctx, sessionID, pendingRegistrationKey)
		return ErrOTPDelivery
	}

	log.Printf("✅ [auth] registration OTP sent to %s", in.Email)
	return nil
}

// VerifyRegistration creates the account once the session OTP matches
func (s *AuthService) VerifyRegistration(ctx context.Context, sessionID, otp string) (*models.Customer, error) {
	otp = strings.TrimSpace(otp)
	if err := validateForm(VerifyRegistrationForm{OTP: otp}); err != nil {
		return nil, err
	}

	var pending models.PendingRegistration
	err := s.sessions.Get(ctx, sessionID, pendingRegistrationKey, &pending)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrRegistrationExpired
	}
	if err != nil {
		return nil, err
	}
	if s.now().Sub(pending.CreatedAt) > s.otpTTL {
		_ = s.sessions.Delete(ctx, sessionID, pendingRegistrationKey)
		return nil, ErrOTPExpired
	}
	if pending.OTP != otp {
		return nil, ErrInvalidOTP
	}

	customer := &models.Customer{
		Email:        pending.Email,
		Name:         pending.Name,
		Phone:        pending.Phone,
		PasswordHash: pending.PasswordHash,
		IsVerified:   true,
	}
	if err := s.customers.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	_ = s.sessions.Delete(ctx, sessionID, pendingRegistrationKey)

	if err := s.mailer.SendWelcome(ctx, customer.Email, customer.Name); err != nil {
		log.Printf("⚠️ [auth] welcome email to %s failed: %v", customer.Email, err)
	}

	log.Printf("✅ [auth] customer registered: %s", customer.Email)
	return customer, nil
}

// SendLoginOTP replaces any outstanding code for the account and mails a new one
func (s *AuthService) SendLoginOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if err := validateForm(LoginOTPForm{Email: email}); err != nil {
		return err
	}

	_, err := s.customers.FindCustomer(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return ErrAccountNotFound
	}
	if err != nil {
		return err
	}

	otp, err := s.newOTP()
	if err != nil {
		return err
	}
	if err := s.customers.ReplaceLoginOTP(ctx, email, otp); err != nil {
		return err
	}

	if err := s.mailer.SendOTP(ctx, email, otp, s.otpTTL); err != nil {
		log.Printf("❌ [auth] login OTP for %s not sent: %v", email, err)
		return ErrOTPDelivery
	}

	log.Printf("✅ [auth] login OTP sent to %s", email)
	return nil
}

// VerifyLoginOTP consumes a valid, unexpired code and returns the account
func (s *AuthService) VerifyLoginOTP(ctx context.Context, email, otp string) (*models.Customer, error) {
	email = normalizeEmail(email)
	otp = strings.TrimSpace(otp)
	if err := validateForm(VerifyLoginForm{Email: email, OTP: otp}); err != nil {
		return nil, err
	}

	record, err := s.customers.FindLoginOTP(ctx, email, otp)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidOTP
	}
	if err != nil {
		return nil, err
	}
	if record.IsExpired(s.now(), s.otpTTL) {
		return nil, ErrOTPExpired
	}
	if err := s.customers.MarkOTPVerified(ctx, record.ID); err != nil {
		return nil, err
	}

	customer, err := s.customers.FindCustomer(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	log.Printf("✅ [auth] customer signed in: %s", email)
	return customer, nil
}
