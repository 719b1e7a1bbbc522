package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	svc       *AuthService
	customers *fakeCustomerStore
	sessions  *MemorySessionStore
	mailer    *fakeMailer
	clock     *time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	f := &authFixture{
		customers: newFakeCustomerStore(now),
		sessions:  NewMemorySessionStore(),
		mailer:    &fakeMailer{},
		clock:     &clock,
	}
	f.sessions.now = now
	f.svc = NewAuthService(f.customers, f.sessions, f.mailer, 10*time.Minute)
	f.svc.now = now

	codes := []string{"123456", "654321", "111222"}
	f.svc.newOTP = func() (string, error) {
		code := codes[0]
		codes = append(codes[1:], code)
		return code, nil
	}
	return f
}

func validRegistration() RegisterInput {
	return RegisterInput{Name: "Asha Rao", Email: " Asha@Example.com ", Phone: "9876543210", Password: "secret1"}
}

func TestRegister_Validation(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		edit func(*RegisterInput)
		want error
	}{
		{"missing name", func(in *RegisterInput) { in.Name = "  " }, ErrAllFieldsRequired},
		{"missing password", func(in *RegisterInput) { in.Password = "" }, ErrAllFieldsRequired},
		{"short phone", func(in *RegisterInput) { in.Phone = "98765" }, ErrInvalidPhone},
		{"letters in phone", func(in *RegisterInput) { in.Phone = "98765abcde" }, ErrInvalidPhone},
		{"short password", func(in *RegisterInput) { in.Password = "abc" }, ErrWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegistration()
			tt.edit(&in)
			assert.ErrorIs(t, f.svc.Register(ctx, "s1", in), tt.want)
		})
	}
	assert.Empty(t, f.mailer.sent)
}

func TestRegister_ThenVerifyCreatesAccount(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Register(ctx, "s1", validRegistration()))
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, sentMail{kind: "otp", to: "asha@example.com", body: "123456"}, f.mailer.sent[0])

	_, err := f.customers.FindCustomer(ctx, "asha@example.com")
	require.ErrorIs(t, err, ErrNotFound, "account must not exist before the OTP is confirmed")

	_, err = f.svc.VerifyRegistration(ctx, "s1", "000000")
	assert.ErrorIs(t, err, ErrInvalidOTP)

	customer, err := f.svc.VerifyRegistration(ctx, "s1", "123456")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", customer.Email)
	assert.Equal(t, "Asha Rao", customer.Name)
	assert.True(t, customer.IsVerified)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte("secret1")))

	assert.Equal(t, "welcome", f.mailer.sent[len(f.mailer.sent)-1].kind)

	_, err = f.svc.VerifyRegistration(ctx, "s1", "123456")
	assert.ErrorIs(t, err, ErrRegistrationExpired, "pending registration is consumed")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, f.customers.CreateCustomer(ctx, &models.Customer{Email: "asha@example.com", Name: "Asha"}))

	assert.ErrorIs(t, f.svc.Register(ctx, "s1", validRegistration()), ErrEmailTaken)
}

func TestRegister_MailFailureDropsPending(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.mailer.err = errors.New("smtp down")

	assert.ErrorIs(t, f.svc.Register(ctx, "s1", validRegistration()), ErrOTPDelivery)

	var pending models.PendingRegistration
	assert.ErrorIs(t, f.sessions.Get(ctx, "s1", pendingRegistrationKey, &pending), ErrNotFound)
}

func TestVerifyRegistration_Expired(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.Register(ctx, "s1", validRegistration()))

	*f.clock = f.clock.Add(11 * time.Minute)
	_, err := f.svc.VerifyRegistration(ctx, "s1", "123456")
	assert.ErrorIs(t, err, ErrRegistrationExpired)
}

func TestVerifyRegistration_Format(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.VerifyRegistration(ctx, "s1", "")
	assert.ErrorIs(t, err, ErrOTPRequired)

	_, err = f.svc.VerifyRegistration(ctx, "s1", "12ab56")
	assert.ErrorIs(t, err, ErrInvalidOTPFormat)
}

func TestLoginOTP_Flow(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, f.customers.CreateCustomer(ctx, &models.Customer{Email: "asha@example.com", Name: "Asha"}))

	assert.ErrorIs(t, f.svc.SendLoginOTP(ctx, ""), ErrEmailRequired)
	assert.ErrorIs(t, f.svc.SendLoginOTP(ctx, "nobody@example.com"), ErrAccountNotFound)

	require.NoError(t, f.svc.SendLoginOTP(ctx, "Asha@example.com"))
	require.NoError(t, f.svc.SendLoginOTP(ctx, "asha@example.com"))

	// resending replaces the first code
	_, err := f.svc.VerifyLoginOTP(ctx, "asha@example.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidOTP)

	customer, err := f.svc.VerifyLoginOTP(ctx, "asha@example.com", "654321")
	require.NoError(t, err)
	assert.Equal(t, "Asha", customer.Name)

	_, err = f.svc.VerifyLoginOTP(ctx, "asha@example.com", "654321")
	assert.ErrorIs(t, err, ErrInvalidOTP, "a code works once")
}

func TestVerifyLoginOTP_Expired(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, f.customers.CreateCustomer(ctx, &models.Customer{Email: "asha@example.com", Name: "Asha"}))
	require.NoError(t, f.svc.SendLoginOTP(ctx, "asha@example.com"))

	*f.clock = f.clock.Add(10*time.Minute + time.Second)
	_, err := f.svc.VerifyLoginOTP(ctx, "asha@example.com", "123456")
	assert.ErrorIs(t, err, ErrOTPExpired)
}

func TestVerifyLoginOTP_Validation(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.VerifyLoginOTP(ctx, "", "123456")
	assert.ErrorIs(t, err, ErrEmailAndOTPRequired)

	_, err = f.svc.VerifyLoginOTP(ctx, "asha@example.com", "12345")
	assert.ErrorIs(t, err, ErrInvalidOTPFormat)
}

func TestMessageFor(t *testing.T) {
	assert.Equal(t, "Invalid OTP", MessageFor(ErrInvalidOTP))
	assert.Equal(t, "Something went wrong. Please try again.", MessageFor(errors.New("db down")))
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		assert.Regexp(t, `^[0-9]{6}$`, otp)
	}
}
