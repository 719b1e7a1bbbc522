package services

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Form is a storefront form whose binding failures map onto shopper messages
type Form interface {
	requiredError() *FormError
}

// RegisterInput is the sign-up form
type RegisterInput struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Phone    string `json:"phone" form:"phone" binding:"required,len=10,number"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

func (RegisterInput) requiredError() *FormError { return ErrAllFieldsRequired }

func (in RegisterInput) normalized() RegisterInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	return in
}

// VerifyRegistrationForm carries the OTP that completes a sign-up
type VerifyRegistrationForm struct {
	OTP string `json:"otp" form:"otp" binding:"required,len=6,number"`
}

func (VerifyRegistrationForm) requiredError() *FormError { return ErrOTPRequired }

// LoginOTPForm asks for a login code
type LoginOTPForm struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

func (LoginOTPForm) requiredError() *FormError { return ErrEmailRequired }

// VerifyLoginForm signs in with an emailed code
type VerifyLoginForm struct {
	Email string `json:"email" form:"email" binding:"required,email"`
	OTP   string `json:"otp" form:"otp" binding:"required,len=6,number"`
}

func (VerifyLoginForm) requiredError() *FormError { return ErrEmailAndOTPRequired }

// PincodeForm is the delivery check on the product page
type PincodeForm struct {
	Pincode string `json:"pincode" form:"pincode" binding:"required,len=6,number"`
}

func (PincodeForm) requiredError() *FormError { return ErrInvalidPincode }

// fieldErrors holds the message for a field that is present but malformed
var fieldErrors = map[string]*FormError{
	"Email":    ErrInvalidEmail,
	"Phone":    ErrInvalidPhone,
	"Password": ErrWeakPassword,
	"OTP":      ErrInvalidOTPFormat,
	"Pincode":  ErrInvalidPincode,
}

// FormErrorFrom turns a bind or validation failure on form into the message
// the shopper sees. A missing field wins over a malformed one.
func FormErrorFrom(form Form, err error) *FormError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return form.requiredError()
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return form.requiredError()
		}
	}
	if msg, ok := fieldErrors[verrs[0].StructField()]; ok {
		return msg
	}
	return form.requiredError()
}

// validateForm runs the binding rules on a form built outside a request
func validateForm(form Form) error {
	if err := binding.Validator.ValidateStruct(form); err != nil {
		return FormErrorFrom(form, err)
	}
	return nil
}
