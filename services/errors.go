package services

import "errors"

// ErrNotFound is returned by stores when the record does not exist
var ErrNotFound = errors.New("record not found")

// FormError is a failure the shopper can act on. Its message is shown as is.
type FormError struct {
	Message string
}

func (e *FormError) Error() string { return e.Message }

func formError(msg string) *FormError { return &FormError{Message: msg} }

var (
	ErrAllFieldsRequired   = formError("All fields are required")
	ErrEmailRequired       = formError("Email is required")
	ErrInvalidEmail        = formError("Please enter a valid email address")
	ErrEmailAndOTPRequired = formError("Email and OTP are required")
	ErrOTPRequired         = formError("OTP is required")
	ErrInvalidPhone        = formError("Please enter a valid 10-digit phone number")
	ErrWeakPassword        = formError("Password must be at least 6 characters")
	ErrInvalidOTPFormat    = formError("Please enter a valid 6-digit OTP")
	ErrEmailTaken          = formError("Email already registered")
	ErrAccountNotFound     = formError("Account not found. Please register first.")
	ErrInvalidOTP          = formError("Invalid OTP")
	ErrOTPExpired          = formError("OTP expired. Please request a new one.")
	ErrRegistrationExpired = formError("Session expired. Please try again.")
	ErrOTPDelivery         = formError("Failed to send OTP. Please try again.")
	ErrProductIDRequired   = formError("Product ID required")
	ErrInvalidQuantity     = formError("Quantity must be a positive number")
	ErrAlreadyInWishlist   = formError("Already in wishlist")
	ErrNotInWishlist       = formError("Not in wishlist")
	ErrNotInCart           = formError("Not in cart")
	ErrInvalidPincode      = formError("Please enter a valid 6-digit pincode")
)

// MessageFor maps err to the text shown to the shopper
func MessageFor(err error) string {
	var fe *FormError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return "Something went wrong. Please try again."
}
