package auth_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/metrics"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// RegisterUser godoc
// @Summary Start registration
// @Description Validates the sign-up form, keeps it in the session and emails a 6-digit OTP.
// @Description The account is created by /verify-registration-otp/.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param X-CSRFToken header string true "CSRF token"
// @Param name formData string true "Full name"
// @Param email formData string true "Email"
// @Param phone formData string true "10-digit phone number"
// @Param password formData string true "Password, at least 6 characters"
// @Success 200 {object} models.ActionResponse
// @Failure 400 {object} models.ActionResponse
// @Failure 429 {object} models.ActionResponse
// @Router /register-user/ [post]
func RegisterUser(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		respondAuthError(c, "registration", services.FormErrorFrom(input, err))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err := services.GetAuthService().Register(ctx, middleware.GetSessionID(c), input)
	metrics.Get().RecordOTP("registration", err)
	if err != nil {
		respondAuthError(c, "registration", err)
		return
	}

	c.JSON(http.StatusOK, models.ActionOK("OTP sent to your email. Please verify to complete registration."))
}
