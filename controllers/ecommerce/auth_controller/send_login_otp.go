package auth_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/metrics"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// SendLoginOTP godoc
// @Summary Email a login OTP
// @Description Replaces any earlier code for the account and emails a new 6-digit OTP
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param X-CSRFToken header string true "CSRF token"
// @Param email formData string true "Account email"
// @Success 200 {object} models.ActionResponse
// @Failure 400 {object} models.ActionResponse
// @Failure 429 {object} models.ActionResponse
// @Router /send-login-otp/ [post]
func SendLoginOTP(c *gin.Context) {
	var form services.LoginOTPForm
	if err := c.ShouldBind(&form); err != nil {
		respondAuthError(c, "login otp", services.FormErrorFrom(form, err))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err := services.GetAuthService().SendLoginOTP(ctx, form.Email)
	metrics.Get().RecordOTP("login", err)
	if err != nil {
		respondAuthError(c, "login otp", err)
		return
	}

	c.JSON(http.StatusOK, models.ActionOK("OTP sent successfully to your email"))
}
