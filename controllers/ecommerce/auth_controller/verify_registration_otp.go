package auth_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// VerifyRegistrationOTP godoc
// @Summary Complete registration
// @Description Checks the OTP against the pending registration, creates the account and signs it in.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param X-CSRFToken header string true "CSRF token"
// @Param otp formData string true "6-digit OTP"
// @Success 200 {object} models.ActionResponse
// @Failure 400 {object} models.ActionResponse
// @Router /verify-registration-otp/ [post]
func VerifyRegistrationOTP(c *gin.Context) {
	var form services.VerifyRegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		respondAuthError(c, "registration verify", services.FormErrorFrom(form, err))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	customer, err := services.GetAuthService().VerifyRegistration(ctx, middleware.GetSessionID(c), form.OTP)
	if err != nil {
		respondAuthError(c, "registration verify", err)
		return
	}

	if err := signIn(c, customer, services.LoginMethodRegistration); err != nil {
		respondAuthError(c, "registration sign-in", err)
		return
	}

	resp := models.ActionOK("Registration successful")
	resp.RedirectURL = "/"
	c.JSON(http.StatusOK, resp)
}
