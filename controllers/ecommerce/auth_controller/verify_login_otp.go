package auth_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// VerifyLoginOTP godoc
// @Summary Sign in with an OTP
// @Description Consumes a matching, unexpired OTP and sets the auth cookie
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param X-CSRFToken header string true "CSRF token"
// @Param email formData string true "Account email"
// @Param otp formData string true "6-digit OTP"
// @Success 200 {object} models.ActionResponse
// @Failure 400 {object} models.ActionResponse
// @Failure 429 {object} models.ActionResponse
// @Router /verify-login-otp/ [post]
func VerifyLoginOTP(c *gin.Context) {
	var form services.VerifyLoginForm
	if err := c.ShouldBind(&form); err != nil {
		respondAuthError(c, "login verify", services.FormErrorFrom(form, err))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	customer, err := services.GetAuthService().VerifyLoginOTP(ctx, form.Email, form.OTP)
	if err != nil {
		respondAuthError(c, "login verify", err)
		return
	}

	if err := signIn(c, customer, services.LoginMethodOTP); err != nil {
		respondAuthError(c, "login sign-in", err)
		return
	}

	resp := models.ActionOK("Login successful")
	resp.RedirectURL = "/"
	c.JSON(http.StatusOK, resp)
}
