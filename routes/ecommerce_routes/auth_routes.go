package ecommerce_routes

import (
	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/auth_controller"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the OTP registration and login routes
func SetupAuthRoutes(router gin.IRouter) {
	router.GET("/csrf/", auth_controller.GetCSRFToken)
	router.GET("/check-login-status/", auth_controller.CheckLoginStatus)
	router.POST("/logout/", auth_controller.Logout)

	otp := router.Group("")
	otp.Use(middleware.OTPRateLimiter(config.App.OTPRateLimit, config.App.OTPRateWindow))
	{
		otp.POST("/register-user/", auth_controller.RegisterUser)
		otp.POST("/verify-registration-otp/", auth_controller.VerifyRegistrationOTP)
		otp.POST("/send-login-otp/", auth_controller.SendLoginOTP)
		otp.POST("/verify-login-otp/", auth_controller.VerifyLoginOTP)
	}
}
