package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/metrics"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/utils"
	"github.com/gin-gonic/gin"
)

// signIn issues the auth cookie for customer and records the login
func signIn(c *gin.Context, customer *models.Customer, method string) error {
	token, err := utils.GenerateJWT(customer.ID, customer.Email, customer.Name)
	if err != nil {
		return err
	}
	middleware.SetAuthCookie(c, token)
	metrics.Get().RecordLogin(method)

	if err := utils.LogLoginEvent(c, customer.ID, method); err != nil {
		log.Printf("⚠️ [auth] login event not recorded for %s: %v", customer.Email, err)
	}
	return nil
}

// respondAuthError answers a failed auth action. Form errors carry their own
// message; anything else is logged and answered generically.
func respondAuthError(c *gin.Context, action string, err error) {
	var fe *services.FormError
	if errors.As(err, &fe) {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrOTPDelivery) {
			status = http.StatusBadGateway
		}
		c.JSON(status, models.ActionFailed(fe.Message))
		return
	}
	log.Printf("❌ [auth] %s failed: %v", action, err)
	c.JSON(http.StatusInternalServerError, models.ActionFailed(services.MessageFor(err)))
}
