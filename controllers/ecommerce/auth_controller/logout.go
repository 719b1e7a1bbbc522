package auth_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Logout customer
// @Description Clears the auth cookie and drops the session (cart and wishlist included)
// @Tags Auth
// @Produce json
// @Param X-CSRFToken header string true "CSRF token"
// @Success 200 {object} models.ActionResponse
// @Router /logout/ [post]
func Logout(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.GetSessionStore().Destroy(ctx, middleware.GetSessionID(c)); err != nil {
		log.Printf("⚠️ [auth] session not destroyed: %v", err)
	}
	middleware.RotateSession(c)
	middleware.ClearAuthCookie(c)

	resp := models.ActionOK("Logged out")
	resp.RedirectURL = "/"
	c.JSON(http.StatusOK, resp)
}
