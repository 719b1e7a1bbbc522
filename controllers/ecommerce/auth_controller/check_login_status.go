package auth_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/gin-gonic/gin"
)

// CheckLoginStatus godoc
// @Summary Current login status
// @Tags Auth
// @Produce json
// @Success 200 {object} models.LoginStatusResponse
// @Router /check-login-status/ [get]
func CheckLoginStatus(c *gin.Context) {
	_, loggedIn := middleware.GetCustomerIDFromContext(c)
	name, _ := middleware.GetCustomerNameFromContext(c)

	c.JSON(http.StatusOK, models.LoginStatusResponse{IsLoggedIn: loggedIn, UserName: name})
}
