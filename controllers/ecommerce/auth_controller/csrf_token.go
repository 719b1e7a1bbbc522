package auth_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/gin-gonic/gin"
)

// GetCSRFToken godoc
// @Summary Issue the CSRF token
// @Description Sets the csrftoken cookie when absent and echoes its value. Send it back in X-CSRFToken on every POST.
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /csrf/ [get]
func GetCSRFToken(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"csrf_token": middleware.GetCSRFToken(c)})
}
