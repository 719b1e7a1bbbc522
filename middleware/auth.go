package middleware

import (
	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/utils"
	"github.com/gin-gonic/gin"
)

// CustomerAuth reads the JWT from the auth cookie or the Authorization
// header. Storefront pages are public, so a missing or bad token only means
// the shopper is anonymous.
func CustomerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(config.App.AuthCookie)
		if err != nil || token == "" {
			token, err = utils.ExtractTokenFromHeader(c.GetHeader("Authorization"))
			if err != nil {
				c.Next()
				return
			}
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set("customerID", claims.CustomerID)
		c.Set("customerEmail", claims.Email)
		c.Set("customerName", claims.Name)

		c.Next()
	}
}

func GetCustomerIDFromContext(c *gin.Context) (string, bool) {
	id, exists := c.Get("customerID")
	if !exists {
		return "", false
	}
	return id.(string), true
}

func GetCustomerNameFromContext(c *gin.Context) (string, bool) {
	name, exists := c.Get("customerName")
	if !exists {
		return "", false
	}
	return name.(string), true
}

// SetAuthCookie signs the customer in on this browser
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(config.App.AuthCookie, token, int(config.App.JWTExpiry.Seconds()), "/", "", config.App.IsProduction, true)
}

func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(config.App.AuthCookie, "", -1, "/", "", config.App.IsProduction, true)
}
