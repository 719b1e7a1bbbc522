package pincode_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// CheckPincode godoc
// @Summary Check delivery to a pincode
// @Description Standard and express delivery estimates, express charge and COD availability.
// @Description Unknown or unserviceable pincodes answer success=true, serviceable=false.
// @Tags store
// @Accept x-www-form-urlencoded
// @Produce json
// @Param X-CSRFToken header string true "CSRF token"
// @Param pincode formData string true "6-digit pincode"
// @Success 200 {object} models.PincodeResponse
// @Failure 400 {object} models.PincodeResponse
// @Failure 500 {object} models.PincodeResponse
// @Router /check-pincode/ [post]
func CheckPincode(c *gin.Context) {
	var form services.PincodeForm
	if err := c.ShouldBind(&form); err != nil {
		fe := services.FormErrorFrom(form, err)
		c.JSON(http.StatusBadRequest, models.PincodeResponse{Success: false, Message: fe.Message})
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	resp, err := services.GetCatalogService().CheckPincode(ctx, form.Pincode)
	if err != nil {
		var fe *services.FormError
		if errors.As(err, &fe) {
			c.JSON(http.StatusBadRequest, models.PincodeResponse{Success: false, Message: fe.Message})
			return
		}
		log.Printf("❌ [pincode] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.PincodeResponse{Success: false, Message: services.MessageFor(err)})
		return
	}

	c.JSON(http.StatusOK, resp)
}
