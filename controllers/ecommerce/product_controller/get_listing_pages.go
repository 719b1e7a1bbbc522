package product_controller

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

type listingFunc func(ctx context.Context, query url.Values) (*models.ListingPage, error)

func renderListing(c *gin.Context, list listingFunc) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	page, err := list(ctx, c.Request.URL.Query())
	if err != nil {
		respondCatalogError(c, "Products", err)
		return
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, page.PageTitle, page, page.Pagination))
}

// GetAllProducts godoc
// @Summary List all products
// @Description Every active product, newest first unless a sort is given
// @Tags store
// @Produce json
// @Param sort query string false "featured | price-low | price-high | new | rating | discount"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.ApiResponse{data=models.ListingPage}
// @Failure 500 {object} models.ApiResponse
// @Router /all-products/ [get]
func GetAllProducts(c *gin.Context) {
	renderListing(c, services.GetCatalogService().AllProducts)
}

// GetNewArrivals godoc
// @Summary List new arrivals
// @Description Products added in the last 30 days, newest first
// @Tags store
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.ApiResponse{data=models.ListingPage}
// @Failure 500 {object} models.ApiResponse
// @Router /new-arrivals/ [get]
func GetNewArrivals(c *gin.Context) {
	renderListing(c, services.GetCatalogService().NewArrivals)
}

// GetOffers godoc
// @Summary List special offers
// @Description Products discounted by 30% or more, biggest discount first
// @Tags store
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.ApiResponse{data=models.ListingPage}
// @Failure 500 {object} models.ApiResponse
// @Router /offers/ [get]
func GetOffers(c *gin.Context) {
	renderListing(c, services.GetCatalogService().Offers)
}

// SearchProducts godoc
// @Summary Search products
// @Description Matches the query against product name, fabric, occasion and category name.
// @Description An empty query redirects to the home page.
// @Tags store
// @Produce json
// @Param q query string true "Search text"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.ApiResponse{data=models.ListingPage}
// @Success 302 "Empty query"
// @Failure 500 {object} models.ApiResponse
// @Router /search/ [get]
func SearchProducts(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	renderListing(c, func(ctx context.Context, query url.Values) (*models.ListingPage, error) {
		return services.GetCatalogService().Search(ctx, q, query)
	})
}
