package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the envelope of the JSON catalog API (/api/v1)
type ApiResponse struct {
	Message         string       `json:"message"`
	Data            any          `json:"data,omitempty"`
	Error           bool         `json:"error,omitempty"`
	Meta            *Pagination  `json:"meta"`
	Rate            *RateLimiter `json:"rate_limit,omitempty"`
	RequestedEntity string       `json:"requested_entity,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"24"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"total_pages" example:"2"`
}

// NewPagination derives the page count for total items at limit per page
func NewPagination(page, limit, total int) *Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Rate:            getRateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Meta:            meta,
		Rate:            getRateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Error:           true,
		Rate:            getRateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

// ActionResponse is the flat answer of the storefront form endpoints
// (auth, cart, wishlist). Count is set by the cart and wishlist actions.
type ActionResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
	Count       *int   `json:"count,omitempty"`
}

func ActionOK(message string) ActionResponse {
	return ActionResponse{Success: true, Message: message}
}

func ActionFailed(message string) ActionResponse {
	return ActionResponse{Success: false, Message: message}
}

// WithCount attaches the cart or wishlist size
func (r ActionResponse) WithCount(n int) ActionResponse {
	r.Count = &n
	return r
}

// CountResponse answers /get-cart-count/
type CountResponse struct {
	Count int `json:"count"`
}

// WishlistItemsResponse answers /get-wishlist-items/
type WishlistItemsResponse struct {
	Count int      `json:"count"`
	Items []string `json:"items"`
}

// LoginStatusResponse answers /check-login-status/
type LoginStatusResponse struct {
	IsLoggedIn bool   `json:"is_logged_in"`
	UserName   string `json:"user_name"`
}
