package services

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"
)

const (
	cartKey     = "cart"
	wishlistKey = "wishlist"

	DefaultCartColor = "Default"
)

// CartLine is one product in the session cart
type CartLine struct {
	Quantity int    `json:"quantity"`
	Color    string `json:"color"`
}

// Cart maps product IDs to their line
type Cart map[string]CartLine

// Count is the total quantity across lines
func (c Cart) Count() int {
	total := 0
	for _, line := range c {
		total += line.Quantity
	}
	return total
}

// CartService keeps the session-scoped cart and wishlist
type CartService struct {
	store SessionStore
	ttl   time.Duration
}

func NewCartService(store SessionStore, ttl time.Duration) *CartService {
	return &CartService{store: store, ttl: ttl}
}

func (s *CartService) Cart(ctx context.Context, sessionID string) (Cart, error) {
	cart := Cart{}
	if err := s.store.Get(ctx, sessionID, cartKey, &cart); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return cart, nil
}

// AddToCart adds quantity of the product. Adding a product already in the
// cart raises its quantity and keeps the color chosen first.
func (s *CartService) AddToCart(ctx context.Context, sessionID, productID string, quantity int, color string) (int, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return 0, ErrProductIDRequired
	}
	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}
	if color == "" {
		color = DefaultCartColor
	}

	cart, err := s.Cart(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	line, ok := cart[productID]
	if ok {
		line.Quantity += quantity
	} else {
		line = CartLine{Quantity: quantity, Color: color}
	}
	cart[productID] = line

	if err := s.store.Set(ctx, sessionID, cartKey, cart, s.ttl); err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, sessionID, productID string) (int, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return 0, ErrProductIDRequired
	}
	cart, err := s.Cart(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if _, ok := cart[productID]; !ok {
		return 0, ErrNotInCart
	}
	delete(cart, productID)

	if err := s.store.Set(ctx, sessionID, cartKey, cart, s.ttl); err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

func (s *CartService) CartCount(ctx context.Context, sessionID string) (int, error) {
	cart, err := s.Cart(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

// Wishlist returns the product IDs in the order they were added
func (s *CartService) Wishlist(ctx context.Context, sessionID string) ([]string, error) {
	items := []string{}
	if err := s.store.Get(ctx, sessionID, wishlistKey, &items); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return items, nil
}

func (s *CartService) AddToWishlist(ctx context.Context, sessionID, productID string) (int, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return 0, ErrProductIDRequired
	}
	items, err := s.Wishlist(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if slices.Contains(items, productID) {
		return 0, ErrAlreadyInWishlist
	}
	items = append(items, productID)

	if err := s.store.Set(ctx, sessionID, wishlistKey, items, s.ttl); err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *CartService) RemoveFromWishlist(ctx context.Context, sessionID, productID string) (int, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return 0, ErrProductIDRequired
	}
	items, err := s.Wishlist(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	i := slices.Index(items, productID)
	if i < 0 {
		return 0, ErrNotInWishlist
	}
	items = slices.Delete(items, i, i+1)

	if err := s.store.Set(ctx, sessionID, wishlistKey, items, s.ttl); err != nil {
		return 0, err
	}
	return len(items), nil
}
