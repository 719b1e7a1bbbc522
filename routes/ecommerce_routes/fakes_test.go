package ecommerce_routes

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/google/uuid"
)

type memCatalog struct {
	categories []models.Category
	products   []models.Product
	pincodes   []models.Pincode
	banners    []models.HeroBanner
	festival   *models.FestivalBanner
}

func (m *memCatalog) CategoryBySlug(_ context.Context, slug string) (*models.Category, error) {
	for i := range m.categories {
		if m.categories[i].Slug == slug {
			return &m.categories[i], nil
		}
	}
	return nil, services.ErrNotFound
}

func (m *memCatalog) ActiveCategories(context.Context) ([]models.CategoryWithCount, error) {
	var out []models.CategoryWithCount
	for _, c := range m.categories {
		n := 0
		for _, p := range m.products {
			if p.CategoryID != nil && *p.CategoryID == c.ID {
				n++
			}
		}
		out = append(out, models.CategoryWithCount{ID: c.ID, Name: c.Name, Slug: c.Slug, ProductCount: n})
	}
	return out, nil
}

func (m *memCatalog) CategoryProducts(_ context.Context, id uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memCatalog) Products(_ context.Context, q services.ProductQuery) (services.ProductPage, error) {
	var matched []models.Product
	for _, p := range m.products {
		if q.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *q.CategoryID) {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)) {
			continue
		}
		matched = append(matched, p)
	}
	page := services.ClampPage(q.Page, len(matched), q.Limit)
	start := min((page-1)*q.Limit, len(matched))
	end := min(start+q.Limit, len(matched))
	return services.ProductPage{Products: matched[start:end], Total: len(matched), Page: page}, nil
}

func (m *memCatalog) ProductBySlug(_ context.Context, slug string) (*models.Product, error) {
	for i := range m.products {
		if m.products[i].Slug == slug {
			return &m.products[i], nil
		}
	}
	return nil, services.ErrNotFound
}

func (m *memCatalog) ServiceablePincode(_ context.Context, code string) (*models.Pincode, error) {
	for i := range m.pincodes {
		if m.pincodes[i].Code == code {
			return &m.pincodes[i], nil
		}
	}
	return nil, services.ErrNotFound
}

func (m *memCatalog) ProductsByIDs(_ context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if slices.Contains(ids, p.ID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memCatalog) HeroBanners(_ context.Context, limit int) ([]models.HeroBanner, error) {
	return m.banners[:min(limit, len(m.banners))], nil
}

func (m *memCatalog) FestivalBanner(context.Context, time.Time) (*models.FestivalBanner, error) {
	if m.festival == nil {
		return nil, services.ErrNotFound
	}
	return m.festival, nil
}

func (m *memCatalog) SiteSetting(context.Context) (*models.SiteSetting, error) {
	return nil, services.ErrNotFound
}

type memCustomers struct {
	mu        sync.Mutex
	customers map[string]*models.Customer
	otps      []*models.LoginOTP
}

func (m *memCustomers) FindCustomer(_ context.Context, email string) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.customers[email]; ok {
		return c, nil
	}
	return nil, services.ErrNotFound
}

func (m *memCustomers) CreateCustomer(_ context.Context, c *models.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m.customers[c.Email] = c
	return nil
}

func (m *memCustomers) ReplaceLoginOTP(_ context.Context, email, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.otps = append(m.otps, &models.LoginOTP{ID: uuid.New(), Email: email, Code: code, CreatedAt: time.Now()})
	return nil
}

func (m *memCustomers) FindLoginOTP(_ context.Context, email, code string) (*models.LoginOTP, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.otps) - 1; i >= 0; i-- {
		o := m.otps[i]
		if o.Email == email && o.Code == code && !o.IsVerified {
			return o, nil
		}
	}
	return nil, services.ErrNotFound
}

func (m *memCustomers) MarkOTPVerified(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.otps {
		if o.ID == id {
			o.IsVerified = true
		}
	}
	return nil
}

type capturingMailer struct {
	mu   sync.Mutex
	otps map[string]string
}

func (m *capturingMailer) SendOTP(_ context.Context, email, otp string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.otps[email] = otp
	return nil
}

func (m *capturingMailer) SendWelcome(context.Context, string, string) error { return nil }

func (m *capturingMailer) lastOTP(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.otps[email]
}
