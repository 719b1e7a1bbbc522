package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/google/uuid"
)

// ── customers ────────────────────────────────────────────────────────────────

type fakeCustomerStore struct {
	mu        sync.Mutex
	customers map[string]*models.Customer
	otps      []*models.LoginOTP
	now       func() time.Time
}

func newFakeCustomerStore(now func() time.Time) *fakeCustomerStore {
	return &fakeCustomerStore{customers: map[string]*models.Customer{}, now: now}
}

func (f *fakeCustomerStore) FindCustomer(_ context.Context, email string) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[normalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (f *fakeCustomerStore) CreateCustomer(_ context.Context, customer *models.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.Email = normalizeEmail(customer.Email)
	f.customers[customer.Email] = customer
	return nil
}

func (f *fakeCustomerStore) ReplaceLoginOTP(_ context.Context, email, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	email = normalizeEmail(email)
	f.otps = slices.DeleteFunc(f.otps, func(o *models.LoginOTP) bool { return o.Email == email })
	f.otps = append(f.otps, &models.LoginOTP{ID: uuid.New(), Email: email, Code: code, CreatedAt: f.now()})
	return nil
}

func (f *fakeCustomerStore) FindLoginOTP(_ context.Context, email, code string) (*models.LoginOTP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.otps {
		if o.Email == normalizeEmail(email) && o.Code == code && !o.IsVerified {
			return o, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeCustomerStore) MarkOTPVerified(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.otps {
		if o.ID == id {
			o.IsVerified = true
			return nil
		}
	}
	return ErrNotFound
}

// ── mail ─────────────────────────────────────────────────────────────────────

type sentMail struct {
	kind, to, body string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendOTP(_ context.Context, email, otp string, _ time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{kind: "otp", to: email, body: otp})
	return nil
}

func (m *fakeMailer) SendWelcome(_ context.Context, email, name string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{kind: "welcome", to: email, body: name})
	return nil
}

// ── catalog ──────────────────────────────────────────────────────────────────

type fakeCatalogStore struct {
	categories []models.Category
	products   []models.Product
	pincodes   []models.Pincode
	banners    []models.HeroBanner
	festivals  []models.FestivalBanner
	setting    *models.SiteSetting

	lastQuery      ProductQuery
	categoryReads  int
	categoryCounts []models.CategoryWithCount
}

func (f *fakeCatalogStore) CategoryBySlug(_ context.Context, slug string) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].Slug == slug && f.categories[i].IsActive {
			return &f.categories[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeCatalogStore) ActiveCategories(context.Context) ([]models.CategoryWithCount, error) {
	f.categoryReads++
	return f.categoryCounts, nil
}

func (f *fakeCatalogStore) CategoryProducts(_ context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.CategoryID != nil && *p.CategoryID == categoryID && p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

// Products applies the category and bestseller filters and pages in
// insertion order; sorting is left to the database.
func (f *fakeCatalogStore) Products(_ context.Context, q ProductQuery) (ProductPage, error) {
	f.lastQuery = q
	var matched []models.Product
	for _, p := range f.products {
		if !p.IsActive {
			continue
		}
		if q.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *q.CategoryID) {
			continue
		}
		if q.BestsellerOnly && !p.IsBestseller {
			continue
		}
		if q.MinDiscount > 0 && p.DiscountPercent < q.MinDiscount {
			continue
		}
		matched = append(matched, p)
	}

	page := ClampPage(q.Page, len(matched), q.Limit)
	start := min((page-1)*q.Limit, len(matched))
	end := min(start+q.Limit, len(matched))
	return ProductPage{Products: matched[start:end], Total: len(matched), Page: page}, nil
}

func (f *fakeCatalogStore) ProductBySlug(_ context.Context, slug string) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].Slug == slug && f.products[i].IsActive {
			return &f.products[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeCatalogStore) ServiceablePincode(_ context.Context, code string) (*models.Pincode, error) {
	for i := range f.pincodes {
		if f.pincodes[i].Code == code && f.pincodes[i].IsServiceable {
			return &f.pincodes[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeCatalogStore) ProductsByIDs(_ context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.IsActive && slices.Contains(ids, p.ID) {
			out = append(out, p)
		}
	}
	return out, nil
}

// HeroBanners expects banners already in display order
func (f *fakeCatalogStore) HeroBanners(_ context.Context, limit int) ([]models.HeroBanner, error) {
	var out []models.HeroBanner
	for _, b := range f.banners {
		if b.IsActive && len(out) < limit {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeCatalogStore) FestivalBanner(_ context.Context, day time.Time) (*models.FestivalBanner, error) {
	for i := range f.festivals {
		if f.festivals[i].IsRunning(day) {
			return &f.festivals[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeCatalogStore) SiteSetting(context.Context) (*models.SiteSetting, error) {
	if f.setting == nil {
		return nil, ErrNotFound
	}
	return f.setting, nil
}
