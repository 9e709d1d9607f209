package transport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"
	"storefront/transport"
)

type fixture struct {
	router   http.Handler
	carts    service.CartService
	sessions service.SessionService
	auth     *stubAuthGateway
	products *stubProductRepository
}

func setup(t *testing.T, start bool) *fixture {
	t.Helper()

	auth := &stubAuthGateway{}
	products := &stubProductRepository{products: []model.Product{
		{ID: "p1", Name: "Coffee", Price: decimal.RequireFromString("10.00")},
	}}
	profiles := &stubProfileRepository{profiles: map[string]*model.Profile{}}
	orders := &stubOrderRepository{}
	addresses := &stubAddressRepository{}

	carts := service.NewCartService(nopCartStore{}, auth, orders, nopDispatcher{})
	sessions := service.NewSessionService(auth, profiles)
	if start {
		sessions.Start(context.Background())
		t.Cleanup(sessions.Close)
	}

	return &fixture{
		router:   transport.Router(products, orders, addresses, carts, sessions),
		carts:    carts,
		sessions: sessions,
		auth:     auth,
		products: products,
	}
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (f *fixture) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestAdminPendingWhileLoading(t *testing.T) {
	f := setup(t, false)

	rec := f.get("/admin/products")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Loading")
}

func TestAdminDeniedWithoutSession(t *testing.T) {
	f := setup(t, true)

	rec := f.get("/admin/products")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestAdminDeniedForCustomerRole(t *testing.T) {
	auth := &stubAuthGateway{session: &model.Session{UserID: "u1", Email: "c@example.com"}}
	profiles := &stubProfileRepository{profiles: map[string]*model.Profile{
		"u1": {ID: "u1", Role: "customer"},
	}}
	sessions := service.NewSessionService(auth, profiles)
	sessions.Start(context.Background())
	t.Cleanup(sessions.Close)

	carts := service.NewCartService(nopCartStore{}, auth, &stubOrderRepository{}, nopDispatcher{})
	router := transport.Router(&stubProductRepository{}, &stubOrderRepository{}, &stubAddressRepository{}, carts, sessions)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/orders", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestAdminAdmittedForAdminRole(t *testing.T) {
	auth := &stubAuthGateway{session: &model.Session{UserID: "u1", Email: "a@example.com"}}
	profiles := &stubProfileRepository{profiles: map[string]*model.Profile{
		"u1": {ID: "u1", Role: model.RoleAdmin},
	}}
	sessions := service.NewSessionService(auth, profiles)
	sessions.Start(context.Background())
	t.Cleanup(sessions.Close)

	products := &stubProductRepository{products: []model.Product{
		{ID: "p1", Name: "Coffee", Price: decimal.RequireFromString("10.00")},
	}}
	carts := service.NewCartService(nopCartStore{}, auth, &stubOrderRepository{}, nopDispatcher{})
	router := transport.Router(products, &stubOrderRepository{}, &stubAddressRepository{}, carts, sessions)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/products", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Coffee")
}

func TestProductsPageRendersRemoteError(t *testing.T) {
	f := setup(t, true)
	f.products.err = assert.AnError

	rec := f.get("/products")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error:")
}

func TestProductDetailNotFound(t *testing.T) {
	f := setup(t, true)

	rec := f.get("/products/unknown")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), model.ErrProductNotFound.Error())
}

// A non-numeric quantity coerces to zero and is stored verbatim.
func TestUpdateQuantityCoercion(t *testing.T) {
	f := setup(t, true)
	f.carts.AddToCart(model.Product{ID: "p1", Name: "Coffee", Price: decimal.RequireFromString("10.00")})

	rec := f.post("/cart/update", url.Values{"product_id": {"p1"}, "quantity": {"abc"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	lines := f.carts.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 0, lines[0].Quantity)
}

func TestCheckoutPageRedirectsAnonymous(t *testing.T) {
	f := setup(t, true)

	rec := f.get("/checkout")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
