package transport

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"
)

type Handler struct {
	products  model.ProductRepository
	orders    model.OrderRepository
	addresses model.AddressRepository
	carts     service.CartService
	sessions  service.SessionService
}

func Router(
	products model.ProductRepository,
	orders model.OrderRepository,
	addresses model.AddressRepository,
	carts service.CartService,
	sessions service.SessionService,
) http.Handler {
	h := &Handler{
		products:  products,
		orders:    orders,
		addresses: addresses,
		carts:     carts,
		sessions:  sessions,
	}

	r := mux.NewRouter()

	r.HandleFunc("/", h.productsPage).Methods(http.MethodGet)
	r.HandleFunc("/products", h.productsPage).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", h.productDetailPage).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}/add", h.addToCart).Methods(http.MethodPost)

	r.HandleFunc("/cart", h.cartPage).Methods(http.MethodGet)
	r.HandleFunc("/cart/update", h.updateQuantity).Methods(http.MethodPost)
	r.HandleFunc("/cart/remove/{id}", h.removeFromCart).Methods(http.MethodPost)
	r.HandleFunc("/cart/checkout", h.quickCheckout).Methods(http.MethodPost)

	r.HandleFunc("/checkout", h.checkoutPage).Methods(http.MethodGet)
	r.HandleFunc("/checkout", h.placeOrder).Methods(http.MethodPost)

	r.HandleFunc("/login", h.loginPage).Methods(http.MethodGet)
	r.HandleFunc("/login", h.login).Methods(http.MethodPost)
	r.HandleFunc("/signup", h.signupPage).Methods(http.MethodGet)
	r.HandleFunc("/signup", h.signup).Methods(http.MethodPost)
	r.HandleFunc("/logout", h.logout).Methods(http.MethodPost)

	r.HandleFunc("/profile", h.profilePage).Methods(http.MethodGet)
	r.HandleFunc("/profile/addresses", h.addAddress).Methods(http.MethodPost)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(h.requireAdmin)
	admin.HandleFunc("/products", h.adminProductsPage).Methods(http.MethodGet)
	admin.HandleFunc("/products", h.adminCreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", h.adminUpdateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}/delete", h.adminDeleteProduct).Methods(http.MethodPost)
	admin.HandleFunc("/orders", h.adminOrdersPage).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}", h.adminOrderDetailPage).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}/status", h.adminUpdateOrderStatus).Methods(http.MethodPost)

	return logMiddleware(r)
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"requestId":  uuid.NewString(),
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}
