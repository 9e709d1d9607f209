package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"storefront/pkg/domain/model"
)

type productsView struct {
	Products []model.Product
	Query    string
}

func (h *Handler) productsPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	products, err := h.products.List(r.Context(), query)
	if err != nil {
		h.renderWithError(w, r, "products.html", "All Products", productsView{Query: query}, err.Error())
		return
	}
	h.render(w, r, "products.html", "All Products", productsView{Products: products, Query: query})
}

func (h *Handler) productDetailPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.products.Find(r.Context(), id)
	if err != nil {
		h.renderErrorPage(w, r, err.Error())
		return
	}
	h.render(w, r, "product_detail.html", product.Name, product)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.products.Find(r.Context(), id)
	if err != nil {
		setFlash(w, err.Error())
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	h.carts.AddToCart(*product)
	setFlash(w, "Added to cart")
	http.Redirect(w, r, backTo(r, "/products"), http.StatusSeeOther)
}

type cartView struct {
	Lines []model.CartLine
	Total decimal.Decimal
}

func (h *Handler) cartPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "cart.html", "Your Cart", cartView{
		Lines: h.carts.Lines(),
		Total: h.carts.Total(),
	})
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := r.FormValue("product_id")
	// The coercion result is stored verbatim; a non-numeric field becomes 0
	// and negative values pass through unchecked.
	quantity, _ := strconv.Atoi(r.FormValue("quantity"))

	h.carts.UpdateQuantity(productID, quantity)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	h.carts.RemoveFromCart(mux.Vars(r)["id"])
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// quickCheckout places an order without shipping details, straight from the
// cart page.
func (h *Handler) quickCheckout(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Checkout(r.Context()); err != nil {
		if errors.Is(err, model.ErrUnauthenticated) {
			setFlash(w, "You must be logged in to checkout.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		setFlash(w, err.Error())
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	setFlash(w, "Order placed successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type checkoutView struct {
	Lines       []model.CartLine
	Total       decimal.Decimal
	Addresses   []model.ShippingAddress
	ShowAddForm bool
}

func (h *Handler) checkoutPage(w http.ResponseWriter, r *http.Request) {
	session, _, _ := h.sessions.Snapshot()
	if session == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	view := checkoutView{
		Lines: h.carts.Lines(),
		Total: h.carts.Total(),
	}

	addresses, err := h.addresses.ListByProfile(r.Context(), session.UserID)
	if err != nil {
		h.renderWithError(w, r, "checkout.html", "Checkout", view, err.Error())
		return
	}

	view.Addresses = addresses
	view.ShowAddForm = len(addresses) == 0
	h.render(w, r, "checkout.html", "Checkout", view)
}

// placeOrder is the page-level checkout: optional address insert, then the
// order row, then the item batch. A failure on a later step leaves the
// earlier writes in place; there is no compensating delete.
func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, _, _ := h.sessions.Snapshot()
	if session == nil {
		setFlash(w, "You must be logged in to checkout.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	addressID := r.FormValue("address_id")
	if addressID == "" {
		saved, err := h.addresses.Insert(ctx, model.ShippingAddress{
			ProfileID:     session.UserID,
			RecipientName: r.FormValue("recipient_name"),
			StreetAddress: r.FormValue("street_address"),
			City:          r.FormValue("city"),
			State:         r.FormValue("state"),
			PostalCode:    r.FormValue("postal_code"),
			Country:       r.FormValue("country"),
			IsDefault:     r.FormValue("save_address") == "on",
		})
		if err != nil {
			setFlash(w, err.Error())
			http.Redirect(w, r, "/checkout", http.StatusSeeOther)
			return
		}
		addressID = saved.ID
	}

	order, err := h.orders.Insert(ctx, model.Order{
		UserID:            session.UserID,
		TotalPrice:        h.carts.Total(),
		Status:            model.OrderStatusPending,
		ShippingAddressID: addressID,
	})
	if err != nil {
		setFlash(w, err.Error())
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	lines := h.carts.Lines()
	items := make([]model.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, model.OrderItem{
			OrderID:   order.ID,
			ProductID: line.ID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	if err := h.orders.InsertItems(ctx, items); err != nil {
		setFlash(w, err.Error())
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	h.carts.ClearCart()
	setFlash(w, "Order placed successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type profileView struct {
	Tab       string
	Orders    []model.Order
	Addresses []model.ShippingAddress
}

func (h *Handler) profilePage(w http.ResponseWriter, r *http.Request) {
	session, _, _ := h.sessions.Snapshot()
	if session == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	tab := r.URL.Query().Get("tab")
	if tab != "addresses" {
		tab = "orders"
	}
	view := profileView{Tab: tab}

	orders, err := h.orders.ListByUser(r.Context(), session.UserID)
	if err != nil {
		h.renderWithError(w, r, "profile.html", "Your Profile", view, err.Error())
		return
	}
	view.Orders = orders

	addresses, err := h.addresses.ListByProfile(r.Context(), session.UserID)
	if err != nil {
		h.renderWithError(w, r, "profile.html", "Your Profile", view, err.Error())
		return
	}
	view.Addresses = addresses

	h.render(w, r, "profile.html", "Your Profile", view)
}

func (h *Handler) addAddress(w http.ResponseWriter, r *http.Request) {
	session, _, _ := h.sessions.Snapshot()
	if session == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	_, err := h.addresses.Insert(r.Context(), model.ShippingAddress{
		ProfileID:     session.UserID,
		RecipientName: r.FormValue("recipient_name"),
		StreetAddress: r.FormValue("street_address"),
		City:          r.FormValue("city"),
		State:         r.FormValue("state"),
		PostalCode:    r.FormValue("postal_code"),
		Country:       r.FormValue("country"),
	})
	if err != nil {
		setFlash(w, err.Error())
	} else {
		setFlash(w, "Address added successfully!")
	}
	http.Redirect(w, r, "/profile?tab=addresses", http.StatusSeeOther)
}

func backTo(r *http.Request, fallback string) string {
	if ref := r.Referer(); ref != "" {
		return ref
	}
	return fallback
}
