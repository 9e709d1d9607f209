package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"
)

// requireAdmin wraps the access gate around the back office. The decision is
// taken fresh on every request: pending renders a neutral page, deny sends
// the visitor back to the storefront.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, profile, loading := h.sessions.Snapshot()
		switch service.DecideAccess(session, profile, loading) {
		case service.DecisionPending:
			h.render(w, r, "loading.html", "Loading", nil)
		case service.DecisionDeny:
			http.Redirect(w, r, "/", http.StatusSeeOther)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

type adminProductsView struct {
	Products []model.Product
}

func (h *Handler) adminProductsPage(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context(), "")
	if err != nil {
		h.renderWithError(w, r, "admin_products.html", "Products", adminProductsView{}, err.Error())
		return
	}
	h.render(w, r, "admin_products.html", "Products", adminProductsView{Products: products})
}

func (h *Handler) adminCreateProduct(w http.ResponseWriter, r *http.Request) {
	product, err := productFromForm(r)
	if err != nil {
		setFlash(w, err.Error())
		http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
		return
	}

	if err := h.products.Create(r.Context(), product); err != nil {
		setFlash(w, err.Error())
	} else {
		setFlash(w, "Product created successfully")
	}
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func (h *Handler) adminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	product, err := productFromForm(r)
	if err != nil {
		setFlash(w, err.Error())
		http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
		return
	}
	product.ID = mux.Vars(r)["id"]

	if err := h.products.Update(r.Context(), product); err != nil {
		setFlash(w, err.Error())
	} else {
		setFlash(w, "Product updated successfully")
	}
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func (h *Handler) adminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		setFlash(w, err.Error())
	} else {
		setFlash(w, "Product deleted successfully")
	}
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func productFromForm(r *http.Request) (model.Product, error) {
	price, err := decimal.NewFromString(r.FormValue("price"))
	if err != nil {
		return model.Product{}, err
	}
	return model.Product{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		ImageURL:    r.FormValue("image_url"),
	}, nil
}

type adminOrdersView struct {
	Orders   []model.OrderSummary
	Statuses []string
}

var orderStatuses = []string{
	model.OrderStatusPending,
	model.OrderStatusShipped,
	model.OrderStatusDelivered,
	model.OrderStatusCancelled,
}

func (h *Handler) adminOrdersPage(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListSummaries(r.Context())
	if err != nil {
		h.renderWithError(w, r, "admin_orders.html", "Orders", adminOrdersView{Statuses: orderStatuses}, err.Error())
		return
	}
	h.render(w, r, "admin_orders.html", "Orders", adminOrdersView{Orders: orders, Statuses: orderStatuses})
}

func (h *Handler) adminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	status := r.FormValue("status")

	if err := h.orders.UpdateStatus(r.Context(), id, status); err != nil {
		setFlash(w, err.Error())
	} else {
		setFlash(w, "Order status updated")
	}
	http.Redirect(w, r, "/admin/orders", http.StatusSeeOther)
}

type adminOrderDetailView struct {
	Order *model.OrderDetail
	Items []model.OrderItemDetail
}

func (h *Handler) adminOrderDetailPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.orders.Find(r.Context(), id)
	if err != nil {
		h.renderErrorPage(w, r, err.Error())
		return
	}

	items, err := h.orders.FindItems(r.Context(), id)
	if err != nil {
		h.renderErrorPage(w, r, err.Error())
		return
	}

	h.render(w, r, "admin_order_detail.html", "Order Details", adminOrderDetailView{Order: order, Items: items})
}
