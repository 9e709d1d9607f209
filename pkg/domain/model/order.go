package model

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = errors.New("order not found")

const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

type Order struct {
	ID                string          `json:"id,omitempty"`
	UserID            string          `json:"user_id"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	Status            string          `json:"status,omitempty"`
	ShippingAddressID string          `json:"shipping_address_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at,omitzero"`
}

type OrderItem struct {
	OrderID   string          `json:"order_id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderDetail is an order joined with its shipping address, as returned by
// the data service's embedded-resource select.
type OrderDetail struct {
	Order
	ShippingAddress *ShippingAddress `json:"shipping_addresses"`
}

// OrderItemDetail is an order item joined with its product.
type OrderItemDetail struct {
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Product  Product         `json:"products"`
}

// OrderSummary is a row of the orders_with_profile view: an order annotated
// with the customer's name for the back-office table.
type OrderSummary struct {
	ID         string          `json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	FullName   string          `json:"full_name"`
}

// OrderRepository mirrors the remote orders and order_items tables. Insert
// and InsertItems are separate calls on purpose: checkout issues them in
// sequence and provides no transaction across them.
type OrderRepository interface {
	Insert(ctx context.Context, order Order) (Order, error)
	InsertItems(ctx context.Context, items []OrderItem) error
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	ListSummaries(ctx context.Context) ([]OrderSummary, error)
	Find(ctx context.Context, id string) (*OrderDetail, error)
	FindItems(ctx context.Context, orderID string) ([]OrderItemDetail, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
