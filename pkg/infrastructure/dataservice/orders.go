package dataservice

import (
	"context"

	"github.com/pkg/errors"

	"storefront/pkg/domain/model"
)

type OrderRepository struct {
	client *Client
}

func NewOrderRepository(client *Client) *OrderRepository {
	return &OrderRepository{client: client}
}

func (r *OrderRepository) Insert(ctx context.Context, order model.Order) (model.Order, error) {
	var inserted []model.Order
	if err := r.client.Table("orders").Insert(ctx, []model.Order{order}, &inserted); err != nil {
		return model.Order{}, err
	}
	if len(inserted) == 0 {
		return model.Order{}, errors.New("data service: order insert returned no representation")
	}
	return inserted[0], nil
}

func (r *OrderRepository) InsertItems(ctx context.Context, items []model.OrderItem) error {
	return r.client.Table("order_items").Insert(ctx, items, nil)
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	var orders []model.Order
	err := r.client.Table("orders").
		Select("*").
		Eq("user_id", userID).
		OrderBy("created_at", true).
		Get(ctx, &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListSummaries reads the orders_with_profile view, which annotates each
// order with the customer's name.
func (r *OrderRepository) ListSummaries(ctx context.Context) ([]model.OrderSummary, error) {
	var summaries []model.OrderSummary
	if err := r.client.Table("orders_with_profile").Select("*").Get(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *OrderRepository) Find(ctx context.Context, id string) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	err := r.client.Table("orders").
		Select("*, shipping_addresses(*)").
		Eq("id", id).
		GetSingle(ctx, &detail)
	if errors.Is(err, ErrNoRows) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *OrderRepository) FindItems(ctx context.Context, orderID string) ([]model.OrderItemDetail, error) {
	var items []model.OrderItemDetail
	err := r.client.Table("order_items").
		Select("quantity, price, products!inner(*)").
		Eq("order_id", orderID).
		Get(ctx, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.client.Table("orders").Eq("id", id).Update(ctx, map[string]string{"status": status})
}
