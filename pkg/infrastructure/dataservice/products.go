package dataservice

import (
	"context"

	"github.com/pkg/errors"

	"storefront/pkg/domain/model"
)

type ProductRepository struct {
	client *Client
}

func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

func (r *ProductRepository) List(ctx context.Context, search string) ([]model.Product, error) {
	q := r.client.Table("products").Select("*")
	if search != "" {
		q = q.Ilike("name", "%"+search+"%")
	}

	var products []model.Product
	if err := q.Get(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Find(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.client.Table("products").Select("*").Eq("id", id).GetSingle(ctx, &product)
	if errors.Is(err, ErrNoRows) {
		return nil, model.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product model.Product) error {
	return r.client.Table("products").Insert(ctx, productPatch(product), nil)
}

func (r *ProductRepository) Update(ctx context.Context, product model.Product) error {
	return r.client.Table("products").Eq("id", product.ID).Update(ctx, productPatch(product))
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.client.Table("products").Eq("id", id).Delete(ctx)
}

// productPatch is the writable column set; the service assigns ids.
func productPatch(product model.Product) map[string]any {
	return map[string]any{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"image_url":   product.ImageURL,
	}
}
